package logger

type Level int8

const (
	Disabled   Level = -1   // Disabled is used for disabled logging.
	TraceLevel Level = iota // TraceLevel is used for detailed debugging information.
	DebugLevel              // DebugLevel is used for debugging information.
	InfoLevel               // InfoLevel is used for informational messages.
	WarnLevel               // WarnLevel is used for warning messages.
	ErrorLevel              // ErrorLevel is used for error messages.
	FatalLevel              // FatalLevel is used for fatal messages that cause the program to exit.
	NoLevel                 // NoLevel is used for no logging level.
)

// Logger is the logging surface used across the module. Adapters live in
// the zerolog and logrus sub-packages.
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields map[string]any) Logger
	WithError(err error) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Fatal(args ...any)

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)

	SetLevel(level Level)
	GetLevel() Level
}

// Nop discards everything. Calculators use it until a logger is injected.
type Nop struct{}

var _ Logger = Nop{}

func (n Nop) WithField(string, any) Logger { return n }
func (n Nop) WithFields(map[string]any) Logger { return n }
func (n Nop) WithError(error) Logger { return n }
func (Nop) Debug(...any) {}
func (Nop) Info(...any) {}
func (Nop) Warn(...any) {}
func (Nop) Error(...any) {}
func (Nop) Fatal(...any) {}
func (Nop) Debugf(string, ...any) {}
func (Nop) Infof(string, ...any) {}
func (Nop) Warnf(string, ...any) {}
func (Nop) Errorf(string, ...any) {}
func (Nop) Fatalf(string, ...any) {}
func (Nop) SetLevel(Level) {}
func (Nop) GetLevel() Level { return Disabled }
