package logrus

import (
	"github.com/raykavin/momentum/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Adapter exposes a logrus entry as a logger.Logger
type Adapter struct {
	*logrus.Entry
}

var _ logger.Logger = (*Adapter)(nil)

// New wraps a logrus logger. A nil logger uses logrus.StandardLogger().
func New(l *logrus.Logger) *Adapter {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Adapter{logrus.NewEntry(l)}
}

// GetLevel implements logger.Logger.
func (a *Adapter) GetLevel() logger.Level {
	switch a.Logger.GetLevel() {
	case logrus.TraceLevel:
		return logger.TraceLevel
	case logrus.DebugLevel:
		return logger.DebugLevel
	case logrus.InfoLevel:
		return logger.InfoLevel
	case logrus.WarnLevel:
		return logger.WarnLevel
	case logrus.ErrorLevel:
		return logger.ErrorLevel
	case logrus.FatalLevel, logrus.PanicLevel:
		return logger.FatalLevel
	default:
		return logger.NoLevel
	}
}

// SetLevel implements logger.Logger. logrus has no "disabled" level, so
// Disabled maps to panic-only output.
func (a *Adapter) SetLevel(level logger.Level) {
	switch level {
	case logger.TraceLevel:
		a.Logger.SetLevel(logrus.TraceLevel)
	case logger.DebugLevel:
		a.Logger.SetLevel(logrus.DebugLevel)
	case logger.InfoLevel:
		a.Logger.SetLevel(logrus.InfoLevel)
	case logger.WarnLevel:
		a.Logger.SetLevel(logrus.WarnLevel)
	case logger.ErrorLevel:
		a.Logger.SetLevel(logrus.ErrorLevel)
	case logger.FatalLevel:
		a.Logger.SetLevel(logrus.FatalLevel)
	default:
		a.Logger.SetLevel(logrus.PanicLevel)
	}
}

// WithError implements logger.Logger.
func (a *Adapter) WithError(err error) logger.Logger {
	return &Adapter{a.Entry.WithError(err)}
}

// WithField implements logger.Logger.
func (a *Adapter) WithField(key string, value any) logger.Logger {
	return &Adapter{a.Entry.WithField(key, value)}
}

// WithFields implements logger.Logger.
func (a *Adapter) WithFields(fields map[string]any) logger.Logger {
	return &Adapter{a.Entry.WithFields(fields)}
}
