package indicator

import (
	"github.com/raykavin/momentum/pkg/logger"
)

type settings struct {
	offset   int
	mode     MaMode
	scalar   float64
	external bool
	backend  Backend
	log      logger.Logger
}

// Option configures a calculator at construction time
type Option func(*settings)

// WithOffset shifts the final output forward by n samples
func WithOffset(n int) Option {
	return func(s *settings) {
		s.offset = n
	}
}

// WithMaMode selects the moving average of APO, Bias and PPO (default sma)
func WithMaMode(mode MaMode) Option {
	return func(s *settings) {
		s.mode = mode
	}
}

// WithScalar sets the output multiplier of BOP, ROC and PPO. Zero keeps the default.
func WithScalar(scalar float64) Option {
	return func(s *settings) {
		s.scalar = scalar
	}
}

// WithBackend sets the Backend used when external computation is enabled
func WithBackend(backend Backend) Option {
	return func(s *settings) {
		s.backend = backend
	}
}

// WithExternal toggles external computation. With no backend configured the
// calculator logs a warning and returns its fallback result instead.
func WithExternal(enabled bool) Option {
	return func(s *settings) {
		s.external = enabled
	}
}

// WithLogger sets the logger used to report backend fallbacks
func WithLogger(log logger.Logger) Option {
	return func(s *settings) {
		s.log = log
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		mode:    ModeSMA,
		backend: Unavailable{},
		log:     logger.Nop{},
	}

	for _, opt := range opts {
		opt(&s)
	}

	if s.backend == nil {
		s.backend = Unavailable{}
	}
	if s.log == nil {
		s.log = logger.Nop{}
	}

	return s
}
