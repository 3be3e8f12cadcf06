package indicator

import (
	"fmt"
)

// Config declares an indicator in a batch file. Fields an indicator does
// not use are ignored.
type Config struct {
	Kind     string  `mapstructure:"kind" json:"kind"`
	Fast     int     `mapstructure:"fast" json:"fast,omitempty"`
	Slow     int     `mapstructure:"slow" json:"slow,omitempty"`
	Length   int     `mapstructure:"length" json:"length,omitempty"`
	Mode     string  `mapstructure:"mode" json:"mode,omitempty"`
	Scalar   float64 `mapstructure:"scalar" json:"scalar,omitempty"`
	Offset   int     `mapstructure:"offset" json:"offset,omitempty"`
	External bool    `mapstructure:"external" json:"external,omitempty"`
}

// Options translates the config into calculator options. An empty mode
// keeps the default; an unknown one is an error.
func (c Config) Options() ([]Option, error) {
	opts := []Option{WithOffset(c.Offset), WithScalar(c.Scalar), WithExternal(c.External)}
	if c.Mode != "" {
		mode, err := ParseMaMode(c.Mode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithMaMode(mode))
	}
	return opts, nil
}

// New builds the indicator described by cfg. Options passed here are
// applied after the ones derived from cfg.
func New(cfg Config, extra ...Option) (Indicator, error) {
	kind, err := ParseKind(cfg.Kind)
	if err != nil {
		return nil, err
	}

	opts, err := cfg.Options()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	opts = append(opts, extra...)

	switch kind {
	case KindAO:
		return NewAO(cfg.Fast, cfg.Slow, opts...), nil
	case KindAPO:
		return NewAPO(cfg.Fast, cfg.Slow, opts...), nil
	case KindBias:
		return NewBias(cfg.Length, opts...), nil
	case KindBOP:
		return NewBOP(opts...), nil
	case KindMOM:
		return NewMOM(cfg.Length, opts...), nil
	case KindROC:
		return NewROC(cfg.Length, opts...), nil
	case KindPPO:
		return NewPPO(cfg.Fast, cfg.Slow, opts...), nil
	default:
		return nil, fmt.Errorf("unsupported indicator %s", kind)
	}
}
