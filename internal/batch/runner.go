// Package batch computes a list of configured indicators over one dataframe.
package batch

import (
	"fmt"
	"io"

	"github.com/StudioSol/set"
	"github.com/raykavin/momentum/pkg/core"
	"github.com/raykavin/momentum/pkg/indicator"
	"github.com/raykavin/momentum/pkg/logger"
	"github.com/raykavin/momentum/pkg/storage"
	"github.com/schollz/progressbar/v3"
)

// Saver persists computed series
type Saver interface {
	Save(record *storage.Record) error
}

// Result is one computed indicator
type Result struct {
	Indicator indicator.Indicator
	ID        string // indicator.Identity of Indicator
	Values    []float64
}

// Label names the result for display, offset included
func (r Result) Label() string {
	if offset := r.Indicator.Offset(); offset != 0 {
		return fmt.Sprintf("%s@%d", r.ID, offset)
	}
	return r.ID
}

// Option configures a Runner
type Option func(*Runner)

// WithBackend sets the backend used by indicators with external enabled
func WithBackend(backend indicator.Backend) Option {
	return func(r *Runner) { r.backend = backend }
}

// WithSaver persists every result under the given timeframe
func WithSaver(saver Saver, timeframe string) Option {
	return func(r *Runner) {
		r.saver = saver
		r.timeframe = timeframe
	}
}

// WithProgress draws a progress bar on w
func WithProgress(w io.Writer) Option {
	return func(r *Runner) { r.progress = w }
}

// Runner computes indicators one after another
type Runner struct {
	log       logger.Logger
	backend   indicator.Backend
	saver     Saver
	timeframe string
	progress  io.Writer
}

// NewRunner creates a runner logging through log
func NewRunner(log logger.Logger, options ...Option) *Runner {
	r := &Runner{log: log, backend: indicator.Unavailable{}}
	for _, option := range options {
		option(r)
	}
	return r
}

// Run builds every configured indicator and computes it over df.
// Configurations resolving to an already computed identity and offset are
// skipped.
func (r *Runner) Run(df core.Dataframe, configs []indicator.Config) ([]Result, error) {
	indicators, err := r.build(configs)
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if r.progress != nil {
		bar = progressbar.NewOptions(len(indicators),
			progressbar.OptionSetWriter(r.progress),
			progressbar.OptionSetDescription("computing"),
		)
	}

	results := make([]Result, 0, len(indicators))
	for _, ind := range indicators {
		id := indicator.Identity(ind)

		values, err := ind.Compute(df)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}

		if r.saver != nil {
			record := &storage.Record{
				Pair:      df.Pair,
				Timeframe: r.timeframe,
				Indicator: id,
				Offset:    ind.Offset(),
				Values:    values,
			}
			if err := r.saver.Save(record); err != nil {
				return nil, fmt.Errorf("%s: %w", id, err)
			}
		}

		r.log.WithFields(map[string]any{
			"indicator": id,
			"offset":    ind.Offset(),
			"pair":      df.Pair,
			"values":    len(values),
		}).Debug("indicator computed")

		results = append(results, Result{Indicator: ind, ID: id, Values: values})

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return results, nil
}

func (r *Runner) build(configs []indicator.Config) ([]indicator.Indicator, error) {
	seen := set.NewLinkedHashSetString()
	indicators := make([]indicator.Indicator, 0, len(configs))

	for i, cfg := range configs {
		ind, err := indicator.New(cfg,
			indicator.WithBackend(r.backend),
			indicator.WithLogger(r.log),
		)
		if err != nil {
			return nil, fmt.Errorf("indicators[%d]: %w", i, err)
		}

		key := fmt.Sprintf("%s@%d", indicator.Identity(ind), ind.Offset())
		if seen.InArray(key) {
			r.log.WithField("indicator", key).Warn("duplicate indicator skipped")
			continue
		}
		seen.Add(key)

		indicators = append(indicators, ind)
	}

	return indicators, nil
}
