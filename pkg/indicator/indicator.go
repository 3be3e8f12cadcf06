package indicator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/raykavin/momentum/pkg/core"
)

// Category is the classification tag shared by every calculator here
const Category = "momentum"

// Indicator is the common surface of all calculators. Instances are
// immutable, so Compute may be called concurrently.
type Indicator interface {
	Name() string
	Category() string
	Kind() Kind
	Offset() int
	External() bool
	Params() Params
	Compute(df core.Dataframe) ([]float64, error)
}

// defaultScalars holds the scalar of kinds that accept one
var defaultScalars = map[Kind]float64{
	KindBOP: defaultBOPScalar,
	KindROC: defaultROCScalar,
	KindPPO: defaultPPOScalar,
}

func usesMaMode(kind Kind) bool {
	return kind == KindAPO || kind == KindBias || kind == KindPPO
}

// Identity extends Name with every non-default setting that changes the
// computed values, e.g. "APO_12_26_ema" or "BOP_x100_ext". The offset is
// not part of it.
func Identity(ind Indicator) string {
	parts := []string{ind.Name()}
	params := ind.Params()

	if usesMaMode(ind.Kind()) && params.Mode != ModeSMA {
		parts = append(parts, params.Mode.String())
	}

	if def, ok := defaultScalars[ind.Kind()]; ok && params.Scalar != def {
		parts = append(parts, "x"+strconv.FormatFloat(params.Scalar, 'g', -1, 64))
	}

	if ind.External() {
		parts = append(parts, "ext")
	}

	return strings.Join(parts, "_")
}

// base holds the configuration every calculator shares
type base struct {
	name string
	kind Kind
	settings
}

func newBase(kind Kind, name string, s settings) base {
	return base{name: name, kind: kind, settings: s}
}

// Name returns the display name, e.g. "AO_5_34"
func (b base) Name() string { return b.name }

// Category returns "momentum"
func (b base) Category() string { return Category }

// Kind returns the indicator formula
func (b base) Kind() Kind { return b.kind }

// Offset returns the configured output shift
func (b base) Offset() int { return b.offset }

// External reports whether computation is delegated to a Backend
func (b base) External() bool { return b.external }

func (b base) verifyOffset() error {
	if b.offset < 0 {
		return fmt.Errorf("%w: negative offset %d", core.ErrInvalidInput, b.offset)
	}
	return nil
}

// delegate runs the backend when external computation is enabled. handled is
// false when the caller must compute natively.
func (b base) delegate(in Inputs, params Params, size int, fallback func() []float64) (result []float64, handled bool, err error) {
	if !b.external {
		return nil, false, nil
	}

	result, err = b.backend.Compute(b.kind, in, params)
	if errors.Is(err, ErrBackendUnavailable) {
		b.log.WithField("indicator", b.name).WithError(err).Warn("external computation unavailable, returning fallback")
		return fallback(), true, nil
	}
	if err != nil {
		return nil, true, fmt.Errorf("%s: %w", b.name, err)
	}

	if len(result) != size {
		return nil, true, fmt.Errorf("%s: backend returned %d values, want %d", b.name, len(result), size)
	}

	result, err = Offset(result, b.offset)
	return result, true, err
}

func (b base) finish(raw []float64) ([]float64, error) {
	return Offset(raw, b.offset)
}

// emptyResult is the fallback of calculators without a defined zero result
func emptyResult() []float64 { return []float64{} }

// normalizePeriods applies defaults to non-positive periods and orders them
// so fast <= slow.
func normalizePeriods(fast, slow, defaultFast, defaultSlow int) (int, int) {
	if fast <= 0 {
		fast = defaultFast
	}
	if slow <= 0 {
		slow = defaultSlow
	}
	if slow < fast {
		fast, slow = slow, fast
	}
	return fast, slow
}

func positiveOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func nonZeroOr(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
