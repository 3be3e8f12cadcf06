package indicator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/raykavin/momentum/pkg/core"
)

// ErrBackendUnavailable is returned by a Backend that cannot compute the
// requested indicator. Calculators treat it as a soft failure.
var ErrBackendUnavailable = errors.New("external compute backend unavailable")

// Kind identifies an indicator formula
type Kind int

const (
	KindAO Kind = iota
	KindAPO
	KindBias
	KindBOP
	KindMOM
	KindROC
	KindPPO
)

var kindNames = map[Kind]string{
	KindAO:   "ao",
	KindAPO:  "apo",
	KindBias: "bias",
	KindBOP:  "bop",
	KindMOM:  "mom",
	KindROC:  "roc",
	KindPPO:  "ppo",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds lists every supported indicator kind
func Kinds() []Kind {
	return []Kind{KindAO, KindAPO, KindBias, KindBOP, KindMOM, KindROC, KindPPO}
}

// ParseKind maps a kind name such as "ao" or "BOP" to a Kind
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for kind, n := range kindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown indicator %q", core.ErrInvalidInput, s)
}

// Inputs carries the price columns handed to a Backend. Unused columns may be nil.
type Inputs struct {
	Open  []float64
	High  []float64
	Low   []float64
	Close []float64
}

// Params is the normalized configuration of a calculator
type Params struct {
	Fast   int
	Slow   int
	Length int
	Mode   MaMode
	Scalar float64
}

// Backend computes an indicator outside of this package, e.g. with TA-Lib.
// The returned series must have the length of the inputs and no offset applied.
type Backend interface {
	Compute(kind Kind, in Inputs, params Params) ([]float64, error)
}

// Unavailable is the default Backend; it never computes anything
type Unavailable struct{}

// Compute implements Backend.
func (Unavailable) Compute(kind Kind, _ Inputs, _ Params) ([]float64, error) {
	return nil, fmt.Errorf("%w: %s", ErrBackendUnavailable, kind)
}
