package indicator

import (
	"testing"

	"github.com/raykavin/momentum/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMOM(t *testing.T) {
	mom := NewMOM(1)
	assert.Equal(t, "MOM_1", mom.Name())

	result, err := mom.Calculate([]float64{1, 2, 4, 3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1, 2, -1}, result, delta)

	assert.Equal(t, 10, NewMOM(0).Length())
	_, err = NewMOM(0).Calculate(sequence(9))
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestROC(t *testing.T) {
	roc := NewROC(1)
	assert.Equal(t, "ROC_1", roc.Name())
	assert.Equal(t, 100.0, roc.Scalar())

	result, err := roc.Calculate([]float64{1, 2, 4, 0, 5})
	require.NoError(t, err)
	// a zero reference price yields 0
	assert.InDeltaSlice(t, []float64{0, 100, 100, -100, 0}, result, delta)

	result, err = NewROC(2, WithScalar(1)).Calculate([]float64{2, 3, 4})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 1}, result, delta)
}

func TestPPO(t *testing.T) {
	ppo := NewPPO(5, 3)
	assert.Equal(t, "PPO_3_5", ppo.Name())
	assert.Equal(t, 100.0, ppo.Scalar())

	result, err := ppo.Calculate(sequence(10))
	require.NoError(t, err)
	require.Len(t, result, 10)
	for i := range result {
		if i < 4 {
			assert.Zero(t, result[i])
			continue
		}
		// SMA3 = i, SMA5 = i-1
		assert.InDelta(t, 100/float64(i-1), result[i], delta)
	}
}
