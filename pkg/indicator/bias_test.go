package indicator

import (
	"testing"

	"github.com/raykavin/momentum/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBias_IncreasingPrice(t *testing.T) {
	const length = 5
	close := sequence(30)

	result, err := NewBias(length).Calculate(close)
	require.NoError(t, err)
	require.Len(t, result, len(close))

	for i := range result {
		if i < length-1 {
			assert.Zero(t, result[i])
			continue
		}
		// close[i] = i+1 and its SMA5 is i-1
		assert.Greater(t, result[i], 0.0)
		assert.InDelta(t, float64(i+1)/float64(i-1)-1, result[i], delta)
	}
}

func TestBias_Configuration(t *testing.T) {
	bias := NewBias(0, WithMaMode(ModeEMA), WithOffset(2))
	assert.Equal(t, 26, bias.Length())
	assert.Equal(t, "BIAS_26", bias.Name())
	assert.Equal(t, ModeEMA, bias.MaMode())
	assert.Equal(t, 2, bias.Offset())

	_, err := bias.Calculate(sequence(25))
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestBias_ZeroAverage(t *testing.T) {
	result, err := NewBias(2).Calculate([]float64{1, -1, 1, 3})
	require.NoError(t, err)
	// SMA2 = [0, 0, 0, 2]
	assert.InDeltaSlice(t, []float64{0, 0, 0, 0.5}, result, delta)
}
