package indicator

import (
	"testing"

	"github.com/raykavin/momentum/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func TestAO_ConstantPrice(t *testing.T) {
	ao := NewAO(5, 34)
	result, err := ao.Calculate(constant(50, 100), constant(50, 100))
	require.NoError(t, err)
	require.Len(t, result, 50)
	for _, v := range result {
		assert.Zero(t, v)
	}
}

func TestAO_Configuration(t *testing.T) {
	ao := NewAO(0, -3)
	assert.Equal(t, 5, ao.FastPeriod())
	assert.Equal(t, 34, ao.SlowPeriod())
	assert.Equal(t, "AO_5_34", ao.Name())
	assert.Equal(t, "momentum", ao.Category())
	assert.Equal(t, KindAO, ao.Kind())
	assert.Zero(t, ao.Offset())
	assert.False(t, ao.External())
}

func TestAO_SwapsPeriods(t *testing.T) {
	high, low := ohlc(60).High, ohlc(60).Low

	canonical := NewAO(5, 34)
	swapped := NewAO(34, 5)
	require.Equal(t, canonical.Name(), swapped.Name())

	want, err := canonical.Calculate(high, low)
	require.NoError(t, err)
	got, err := swapped.Calculate(high, low)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAO_Values(t *testing.T) {
	// median price 1..10
	high := sequence(10)
	low := sequence(10)

	result, err := NewAO(2, 4).Calculate(high, low)
	require.NoError(t, err)

	// SMA2 at i is i+0.5, SMA4 at i is i-0.5
	assert.InDeltaSlice(t, []float64{0, 0, 0, 1, 1, 1, 1, 1, 1, 1}, result, delta)
}

func TestAO_Offset(t *testing.T) {
	high, low := sequence(10), sequence(10)

	result, err := NewAO(2, 4, WithOffset(3)).Calculate(high, low)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 0, 0, 0, 0, 1, 1, 1, 1}, result, delta)

	_, err = NewAO(2, 4, WithOffset(-1)).Calculate(high, low)
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestAO_InvalidInput(t *testing.T) {
	_, err := NewAO(5, 34).Calculate(sequence(33), sequence(33))
	require.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = NewAO(2, 4).Calculate(sequence(10), sequence(9))
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestAO_Compute(t *testing.T) {
	df := ohlc(40)
	ao := NewAO(5, 34)

	want, err := ao.Calculate(df.High, df.Low)
	require.NoError(t, err)
	got, err := ao.Compute(df)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ohlc builds a deterministic, non-flat price frame
func ohlc(n int) core.Dataframe {
	candles := make([]core.Candle, n)
	price := 100.0
	for i := range candles {
		swing := float64((i*7)%11) - 5
		open := price
		close := price + swing*0.8 + 0.3
		high := max(open, close) + 1.25 + float64(i%3)
		low := min(open, close) - 0.75 - float64(i%2)
		candles[i] = core.Candle{Open: open, High: high, Low: low, Close: close}
		price = close
	}
	return core.NewDataframe("TEST", candles)
}
