package indicator

import (
	"bytes"
	"errors"
	"testing"

	"github.com/raykavin/momentum/pkg/core"
	"github.com/raykavin/momentum/pkg/logger/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	calls  []Kind
	params Params
	result []float64
	err    error
}

func (f *fakeBackend) Compute(kind Kind, _ Inputs, params Params) ([]float64, error) {
	f.calls = append(f.calls, kind)
	f.params = params
	return f.result, f.err
}

func TestExternal_Unavailable(t *testing.T) {
	df := ohlc(40)

	t.Run("empty fallback", func(t *testing.T) {
		buffer := bytes.NewBuffer(nil)
		log, err := zerolog.New(zerolog.Options{Level: "warn", JSON: true, Out: buffer})
		require.NoError(t, err)

		result, err := NewAPO(12, 26, WithExternal(true), WithLogger(log)).Calculate(df.Close)
		require.NoError(t, err)
		assert.Empty(t, result)
		assert.Contains(t, buffer.String(), "APO_12_26")
	})

	t.Run("zero fallback", func(t *testing.T) {
		result, err := NewBOP(WithExternal(true)).Compute(df)
		require.NoError(t, err)
		require.Len(t, result, df.Len())
		for _, v := range result {
			assert.Zero(t, v)
		}
	})

	t.Run("validation still runs first", func(t *testing.T) {
		_, err := NewAPO(12, 26, WithExternal(true)).Calculate(sequence(3))
		require.ErrorIs(t, err, core.ErrInvalidInput)
	})

	t.Run("backend without flag is not used", func(t *testing.T) {
		backend := &fakeBackend{}
		_, err := NewMOM(3, WithBackend(backend)).Calculate(sequence(10))
		require.NoError(t, err)
		assert.Empty(t, backend.calls)
	})
}

func TestExternal_Delegation(t *testing.T) {
	backend := &fakeBackend{result: []float64{1, 2, 3, 4}}

	result, err := NewPPO(2, 3, WithMaMode(ModeEMA), WithBackend(backend), WithExternal(true), WithOffset(1)).
		Calculate(sequence(4))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3}, result)
	assert.Equal(t, []Kind{KindPPO}, backend.calls)
	assert.Equal(t, Params{Fast: 2, Slow: 3, Mode: ModeEMA, Scalar: 100}, backend.params)

	t.Run("errors propagate", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := NewMOM(2, WithBackend(&fakeBackend{err: boom}), WithExternal(true)).Calculate(sequence(4))
		require.ErrorIs(t, err, boom)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := NewMOM(2, WithBackend(&fakeBackend{result: []float64{1}}), WithExternal(true)).Calculate(sequence(4))
		require.Error(t, err)
	})
}

func TestTalib_MatchesNative(t *testing.T) {
	df := ohlc(80)
	talib := NewTalib()

	cases := []Indicator{
		NewAO(5, 34),
		NewAPO(12, 26),
		NewAPO(12, 26, WithMaMode(ModeEMA)),
		NewAPO(12, 26, WithMaMode(ModeWMA)),
		NewBias(26),
		NewBias(10, WithMaMode(ModeEMA)),
		NewBOP(),
		NewMOM(10),
		NewROC(10),
		NewPPO(12, 26),
		NewPPO(12, 26, WithMaMode(ModeEMA), WithScalar(1)),
	}

	for _, native := range cases {
		t.Run(native.Name(), func(t *testing.T) {
			cfg := configOf(t, native)
			external, err := New(cfg, WithBackend(talib), WithExternal(true))
			require.NoError(t, err)

			want, err := native.Compute(df)
			require.NoError(t, err)
			got, err := external.Compute(df)
			require.NoError(t, err)

			require.Len(t, got, len(want))
			assert.InDeltaSlice(t, want, got, 1e-9)
		})
	}
}

func TestTalib_MisalignedInput(t *testing.T) {
	talib := NewTalib()

	var err error
	require.NotPanics(t, func() {
		_, err = talib.Compute(KindAO, Inputs{High: sequence(40), Low: sequence(10)}, Params{Fast: 5, Slow: 34})
	})
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	require.NotPanics(t, func() {
		_, err = talib.Compute(KindBOP, Inputs{Open: sequence(5), High: sequence(5), Low: sequence(4), Close: sequence(5)}, Params{Scalar: 1})
	})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestTalib_Unsupported(t *testing.T) {
	_, err := NewTalib().Compute(Kind(42), Inputs{}, Params{})
	require.ErrorIs(t, err, ErrBackendUnavailable)

	_, err = NewTalib().Compute(KindMOM, Inputs{Close: sequence(3)}, Params{Length: 5})
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

// configOf rebuilds the Config of a native calculator
func configOf(t *testing.T, ind Indicator) Config {
	t.Helper()

	cfg := Config{Kind: ind.Kind().String(), Offset: ind.Offset()}
	switch v := ind.(type) {
	case *AO:
		cfg.Fast, cfg.Slow = v.FastPeriod(), v.SlowPeriod()
	case *APO:
		cfg.Fast, cfg.Slow, cfg.Mode = v.FastPeriod(), v.SlowPeriod(), v.MaMode().String()
	case *Bias:
		cfg.Length, cfg.Mode = v.Length(), v.MaMode().String()
	case *BOP:
		cfg.Scalar = v.Scalar()
	case *MOM:
		cfg.Length = v.Length()
	case *ROC:
		cfg.Length, cfg.Scalar = v.Length(), v.Scalar()
	case *PPO:
		cfg.Fast, cfg.Slow, cfg.Mode, cfg.Scalar = v.FastPeriod(), v.SlowPeriod(), v.MaMode().String(), v.Scalar()
	default:
		t.Fatalf("unexpected indicator %T", ind)
	}
	return cfg
}
