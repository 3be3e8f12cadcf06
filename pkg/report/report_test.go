package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRow(t *testing.T) {
	row := NewRow("BTCUSDT", "1h", "MOM_2", []float64{0, 0, 1, 2, -1}, 100)

	assert.Equal(t, 2, row.Summary.Warmup)
	assert.Equal(t, 3, row.Summary.Count)
	assert.LessOrEqual(t, row.Interval.Lower, row.Interval.Upper)
	assert.GreaterOrEqual(t, row.Interval.Lower, -1.0)
	assert.LessOrEqual(t, row.Interval.Upper, 2.0)
}

func TestTable(t *testing.T) {
	rows := []Row{
		NewRow("BTCUSDT", "1h", "AO_5_34", []float64{0, 1.25, -0.5}, 10),
		NewRow("ETHUSDT", "4h", "BOP", []float64{0.5, -0.5}, 10),
	}

	var buf bytes.Buffer
	Table(&buf, rows)

	out := buf.String()
	assert.Contains(t, out, "AO_5_34")
	assert.Contains(t, out, "ETHUSDT")
	assert.Contains(t, out, "-0.5000")
	assert.Contains(t, out, "50.0 %")
}

func TestHistogram(t *testing.T) {
	var buf bytes.Buffer

	row := NewRow("BTCUSDT", "1h", "ROC_1", []float64{0, 1, 2, 2, 3}, 10)
	require.NoError(t, Histogram(&buf, row, 3))
	assert.Contains(t, buf.String(), "ROC_1")

	buf.Reset()
	empty := NewRow("BTCUSDT", "1h", "ROC_1", []float64{0, 0}, 10)
	require.NoError(t, Histogram(&buf, empty, 3))
	assert.Equal(t, "ROC_1: no values\n", buf.String())
}

func TestSeries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Series(&buf, []float64{0, 1.5}))
	assert.Equal(t, "0\t0\n1\t1.5\n", buf.String())
}
