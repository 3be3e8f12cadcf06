package core

import (
	"time"
)

// Dataframe is a column view over a run of candles of one pair
type Dataframe struct {
	Pair string

	Close  Series[float64]
	Open   Series[float64]
	High   Series[float64]
	Low    Series[float64]
	Volume Series[float64]

	Time []time.Time
}

// NewDataframe splits candles into aligned columns. Candles are expected
// oldest first.
func NewDataframe(pair string, candles []Candle) Dataframe {
	df := Dataframe{
		Pair:   pair,
		Close:  make(Series[float64], len(candles)),
		Open:   make(Series[float64], len(candles)),
		High:   make(Series[float64], len(candles)),
		Low:    make(Series[float64], len(candles)),
		Volume: make(Series[float64], len(candles)),
		Time:   make([]time.Time, len(candles)),
	}

	for i, c := range candles {
		df.Close[i] = c.Close
		df.Open[i] = c.Open
		df.High[i] = c.High
		df.Low[i] = c.Low
		df.Volume[i] = c.Volume
		df.Time[i] = c.Time
	}

	return df
}

// Len returns the number of rows
func (df Dataframe) Len() int {
	return len(df.Close)
}

// Sample returns a subset of the dataframe with the last 'positions' elements
func (df Dataframe) Sample(positions int) Dataframe {
	size := len(df.Time)
	start := size - positions

	// Return the entire dataframe if requested sample is larger than dataframe
	if start <= 0 {
		return df
	}

	return Dataframe{
		Pair:   df.Pair,
		Close:  df.Close.LastValues(positions),
		Open:   df.Open.LastValues(positions),
		High:   df.High.LastValues(positions),
		Low:    df.Low.LastValues(positions),
		Volume: df.Volume.LastValues(positions),
		Time:   df.Time[start:],
	}
}
