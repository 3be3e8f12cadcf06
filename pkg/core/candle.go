package core

import (
	"time"
)

// Candle represents a trading candle with OHLCV data
type Candle struct {
	Pair     string
	Time     time.Time
	Open     float64
	Close    float64
	Low      float64
	High     float64
	Volume   float64
	Complete bool
}

// MedianPrice returns (high + low) / 2
func (c Candle) MedianPrice() float64 { return 0.5 * (c.High + c.Low) }
