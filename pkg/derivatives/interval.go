package derivatives

import "slices"

// KlineInterval is a candlestick interval accepted by the klines endpoint.
type KlineInterval string

const (
	Interval1m  KlineInterval = "1m"
	Interval3m  KlineInterval = "3m"
	Interval5m  KlineInterval = "5m"
	Interval15m KlineInterval = "15m"
	Interval30m KlineInterval = "30m"
	Interval1h  KlineInterval = "1h"
	Interval2h  KlineInterval = "2h"
	Interval4h  KlineInterval = "4h"
	Interval6h  KlineInterval = "6h"
	Interval8h  KlineInterval = "8h"
	Interval12h KlineInterval = "12h"
	Interval1d  KlineInterval = "1d"
	Interval3d  KlineInterval = "3d"
	Interval1w  KlineInterval = "1w"
	Interval1M  KlineInterval = "1M"
)

var klineIntervals = []KlineInterval{
	Interval1m, Interval3m, Interval5m, Interval15m, Interval30m,
	Interval1h, Interval2h, Interval4h, Interval6h, Interval8h, Interval12h,
	Interval1d, Interval3d, Interval1w, Interval1M,
}

// KlineIntervals returns every supported interval from shortest to longest.
func KlineIntervals() []KlineInterval {
	return slices.Clone(klineIntervals)
}

func (i KlineInterval) String() string {
	return string(i)
}

// Valid reports whether i is a supported interval. Intervals are case sensitive: "1m" is a
// minute and "1M" a month.
func (i KlineInterval) Valid() bool {
	return slices.Contains(klineIntervals, i)
}
