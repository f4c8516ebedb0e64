package agg

// MovingAverage returns the trailing average of series over the given
// window, one output value per input value.
func MovingAverage(series []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}
	out := make([]float64, 0, len(series))
	for i := range series {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		var sum float64
		for _, v := range series[start : i+1] {
			sum += v
		}
		out = append(out, sum/float64(i+1-start))
	}
	return out
}

// GrowthRate is the percentage change from previous to current. A zero
// previous value has no defined growth; nil signals "no comparison" rather
// than 0, which would read as flat.
func GrowthRate(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	g := (current - previous) / previous * 100
	return &g
}
