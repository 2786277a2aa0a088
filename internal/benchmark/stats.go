package benchmark

import "time"

// Clock returns the current time. time.Now carries a monotonic reading, so
// differences between two calls are immune to wall-clock adjustments.
type Clock func() time.Time

// Mean returns the arithmetic mean of the samples in seconds.
func Mean(samples []time.Duration) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrNoSamples
	}
	var total float64
	for _, s := range samples {
		total += s.Seconds()
	}
	return total / float64(len(samples)), nil
}

// timeIt runs fn once and returns how long it took.
func timeIt(now Clock, fn func() error) (time.Duration, error) {
	start := now()
	err := fn()
	elapsed := now().Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed, err
}
