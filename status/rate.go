package status

import (
	"math"
	"sync/atomic"
	"time"
)

// RateSmoothing is the weight of the newest sample in Rate's moving average
const RateSmoothing = 0.25

// Rate is an exponentially smoothed events-per-second gauge
// Zero value is ready to use
type Rate struct {
	bits atomic.Uint64
}

// Observe folds count events over elapsed into the average and returns it
// Non-positive elapsed is ignored
func (r *Rate) Observe(count int64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return r.Get()
	}
	sample := float64(count) / elapsed.Seconds()
	for {
		old := r.bits.Load()
		prev := math.Float64frombits(old)
		next := sample
		if old != 0 {
			next = prev + RateSmoothing*(sample-prev)
		}
		if r.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// Get returns the current average
func (r *Rate) Get() float64 {
	return math.Float64frombits(r.bits.Load())
}

// Reset clears the average
func (r *Rate) Reset() {
	r.bits.Store(0)
}
