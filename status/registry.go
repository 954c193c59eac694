// Package status holds lock-free counters and rates describing a running maze.
package status

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dustin/go-humanize"
)

// Metric names recorded while a maze evolves
const (
	Steps    = "steps"  // Origin Shift steps attempted
	Moves    = "moves"  // Steps that moved the origin
	NoOps    = "noops"  // Steps absorbed at the grid edge
	Resets   = "resets" // Returns to the seed tree
	Frames   = "frames" // Frames rendered
	StepRate = "steps/s"
)

// Sample is one metric value captured by Snapshot
type Sample struct {
	Name  string
	Value float64
	// Rate marks a smoothed per-second gauge rather than a counter
	Rate bool
}

func (s Sample) String() string {
	if s.Rate {
		return s.Name + "=" + humanize.CommafWithDigits(s.Value, 1)
	}
	return s.Name + "=" + humanize.Comma(int64(s.Value))
}

// Registry is the metrics facade
// Callers cache metric pointers once; hot loops write the atomics directly
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
	rates    map[string]*Rate
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]*atomic.Int64),
		rates:    make(map[string]*Rate),
	}
}

// Counter returns the named counter, registering it on first use
func (r *Registry) Counter(name string) *atomic.Int64 {
	return lookup(r, r.counters, name)
}

// Rate returns the named rate gauge, registering it on first use
func (r *Registry) Rate(name string) *Rate {
	return lookup(r, r.rates, name)
}

func lookup[T any](r *Registry, items map[string]*T, name string) *T {
	r.mu.RLock()
	ptr, ok := items[name]
	r.mu.RUnlock()
	if ok {
		return ptr
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if ptr, ok := items[name]; ok {
		return ptr
	}
	ptr = new(T)
	items[name] = ptr
	return ptr
}

// RecordStep counts one step and whether it moved the origin
func (r *Registry) RecordStep(moved bool) {
	r.Counter(Steps).Add(1)
	if moved {
		r.Counter(Moves).Add(1)
	} else {
		r.Counter(NoOps).Add(1)
	}
}

// Snapshot returns counters then rates, each sorted by name
func (r *Registry) Snapshot() []Sample {
	r.mu.RLock()
	defer r.mu.RUnlock()

	samples := make([]Sample, 0, len(r.counters)+len(r.rates))
	for name, v := range r.counters {
		samples = append(samples, Sample{Name: name, Value: float64(v.Load())})
	}
	for name, v := range r.rates {
		samples = append(samples, Sample{Name: name, Value: v.Get(), Rate: true})
	}
	sort.Slice(samples, func(i, j int) bool {
		if samples[i].Rate != samples[j].Rate {
			return !samples[i].Rate
		}
		return samples[i].Name < samples[j].Name
	})
	return samples
}

// String renders the snapshot as key=value pairs
func (r *Registry) String() string {
	samples := r.Snapshot()
	parts := make([]string, len(samples))
	for i, s := range samples {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}
