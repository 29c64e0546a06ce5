package timing

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Tracker records durations per named operation.
type Tracker struct {
	timings map[string][]time.Duration
	mu      sync.RWMutex
	enabled bool
	now     func() time.Time
}

// Span is one in-flight measurement; End records it.
type Span struct {
	tracker   *Tracker
	operation string
	start     time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		timings: make(map[string][]time.Duration),
		enabled: true,
		now:     time.Now,
	}
}

// Start is safe on a nil tracker so callers need not guard optional instrumentation.
func (tt *Tracker) Start(operation string) Span {
	if tt == nil {
		return Span{}
	}
	return Span{tracker: tt, operation: operation, start: tt.now()}
}

func (s Span) End() time.Duration {
	if s.tracker == nil {
		return 0
	}
	duration := s.tracker.now().Sub(s.start)
	s.tracker.record(s.operation, duration)
	return duration
}

func (tt *Tracker) record(operation string, duration time.Duration) {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	if !tt.enabled {
		return
	}
	tt.timings[operation] = append(tt.timings[operation], duration)
}

func (tt *Tracker) Timings(operation string) []time.Duration {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	timings := tt.timings[operation]
	if timings == nil {
		return nil
	}

	result := make([]time.Duration, len(timings))
	copy(result, timings)
	return result
}

func (tt *Tracker) Average(operation string) time.Duration {
	timings := tt.Timings(operation)
	if len(timings) == 0 {
		return 0
	}

	var total time.Duration
	for _, duration := range timings {
		total += duration
	}

	return total / time.Duration(len(timings))
}

// Report renders one line per operation, sorted by name.
func (tt *Tracker) Report() string {
	tt.mu.RLock()
	operations := make([]string, 0, len(tt.timings))
	for operation := range tt.timings {
		operations = append(operations, operation)
	}
	tt.mu.RUnlock()

	if len(operations) == 0 {
		return "No timings recorded"
	}

	sort.Strings(operations)

	var b strings.Builder
	for _, operation := range operations {
		fmt.Fprintf(&b, "%s: %d calls, avg %s\n",
			operation, len(tt.Timings(operation)), tt.Average(operation))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (tt *Tracker) SetEnabled(enabled bool) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.enabled = enabled
}

func (tt *Tracker) Reset(operation string) {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	if operation == "" {
		tt.timings = make(map[string][]time.Duration)
	} else {
		delete(tt.timings, operation)
	}
}
