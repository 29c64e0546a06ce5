package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fakeClock(steps ...time.Duration) func() time.Time {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	i := 0
	return func() time.Time {
		t := base
		if i < len(steps) {
			t = base.Add(steps[i])
		}
		i++
		return t
	}
}

func TestSpanRecordsDuration(t *testing.T) {
	tracker := NewTracker()
	tracker.now = fakeClock(0, 10*time.Millisecond, 0, 30*time.Millisecond)

	tracker.Start("search").End()
	tracker.Start("search").End()

	assert.Equal(t, []time.Duration{10 * time.Millisecond, 30 * time.Millisecond}, tracker.Timings("search"))
	assert.Equal(t, 20*time.Millisecond, tracker.Average("search"))
	assert.Equal(t, time.Duration(0), tracker.Average("insert"))
}

func TestReport(t *testing.T) {
	tracker := NewTracker()
	assert.Equal(t, "No timings recorded", tracker.Report())

	tracker.now = fakeClock(0, 2*time.Millisecond, 0, 4*time.Millisecond)
	tracker.Start("store.search").End()
	tracker.Start("list.refresh").End()

	assert.Equal(t, "list.refresh: 1 calls, avg 4ms\nstore.search: 1 calls, avg 2ms", tracker.Report())
}

func TestDisabledAndReset(t *testing.T) {
	tracker := NewTracker()
	tracker.SetEnabled(false)
	tracker.Start("search").End()
	assert.Nil(t, tracker.Timings("search"))

	tracker.SetEnabled(true)
	tracker.Start("search").End()
	tracker.Start("insert").End()
	tracker.Reset("search")
	assert.Nil(t, tracker.Timings("search"))
	assert.Len(t, tracker.Timings("insert"), 1)

	tracker.Reset("")
	assert.Nil(t, tracker.Timings("insert"))
}

func TestNilTrackerIsSafe(t *testing.T) {
	var tracker *Tracker
	assert.NotPanics(t, func() {
		tracker.Start("anything").End()
	})
}
