package clock

import (
	"testing"
	"time"

	"github.com/peterldowns/testy/check"
)

func TestFixedClock(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.FixedZone("x", 3600))
	clk := NewFixed(at)

	check.Equal(t, at.UTC(), clk.Now())
	check.Equal(t, clk.Now(), clk.Now())
}

func TestManualClock(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	clk := NewManual(start)

	check.Equal(t, start, clk.Now())

	clk.Advance(1500 * time.Millisecond)
	check.Equal(t, start.Add(1500*time.Millisecond), clk.Now())

	later := start.Add(time.Hour)
	clk.Set(later)
	check.Equal(t, later, clk.Now())
}

func TestSystemClockIsUTC(t *testing.T) {
	now := NewSystem().Now()
	check.Equal(t, time.UTC, now.Location())
}
