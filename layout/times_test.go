package layout

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dayStart = time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	dayEnd   = dayStart.AddDate(0, 0, 1)
)

func at(hour, minute int) time.Time {
	return dayStart.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func TestTopPercentByTime(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want float64
	}{
		{"start", at(0, 0), 0},
		{"quarter", at(6, 0), 25},
		{"half", at(12, 0), 50},
		{"end", dayEnd, 100},
		{"before range", at(0, 0).Add(-time.Hour), 0},
		{"after range", dayEnd.Add(time.Millisecond), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TopPercentByTime(tt.t, dayStart, dayEnd), 1e-9)
		})
	}
}

func TestTopPercentByTimeMonotonic(t *testing.T) {
	prev := -1.0
	for m := 0; m <= 24*60; m += 7 {
		p := TopPercentByTime(dayStart.Add(time.Duration(m)*time.Minute), dayStart, dayEnd)
		require.GreaterOrEqual(t, p, prev, "minute %d", m)
		require.GreaterOrEqual(t, p, 0.0)
		require.LessOrEqual(t, p, 100.0)
		prev = p
	}
}

func TestTopPercentByTimeClamps(t *testing.T) {
	for _, delta := range []time.Duration{time.Millisecond, time.Minute, 72 * time.Hour} {
		assert.Equal(t, 0.0, TopPercentByTime(dayStart.Add(-delta), dayStart, dayEnd))
		assert.Equal(t, 100.0, TopPercentByTime(dayEnd.Add(delta), dayStart, dayEnd))
	}
}

func TestTopPercentByTimeZeroSpan(t *testing.T) {
	for _, ts := range []time.Time{dayStart, dayStart.Add(-time.Hour), dayStart.Add(time.Hour)} {
		p := TopPercentByTime(ts, dayStart, dayStart)
		assert.False(t, math.IsNaN(p) || math.IsInf(p, 0))
		assert.Equal(t, 0.0, p)
	}
}

func TestTopPercentByTimeInvertedRangeIsFinite(t *testing.T) {
	p := TopPercentByTime(at(12, 0), dayEnd, dayStart)
	assert.False(t, math.IsNaN(p) || math.IsInf(p, 0))
	assert.GreaterOrEqual(t, p, 0.0)
	assert.LessOrEqual(t, p, 100.0)
}

func TestTopPercentByTimeIgnoresZone(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	assert.Equal(t,
		TopPercentByTime(at(6, 0), dayStart, dayEnd),
		TopPercentByTime(at(6, 0).In(tokyo), dayStart.In(tokyo), dayEnd))
}

func TestTopHeightByTime(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       VerticalPosition
	}{
		{"whole range", dayStart, dayEnd, VerticalPosition{Top: 0, Height: 100}},
		{"morning", at(6, 0), at(12, 0), VerticalPosition{Top: 25, Height: 25}},
		{"zero length", at(12, 0), at(12, 0), VerticalPosition{Top: 50, Height: 0}},
		{"clipped start", at(0, 0).Add(-2 * time.Hour), at(6, 0), VerticalPosition{Top: 0, Height: 25}},
		{"clipped end", at(18, 0), dayEnd.Add(5 * time.Hour), VerticalPosition{Top: 75, Height: 25}},
		{"outside", dayEnd.Add(time.Hour), dayEnd.Add(2 * time.Hour), VerticalPosition{Top: 100, Height: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopHeightByTime(tt.start, tt.end, dayStart, dayEnd)
			assert.InDelta(t, tt.want.Top, got.Top, 1e-9)
			assert.InDelta(t, tt.want.Height, got.Height, 1e-9)
			assert.GreaterOrEqual(t, got.Height, 0.0)
		})
	}
}

func TestTopHeightByTimePure(t *testing.T) {
	first := TopHeightByTime(at(9, 15), at(10, 45), at(8, 0), at(20, 0))
	second := TopHeightByTime(at(9, 15), at(10, 45), at(8, 0), at(20, 0))
	assert.Equal(t, first, second)
}

func TestLeftWidthByTime(t *testing.T) {
	weekStart := dayStart
	weekEnd := weekStart.AddDate(0, 0, 7)

	got := LeftWidthByTime(weekStart.AddDate(0, 0, 1), weekStart.AddDate(0, 0, 3), weekStart, weekEnd)
	assert.InDelta(t, 100.0/7, got.Left, 1e-9)
	assert.InDelta(t, 200.0/7, got.Width, 1e-9)
}

func TestRatioAndLimit(t *testing.T) {
	assert.Equal(t, 50.0, Ratio(200, 100, 100))
	assert.Equal(t, 0.0, Ratio(0, 100, 0))
	assert.Equal(t, 0.0, Ratio(0, 100, 5))
	assert.Equal(t, 0.0, Ratio(1e-320, 1e300, 1e300))

	assert.Equal(t, 5, Limit(5, 0, 10))
	assert.Equal(t, 0, Limit(-3, 0, 10))
	assert.Equal(t, 10, Limit(30, 0, 10))
}
