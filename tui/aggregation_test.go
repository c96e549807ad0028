package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lazycal/config"
	"lazycal/storage"
	"lazycal/tui/components"
)

func TestPeriod(t *testing.T) {
	tests := []struct {
		view     components.ViewMode
		wantFrom time.Time
		wantTo   time.Time
	}{
		{components.ViewMonth, at(1, 0, 0), time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{components.ViewWeek, at(15, 0, 0), at(22, 0, 0)},
		{components.ViewDay, at(17, 0, 0), at(18, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.view.String(), func(t *testing.T) {
			from, to := Period(tt.view, clock, time.Monday)
			assert.True(t, tt.wantFrom.Equal(from), "from = %v", from)
			assert.True(t, tt.wantTo.Equal(to), "to = %v", to)
		})
	}
}

func TestShift(t *testing.T) {
	jan31 := at(31, 0, 0)

	assert.True(t, Shift(components.ViewMonth, jan31, 1).Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, Shift(components.ViewMonth, jan31, -1).Equal(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, Shift(components.ViewWeek, jan31, 1).Equal(time.Date(2024, 2, 7, 0, 0, 0, 0, time.UTC)))
	assert.True(t, Shift(components.ViewDay, jan31, -1).Equal(at(30, 0, 0)))
}

func TestPeriodTitle(t *testing.T) {
	assert.Equal(t, "January 2024", PeriodTitle(components.ViewMonth, at(1, 0, 0), at(31, 0, 0)))
	assert.Equal(t, "Jan 15 - Jan 21 2024", PeriodTitle(components.ViewWeek, at(15, 0, 0), at(22, 0, 0)))
	assert.Equal(t, "Wednesday, Jan 17 2024", PeriodTitle(components.ViewDay, at(17, 0, 0), at(18, 0, 0)))
}

func TestCalendarTotals(t *testing.T) {
	events := []storage.Event{
		event(at(16, 23, 0), at(17, 1, 0), "Night @ops"),
		event(at(17, 9, 0), at(17, 10, 30), "Standup @work"),
		event(at(17, 13, 0), at(17, 14, 0), "Lunch"),
		event(at(18, 9, 0), at(18, 10, 0), "Tomorrow @work"),
	}

	totals := CalendarTotals(events, at(17, 0, 0), at(18, 0, 0))
	assert.Equal(t, map[string]time.Duration{
		"ops":                   time.Hour,
		"work":                  90 * time.Minute,
		storage.DefaultCalendar: time.Hour,
	}, totals)
	assert.Equal(t, 210*time.Minute, Scheduled(events, at(17, 0, 0), at(18, 0, 0)))
}

func TestCalendars(t *testing.T) {
	cfg := config.Default()
	cfg.Calendars = []config.Calendar{{Name: "Work", Color: "teal"}, {Name: "travel", Color: "red"}}
	events := []storage.Event{
		event(at(17, 9, 0), at(17, 10, 0), "Standup @work"),
		event(at(17, 11, 0), at(17, 12, 0), "Lunch"),
		event(at(17, 13, 0), at(17, 14, 0), "Climbing @Gym"),
		event(at(17, 15, 0), at(17, 16, 0), "Bouldering @gym"),
	}

	assert.Equal(t, []string{"default", "Gym", "travel", "Work"}, Calendars(cfg, events))
	assert.Empty(t, Calendars(config.Default(), nil))
}

func TestFormatDurationShort(t *testing.T) {
	assert.Equal(t, "45m", FormatDurationShort(45*time.Minute))
	assert.Equal(t, "1h05m", FormatDurationShort(65*time.Minute))
}
