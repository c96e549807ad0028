package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)

// setup points the commands at a fresh event log and a missing config, and
// freezes the clock.
func setup(t *testing.T) (events string, base []string) {
	t.Helper()
	dir := t.TempDir()
	events = filepath.Join(dir, "events.txt")

	prev := now
	now = func() time.Time { return fixedNow }
	t.Cleanup(func() { now = prev })

	return events, []string{"--events", events, "--config", filepath.Join(dir, "missing.yaml")}
}

func run(t *testing.T, base []string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(append([]string{}, base...), args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeLog(t *testing.T, path string, lines ...string) {
	t.Helper()
	var b bytes.Buffer
	for _, l := range lines {
		b.WriteString(l + "\n")
	}
	require.NoError(t, os.WriteFile(path, b.Bytes(), 0644))
}

func TestRootCommandTree(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"add", "rm", "list", "report", "layout", "tui"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
	for _, flag := range []string{"verbose", "format", "config", "events"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestInvalidFormat(t *testing.T) {
	_, base := setup(t)

	_, err := run(t, base, "--format", "xml", "list")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestAddThenList(t *testing.T) {
	_, base := setup(t)

	out, err := run(t, base, "add", "Standup", "@work", "#daily", "--start", "09:00", "--duration", "30m")
	require.NoError(t, err)
	assert.Contains(t, out, "Added 0h30m 2024-01-15 09:00 -> 09:30")
	assert.Contains(t, out, "Standup @work #daily")

	out, err = run(t, base, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Mon 2024-01-15")
	assert.Contains(t, out, "09:00-09:30  Standup  @work #daily  [")
}

func TestListCalendarFilter(t *testing.T) {
	events, base := setup(t)
	writeLog(t, events,
		"2024-01-15T09:00:00Z 2024-01-15T09:30:00Z|Standup @Work",
		"2024-01-15T12:00:00Z 2024-01-15T13:00:00Z|Lunch",
		"2024-01-15T18:00:00Z 2024-01-15T19:00:00Z|Climbing @gym",
	)

	out, err := run(t, base, "list", "--calendar", "work")
	require.NoError(t, err)
	assert.Contains(t, out, "Standup")
	assert.NotContains(t, out, "Lunch")
	assert.NotContains(t, out, "Climbing")

	out, err = run(t, base, "list", "--calendar", "@GYM", "--calendar", "default")
	require.NoError(t, err)
	assert.NotContains(t, out, "Standup")
	assert.Contains(t, out, "Lunch")
	assert.Contains(t, out, "Climbing")

	out, err = run(t, base, "list", "--calendar", "nope")
	require.NoError(t, err)
	assert.Contains(t, out, "No events between 2024-01-15 and 2024-01-15.")
}

func TestListEmptyJSONHasEmptyData(t *testing.T) {
	_, base := setup(t)

	out, err := run(t, base, "--format", "json", "list")
	require.NoError(t, err)
	assert.Contains(t, out, `"data": []`)

	var resp struct {
		Data []dayView
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
}

func TestRemoveKeepsCommentsAndUnparsedLines(t *testing.T) {
	events, base := setup(t)
	writeLog(t, events,
		"# planning notes",
		"2024-01-15T09:00:00Z 2024-01-15T09:30:00Z 11111111-1111-1111-1111-111111111111|Standup",
		"half-written line",
		"2024-01-15T12:00:00Z 2024-01-15T13:00:00Z 22222222-2222-2222-2222-222222222222|Lunch",
	)

	out, err := run(t, base, "rm", "11111111")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed [11111111] Standup")

	data, err := os.ReadFile(events)
	require.NoError(t, err)
	assert.Equal(t,
		"# planning notes\n"+
			"half-written line\n"+
			"2024-01-15T12:00:00Z 2024-01-15T13:00:00Z 22222222-2222-2222-2222-222222222222|Lunch\n",
		string(data))
}

func TestTUIRejectsBadDate(t *testing.T) {
	_, base := setup(t)

	_, err := run(t, base, "tui", "--date", "17/01/2024")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestAddRejectsOverlap(t *testing.T) {
	_, base := setup(t)

	_, err := run(t, base, "add", "Standup", "--start", "09:00", "--duration", "30m")
	require.NoError(t, err)

	_, err = run(t, base, "add", "Review", "--start", "09:15", "--duration", "30m")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), `overlaps "Standup"`)

	_, err = run(t, base, "add", "Review", "--start", "09:15", "--duration", "30m", "--force")
	require.NoError(t, err)
}

func TestAddOverlapJSONError(t *testing.T) {
	_, base := setup(t)

	_, err := run(t, base, "add", "Standup", "--start", "09:00")
	require.NoError(t, err)

	out, err := run(t, base, "--format", "json", "add", "Review", "--start", "09:30")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ExitFailure, resp.Error.Code)
}

func TestAddEndBeforeStart(t *testing.T) {
	_, base := setup(t)

	_, err := run(t, base, "add", "Backwards", "--start", "10:00", "--end", "09:00")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRemove(t *testing.T) {
	_, base := setup(t)

	out, err := run(t, base, "--format", "json", "add", "Dentist", "@personal", "--start", "2024-01-15 14:00")
	require.NoError(t, err)

	var resp struct {
		Status string
		Data   eventView
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "Dentist", resp.Data.Title)
	assert.Equal(t, "personal", resp.Data.Calendar)

	out, err = run(t, base, "rm", resp.Data.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "Removed ["+resp.Data.ID[:8]+"] Dentist @personal")

	out, err = run(t, base, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No events between 2024-01-15 and 2024-01-15.")

	_, err = run(t, base, "rm", resp.Data.ID[:8])
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestReportJSON(t *testing.T) {
	events, base := setup(t)
	writeLog(t, events,
		"2024-01-15T09:00:00Z 2024-01-15T10:30:00Z|Standup @work #daily",
		"2024-01-15T13:00:00Z 2024-01-15T14:00:00Z|Gym #health",
		"2024-01-16T13:00:00Z 2024-01-16T14:00:00Z|Tomorrow",
	)

	out, err := run(t, base, "--format", "json", "report", "--from", "2024-01-15")
	require.NoError(t, err)

	var resp struct {
		Data reportView
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 150, resp.Data.Total.Minutes)
	assert.Equal(t, "2h30m", resp.Data.Total.Duration)
	assert.Equal(t, []durationItem{
		{Name: "default", Duration: "1h00m", Minutes: 60},
		{Name: "work", Duration: "1h30m", Minutes: 90},
	}, resp.Data.Calendars)
	assert.Equal(t, []durationItem{
		{Name: "daily", Duration: "1h30m", Minutes: 90},
		{Name: "health", Duration: "1h00m", Minutes: 60},
	}, resp.Data.Tags)
}

func TestSortedItemsIgnoreCase(t *testing.T) {
	items := sortedItems(map[string]time.Duration{
		"work":  time.Hour,
		"Admin": time.Hour,
		"admin": 2 * time.Hour,
		"Zoo":   time.Minute,
		"beta":  time.Minute,
	})

	var names []string
	for _, it := range items {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"Admin", "admin", "beta", "work", "Zoo"}, names)
	assert.Equal(t, 120, items[1].Minutes)
}

func TestLayoutText(t *testing.T) {
	events, base := setup(t)
	writeLog(t, events,
		"2024-01-15T06:00:00Z 2024-01-15T12:00:00Z|Deep work @work",
		"2024-01-15T09:00:00Z 2024-01-15T12:00:00Z|Review #code @work",
	)

	out, err := run(t, base, "layout", "--date", "2024-01-15", "--tz", "UTC")
	require.NoError(t, err)
	assert.Equal(t,
		"06:00-12:00  top  25.0%  height  25.0%  column 1/2  Deep work\n"+
			"09:00-12:00  top  37.5%  height  12.5%  column 2/2  Review\n",
		out)
}

func TestLayoutJSONGolden(t *testing.T) {
	events, base := setup(t)
	writeLog(t, events,
		"2024-01-15T06:00:00Z 2024-01-15T12:00:00Z 11111111-1111-1111-1111-111111111111|Deep work @work",
		"2024-01-15T09:00:00Z 2024-01-15T12:00:00Z 22222222-2222-2222-2222-222222222222|Review #code @work",
		"2024-01-15T18:00:00Z 2024-01-15T21:00:00Z 33333333-3333-3333-3333-333333333333|Dinner",
		"2024-01-15T21:00:00Z 2024-01-16T03:00:00Z 44444444-4444-4444-4444-444444444444|Night shift @ops",
		"2024-01-16T10:00:00Z 2024-01-16T11:00:00Z 55555555-5555-5555-5555-555555555555|Tomorrow",
	)

	out, err := run(t, base, "--format", "json", "layout", "--date", "2024-01-15", "--tz", "UTC")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "layout_day", []byte(out))
}

func TestLayoutInvalidZone(t *testing.T) {
	_, base := setup(t)

	_, err := run(t, base, "layout", "--tz", "Mars/Olympus")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRangeFlagsResolve(t *testing.T) {
	wednesday := time.Date(2024, 1, 17, 15, 30, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name     string
		flags    rangeFlags
		first    time.Weekday
		wantFrom time.Time
		wantTo   time.Time
		wantErr  bool
	}{
		{name: "today", wantFrom: day(17), wantTo: day(18)},
		{name: "week from monday", flags: rangeFlags{week: true}, first: time.Monday, wantFrom: day(15), wantTo: day(22)},
		{name: "week from sunday", flags: rangeFlags{week: true}, first: time.Sunday, wantFrom: day(14), wantTo: day(21)},
		{name: "last week", flags: rangeFlags{lastWeek: true}, first: time.Monday, wantFrom: day(8), wantTo: day(15)},
		{name: "explicit", flags: rangeFlags{from: "2024-01-10", to: "2024-01-12"}, wantFrom: day(10), wantTo: day(13)},
		{name: "both weeks", flags: rangeFlags{week: true, lastWeek: true}, wantErr: true},
		{name: "week and from", flags: rangeFlags{week: true, from: "2024-01-10"}, wantErr: true},
		{name: "to before from", flags: rangeFlags{from: "2024-01-12", to: "2024-01-10"}, wantErr: true},
		{name: "bad date", flags: rangeFlags{from: "yesterday"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := tt.flags.resolve(wednesday, tt.first)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.wantFrom.Equal(from), "from = %v", from)
			assert.True(t, tt.wantTo.Equal(to), "to = %v", to)
		})
	}
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "bad", assert.AnError)))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h00m", FormatDuration(0))
	assert.Equal(t, "1h05m", FormatDuration(65*time.Minute))
	assert.Equal(t, "26h00m", FormatDuration(26*time.Hour))
}
