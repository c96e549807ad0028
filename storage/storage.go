package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"lazycal/array"
)

const PathEnvVar = "LAZYCAL_PATH"

// DefaultCalendar is the calendar of events whose text names none.
const DefaultCalendar = "default"

// Event is a calendar event stored in the log.
type Event struct {
	ID    uuid.UUID
	Start time.Time
	End   time.Time
	Text  string
}

// Duration returns the length of the event.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Tags extracts all #tag tokens from the event text.
func (e Event) Tags() []string {
	return tokens(e.Text, "#")
}

// Calendar returns the first @calendar token of the text, or DefaultCalendar.
func (e Event) Calendar() string {
	if cals := tokens(e.Text, "@"); len(cals) > 0 {
		return cals[0]
	}
	return DefaultCalendar
}

// Title returns the event text without #tag and @calendar tokens.
func (e Event) Title() string {
	var words []string
	for _, word := range strings.Fields(e.Text) {
		if isToken(word, "#") || isToken(word, "@") {
			continue
		}
		words = append(words, word)
	}
	return strings.Join(words, " ")
}

// Overlaps reports whether e and other share any instant.
func (e Event) Overlaps(other Event) bool {
	return e.Start.Before(other.End) && other.Start.Before(e.End)
}

func tokens(text, prefix string) []string {
	var out []string
	for _, word := range strings.Fields(text) {
		if isToken(word, prefix) {
			out = append(out, word[len(prefix):])
		}
	}
	return out
}

func isToken(word, prefix string) bool {
	return strings.HasPrefix(word, prefix) && len(word) > len(prefix)
}

// DefaultPath returns the log path from LAZYCAL_PATH, or ~/.lazycal/events.txt.
func DefaultPath() string {
	if v := os.Getenv(PathEnvVar); v != "" {
		return filepath.Clean(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".lazycal", "events.txt")
	}
	return filepath.Join(home, ".lazycal", "events.txt")
}

// FormatEvent formats an event as a log line: START END ID|text.
func FormatEvent(e Event) string {
	return fmt.Sprintf("%s %s %s|%s",
		e.Start.UTC().Format(time.RFC3339),
		e.End.UTC().Format(time.RFC3339),
		e.ID,
		strings.TrimSpace(e.Text),
	)
}

// ParseEvent parses a single log line. Lines written without an ID get one
// derived from the line itself, so it stays the same across reads.
func ParseEvent(raw string) (Event, error) {
	head, text, ok := strings.Cut(raw, "|")
	if !ok {
		return Event{}, fmt.Errorf("event must contain '|' separator")
	}

	fields := strings.Fields(head)
	if len(fields) != 2 && len(fields) != 3 {
		return Event{}, fmt.Errorf("event must have start, end and optional id columns")
	}

	start, err := time.Parse(time.RFC3339, fields[0])
	if err != nil {
		return Event{}, fmt.Errorf("invalid start time: %w", err)
	}
	end, err := time.Parse(time.RFC3339, fields[1])
	if err != nil {
		return Event{}, fmt.Errorf("invalid end time: %w", err)
	}
	if end.Before(start) {
		return Event{}, fmt.Errorf("end time %s is before start time %s", fields[1], fields[0])
	}

	var id uuid.UUID
	if len(fields) == 3 {
		id, err = uuid.Parse(fields[2])
		if err != nil {
			return Event{}, fmt.Errorf("invalid id: %w", err)
		}
	} else {
		id = uuid.NewSHA1(uuid.NameSpaceURL, []byte(strings.TrimSpace(raw)))
	}

	return Event{
		ID:    id,
		Start: start.UTC(),
		End:   end.UTC(),
		Text:  strings.TrimSpace(text),
	}, nil
}

func compareStart(a, b time.Time) int {
	return a.Compare(b)
}

func eventStart(e Event) time.Time {
	return e.Start
}

// InsertSorted inserts e into events, which must be sorted by start time.
func InsertSorted(events []Event, e Event) []Event {
	return array.InsertFunc(events, e, eventStart, compareStart)
}

// ReadEvents reads all events from the log file, sorted by start time.
// Empty lines and lines starting with # are skipped, as are malformed lines.
func ReadEvents(path string) ([]Event, error) {
	if path == "" {
		path = DefaultPath()
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Event{}, nil
		}
		return nil, fmt.Errorf("failed to read event log: %w", err)
	}

	events := []Event{}
	for _, line := range strings.Split(string(content), "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}

		event, err := ParseEvent(stripped)
		if err != nil {
			continue
		}
		events = InsertSorted(events, event)
	}

	return events, nil
}

// WriteEvents replaces the log file with events.
func WriteEvents(events []Event, path string) error {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	var b strings.Builder
	for _, e := range events {
		b.WriteString(FormatEvent(e))
		b.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

// AppendEvent appends a single event to the log file.
func AppendEvent(e Event, path string) error {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open event log: %w", err)
	}
	defer file.Close()

	_, err = file.WriteString(FormatEvent(e) + "\n")
	return err
}

// EventsBetween returns the events of a start-sorted slice that overlap
// [from, to). Zero-length events count when they fall inside the range.
func EventsBetween(events []Event, from, to time.Time) []Event {
	// Nothing starting at or after `to` can overlap; find that cut first.
	cut := array.InsertionPoint(array.BSearchFunc(events, to, eventStart, func(start, to time.Time) int {
		if start.Before(to) {
			return -1
		}
		return 1
	}))

	var out []Event
	for _, e := range events[:cut] {
		if e.End.After(from) || (e.Start.Equal(e.End) && !e.Start.Before(from)) {
			out = append(out, e)
		}
	}
	return out
}

// FilterCalendars returns the events whose calendar keep accepts, in their
// original order.
func FilterCalendars(events []Event, keep func(calendar string) bool) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if keep(e.Calendar()) {
			out = append(out, e)
		}
	}
	return out
}

// FindByID returns the index of the event with the given id or -1.
// A unique prefix of the id is accepted.
func FindByID(events []Event, id string) int {
	if id == "" {
		return -1
	}
	found := -1
	for i, e := range events {
		if !strings.HasPrefix(e.ID.String(), strings.ToLower(id)) {
			continue
		}
		if found != -1 {
			return -1
		}
		found = i
	}
	return found
}

// RemoveFromLog deletes the line of the event matching id, as FindByID
// locates it, from the log at path. Every other line is written back as it
// was, comments and lines that do not parse included.
func RemoveFromLog(path, id string) (Event, bool, error) {
	if path == "" {
		path = DefaultPath()
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Event{}, false, nil
		}
		return Event{}, false, fmt.Errorf("failed to read event log: %w", err)
	}

	lines := strings.Split(string(content), "\n")
	var events []Event
	var lineOf []int
	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}
		if event, err := ParseEvent(stripped); err == nil {
			events = append(events, event)
			lineOf = append(lineOf, i)
		}
	}

	idx := FindByID(events, id)
	if idx == -1 {
		return Event{}, false, nil
	}
	line := lineOf[idx]
	kept := append(lines[:line:line], lines[line+1:]...)

	if err := os.WriteFile(path, []byte(strings.Join(kept, "\n")), 0644); err != nil {
		return Event{}, false, fmt.Errorf("failed to write event log: %w", err)
	}
	return events[idx], true, nil
}

// CheckOverlap returns the first event that overlaps candidate and the length
// of the overlap.
func CheckOverlap(events []Event, candidate Event) (Event, time.Duration, bool) {
	for _, existing := range EventsBetween(events, candidate.Start, candidate.End) {
		if !candidate.Overlaps(existing) {
			continue
		}
		overlapStart := candidate.Start
		if existing.Start.After(overlapStart) {
			overlapStart = existing.Start
		}
		overlapEnd := candidate.End
		if existing.End.Before(overlapEnd) {
			overlapEnd = existing.End
		}
		if d := overlapEnd.Sub(overlapStart); d > 0 {
			return existing, d, true
		}
	}
	return Event{}, 0, false
}

// ClampDuration returns how much of e falls inside [start, end).
func ClampDuration(e Event, start, end time.Time) time.Duration {
	latestStart := e.Start
	if start.After(latestStart) {
		latestStart = start
	}
	earliestEnd := e.End
	if end.Before(earliestEnd) {
		earliestEnd = end
	}
	if !earliestEnd.After(latestStart) {
		return 0
	}
	return earliestEnd.Sub(latestStart)
}
