package cli

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lazycal/array"
	"lazycal/logging"
	"lazycal/storage"
)

type dayView struct {
	Date   string      `json:"date"`
	Events []eventView `json:"events"`
}

// NewListCommand creates the list command: an agenda grouped by day.
func NewListCommand(opts *RootOptions) *cobra.Command {
	var r rangeFlags
	var calendars []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the agenda for a range of days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.env(cmd)
			if err != nil {
				return err
			}
			return e.fail(e.list(&r, calendars))
		},
	}
	r.register(cmd)
	cmd.Flags().StringSliceVar(&calendars, "calendar", nil, "only these calendars, ignoring case (repeatable)")
	return cmd
}

func (e *env) list(r *rangeFlags, calendars []string) error {
	events, err := e.readEvents()
	if err != nil {
		return err
	}
	if len(calendars) > 0 {
		events = onlyCalendars(events, calendars)
	}

	current := now()
	firstWeekday, _ := e.cfg.FirstWeekday()
	from, to, err := r.resolve(current, firstWeekday)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid range", err)
	}
	e.logger.Debug("listing", logging.Range(from, to))

	days := agenda(events, from, to)
	return e.out.Success(days, func(w io.Writer) {
		if len(days) == 0 {
			writeLine(w, "No events between %s and %s.", from.Format("2006-01-02"), to.AddDate(0, 0, -1).Format("2006-01-02"))
			return
		}
		loc := current.Location()
		for i, d := range days {
			if i > 0 {
				writeLine(w, "")
			}
			day, _ := time.ParseInLocation("2006-01-02", d.Date, loc)
			writeLine(w, "%s %s", day.Format("Mon"), d.Date)
			for _, ev := range d.Events {
				writeLine(w, "  %s-%s  %s%s  [%s]",
					ev.Start.In(loc).Format("15:04"),
					ev.End.In(loc).Format("15:04"),
					ev.Title,
					decorations(ev),
					ev.ID[:8],
				)
			}
		}
	})
}

// agenda groups the events overlapping [from, to) by local day, skipping
// empty days. An event spanning midnight shows up on every day it touches.
func agenda(events []storage.Event, from, to time.Time) []dayView {
	days := []dayView{}
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		next := day.AddDate(0, 0, 1)
		dayEvents := storage.EventsBetween(events, day, next)
		if len(dayEvents) == 0 {
			continue
		}
		v := dayView{Date: day.Format("2006-01-02")}
		for _, ev := range dayEvents {
			v.Events = append(v.Events, viewOf(ev))
		}
		days = append(days, v)
	}
	return days
}

// onlyCalendars keeps the events of the named calendars, ignoring case.
func onlyCalendars(events []storage.Event, names []string) []storage.Event {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[array.Fold(strings.TrimPrefix(n, "@"))] = true
	}
	return storage.FilterCalendars(events, func(calendar string) bool {
		return wanted[array.Fold(calendar)]
	})
}

func decorations(v eventView) string {
	var parts []string
	if v.Calendar != storage.DefaultCalendar {
		parts = append(parts, "@"+v.Calendar)
	}
	tags := slices.Clone(v.Tags)
	slices.SortFunc(tags, array.StrAscIgnoreCase)
	for _, t := range tags {
		parts = append(parts, "#"+t)
	}
	if len(parts) == 0 {
		return ""
	}
	return "  " + strings.Join(parts, " ")
}

