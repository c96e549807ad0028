package cli

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lazycal/array"
)

type durationItem struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Minutes  int    `json:"minutes"`
}

type reportView struct {
	From      string         `json:"from"`
	To        string         `json:"to"`
	Total     durationItem   `json:"total"`
	Calendars []durationItem `json:"calendars"`
	Tags      []durationItem `json:"tags"`
}

// NewReportCommand creates the report command.
func NewReportCommand(opts *RootOptions) *cobra.Command {
	var r rangeFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show scheduled time per calendar and tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.env(cmd)
			if err != nil {
				return err
			}
			return e.fail(e.report(&r))
		},
	}
	r.register(cmd)
	return cmd
}

func (e *env) report(r *rangeFlags) error {
	events, err := e.readEvents()
	if err != nil {
		return err
	}

	firstWeekday, _ := e.cfg.FirstWeekday()
	from, to, err := r.resolve(now(), firstWeekday)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid range", err)
	}

	summary := Summarize(events, from, to)
	view := reportView{
		From:      from.Format("2006-01-02"),
		To:        to.AddDate(0, 0, -1).Format("2006-01-02"),
		Total:     item("total", summary.Total),
		Calendars: sortedItems(summary.Calendars),
		Tags:      sortedItems(summary.Tags),
	}

	return e.out.Success(view, func(w io.Writer) {
		if summary.Total == 0 {
			writeLine(w, "No events in the selected range.")
			return
		}
		writeLine(w, "Report %s to %s", view.From, view.To)
		writeLine(w, "Calendars:")
		for _, it := range view.Calendars {
			writeLine(w, "- %s: %s", it.Name, it.Duration)
		}
		writeLine(w, "Tags:")
		for _, it := range view.Tags {
			writeLine(w, "- %s: %s", it.Name, it.Duration)
		}
		writeLine(w, "Total: %s", view.Total.Duration)
	})
}

func item(name string, d time.Duration) durationItem {
	return durationItem{Name: name, Duration: FormatDuration(d), Minutes: int(d.Minutes())}
}

// sortedItems orders names case-insensitively but keeps their spelling.
func sortedItems(totals map[string]time.Duration) []durationItem {
	type keyed struct {
		fold string
		item durationItem
	}
	sorted := make([]keyed, 0, len(totals))
	for name, d := range totals {
		sorted = append(sorted, keyed{fold: array.Fold(name), item: item(name, d)})
	}
	slices.SortFunc(sorted, func(a, b keyed) int {
		if c := array.StrAsc(a.fold, b.fold); c != 0 {
			return c
		}
		return strings.Compare(a.item.Name, b.item.Name)
	})

	items := make([]durationItem, len(sorted))
	for i, k := range sorted {
		items[i] = k.item
	}
	return items
}
