package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"lazycal/layout"
	"lazycal/logging"
	"lazycal/storage"
)

type placementView struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Calendar string    `json:"calendar"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	layout.Placement
}

type layoutView struct {
	Date   string          `json:"date"`
	From   time.Time       `json:"from"`
	To     time.Time       `json:"to"`
	Events []placementView `json:"events"`
}

// NewLayoutCommand creates the layout command, which prints the geometry the
// day grid would draw.
func NewLayoutCommand(opts *RootOptions) *cobra.Command {
	var date, tz string

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the day-grid placement of a day's events",
		Long: `Print where each event of a day sits in the day grid: top and height as
percentages of the visible hours, left and width as percentages of the column.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.env(cmd)
			if err != nil {
				return err
			}
			return e.fail(e.layout(date, tz))
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "day to lay out, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&tz, "tz", "Local", "IANA time zone the day is taken in")
	return cmd
}

func (e *env) layout(date, tz string) error {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --tz", err)
	}

	day := layout.StartOfDay(now(), loc)
	if date != "" {
		day, err = storage.ParseDate(date, loc)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --date", err)
		}
	}

	events, err := e.readEvents()
	if err != nil {
		return err
	}

	view := dayLayout(events, day, e.cfg.DayView.StartHour, e.cfg.DayView.EndHour)
	e.logger.Debug("laid out day", logging.Range(view.From, view.To), logging.Count(len(view.Events)))

	return e.out.Success(view, func(w io.Writer) {
		if len(view.Events) == 0 {
			writeLine(w, "No events on %s.", view.Date)
			return
		}
		for _, p := range view.Events {
			writeLine(w, "%s-%s  top %5.1f%%  height %5.1f%%  column %d/%d  %s",
				p.Start.In(loc).Format("15:04"),
				p.End.In(loc).Format("15:04"),
				p.Top, p.Height,
				p.Column+1, p.Columns,
				p.Title,
			)
		}
	})
}

// dayLayout places the events touching day (a midnight) into the day grid
// showing hours [startHour, endHour).
func dayLayout(events []storage.Event, day time.Time, startHour, endHour int) layoutView {
	from := day.Add(time.Duration(startHour) * time.Hour)
	to := day.Add(time.Duration(endHour) * time.Hour)

	dayEvents := storage.EventsBetween(events, from, to)
	spans := make([]layout.Span, 0, len(dayEvents))
	for _, ev := range dayEvents {
		piece, ok := layout.PieceOn(ev.Start, ev.End, day)
		if !ok {
			piece = layout.Range{Start: ev.Start, End: ev.End}
		}
		spans = append(spans, layout.Span{Start: piece.Start, End: piece.End})
	}

	view := layoutView{
		Date:   day.Format("2006-01-02"),
		From:   from,
		To:     to,
		Events: []placementView{},
	}
	for i, pl := range layout.Arrange(spans, from, to) {
		ev := dayEvents[i]
		view.Events = append(view.Events, placementView{
			ID:        ev.ID.String(),
			Title:     ev.Title(),
			Calendar:  ev.Calendar(),
			Start:     ev.Start,
			End:       ev.End,
			Placement: pl,
		})
	}
	return view
}
