package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"lazycal/logging"
	"lazycal/storage"
)

// eventView is the JSON shape of an event.
type eventView struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Calendar string    `json:"calendar"`
	Tags     []string  `json:"tags,omitempty"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

func viewOf(e storage.Event) eventView {
	return eventView{
		ID:       e.ID.String(),
		Title:    e.Title(),
		Calendar: e.Calendar(),
		Tags:     e.Tags(),
		Start:    e.Start,
		End:      e.End,
	}
}

// NewAddCommand creates the add command.
func NewAddCommand(opts *RootOptions) *cobra.Command {
	var start, end string
	var duration time.Duration
	var force bool

	cmd := &cobra.Command{
		Use:   "add TEXT...",
		Short: "Add an event",
		Long: `Add an event. #words in the text become tags and the first @word names
the calendar. Times accept RFC3339, "YYYY-MM-DD HH:MM" or HH:MM for today.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.env(cmd)
			if err != nil {
				return err
			}
			return e.fail(e.add(strings.Join(args, " "), start, end, duration, force))
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start time (required)")
	cmd.Flags().StringVar(&end, "end", "", "end time (default start + --duration)")
	cmd.Flags().DurationVar(&duration, "duration", time.Hour, "length when --end is not given")
	cmd.Flags().BoolVar(&force, "force", false, "add even when it overlaps another event")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func (e *env) add(text, start, end string, duration time.Duration, force bool) error {
	if strings.TrimSpace(text) == "" {
		return NewExitError(ExitCommandError, "add requires event text")
	}

	events, err := e.readEvents()
	if err != nil {
		return err
	}

	current := now()
	startTime, err := storage.ParseWhen(start, current)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --start", err)
	}
	endTime := startTime.Add(duration)
	if end != "" {
		// HH:MM ends are on the start's day.
		endTime, err = storage.ParseWhen(end, startTime)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --end", err)
		}
	}
	if !endTime.After(startTime) {
		return NewExitError(ExitCommandError, "end time must be after start time")
	}

	event := storage.Event{
		ID:    uuid.New(),
		Start: storage.ToUTC(startTime),
		End:   storage.ToUTC(endTime),
		Text:  text,
	}

	if other, overlap, ok := storage.CheckOverlap(events, event); ok {
		e.logger.Info("event overlaps", logging.Event(other.ID))
		if !force {
			return NewExitError(ExitFailure, fmt.Sprintf(
				"new event overlaps %q starting at %s for %s (use --force to add anyway)",
				other.Title(),
				other.Start.In(current.Location()).Format("2006-01-02 15:04"),
				FormatDuration(overlap),
			))
		}
	}

	if err := storage.AppendEvent(event, e.events); err != nil {
		return WrapExitError(ExitCommandError, "failed to append event", err)
	}
	e.logger.Debug("added event", logging.Event(event.ID))

	return e.out.Success(viewOf(event), func(w io.Writer) {
		loc := current.Location()
		writeLine(w, "Added %s %s -> %s [%s] %s",
			FormatDuration(event.Duration()),
			event.Start.In(loc).Format("2006-01-02 15:04"),
			event.End.In(loc).Format("15:04"),
			shortID(event),
			text,
		)
	})
}

// NewRemoveCommand creates the rm command.
func NewRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Remove an event by id or unique id prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.env(cmd)
			if err != nil {
				return err
			}
			return e.fail(e.remove(args[0]))
		},
	}
}

func (e *env) remove(id string) error {
	removed, ok, err := storage.RemoveFromLog(e.events, id)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to update event log", err)
	}
	if !ok {
		return NewExitError(ExitFailure, fmt.Sprintf("no single event matches id %q", id))
	}
	e.logger.Debug("removed event", logging.Event(removed.ID))

	return e.out.Success(viewOf(removed), func(w io.Writer) {
		writeLine(w, "Removed [%s] %s", shortID(removed), removed.Text)
	})
}
