package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"lazycal/config"
	"lazycal/layout"
	"lazycal/logging"
	"lazycal/storage"
)

// RootOptions holds the global flags shared by every command.
type RootOptions struct {
	Verbose    bool
	Format     string // "text" or "json"
	ConfigPath string
	EventsPath string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// now is replaced in tests.
var now = storage.LocalNow

// NewRootCommand creates the lazycal command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "lazycal",
		Short:         "A calendar for the terminal",
		Long:          "lazycal keeps events in a plain text log and shows them in month, week and day grids.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log debug output to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default $"+config.PathEnvVar+" or ~/.lazycal/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.EventsPath, "events", "", "event log (default $"+storage.PathEnvVar+" or ~/.lazycal/events.txt)")

	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewLayoutCommand(opts))
	cmd.AddCommand(NewTUICommand(opts))

	return cmd
}

// env is what a command needs after the global flags are resolved.
type env struct {
	cfg    config.Config
	logger *slog.Logger
	out    *OutputFormatter
	events string
}

func (o *RootOptions) env(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	return &env{
		cfg:    cfg,
		logger: logging.WithOperation(logging.New(cmd.ErrOrStderr(), level), cmd.Name()),
		out:    &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()},
		events: o.EventsPath,
	}, nil
}

func (e *env) readEvents() ([]storage.Event, error) {
	events, err := storage.ReadEvents(e.events)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to read events", err)
	}
	e.logger.Debug("read events", logging.Count(len(events)))
	return events, nil
}

// fail reports err through the formatter and returns it for cobra.
func (e *env) fail(err error) error {
	if err == nil {
		return nil
	}
	if ferr := e.out.Error(err); ferr != nil {
		e.logger.Error("failed to write error", logging.Err(ferr))
	}
	return err
}

// FormatDuration formats a duration as "XhYYm".
func FormatDuration(d time.Duration) string {
	totalMinutes := int(d.Minutes())
	return fmt.Sprintf("%dh%02dm", totalMinutes/60, totalMinutes%60)
}

// Summary is the time spent per calendar and per tag within a range.
type Summary struct {
	Total     time.Duration            `json:"total"`
	Calendars map[string]time.Duration `json:"calendars"`
	Tags      map[string]time.Duration `json:"tags"`
}

// Summarize adds up the parts of events that fall inside [start, end).
func Summarize(events []storage.Event, start, end time.Time) Summary {
	s := Summary{
		Calendars: make(map[string]time.Duration),
		Tags:      make(map[string]time.Duration),
	}
	for _, e := range storage.EventsBetween(events, start, end) {
		chunk := storage.ClampDuration(e, start, end)
		if chunk <= 0 {
			continue
		}
		s.Total += chunk
		s.Calendars[e.Calendar()] += chunk

		tags := e.Tags()
		if len(tags) == 0 {
			tags = []string{"(untagged)"}
		}
		for _, tag := range tags {
			s.Tags[tag] += chunk
		}
	}
	return s
}

// rangeFlags are the date-range flags shared by list and report.
type rangeFlags struct {
	from, to       string
	week, lastWeek bool
}

func (r *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&r.from, "from", "", "first day, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&r.to, "to", "", "last day, YYYY-MM-DD (default --from)")
	cmd.Flags().BoolVar(&r.week, "week", false, "this week")
	cmd.Flags().BoolVar(&r.lastWeek, "last-week", false, "last week")
}

// resolve returns the range the flags select as [from, to).
func (r *rangeFlags) resolve(today time.Time, firstWeekday time.Weekday) (time.Time, time.Time, error) {
	tz := today.Location()

	if r.week && r.lastWeek {
		return time.Time{}, time.Time{}, fmt.Errorf("choose only one of --week or --last-week")
	}
	if (r.week || r.lastWeek) && (r.from != "" || r.to != "") {
		return time.Time{}, time.Time{}, fmt.Errorf("cannot combine --week/--last-week with --from/--to")
	}

	if r.week || r.lastWeek {
		from := layout.StartOfWeek(today, firstWeekday, tz)
		if r.lastWeek {
			from = from.AddDate(0, 0, -7)
		}
		return from, from.AddDate(0, 0, 7), nil
	}

	from := layout.StartOfDay(today, tz)
	if r.from != "" {
		parsed, err := storage.ParseDate(r.from, tz)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from date: %w", err)
		}
		from = parsed
	}

	last := from
	if r.to != "" {
		parsed, err := storage.ParseDate(r.to, tz)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to date: %w", err)
		}
		last = parsed
	}
	if last.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date cannot be before start date")
	}
	return from, last.AddDate(0, 0, 1), nil
}

func shortID(e storage.Event) string {
	return e.ID.String()[:8]
}

func writeLine(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}
