package cli

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"lazycal/config"
	"lazycal/logging"
	"lazycal/storage"
	"lazycal/tui"
)

// NewTUICommand creates the tui command. The UI owns the terminal, so it logs
// to the file named in the config instead of stderr.
func NewTUICommand(opts *RootOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load config", err)
			}

			var day time.Time
			if date != "" {
				if day, err = storage.ParseDate(date, time.Local); err != nil {
					return WrapExitError(ExitCommandError, "invalid --date, want YYYY-MM-DD", err)
				}
			}

			level, err := logging.ParseLevel(cfg.Log.Level)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid log level", err)
			}
			if opts.Verbose {
				level = slog.LevelDebug
			}
			logger, closer, err := logging.OpenFile(cfg.Log.File, level)
			if err != nil {
				return WrapExitError(ExitFailure, "failed to open log file", err)
			}
			defer closer.Close()

			logger = logging.WithOperation(logger, "tui")
			logger.Info("starting")
			err = tui.Launch(tui.Options{
				Config:     cfg,
				EventsPath: opts.EventsPath,
				Logger:     logger,
				Now:        storage.LocalNow,
				Date:       day,
			})
			if err != nil {
				logger.Error("ui stopped", logging.Err(err))
				return WrapExitError(ExitFailure, "terminal UI failed", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to open on, YYYY-MM-DD (default today)")
	return cmd
}
