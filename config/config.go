// Package config loads lazycal settings from a YAML file layered over
// defaults.
package config

import (
	"errors"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"lazycal/array"
)

const PathEnvVar = "LAZYCAL_CONFIG"

// Views the UI can open with.
const (
	ViewMonth = "month"
	ViewWeek  = "week"
	ViewDay   = "day"
)

// Calendar assigns a display color to events tagged @Name. Hidden
// calendars start out hidden in the terminal UI.
type Calendar struct {
	Name   string `yaml:"name"`
	Color  string `yaml:"color"` // color name ("teal") or hex ("#008080")
	Hidden bool   `yaml:"hidden"`
}

// Config is the complete lazycal configuration.
type Config struct {
	DayView struct {
		StartHour int `yaml:"start_hour"` // first hour shown in day and week grids
		EndHour   int `yaml:"end_hour"`   // hour the grids end at, exclusive, up to 24
	} `yaml:"day_view"`
	WeekStart   string     `yaml:"week_start"`   // "monday" or "sunday"
	DefaultView string     `yaml:"default_view"` // "month", "week" or "day"
	Calendars   []Calendar `yaml:"calendars"`
	Log         struct {
		Level string `yaml:"level"` // debug, info, warn, error
		File  string `yaml:"file"`  // empty for ~/.lazycal/lazycal.log
	} `yaml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	var c Config
	c.DayView.StartHour = 0
	c.DayView.EndHour = 24
	c.WeekStart = "monday"
	c.DefaultView = ViewWeek
	c.Log.Level = "info"
	return c
}

// DefaultPath returns the config path from LAZYCAL_CONFIG, or
// ~/.lazycal/config.yaml.
func DefaultPath() string {
	if v := os.Getenv(PathEnvVar); v != "" {
		return filepath.Clean(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".lazycal", "config.yaml")
	}
	return filepath.Join(home, ".lazycal", "config.yaml")
}

// Load reads the file at path over Default. A missing file is not an error.
// An empty path means DefaultPath.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values a file may have set.
func (c Config) Validate() error {
	if c.DayView.StartHour < 0 || c.DayView.EndHour > 24 || c.DayView.StartHour >= c.DayView.EndHour {
		return fmt.Errorf("day_view hours must satisfy 0 <= start_hour < end_hour <= 24, got %d-%d",
			c.DayView.StartHour, c.DayView.EndHour)
	}
	if _, err := c.FirstWeekday(); err != nil {
		return err
	}
	switch c.DefaultView {
	case ViewMonth, ViewWeek, ViewDay:
	default:
		return fmt.Errorf("unknown default_view %q", c.DefaultView)
	}
	for _, cal := range c.Calendars {
		if cal.Name == "" {
			return fmt.Errorf("calendar without a name")
		}
		if cal.Color != "" && !tcell.GetColor(cal.Color).Valid() {
			return fmt.Errorf("calendar %s: unknown color %q", cal.Name, cal.Color)
		}
	}
	return nil
}

// FirstWeekday returns the weekday grids start on.
func (c Config) FirstWeekday() (time.Weekday, error) {
	switch strings.ToLower(c.WeekStart) {
	case "", "monday":
		return time.Monday, nil
	case "sunday":
		return time.Sunday, nil
	}
	return 0, fmt.Errorf("week_start must be monday or sunday, got %q", c.WeekStart)
}

// HourWindow returns the visible part of day as [start, end).
func (c Config) HourWindow(day time.Time) (time.Time, time.Time) {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return midnight.Add(time.Duration(c.DayView.StartHour) * time.Hour),
		midnight.Add(time.Duration(c.DayView.EndHour) * time.Hour)
}

// HiddenCalendars returns the case-folded names of calendars configured as
// hidden.
func (c Config) HiddenCalendars() map[string]bool {
	hidden := make(map[string]bool)
	for _, cal := range c.Calendars {
		if cal.Hidden {
			hidden[array.Fold(cal.Name)] = true
		}
	}
	return hidden
}

// palette is used for calendars without a configured color.
var palette = []tcell.Color{
	tcell.ColorSteelBlue,
	tcell.ColorSeaGreen,
	tcell.ColorIndianRed,
	tcell.ColorGoldenrod,
	tcell.ColorMediumPurple,
	tcell.ColorTeal,
	tcell.ColorSandyBrown,
	tcell.ColorSlateGray,
}

// CalendarColor returns the hex color ("#rrggbb") for a calendar name.
// Configured colors win; other names get a stable palette entry.
func (c Config) CalendarColor(name string) string {
	for _, cal := range c.Calendars {
		if strings.EqualFold(cal.Name, name) && cal.Color != "" {
			if hex := toHex(tcell.GetColor(cal.Color)); hex != "" {
				return hex
			}
		}
	}
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(name)))
	return toHex(palette[h.Sum32()%uint32(len(palette))])
}

func toHex(color tcell.Color) string {
	v := color.Hex()
	if v < 0 {
		return ""
	}
	return fmt.Sprintf("#%06x", v)
}
