package tui

import (
	"fmt"
	"log/slog"
	"maps"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lazycal/array"
	"lazycal/config"
	"lazycal/layout"
	"lazycal/logging"
	"lazycal/storage"
	"lazycal/tui/components"
)

const tickInterval = 30 * time.Second

// Options configures the terminal UI.
type Options struct {
	Config     config.Config
	EventsPath string
	Logger     *slog.Logger
	Now        func() time.Time // defaults to storage.LocalNow
	Date       time.Time        // day to open on; zero for today
}

// Model is the bubbletea model of the calendar.
type Model struct {
	cfg          config.Config
	eventsPath   string
	logger       *slog.Logger
	clock        func() time.Time
	firstWeekday time.Weekday

	events []storage.Event
	now    time.Time
	cursor time.Time
	view   components.ViewMode

	// hidden holds the case-folded names of calendars left out of every view.
	hidden   map[string]bool
	calendar string // selected by the calendar keys

	width  int
	height int

	message      string
	messageError bool
}

type tickMsg time.Time

type eventsMsg struct {
	events []storage.Event
	err    error
}

// NewModel returns a model showing today in the configured default view.
func NewModel(opts Options) Model {
	clock := opts.Now
	if clock == nil {
		clock = storage.LocalNow
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	firstWeekday, err := opts.Config.FirstWeekday()
	if err != nil {
		firstWeekday = time.Monday
	}

	now := clock()
	cursor := layout.StartOfDay(now, now.Location())
	if !opts.Date.IsZero() {
		cursor = layout.StartOfDay(opts.Date, now.Location())
	}
	return Model{
		cfg:          opts.Config,
		eventsPath:   opts.EventsPath,
		logger:       logger,
		clock:        clock,
		firstWeekday: firstWeekday,
		now:          now,
		cursor:       cursor,
		view:         viewFromConfig(opts.Config.DefaultView),
		hidden:       opts.Config.HiddenCalendars(),
	}
}

func viewFromConfig(name string) components.ViewMode {
	switch name {
	case config.ViewMonth:
		return components.ViewMonth
	case config.ViewDay:
		return components.ViewDay
	default:
		return components.ViewWeek
	}
}

// Init loads the events and starts the clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), tick())
}

func (m Model) load() tea.Cmd {
	path := m.eventsPath
	return func() tea.Msg {
		events, err := storage.ReadEvents(path)
		return eventsMsg{events: events, err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles keys, window changes, reloads and clock ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.now = m.clock()
		return m, tick()

	case eventsMsg:
		if msg.err != nil {
			m.logger.Error("failed to load events", logging.Err(msg.err))
			m.message = fmt.Sprintf("Failed to load events: %v", msg.err)
			m.messageError = true
			return m, nil
		}
		m.events = msg.events
		m.logger.Debug("loaded events", logging.Count(len(msg.events)))
		m.message = fmt.Sprintf("Loaded %d events", len(msg.events))
		m.messageError = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "1":
		m.view = components.ViewMonth
	case "2":
		m.view = components.ViewWeek
	case "3":
		m.view = components.ViewDay
	case "h", "left":
		m.cursor = Shift(m.view, m.cursor, -1)
	case "l", "right":
		m.cursor = Shift(m.view, m.cursor, 1)
	case "t":
		m.now = m.clock()
		m.cursor = layout.StartOfDay(m.now, m.now.Location())
	case "r":
		m.message = "Reloading..."
		m.messageError = false
		return m, m.load()
	case "c":
		m = m.selectCalendar(1)
	case "C":
		m = m.selectCalendar(-1)
	case "v", " ":
		m = m.toggleCalendar()
	case "a":
		m.hidden = map[string]bool{}
		m.message = "Showing all calendars"
		m.messageError = false
	}
	return m, nil
}

// selectCalendar moves the calendar selection by step, wrapping around.
func (m Model) selectCalendar(step int) Model {
	names := Calendars(m.cfg, m.events)
	if len(names) == 0 {
		m.message = "No calendars"
		m.messageError = true
		return m
	}
	i := -1
	for j, name := range names {
		if array.StrAscIgnoreCase(name, m.calendar) == 0 {
			i = j
			break
		}
	}
	if i == -1 && step < 0 {
		i = 0
	}
	m.calendar = names[((i+step)%len(names)+len(names))%len(names)]
	return m.describeCalendar()
}

// toggleCalendar hides the selected calendar or shows it again. With nothing
// selected it selects the first calendar instead.
func (m Model) toggleCalendar() Model {
	if m.calendar == "" {
		return m.selectCalendar(1)
	}
	key := array.Fold(m.calendar)
	m.hidden = maps.Clone(m.hidden)
	if m.hidden == nil {
		m.hidden = map[string]bool{}
	}
	if m.hidden[key] {
		delete(m.hidden, key)
	} else {
		m.hidden[key] = true
	}
	m.logger.Debug("toggled calendar", logging.Calendar(m.calendar), slog.Bool("hidden", m.hidden[key]))
	return m.describeCalendar()
}

func (m Model) describeCalendar() Model {
	state := "shown"
	if m.hidden[array.Fold(m.calendar)] {
		state = "hidden"
	}
	m.message = fmt.Sprintf("Calendar %s: %s", m.calendar, state)
	m.messageError = false
	return m
}

// visibleEvents returns the loaded events without those of hidden calendars.
func (m Model) visibleEvents() []storage.Event {
	if len(m.hidden) == 0 {
		return m.events
	}
	return storage.FilterCalendars(m.events, func(calendar string) bool {
		return !m.hidden[array.Fold(calendar)]
	})
}

// View renders the whole screen.
func (m Model) View() string {
	return renderMainView(m)
}
