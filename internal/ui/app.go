package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/arkmgr/internal/logger"
	"github.com/gravitrone/arkmgr/internal/nav"
	"github.com/gravitrone/arkmgr/internal/service"
	"github.com/gravitrone/arkmgr/internal/store"
	"github.com/gravitrone/arkmgr/internal/ui/components"
)

const (
	defaultActionTimeout = 10 * time.Second
	defaultTickRate      = 200 * time.Millisecond
	toastDuration        = 2500 * time.Millisecond
)

// --- Messages ---

type tickMsg time.Time
type clearToastMsg struct{}
type serviceResultMsg struct {
	req    nav.Request
	output string
	err    error
}

type appToast struct {
	level string
	text  string
}

// serviceStatus is the last known outcome of a service action for one server.
type serviceStatus struct {
	action service.Action
	text   string
	failed bool
	at     time.Time
}

// Options wires the collaborators of the App.
type Options struct {
	Store         store.Store
	Controller    service.Controller
	ActionTimeout time.Duration
	TickRate      time.Duration
}

// --- App Model ---

// App is the root TUI model. It owns the navigation state and is the only
// caller of the dispatcher.
type App struct {
	state      nav.State
	dispatcher *nav.Dispatcher
	store      store.Store
	servers    []store.Server

	controller service.Controller
	timeout    time.Duration
	tickRate   time.Duration
	pending    map[uint]service.Action
	status     map[uint]serviceStatus

	keys     keyMap
	help     help.Model
	helpOpen bool
	spinner  spinner.Model

	width  int
	height int
	err    string
	toast  *appToast
	log    *slog.Logger
}

// NewApp loads the store once and returns the initial model. A store that
// cannot be loaded is fatal.
func NewApp(opts Options) (App, error) {
	if opts.Store == nil {
		return App{}, errors.New("no store configured")
	}
	servers, err := opts.Store.Load()
	if err != nil {
		return App{}, fmt.Errorf("load store: %w", err)
	}
	if opts.Controller == nil {
		opts.Controller = service.NewManager("")
	}
	if opts.ActionTimeout <= 0 {
		opts.ActionTimeout = defaultActionTimeout
	}
	if opts.TickRate <= 0 {
		opts.TickRate = defaultTickRate
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	st := nav.New()
	st.Revalidate(servers)

	return App{
		state:      st,
		dispatcher: nav.NewDispatcher(opts.Store),
		store:      opts.Store,
		servers:    servers,
		controller: opts.Controller,
		timeout:    opts.ActionTimeout,
		tickRate:   opts.TickRate,
		pending:    map[uint]service.Action{},
		status:     map[uint]serviceStatus{},
		keys:       defaultKeyMap(),
		help:       help.New(),
		spinner:    sp,
		log:        logger.WithComponent("ui"),
	}, nil
}

func (a App) Init() tea.Cmd {
	return a.tickCmd()
}

func (a App) tickCmd() tea.Cmd {
	return tea.Tick(a.tickRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tickMsg:
		return a, a.tickCmd()

	case spinner.TickMsg:
		if len(a.pending) == 0 {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case serviceResultMsg:
		return a, a.finishService(msg)

	case clearToastMsg:
		a.toast = nil
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.ForceQuit) {
		return a, tea.Quit
	}
	if a.helpOpen {
		switch {
		case key.Matches(msg, a.keys.Help, a.keys.Back):
			a.helpOpen = false
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		}
		return a, nil
	}
	if !a.state.Editing() && key.Matches(msg, a.keys.Help) {
		a.helpOpen = true
		return a, nil
	}

	in := a.keys.resolve(msg, &a.state)
	if in.Sym == nav.SymNone {
		return a, nil
	}
	return a.dispatch(in)
}

func (a App) dispatch(in nav.Input) (tea.Model, tea.Cmd) {
	res, err := a.dispatcher.Dispatch(&a.state, in)
	if res.Quit {
		return a, tea.Quit
	}

	switch {
	case err == nil:
		a.err = ""
	case errors.Is(err, nav.ErrSelectionInvalid):
		// no-op
	case nav.IsFieldTypeError(err):
		// rendered under the edit buffer
	default:
		a.log.Error("dispatch failed", "input", in.String(), "error", err)
		a.err = err.Error()
	}

	if loadErr := a.reload(); loadErr != nil && err == nil {
		a.err = loadErr.Error()
	}

	var cmds []tea.Cmd
	if res.Request != nil {
		cmds = append(cmds, a.startService(*res.Request))
	}
	if res.Wrote {
		cmds = append(cmds, a.setToast("success", "Saved"))
	}
	return a, tea.Batch(cmds...)
}

// reload refreshes the render snapshot. The old snapshot is kept on error.
func (a *App) reload() error {
	servers, err := a.store.Load()
	if err != nil {
		return err
	}
	a.servers = servers
	return nil
}

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{
		level: level,
		text:  components.SanitizeOneLine(text),
	}
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

func (a App) View() string {
	banner := centerBlockUniform(RenderBanner(), a.width)
	menu := centerBlockUniform(a.renderMenu(), a.width)

	var content string
	if a.helpOpen {
		content = a.renderHelp()
	} else {
		content = a.renderScreen()
	}
	content = centerBlockUniform(content, a.width)

	hints := components.StatusBar(components.BindingHints(a.keys.bindingsFor(&a.state)...), a.width)

	feedback := ""
	if a.err != "" {
		feedback = "\n\n" + centerBlockUniform(components.ErrorBox("Error", a.err, a.width), a.width)
	} else if a.toast != nil {
		feedback = "\n\n" + centerBlockUniform(a.renderToast(), a.width)
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n\n\n%s%s", banner, menu, content, hints, feedback)
}

func (a App) renderToast() string {
	if a.toast == nil {
		return ""
	}
	switch a.toast.level {
	case "success":
		return SuccessStyle.Render("✓ " + a.toast.text)
	case "warning":
		return WarningStyle.Render("! " + a.toast.text)
	case "error":
		return ErrorStyle.Render("✗ " + a.toast.text)
	}
	return MutedStyle.Render(a.toast.text)
}

func (a App) renderHelp() string {
	body := MutedStyle.Render("? or esc to close") + "\n\n" + a.help.FullHelpView(a.keys.FullHelp())
	return components.Indent(components.ActiveTitledBox("Help", body, a.width), 1)
}

// --- Menu ---

var menuTitles = map[nav.Screen][]string{
	nav.Home:         {"Home", "Servers", "Quit"},
	nav.Servers:      {"Home", "Servers", "Add", "Delete", "Quit"},
	nav.ServerDetail: {"Home", "Servers", "Mods", "Edit", "Back", "Quit"},
	nav.ServerEdit:   {"Home", "Servers", "Back", "Quit"},
	nav.ModList:      {"Home", "Servers", "Mods", "Add", "Delete", "Back", "Quit"},
	nav.ModDetail:    {"Home", "Servers", "Mods", "Toggle", "Edit", "Back", "Quit"},
	nav.ModEdit:      {"Home", "Servers", "Mods", "Back", "Quit"},
}

func activeMenu(screen nav.Screen) string {
	switch screen {
	case nav.Home:
		return "Home"
	case nav.ModList, nav.ModDetail, nav.ModEdit:
		return "Mods"
	}
	return "Servers"
}

func (a App) renderMenu() string {
	active := activeMenu(a.state.Screen)
	titles := menuTitles[a.state.Screen]
	segments := make([]string, 0, len(titles))
	for _, title := range titles {
		if title == active {
			segments = append(segments, TabActiveStyle.Render(title))
			continue
		}
		segments = append(segments, TabInactiveStyle.Render(MenuKeyStyle.Render(title[:1])+title[1:]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}

// --- Layout Helpers ---

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	prefix := strings.Repeat(" ", (width-maxWidth)/2)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
