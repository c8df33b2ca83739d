package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/arkmgr/internal/service"
	"github.com/gravitrone/arkmgr/internal/store"
	"github.com/gravitrone/arkmgr/internal/ui/components"
)

type call struct {
	action  service.Action
	service string
}

type fakeController struct {
	mu     sync.Mutex
	calls  []call
	output string
	err    error
}

func (f *fakeController) Run(_ context.Context, action service.Action, id string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{action: action, service: id})
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

// flakyStore fails saves on demand.
type flakyStore struct {
	*store.FileStore
	failSave bool
}

func (s *flakyStore) Save(servers []store.Server) error {
	if s.failSave {
		return fmt.Errorf("save %s: %w", s.Path(), store.ErrUnavailable)
	}
	return s.FileStore.Save(servers)
}

func newTestStore(t *testing.T, servers ...store.Server) *store.FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	_, err := store.Init(path)
	require.NoError(t, err)
	fs := store.NewFileStore(path)
	if len(servers) > 0 {
		require.NoError(t, fs.Save(servers))
	}
	return fs
}

func server(id uint, name, serviceName string) store.Server {
	s := store.NewServer(id)
	s.Name = name
	s.ServiceName = serviceName
	return s
}

func newTestApp(t *testing.T, s store.Store, c service.Controller) App {
	t.Helper()
	app, err := NewApp(Options{Store: s, Controller: c})
	require.NoError(t, err)
	return app
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press feeds keys one at a time and returns the model and the last command.
func press(t *testing.T, app App, keys ...string) (App, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var model tea.Model
		model, cmd = app.Update(keyMsg(k))
		app = model.(App)
	}
	return app, cmd
}

// typeKeys presses each rune of text as its own key.
func typeKeys(t *testing.T, app App, text string) App {
	t.Helper()
	for _, r := range text {
		app, _ = press(t, app, string(r))
	}
	return app
}

// collect runs cmd and flattens batches. Only use it on commands that do
// not contain timers.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func view(app App) string {
	return components.SanitizeText(app.View())
}
