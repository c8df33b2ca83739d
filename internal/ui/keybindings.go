package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/arkmgr/internal/nav"
)

// --- Key Map ---

type keyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Home      key.Binding
	Servers   key.Binding
	Prev      key.Binding
	Next      key.Binding
	Open      key.Binding
	Back      key.Binding
	Add       key.Binding
	Delete    key.Binding
	Edit      key.Binding
	Mods      key.Binding
	Toggle    key.Binding
	Start     key.Binding
	Stop      key.Binding
	Restart   key.Binding
	Status    key.Binding
	Help      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "Force quit")),
		Home:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "Home")),
		Servers:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Servers")),
		Prev:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "Prev")),
		Next:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "Next")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Open")),
		Back:      key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b/esc", "Back")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "Add")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "Delete")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "Edit")),
		Mods:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "Mods")),
		Toggle:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "Toggle")),
		Start:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "Start")),
		Stop:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "Stop")),
		Restart:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Restart")),
		Status:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "Status")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Help")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Open, k.Back, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Servers, k.Mods, k.Back, k.Quit},
		{k.Prev, k.Next, k.Open, k.Add, k.Delete},
		{k.Edit, k.Toggle, k.Help, k.ForceQuit},
		{k.Start, k.Stop, k.Restart, k.Status},
	}
}

// bindingsFor lists the hints shown in the status bar for the current screen.
func (k keyMap) bindingsFor(st *nav.State) []key.Binding {
	if st.Editing() {
		save := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Save"))
		typing := key.NewBinding(key.WithKeys("a-z"), key.WithHelp("a-z 0-9 space", "Type"))
		return []key.Binding{typing, save, k.ForceQuit}
	}
	service := []key.Binding{k.Start, k.Stop, k.Restart, k.Status}
	switch st.Screen {
	case nav.Servers:
		return append([]key.Binding{k.Prev, k.Next, k.Open, k.Add, k.Delete}, append(service, k.Home, k.Quit)...)
	case nav.ServerDetail:
		return append([]key.Binding{k.Edit, k.Mods, k.Back}, append(service, k.Quit)...)
	case nav.ServerEdit, nav.ModEdit:
		choose := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Edit field"))
		return []key.Binding{k.Prev, k.Next, choose, k.Back, k.Quit}
	case nav.ModList:
		return []key.Binding{k.Prev, k.Next, k.Open, k.Add, k.Delete, k.Back, k.Quit}
	case nav.ModDetail:
		return []key.Binding{k.Edit, k.Toggle, k.Back, k.Quit}
	}
	return []key.Binding{k.Servers, k.Help, k.Quit}
}

// resolve maps a key press to an input symbol. While an edit buffer is
// active, printable keys become characters and global keys lose their meaning.
func (k keyMap) resolve(msg tea.KeyMsg, st *nav.State) nav.Input {
	if st.Editing() {
		switch msg.Type {
		case tea.KeyEnter:
			return nav.Sym(nav.SymConfirm)
		case tea.KeyBackspace:
			return nav.Sym(nav.SymBackspace)
		case tea.KeySpace:
			return nav.Char(' ')
		case tea.KeyRunes:
			if len(msg.Runes) == 1 && !msg.Paste {
				return nav.Char(msg.Runes[0])
			}
		}
		return nav.Sym(nav.SymNone)
	}

	switch {
	case key.Matches(msg, k.Open):
		if st.Screen == nav.ServerEdit || st.Screen == nav.ModEdit {
			return nav.Sym(nav.SymConfirm)
		}
		return nav.Sym(nav.SymOpen)
	case key.Matches(msg, k.Quit):
		return nav.Sym(nav.SymQuit)
	case key.Matches(msg, k.Home):
		return nav.Sym(nav.SymHome)
	case key.Matches(msg, k.Servers):
		return nav.Sym(nav.SymServers)
	case key.Matches(msg, k.Prev):
		return nav.Sym(nav.SymPrev)
	case key.Matches(msg, k.Next):
		return nav.Sym(nav.SymNext)
	case key.Matches(msg, k.Back):
		return nav.Sym(nav.SymBack)
	case key.Matches(msg, k.Add):
		return nav.Sym(nav.SymAdd)
	case key.Matches(msg, k.Delete):
		return nav.Sym(nav.SymDelete)
	case key.Matches(msg, k.Edit):
		return nav.Sym(nav.SymEdit)
	case key.Matches(msg, k.Mods):
		return nav.Sym(nav.SymOpenMods)
	case key.Matches(msg, k.Toggle):
		return nav.Sym(nav.SymToggle)
	case key.Matches(msg, k.Start):
		return nav.Sym(nav.SymStart)
	case key.Matches(msg, k.Stop):
		return nav.Sym(nav.SymStop)
	case key.Matches(msg, k.Restart):
		return nav.Sym(nav.SymRestart)
	case key.Matches(msg, k.Status):
		return nav.Sym(nav.SymStatus)
	}
	return nav.Sym(nav.SymNone)
}
