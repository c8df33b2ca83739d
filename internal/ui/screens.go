package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/arkmgr/internal/nav"
	"github.com/gravitrone/arkmgr/internal/ui/components"
)

const (
	createdAtLayout = "2006-01-02 15:04"
	listPageSize    = 12
)

func (a App) renderScreen() string {
	switch a.state.Screen {
	case nav.Servers:
		return a.renderServers()
	case nav.ServerDetail:
		return a.renderServerDetail()
	case nav.ServerEdit:
		return a.renderServerEdit()
	case nav.ModList:
		return a.renderModList()
	case nav.ModDetail:
		return a.renderModDetail()
	case nav.ModEdit:
		return a.renderModEdit()
	}
	return a.renderHome()
}

func (a App) renderHome() string {
	mods := 0
	for _, s := range a.servers {
		mods += len(s.Mods)
	}
	body := strings.Join([]string{
		NormalStyle.Render("Welcome to arkmgr"),
		"",
		MutedStyle.Render("Keep track of your game servers and the mods they run,"),
		MutedStyle.Render("and start, stop or check them from one place."),
		"",
		fmt.Sprintf("%d servers, %d mods", len(a.servers), mods),
		"",
		MutedStyle.Render("Press s to open the server list."),
	}, "\n")
	return components.Indent(components.TitledBox("Home", body, a.width), 1)
}

func formatCreated(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(createdAtLayout)
}

func emptyBox(title, message string, width int) string {
	return components.Indent(components.TitledBox(title, MutedStyle.Render(message), width), 1)
}

// windowedGrid renders rows around cursor with a position footer when paged.
func windowedGrid(title string, cols []components.TableColumn, rows [][]string, cursor nav.Cursor, width int) string {
	start, end := components.Window(int(cursor), len(rows), listPageSize)
	active := -1
	if cursor.Valid() {
		active = int(cursor) - start
	}
	inner := components.BoxContentWidth(width)
	if inner <= 0 {
		inner = 72
	}
	body := components.TableGridWithActiveRow(cols, rows[start:end], inner, active)
	if footer := components.WindowFooter(start, end, len(rows)); footer != "" {
		body += "\n\n" + MutedStyle.Render(footer)
	}
	return components.Indent(components.TitledBox(title, body, width), 1)
}

// --- Servers ---

func (a App) renderServers() string {
	if len(a.servers) == 0 {
		return emptyBox("Servers", "No servers yet. Press a to add one.", a.width)
	}
	cols := []components.TableColumn{
		{Header: "ID", Width: 4, Align: lipgloss.Right},
		{Header: "Name", Width: 16},
		{Header: "Category", Width: 10},
		{Header: "Age", Width: 4, Align: lipgloss.Right},
		{Header: "Created At", Width: 16},
		{Header: "Mods", Width: 4, Align: lipgloss.Right},
		{Header: "Status", Width: 10},
	}
	rows := make([][]string, 0, len(a.servers))
	for _, s := range a.servers {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(s.ID), 10),
			s.Name,
			s.Category,
			strconv.FormatUint(uint64(s.Age), 10),
			formatCreated(s.CreatedAt),
			strconv.Itoa(len(s.Mods)),
			a.statusLabel(s.ID),
		})
	}
	return windowedGrid("Servers", cols, rows, a.state.ServerCursor, a.width)
}

func (a App) renderServerDetail() string {
	srv, ok := a.state.SelectedServer(a.servers)
	if !ok {
		return emptyBox("Server Detail", "No server selected.", a.width)
	}
	service := srv.ServiceName
	if service == "" {
		service = "(not set)"
	}
	rows := []components.TableRow{
		{Label: "ID", Value: strconv.FormatUint(uint64(srv.ID), 10)},
		{Label: "Name", Value: srv.Name},
		{Label: "Category", Value: srv.Category},
		{Label: "Age", Value: strconv.FormatUint(uint64(srv.Age), 10)},
		{Label: "Service", Value: service},
		{Label: "Created At", Value: formatCreated(srv.CreatedAt)},
		{Label: "Mods", Value: strconv.Itoa(len(srv.Mods))},
		{Label: "Status", Value: a.statusLabel(srv.ID)},
	}
	if st, ok := a.status[srv.ID]; ok {
		rows = append(rows, components.TableRow{
			Label: "Last Action",
			Value: fmt.Sprintf("%s at %s", st.action.Label(), st.at.Local().Format("15:04:05")),
		})
	}
	return components.Indent(components.Table("Server Detail", rows, a.width), 1)
}

func (a App) renderServerEdit() string {
	srv, ok := a.state.SelectedServer(a.servers)
	if !ok {
		return emptyBox("Server Edit", "No server selected.", a.width)
	}
	rows := fieldRows(nav.ServerFields, srv)
	out := components.Indent(components.TableWithActiveRow("Server Edit", rows, a.width, a.state.ServerField), 1)
	if a.state.EditingServer {
		out += "\n\n" + a.renderEditBuffer(nav.ServerFields[a.state.ServerField].Name)
	}
	return out
}

// --- Mods ---

func (a App) renderModList() string {
	srv, ok := a.state.SelectedServer(a.servers)
	if !ok {
		return emptyBox("Server Mods", "No server selected.", a.width)
	}
	title := "Server Mods: " + srv.Name
	if len(srv.Mods) == 0 {
		return emptyBox(title, "No mods yet. Press a to add one.", a.width)
	}
	cols := []components.TableColumn{
		{Header: "ID", Width: 4, Align: lipgloss.Right},
		{Header: "Name", Width: 18},
		{Header: "Category", Width: 12},
		{Header: "Enabled", Width: 7},
		{Header: "Age", Width: 4, Align: lipgloss.Right},
		{Header: "Created At", Width: 16},
	}
	rows := make([][]string, 0, len(srv.Mods))
	for _, m := range srv.Mods {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(m.ID), 10),
			m.Name,
			m.Category,
			enabledLabel(m.Enabled),
			strconv.FormatUint(uint64(m.Age), 10),
			formatCreated(m.CreatedAt),
		})
	}
	return windowedGrid(title, cols, rows, a.state.ModCursor, a.width)
}

func enabledLabel(enabled bool) string {
	if enabled {
		return "yes"
	}
	return "no"
}

func (a App) renderModDetail() string {
	m, ok := a.state.SelectedMod(a.servers)
	if !ok {
		return emptyBox("Mod Detail", "No mod selected.", a.width)
	}
	rows := []components.TableRow{
		{Label: "ID", Value: strconv.FormatUint(uint64(m.ID), 10)},
		{Label: "Name", Value: m.Name},
		{Label: "Category", Value: m.Category},
		{Label: "Description", Value: m.Description},
		{Label: "Enabled", Value: enabledLabel(m.Enabled)},
		{Label: "Age", Value: strconv.FormatUint(uint64(m.Age), 10)},
		{Label: "Created At", Value: formatCreated(m.CreatedAt)},
	}
	return components.Indent(components.Table("Mod Detail", rows, a.width), 1)
}

func (a App) renderModEdit() string {
	m, ok := a.state.SelectedMod(a.servers)
	if !ok {
		return emptyBox("Mod Edit", "No mod selected.", a.width)
	}
	rows := fieldRows(nav.ModFields, m)
	out := components.Indent(components.TableWithActiveRow("Mod Edit", rows, a.width, a.state.ModField), 1)
	if a.state.EditingMod {
		out += "\n\n" + a.renderEditBuffer(nav.ModFields[a.state.ModField].Name)
	}
	return out
}

// --- Edit Buffer ---

func fieldRows[R any](fields []nav.Field[R], rec *R) []components.TableRow {
	rows := make([]components.TableRow, len(fields))
	for i, f := range fields {
		rows[i] = components.TableRow{Label: f.Name, Value: f.Get(rec)}
	}
	return rows
}

func (a App) renderEditBuffer(field string) string {
	errText := ""
	if a.state.EditErr != nil {
		errText = a.state.EditErr.Error()
	}
	return components.Indent(components.InputDialog("Edit "+field, a.state.Buffer(), "enter: save | ctrl+c: quit", errText), 1)
}
