package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/arkmgr/internal/nav"
	"github.com/gravitrone/arkmgr/internal/service"
)

const noOutput = "(no output)"

// startService marks the server busy and runs the action off the event loop.
// One action per server may be in flight.
func (a *App) startService(req nav.Request) tea.Cmd {
	if running, busy := a.pending[req.ServerID]; busy {
		return a.setToast("warning", fmt.Sprintf("%s: %s still running", req.ServerName, running.Label()))
	}
	first := len(a.pending) == 0
	a.pending[req.ServerID] = req.Action
	a.log.Info("service action started", "server", req.ServerID, "action", string(req.Action), "service", req.ServiceName)

	cmd := serviceCmd(a.controller, a.timeout, req)
	if first {
		return tea.Batch(cmd, a.spinner.Tick)
	}
	return cmd
}

func serviceCmd(c service.Controller, timeout time.Duration, req nav.Request) tea.Cmd {
	return func() tea.Msg {
		out, err := service.RunWithTimeout(c, timeout, req.Action, req.ServiceName)
		return serviceResultMsg{req: req, output: out, err: err}
	}
}

func (a *App) finishService(msg serviceResultMsg) tea.Cmd {
	delete(a.pending, msg.req.ServerID)

	st := serviceStatus{action: msg.req.Action, text: msg.output, at: time.Now()}
	if msg.err != nil {
		st.failed = true
		st.text = msg.err.Error()
		a.log.Warn("service action failed", "server", msg.req.ServerID, "action", string(msg.req.Action), "error", msg.err)
	} else {
		a.log.Info("service action finished", "server", msg.req.ServerID, "action", string(msg.req.Action), "output", msg.output)
	}
	if st.text == "" {
		st.text = noOutput
	}
	a.status[msg.req.ServerID] = st

	level := "info"
	if st.failed {
		level = "error"
	}
	return a.setToast(level, fmt.Sprintf("%s %s: %s", msg.req.ServerName, msg.req.Action.Label(), st.text))
}

// statusLabel is the status cell for a server: a spinner while an action
// runs, otherwise the last result.
func (a App) statusLabel(id uint) string {
	if action, ok := a.pending[id]; ok {
		return a.spinner.View() + " " + action.Label()
	}
	st, ok := a.status[id]
	if !ok {
		return "-"
	}
	return st.text
}
