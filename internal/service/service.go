// Package service invokes the host service manager for a server's unit.
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrInvocationFailed means the service manager could not be run at all.
// A command that runs and reports failure on its output is not an error.
var ErrInvocationFailed = errors.New("service invocation failed")

// Action is a service manager verb.
type Action string

const (
	Start   Action = "start"
	Stop    Action = "stop"
	Restart Action = "restart"
	Status  Action = "is-active"
)

// Actions lists every supported action.
var Actions = []Action{Start, Stop, Restart, Status}

// ParseAction maps a user-facing name to an Action. "status" is accepted for is-active.
func ParseAction(name string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "start":
		return Start, nil
	case "stop":
		return Stop, nil
	case "restart":
		return Restart, nil
	case "status", "is-active":
		return Status, nil
	}
	return "", fmt.Errorf("unknown action %q", name)
}

// Label is the short display name.
func (a Action) Label() string {
	if a == Status {
		return "status"
	}
	return string(a)
}

// Controller runs an action for a service and returns its textual outcome.
type Controller interface {
	Run(ctx context.Context, action Action, serviceID string) (string, error)
}

// DefaultManager is the service manager binary used when none is configured.
const DefaultManager = "systemctl"

// Manager runs `<Binary> <action> <service>`.
type Manager struct {
	Binary string
}

// NewManager returns a Manager for binary, falling back to systemctl.
func NewManager(binary string) *Manager {
	if strings.TrimSpace(binary) == "" {
		binary = DefaultManager
	}
	return &Manager{Binary: binary}
}

// Run executes the action and returns stdout, or stderr when stdout is empty.
func (m *Manager) Run(ctx context.Context, action Action, serviceID string) (string, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return "", fmt.Errorf("%w: no service name set", ErrInvocationFailed)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, m.Binary, string(action), serviceID)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", fmt.Errorf("%w: %s %s: %w", ErrInvocationFailed, m.Binary, action, ctxErr)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %s %s: %w", ErrInvocationFailed, m.Binary, action, err)
		}
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" {
		out = strings.TrimSpace(stderr.String())
	}
	return out, nil
}

// RunWithTimeout bounds a single action by timeout.
func RunWithTimeout(c Controller, timeout time.Duration, action Action, serviceID string) (string, error) {
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return c.Run(ctx, action, serviceID)
}
