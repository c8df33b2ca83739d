// Package nav implements the navigation state machine: cursors, screens,
// field-driven edit sessions and dispatch of input symbols against the store.
package nav

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gravitrone/arkmgr/internal/logger"
	"github.com/gravitrone/arkmgr/internal/service"
	"github.com/gravitrone/arkmgr/internal/store"
)

// ErrSelectionInvalid means an operation needed a selected record and had none.
var ErrSelectionInvalid = errors.New("no record selected")

// Request is a service action for the event loop to run.
type Request struct {
	Action      service.Action
	ServerID    uint
	ServerName  string
	ServiceName string
}

// Result describes side effects of one dispatch.
type Result struct {
	Quit    bool
	Wrote   bool
	Request *Request
}

// Dispatcher applies inputs to a State, reading and writing through a Store.
type Dispatcher struct {
	store store.Store
	log   *slog.Logger
}

// NewDispatcher returns a Dispatcher backed by s.
func NewDispatcher(s store.Store) *Dispatcher {
	return &Dispatcher{store: s, log: logger.WithComponent("nav")}
}

// Dispatch applies in to st. st is only changed when Dispatch succeeds, with
// one exception: a *FieldTypeError is recorded in st.EditErr so the failed
// buffer stays on screen.
func (d *Dispatcher) Dispatch(st *State, in Input) (Result, error) {
	if in.Sym == SymQuit && !st.Editing() {
		return Result{Quit: true}, nil
	}

	servers, err := d.store.Load()
	if err != nil {
		return Result{}, fmt.Errorf("dispatch %s: %w", in, err)
	}

	next := *st
	next.Revalidate(servers)

	var res Result
	switch {
	case next.EditingServer:
		res, err = d.editServer(&next, in, servers)
	case next.EditingMod:
		res, err = d.editMod(&next, in, servers)
	default:
		res, err = d.navigate(&next, in, servers)
	}

	if err != nil {
		var fte *FieldTypeError
		if errors.As(err, &fte) {
			st.EditErr = fte
		}
		if errors.Is(err, ErrSelectionInvalid) {
			d.log.Debug("selection invalid", "screen", next.Screen.String(), "input", in.String())
		}
		return Result{}, err
	}
	*st = next
	return res, nil
}

func (d *Dispatcher) navigate(st *State, in Input, servers []store.Server) (Result, error) {
	switch in.Sym {
	case SymHome:
		st.Screen = Home
		return Result{}, nil
	case SymServers:
		st.Screen = Servers
		return Result{}, nil
	}

	switch st.Screen {
	case Servers:
		return d.servers(st, in, servers)
	case ServerDetail:
		return d.serverDetail(st, in, servers)
	case ServerEdit:
		return d.fieldSelect(st, in, servers, &st.ServerField, len(ServerFields))
	case ModList:
		return d.modList(st, in, servers)
	case ModDetail:
		return d.modDetail(st, in, servers)
	case ModEdit:
		return d.fieldSelect(st, in, servers, &st.ModField, len(ModFields))
	}
	return Result{}, nil
}

func (d *Dispatcher) servers(st *State, in Input, servers []store.Server) (Result, error) {
	switch in.Sym {
	case SymNext:
		if len(servers) > 0 {
			st.selectServer(st.ServerCursor.Next(len(servers)), servers)
		}
	case SymPrev:
		if len(servers) > 0 {
			st.selectServer(st.ServerCursor.Prev(len(servers)), servers)
		}
	case SymOpen:
		if !st.ServerCursor.Valid() {
			return Result{}, ErrSelectionInvalid
		}
		st.Screen = ServerDetail
	case SymAdd:
		updated, err := store.AddServer(d.store)
		if err != nil {
			return Result{}, fmt.Errorf("add server: %w", err)
		}
		if !st.ServerCursor.Valid() {
			st.selectServer(st.ServerCursor.AfterAdd(), updated)
		}
		return Result{Wrote: true}, nil
	case SymDelete:
		if !st.ServerCursor.Valid() {
			return Result{}, ErrSelectionInvalid
		}
		updated, err := store.RemoveServer(d.store, st.ServerCursor.Index())
		if err != nil {
			return Result{}, fmt.Errorf("delete server: %w", err)
		}
		st.selectServer(st.ServerCursor.AfterDelete(len(updated)), updated)
		return Result{Wrote: true}, nil
	case SymStart, SymStop, SymRestart, SymStatus:
		return serviceRequest(st, in, servers)
	}
	return Result{}, nil
}

func (d *Dispatcher) serverDetail(st *State, in Input, servers []store.Server) (Result, error) {
	switch in.Sym {
	case SymBack:
		st.Screen = Servers
	case SymEdit:
		if !st.ServerCursor.Valid() {
			return Result{}, ErrSelectionInvalid
		}
		st.Screen = ServerEdit
		st.ServerField = 0
	case SymOpenMods:
		if !st.ServerCursor.Valid() {
			return Result{}, ErrSelectionInvalid
		}
		st.Screen = ModList
		st.ModCursor = First(st.modCount(servers))
	case SymStart, SymStop, SymRestart, SymStatus:
		return serviceRequest(st, in, servers)
	}
	return Result{}, nil
}

// fieldSelect drives ServerEdit and ModEdit, which differ only in table size
// and which cursor gates entry.
func (d *Dispatcher) fieldSelect(st *State, in Input, servers []store.Server, field *int, count int) (Result, error) {
	switch in.Sym {
	case SymNext:
		*field = Cursor(*field).Next(count).Index()
	case SymPrev:
		*field = Cursor(*field).Prev(count).Index()
	case SymBack:
		st.Screen, _ = st.Screen.Parent()
	case SymConfirm:
		if st.Screen == ServerEdit {
			if _, ok := st.SelectedServer(servers); !ok {
				return Result{}, ErrSelectionInvalid
			}
			st.EditingServer = true
			st.ServerBuffer = ""
		} else {
			if _, ok := st.SelectedMod(servers); !ok {
				return Result{}, ErrSelectionInvalid
			}
			st.EditingMod = true
			st.ModBuffer = ""
		}
		st.EditErr = nil
	}
	return Result{}, nil
}

func (d *Dispatcher) modList(st *State, in Input, servers []store.Server) (Result, error) {
	n := st.modCount(servers)
	switch in.Sym {
	case SymNext:
		if n > 0 {
			st.ModCursor = st.ModCursor.Next(n)
		}
	case SymPrev:
		if n > 0 {
			st.ModCursor = st.ModCursor.Prev(n)
		}
	case SymBack:
		st.Screen = ServerDetail
	case SymOpen:
		if !st.ModCursor.Valid() {
			return Result{}, ErrSelectionInvalid
		}
		st.Screen = ModDetail
	case SymAdd:
		if !st.ServerCursor.Valid() {
			return Result{}, ErrSelectionInvalid
		}
		if _, err := store.AddMod(d.store, st.ServerCursor.Index()); err != nil {
			return Result{}, fmt.Errorf("add mod: %w", err)
		}
		st.ModCursor = st.ModCursor.AfterAdd()
		return Result{Wrote: true}, nil
	case SymDelete:
		if !st.ServerCursor.Valid() || !st.ModCursor.Valid() {
			return Result{}, ErrSelectionInvalid
		}
		i := st.ServerCursor.Index()
		updated, err := store.RemoveMod(d.store, i, st.ModCursor.Index())
		if err != nil {
			return Result{}, fmt.Errorf("delete mod: %w", err)
		}
		st.ModCursor = st.ModCursor.AfterDelete(len(updated[i].Mods))
		return Result{Wrote: true}, nil
	}
	return Result{}, nil
}

func (d *Dispatcher) modDetail(st *State, in Input, servers []store.Server) (Result, error) {
	switch in.Sym {
	case SymBack:
		st.Screen = ModList
	case SymEdit:
		if _, ok := st.SelectedMod(servers); !ok {
			return Result{}, ErrSelectionInvalid
		}
		st.Screen = ModEdit
		st.ModField = 0
	case SymToggle:
		// Accepted but not wired to the enabled flag.
		d.log.Debug("toggle ignored", "mod_cursor", int(st.ModCursor))
	}
	return Result{}, nil
}

func (d *Dispatcher) editServer(st *State, in Input, servers []store.Server) (Result, error) {
	switch in.Sym {
	case SymChar:
		if Accepts(in.Rune) {
			st.ServerBuffer += string(in.Rune)
		}
	case SymBackspace:
		// Inert while editing.
	case SymConfirm:
		i := st.ServerCursor.Index()
		_, err := store.UpdateServer(d.store, i, func(srv *store.Server) error {
			return Commit(ServerFields, st.ServerField, srv, st.ServerBuffer)
		})
		if err != nil {
			return Result{}, fmt.Errorf("commit server %s: %w", ServerFields[st.ServerField].Name, err)
		}
		st.endEdit()
		return Result{Wrote: true}, nil
	}
	return Result{}, nil
}

func (d *Dispatcher) editMod(st *State, in Input, servers []store.Server) (Result, error) {
	switch in.Sym {
	case SymChar:
		if Accepts(in.Rune) {
			st.ModBuffer += string(in.Rune)
		}
	case SymBackspace:
	case SymConfirm:
		i, j := st.ServerCursor.Index(), st.ModCursor.Index()
		_, err := store.UpdateMod(d.store, i, j, func(m *store.Mod) error {
			return Commit(ModFields, st.ModField, m, st.ModBuffer)
		})
		if err != nil {
			return Result{}, fmt.Errorf("commit mod %s: %w", ModFields[st.ModField].Name, err)
		}
		st.endEdit()
		return Result{Wrote: true}, nil
	}
	return Result{}, nil
}

func serviceRequest(st *State, in Input, servers []store.Server) (Result, error) {
	srv, ok := st.SelectedServer(servers)
	if !ok {
		return Result{}, ErrSelectionInvalid
	}
	action := map[Symbol]service.Action{
		SymStart:   service.Start,
		SymStop:    service.Stop,
		SymRestart: service.Restart,
		SymStatus:  service.Status,
	}[in.Sym]
	return Result{Request: &Request{
		Action:      action,
		ServerID:    srv.ID,
		ServerName:  srv.Name,
		ServiceName: srv.ServiceName,
	}}, nil
}
