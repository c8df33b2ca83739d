package nav

import "github.com/gravitrone/arkmgr/internal/store"

// State is the whole navigation state. It is owned by one goroutine and
// passed by pointer to Dispatch, which is its only mutator.
type State struct {
	Screen Screen

	ServerCursor Cursor
	ModCursor    Cursor

	ServerField int
	ModField    int

	EditingServer bool
	EditingMod    bool
	ServerBuffer  string
	ModBuffer     string

	// EditErr is the last failed commit, shown next to the buffer.
	EditErr error
}

// New returns the initial state: Home with nothing selected.
func New() State {
	return State{Screen: Home, ServerCursor: None, ModCursor: None}
}

// Editing reports whether input is routed to an edit buffer.
func (s *State) Editing() bool { return s.EditingServer || s.EditingMod }

// Buffer returns the active scratch buffer.
func (s *State) Buffer() string {
	if s.EditingMod {
		return s.ModBuffer
	}
	return s.ServerBuffer
}

// SelectedServer returns the server under the cursor.
func (s *State) SelectedServer(servers []store.Server) (*store.Server, bool) {
	if !s.ServerCursor.Valid() || s.ServerCursor.Index() >= len(servers) {
		return nil, false
	}
	return &servers[s.ServerCursor.Index()], true
}

// SelectedMod returns the mod under the mod cursor of the selected server.
func (s *State) SelectedMod(servers []store.Server) (*store.Mod, bool) {
	srv, ok := s.SelectedServer(servers)
	if !ok || !s.ModCursor.Valid() || s.ModCursor.Index() >= len(srv.Mods) {
		return nil, false
	}
	return &srv.Mods[s.ModCursor.Index()], true
}

func (s *State) modCount(servers []store.Server) int {
	srv, ok := s.SelectedServer(servers)
	if !ok {
		return 0
	}
	return len(srv.Mods)
}

// selectServer moves the server cursor and resets the mod cursor.
func (s *State) selectServer(c Cursor, servers []store.Server) {
	s.ServerCursor = c.Clamp(len(servers))
	s.ModCursor = First(s.modCount(servers))
}

// Revalidate clamps both cursors and field cursors against servers. An edit
// session whose record is gone is abandoned.
func (s *State) Revalidate(servers []store.Server) {
	prev := s.ServerCursor
	s.ServerCursor = s.ServerCursor.Clamp(len(servers))
	if s.ServerCursor != prev {
		s.ModCursor = First(s.modCount(servers))
	} else {
		s.ModCursor = s.ModCursor.Clamp(s.modCount(servers))
	}
	s.ServerField = Cursor(s.ServerField).Clamp(len(ServerFields)).Index()
	s.ModField = Cursor(s.ModField).Clamp(len(ModFields)).Index()

	if s.EditingServer && !s.ServerCursor.Valid() {
		s.endEdit()
	}
	if s.EditingMod && !s.ModCursor.Valid() {
		s.endEdit()
	}
}

func (s *State) endEdit() {
	s.EditingServer = false
	s.EditingMod = false
	s.ServerBuffer = ""
	s.ModBuffer = ""
	s.EditErr = nil
}
