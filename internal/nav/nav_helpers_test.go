package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gravitrone/arkmgr/internal/store"
)

type memStore struct {
	servers []store.Server
	loads   int
	saves   int
	loadErr error
	saveErr error
}

func (m *memStore) Load() ([]store.Server, error) {
	m.loads++
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return store.Clone(m.servers), nil
}

func (m *memStore) Save(servers []store.Server) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.servers = store.Clone(servers)
	return nil
}

func newMem(servers ...store.Server) *memStore {
	if servers == nil {
		servers = []store.Server{}
	}
	return &memStore{servers: servers}
}

func namedServers(names ...string) []store.Server {
	out := make([]store.Server, 0, len(names))
	for i, name := range names {
		srv := store.NewServer(uint(i + 1))
		srv.Name = name
		out = append(out, srv)
	}
	return out
}

func dispatch(t *testing.T, d *Dispatcher, st *State, syms ...Symbol) {
	t.Helper()
	for _, s := range syms {
		_, err := d.Dispatch(st, Sym(s))
		if err != nil && !errors.Is(err, ErrSelectionInvalid) {
			require.NoError(t, err, "dispatch %s", s)
		}
	}
}

func typeText(t *testing.T, d *Dispatcher, st *State, text string) {
	t.Helper()
	for _, r := range text {
		_, err := d.Dispatch(st, Char(r))
		require.NoError(t, err)
	}
}
