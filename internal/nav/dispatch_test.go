package nav

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/arkmgr/internal/service"
	"github.com/gravitrone/arkmgr/internal/store"
)

func TestQuitFromAnyNonEditingScreen(t *testing.T) {
	for _, screen := range []Screen{Home, Servers, ServerDetail, ServerEdit, ModList, ModDetail, ModEdit} {
		mem := newMem()
		mem.loadErr = errors.New("unreachable")
		st := New()
		st.Screen = screen
		res, err := NewDispatcher(mem).Dispatch(&st, Sym(SymQuit))
		require.NoError(t, err, screen.String())
		assert.True(t, res.Quit, screen.String())
	}
}

func TestEmptyCollectionNavigationIsNoop(t *testing.T) {
	mem := newMem()
	d := NewDispatcher(mem)
	st := New()
	dispatch(t, d, &st, SymServers)
	before := st

	for _, sym := range []Symbol{SymNext, SymPrev, SymOpen, SymDelete} {
		res, err := d.Dispatch(&st, Sym(sym))
		if err != nil {
			assert.ErrorIs(t, err, ErrSelectionInvalid, sym.String())
		}
		assert.False(t, res.Wrote, sym.String())
		assert.Equal(t, None, st.ServerCursor, sym.String())
	}
	assert.Equal(t, before, st)
	assert.Equal(t, 0, mem.saves)
}

func TestAddKeepsCursorTarget(t *testing.T) {
	mem := newMem(namedServers("alpha", "beta")...)
	d := NewDispatcher(mem)
	st := New()
	dispatch(t, d, &st, SymServers, SymNext)
	require.Equal(t, Cursor(1), st.ServerCursor)

	res, err := d.Dispatch(&st, Sym(SymAdd))
	require.NoError(t, err)
	assert.True(t, res.Wrote)
	assert.Equal(t, Cursor(1), st.ServerCursor)
	require.Len(t, mem.servers, 3)
	assert.Equal(t, "beta", mem.servers[st.ServerCursor].Name)
	assert.Equal(t, "New Server", mem.servers[2].Name)
	assert.Equal(t, uint(3), mem.servers[2].ID)
}

func TestAddOnEmptySelectsNewRecord(t *testing.T) {
	mem := newMem()
	d := NewDispatcher(mem)
	st := New()
	dispatch(t, d, &st, SymServers, SymAdd)

	assert.Equal(t, Cursor(0), st.ServerCursor)
	assert.Equal(t, None, st.ModCursor)
	assert.Equal(t, 1, mem.saves)
}

func TestDeleteOnlyElementLeavesNone(t *testing.T) {
	mem := newMem(namedServers("alpha")...)
	d := NewDispatcher(mem)
	st := New()
	dispatch(t, d, &st, SymServers, SymDelete)

	assert.Empty(t, mem.servers)
	assert.Equal(t, None, st.ServerCursor)
}

func TestDeleteShiftsCursorLeft(t *testing.T) {
	mem := newMem(namedServers("a", "b", "c")...)
	d := NewDispatcher(mem)
	st := New()
	dispatch(t, d, &st, SymServers, SymNext, SymNext)
	require.Equal(t, Cursor(2), st.ServerCursor)

	dispatch(t, d, &st, SymPrev, SymDelete)
	assert.Equal(t, Cursor(0), st.ServerCursor)
	require.Len(t, mem.servers, 2)
	assert.Equal(t, "a", mem.servers[0].Name)
	assert.Equal(t, "c", mem.servers[1].Name)

	dispatch(t, d, &st, SymDelete)
	assert.Equal(t, Cursor(0), st.ServerCursor)
	assert.Equal(t, "c", mem.servers[0].Name)
}

func TestScreenTransitions(t *testing.T) {
	mem := newMem(namedServers("alpha")...)
	d := NewDispatcher(mem)
	st := New()

	steps := []struct {
		sym  Symbol
		want Screen
	}{
		{SymServers, Servers},
		{SymOpen, ServerDetail},
		{SymEdit, ServerEdit},
		{SymBack, ServerDetail},
		{SymOpenMods, ModList},
		{SymOpen, ModList},
		{SymAdd, ModList},
		{SymOpen, ModDetail},
		{SymToggle, ModDetail},
		{SymEdit, ModEdit},
		{SymBack, ModDetail},
		{SymBack, ModList},
		{SymBack, ServerDetail},
		{SymBack, Servers},
		{SymHome, Home},
	}
	for i, step := range steps {
		dispatch(t, d, &st, step.sym)
		assert.Equal(t, step.want, st.Screen, "step %d (%s)", i, step.sym)
	}
}

func TestToggleDoesNotWrite(t *testing.T) {
	srv := namedServers("alpha")[0]
	srv.Mods = []store.Mod{store.NewMod(1)}
	mem := newMem(srv)
	d := NewDispatcher(mem)
	st := New()
	dispatch(t, d, &st, SymServers, SymOpen, SymOpenMods, SymOpen)
	require.Equal(t, ModDetail, st.Screen)

	res, err := d.Dispatch(&st, Sym(SymToggle))
	require.NoError(t, err)
	assert.False(t, res.Wrote)
	assert.Equal(t, 0, mem.saves)
	assert.False(t, mem.servers[0].Mods[0].Enabled)
}

func TestUnknownSymbolsAreNoops(t *testing.T) {
	mem := newMem(namedServers("alpha")...)
	d := NewDispatcher(mem)
	for _, screen := range []Screen{Home, Servers, ServerDetail, ServerEdit, ModList, ModDetail, ModEdit} {
		st := New()
		st.Screen = screen
		st.ServerCursor = 0
		for _, sym := range []Symbol{SymNone, SymChar, SymBackspace, Symbol(99)} {
			before := st
			res, err := d.Dispatch(&st, Input{Sym: sym, Rune: 'z'})
			require.NoError(t, err)
			assert.Equal(t, Result{}, res)
			assert.Equal(t, before, st, "%s on %s", sym, screen)
		}
	}
	assert.Equal(t, 0, mem.saves)
}

func TestEditFieldCursorWraps(t *testing.T) {
	mem := newMem(namedServers("alpha")...)
	d := NewDispatcher(mem)
	st := New()
	dispatch(t, d, &st, SymServers, SymOpen, SymEdit)
	dispatch(t, d, &st, SymPrev)
	assert.Equal(t, len(ServerFields)-1, st.ServerField)
	dispatch(t, d, &st, SymNext)
	assert.Equal(t, 0, st.ServerField)

	dispatch(t, d, &st, SymNext, SymBack, SymEdit)
	assert.Equal(t, 0, st.ServerField)
}

func TestEditCommitUpdatesOneField(t *testing.T) {
	mem := newMem(namedServers("alpha", "beta")...)
	d := NewDispatcher(mem)
	st := New()
	dispatch(t, d, &st, SymServers, SymNext, SymOpen, SymEdit, SymNext, SymNext, SymNext)
	require.Equal(t, 3, st.ServerField)

	dispatch(t, d, &st, SymConfirm)
	require.True(t, st.EditingServer)
	typeText(t, d, &st, "17")
	assert.Equal(t, "17", st.Buffer())

	before := store.Clone(mem.servers)
	res, err := d.Dispatch(&st, Sym(SymConfirm))
	require.NoError(t, err)
	assert.True(t, res.Wrote)
	assert.False(t, st.EditingServer)
	assert.Empty(t, st.ServerBuffer)

	before[1].Age = 17
	assert.Equal(t, before, mem.servers)
}

func TestInvalidIntegerCommitLeavesFileUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	_, err := store.Init(path)
	require.NoError(t, err)
	fs := store.NewFileStore(path)
	_, err = store.AddServer(fs)
	require.NoError(t, err)
	original, err := os.ReadFile(path)
	require.NoError(t, err)

	d := NewDispatcher(fs)
	st := New()
	dispatch(t, d, &st, SymServers, SymOpen, SymEdit, SymConfirm)
	typeText(t, d, &st, "12x")

	_, err = d.Dispatch(&st, Sym(SymConfirm))
	require.Error(t, err)
	var fte *FieldTypeError
	require.True(t, errors.As(err, &fte))
	assert.Equal(t, "id", fte.Field)

	assert.True(t, st.EditingServer)
	assert.Equal(t, "12x", st.Buffer())
	assert.Same(t, fte, st.EditErr)

	current, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, current)
}

func TestEditingTreatsGlobalKeysAsText(t *testing.T) {
	mem := newMem(namedServers("alpha")...)
	d := NewDispatcher(mem)
	st := New()
	dispatch(t, d, &st, SymServers, SymOpen, SymEdit, SymNext, SymConfirm)

	typeText(t, d, &st, "q h s")
	dispatch(t, d, &st, SymQuit, SymHome, SymBack, SymBackspace)
	typeText(t, d, &st, "X!")
	assert.Equal(t, "q h s", st.Buffer())
	assert.Equal(t, ServerEdit, st.Screen)
	assert.True(t, st.Editing())

	dispatch(t, d, &st, SymConfirm)
	assert.Equal(t, "q h s", mem.servers[0].Name)
}

func TestStoreErrorLeavesStateUnchanged(t *testing.T) {
	mem := newMem(namedServers("alpha")...)
	d := NewDispatcher(mem)
	st := New()
	dispatch(t, d, &st, SymServers)

	mem.saveErr = store.ErrUnavailable
	before := st
	_, err := d.Dispatch(&st, Sym(SymAdd))
	assert.ErrorIs(t, err, store.ErrUnavailable)
	assert.Equal(t, before, st)

	dispatch(t, d, &st, SymOpen, SymEdit, SymConfirm)
	typeText(t, d, &st, "7")
	before = st
	_, err = d.Dispatch(&st, Sym(SymConfirm))
	assert.ErrorIs(t, err, store.ErrUnavailable)
	assert.Equal(t, before, st)
	assert.True(t, st.EditingServer)

	mem.loadErr = store.ErrCorrupt
	_, err = d.Dispatch(&st, Sym(SymConfirm))
	assert.ErrorIs(t, err, store.ErrCorrupt)
}

func TestStaleModCursorIsClamped(t *testing.T) {
	a := namedServers("a", "b")
	a[0].Mods = []store.Mod{store.NewMod(1), store.NewMod(2), store.NewMod(3)}
	mem := newMem(a...)
	d := NewDispatcher(mem)

	st := New()
	st.Screen = ModList
	st.ServerCursor = 1
	st.ModCursor = 2

	assert.NotPanics(t, func() {
		for _, sym := range []Symbol{SymOpen, SymDelete, SymNext, SymPrev} {
			_, err := d.Dispatch(&st, Sym(sym))
			if err != nil {
				assert.ErrorIs(t, err, ErrSelectionInvalid)
			}
		}
	})
	assert.Equal(t, None, st.ModCursor)
	assert.Equal(t, 0, mem.saves)

	st = New()
	st.Screen = Servers
	st.ModCursor = 2
	dispatch(t, d, &st, SymNext)
	assert.Equal(t, Cursor(1), st.ServerCursor)
	assert.Equal(t, None, st.ModCursor)
	dispatch(t, d, &st, SymNext)
	assert.Equal(t, Cursor(0), st.ModCursor)
}

func TestExternalShrinkAbandonsEdit(t *testing.T) {
	mem := newMem(namedServers("a", "b")...)
	d := NewDispatcher(mem)
	st := New()
	dispatch(t, d, &st, SymServers, SymNext, SymOpen)
	require.Equal(t, Cursor(1), st.ServerCursor)

	mem.servers = mem.servers[:1]
	dispatch(t, d, &st, SymEdit, SymConfirm)
	assert.Equal(t, Cursor(0), st.ServerCursor)
	assert.True(t, st.EditingServer)

	mem.servers = []store.Server{}
	dispatch(t, d, &st, SymNone)
	assert.False(t, st.Editing())
	assert.Equal(t, None, st.ServerCursor)
}

func TestServiceRequests(t *testing.T) {
	srv := namedServers("alpha")[0]
	srv.ServiceName = "ark-alpha"
	mem := newMem(srv)
	d := NewDispatcher(mem)
	st := New()
	dispatch(t, d, &st, SymServers)

	for sym, action := range map[Symbol]service.Action{
		SymStart: service.Start, SymStop: service.Stop, SymRestart: service.Restart, SymStatus: service.Status,
	} {
		res, err := d.Dispatch(&st, Sym(sym))
		require.NoError(t, err)
		require.NotNil(t, res.Request, sym.String())
		assert.Equal(t, action, res.Request.Action)
		assert.Equal(t, "ark-alpha", res.Request.ServiceName)
		assert.Equal(t, uint(1), res.Request.ServerID)
	}

	dispatch(t, d, &st, SymOpen)
	res, err := d.Dispatch(&st, Sym(SymRestart))
	require.NoError(t, err)
	require.NotNil(t, res.Request)

	dispatch(t, d, &st, SymOpenMods)
	res, err = d.Dispatch(&st, Sym(SymRestart))
	require.NoError(t, err)
	assert.Nil(t, res.Request)
	assert.Equal(t, 0, mem.saves)
}

func TestServiceRequestWithoutSelection(t *testing.T) {
	d := NewDispatcher(newMem())
	st := New()
	st.Screen = Servers
	_, err := d.Dispatch(&st, Sym(SymStart))
	assert.ErrorIs(t, err, ErrSelectionInvalid)
}

func TestAlphaModScenario(t *testing.T) {
	mem := newMem(namedServers("Alpha")...)
	d := NewDispatcher(mem)
	st := New()

	dispatch(t, d, &st, SymServers, SymOpen, SymOpenMods, SymAdd, SymAdd)
	require.Len(t, mem.servers[0].Mods, 2)
	secondID := mem.servers[0].Mods[1].ID

	require.Equal(t, Cursor(0), st.ModCursor)
	dispatch(t, d, &st, SymDelete)
	require.Len(t, mem.servers[0].Mods, 1)
	assert.Equal(t, secondID, mem.servers[0].Mods[0].ID)

	dispatch(t, d, &st, SymOpen, SymEdit, SymNext)
	require.Equal(t, ModEdit, st.Screen)
	require.Equal(t, 1, st.ModField)
	dispatch(t, d, &st, SymConfirm)
	typeText(t, d, &st, "boot")
	dispatch(t, d, &st, SymConfirm)

	assert.False(t, st.EditingMod)
	assert.Equal(t, "boot", mem.servers[0].Mods[0].Name)
	assert.Equal(t, "Alpha", mem.servers[0].Name)
}

func TestEveryDispatchReloads(t *testing.T) {
	mem := newMem(namedServers("alpha")...)
	d := NewDispatcher(mem)
	st := New()
	dispatch(t, d, &st, SymServers, SymNext, SymPrev)
	assert.Equal(t, 3, mem.loads)
}
