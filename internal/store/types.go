package store

import "time"

// --- Records ---

// Server is a managed game server and the mods installed on it.
type Server struct {
	ID          uint      `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Category    string    `json:"category" yaml:"category"`
	Age         uint      `json:"age" yaml:"age"`
	ServiceName string    `json:"service_name" yaml:"service_name"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	Mods        []Mod     `json:"mods" yaml:"mods"`
}

// Mod is owned by exactly one Server.
type Mod struct {
	ID          uint      `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Category    string    `json:"category" yaml:"category"`
	Description string    `json:"description" yaml:"description"`
	Enabled     bool      `json:"enabled" yaml:"enabled"`
	Age         uint      `json:"age" yaml:"age"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

const (
	defaultServerName = "New Server"
	defaultModName    = "New Mod"
)

// now is swapped in tests for stable timestamps.
var now = func() time.Time { return time.Now().UTC() }

// NewServer returns a blank server with the given id.
func NewServer(id uint) Server {
	return Server{
		ID:        id,
		Name:      defaultServerName,
		CreatedAt: now(),
		Mods:      []Mod{},
	}
}

// NewMod returns a blank, disabled mod with the given id.
func NewMod(id uint) Mod {
	return Mod{
		ID:        id,
		Name:      defaultModName,
		CreatedAt: now(),
	}
}

func nextServerID(servers []Server) uint {
	var max uint
	for _, s := range servers {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}

func nextModID(mods []Mod) uint {
	var max uint
	for _, m := range mods {
		if m.ID > max {
			max = m.ID
		}
	}
	return max + 1
}

// Clone returns a deep copy so callers can mutate without aliasing mod slices.
func Clone(servers []Server) []Server {
	if servers == nil {
		return nil
	}
	out := make([]Server, len(servers))
	for i, s := range servers {
		out[i] = s
		out[i].Mods = append([]Mod(nil), s.Mods...)
	}
	return out
}
