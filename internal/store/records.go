package store

import "fmt"

// --- Read-Modify-Write Helpers ---

// AddServer appends a default server and returns the saved collection.
func AddServer(s Store) ([]Server, error) {
	servers, err := s.Load()
	if err != nil {
		return nil, err
	}
	servers = append(servers, NewServer(nextServerID(servers)))
	if err := s.Save(servers); err != nil {
		return nil, err
	}
	return servers, nil
}

// RemoveServer deletes the server at index i.
func RemoveServer(s Store, i int) ([]Server, error) {
	servers, err := s.Load()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(servers) {
		return nil, fmt.Errorf("remove server %d of %d: %w", i, len(servers), ErrIndex)
	}
	servers = append(servers[:i], servers[i+1:]...)
	if err := s.Save(servers); err != nil {
		return nil, err
	}
	return servers, nil
}

// UpdateServer applies fn to the server at index i and saves only if fn succeeds.
func UpdateServer(s Store, i int, fn func(*Server) error) ([]Server, error) {
	servers, err := s.Load()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(servers) {
		return nil, fmt.Errorf("update server %d of %d: %w", i, len(servers), ErrIndex)
	}
	if err := fn(&servers[i]); err != nil {
		return nil, err
	}
	if err := s.Save(servers); err != nil {
		return nil, err
	}
	return servers, nil
}

// AddMod appends a default mod to the server at index i.
func AddMod(s Store, i int) ([]Server, error) {
	return UpdateServer(s, i, func(srv *Server) error {
		srv.Mods = append(srv.Mods, NewMod(nextModID(srv.Mods)))
		return nil
	})
}

// RemoveMod deletes mod j of server i.
func RemoveMod(s Store, i, j int) ([]Server, error) {
	return UpdateServer(s, i, func(srv *Server) error {
		if j < 0 || j >= len(srv.Mods) {
			return fmt.Errorf("remove mod %d of %d: %w", j, len(srv.Mods), ErrIndex)
		}
		srv.Mods = append(srv.Mods[:j], srv.Mods[j+1:]...)
		return nil
	})
}

// UpdateMod applies fn to mod j of server i and saves only if fn succeeds.
func UpdateMod(s Store, i, j int, fn func(*Mod) error) ([]Server, error) {
	return UpdateServer(s, i, func(srv *Server) error {
		if j < 0 || j >= len(srv.Mods) {
			return fmt.Errorf("update mod %d of %d: %w", j, len(srv.Mods), ErrIndex)
		}
		return fn(&srv.Mods[j])
	})
}

// FindServer returns the index of the server with the given id, or -1.
func FindServer(servers []Server, id uint) int {
	for i, s := range servers {
		if s.ID == id {
			return i
		}
	}
	return -1
}
