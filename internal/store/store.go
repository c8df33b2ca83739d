// Package store persists the server collection as a single flat file.
//
// Every mutation is a whole-collection rewrite: load, change in memory, save.
// There is no locking; the program is the only writer.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnavailable means the backing file is missing, unreadable or unwritable.
	ErrUnavailable = errors.New("store unavailable")
	// ErrCorrupt means the backing file could not be decoded.
	ErrCorrupt = errors.New("store corrupt")
	// ErrIndex means a mutation addressed a record that does not exist.
	ErrIndex = errors.New("record index out of range")
)

// Store loads and saves the full server collection.
type Store interface {
	Load() ([]Server, error)
	Save([]Server) error
}

// codec encodes a collection for one file format.
type codec interface {
	marshal([]Server) ([]byte, error)
	unmarshal([]byte) ([]Server, error)
}

type jsonCodec struct{}

func (jsonCodec) marshal(servers []Server) ([]byte, error) {
	if servers == nil {
		servers = []Server{}
	}
	data, err := json.MarshalIndent(servers, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (jsonCodec) unmarshal(data []byte) ([]Server, error) {
	var servers []Server
	if err := json.Unmarshal(data, &servers); err != nil {
		return nil, err
	}
	return servers, nil
}

type yamlCodec struct{}

func (yamlCodec) marshal(servers []Server) ([]byte, error) {
	if servers == nil {
		servers = []Server{}
	}
	return yaml.Marshal(servers)
}

func (yamlCodec) unmarshal(data []byte) ([]Server, error) {
	var servers []Server
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty document")
	}
	if err := yaml.Unmarshal(data, &servers); err != nil {
		return nil, err
	}
	return servers, nil
}

func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec{}
	default:
		return jsonCodec{}
	}
}

// FileStore is a Store backed by one JSON or YAML file, chosen by extension.
type FileStore struct {
	path  string
	codec codec
}

// NewFileStore returns a store for path. The file is not touched until Load or Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, codec: codecFor(path)}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and decodes the whole file.
func (s *FileStore) Load() ([]Server, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrUnavailable, s.path, err)
	}
	servers, err := s.codec.unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrCorrupt, s.path, err)
	}
	if servers == nil {
		servers = []Server{}
	}
	for i := range servers {
		if servers[i].Mods == nil {
			servers[i].Mods = []Mod{}
		}
	}
	return servers, nil
}

// Save atomically replaces the file with the encoded collection.
func (s *FileStore) Save(servers []Server) error {
	data, err := s.codec.marshal(servers)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}

	// Atomic write: temp file + rename
	tmpFile := s.path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrUnavailable, tmpFile, err)
	}
	if err := os.Rename(tmpFile, s.path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("%w: replace %s: %w", ErrUnavailable, s.path, err)
	}
	return nil
}

// Init creates an empty collection at path unless a file already exists.
// It reports whether a new file was written.
func Init(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("%w: stat %s: %w", ErrUnavailable, path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("%w: create dir: %w", ErrUnavailable, err)
	}
	if err := NewFileStore(path).Save([]Server{}); err != nil {
		return false, err
	}
	return true, nil
}
