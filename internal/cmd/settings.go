package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/gravitrone/arkmgr/internal/config"
	"github.com/gravitrone/arkmgr/internal/service"
	"github.com/gravitrone/arkmgr/internal/store"
)

// Settings are the persistent flags shared by the root command and its
// subcommands.
type Settings struct {
	ConfigPath string
	DBPath     string
	Debug      bool
}

// Bind registers the persistent flags on root.
func (s *Settings) Bind(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.StringVar(&s.ConfigPath, "config", "", "config file (default ~/.arkmgr/config)")
	flags.StringVar(&s.DBPath, "db", "", "store file, .json or .yaml (overrides db_path)")
	flags.BoolVar(&s.Debug, "debug", false, "log at debug level")
}

// Config loads the config file and applies flag overrides. A missing file
// yields the defaults.
func (s *Settings) Config() (*config.Config, error) {
	path := s.ConfigPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = config.Default()
	}
	if s.DBPath != "" {
		cfg.DBPath = s.DBPath
	}
	if s.Debug {
		cfg.Debug = true
	}
	return cfg, nil
}

// Store opens the file store named by cfg.
func Store(cfg *config.Config) *store.FileStore {
	return store.NewFileStore(cfg.DBPath)
}

// Controller builds the service manager named by cfg.
func Controller(cfg *config.Config) *service.Manager {
	return service.NewManager(cfg.ServiceManager)
}
