package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gravitrone/arkmgr/internal/cmd"
	"github.com/gravitrone/arkmgr/internal/logger"
	"github.com/gravitrone/arkmgr/internal/store"
	"github.com/gravitrone/arkmgr/internal/ui"
)

func main() {
	if err := newRoot().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRoot() *cobra.Command {
	var (
		settings cmd.Settings
		initDB   bool
	)
	root := &cobra.Command{
		Use:   "arkmgr",
		Short: "arkmgr - game server and mod manager",
		Long:  "arkmgr: keep a list of game servers and their mods, and start, stop or check their services.",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := settings.Config()
			if err != nil {
				return err
			}
			if err := logger.Init(cfg.LogPath); err != nil {
				return err
			}
			logger.SetDebug(cfg.Debug)
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			logger.Close()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(&settings, initDB)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	settings.Bind(root)
	root.Flags().BoolVar(&initDB, "init", false, "create an empty store first if none exists")

	root.AddCommand(cmd.InitCmd(&settings))
	root.AddCommand(cmd.ListCmd(&settings))
	root.AddCommand(cmd.ServiceCmd(&settings))
	return root
}

func runTUI(settings *cmd.Settings, initDB bool) error {
	cfg, err := settings.Config()
	if err != nil {
		return err
	}
	if initDB {
		if _, err := store.Init(cfg.DBPath); err != nil {
			return fmt.Errorf("init store: %w", err)
		}
	}

	app, err := ui.NewApp(ui.Options{
		Store:         cmd.Store(cfg),
		Controller:    cmd.Controller(cfg),
		ActionTimeout: cfg.ActionTimeout,
		TickRate:      cfg.TickRate,
	})
	if err != nil {
		if errors.Is(err, store.ErrUnavailable) {
			fmt.Fprintf(os.Stderr, "no store at %s. run 'arkmgr init' or pass --init.\n", cfg.DBPath)
		}
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
