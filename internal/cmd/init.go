package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/arkmgr/internal/logger"
	"github.com/gravitrone/arkmgr/internal/store"
)

// InitCmd returns the `arkmgr init` command.
func InitCmd(s *Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty store file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := s.Config()
			if err != nil {
				return err
			}
			created, err := store.Init(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("init store: %w", err)
			}
			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "store already exists at %s\n", cfg.DBPath)
				return nil
			}
			logger.Info("created store at %s", cfg.DBPath)
			fmt.Fprintf(cmd.OutOrStdout(), "created store at %s\n", cfg.DBPath)
			return nil
		},
	}
}
