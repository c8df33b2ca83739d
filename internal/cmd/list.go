package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gravitrone/arkmgr/internal/store"
)

// ListCmd returns the `arkmgr list` command.
func ListCmd(s *Settings) *cobra.Command {
	var withMods bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print servers and their mods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := s.Config()
			if err != nil {
				return err
			}
			servers, err := Store(cfg).Load()
			if err != nil {
				return fmt.Errorf("list servers: %w", err)
			}
			printServers(cmd.OutOrStdout(), servers, withMods)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&withMods, "mods", "m", true, "include mods under each server")
	return cmd
}

func printServers(w io.Writer, servers []store.Server, withMods bool) {
	if len(servers) == 0 {
		fmt.Fprintln(w, "no servers found")
		return
	}
	for _, srv := range servers {
		svc := srv.ServiceName
		if svc == "" {
			svc = "-"
		}
		fmt.Fprintf(w, "%d  %s  [%s]  service: %s  mods: %d\n", srv.ID, srv.Name, srv.Category, svc, len(srv.Mods))
		if !withMods {
			continue
		}
		for _, m := range srv.Mods {
			state := "disabled"
			if m.Enabled {
				state = "enabled"
			}
			fmt.Fprintf(w, "    %d  %s  [%s]  %s\n", m.ID, m.Name, m.Category, state)
		}
	}
}
