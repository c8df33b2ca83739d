package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gravitrone/arkmgr/internal/logger"
	"github.com/gravitrone/arkmgr/internal/service"
	"github.com/gravitrone/arkmgr/internal/store"
)

// ServiceCmd returns the `arkmgr service` command.
func ServiceCmd(s *Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "service <start|stop|restart|status> <server-id>",
		Short: "Run a service action for a server",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := service.ParseAction(args[0])
			if err != nil {
				return err
			}
			id, err := strconv.ParseUint(args[1], 10, strconv.IntSize)
			if err != nil {
				return fmt.Errorf("server id must be a number, got %q", args[1])
			}

			cfg, err := s.Config()
			if err != nil {
				return err
			}
			servers, err := Store(cfg).Load()
			if err != nil {
				return fmt.Errorf("load servers: %w", err)
			}
			i := store.FindServer(servers, uint(id))
			if i < 0 {
				return fmt.Errorf("server %d not found", id)
			}
			srv := servers[i]

			out, err := service.RunWithTimeout(Controller(cfg), cfg.ActionTimeout, action, srv.ServiceName)
			if err != nil {
				logger.Warn("service %s for server %d failed: %v", action.Label(), srv.ID, err)
				return fmt.Errorf("%s %s: %w", action.Label(), srv.Name, err)
			}
			if out == "" {
				out = "(no output)"
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
