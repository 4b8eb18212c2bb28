package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pathswitch/internal/config"
	"pathswitch/internal/web"
)

func buildWebCmd(rt *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "web",
		Short: "Serve the JSON API and a browser page",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			addr := rt.cfg.WebAddr
			fmt.Fprintf(cmd.OutOrStdout(), "Starting pathswitch web server at http://%s\n", addr)
			return web.NewServer(svc).ListenAndServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().String("addr", config.DefaultWebAddr, "listen address")
	bindFlags(rt.v, cmd.Flags(), map[string]string{"web_addr": "addr"})
	return cmd
}
