package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func buildConfigCmd(rt *session) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(rt.cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
