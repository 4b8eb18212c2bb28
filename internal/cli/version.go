package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/tcnksm/go-latest"

	"pathswitch/internal/model"
)

// Release repository checked by "update".
var (
	ReleaseOwner      = "pathswitch"
	ReleaseRepository = "pathswitch"
)

func buildVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  exactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "pathswitch %s\n", model.Version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

func buildUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Check whether a newer release is available",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			githubTag := &latest.GithubTag{
				Owner:      ReleaseOwner,
				Repository: ReleaseRepository,
			}
			res, err := latest.Check(githubTag, model.Version)
			if err != nil {
				return fmt.Errorf("check for updates: %w", err)
			}

			out := cmd.OutOrStdout()
			if res.Outdated {
				fmt.Fprintf(out, "A new version is available: %s (you have %s)\n", res.Current, model.Version)
				fmt.Fprintf(out, "Download it from https://github.com/%s/%s/releases\n", ReleaseOwner, ReleaseRepository)
				return nil
			}
			fmt.Fprintf(out, "You are using the latest version: %s\n", model.Version)
			return nil
		},
	}
}
