package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pathswitch/internal/app"
	"pathswitch/internal/cleaner"
	"pathswitch/internal/model"
	"pathswitch/internal/pathlist"
	"pathswitch/internal/transfer"
)

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return invalidArgs(cobra.ExactArgs(n)(cmd, args))
	}
}

func buildShowCmd(rt *session) *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the PATH entries in priority order",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			entries := svc.PathEntries()
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				icon := model.IconOK
				if !e.Exists {
					icon = model.IconMissing
				}
				line := fmt.Sprintf("%3d %s %s", e.Index, icon, e.Value)
				if e.Group != "" {
					line += fmt.Sprintf("  [%s: %s]", e.Group, e.Alias)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON")
	return cmd
}

func buildActivateCmd(rt *session) *cobra.Command {
	return &cobra.Command{
		Use:   "activate <group> <alias|index>",
		Short: "Put a version first on the PATH and remove its siblings",
		Long: `Activate a version of a group. The version is named by its alias, its
path, or its index in "group list". Every other path of the group is removed
from the PATH and the chosen one is put first.`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			group, target := args[0], args[1]

			var res *app.ActivateResult
			if i, convErr := strconv.Atoi(target); convErr == nil && !hasAlias(svc.Entries(group), target) {
				res, err = svc.Activate(group, i)
			} else {
				res, err = svc.ActivateAlias(group, target)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now active.\n", res.Entry.Alias)
			return nil
		},
	}
}

func hasAlias(entries []model.VersionEntry, alias string) bool {
	for _, e := range entries {
		if e.Alias == alias {
			return true
		}
	}
	return false
}

func buildScanCmd(rt *session) *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Report missing and duplicate PATH entries",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			issues := svc.Scan()
			if jsonOut {
				if issues == nil {
					issues = []model.Issue{}
				}
				return writeJSON(cmd.OutOrStdout(), issues)
			}
			printIssues(cmd, issues)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON")
	return cmd
}

func printIssues(cmd *cobra.Command, issues []model.Issue) {
	out := cmd.OutOrStdout()
	if len(issues) == 0 {
		fmt.Fprintln(out, app.StatusNoIssues)
		return
	}
	for _, is := range issues {
		fmt.Fprintf(out, "%-9s %s\n", is.Kind, is.Path)
	}
	missing, dupes := cleaner.Counts(issues)
	fmt.Fprintf(out, "%d missing, %d duplicate\n", missing, dupes)
}

func buildCleanCmd(rt *session) *cobra.Command {
	var keep []string
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove missing and duplicate PATH entries",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			issues := svc.Scan()
			for i := range issues {
				for _, k := range keep {
					if pathlist.EqualFold(issues[i].Path, k) {
						issues[i].Selected = false
					}
				}
			}

			out := cmd.OutOrStdout()
			if dryRun {
				for _, is := range issues {
					if is.Selected {
						fmt.Fprintf(out, "would remove %-9s %s\n", is.Kind, is.Path)
					}
				}
				return nil
			}

			if _, err := svc.Clean(issues); err != nil {
				return err
			}
			fmt.Fprintln(out, svc.Status())
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&keep, "keep", nil, "entries to leave in place (repeatable)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print what would be removed without writing")
	return cmd
}

func buildWhichCmd(rt *session) *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "which <name>",
		Short: "Show which PATH directories provide a command",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			matches := svc.Which(args[0])
			if jsonOut {
				if matches == nil {
					matches = []model.WhichMatch{}
				}
				return writeJSON(cmd.OutOrStdout(), matches)
			}
			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintf(out, "%s: not found on PATH\n", args[0])
				return nil
			}
			for i, m := range matches {
				marker := " "
				if i == 0 {
					marker = model.IconFirst
				}
				fmt.Fprintf(out, "%s %3d %s (%s)\n", marker, m.Index, m.Dir, m.File)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON")
	return cmd
}

func buildExportCmd(rt *session) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the groups to a JSON or YAML file",
		Long: `Write the groups to a file. The format follows the extension: .yaml and
.yml write YAML, anything else writes JSON. The default file is ` + transfer.DefaultFileName + `.`,
		Args: func(cmd *cobra.Command, args []string) error {
			return invalidArgs(cobra.MaximumNArgs(1)(cmd, args))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			file := transfer.DefaultFileName
			if len(args) == 1 {
				file = args[0]
			}
			if err := svc.Export(file); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), svc.Status())
			return nil
		},
	}
}

func buildImportCmd(rt *session) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the groups with the contents of a JSON or YAML file",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			if err := svc.Import(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), svc.Status())
			return nil
		},
	}
}

func buildHistoryCmd(rt *session) *cobra.Command {
	var jsonOut, clearAll bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent PATH changes",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			if clearAll {
				svc.ClearHistory()
				return nil
			}
			entries := svc.History()
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", e.Time, e.Message)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "delete the history")
	return cmd
}
