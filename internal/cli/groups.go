package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pathswitch/internal/app"
	"pathswitch/internal/errors"
	"pathswitch/internal/model"
)

type groupListing struct {
	Name     string          `json:"name"`
	Selected bool            `json:"selected"`
	Entries  []app.EntryView `json:"entries"`
}

func buildGroupCmd(rt *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage groups of alternative versions",
	}

	var jsonOut bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List groups and their versions",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			listing := make([]groupListing, 0)
			for _, name := range svc.GroupNames() {
				listing = append(listing, groupListing{
					Name:     name,
					Selected: name == svc.SelectedGroup(),
					Entries:  svc.GroupEntries(name),
				})
			}
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), listing)
			}
			out := cmd.OutOrStdout()
			for _, g := range listing {
				fmt.Fprintln(out, g.Name)
				for i, e := range g.Entries {
					icon := model.IconInactive
					if e.Active {
						icon = model.IconActive
					}
					line := fmt.Sprintf("  %s %2d %s  %s", icon, i, e.Alias, e.Path)
					if !e.Exists {
						line += " " + model.IconMissing
					}
					fmt.Fprintln(out, line)
				}
			}
			return nil
		},
	}
	listCmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON")

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create an empty group",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			return svc.AddGroup(args[0])
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Delete a group; the PATH is left as it is",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			return svc.RemoveGroup(args[0])
		},
	}

	selectCmd := &cobra.Command{
		Use:   "select <name>",
		Short: "Make a group the one the interface opens on",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			return svc.SelectGroup(args[0])
		},
	}

	cmd.AddCommand(listCmd, addCmd, removeCmd, selectCmd)
	return cmd
}

func buildEntryCmd(rt *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Manage the versions of a group",
	}

	var alias string
	addCmd := &cobra.Command{
		Use:   "add <group> <path>",
		Short: "Append a version to a group",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			return svc.AddEntry(args[0], args[1], alias)
		},
	}
	addCmd.Flags().StringVar(&alias, "alias", "", "display name (default \""+model.DefaultAlias+"\")")

	var editPath, editAlias string
	editCmd := &cobra.Command{
		Use:   "edit <group> <index>",
		Short: "Change the path or alias of a version",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			i, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			entries := svc.Entries(args[0])
			if i >= len(entries) {
				return errors.Newf(errors.ErrNotFound, "group %q has no entry %d", args[0], i)
			}
			e := entries[i]
			if cmd.Flags().Changed("path") {
				e.Path = editPath
			}
			if cmd.Flags().Changed("alias") {
				e.Alias = editAlias
			}
			return svc.UpdateEntry(args[0], i, e.Path, e.Alias)
		},
	}
	editCmd.Flags().StringVar(&editPath, "path", "", "new path")
	editCmd.Flags().StringVar(&editAlias, "alias", "", "new alias")

	indexCmd := func(use, short string, op func(svc *app.Service, group string, i int) error) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <group> <index>",
			Short: short,
			Args:  exactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := rt.service()
				if err != nil {
					return err
				}
				i, err := parseIndex(args[1])
				if err != nil {
					return err
				}
				return op(svc, args[0], i)
			},
		}
	}

	cmd.AddCommand(
		addCmd,
		editCmd,
		indexCmd("remove", "Delete a version from a group", (*app.Service).RemoveEntry),
		indexCmd("up", "Move a version one place up", (*app.Service).MoveEntryUp),
		indexCmd("down", "Move a version one place down", (*app.Service).MoveEntryDown),
	)
	return cmd
}
