// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Manage workspaces",
}

var createWorkspaceCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new workspace owned by the caller",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newAPIClient(httpEndpoint).CreateWorkspace(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to create workspace: %w", err)
		}

		fmt.Printf("Workspace created: %s (ID: %s)\n", ws.Name, ws.ID)
		return nil
	},
}

var getWorkspaceCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a workspace and its members",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newAPIClient(httpEndpoint).GetWorkspace(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get workspace: %w", err)
		}

		fmt.Printf("%s (ID: %s, owner: %s)\n", ws.Name, ws.ID, ws.OwnerID)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER ID\tROLE\tJOINED AT")
		for _, m := range ws.Members {
			fmt.Fprintf(w, "%s\t%s\t%s\n", m.UserID, m.Role, m.JoinedAt.Format("2006-01-02 15:04:05"))
		}
		return w.Flush()
	},
}

var listWorkspacesCmd = &cobra.Command{
	Use:   "list",
	Short: "List workspaces of the caller",
	RunE: func(cmd *cobra.Command, args []string) error {
		uw, err := newAPIClient(httpEndpoint).ListMyWorkspaces(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list workspaces: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "WORKSPACE ID\tROLE\tCURRENT")
		for _, m := range uw.Memberships {
			current := ""
			if uw.CurrentWorkspaceID != nil && *uw.CurrentWorkspaceID == m.WorkspaceID {
				current = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", m.WorkspaceID, m.Role, current)
		}
		return w.Flush()
	},
}

var switchWorkspaceCmd = &cobra.Command{
	Use:   "switch [id]",
	Short: "Make a workspace the caller's current one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := newAPIClient(httpEndpoint).SwitchWorkspace(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to switch workspace: %w", err)
		}

		fmt.Printf("Current workspace: %s\n", current)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(workspaceCmd)
	workspaceCmd.AddCommand(createWorkspaceCmd)
	workspaceCmd.AddCommand(getWorkspaceCmd)
	workspaceCmd.AddCommand(listWorkspacesCmd)
	workspaceCmd.AddCommand(switchWorkspaceCmd)
}
