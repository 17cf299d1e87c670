// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var inviteCmd = &cobra.Command{
	Use:   "invite",
	Short: "Manage workspace invites",
}

var createInviteCmd = &cobra.Command{
	Use:   "create [workspace-id]",
	Short: "Generate an invite code for a workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("expires-in-days")
		uses, _ := cmd.Flags().GetInt("max-uses")

		var maxUses *int
		if uses > 0 {
			maxUses = &uses
		}

		invite, err := newAPIClient(httpEndpoint).CreateInvite(cmd.Context(), args[0], days, maxUses)
		if err != nil {
			return fmt.Errorf("failed to create invite: %w", err)
		}

		fmt.Printf("Invite created: %s (expires %s)\n", invite.Code, invite.ExpiresAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

var listInvitesCmd = &cobra.Command{
	Use:   "list [workspace-id]",
	Short: "List invites of a workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		size, _ := cmd.Flags().GetInt("size")

		list, err := newAPIClient(httpEndpoint).ListInvites(cmd.Context(), args[0], page, size)
		if err != nil {
			return fmt.Errorf("failed to list invites: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "CODE\tUSES\tACTIVE\tEXPIRES AT")
		for _, i := range list {
			limit := "unlimited"
			if i.MaxUses != nil {
				limit = strconv.Itoa(*i.MaxUses)
			}
			fmt.Fprintf(w, "%s\t%d/%s\t%t\t%s\n", i.Code, i.UsedCount, limit, i.Active, i.ExpiresAt.Format("2006-01-02 15:04:05"))
		}
		return w.Flush()
	},
}

var validateInviteCmd = &cobra.Command{
	Use:   "validate [code]",
	Short: "Check whether an invite code can be redeemed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := newAPIClient(httpEndpoint).ValidateInvite(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to validate invite: %w", err)
		}

		if !v.Valid {
			fmt.Printf("Invite is not valid: %s\n", v.Reason)
			return nil
		}

		fmt.Printf("Invite is valid for workspace %s\n", v.WorkspaceID)
		return nil
	},
}

var redeemInviteCmd = &cobra.Command{
	Use:   "redeem [code]",
	Short: "Join a workspace with an invite code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newAPIClient(httpEndpoint).RedeemInvite(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to redeem invite: %w", err)
		}

		fmt.Printf("Joined workspace: %s (ID: %s)\n", ws.Name, ws.ID)
		return nil
	},
}

var revokeInviteCmd = &cobra.Command{
	Use:   "revoke [code]",
	Short: "Deactivate an invite code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newAPIClient(httpEndpoint).RevokeInvite(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to revoke invite: %w", err)
		}

		fmt.Printf("Invite revoked: %s\n", args[0])
		return nil
	},
}

func init() {
	createInviteCmd.Flags().Int("expires-in-days", 7, "Days until the invite expires (1-30)")
	createInviteCmd.Flags().Int("max-uses", 0, "Maximum number of redemptions, 0 for unlimited")

	listInvitesCmd.Flags().Int("page", 1, "Page number")
	listInvitesCmd.Flags().Int("size", 50, "Page size")

	rootCmd.AddCommand(inviteCmd)
	inviteCmd.AddCommand(createInviteCmd)
	inviteCmd.AddCommand(listInvitesCmd)
	inviteCmd.AddCommand(validateInviteCmd)
	inviteCmd.AddCommand(redeemInviteCmd)
	inviteCmd.AddCommand(revokeInviteCmd)
}
