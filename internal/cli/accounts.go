package cli

import (
	"github.com/spf13/cobra"
)

func newAccountsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage the chart of accounts",
	}
	cmd.AddCommand(newAccountsSeedCommand(a))
	return cmd
}

func newAccountsSeedCommand(a *app) *cobra.Command {
	var companyID string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the default accounts a company does not already have",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.init(cmd); err != nil {
				return err
			}
			created, err := a.services.Account.SeedChart(cmd.Context(), companyID)
			if err != nil {
				return err
			}
			a.printf(cmd, "Created %d accounts\n", created)
			return nil
		},
	}
	companyFlag(cmd, &companyID)
	return cmd
}
