package cli

import (
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/spf13/cobra"
)

func newCompanyCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "company",
		Short: "Manage companies",
	}
	cmd.AddCommand(newCompanyCreateCommand(a))
	return cmd
}

func newCompanyCreateCommand(a *app) *cobra.Command {
	var req dto.RegisterCompanyRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a company with its first open fiscal year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.init(cmd); err != nil {
				return err
			}
			company, err := a.services.Company.RegisterCompany(cmd.Context(), req)
			if err != nil {
				return err
			}
			a.printf(cmd, "Company %s registered with fiscal year %d\n", company.CompanyID, company.CurrentFiscalYear)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "company name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&req.OrganizationNumber, "org-number", "", "organization number")
	cmd.Flags().IntVar(&req.FirstFiscalYear, "first-year", 0, "first open fiscal year (required)")
	_ = cmd.MarkFlagRequired("first-year")
	cmd.Flags().BoolVar(&req.SeedChart, "seed-chart", true, "create the default chart of accounts")

	return cmd
}

// companyFlag registers the --company flag shared by company-scoped commands.
func companyFlag(cmd *cobra.Command, companyID *string) {
	cmd.Flags().StringVar(companyID, "company", "", "company ID (required)")
	_ = cmd.MarkFlagRequired("company")
}
