package cli

import (
	"github.com/spf13/cobra"
)

func newCloseYearCommand(a *app) *cobra.Command {
	var companyID string
	var year int

	cmd := &cobra.Command{
		Use:   "close-year",
		Short: "Close a fiscal year and open the next one",
		Long: `Close the company's current fiscal year.

A closing voucher moving the net result from the current year result account
to retained earnings is posted on the last day of the year when the net result
is not zero. The command refuses years that are already closed and years
after the current open one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.init(cmd); err != nil {
				return err
			}

			summary, err := a.services.Closing.YearEndSummary(cmd.Context(), companyID, year)
			if err != nil {
				return err
			}
			result, err := a.services.Closing.CloseYear(cmd.Context(), companyID, year)
			if err != nil {
				return err
			}

			a.printf(cmd, "Result before tax: %s\n", a.amounts.Format(summary.ResultBeforeTax))
			a.printf(cmd, "Corporate tax:     %s\n", a.amounts.Format(summary.CorporateTax))
			a.printf(cmd, "Net result:        %s\n", a.amounts.Format(summary.NetResult))
			if result.ClosingVoucher != nil {
				a.printf(cmd, "Closing voucher %s posted\n", result.ClosingVoucher.VoucherNumber)
			} else {
				a.printf(cmd, "No closing voucher needed\n")
			}
			a.printf(cmd, "Fiscal year %d closed, %d is now open\n", year, *result.NewFiscalYear)
			return nil
		},
	}
	companyFlag(cmd, &companyID)
	cmd.Flags().IntVar(&year, "year", 0, "fiscal year to close (required)")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}
