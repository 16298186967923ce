package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/spf13/cobra"
)

func newVatSummaryCommand(a *app) *cobra.Command {
	var companyID string
	var year int
	var periodType string

	cmd := &cobra.Command{
		Use:   "vat-summary",
		Short: "Show output and input VAT per period for a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pt := domain.VatPeriodType(strings.ToUpper(periodType))
			if !pt.Valid() {
				return fmt.Errorf("invalid --period-type %q: use monthly, quarterly or yearly", periodType)
			}
			if err := a.init(cmd); err != nil {
				return err
			}

			summary, err := a.services.Vat.VatSummary(cmd.Context(), companyID, year, pt)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "Period\tFrom\tTo\tOutput VAT\tInput VAT\tTo pay\tPaid\t")
			for _, p := range summary.Periods {
				paid := "no"
				if p.IsPaid {
					paid = "yes"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
					p.Period,
					p.StartDate.Format(domain.DateLayout),
					p.EndDate.Format(domain.DateLayout),
					a.amounts.Format(p.OutputVat),
					a.amounts.Format(p.InputVat),
					a.amounts.Format(p.VatToPay),
					paid)
			}
			fmt.Fprintf(tw, "Total\t\t\t%s\t%s\t%s\t\t\n",
				a.amounts.Format(summary.TotalOutputVat),
				a.amounts.Format(summary.TotalInputVat),
				a.amounts.Format(summary.TotalVatToPay))
			return tw.Flush()
		},
	}
	companyFlag(cmd, &companyID)
	cmd.Flags().IntVar(&year, "year", 0, "calendar year (required)")
	_ = cmd.MarkFlagRequired("year")
	cmd.Flags().StringVar(&periodType, "period-type", "quarterly", "monthly, quarterly or yearly")
	return cmd
}
