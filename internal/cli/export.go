package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/export"
	"github.com/spf13/cobra"
)

func newExportStatementsCommand(a *app) *cobra.Command {
	var companyID, fromDate, toDate, output string

	cmd := &cobra.Command{
		Use:   "export-statements",
		Short: "Write the income statement and balance sheet to an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := time.Parse(domain.DateLayout, fromDate)
			if err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
			to, err := time.Parse(domain.DateLayout, toDate)
			if err != nil {
				return fmt.Errorf("invalid --to: %w", err)
			}
			if err := a.init(cmd); err != nil {
				return err
			}

			ctx := cmd.Context()
			company, err := a.services.Company.GetCompany(ctx, companyID)
			if err != nil {
				return err
			}
			stmt, err := a.services.Reporting.IncomeStatement(ctx, companyID, from, to)
			if err != nil {
				return err
			}
			sheet, err := a.services.Reporting.BalanceSheet(ctx, companyID, to)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			err = export.WriteStatementsXLSX(f, export.Statements{Company: *company, IncomeStatement: stmt, BalanceSheet: sheet})
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}

			a.printf(cmd, "Net income %s, equity %s\n", a.amounts.Format(stmt.NetIncome), a.amounts.Format(sheet.Equity))
			a.printf(cmd, "Wrote %s\n", output)
			return nil
		},
	}
	companyFlag(cmd, &companyID)
	cmd.Flags().StringVar(&fromDate, "from", "", "period start, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&toDate, "to", "", "period end and balance sheet date, YYYY-MM-DD (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "statements.xlsx", "workbook path")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
