package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// YearEndSummary is the fiscal-year result used by closing and tax calculation.
type YearEndSummary struct {
	CompanyID         string          `json:"companyID"`
	FiscalYear        int             `json:"fiscalYear"`
	From              time.Time       `json:"from"`
	To                time.Time       `json:"to"`
	OperatingRevenue  decimal.Decimal `json:"operatingRevenue"`
	OperatingExpenses decimal.Decimal `json:"operatingExpenses"`
	OperatingResult   decimal.Decimal `json:"operatingResult"`
	FinancialIncome   decimal.Decimal `json:"financialIncome"`
	FinancialExpenses decimal.Decimal `json:"financialExpenses"`
	ResultBeforeTax   decimal.Decimal `json:"resultBeforeTax"`
	TaxRate           decimal.Decimal `json:"taxRate"`
	CorporateTax      decimal.Decimal `json:"corporateTax"`
	NetResult         decimal.Decimal `json:"netResult"`
	IsClosed          bool            `json:"isClosed"`
}

// CloseYearResult reports the outcome of a successful year-end close.
type CloseYearResult struct {
	Success        bool     `json:"success"`
	Message        string   `json:"message"`
	NewFiscalYear  *int     `json:"newFiscalYear,omitempty"`
	ClosingVoucher *Voucher `json:"closingVoucher,omitempty"`
}

// ClosingAccount identifies one of the fixed-number accounts used by the closing voucher.
type ClosingAccount struct {
	Number string
	Name   string
}

// PayrollTotals aggregates salary payments for a date range.
type PayrollTotals struct {
	GrossSalaries         decimal.Decimal `json:"grossSalaries"`
	EmployerContributions decimal.Decimal `json:"employerContributions"`
	TaxWithheld           decimal.Decimal `json:"taxWithheld"`
	PaymentCount          int             `json:"paymentCount"`
}

// TaxCalculation combines the year-end result, VAT and payroll into one tax overview.
type TaxCalculation struct {
	FiscalYear        int             `json:"fiscalYear"`
	Summary           YearEndSummary  `json:"summary"`
	OutputVat         decimal.Decimal `json:"outputVat"`
	InputVat          decimal.Decimal `json:"inputVat"`
	VatToPay          decimal.Decimal `json:"vatToPay"`
	Payroll           PayrollTotals   `json:"payroll"`
	TotalTaxLiability decimal.Decimal `json:"totalTaxLiability"`
}
