package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// AmountPrecision is the number of fraction digits amounts are shown with.
const AmountPrecision = 2

// AmountFormatter renders amounts with the grouping and decimal separators of a locale.
type AmountFormatter struct {
	printer *message.Printer
}

// NewAmountFormatter returns a formatter for tag, e.g. language.Swedish.
func NewAmountFormatter(tag language.Tag) *AmountFormatter {
	return &AmountFormatter{printer: message.NewPrinter(tag)}
}

// Format rounds amount half away from zero and renders it, e.g. 1234.5 -> "1,234.50" in English.
func (f *AmountFormatter) Format(amount decimal.Decimal) string {
	rounded := amount.Round(AmountPrecision).InexactFloat64()
	return f.printer.Sprint(number.Decimal(rounded, number.Scale(AmountPrecision)))
}

// FormatWithPrecision formats an amount with the given precision, without grouping.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
