package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestAmountFormatter_English(t *testing.T) {
	f := NewAmountFormatter(language.English)

	assert.Equal(t, "1,234.50", f.Format(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "-20.61", f.Format(decimal.RequireFromString("-20.605")))
	assert.Equal(t, "0.00", f.Format(decimal.Zero))
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
	assert.Equal(t, "12", FormatWithPrecision(decimal.RequireFromString("12.3456"), 0))
	assert.Equal(t, "7.10", FormatWithPrecision(decimal.RequireFromString("7.1"), 2))
}
