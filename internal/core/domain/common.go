package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// SystemActor is recorded in audit fields for changes made by the core itself
// (closing vouchers, seeded accounts).
const SystemActor = "system"

// DateLayout is the calendar date layout used on the wire and in the CLI.
const DateLayout = "2006-01-02"

// NormalizeDate strips time-of-day so dates compare as calendar dates.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// YearRange returns Jan 1 and Dec 31 of the given year.
func YearRange(year int) (time.Time, time.Time) {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// Stored amounts are NUMERIC(19, 4): four fractional digits and fifteen integer digits.
const (
	AmountScale         int32 = 4
	AmountIntegerDigits int32 = 15
)

var maxStoredAmount = decimal.New(1, AmountIntegerDigits)

// AmountFitsStorage reports whether amount can be stored without rounding or overflow.
func AmountFitsStorage(amount decimal.Decimal) bool {
	if !amount.Equal(amount.Truncate(AmountScale)) {
		return false
	}
	return amount.Abs().LessThan(maxStoredAmount)
}
