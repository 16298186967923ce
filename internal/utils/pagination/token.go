package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

const (
	// DefaultLimit is used when a caller asks for no limit or a non-positive one.
	DefaultLimit = 50
	// MaxLimit caps a single page.
	MaxLimit = 500
)

// NormalizeLimit clamps a requested page size into [1, MaxLimit].
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// EncodeToken creates a base64 encoded token from the voucher date and voucher number
// of the last item on a page. Vouchers are listed newest first, so the next page
// starts strictly after this position.
func EncodeToken(voucherDate time.Time, voucherNumber string) string {
	return EncodeMultiFieldToken(voucherDate.Format(domain.DateLayout), voucherNumber)
}

// DecodeToken parses the base64 encoded token back into voucher date and number.
func DecodeToken(token string) (time.Time, string, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return time.Time{}, "", err
	}
	if len(parts) != 2 {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	voucherDate, err := time.Parse(domain.DateLayout, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (voucher date parse): %w", err)
	}
	if parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (empty voucher number)")
	}

	return voucherDate, parts[1], nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	return strings.Split(string(decodedBytes), "|"), nil
}
