package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request conflicts with the current state of a resource.
var ErrConflict = errors.New("state conflict")

// ErrInternal indicates an unexpected infrastructure failure.
var ErrInternal = errors.New("internal error")

// AppError wraps an infrastructure failure with an HTTP-ish status code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// ReasonError is a domain failure carrying a stable reason code.
// Kind is one of the sentinel errors above so callers can classify with errors.Is.
type ReasonError struct {
	Reason  string
	Message string
	Kind    error
}

func (e *ReasonError) Error() string {
	return e.Message
}

func (e *ReasonError) Unwrap() error {
	return e.Kind
}

func newReason(reason, message string, kind error) *ReasonError {
	return &ReasonError{Reason: reason, Message: message, Kind: kind}
}

// Ledger failures.
var (
	ErrUnbalancedVoucher       = newReason("UNBALANCED_VOUCHER", "voucher debits and credits do not balance", ErrValidation)
	ErrInvalidAccountReference = newReason("INVALID_ACCOUNT_REFERENCE", "voucher references an unknown or inactive account", ErrValidation)
	ErrEmptyVoucher            = newReason("EMPTY_VOUCHER", "voucher must have at least one row", ErrValidation)
	ErrAccountNumberExists     = newReason("ACCOUNT_NUMBER_EXISTS", "account number already exists for company", ErrDuplicate)
	ErrAccountInUse            = newReason("ACCOUNT_IN_USE", "account is referenced by voucher rows", ErrConflict)
	ErrFiscalYearClosed        = newReason("FISCAL_YEAR_CLOSED", "fiscal year is closed", ErrConflict)
	ErrCompanyNotFound         = newReason("COMPANY_NOT_FOUND", "company not found", ErrNotFound)
)

// Closing failures.
var (
	ErrAlreadyClosed = newReason("ALREADY_CLOSED", "fiscal year is already closed", ErrConflict)
	ErrPriorYearOpen = newReason("PRIOR_YEAR_OPEN", "an earlier fiscal year is still open", ErrConflict)
)

// VAT failures.
var (
	ErrVatPeriodNotFound = newReason("VAT_PERIOD_NOT_FOUND", "no VAT period record exists", ErrNotFound)
	ErrInvalidVatPeriod  = newReason("INVALID_VAT_PERIOD", "VAT period is out of range for the period type", ErrValidation)
)

// ReasonOf returns the reason code carried by err, or "" if there is none.
func ReasonOf(err error) string {
	var re *ReasonError
	if errors.As(err, &re) {
		return re.Reason
	}
	return ""
}
