package handlers

import (
	"fmt"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the enum validators used in request DTO binding tags.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	validators := map[string]validator.Func{
		"accounttype": func(fl validator.FieldLevel) bool {
			return domain.AccountType(fl.Field().String()).Valid()
		},
		"vouchertype": func(fl validator.FieldLevel) bool {
			return domain.VoucherType(fl.Field().String()).Valid()
		},
		"vatperiodtype": func(fl validator.FieldLevel) bool {
			return domain.VatPeriodType(fl.Field().String()).Valid()
		},
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}
