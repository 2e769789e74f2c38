package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/orvane/Gemstore_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("equipslot", validateEquipSlot)
	_ = v.RegisterValidation("txkind", validateTransactionKind)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "equipslot":
			errs[field] = "Invalid equip slot"
		case "txkind":
			errs[field] = "Invalid transaction kind"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		case "dive":
			errs[field] = "Invalid value"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// ValidSlots defines the accepted equip slot values
var ValidSlots = map[string]bool{
	string(domain.SlotWeapon):  true,
	string(domain.SlotBody):    true,
	string(domain.SlotHead):    true,
	string(domain.SlotTrinket): true,
}

// validateEquipSlot accepts a known slot name or empty (slot resolved from
// the item).
func validateEquipSlot(fl validator.FieldLevel) bool {
	slot := fl.Field().String()
	if slot == "" {
		return true
	}
	return ValidSlots[strings.ToLower(slot)]
}

// validateTransactionKind accepts ledger mutation kinds.
func validateTransactionKind(fl validator.FieldLevel) bool {
	switch domain.TransactionKind(fl.Field().String()) {
	case domain.TransactionCredit, domain.TransactionDebit:
		return true
	}
	return false
}
