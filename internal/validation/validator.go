package validation

import (
	"errors"

	validatorv10 "github.com/go-playground/validator/v10"
)

// Rule rejection sentinels. Services surface these; the handler layer maps
// them to response categories.
var (
	ErrIDMismatch      = errors.New("path id does not match body id")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrMissingArticles = errors.New("articles list is missing")
)

// New returns the configured validator the resource services share.
func New() *validatorv10.Validate {
	return validatorv10.New()
}

// RuleError translates a validator error into the matching rule sentinel,
// keyed off the failing struct field. The first applicable rejection wins.
func RuleError(err error) error {
	if err == nil {
		return nil
	}
	var ve validatorv10.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	for _, fe := range ve {
		switch fe.StructField() {
		case "Amount":
			return ErrInvalidAmount
		case "Articles":
			return ErrMissingArticles
		}
	}
	return ve
}
