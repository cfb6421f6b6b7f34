package inventory

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/InventoryTracker_Go/internal/domain"
	"github.com/osse101/InventoryTracker_Go/internal/utils"
)

// newValidator builds a validator that reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return !utils.IsBlank(fl.Field().String())
	})

	return v
}

// validateInput checks input against the RecordInput tags and returns a
// *domain.ValidationError listing every rejected field.
func validateInput(v *validator.Validate, input domain.RecordInput) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	vErr := domain.NewValidationError(domain.RecordEntityName)
	for _, fe := range fieldErrs {
		field := fe.Field()
		// Keep the first problem per field; tags run in declaration order
		if _, seen := vErr.Fields[field]; seen {
			continue
		}
		vErr.Add(field, fieldMessage(fe))
	}
	return vErr
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf(MsgFieldRequired, fe.Field())
	case "max":
		return fmt.Sprintf(MsgFieldTooLong, fe.Field(), fe.Param())
	case "excludesall":
		return fmt.Sprintf(MsgFieldInvalid, fe.Field())
	default:
		return fmt.Sprintf(MsgFieldMalformed, fe.Field())
	}
}
