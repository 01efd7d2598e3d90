package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	"droscher.com/Foodgram/pkg/model"
)

const (
	FieldTags        = "tags"
	FieldIngredients = "ingredients"
	FieldAmount      = "amount"
	FieldCookingTime = "cooking_time"
	FieldName        = "name"
	FieldText        = "text"
	FieldImage       = "image"
)

// MaxAmount caps a single ingredient line, the same bound cooking_time has.
const MaxAmount = 32767

// RecipeInput carries author-supplied recipe fields. Nil pointers and nil
// slices mean the field was not supplied.
type RecipeInput struct {
	Name        *string                  `json:"name"         validate:"omitnil,min=1,max=256"`
	Text        *string                  `json:"text"         validate:"omitnil,min=1"`
	Image       *string                  `json:"image"`
	CookingTime *int                     `json:"cooking_time" validate:"omitnil,min=1,max=32767"`
	Tags        []uint                   `json:"-"`
	Ingredients []model.IngredientAmount `json:"-"`
}

var scalarValidator = newScalarValidator()

func newScalarValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	return v
}

// ValidateTagIDs checks a tag id list against the tags that exist. It reports
// the first offending id only.
func ValidateTagIDs(ids []uint, existing []*model.Tag) error {
	if len(ids) == 0 {
		return invalid(FieldTags, "at least one tag is required")
	}

	known := make(map[uint]bool, len(existing))
	for _, tag := range existing {
		known[tag.ID] = true
	}

	seen := make(map[uint]bool, len(ids))

	for _, id := range ids {
		if seen[id] {
			return invalid(FieldTags, "tag %d is listed more than once", id)
		}

		seen[id] = true

		if !known[id] {
			return invalid(FieldTags, "tag %d does not exist", id)
		}
	}

	return nil
}

// ValidateIngredientLines checks ingredient lines against the ingredients that
// exist. It reports the first offending line only.
func ValidateIngredientLines(lines []model.IngredientAmount, existing []*model.Ingredient) error {
	if len(lines) == 0 {
		return invalid(FieldIngredients, "at least one ingredient is required")
	}

	known := make(map[uint]bool, len(existing))
	for _, ingredient := range existing {
		known[ingredient.ID] = true
	}

	seen := make(map[uint]bool, len(lines))

	for _, line := range lines {
		if seen[line.IngredientID] {
			return invalid(FieldIngredients, "ingredient %d is listed more than once", line.IngredientID)
		}

		seen[line.IngredientID] = true

		if !known[line.IngredientID] {
			return invalid(FieldIngredients, "ingredient %d does not exist", line.IngredientID)
		}

		if line.Amount < 1 {
			return invalid(FieldAmount, "amount of ingredient %d must be at least 1", line.IngredientID)
		}

		if line.Amount > MaxAmount {
			return invalid(FieldAmount, "amount of ingredient %d must not exceed %d", line.IngredientID, MaxAmount)
		}
	}

	return nil
}

// ValidateScalars checks the plain recipe fields. With required set, a missing
// name, text or cooking time is an error too.
func ValidateScalars(input RecipeInput, required bool) error {
	var errs error

	if required {
		if input.Name == nil {
			errs = multierr.Append(errs, invalid(FieldName, "this field is required"))
		}

		if input.Text == nil {
			errs = multierr.Append(errs, invalid(FieldText, "this field is required"))
		}

		if input.CookingTime == nil {
			errs = multierr.Append(errs, invalid(FieldCookingTime, "this field is required"))
		}
	}

	err := scalarValidator.Struct(input)

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fieldErr := range fieldErrs {
			errs = multierr.Append(errs, invalid(fieldErr.Field(), "%s", friendlyMessage(fieldErr)))
		}
	} else if err != nil {
		return err
	}

	return errs
}

func friendlyMessage(e validator.FieldError) string {
	numeric := e.Kind() != reflect.String

	switch e.Tag() {
	case "required":
		return "this field is required"
	case "min":
		if numeric {
			return "must be at least " + e.Param()
		}

		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		if numeric {
			return "must not exceed " + e.Param()
		}

		return fmt.Sprintf("must not exceed %s characters", e.Param())
	default:
		return "is invalid"
	}
}

// FieldErrors groups a validation failure by field, in pipeline order.
func FieldErrors(err error) map[string][]string {
	fields := map[string][]string{}

	for _, single := range multierr.Errors(err) {
		var validationErr *ValidationError
		if errors.As(single, &validationErr) {
			fields[validationErr.Field] = append(fields[validationErr.Field], validationErr.Reason)
		}
	}

	return fields
}
