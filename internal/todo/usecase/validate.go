package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"todo-summary-assistant/internal/todo"
)

const dueDateField = "dueDate"

var validate = newValidator()

type createRules struct {
	Title       string  `json:"title"       validate:"required,notblank,max=255"`
	Description *string `json:"description" validate:"omitnil,max=2000"`
	Category    *string `json:"category"    validate:"omitnil,max=50"`
}

type updateRules struct {
	Title       *string `json:"title"       validate:"omitnil,notblank,max=255"`
	Description *string `json:"description" validate:"omitnil,max=2000"`
	Category    *string `json:"category"    validate:"omitnil,max=50"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	return v
}

// validateCreate checks input and returns the normalized due date.
func (uc *implUseCase) validateCreate(input todo.CreateInput) (*string, error) {
	fields := fieldErrors(validate.Struct(createRules{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
	}))
	return uc.finishValidation(fields, input.DueDate)
}

// validateUpdate checks the supplied fields only and returns the normalized due date.
func (uc *implUseCase) validateUpdate(input todo.UpdateInput) (*string, error) {
	fields := fieldErrors(validate.Struct(updateRules{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
	}))
	return uc.finishValidation(fields, input.DueDate)
}

func (uc *implUseCase) finishValidation(fields []todo.FieldError, dueDate *string) (*string, error) {
	normalized, fe := uc.normalizeDueDate(dueDate)
	if fe != nil {
		fields = append(fields, *fe)
	}
	if len(fields) > 0 {
		return nil, &todo.ValidationError{Fields: fields}
	}
	return normalized, nil
}

// normalizeDueDate accepts YYYY-MM-DD or a relative phrase. Empty text is
// passed through so the store can treat it as "no due date".
func (uc *implUseCase) normalizeDueDate(value *string) (*string, *todo.FieldError) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return &trimmed, nil
	}

	res, err := uc.dateMath.Normalize(trimmed, uc.now())
	if err != nil {
		return nil, &todo.FieldError{
			Field:   dueDateField,
			Message: `must be a date in YYYY-MM-DD format or a phrase like "tomorrow"`,
		}
	}
	date := res.Date()
	return &date, nil
}

func fieldErrors(err error) []todo.FieldError {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []todo.FieldError{{Field: "body", Message: err.Error()}}
	}

	out := make([]todo.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, todo.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "is invalid"
	}
}
