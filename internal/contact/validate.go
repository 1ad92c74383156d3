// Package contact validates contact form submissions.
package contact

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/verte-zerg/folio/internal/model"
)

// Kind classifies a validation failure.
type Kind int

// Validation failure kinds.
const (
	MissingFields Kind = iota + 1
)

// ErrMissingFields matches any ValidationError of kind MissingFields.
var ErrMissingFields = errors.New("please fill in all fields")

// ValidationError reports which form fields failed validation.
type ValidationError struct {
	Kind   Kind
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing fields: %s", strings.Join(e.Fields, ", "))
}

// Is lets errors.Is match the sentinel for the error kind.
func (e *ValidationError) Is(target error) bool {
	return target == ErrMissingFields && e.Kind == MissingFields
}

// Receipt acknowledges an accepted submission.
type Receipt struct {
	ID     uuid.UUID
	SentAt time.Time
}

type form struct {
	Name    string `label:"name" validate:"required"`
	Email   string `label:"email" validate:"required"`
	Message string `label:"message" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("label")
	})
	return v
}

// Validate succeeds when name, email and message are all non-blank.
// The email format is not checked.
func Validate(sub model.ContactSubmission) error {
	f := form{
		Name:    strings.TrimSpace(sub.Name),
		Email:   strings.TrimSpace(sub.Email),
		Message: strings.TrimSpace(sub.Message),
	}
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate submission: %w", err)
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Kind: MissingFields, Fields: fields}
}

// Submit validates sub and returns a receipt. The submission is discarded.
func Submit(sub model.ContactSubmission, now time.Time) (Receipt, error) {
	if err := Validate(sub); err != nil {
		return Receipt{}, err
	}
	return Receipt{ID: uuid.New(), SentAt: now}, nil
}
