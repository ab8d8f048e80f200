// Package service contains the business logic for the courseinfo API.
// Services validate inputs, enforce business rules, assign slugs, and
// orchestrate repo calls. No SQL lives here; services depend on repo
// interfaces, not implementations.
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/courseinfo/backend/internal/domain"
)

// validate is shared by every service. *validator.Validate is safe for
// concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Column limits from the schema. Values longer than these are rejected
// before they reach Postgres.
const (
	maxPeriodName  = 45
	maxPersonName  = 45
	maxCourseNum   = 20
	maxCourseName  = 255
	maxSectionName = 10
	minYear        = 1900
	maxYear        = 2999
)

// field pairs a client-facing field name with its value and validator tag.
type field struct {
	name  string
	value any
	tag   string
}

// checkFields validates each field in order and returns the first failure
// wrapped in domain.ErrValidation.
func checkFields(fields ...field) error {
	for _, f := range fields {
		err := validate.Var(f.value, f.tag)
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return fmt.Errorf("%w: %s is invalid", domain.ErrValidation, f.name)
		}
		return fmt.Errorf("%w: %s", domain.ErrValidation, describe(f.name, verrs[0]))
	}
	return nil
}

// describe turns a validator failure into a short sentence.
func describe(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	default:
		return name + " is invalid"
	}
}

// text returns the rule for a required string column of the given width.
func text(max int) string {
	return fmt.Sprintf("required,max=%d", max)
}

// trim normalizes whitespace on user-supplied names so "  " counts as empty.
func trim(s string) string {
	return strings.TrimSpace(s)
}

// nonNil returns s, or an empty slice when s is nil, so JSON encodes [] not null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// refError reports a failed lookup of an entity referenced from a request
// body. A missing reference is the client's input problem, so it becomes
// domain.ErrValidation rather than domain.ErrNotFound.
func refError(op, what string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s: %w: %s not found", op, domain.ErrValidation, what)
	}
	return fmt.Errorf("%s: %s: %w", op, what, err)
}

// notFound reports a failed lookup of a path entity, naming it so the
// handler can say which of several slugs did not resolve.
func notFound(op, what string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s: %w: %s not found", op, domain.ErrNotFound, what)
	}
	return fmt.Errorf("%s: %s: %w", op, what, err)
}
