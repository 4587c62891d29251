package sdkerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingData     = errors.New("missing data")
	ErrInvalidArgument = errors.New("invalid argument")
)

// MissingDataError is returned when a workflow cannot start because the
// current state lacks fields it needs. It is never retried.
type MissingDataError struct {
	Operation string
	Fields    []string
}

// NewMissingDataError creates a MissingDataError for the given operation
func NewMissingDataError(operation string, fields ...string) *MissingDataError {
	return &MissingDataError{Operation: operation, Fields: fields}
}

func (e *MissingDataError) Error() string {
	quoted := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		quoted[i] = fmt.Sprintf("%q", f)
	}
	return fmt.Sprintf("unable to %s because %s is missing", e.Operation, strings.Join(quoted, " or "))
}

func (e *MissingDataError) Is(target error) bool {
	return target == ErrMissingData
}

// InvalidArgumentError is returned when caller supplied input fails validation
type InvalidArgumentError struct {
	Operation string
	Err       error
}

// NewInvalidArgumentError wraps a validation failure
func NewInvalidArgumentError(operation string, err error) *InvalidArgumentError {
	return &InvalidArgumentError{Operation: operation, Err: err}
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("unable to %s: %v", e.Operation, e.Err)
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Fields lists the struct fields that failed validation, if known
func (e *InvalidArgumentError) Fields() []string {
	var verrs validator.ValidationErrors
	if !errors.As(e.Err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}

// IsPrecondition reports whether err is a local precondition error
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrMissingData) || errors.Is(err, ErrInvalidArgument)
}
