package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsRequired     = errors.New("value is required")
	ErrValueIsOutOfRange    = errors.New("value is out of range")
	ErrDomainViolation      = errors.New("domain rule violated")
	ErrInvalidConfiguration = errors.New("configuration is invalid")
)

// sanitize strips newlines so multi-line input cannot break log lines.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ObjectNotFoundError indicates that a required object is absent.
// ParamName names what was looked up ("shipment", "payout", ...) and ID
// carries the identifier that missed.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a lower-level cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a lower-level cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a lower-level cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsOutOfRangeError indicates that a numeric value fell outside its
// permitted range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping a lower-level cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause))
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// DomainViolationError indicates that an operation broke a business rule.
// It is distinct from ObjectNotFoundError: the object exists, but the
// requested operation is not permitted against it.
type DomainViolationError struct {
	Rule  string
	Cause error
}

// NewDomainViolationError creates a DomainViolationError without an underlying cause.
func NewDomainViolationError(rule string) *DomainViolationError {
	return &DomainViolationError{Rule: rule}
}

// NewDomainViolationErrorWithCause creates a DomainViolationError wrapping a lower-level cause.
func NewDomainViolationErrorWithCause(rule string, cause error) *DomainViolationError {
	return &DomainViolationError{Rule: rule, Cause: cause}
}

func (e *DomainViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrDomainViolation, e.Rule, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrDomainViolation, e.Rule)
}

func (e *DomainViolationError) Unwrap() error {
	return ErrDomainViolation
}

// ConfigurationError indicates that a required baseline row or setting is
// missing from the deployment. Callers should surface it distinctly from
// user-caused errors in logs and metrics.
type ConfigurationError struct {
	Setting string
	Cause   error
}

// NewConfigurationError creates a ConfigurationError without an underlying cause.
func NewConfigurationError(setting string) *ConfigurationError {
	return &ConfigurationError{Setting: setting}
}

// NewConfigurationErrorWithCause creates a ConfigurationError wrapping a lower-level cause.
func NewConfigurationErrorWithCause(setting string, cause error) *ConfigurationError {
	return &ConfigurationError{Setting: setting, Cause: cause}
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidConfiguration, e.Setting, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidConfiguration, e.Setting)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}
