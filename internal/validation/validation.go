package validation

import (
	"fmt"
	"net/mail"
	"strings"
)

// Code classifies a field-level validation failure
type Code string

const (
	CodeMissingField      Code = "missing_field"
	CodeLengthViolation   Code = "length_violation"
	CodeInvalidFormat     Code = "invalid_format"
	CodeMismatchViolation Code = "mismatch_violation"
	CodeSuspiciousInput   Code = "suspicious_input"
)

// FieldError represents a single rule violation on a named field
type FieldError struct {
	Field   string `json:"field"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// Errors is the structured list of violations reported to the caller.
// Rule violations are always reported this way, never as panics.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(msgs, "; ")
}

// Rule is a pure validation function applied to an already-trimmed value.
// It returns nil on success or a FieldError with the Field left blank;
// Check fills in the field name.
type Rule func(value string) *FieldError

// Check trims the value and applies the rules in order. A MissingField
// failure short-circuits the remaining rules for the field; every other
// failure is accumulated. The trimmed value is returned for persistence.
func Check(field, value string, rules ...Rule) (string, Errors) {
	trimmed := strings.TrimSpace(value)

	var errs Errors
	for _, rule := range rules {
		fe := rule(trimmed)
		if fe == nil {
			continue
		}
		fe.Field = field
		errs = append(errs, *fe)
		if fe.Code == CodeMissingField {
			break
		}
	}

	return trimmed, errs
}

// Required fails with MissingField when the trimmed value is empty
func Required(message string) Rule {
	return func(value string) *FieldError {
		if value == "" {
			return &FieldError{Code: CodeMissingField, Message: message}
		}
		return nil
	}
}

// Length fails with LengthViolation when the value length is below min or
// above max. A min of 0 disables the lower bound so optional fields pass
// when empty.
func Length(min, max int, message string) Rule {
	return func(value string) *FieldError {
		n := len([]rune(value))
		if n < min || n > max {
			return &FieldError{Code: CodeLengthViolation, Message: message}
		}
		return nil
	}
}

// Email fails with InvalidFormat when the value does not parse as a single
// bare address with a dotted domain
func Email(message string) Rule {
	return func(value string) *FieldError {
		addr, err := mail.ParseAddress(value)
		if err != nil || addr.Address != value {
			return &FieldError{Code: CodeInvalidFormat, Message: message}
		}
		at := strings.LastIndex(value, "@")
		if at < 0 || !strings.Contains(value[at:], ".") {
			return &FieldError{Code: CodeInvalidFormat, Message: message}
		}
		return nil
	}
}

// Match compares two designated fields and reports a MismatchViolation on
// the named field when they differ
func Match(field, value, other, message string) Errors {
	if value != other {
		return Errors{{Field: field, Code: CodeMismatchViolation, Message: message}}
	}
	return nil
}
