package config

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrPlaceholderValue is reported when a value still holds its template placeholder.
var ErrPlaceholderValue = errors.New("placeholder value left unfilled")

// ErrMissingValue is reported when a required value is empty or absent.
var ErrMissingValue = errors.New("required value missing")

// ErrWrongType is reported when a document field has an unexpected type.
var ErrWrongType = errors.New("unexpected value type")

// ConfigurationError describes a local input problem: a missing or
// malformed file, an absent field or an unfilled placeholder.
type ConfigurationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := "configuration error"
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Field)
	}
	if e.Reason != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err.Error())
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError builds a ConfigurationError for field.
func NewConfigurationError(field, reason string, err error) error {
	return &ConfigurationError{
		Field:  field,
		Reason: reason,
		Err:    err,
	}
}

// IsConfigurationError reports whether err wraps a ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}
