package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// DefaultProjectPath is the project document read by the proposal command.
const DefaultProjectPath = "sns_config.json"

// ProjectDocument is the parsed key-value record of the project document.
// Numbers are kept as json.Number so callers can tell them apart from strings.
type ProjectDocument map[string]interface{}

// LoadProjectDocument reads and parses the JSON document at path.
func LoadProjectDocument(path string) (ProjectDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigurationError(path, "cannot read project document", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var doc ProjectDocument
	err = decoder.Decode(&doc)
	if err != nil {
		return nil, NewConfigurationError(path, "malformed project document", errors.WithStack(err))
	}
	if doc == nil {
		return nil, NewConfigurationError(path, "project document must be an object", ErrWrongType)
	}
	if decoder.More() {
		return nil, NewConfigurationError(path, "trailing data after project document", nil)
	}

	return doc, nil
}

// Text returns the string stored under field.
func (pd ProjectDocument) Text(field string) (string, error) {
	value, ok := pd[field]
	if !ok || value == nil {
		return "", NewConfigurationError(field, "", ErrMissingValue)
	}
	str, ok := value.(string)
	if !ok {
		return "", NewConfigurationError(field, "expected a string", ErrWrongType)
	}
	return str, nil
}

// Number returns the JSON number stored under field. Strings holding
// digits are rejected.
func (pd ProjectDocument) Number(field string) (json.Number, error) {
	value, ok := pd[field]
	if !ok || value == nil {
		return "", NewConfigurationError(field, "", ErrMissingValue)
	}
	num, ok := value.(json.Number)
	if !ok {
		return "", NewConfigurationError(field, "expected a number", ErrWrongType)
	}
	return num, nil
}
