// FILE: lixenwraith/compileropts/errors.go
package compileropts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/compileropts/diag"
)

// Source construction errors. Bad option values never surface as errors
// from resolution; they are reported as diagnostics instead.
var (
	ErrOptionsFileNotFound = errors.New("options file not found")
	ErrArgParse            = errors.New("failed to parse processor options")
	ErrUnsupportedFormat   = errors.New("unsupported options file format")
	ErrNestedValue         = errors.New("option values must be scalars")
	ErrDuplicateKey        = errors.New("option given more than once")
)

// OptionErrorKind classifies a problem with an option value.
type OptionErrorKind uint8

const (
	// MissingValue: a value-bearing option key was present with no value.
	MissingValue OptionErrorKind = iota
	// InvalidValue: the value is not an accepted member of the option's type.
	InvalidValue
)

func (k OptionErrorKind) String() string {
	switch k {
	case MissingValue:
		return "missing value"
	case InvalidValue:
		return "invalid value"
	}
	return "unknown"
}

// Code maps the kind onto its diagnostic code.
func (k OptionErrorKind) Code() diag.Code {
	if k == MissingValue {
		return diag.CodeMissingValue
	}
	return diag.CodeInvalidValue
}

// OptionError records an option that fell back to its default because its
// value could not be used.
type OptionError struct {
	Kind   OptionErrorKind
	Key    string
	Value  string
	Accept []string
}

func (e *OptionError) Error() string {
	switch e.Kind {
	case MissingValue:
		return fmt.Sprintf("Processor option -A%s needs a value", e.Key)
	default:
		return fmt.Sprintf("Processor option -A%s may only have the values [%s] (case insensitive), found: %s",
			e.Key, strings.Join(e.Accept, ", "), e.Value)
	}
}

// deprecatedMessage is the warning text for an option that was removed.
func deprecatedMessage(key string) string {
	return key + " is no longer recognized by Dagger"
}
