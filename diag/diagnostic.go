// FILE: lixenwraith/compileropts/diag/diagnostic.go
package diag

import "fmt"

// Code identifies the kind of problem independently of its message text.
type Code uint16

const (
	UnknownCode Code = iota
	// CodeMissingValue: a value-bearing option was given without a value.
	CodeMissingValue
	// CodeInvalidValue: the value is not one of the accepted values.
	CodeInvalidValue
	// CodeDeprecatedOption: the option was removed and has no effect.
	CodeDeprecatedOption
	// CodeUnrecognizedOption: no registered option has this name.
	CodeUnrecognizedOption
)

var codeNames = map[Code]string{
	UnknownCode:            "OPT0000",
	CodeMissingValue:       "OPT1001",
	CodeInvalidValue:       "OPT1002",
	CodeDeprecatedOption:   "OPT2001",
	CodeUnrecognizedOption: "OPT2002",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("OPT%04d", uint16(c))
}

// Title is a short description of the code.
func (c Code) Title() string {
	switch c {
	case CodeMissingValue:
		return "missing option value"
	case CodeInvalidValue:
		return "invalid option value"
	case CodeDeprecatedOption:
		return "option no longer recognized"
	case CodeUnrecognizedOption:
		return "unrecognized option"
	}
	return "unknown"
}

// Diagnostic is one reported problem.
type Diagnostic struct {
	Severity Severity
	Code     Code
	// Option is the wire name the diagnostic is about, if any.
	Option  string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %s", d.Severity, d.Code, d.Message)
}
