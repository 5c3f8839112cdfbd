// File: lixenwraith/compileropts/convenience.go
package compileropts

import (
	"fmt"

	"github.com/lixenwraith/compileropts/diag"
)

// Quick builds options from command-line arguments alone.
func Quick(args []string, reporter diag.Reporter) (*CompilerOptions, error) {
	return NewBuilder().
		WithArgs(args).
		WithSources(SourceCLI).
		WithReporter(reporter).
		Build()
}

// MustQuick is like Quick but panics on error
func MustQuick(args []string, reporter diag.Reporter) *CompilerOptions {
	c, err := Quick(args, reporter)
	if err != nil {
		panic(fmt.Sprintf("compiler options initialization failed: %v", err))
	}
	return c
}

// FromMap builds options from a plain key/value map. Every key is present
// with its value; use MapSource directly for keys without a value.
func FromMap(values map[string]string, reporter diag.Reporter, opts ...Opt) *CompilerOptions {
	src := make(MapSource, len(values))
	for k, v := range values {
		src[k] = Value(v)
	}
	return New(src, reporter, opts...)
}
