// FILE: lixenwraith/compileropts/source.go
package compileropts

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Source supplies raw option strings. A key can be absent, present without
// a value (value == nil), or present with a value.
type Source interface {
	Lookup(key string) (value *string, present bool)
}

// KeySource is a Source that can enumerate the keys it holds.
type KeySource interface {
	Source
	Keys() []string
}

// SourceKind names a kind of source, used to define precedence.
type SourceKind string

const (
	// SourceCLI is options passed as -Akey[=value] arguments
	SourceCLI SourceKind = "cli"
	// SourceEnv is options read from environment variables
	SourceEnv SourceKind = "env"
	// SourceFile is options read from an options file
	SourceFile SourceKind = "file"
)

// DefaultPrecedence is the standard source order, highest priority first.
func DefaultPrecedence() []SourceKind {
	return []SourceKind{SourceCLI, SourceEnv, SourceFile}
}

// MapSource is a Source backed by a map. A nil value means the key was
// given without a value.
type MapSource map[string]*string

// Value is a convenience for building MapSource literals.
func Value(s string) *string { return &s }

func (m MapSource) Lookup(key string) (*string, bool) {
	v, ok := m[key]
	return v, ok
}

// Keys returns the keys in sorted order.
func (m MapSource) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LayeredSource consults its sources in order; the first one holding a key wins.
type LayeredSource []Source

func (l LayeredSource) Lookup(key string) (*string, bool) {
	for _, s := range l {
		if s == nil {
			continue
		}
		if v, ok := s.Lookup(key); ok {
			return v, true
		}
	}
	return nil, false
}

// Keys returns the union of keys of every layer that can enumerate them.
func (l LayeredSource) Keys() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, s := range l {
		ks, ok := s.(KeySource)
		if !ok {
			continue
		}
		for _, k := range ks.Keys() {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

// EnvTransformFunc converts an option wire name to an environment variable name
type EnvTransformFunc func(key string) string

// EnvSource reads options from environment variables. Only recognized
// option names are looked up.
type EnvSource struct {
	// Prefix is prepended to the transformed name, e.g. "APT_" turns
	// "dagger.fastInit" into "APT_DAGGER_FASTINIT".
	Prefix string
	// Transform overrides the default name mapping (dots to underscores,
	// upper case, Prefix prepended).
	Transform EnvTransformFunc
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

func (e EnvSource) Lookup(key string) (*string, bool) {
	lookup := e.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(e.envName(key)); ok {
		return &v, true
	}
	return nil, false
}

// Keys returns every recognized wire name that has an environment variable set.
func (e EnvSource) Keys() []string {
	var keys []string
	for _, name := range SupportedOptions() {
		if _, ok := e.Lookup(name); ok {
			keys = append(keys, name)
		}
	}
	return keys
}

func (e EnvSource) envName(key string) string {
	if e.Transform != nil {
		return e.Transform(key)
	}
	return defaultEnvTransform(e.Prefix)(key)
}

// defaultEnvTransform creates the default environment variable transformer
func defaultEnvTransform(prefix string) EnvTransformFunc {
	return func(key string) string {
		env := strings.ReplaceAll(key, ".", "_")
		env = strings.ToUpper(env)
		if prefix != "" {
			env = prefix + env
		}
		return env
	}
}

// ParseArgs collects processor options from command-line arguments.
// Accepted forms are "-Akey", "-Akey=value" and "-A key[=value]"; other
// arguments are skipped. A later occurrence of a key replaces an earlier one.
func ParseArgs(args []string) (MapSource, error) {
	result := make(MapSource)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-A") {
			continue
		}

		option := strings.TrimPrefix(arg, "-A")
		if option == "" {
			// "-A key=value"
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%w: -A expects an option", ErrArgParse)
			}
			i++
			option = args[i]
		}

		key, value, hasValue := strings.Cut(option, "=")
		if err := validateOptionKey(key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrArgParse, err)
		}
		if hasValue {
			result[key] = Value(value)
		} else {
			result[key] = nil
		}
	}
	return result, nil
}

// validateOptionKey checks that key is a sequence of dot-separated segments.
func validateOptionKey(key string) error {
	if key == "" {
		return fmt.Errorf("option key cannot be empty")
	}
	for _, segment := range strings.Split(key, ".") {
		if !isValidKeySegment(segment) {
			return fmt.Errorf("invalid segment %q in option key %q", segment, key)
		}
	}
	return nil
}
