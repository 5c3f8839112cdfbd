// FILE: lixenwraith/compileropts/options.go
package compileropts

import (
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/lixenwraith/compileropts/diag"
)

// TypeResolver answers whether a type is available to the compilation.
type TypeResolver interface {
	HasType(canonicalName string) bool
}

// TypeResolverFunc adapts a function to TypeResolver.
type TypeResolverFunc func(canonicalName string) bool

func (f TypeResolverFunc) HasType(canonicalName string) bool { return f(canonicalName) }

// CompilerOptions holds the options of one compiler invocation. Every
// value-bearing option is parsed at most once per instance, so each problem
// is reported at most once no matter how many callers ask.
//
// Instances must not be shared between invocations.
type CompilerOptions struct {
	source   Source
	reporter diag.Reporter
	logger   *slog.Logger
	types    TypeResolver

	mu          sync.Mutex
	features    map[Feature]FeatureStatus
	validations map[Validation]ValidationType
	problems    []error
}

// Opt configures a CompilerOptions at construction.
type Opt func(*CompilerOptions)

// WithLogger sets the logger used for debug output of option resolution.
func WithLogger(logger *slog.Logger) Opt {
	return func(c *CompilerOptions) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTypeResolver sets how UsesProducers looks up types.
func WithTypeResolver(types TypeResolver) Opt {
	return func(c *CompilerOptions) { c.types = types }
}

// New creates options over src and runs Validate, so every problem with
// the given options is reported to reporter before New returns.
func New(src Source, reporter diag.Reporter, opts ...Opt) *CompilerOptions {
	return newOptions(src, reporter, opts...).Validate()
}

// newOptions creates options without validating them.
func newOptions(src Source, reporter diag.Reporter, opts ...Opt) *CompilerOptions {
	if src == nil {
		src = MapSource{}
	}
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	c := &CompilerOptions{
		source:      src,
		reporter:    reporter,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		features:    make(map[Feature]FeatureStatus, len(features)),
		validations: make(map[Validation]ValidationType, len(validations)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsSet reports whether the key-only option was given. Any value is ignored.
func (c *CompilerOptions) IsSet(k KeyOnlyOption) bool {
	_, present := c.source.Lookup(k.WireName())
	return present
}

// Feature returns the resolved status of f.
func (c *CompilerOptions) Feature(f Feature) FeatureStatus {
	return parseOption(c, c.features, f, f, featureStatuses)
}

// Validation returns the resolved type of v.
func (c *CompilerOptions) Validation(v Validation) ValidationType {
	return parseOption(c, c.validations, v, v, validationTypes)
}

// Err joins every OptionError reported so far, or returns nil.
func (c *CompilerOptions) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return errors.Join(c.problems...)
}

// parseOption returns the cached value of opt, resolving and caching it on
// first use. members is the full value type, used to recognise names that
// exist but are not accepted by opt.
func parseOption[K comparable, T enumValue](c *CompilerOptions, cache map[K]T, key K, opt enumOption[T], members []T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := cache[key]; ok {
		return v
	}
	v := parseOptionUncached(c, opt, members)
	cache[key] = v
	return v
}

func parseOptionUncached[T enumValue](c *CompilerOptions, opt enumOption[T], members []T) T {
	key := opt.WireName()
	raw, present := c.source.Lookup(key)
	if !present {
		c.logger.Debug("option resolved", "option", key, "value", opt.Default().String(), "from", "default")
		return opt.Default()
	}

	if raw == nil || *raw == "" {
		c.fail(&OptionError{Kind: MissingValue, Key: key})
		return opt.Default()
	}

	if v, ok := matchMember(*raw, members); ok && contains(opt.ValidValues(), v) {
		c.logger.Debug("option resolved", "option", key, "value", v.String(), "from", "source")
		return v
	}

	c.fail(&OptionError{
		Kind:   InvalidValue,
		Key:    key,
		Value:  *raw,
		Accept: names(opt.ValidValues()),
	})
	return opt.Default()
}

// fail records and reports a problem. Callers hold c.mu.
func (c *CompilerOptions) fail(err *OptionError) {
	c.problems = append(c.problems, err)
	c.logger.Debug("option rejected", "option", err.Key, "reason", err.Kind.String())
	diag.ReportError(c.reporter, err.Kind.Code(), err.Key, err.Error())
}

// matchMember finds the member whose name equals the ASCII upper-cased input.
func matchMember[T enumValue](raw string, members []T) (T, bool) {
	name := asciiUpper(raw)
	for _, m := range members {
		if m.String() == name {
			return m, true
		}
	}
	var zero T
	return zero, false
}

func contains[T comparable](values []T, v T) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func names[T enumValue](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}
