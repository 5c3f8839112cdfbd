// File: lixenwraith/compileropts/builder.go
package compileropts

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lixenwraith/compileropts/diag"
)

// Builder provides a fluent interface for assembling the option sources of
// one invocation and building its CompilerOptions.
type Builder struct {
	args       []string
	file       string
	fileFormat string
	discovery  *FileDiscoveryOptions
	sources    []SourceKind
	env        *EnvSource
	extra      []Source
	reporter   diag.Reporter
	opts       []Opt
	err        error
}

// NewBuilder creates a builder reading -A options from os.Args.
func NewBuilder() *Builder {
	return &Builder{
		args:    os.Args[1:],
		sources: DefaultPrecedence(),
	}
}

// WithArgs sets the command-line arguments to scan for -A options
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithEnvPrefix enables the environment source with the given prefix.
// Without WithEnvPrefix or WithEnvTransform the environment is not read.
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.envSource().Prefix = prefix
	return b
}

// WithEnvTransform enables the environment source with a custom name mapping
func (b *Builder) WithEnvTransform(fn EnvTransformFunc) *Builder {
	b.envSource().Transform = fn
	return b
}

// WithLookupEnv replaces os.LookupEnv for the environment source
func (b *Builder) WithLookupEnv(fn func(string) (string, bool)) *Builder {
	b.envSource().LookupEnv = fn
	return b
}

// WithFile sets the options file path
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithFileFormat forces the options file format ("toml", "json", "yaml")
func (b *Builder) WithFileFormat(format string) *Builder {
	switch format {
	case "", "auto", "toml", "json", "yaml":
		b.fileFormat = format
	default:
		b.err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return b
}

// WithFileDiscovery looks for an options file unless one was set explicitly.
// The search runs when the sources are assembled, so it sees the final args.
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	b.discovery = &opts
	return b
}

// WithSources sets the precedence order of the sources (first = highest)
func (b *Builder) WithSources(sources ...SourceKind) *Builder {
	b.sources = sources
	return b
}

// WithSource adds a host-provided source below all others
func (b *Builder) WithSource(src Source) *Builder {
	if src != nil {
		b.extra = append(b.extra, src)
	}
	return b
}

// WithReporter sets where diagnostics go
func (b *Builder) WithReporter(r diag.Reporter) *Builder {
	b.reporter = r
	return b
}

// WithLogger sets the logger for resolution debug output
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.opts = append(b.opts, WithLogger(logger))
	return b
}

// WithTypeResolver sets the resolver behind UsesProducers
func (b *Builder) WithTypeResolver(types TypeResolver) *Builder {
	b.opts = append(b.opts, WithTypeResolver(types))
	return b
}

// Source assembles the layered source without building options.
// A missing options file yields ErrOptionsFileNotFound alongside a usable source.
func (b *Builder) Source() (Source, error) {
	if b.err != nil {
		return nil, b.err
	}

	var (
		layers   LayeredSource
		notFound error
	)
	for _, kind := range b.sources {
		switch kind {
		case SourceCLI:
			cli, err := ParseArgs(b.args)
			if err != nil {
				return nil, err
			}
			layers = append(layers, cli)

		case SourceEnv:
			if b.env != nil {
				layers = append(layers, *b.env)
			}

		case SourceFile:
			path := b.filePath()
			if path == "" {
				continue
			}
			file, err := LoadFileFormat(path, b.fileFormat)
			if err != nil {
				if errors.Is(err, ErrOptionsFileNotFound) {
					notFound = err
					continue
				}
				return nil, err // Fatal error
			}
			layers = append(layers, file)

		default:
			return nil, fmt.Errorf("unknown source kind %q", kind)
		}
	}
	for _, src := range b.extra {
		layers = append(layers, src)
	}

	return layers, notFound
}

// Build creates the validated CompilerOptions. ErrOptionsFileNotFound is
// returned together with usable options.
func (b *Builder) Build() (*CompilerOptions, error) {
	src, err := b.Source()
	if err != nil && !errors.Is(err, ErrOptionsFileNotFound) {
		return nil, err
	}
	return New(src, b.reporter, b.opts...), err
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *CompilerOptions {
	c, err := b.Build()
	if err != nil && !errors.Is(err, ErrOptionsFileNotFound) {
		panic(fmt.Sprintf("compiler options build failed: %v", err))
	}
	return c
}

func (b *Builder) filePath() string {
	if b.file != "" || b.discovery == nil {
		return b.file
	}
	return DiscoverFile(*b.discovery, b.args)
}

func (b *Builder) envSource() *EnvSource {
	if b.env == nil {
		b.env = &EnvSource{}
	}
	return b.env
}
