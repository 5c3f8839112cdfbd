// FILE: lixenwraith/compileropts/cmd/compileropts/load.go
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/compileropts"
	"github.com/lixenwraith/compileropts/diag"
)

// invocation is the resolved options of one command run together with
// everything that was reported while resolving them.
type invocation struct {
	options  *compileropts.CompilerOptions
	bag      *diag.Bag
	reporter diag.Reporter
	quiet    bool
}

// loadOptions builds the options described by the persistent flags.
// Diagnostics are collected in a bag and printed to stderr as they arrive.
func loadOptions(cmd *cobra.Command) (*invocation, error) {
	flags := cmd.Flags()

	rawOptions, err := flags.GetStringArray("option")
	if err != nil {
		return nil, fmt.Errorf("failed to get option flag: %w", err)
	}
	optionsFile, err := flags.GetString("options-file")
	if err != nil {
		return nil, fmt.Errorf("failed to get options-file flag: %w", err)
	}
	envPrefix, err := flags.GetString("env-prefix")
	if err != nil {
		return nil, fmt.Errorf("failed to get env-prefix flag: %w", err)
	}
	colorMode, err := flags.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return nil, fmt.Errorf("failed to get verbose flag: %w", err)
	}

	stderr := cmd.ErrOrStderr()
	colored, err := colorEnabled(colorMode, stderr)
	if err != nil {
		return nil, err
	}

	bag := diag.NewBag(0)
	reporters := diag.MultiReporter{bag, diag.NewWriterReporter(stderr, colored, quiet)}

	args := make([]string, 0, len(rawOptions))
	for _, opt := range rawOptions {
		args = append(args, "-A"+opt)
	}

	builder := compileropts.NewBuilder().WithArgs(args)
	if verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		builder.WithLogger(logger)
		reporters = append(reporters, diag.SlogReporter{Logger: logger})
	}
	reporter := diag.NewDedupReporter(reporters)
	builder.WithReporter(reporter)

	if envPrefix != "" {
		builder.WithEnvPrefix(envPrefix)
	}
	if optionsFile != "" {
		builder.WithFile(optionsFile)
	} else {
		discovery := compileropts.DefaultDiscoveryOptions("compileropts")
		discovery.CLIFlag = ""
		builder.WithFileDiscovery(discovery)
	}

	// An explicitly named file that is missing is an error; discovery only
	// returns files that exist.
	options, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return &invocation{
		options:  options,
		bag:      bag,
		reporter: reporter,
		quiet:    quiet,
	}, nil
}

// colorEnabled decides whether output to w is colored. "auto" colors
// terminals unless NO_COLOR is set.
func colorEnabled(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "auto":
		return isTerminal(w) && os.Getenv("NO_COLOR") == "", nil
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	default:
		return false, fmt.Errorf("unknown color mode %q (want auto|on|off)", mode)
	}
}
