// Command compileropts checks, lists and dumps annotation processor options
// the way a build tool would hand them to the compiler.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errProblemsFound makes the process exit 1 without printing anything more;
// the diagnostics were already written.
var errProblemsFound = errors.New("option problems found")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "compileropts",
		Short:         "Annotation processor option checker",
		Long:          `compileropts resolves dagger.* processor options from -A arguments, the environment and an options file, and reports problems with them`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringArrayP("option", "A", nil, "processor option key[=value] (repeatable)")
	rootCmd.PersistentFlags().String("options-file", "", "options file (toml|json|yaml)")
	rootCmd.PersistentFlags().String("env-prefix", "", "also read options from environment variables with this prefix")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "only print errors")
	rootCmd.PersistentFlags().Bool("verbose", false, "log option resolution to stderr")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errProblemsFound) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// isTerminal reports whether w is a terminal
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
