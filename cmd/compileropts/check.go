// FILE: lixenwraith/compileropts/cmd/compileropts/check.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/compileropts/diag"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Resolve every option and report problems",
		Long:  `Resolve every processor option once, print all problems found and exit with status 1 if any of them is an error`,
		Args:  cobra.NoArgs,
		RunE:  runCheck,
	}
	cmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	warningsAsErrors, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}

	inv, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	for _, key := range inv.options.UnrecognizedKeys() {
		diag.ReportWarning(inv.reporter, diag.CodeUnrecognizedOption, key,
			fmt.Sprintf("The following option was not recognized: %s", key))
	}

	errs := inv.bag.Count(diag.SevError)
	warnings := inv.bag.Count(diag.SevWarning)
	if !inv.quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%d error(s), %d warning(s)\n", errs, warnings)
	}

	if errs > 0 || (warningsAsErrors && warnings > 0) {
		return errProblemsFound
	}
	return nil
}
