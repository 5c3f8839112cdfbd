// FILE: lixenwraith/compileropts/cmd/compileropts/dump.go
package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the effective options",
		Long:  `Print the effective value of every option as TOML, which can be used as an options file`,
		Args:  cobra.NoArgs,
		RunE:  runDump,
	}
	cmd.Flags().Bool("table", false, "print a table with defaults instead of TOML")
	return cmd
}

func runDump(cmd *cobra.Command, args []string) error {
	table, err := cmd.Flags().GetBool("table")
	if err != nil {
		return fmt.Errorf("failed to get table flag: %w", err)
	}

	inv, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if table {
		_, err = io.WriteString(out, inv.options.Debug())
		return err
	}
	return inv.options.Dump(out)
}
