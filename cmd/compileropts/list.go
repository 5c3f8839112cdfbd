// FILE: lixenwraith/compileropts/cmd/compileropts/list.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/compileropts"
)

// optionInfo describes one registered option for listing.
type optionInfo struct {
	Name       string   `json:"name"`
	Kind       string   `json:"kind"`
	Default    string   `json:"default,omitempty"`
	Accepts    []string `json:"accepts,omitempty"`
	Deprecated bool     `json:"deprecated,omitempty"`
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every supported option",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	cmd.Flags().String("format", "table", "output format (table|json|names)")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	infos := registeredOptions()
	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "table":
		return writeOptionTable(out, infos)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	case "names":
		for _, name := range compileropts.SupportedOptions() {
			fmt.Fprintln(out, name)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want table|json|names)", format)
	}
}

func registeredOptions() []optionInfo {
	var infos []optionInfo
	for _, k := range compileropts.KeyOnlyOptions() {
		infos = append(infos, optionInfo{Name: k.WireName(), Kind: "key-only"})
	}
	for _, f := range compileropts.Features() {
		infos = append(infos, optionInfo{
			Name:       f.WireName(),
			Kind:       "feature",
			Default:    f.Default().String(),
			Accepts:    valueNames(f.ValidValues()),
			Deprecated: compileropts.IsDeprecated(f.WireName()),
		})
	}
	for _, v := range compileropts.Validations() {
		infos = append(infos, optionInfo{
			Name:    v.WireName(),
			Kind:    "validation",
			Default: v.Default().String(),
			Accepts: valueNames(v.ValidValues()),
		})
	}
	return infos
}

func writeOptionTable(out io.Writer, infos []optionInfo) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tDEFAULT\tACCEPTS")
	for _, info := range infos {
		name := info.Name
		if info.Deprecated {
			name += " (deprecated)"
		}
		def := info.Default
		if def == "" {
			def = "-"
		}
		accepts := strings.Join(info.Accepts, "|")
		if accepts == "" {
			accepts = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, info.Kind, def, accepts)
	}
	return w.Flush()
}

func valueNames[T fmt.Stringer](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}
