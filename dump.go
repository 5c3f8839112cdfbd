// File: lixenwraith/compileropts/dump.go
package compileropts

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Snapshot resolves every option and returns wire name to effective value.
// Key-only options map to "true" or "false".
func (c *CompilerOptions) Snapshot() map[string]string {
	out := make(map[string]string, len(keyOnlyOptions)+len(features)+len(validations))
	for _, k := range KeyOnlyOptions() {
		out[k.WireName()] = strconv.FormatBool(c.IsSet(k))
	}
	for _, f := range Features() {
		out[f.WireName()] = c.Feature(f).String()
	}
	for _, v := range Validations() {
		out[v.WireName()] = c.Validation(v).String()
	}
	return out
}

// Dump writes the effective options to w in TOML format. The output can be
// passed back as an options file. Deprecated options are written only when
// they were given.
func (c *CompilerOptions) Dump(w io.Writer) error {
	snapshot := c.Snapshot()
	data := make(map[string]any, len(snapshot))
	for key, value := range snapshot {
		data[key] = value
	}
	// Any value of a key-only option counts as set, so unset ones are omitted.
	for _, k := range KeyOnlyOptions() {
		if c.IsSet(k) {
			data[k.WireName()] = true
		} else {
			delete(data, k.WireName())
		}
	}
	for _, o := range deprecatedOptions {
		if _, present := c.source.Lookup(o.WireName()); !present {
			delete(data, o.WireName())
		}
	}

	encoder := toml.NewEncoder(w)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to marshal options to TOML: %w", err)
	}
	return nil
}

// Debug returns a table of every option with its default and effective value.
func (c *CompilerOptions) Debug() string {
	snapshot := c.Snapshot()
	defaults := make(map[string]string, len(snapshot))
	for _, k := range KeyOnlyOptions() {
		defaults[k.WireName()] = "false"
	}
	for _, f := range Features() {
		defaults[f.WireName()] = f.Default().String()
	}
	for _, v := range Validations() {
		defaults[v.WireName()] = v.Default().String()
	}

	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("Compiler options:\n")
	for _, key := range keys {
		marker := ""
		if snapshot[key] != defaults[key] {
			marker = " *"
		}
		fmt.Fprintf(&b, "  %s = %s (default %s)%s\n", key, snapshot[key], defaults[key], marker)
	}
	return b.String()
}
