// FILE: lixenwraith/compileropts/validate.go
package compileropts

import (
	"sort"

	"github.com/lixenwraith/compileropts/diag"
)

// Validate resolves every registered option once, so that all problems are
// reported together instead of one per run, then warns about each
// deprecated option that was given. It returns c.
func (c *CompilerOptions) Validate() *CompilerOptions {
	for _, k := range KeyOnlyOptions() {
		c.IsSet(k)
	}
	for _, f := range Features() {
		c.Feature(f)
	}
	for _, v := range Validations() {
		c.Validation(v)
	}
	for _, o := range deprecatedOptions {
		c.noLongerRecognized(o)
	}
	return c
}

// noLongerRecognized warns when a removed option is present. It never
// changes how any option resolves.
func (c *CompilerOptions) noLongerRecognized(o Option) {
	key := o.WireName()
	if _, present := c.source.Lookup(key); !present {
		return
	}
	c.logger.Debug("deprecated option given", "option", key)
	diag.ReportWarning(c.reporter, diag.CodeDeprecatedOption, key, deprecatedMessage(key))
}

// UnrecognizedKeys returns the keys given to this invocation that name no
// registered option, in sorted order. Sources that cannot enumerate their
// keys contribute nothing.
func (c *CompilerOptions) UnrecognizedKeys() []string {
	ks, ok := c.source.(KeySource)
	if !ok {
		return nil
	}
	var unknown []string
	for _, key := range ks.Keys() {
		if _, known := LookupOption(key); !known {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}
