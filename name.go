// FILE: lixenwraith/compileropts/name.go
package compileropts

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// OptionPrefix is prepended to every derived wire name.
const OptionPrefix = "dagger."

// Wire names are derived once; changing them breaks every caller that
// passes the option.
var (
	featureWireNames    = deriveWireNames(features, func(s featureSpec) string { return s.id })
	validationWireNames = deriveWireNames(validations, func(s validationSpec) string { return s.id })
)

func deriveWireNames[S any](specs []S, id func(S) string) []string {
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = optionName(id(s))
	}
	return names
}

// optionName turns an UPPER_UNDERSCORE identifier into its wire name,
// e.g. "FAST_INIT" becomes "dagger.fastInit".
func optionName(identifier string) string {
	return OptionPrefix + lowerCamel(identifier)
}

// lowerCamel converts UPPER_UNDERSCORE to lowerCamel. Empty words produced by
// leading, trailing or doubled underscores are dropped.
func lowerCamel(identifier string) string {
	lower := cases.Lower(language.Und)
	title := cases.Title(language.Und)

	var b strings.Builder
	first := true
	for _, word := range strings.Split(identifier, "_") {
		if word == "" {
			continue
		}
		if first {
			b.WriteString(lower.String(word))
			first = false
			continue
		}
		b.WriteString(title.String(word))
	}
	return b.String()
}

// allOptions lists every registered option: key-only, then features, then
// validations.
func allOptions() []Option {
	out := make([]Option, 0, len(keyOnlyOptions)+len(features)+len(validations))
	for _, k := range KeyOnlyOptions() {
		out = append(out, k)
	}
	for _, f := range Features() {
		out = append(out, f)
	}
	for _, v := range Validations() {
		out = append(out, v)
	}
	return out
}

// SupportedOptions returns the sorted wire names of every recognized option.
func SupportedOptions() []string {
	opts := allOptions()
	names := make([]string, 0, len(opts))
	seen := make(map[string]bool, len(opts))
	for _, o := range opts {
		name := o.WireName()
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupOption finds the registered option with the given wire name.
func LookupOption(wireName string) (Option, bool) {
	for _, o := range allOptions() {
		if o.WireName() == wireName {
			return o, true
		}
	}
	return nil, false
}

// IsDeprecated reports whether wireName belongs to an option that is no
// longer recognized.
func IsDeprecated(wireName string) bool {
	for _, o := range deprecatedOptions {
		if o.WireName() == wireName {
			return true
		}
	}
	return false
}
