// FILE: lixenwraith/compileropts/option.go
package compileropts

import "github.com/lixenwraith/compileropts/diag"

// Option is anything that can be passed as a processor option.
type Option interface {
	// WireName is the key of the option as it appears after "-A".
	WireName() string
	// String is the symbolic identifier, e.g. "FAST_INIT".
	String() string
}

// enumOption is an option whose value is one member of an enumerated type.
type enumOption[T enumValue] interface {
	Option
	Default() T
	ValidValues() []T
}

// enumValue is a member of a closed value type. String must return the
// upper-case name users type (case-insensitively) on the command line.
type enumValue interface {
	comparable
	String() string
}

// FeatureStatus is the value of a Feature.
type FeatureStatus uint8

const (
	Disabled FeatureStatus = iota
	Enabled
)

var featureStatuses = []FeatureStatus{Enabled, Disabled}

func (s FeatureStatus) String() string {
	switch s {
	case Enabled:
		return "ENABLED"
	case Disabled:
		return "DISABLED"
	}
	return "UNKNOWN"
}

// ValidationType is the value of a Validation.
type ValidationType uint8

const (
	ValidationError ValidationType = iota
	ValidationWarning
	ValidationNone
)

var validationTypes = []ValidationType{ValidationError, ValidationWarning, ValidationNone}

func (v ValidationType) String() string {
	switch v {
	case ValidationError:
		return "ERROR"
	case ValidationWarning:
		return "WARNING"
	case ValidationNone:
		return "NONE"
	}
	return "UNKNOWN"
}

// Severity returns the diagnostic severity for the validation type.
// ValidationNone has none and returns false.
func (v ValidationType) Severity() (diag.Severity, bool) {
	switch v {
	case ValidationError:
		return diag.SevError, true
	case ValidationWarning:
		return diag.SevWarning, true
	}
	return 0, false
}

// KeyOnlyOption is enabled by the presence of its key alone.
type KeyOnlyOption uint8

const (
	HeaderCompilation KeyOnlyOption = iota
	UseGradleIncrementalProcessing
)

type keyOnlySpec struct {
	id   string
	wire string
}

// Literal names; these predate the derived "dagger." naming.
var keyOnlyOptions = []keyOnlySpec{
	HeaderCompilation:              {"HEADER_COMPILATION", "experimental_turbine_hjar"},
	UseGradleIncrementalProcessing: {"USE_GRADLE_INCREMENTAL_PROCESSING", "dagger.gradle.incremental"},
}

func (k KeyOnlyOption) String() string { return keyOnlyOptions[k].id }

func (k KeyOnlyOption) WireName() string { return keyOnlyOptions[k].wire }

// KeyOnlyOptions returns every key-only option in declaration order.
func KeyOnlyOptions() []KeyOnlyOption {
	out := make([]KeyOnlyOption, len(keyOnlyOptions))
	for i := range keyOnlyOptions {
		out[i] = KeyOnlyOption(i)
	}
	return out
}

// Feature can be enabled or disabled with -Akey=ENABLED or -Akey=DISABLED.
type Feature uint8

const (
	FastInit Feature = iota
	ExperimentalAndroidMode
	FormatGeneratedSource
	WriteProducerNameInToken
	WarnIfInjectionFactoryNotGeneratedUpstream
	IgnorePrivateAndStaticInjectionForComponent
	ExperimentalAheadOfTimeSubcomponents
	ForceUseSerializedComponentImplementations
	EmitModifiableMetadataAnnotations
	FloatingBindsMethods
)

type featureSpec struct {
	id           string
	defaultValue FeatureStatus
}

var features = []featureSpec{
	FastInit:                                    {"FAST_INIT", Disabled},
	ExperimentalAndroidMode:                     {"EXPERIMENTAL_ANDROID_MODE", Disabled},
	FormatGeneratedSource:                       {"FORMAT_GENERATED_SOURCE", Enabled},
	WriteProducerNameInToken:                    {"WRITE_PRODUCER_NAME_IN_TOKEN", Disabled},
	WarnIfInjectionFactoryNotGeneratedUpstream:  {"WARN_IF_INJECTION_FACTORY_NOT_GENERATED_UPSTREAM", Disabled},
	IgnorePrivateAndStaticInjectionForComponent: {"IGNORE_PRIVATE_AND_STATIC_INJECTION_FOR_COMPONENT", Disabled},
	ExperimentalAheadOfTimeSubcomponents:        {"EXPERIMENTAL_AHEAD_OF_TIME_SUBCOMPONENTS", Disabled},
	ForceUseSerializedComponentImplementations:  {"FORCE_USE_SERIALIZED_COMPONENT_IMPLEMENTATIONS", Disabled},
	EmitModifiableMetadataAnnotations:           {"EMIT_MODIFIABLE_METADATA_ANNOTATIONS", Enabled},
	FloatingBindsMethods:                        {"FLOATING_BINDS_METHODS", Disabled},
}

func (f Feature) String() string { return features[f].id }

func (f Feature) WireName() string { return featureWireNames[f] }

func (f Feature) Default() FeatureStatus { return features[f].defaultValue }

// ValidValues is every FeatureStatus.
func (f Feature) ValidValues() []FeatureStatus {
	return featureStatuses
}

// Features returns every feature in declaration order.
func Features() []Feature {
	out := make([]Feature, len(features))
	for i := range features {
		out[i] = Feature(i)
	}
	return out
}

// Validation selects how a particular check is reported.
type Validation uint8

const (
	DisableInterComponentScopeValidation Validation = iota
	NullableValidation
	PrivateMemberValidation
	StaticMemberValidation
	// ModuleBindingValidation: whether to validate partial binding graphs
	// associated with modules.
	ModuleBindingValidation
	// ModuleHasDifferentScopesValidation: how to report conflicting scoped
	// bindings when validating partial binding graphs of modules.
	ModuleHasDifferentScopesValidation
	// ExplicitBindingConflictsWithInject: how to report an explicit binding in
	// a subcomponent that conflicts with an injected constructor used in an
	// ancestor component.
	ExplicitBindingConflictsWithInject
)

type validationSpec struct {
	id           string
	defaultValue ValidationType
	valid        []ValidationType
}

// validation builds an entry whose default is always part of the valid set.
// The valid set keeps the declaration order of ValidationType.
func validation(id string, defaultType ValidationType, more ...ValidationType) validationSpec {
	accepted := map[ValidationType]bool{defaultType: true}
	for _, v := range more {
		accepted[v] = true
	}
	valid := make([]ValidationType, 0, len(accepted))
	for _, v := range validationTypes {
		if accepted[v] {
			valid = append(valid, v)
		}
	}
	return validationSpec{id: id, defaultValue: defaultType, valid: valid}
}

var validations = []validationSpec{
	DisableInterComponentScopeValidation: validation("DISABLE_INTER_COMPONENT_SCOPE_VALIDATION", ValidationError, ValidationWarning, ValidationNone),
	NullableValidation:                   validation("NULLABLE_VALIDATION", ValidationError, ValidationWarning),
	PrivateMemberValidation:              validation("PRIVATE_MEMBER_VALIDATION", ValidationError, ValidationWarning),
	StaticMemberValidation:               validation("STATIC_MEMBER_VALIDATION", ValidationError, ValidationWarning),
	ModuleBindingValidation:              validation("MODULE_BINDING_VALIDATION", ValidationNone, ValidationError, ValidationWarning),
	ModuleHasDifferentScopesValidation:   validation("MODULE_HAS_DIFFERENT_SCOPES_VALIDATION", ValidationError, ValidationWarning),
	ExplicitBindingConflictsWithInject:   validation("EXPLICIT_BINDING_CONFLICTS_WITH_INJECT", ValidationWarning, ValidationError, ValidationNone),
}

func (v Validation) String() string { return validations[v].id }

func (v Validation) WireName() string { return validationWireNames[v] }

func (v Validation) Default() ValidationType { return validations[v].defaultValue }

// ValidValues returns the accepted values in ERROR, WARNING, NONE order.
func (v Validation) ValidValues() []ValidationType {
	return validations[v].valid
}

// Validations returns every validation in declaration order.
func Validations() []Validation {
	out := make([]Validation, len(validations))
	for i := range validations {
		out[i] = Validation(i)
	}
	return out
}

// deprecatedOptions were once recognized; their presence only warns.
var deprecatedOptions = []Option{
	ExperimentalAndroidMode,
	FloatingBindsMethods,
}

// DeprecatedOptions returns the wire names that are no longer recognized.
func DeprecatedOptions() []string {
	out := make([]string, len(deprecatedOptions))
	for i, o := range deprecatedOptions {
		out[i] = o.WireName()
	}
	return out
}
