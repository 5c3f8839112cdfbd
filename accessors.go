// FILE: lixenwraith/compileropts/accessors.go
package compileropts

import (
	"fmt"

	"github.com/lixenwraith/compileropts/diag"
)

// ProducesAnnotation is the type whose presence means producers are in use.
const ProducesAnnotation = "dagger.producers.Produces"

// UsesProducers reports whether the producers annotation is on the
// compilation's classpath. It is false without a TypeResolver.
func (c *CompilerOptions) UsesProducers() bool {
	return c.types != nil && c.types.HasType(ProducesAnnotation)
}

func (c *CompilerOptions) HeaderCompilation() bool {
	return c.IsSet(HeaderCompilation)
}

func (c *CompilerOptions) UseGradleIncrementalProcessing() bool {
	return c.IsSet(UseGradleIncrementalProcessing)
}

func (c *CompilerOptions) FastInit() bool {
	return c.isEnabled(FastInit)
}

func (c *CompilerOptions) FormatGeneratedSource() bool {
	return c.isEnabled(FormatGeneratedSource)
}

func (c *CompilerOptions) WriteProducerNameInToken() bool {
	return c.isEnabled(WriteProducerNameInToken)
}

func (c *CompilerOptions) IgnorePrivateAndStaticInjectionForComponent() bool {
	return c.isEnabled(IgnorePrivateAndStaticInjectionForComponent)
}

func (c *CompilerOptions) WarnIfInjectionFactoryNotGeneratedUpstream() bool {
	return c.isEnabled(WarnIfInjectionFactoryNotGeneratedUpstream)
}

func (c *CompilerOptions) AheadOfTimeSubcomponents() bool {
	return c.isEnabled(ExperimentalAheadOfTimeSubcomponents)
}

func (c *CompilerOptions) ForceUseSerializedComponentImplementations() bool {
	return c.isEnabled(ForceUseSerializedComponentImplementations)
}

func (c *CompilerOptions) EmitModifiableMetadataAnnotations() bool {
	return c.isEnabled(EmitModifiableMetadataAnnotations)
}

// NullableValidationKind is the severity for nullable mismatches.
func (c *CompilerOptions) NullableValidationKind() diag.Severity {
	return c.diagnosticKind(NullableValidation)
}

func (c *CompilerOptions) PrivateMemberValidationKind() diag.Severity {
	return c.diagnosticKind(PrivateMemberValidation)
}

func (c *CompilerOptions) StaticMemberValidationKind() diag.Severity {
	return c.diagnosticKind(StaticMemberValidation)
}

func (c *CompilerOptions) ModuleHasDifferentScopesDiagnosticKind() diag.Severity {
	return c.diagnosticKind(ModuleHasDifferentScopesValidation)
}

// ScopeCycleValidationType controls inter-component scope validation.
func (c *CompilerOptions) ScopeCycleValidationType() ValidationType {
	return c.Validation(DisableInterComponentScopeValidation)
}

func (c *CompilerOptions) ExplicitBindingConflictsWithInjectValidationType() ValidationType {
	return c.Validation(ExplicitBindingConflictsWithInject)
}

// ModuleBindingValidationType returns how to validate the binding graph of
// the named module. The result is currently the same for every module.
func (c *CompilerOptions) ModuleBindingValidationType(moduleName string) ValidationType {
	return c.Validation(ModuleBindingValidation)
}

func (c *CompilerOptions) isEnabled(f Feature) bool {
	return c.Feature(f) == Enabled
}

// diagnosticKind maps v onto a severity. Only validations that cannot
// resolve to NONE go through here; NONE is a programming error.
func (c *CompilerOptions) diagnosticKind(v Validation) diag.Severity {
	sev, ok := c.Validation(v).Severity()
	if !ok {
		panic(fmt.Sprintf("compileropts: %s resolved to %s, which has no diagnostic kind", v, ValidationNone))
	}
	return sev
}
