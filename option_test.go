// FILE: lixenwraith/compileropts/option_test.go
package compileropts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/compileropts/diag"
)

// TestRegistry checks the declared option tables
func TestRegistry(t *testing.T) {
	t.Run("Counts", func(t *testing.T) {
		assert.Len(t, KeyOnlyOptions(), 2)
		assert.Len(t, Features(), 10)
		assert.Len(t, Validations(), 7)
	})

	t.Run("FeatureDefaults", func(t *testing.T) {
		for _, f := range Features() {
			want := Disabled
			if f == FormatGeneratedSource || f == EmitModifiableMetadataAnnotations {
				want = Enabled
			}
			assert.Equal(t, want, f.Default(), f.String())
			assert.Equal(t, []FeatureStatus{Enabled, Disabled}, f.ValidValues(), f.String())
		}
	})

	t.Run("DefaultIsAlwaysValid", func(t *testing.T) {
		for _, f := range Features() {
			assert.Contains(t, f.ValidValues(), f.Default(), f.String())
		}
		for _, v := range Validations() {
			assert.Contains(t, v.ValidValues(), v.Default(), v.String())
			assert.NotEmpty(t, v.ValidValues(), v.String())
		}
	})

	t.Run("ValidationTable", func(t *testing.T) {
		tests := []struct {
			v     Validation
			def   ValidationType
			valid []ValidationType
		}{
			{DisableInterComponentScopeValidation, ValidationError, []ValidationType{ValidationError, ValidationWarning, ValidationNone}},
			{NullableValidation, ValidationError, []ValidationType{ValidationError, ValidationWarning}},
			{PrivateMemberValidation, ValidationError, []ValidationType{ValidationError, ValidationWarning}},
			{StaticMemberValidation, ValidationError, []ValidationType{ValidationError, ValidationWarning}},
			{ModuleBindingValidation, ValidationNone, []ValidationType{ValidationError, ValidationWarning, ValidationNone}},
			{ModuleHasDifferentScopesValidation, ValidationError, []ValidationType{ValidationError, ValidationWarning}},
			{ExplicitBindingConflictsWithInject, ValidationWarning, []ValidationType{ValidationError, ValidationWarning, ValidationNone}},
		}
		require.Len(t, tests, len(Validations()))
		for _, tt := range tests {
			t.Run(tt.v.String(), func(t *testing.T) {
				assert.Equal(t, tt.def, tt.v.Default())
				assert.Equal(t, tt.valid, tt.v.ValidValues())
			})
		}
	})

	t.Run("KeyOnlyLiteralNames", func(t *testing.T) {
		assert.Equal(t, "experimental_turbine_hjar", HeaderCompilation.WireName())
		assert.Equal(t, "dagger.gradle.incremental", UseGradleIncrementalProcessing.WireName())
		assert.Equal(t, "HEADER_COMPILATION", HeaderCompilation.String())
	})

	t.Run("Deprecated", func(t *testing.T) {
		assert.Equal(t, []string{"dagger.experimentalAndroidMode", "dagger.floatingBindsMethods"}, DeprecatedOptions())
		assert.True(t, IsDeprecated("dagger.floatingBindsMethods"))
		assert.False(t, IsDeprecated("dagger.fastInit"))
	})
}

func TestValidationTypeSeverity(t *testing.T) {
	sev, ok := ValidationError.Severity()
	assert.True(t, ok)
	assert.Equal(t, diag.SevError, sev)

	sev, ok = ValidationWarning.Severity()
	assert.True(t, ok)
	assert.Equal(t, diag.SevWarning, sev)

	_, ok = ValidationNone.Severity()
	assert.False(t, ok)
}

func TestValueNames(t *testing.T) {
	assert.Equal(t, "ENABLED", Enabled.String())
	assert.Equal(t, "DISABLED", Disabled.String())
	assert.Equal(t, "ERROR", ValidationError.String())
	assert.Equal(t, "WARNING", ValidationWarning.String())
	assert.Equal(t, "NONE", ValidationNone.String())
	assert.Equal(t, "UNKNOWN", ValidationType(9).String())
}
