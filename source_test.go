// FILE: lixenwraith/compileropts/source_test.go
package compileropts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	t.Run("Forms", func(t *testing.T) {
		src, err := ParseArgs([]string{
			"-Adagger.fastInit=enabled",
			"-Aexperimental_turbine_hjar",
			"-A", "dagger.nullableValidation=WARNING",
			"-Adagger.formatGeneratedSource=",
			"-d", "out",
			"Main.java",
			"-Adagger.privateMemberValidation=a=b",
		})
		require.NoError(t, err)

		v, ok := src.Lookup("dagger.fastInit")
		require.True(t, ok)
		assert.Equal(t, "enabled", *v)

		v, ok = src.Lookup("experimental_turbine_hjar")
		assert.True(t, ok)
		assert.Nil(t, v)

		v, ok = src.Lookup("dagger.nullableValidation")
		require.True(t, ok)
		assert.Equal(t, "WARNING", *v)

		v, ok = src.Lookup("dagger.formatGeneratedSource")
		require.True(t, ok)
		require.NotNil(t, v)
		assert.Equal(t, "", *v)

		v, ok = src.Lookup("dagger.privateMemberValidation")
		require.True(t, ok)
		assert.Equal(t, "a=b", *v)

		assert.Len(t, src, 5)
	})

	t.Run("IdentifierKeys", func(t *testing.T) {
		src, err := ParseArgs([]string{"-A_private.$x1=y", "-Aa1.b_2"})
		require.NoError(t, err)
		assert.Equal(t, []string{"_private.$x1", "a1.b_2"}, src.Keys())
	})

	t.Run("LastWins", func(t *testing.T) {
		src, err := ParseArgs([]string{"-Adagger.fastInit=enabled", "-Adagger.fastInit=disabled"})
		require.NoError(t, err)
		v, _ := src.Lookup("dagger.fastInit")
		assert.Equal(t, "disabled", *v)
	})

	t.Run("Errors", func(t *testing.T) {
		tests := []struct {
			name string
			args []string
		}{
			{"EmptyKey", []string{"-A=value"}},
			{"DanglingA", []string{"-A"}},
			{"BadSegment", []string{"-Adagger..fastInit"}},
			{"BadChar", []string{"-Adagger.fast!nit=enabled"}},
			{"FlagAfterA", []string{"-A", "-Xlint", "Main.java"}},
			{"DashInSegment", []string{"-Adagger.fast-init=enabled"}},
			{"DigitFirst", []string{"-Adagger.1fastInit=enabled"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := ParseArgs(tt.args)
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrArgParse))
			})
		}
	})
}

func TestEnvSource(t *testing.T) {
	t.Run("DefaultTransform", func(t *testing.T) {
		t.Setenv("APT_DAGGER_FASTINIT", "enabled")
		src := EnvSource{Prefix: "APT_"}

		v, ok := src.Lookup("dagger.fastInit")
		require.True(t, ok)
		assert.Equal(t, "enabled", *v)

		_, ok = src.Lookup("dagger.nullableValidation")
		assert.False(t, ok)

		assert.Equal(t, []string{"dagger.fastInit"}, src.Keys())
	})

	t.Run("CustomTransform", func(t *testing.T) {
		env := map[string]string{"NULLABLE": "warning"}
		src := EnvSource{
			Transform: func(key string) string {
				if key == "dagger.nullableValidation" {
					return "NULLABLE"
				}
				return ""
			},
			LookupEnv: func(name string) (string, bool) {
				v, ok := env[name]
				return v, ok
			},
		}

		v, ok := src.Lookup("dagger.nullableValidation")
		require.True(t, ok)
		assert.Equal(t, "warning", *v)
	})

	t.Run("EmptyValueIsPresent", func(t *testing.T) {
		src := EnvSource{LookupEnv: func(name string) (string, bool) {
			return "", name == "EXPERIMENTAL_TURBINE_HJAR"
		}}
		v, ok := src.Lookup("experimental_turbine_hjar")
		assert.True(t, ok)
		assert.Equal(t, "", *v)
	})
}

func TestLayeredSource(t *testing.T) {
	high := MapSource{"dagger.fastInit": Value("enabled")}
	low := MapSource{
		"dagger.fastInit":           Value("disabled"),
		"dagger.nullableValidation": Value("warning"),
		"experimental_turbine_hjar": nil,
	}
	layered := LayeredSource{high, nil, low}

	v, ok := layered.Lookup("dagger.fastInit")
	require.True(t, ok)
	assert.Equal(t, "enabled", *v)

	v, ok = layered.Lookup("dagger.nullableValidation")
	require.True(t, ok)
	assert.Equal(t, "warning", *v)

	v, ok = layered.Lookup("experimental_turbine_hjar")
	assert.True(t, ok)
	assert.Nil(t, v)

	_, ok = layered.Lookup("dagger.gradle.incremental")
	assert.False(t, ok)

	assert.Equal(t, []string{"dagger.fastInit", "dagger.nullableValidation", "experimental_turbine_hjar"}, layered.Keys())
}

func TestMapSourceKeys(t *testing.T) {
	src := MapSource{"b": nil, "a": Value("x")}
	assert.Equal(t, []string{"a", "b"}, src.Keys())
}
