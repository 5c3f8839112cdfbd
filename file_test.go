// FILE: lixenwraith/compileropts/file_test.go
package compileropts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lookupAll flattens a source into plain strings, "<nil>" marking keys without a value.
func lookupAll(t *testing.T, src KeySource) map[string]string {
	t.Helper()
	out := make(map[string]string)
	for _, k := range src.Keys() {
		v, ok := src.(Source).Lookup(k)
		require.True(t, ok, k)
		if v == nil {
			out[k] = "<nil>"
		} else {
			out[k] = *v
		}
	}
	return out
}

func TestParseFile(t *testing.T) {
	tests := []struct {
		name   string
		format string
		data   string
		want   map[string]string
	}{
		{
			name:   "TOMLQuotedKeys",
			format: "toml",
			data: `"dagger.fastInit" = "enabled"
"dagger.nullableValidation" = "WARNING"
experimental_turbine_hjar = true
`,
			want: map[string]string{
				"dagger.fastInit":           "enabled",
				"dagger.nullableValidation": "WARNING",
				"experimental_turbine_hjar": "true",
			},
		},
		{
			name:   "TOMLTables",
			format: "toml",
			data: `[dagger]
fastInit = "enabled"
moduleBindingValidation = "warning"

[dagger.gradle]
incremental = true
`,
			want: map[string]string{
				"dagger.fastInit":                "enabled",
				"dagger.moduleBindingValidation": "warning",
				"dagger.gradle.incremental":      "true",
			},
		},
		{
			name:   "JSON",
			format: "json",
			data:   `{"dagger.fastInit": "disabled", "dagger.other": 42, "experimental_turbine_hjar": null}`,
			want: map[string]string{
				"dagger.fastInit":           "disabled",
				"dagger.other":              "42",
				"experimental_turbine_hjar": "<nil>",
			},
		},
		{
			name:   "YAML",
			format: "yaml",
			data: `dagger:
  fastInit: enabled
  formatGeneratedSource: false
experimental_turbine_hjar: ~
`,
			want: map[string]string{
				"dagger.fastInit":              "enabled",
				"dagger.formatGeneratedSource": "false",
				"experimental_turbine_hjar":    "<nil>",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := ParseFile([]byte(tt.data), tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.format, src.Format)
			if diff := cmp.Diff(tt.want, lookupAll(t, src)); diff != "" {
				t.Errorf("values mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFileErrors(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		_, err := ParseFile([]byte(`"dagger.fastInit" = ["enabled", "disabled"]`), "toml")
		assert.ErrorIs(t, err, ErrNestedValue)
	})

	t.Run("DuplicateKey", func(t *testing.T) {
		inputs := map[string]string{
			"toml": "\"dagger.fastInit\" = \"enabled\"\n\n[dagger]\nfastInit = \"disabled\"\n",
			"json": `{"dagger.fastInit": "enabled", "dagger": {"fastInit": "disabled"}}`,
			"yaml": "dagger.fastInit: enabled\ndagger:\n  fastInit: disabled\n",
		}
		for format, data := range inputs {
			// Map order varies between runs; every attempt must fail the same way.
			for i := 0; i < 20; i++ {
				_, err := ParseFile([]byte(data), format)
				require.ErrorIs(t, err, ErrDuplicateKey, format)
				assert.Contains(t, err.Error(), "dagger.fastInit", format)
			}
		}
	})

	t.Run("DistinctTableKeys", func(t *testing.T) {
		src, err := ParseFile([]byte("\"dagger.fastInit\" = \"enabled\"\n\n[dagger]\nnullableValidation = \"warning\"\n"), "toml")
		require.NoError(t, err)
		assert.Equal(t, []string{"dagger.fastInit", "dagger.nullableValidation"}, src.Keys())
	})

	t.Run("UnsupportedFormat", func(t *testing.T) {
		_, err := ParseFile([]byte(`a=1`), "ini")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := ParseFile([]byte(`{"dagger.fastInit": `), "json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JSON")
	})

	t.Run("BadKey", func(t *testing.T) {
		_, err := ParseFile([]byte(`{"dagger.fast init": "enabled"}`), "json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid segment")
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("ByExtension", func(t *testing.T) {
		path := filepath.Join(dir, "opts.yml")
		require.NoError(t, os.WriteFile(path, []byte("dagger.fastInit: enabled\n"), 0644))

		src, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "yaml", src.Format)
		assert.Equal(t, path, src.Path)

		v, ok := src.Lookup("dagger.fastInit")
		require.True(t, ok)
		assert.Equal(t, "enabled", *v)
	})

	t.Run("ByContent", func(t *testing.T) {
		path := filepath.Join(dir, "opts")
		require.NoError(t, os.WriteFile(path, []byte(`{"dagger.fastInit": "enabled"}`), 0644))

		src, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "json", src.Format)
	})

	t.Run("ExplicitFormat", func(t *testing.T) {
		path := filepath.Join(dir, "opts.conf")
		require.NoError(t, os.WriteFile(path, []byte(`"dagger.fastInit" = "enabled"`), 0644))

		src, err := LoadFileFormat(path, "toml")
		require.NoError(t, err)
		assert.Equal(t, "toml", src.Format)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.toml"))
		assert.ErrorIs(t, err, ErrOptionsFileNotFound)
	})

	t.Run("TooLarge", func(t *testing.T) {
		path := filepath.Join(dir, "big.toml")
		data := "# " + strings.Repeat("x", MaxFileSize) + "\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds maximum size")
	})
}

func TestFileSourceNil(t *testing.T) {
	var src *FileSource
	_, ok := src.Lookup("dagger.fastInit")
	assert.False(t, ok)
	assert.Nil(t, src.Keys())
}
