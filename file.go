// FILE: lixenwraith/compileropts/file.go
package compileropts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// MaxFileSize caps the size of an options file.
const MaxFileSize = 1 << 20

// FileSource holds options read from a TOML, JSON or YAML file.
//
// Keys may be written quoted ("dagger.fastInit" = "enabled") or as tables
// ([dagger] fastInit = "enabled"); both produce the same wire name.
// A null value (YAML "~", JSON null) means the key is present without a
// value. Scalars other than strings are converted to their text form.
type FileSource struct {
	Path   string
	Format string
	values MapSource
}

// LoadFile reads the options file at path. The format is taken from the
// extension, then guessed from the content.
func LoadFile(path string) (*FileSource, error) {
	return LoadFileFormat(path, "")
}

// LoadFileFormat is LoadFile with an explicit format ("toml", "json",
// "yaml"); an empty format or "auto" detects it.
func LoadFileFormat(path, format string) (*FileSource, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrOptionsFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat options file '%s': %w", path, err)
	}
	if fileInfo.Size() > MaxFileSize {
		return nil, fmt.Errorf("options file '%s' exceeds maximum size %d bytes", path, MaxFileSize)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open options file '%s': %w", path, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxFileSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read options file '%s': %w", path, err)
	}

	if format == "" || format == "auto" {
		format = detectFileFormat(path)
		if format == "" {
			format = detectFormatFromContent(data)
		}
	}

	src, err := ParseFile(data, format)
	if err != nil {
		return nil, fmt.Errorf("options file '%s': %w", path, err)
	}
	src.Path = path
	return src, nil
}

// ParseFile parses options file content in the given format.
func ParseFile(data []byte, format string) (*FileSource, error) {
	raw := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number text
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	flat, err := flattenMap(raw, "")
	if err != nil {
		return nil, err
	}
	values, err := decodeRawValues(flat)
	if err != nil {
		return nil, err
	}
	return &FileSource{Format: format, values: values}, nil
}

func (f *FileSource) Lookup(key string) (*string, bool) {
	if f == nil {
		return nil, false
	}
	return f.values.Lookup(key)
}

func (f *FileSource) Keys() []string {
	if f == nil {
		return nil
	}
	return f.values.Keys()
}

// decodeRawValues normalises parsed file values into raw option strings.
func decodeRawValues(flat map[string]any) (MapSource, error) {
	for key, value := range flat {
		if err := validateOptionKey(key); err != nil {
			return nil, err
		}
		if value == nil {
			continue
		}
		switch reflect.TypeOf(value).Kind() {
		case reflect.Slice, reflect.Array:
			return nil, fmt.Errorf("%w: %s", ErrNestedValue, key)
		}
	}

	values := make(MapSource, len(flat))
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &values,
		WeaklyTypedInput: true,
		DecodeHook:       scalarToStringHookFunc(),
	})
	if err != nil {
		return nil, fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(flat); err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}
	return values, nil
}

// scalarToStringHookFunc renders booleans and numbers the way a user would
// type them, and rejects lists.
func scalarToStringHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if t.Kind() != reflect.String {
			return data, nil
		}

		switch f.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return nil, fmt.Errorf("%w: got %s", ErrNestedValue, f.Kind())
		case reflect.Bool,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return fmt.Sprintf("%v", data), nil
		}
		return data, nil
	}
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest map[string]any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	// TOML before YAML: most "key = value" lines are not valid YAML maps anyway
	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	return ""
}
