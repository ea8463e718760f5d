package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lerenn/workon/configs"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// format binds a config file extension to its decoder and template.
type format struct {
	name     string
	decode   func(data []byte, cfg *Config) error
	template []byte
}

var formats = map[string]format{
	".yaml": {name: "yaml", decode: decodeYAML, template: configs.DefaultConfigYAML},
	".yml":  {name: "yaml", decode: decodeYAML, template: configs.DefaultConfigYAML},
	".json": {name: "json", decode: decodeJSON, template: configs.DefaultConfigJSON},
	// JSON with comments and trailing commas, as written by hand.
	".jsonc": {name: "json", decode: decodeJSON, template: configs.DefaultConfigJSON},
	".toml":  {name: "toml", decode: decodeTOML, template: configs.DefaultConfigTOML},
}

// formatFor returns the format handling the config file at path.
func formatFor(path string) (format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := formats[ext]
	if !ok {
		return format{}, fmt.Errorf("%w: %q (%s)", ErrUnsupportedConfigType, ext, path)
	}
	return f, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		return fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}
	return nil
}

func decodeJSON(data []byte, cfg *Config) error {
	if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf("%w: %q should be of %s type", ErrInvalidConfig, typeErr.Field, jsonKind(typeErr))
		}
		return fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}
	return nil
}

// decodeTOML parses the document untyped first so that only the typed pass
// reports type mismatches.
func decodeTOML(data []byte, cfg *Config) error {
	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// jsonKind names the JSON type expected by the destination field.
func jsonKind(err *json.UnmarshalTypeError) string {
	t := err.Type
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Bool:
		return "boolean"
	default:
		return t.Kind().String()
	}
}
