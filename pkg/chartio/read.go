package chartio

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/crayonviz/crayon/pkg/errors"
)

// Spec file encodings.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FormatFromPath derives the spec encoding from a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"cannot tell the spec format of %q (use .toml, .json, .yaml or .yml)", path)
	}
}

// Read decodes a chart spec from r using the given encoding.
//
// Read returns an error if:
//   - The format is not one of toml, json, or yaml
//   - The document is malformed for its encoding
//   - The chart kind is missing or unknown
//
// The returned spec is independent of r. Read does not close r.
func Read(r io.Reader, format string) (*Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read spec")
	}

	var s Spec
	switch strings.ToLower(format) {
	case FormatTOML:
		if err := toml.Unmarshal(data, &s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "parse TOML spec")
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "parse JSON spec")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "parse YAML spec")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"unknown spec format %q (valid: toml, json, yaml)", format)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ReadFile loads a chart spec from path, picking the encoding by extension.
func ReadFile(path string) (*Spec, error) {
	if err := errors.ValidateSpecPath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "spec file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	return Read(f, format)
}
