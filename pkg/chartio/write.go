package chartio

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/crayonviz/crayon/pkg/errors"
)

// Write encodes a chart spec to w using the given encoding. The output can
// be read back with [Read] for round-trip processing.
func Write(s *Spec, w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(s); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode TOML spec")
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode JSON spec")
		}
		return nil
	case FormatYAML:
		data, err := yaml.Marshal(s)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode YAML spec")
		}
		if _, err := w.Write(data); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write YAML spec")
		}
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidFormat,
			"unknown spec format %q (valid: toml, json, yaml)", format)
	}
}

// WriteFile saves a chart spec to path, picking the encoding by extension.
func WriteFile(s *Spec, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()

	return Write(s, f, format)
}
