package arch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	apperrors "github.com/matzehuels/archviz/pkg/errors"
)

// Supported config file encodings.
const (
	EncodingJSON = "json"
	EncodingYAML = "yaml"
	EncodingTOML = "toml"
)

// EncodingFor picks a decoder from the file extension. Anything that is not
// YAML or TOML is treated as JSON.
func EncodingFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return EncodingYAML
	case ".toml":
		return EncodingTOML
	default:
		return EncodingJSON
	}
}

// ReadJSON decodes a JSON architecture config from r. The input must hold
// exactly one JSON value; trailing data is an error.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Config, error) {
	var cfg Config
	dec := json.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "decode JSON")
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected data at offset %d", dec.InputOffset())
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "decode JSON: extra data after config")
	}
	return &cfg, nil
}

// ReadYAML decodes a YAML architecture config from r. The document is
// converted to JSON first so mapping order survives into [Metadata].
func ReadYAML(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read YAML")
	}
	js, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "decode YAML")
	}
	return ReadJSON(bytes.NewReader(js))
}

// ReadTOML decodes a TOML architecture config from r. Metadata order is
// recovered from the decoder's key list since TOML tables decode into maps.
func ReadTOML(r io.Reader) (*Config, error) {
	var doc map[string]any
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "decode TOML")
	}

	js, err := json.Marshal(doc)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "convert TOML")
	}
	cfg, err := ReadJSON(bytes.NewReader(js))
	if err != nil {
		return nil, err
	}

	var order []string
	for _, k := range md.Keys() {
		if len(k) == 2 && k[0] == "metadata" {
			order = append(order, k[1])
		}
	}
	if cfg.Metadata != nil {
		cfg.Metadata = cfg.Metadata.reorder(order)
	}
	return cfg, nil
}

// Read decodes a config from r using the given encoding.
func Read(r io.Reader, encoding string) (*Config, error) {
	switch encoding {
	case EncodingYAML:
		return ReadYAML(r)
	case EncodingTOML:
		return ReadTOML(r)
	case EncodingJSON, "":
		return ReadJSON(r)
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidFormat, "unknown config encoding: %s", encoding)
	}
}

// Load reads the config file at path, choosing the decoder by extension.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	cfg, err := Read(f, EncodingFor(path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}
