// Package config loads graph definition files.
//
// A definition is YAML or JSON (chosen by file extension) with the shape:
//
//	nodes: 3
//	directed: false
//	start: 1
//	edges:
//	  - {from: 1, to: 2, weight: 4}
//	  - {from: 2, to: 3, weight: 1}
//
// Files are parsed into a generic map first and then decoded into a
// Definition with mapstructure, so both encodings share one set of
// field tags and one set of type coercions.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dijkstep/core"
)

// ErrInvalidDefinition indicates a structurally invalid definition file.
var ErrInvalidDefinition = errors.New("config: invalid definition")

// Definition describes a graph and the node a run starts from.
type Definition struct {
	Nodes    int         `json:"nodes" yaml:"nodes" mapstructure:"nodes"`
	Directed bool        `json:"directed" yaml:"directed" mapstructure:"directed"`
	Start    int         `json:"start" yaml:"start" mapstructure:"start"`
	Edges    []core.Edge `json:"edges" yaml:"edges" mapstructure:"edges"`
}

// Load reads a definition file (YAML or JSON).
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("failed to read definition: %w", err)
	}

	format := "yaml"
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		format = "json"
	}
	return Parse(data, format)
}

// Parse decodes data in the given format ("yaml" or "json").
// A missing start defaults to node 1.
func Parse(data []byte, format string) (Definition, error) {
	raw := map[string]any{}
	switch format {
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return Definition{}, fmt.Errorf("failed to parse json definition: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Definition{}, fmt.Errorf("failed to parse yaml definition: %w", err)
		}
	}

	var def Definition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &def,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Definition{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Definition{}, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}

	if def.Start == 0 {
		def.Start = 1
	}
	if def.Nodes < 0 {
		return Definition{}, fmt.Errorf("%w: nodes=%d must be ≥ 0", ErrInvalidDefinition, def.Nodes)
	}

	return def, nil
}

// Save writes def to path, YAML unless the extension is .json.
func Save(path string, def Definition) error {
	var (
		data []byte
		err  error
	)
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		data, err = json.MarshalIndent(def, "", "  ")
	} else {
		data, err = yaml.Marshal(def)
	}
	if err != nil {
		return fmt.Errorf("failed to encode definition: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write definition: %w", err)
	}
	return nil
}
