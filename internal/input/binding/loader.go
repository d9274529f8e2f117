package binding

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/remap/internal/input/code"
)

// Format identifies a bindings file encoding.
type Format uint8

const (
	// FormatUnknown indicates an unrecognized encoding.
	FormatUnknown Format = iota
	// FormatJSON indicates JSON encoding.
	FormatJSON
	// FormatTOML indicates TOML encoding.
	FormatTOML
	// FormatYAML indicates YAML encoding.
	FormatYAML
)

// FormatForPath returns the format implied by a file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// tableConfig is the on-disk structure for bindings files.
type tableConfig struct {
	Name     string          `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Source   string          `json:"source,omitempty" toml:"source,omitempty" yaml:"source,omitempty"`
	Bindings []bindingConfig `json:"bindings" toml:"bindings" yaml:"bindings"`
}

type bindingConfig struct {
	Code        string `json:"code" toml:"code" yaml:"code"`
	Action      string `json:"action" toml:"action" yaml:"action"`
	Description string `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
}

// Loader loads binding tables from configuration files.
type Loader struct{}

// NewLoader creates a bindings file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFile loads bindings from a file, picking the decoder by extension.
func (l *Loader) LoadFile(path string) (map[code.Code]string, error) {
	format := FormatForPath(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bindings file: %w", err)
	}

	return l.LoadBytes(data, format)
}

// LoadReader loads bindings from a reader in the given format.
func (l *Loader) LoadReader(r io.Reader, format Format) (map[code.Code]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading bindings: %w", err)
	}
	return l.LoadBytes(data, format)
}

// LoadBytes decodes binding data in the given format.
func (l *Loader) LoadBytes(data []byte, format Format) (map[code.Code]string, error) {
	var config tableConfig

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("decoding bindings: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("decoding bindings: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("decoding bindings: %w", err)
		}
	default:
		return nil, ErrUnsupportedFormat
	}

	entries := make(map[code.Code]string, len(config.Bindings))
	for i, bc := range config.Bindings {
		if bc.Action == "" {
			return nil, fmt.Errorf("%w: binding %d (%s)", ErrEmptyAction, i, bc.Code)
		}
		c, err := code.Parse(bc.Code)
		if err != nil {
			return nil, fmt.Errorf("%w: binding %d: %v", ErrInvalidCode, i, err)
		}
		entries[c] = bc.Action
	}

	return entries, nil
}

// LoadInto loads a bindings file and replaces the table contents with it.
// Validation against the table's action set happens before the swap, so a
// bad file leaves the table untouched.
func (l *Loader) LoadInto(path string, table *Table) error {
	entries, err := l.LoadFile(path)
	if err != nil {
		return err
	}
	return table.ReplaceAll(entries)
}

// SaveFile writes a table's bindings to a JSON file.
// This is the persistence half of user-configured rebinding.
func SaveFile(path string, table *Table) error {
	entries := table.Entries()

	config := tableConfig{
		Source:   "user",
		Bindings: make([]bindingConfig, 0, len(entries)),
	}
	for c, name := range entries {
		config.Bindings = append(config.Bindings, bindingConfig{
			Code:   c.String(),
			Action: name,
		})
	}
	// Stable output for diffable user config.
	sort.Slice(config.Bindings, func(i, j int) bool {
		return config.Bindings[i].Code < config.Bindings[j].Code
	})

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling bindings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing bindings file: %w", err)
	}
	return nil
}
