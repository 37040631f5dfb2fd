package typemap

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File permission for exported mapping files.
const filePerm = 0o644

// MappingFile is the on-disk form of a type table.
type MappingFile struct {
	Version  string            `yaml:"version"`
	Replace  bool              `yaml:"replace,omitempty"`
	Override string            `yaml:"override,omitempty"`
	Types    map[string]string `yaml:"types"`
}

// LoadFile loads and parses a YAML mapping file from the given path.
func LoadFile(path string) (*MappingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read type mapping file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a MappingFile.
func Parse(data []byte) (*MappingFile, error) {
	var mf MappingFile

	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse type mapping YAML: %w", err)
	}

	applyDefaults(&mf)

	if err := validate(&mf); err != nil {
		return nil, err
	}

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *MappingFile) {
	if mf.Version == "" {
		mf.Version = "1"
	}

	if mf.Types == nil {
		mf.Types = map[string]string{}
	}
}

func validate(mf *MappingFile) error {
	if mf.Version != "1" {
		return fmt.Errorf("unsupported type mapping version %q", mf.Version)
	}

	for src, dst := range mf.Types {
		if src == "" {
			return errors.New("type mapping has an empty source type")
		}

		if dst == "" {
			return fmt.Errorf("type mapping for %q has an empty target type", src)
		}
	}

	return nil
}

// Table layers the file's entries over base, or replaces base entirely when
// the file says so.
func (mf *MappingFile) Table(base *Table) *Table {
	own := NewTable(mf.Types)
	if mf.Replace {
		return own
	}

	return base.Merge(own)
}

// FromTable builds a MappingFile holding every entry of t.
func FromTable(t *Table, override string) *MappingFile {
	return &MappingFile{
		Version:  "1",
		Replace:  true,
		Override: override,
		Types:    t.Map(),
	}
}

// Marshal serializes a MappingFile to YAML.
func Marshal(mf *MappingFile) ([]byte, error) {
	return yaml.Marshal(mf)
}

// WriteFile writes a MappingFile to the given path.
func WriteFile(mf *MappingFile, path string) error {
	data, err := Marshal(mf)
	if err != nil {
		return fmt.Errorf("failed to marshal type mapping: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write type mapping file %s: %w", path, err)
	}

	return nil
}
