package config

import (
	"runtime"
	"time"

	"mrm2dfdl/internal/dfdl"
	"mrm2dfdl/internal/typemap"
)

// Default configuration values.
const (
	DefaultModelName             = "example_model"
	DefaultTargetNamespace       = "http://www.example.com/dfdl"
	DefaultFieldNamingConvention = "camelCase"
	DefaultMaxOccursUnbounded    = 1000
	DefaultNamespacePrefix       = "ex"
)

// Config holds all conversion settings.
type Config struct {
	ModelName             string `koanf:"model_name"`
	TargetNamespace       string `koanf:"target_namespace"`
	FieldNamingConvention string `koanf:"field_naming_convention"`
	MaxOccursUnbounded    int    `koanf:"max_occurs_unbounded"`
	DataTypeOverride      string `koanf:"data_type_override"`
	ComplexTypeName       string `koanf:"complex_type_name"`
	RootElementName       string `koanf:"root_element_name"`
	NamespacePrefix       string `koanf:"namespace_prefix"`
	TypeMap               string `koanf:"type_map"`
	Timestamp             string `koanf:"timestamp"`
	Jobs                  int    `koanf:"jobs"`
	Verbose               bool   `koanf:"verbose"`

	// mapping is the parsed TypeMap file, if any.
	mapping *typemap.MappingFile
	// fileUsed is the config file that was read, if any.
	fileUsed string
}

// Default returns a Config holding only the built-in defaults.
func Default() *Config {
	return &Config{
		ModelName:             DefaultModelName,
		TargetNamespace:       DefaultTargetNamespace,
		FieldNamingConvention: DefaultFieldNamingConvention,
		MaxOccursUnbounded:    DefaultMaxOccursUnbounded,
		NamespacePrefix:       DefaultNamespacePrefix,
		Jobs:                  runtime.NumCPU(),
	}
}

// FileUsed returns the config file that was loaded, or "".
func (c *Config) FileUsed() string {
	return c.fileUsed
}

// GeneratedAt returns the pinned generation time, or the zero time when the
// timestamp is not pinned.
func (c *Config) GeneratedAt() (time.Time, error) {
	return parseTimestamp(c.Timestamp)
}

// Context builds the conversion context for one source file.
func (c *Config) Context(source string) (dfdl.Context, error) {
	ts, err := c.GeneratedAt()
	if err != nil {
		return dfdl.Context{}, err
	}

	return dfdl.Context{
		ModelName:             c.ModelName,
		TargetNamespace:       c.TargetNamespace,
		FieldNamingConvention: c.FieldNamingConvention,
		MaxOccursUnbounded:    c.MaxOccursUnbounded,
		TypeOverride:          c.Override(),
		ComplexTypeName:       c.ComplexTypeName,
		RootElementName:       c.RootElementName,
		NamespacePrefix:       c.NamespacePrefix,
		SourcePath:            source,
		GeneratedAt:           ts,
	}, nil
}

// Override returns the effective fallback type: the configured one, else
// the one from the type mapping file.
func (c *Config) Override() string {
	if c.DataTypeOverride != "" || c.mapping == nil {
		return c.DataTypeOverride
	}

	return c.mapping.Override
}

// Table returns the effective type table: the built-in defaults with the
// type mapping file applied.
func (c *Config) Table() *typemap.Table {
	if c.mapping == nil {
		return typemap.DefaultTable()
	}

	return c.mapping.Table(typemap.DefaultTable())
}

func parseTimestamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	if ts, err := time.ParseInLocation(dfdl.TimestampLayout, raw, time.Local); err == nil {
		return ts, nil
	}

	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, &TimestampError{Value: raw}
	}

	return ts, nil
}
