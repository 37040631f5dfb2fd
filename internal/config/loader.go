package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"mrm2dfdl/internal/typemap"
)

// EnvPrefix prefixes environment variables read as configuration.
const EnvPrefix = "MRM2DFDL_"

// configNames are the config files looked up in the working directory.
var configNames = []string{"mrm2dfdl.yaml", "mrm2dfdl.yml"}

// flagKeys maps flag names that differ from their config key.
var flagKeys = map[string]string{
	"schema-name":   "model_name",
	"prefix":        "namespace_prefix",
	"type-override": "data_type_override",
}

// findConfigFile finds the config file to use.
// Priority: explicit path > mrm2dfdl.yaml > mrm2dfdl.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}

	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	return ""
}

func defaults() map[string]any {
	d := Default()

	return map[string]any{
		"model_name":              d.ModelName,
		"target_namespace":        d.TargetNamespace,
		"field_naming_convention": d.FieldNamingConvention,
		"max_occurs_unbounded":    d.MaxOccursUnbounded,
		"data_type_override":      "",
		"complex_type_name":       "",
		"root_element_name":       "",
		"namespace_prefix":        d.NamespacePrefix,
		"type_map":                "",
		"timestamp":               "",
		"jobs":                    d.Jobs,
		"verbose":                 false,
	}
}

// Load loads configuration from defaults, the config file, environment
// variables and flags, then validates it and reads the type mapping file.
// flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	known := defaults()

	// 1. Defaults
	if err := k.Load(confmap.Provider(known, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	fileUsed := findConfigFile(cfgFile)
	fileK := koanf.New(".")

	if fileUsed != "" {
		if err := fileK.Load(file.Provider(fileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", fileUsed, err)
		}

		if err := k.Merge(fileK); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", fileUsed, err)
		}
	}

	// 3. Environment, MRM2DFDL_MODEL_NAME -> model_name
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Explicitly set flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}

			key, ok := flagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", "_")
			}

			if _, ok := known[key]; !ok {
				return "", nil
			}

			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.fileUsed = fileUsed

	// A type map named in the config file is relative to that file.
	if fileUsed != "" && cfg.TypeMap != "" && cfg.TypeMap == fileK.String("type_map") {
		cfg.TypeMap = resolvePathRelativeTo(cfg.TypeMap, filepath.Dir(fileUsed))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.TypeMap != "" {
		mf, err := typemap.LoadFile(cfg.TypeMap)
		if err != nil {
			return nil, err
		}

		cfg.mapping = mf
	}

	return cfg, nil
}

// resolvePathRelativeTo resolves a path relative to baseDir if it's not absolute.
func resolvePathRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(baseDir, path)
}
