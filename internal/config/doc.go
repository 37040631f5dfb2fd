// Package config loads mrm2dfdl settings.
//
// Values are layered, lowest precedence first: built-in defaults, a YAML
// config file (--config, or mrm2dfdl.yaml / mrm2dfdl.yml in the working
// directory), MRM2DFDL_* environment variables, and command-line flags that
// were set explicitly. Flag names are kebab-case versions of the config keys,
// except --schema-name, --prefix and --type-override which map to
// model_name, namespace_prefix and data_type_override.
package config
