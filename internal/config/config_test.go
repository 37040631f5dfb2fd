package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("target-namespace", "t", DefaultTargetNamespace, "")
	fs.StringP("schema-name", "n", DefaultModelName, "")
	fs.StringP("prefix", "p", DefaultNamespacePrefix, "")
	fs.String("type-override", "", "")
	fs.Int("max-occurs-unbounded", DefaultMaxOccursUnbounded, "")
	fs.String("type-map", "", "")
	fs.String("out-dir", "", "")
	fs.BoolP("verbose", "v", false, "")

	return fs
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultModelName, cfg.ModelName)
	assert.Equal(t, DefaultTargetNamespace, cfg.TargetNamespace)
	assert.Equal(t, DefaultFieldNamingConvention, cfg.FieldNamingConvention)
	assert.Equal(t, DefaultMaxOccursUnbounded, cfg.MaxOccursUnbounded)
	assert.Equal(t, DefaultNamespacePrefix, cfg.NamespacePrefix)
	assert.Positive(t, cfg.Jobs)
	assert.Empty(t, cfg.FileUsed())
	assert.Empty(t, cfg.Override())
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, filepath.Join(dir, "mrm2dfdl.yaml"), `
model_name: from_file
target_namespace: http://file.example/ns
max_occurs_unbounded: 50
complex_type_name: FileType
`)

	t.Setenv("MRM2DFDL_TARGET_NAMESPACE", "http://env.example/ns")
	t.Setenv("MRM2DFDL_MAX_OCCURS_UNBOUNDED", "75")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"-n", "from_flag", "--out-dir", "ignored"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)

	assert.Equal(t, "mrm2dfdl.yaml", cfg.FileUsed())
	assert.Equal(t, "from_flag", cfg.ModelName)
	assert.Equal(t, "http://env.example/ns", cfg.TargetNamespace)
	assert.Equal(t, 75, cfg.MaxOccursUnbounded)
	assert.Equal(t, "FileType", cfg.ComplexTypeName)

	// Unset flags keep lower layers
	assert.Equal(t, DefaultNamespacePrefix, cfg.NamespacePrefix)
}

func TestLoadFlagKeyMapping(t *testing.T) {
	t.Chdir(t.TempDir())

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"-p", "", "--type-override", "xsd:string", "-v"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)

	assert.Empty(t, cfg.NamespacePrefix)
	assert.Equal(t, "xsd:string", cfg.DataTypeOverride)
	assert.True(t, cfg.Verbose)
}

func TestLoadExplicitConfigAndTypeMap(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir())

	writeFile(t, filepath.Join(dir, "types.yaml"), `
version: "1"
override: xsd:anyType
types:
  MONEY: xsd:decimal
`)
	writeFile(t, filepath.Join(dir, "custom.yml"), "type_map: types.yaml\n")

	cfg, err := Load(filepath.Join(dir, "custom.yml"), nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "types.yaml"), cfg.TypeMap)

	target, ok := cfg.Table().Lookup("MONEY")
	require.True(t, ok)
	assert.Equal(t, "xsd:decimal", target)

	// Built-ins are still present
	_, ok = cfg.Table().Lookup("CHAR10")
	assert.True(t, ok)

	// The file override applies when none is configured
	assert.Equal(t, "xsd:anyType", cfg.Override())

	cfg.DataTypeOverride = "xsd:string"
	assert.Equal(t, "xsd:string", cfg.Override())
}

func TestLoadErrors(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("missing config file", func(t *testing.T) {
		_, err := Load("nope.yaml", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file nope.yaml")
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("MRM2DFDL_MAX_OCCURS_UNBOUNDED", "0")

		_, err := Load("", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_occurs_unbounded must be positive")
	})

	t.Run("missing type map", func(t *testing.T) {
		t.Setenv("MRM2DFDL_TYPE_MAP", "missing.yaml")

		_, err := Load("", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   []string
	}{
		{"defaults", func(*Config) {}, nil},
		{"empty model name", func(c *Config) { c.ModelName = "" }, []string{"model_name is required"}},
		{"empty namespace", func(c *Config) { c.TargetNamespace = "" }, []string{"target_namespace is required"}},
		{"negative jobs", func(c *Config) { c.Jobs = -1 }, []string{"jobs must be positive, got -1"}},
		{"bad timestamp", func(c *Config) { c.Timestamp = "today" }, []string{`invalid timestamp "today"`}},
		{
			"several",
			func(c *Config) {
				c.ModelName = ""
				c.MaxOccursUnbounded = 0
			},
			[]string{"model_name is required", "max_occurs_unbounded must be positive, got 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)

			for _, want := range tt.want {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestContext(t *testing.T) {
	cfg := Default()
	cfg.ComplexTypeName = "T"
	cfg.RootElementName = "Root"
	cfg.DataTypeOverride = "xsd:string"
	cfg.Timestamp = "2024-03-09 14:05:07"

	ctx, err := cfg.Context("in/a.mxsd")
	require.NoError(t, err)

	assert.Equal(t, DefaultModelName, ctx.ModelName)
	assert.Equal(t, DefaultNamespacePrefix, ctx.NamespacePrefix)
	assert.Equal(t, "xsd:string", ctx.TypeOverride)
	assert.Equal(t, "T", ctx.ComplexTypeName)
	assert.Equal(t, "Root", ctx.RootElementName)
	assert.Equal(t, "in/a.mxsd", ctx.SourcePath)
	assert.True(t, ctx.GeneratedAt.Equal(time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)))
}

func TestGeneratedAt(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{"unset", "", time.Time{}, false},
		{"layout", "2024-03-09 14:05:07", time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local), false},
		{"rfc3339", "2024-03-09T14:05:07Z", time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC), false},
		{"garbage", "09/03/2024", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Timestamp = tt.raw

			got, err := cfg.GeneratedAt()
			if tt.wantErr {
				var tsErr *TimestampError
				require.ErrorAs(t, err, &tsErr)
				assert.Equal(t, tt.raw, tsErr.Value)

				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()

	assert.NotNil(t, GetLogger(ctx))
	assert.Equal(t, Default(), FromContext(ctx))

	var buf bytes.Buffer

	logger := NewLogger(&buf, true)
	cfg := Default()
	cfg.ModelName = "stored"

	ctx = WithConfig(WithLogger(ctx, logger), cfg)

	assert.Same(t, logger, GetLogger(ctx))
	assert.Same(t, cfg, FromContext(ctx))

	GetLogger(ctx).Debug("hello", "k", "v")
	assert.Contains(t, buf.String(), "level=DEBUG msg=hello k=v")
}
