package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrm2dfdl/internal/dfdl"
	"mrm2dfdl/internal/msgset"
	"mrm2dfdl/internal/typemap"
)

var pinned = time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)

func sampleModel(t *testing.T) *dfdl.Node {
	t.Helper()

	set := &msgset.Group{
		Name: "Accounts",
		Children: []msgset.Node{
			&msgset.Field{
				Name:         "AccountId",
				DeclaredType: "CHAR10",
				MinOccurs:    msgset.OccursOf("1"),
				MaxOccurs:    msgset.OccursOf("1"),
			},
		},
	}

	table := typemap.NewTable(map[string]string{"CHAR10": "xsd:string"})

	model, err := dfdl.Assemble(set, table, dfdl.Context{
		ModelName:             "example_model",
		TargetNamespace:       "http://www.example.com/dfdl",
		FieldNamingConvention: "camelCase",
		MaxOccursUnbounded:    1000,
		SourcePath:            "in/accounts.mxsd",
		GeneratedAt:           pinned,
	})
	require.NoError(t, err)

	return model
}

func TestBytes(t *testing.T) {
	data, err := Bytes(sampleModel(t))
	require.NoError(t, err)

	out := string(data)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `<dfdl:model xmlns:dfdl="http://www.ogf.org/dfdl/dfdl-1.0/" xmlns:xsd="http://www.w3.org/2001/XMLSchema" name="example_model" targetNamespace="http://www.example.com/dfdl">`)
	assert.Contains(t, out, `  <dfdl:property name="output.textPadCharacter" value=" "/>`)
	assert.Contains(t, out, `<dfdl:element name="AccountId" type="xsd:string" minOccurs="1" maxOccurs="1">`)
	assert.Contains(t, out, `<xsd:documentation>generated</xsd:documentation>`)

	// Source fragments are escaped text
	assert.Contains(t, out, `&lt;xs:element name=`)
}

func TestBytesIsStable(t *testing.T) {
	first, err := Bytes(sampleModel(t))
	require.NoError(t, err)

	second, err := Bytes(sampleModel(t))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestAttrOrder(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]string
		want  []string
	}{
		{"empty", nil, []string{}},
		{
			"leading first",
			map[string]string{"maxOccurs": "1", "type": "t", "name": "n", "minOccurs": "0"},
			[]string{"name", "type", "minOccurs", "maxOccurs"},
		},
		{
			"rest sorted",
			map[string]string{"xmlns:ex": "u", "name": "n", "source": "s", "value": "v"},
			[]string{"name", "source", "value", "xmlns:ex"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, attrOrder(tt.attrs))
		})
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.xsd")

	require.NoError(t, WriteFile(sampleModel(t), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	expected, err := Bytes(sampleModel(t))
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(data))

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestProvenance(t *testing.T) {
	data, err := Bytes(sampleModel(t))
	require.NoError(t, err)

	prov, err := Provenance(data)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		dfdl.LabelToolVersion: dfdl.ToolMarker(),
		dfdl.LabelSourceFile:  "in/accounts.mxsd",
		dfdl.LabelGenerated:   "2024-03-09 14:05:07",
	}, prov)

	ts, err := GeneratedAt(data)
	require.NoError(t, err)
	assert.True(t, ts.Equal(pinned))
}

func TestGeneratedAtErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"not xml", "<<", "failed to parse DFDL document"},
		{"empty", "", "no root element"},
		{"no annotation", `<dfdl:model xmlns:dfdl="u"/>`, `no "generated" annotation`},
		{
			"bad timestamp",
			`<m><xsd:annotation><xsd:documentation>generated</xsd:documentation><xsd:appinfo>yesterday</xsd:appinfo></xsd:annotation></m>`,
			`invalid generation timestamp "yesterday"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GeneratedAt([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
