package dfdl

import (
	"strconv"

	"mrm2dfdl/internal/msgset"
	"mrm2dfdl/internal/typemap"
)

// Tool identity recorded in the version annotation.
const (
	ToolName    = "mrm2dfdl"
	ToolVersion = "0.1.0"
)

// TimestampLayout formats the generation timestamp annotation.
const TimestampLayout = "2006-01-02 15:04:05"

// Global property names.
const (
	PropMaxOccursUnbounded    = "parser.maxOccursUnbounded"
	PropFieldNamingConvention = "parser.fieldNamingConvention"
	PropTextEncoding          = "output.textOutputCharacterEncoding"
	PropCheckConstraints      = "output.checkConstraints"
	PropEscaping              = "output.escaping"
	PropTextPadCharacter      = "output.textPadCharacter"
)

// ToolMarker is the fixed value of the tool version annotation.
func ToolMarker() string {
	return ToolName + " " + ToolVersion
}

// Property builds a global property node.
func Property(name, value string) *Node {
	return NewNode(PrefixDFDL, TagProperty).
		SetAttr("name", name).
		SetAttr("value", value)
}

// Assemble builds the complete DFDL document for the message set rooted at
// root. It returns no tree when any field fails to resolve.
func Assemble(root msgset.Node, table *typemap.Table, ctx Context) (*Node, error) {
	model := NewNode(PrefixDFDL, TagModel).
		SetAttr("name", ctx.ModelName).
		SetAttr("targetNamespace", ctx.TargetNamespace)

	// The output.* properties are fixed.
	model.Append(
		Property(PropMaxOccursUnbounded, strconv.Itoa(ctx.MaxOccursUnbounded)),
		Property(PropFieldNamingConvention, ctx.FieldNamingConvention),
		Property(PropTextEncoding, "UTF-8"),
		Property(PropCheckConstraints, "true"),
		Property(PropEscaping, "true"),
		Property(PropTextPadCharacter, " "),
	)

	model.Append(
		Annotation(LabelToolVersion, ToolMarker()),
		Annotation(LabelSourceFile, ctx.SourcePath),
		Annotation(LabelGenerated, ctx.GeneratedAt.Format(TimestampLayout)),
	)

	if err := NewConverter(table, ctx).ConvertRoot(root, model); err != nil {
		return nil, err
	}

	return model, nil
}
