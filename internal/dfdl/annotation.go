package dfdl

import (
	"mrm2dfdl/internal/msgset"
)

// AnnotationSource identifies the annotation vocabulary on appinfo nodes.
const AnnotationSource = "http://www.ibm.com/dfdl/annotation"

// Provenance labels.
const (
	LabelSourceElement = "source element"
	LabelToolVersion   = "tool version"
	LabelSourceFile    = "source file"
	LabelGenerated     = "generated"
)

// Annotation builds an annotation holding label as documentation and value
// as appinfo character data.
//
//	<xsd:annotation>
//	  <xsd:documentation>label</xsd:documentation>
//	  <xsd:appinfo source="http://www.ibm.com/dfdl/annotation">value</xsd:appinfo>
//	</xsd:annotation>
func Annotation(label, value string) *Node {
	doc := NewNode(PrefixXSD, TagDocumentation)
	doc.Text = label

	info := NewNode(PrefixXSD, TagAppInfo).SetAttr("source", AnnotationSource)
	info.Text = value

	ann := NewNode(PrefixXSD, TagAnnotation)
	ann.Append(doc, info)

	return ann
}

// SourceAnnotation embeds n as canonical XML text. The text is opaque
// provenance and is never parsed back into structure.
func SourceAnnotation(label string, n msgset.Node) *Node {
	return Annotation(label, msgset.Marshal(n))
}

// AnnotationParts returns the label and value of an annotation node built
// by Annotation.
func AnnotationParts(ann *Node) (label, value string, ok bool) {
	if ann == nil || ann.Tag != TagAnnotation || len(ann.Children) != 2 {
		return "", "", false
	}

	doc, info := ann.Children[0], ann.Children[1]
	if doc.Tag != TagDocumentation || info.Tag != TagAppInfo {
		return "", "", false
	}

	return doc.Text, info.Text, true
}
