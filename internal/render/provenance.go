package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/beevik/etree"

	"mrm2dfdl/internal/dfdl"
)

// Provenance reads the top-level provenance annotations of a rendered
// document, keyed by label.
func Provenance(data []byte) (map[string]string, error) {
	doc := etree.NewDocument()

	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse DFDL document: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.New("DFDL document has no root element")
	}

	out := map[string]string{}

	for _, ann := range root.SelectElements(dfdl.TagAnnotation) {
		label := ann.SelectElement(dfdl.TagDocumentation)
		info := ann.SelectElement(dfdl.TagAppInfo)

		if label == nil || info == nil {
			continue
		}

		out[label.Text()] = info.Text()
	}

	return out, nil
}

// GeneratedAt returns the generation timestamp recorded in a rendered
// document.
func GeneratedAt(data []byte) (time.Time, error) {
	prov, err := Provenance(data)
	if err != nil {
		return time.Time{}, err
	}

	raw, ok := prov[dfdl.LabelGenerated]
	if !ok {
		return time.Time{}, fmt.Errorf("DFDL document has no %q annotation", dfdl.LabelGenerated)
	}

	ts, err := time.ParseInLocation(dfdl.TimestampLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid generation timestamp %q: %w", raw, err)
	}

	return ts, nil
}
