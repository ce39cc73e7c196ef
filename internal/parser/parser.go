// Package parser turns raw document text into the generic tree form the
// rest of the pipeline works on.
package parser

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/flori950/Architecture-as-Code-Visualizer/internal/hclscan"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
)

// Parse decodes text into a Document. Route selection is purely
// syntactic: native HCL goes through the block scanner, everything else
// tries strict JSON first and falls back to multi-document YAML. JSON
// is a YAML subset, so the fast path only changes which decoder reports
// the error and lets classification see that the input was strict JSON.
func Parse(text string) (*domain.Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyDocument
	}

	if hclscan.IsHCL(text) {
		return &domain.Document{
			Format:    domain.FormatTerraform,
			Source:    text,
			Terraform: hclscan.Scan(text),
		}, nil
	}

	if doc, ok := parseJSON(text); ok {
		return doc, nil
	}
	return parseYAML(text)
}

func parseJSON(text string) (*domain.Document, bool) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, false
	}
	doc := &domain.Document{Source: text, StrictJSON: true}
	// Arrays and scalars are valid JSON but carry no named structure;
	// they stay treeless and classify to unknown downstream.
	if m, ok := v.(map[string]any); ok {
		doc.Tree = m
	}
	return doc, true
}

func parseYAML(text string) (*domain.Document, error) {
	dec := yaml.NewDecoder(strings.NewReader(text))
	doc := &domain.Document{Source: text}

	decoded := 0
	for {
		var raw any
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &domain.ParseError{Msg: err.Error()}
		}
		decoded++
		if raw == nil {
			// Null documents (stray separators, comment-only
			// sections) are dropped entirely.
			continue
		}
		m, ok := raw.(map[string]any)
		if !ok {
			// Scalar or sequence documents keep their slot so
			// multi-document indices stay aligned, but carry no
			// fields.
			m = map[string]any{}
		}
		doc.Documents = append(doc.Documents, m)
	}

	doc.MultiDocument = decoded > 1
	if len(doc.Documents) > 0 {
		doc.Tree = doc.Documents[0]
	}
	if !doc.MultiDocument {
		doc.Documents = nil
	}
	return doc, nil
}
