// Package classify labels parsed documents with their
// infrastructure-as-code dialect. Classification is an ordered cascade
// of cheap structural checks; the first match wins and nothing here
// validates semantics.
package classify

import (
	"encoding/json"
	"strings"

	"github.com/flori950/Architecture-as-Code-Visualizer/internal/hclscan"
	"github.com/flori950/Architecture-as-Code-Visualizer/internal/parser"
	"github.com/flori950/Architecture-as-Code-Visualizer/internal/tree"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
)

// armSchemaMarker appears in the $schema URL of every ARM deployment
// template.
const armSchemaMarker = "deploymentTemplate.json"

// ibmTypeMarker is the resource-type prefix shared by IBM Cloud
// provider types (ibm_is_vpc, ibm_container_cluster, ...).
const ibmTypeMarker = "ibm_"

// Detect classifies raw text. It never returns an error: anything that
// cannot be parsed or matched comes back as FormatUnknown.
func Detect(text string) domain.Format {
	if hclscan.IsHCL(text) {
		return domain.FormatTerraform
	}
	doc, err := parser.Parse(text)
	if err != nil {
		return domain.FormatUnknown
	}
	return Document(doc)
}

// Document classifies an already parsed document. The cascade order is
// load-bearing: ARM and CloudFormation carry overlapping key shapes, so
// the more specific checks run first.
func Document(doc *domain.Document) domain.Format {
	if doc == nil {
		return domain.FormatUnknown
	}
	if doc.Terraform != nil {
		return domain.FormatTerraform
	}
	t := doc.Tree
	if t == nil {
		return domain.FormatUnknown
	}

	// Azure ARM: schema URL marker, and the source must have been
	// strict JSON. ARM templates are JSON by definition; a YAML file
	// with the same keys is something else pretending.
	if schema := tree.GetString(t, "$schema"); schema != "" &&
		strings.Contains(schema, armSchemaMarker) && doc.StrictJSON {
		return domain.FormatAzureARM
	}

	if tree.Has(t, "AWSTemplateFormatVersion") || tree.Has(t, "Resources") {
		return domain.FormatCloudFormation
	}

	if tree.Has(t, "apiVersion") && tree.Has(t, "kind") {
		return domain.FormatKubernetes
	}

	if tree.Has(t, "version") && tree.Has(t, "services") {
		return domain.FormatDockerCompose
	}

	if tree.Has(t, "terraform") || tree.Has(t, "provider") || tree.Has(t, "resource") {
		return domain.FormatTerraform
	}

	// IBM Cloud configs have no reserved top-level key; fall back to
	// looking for the provider's type prefix anywhere in the tree.
	if serialized, err := json.Marshal(t); err == nil &&
		strings.Contains(string(serialized), ibmTypeMarker) {
		return domain.FormatIBMCloud
	}

	return domain.FormatUnknown
}
