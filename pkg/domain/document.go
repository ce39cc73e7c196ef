package domain

// Document is the structural form of one source file after parsing and
// classification. Exactly one of Tree or Terraform is populated for
// native HCL input; JSON and YAML input always populate Tree.
type Document struct {
	// Format is the classified dialect, FormatUnknown when no rule matched.
	Format Format

	// Source is the raw text the document was parsed from.
	Source string

	// Tree is the decoded object for JSON and YAML input. For multi
	// document YAML it aliases the first retained document.
	Tree map[string]any

	// Documents holds every retained (non-null) document of a multi
	// document YAML stream, in source order. It is populated only when
	// MultiDocument is true.
	Documents []map[string]any

	// MultiDocument is true when the source stream decoded into more
	// than one YAML document, null documents included.
	MultiDocument bool

	// StrictJSON is true when the source parsed on the strict JSON
	// fast path rather than through YAML.
	StrictJSON bool

	// Terraform carries the scanned configuration for native HCL
	// sources, or the equivalent shape lifted out of a JSON/YAML tree.
	Terraform *TerraformConfig
}

// Trees returns the documents a generator should walk: all retained
// documents of a multi-document stream, otherwise the single tree.
// The result is empty when the document has no structured content.
func (d *Document) Trees() []map[string]any {
	if d == nil {
		return nil
	}
	if d.MultiDocument {
		return d.Documents
	}
	if d.Tree == nil {
		return nil
	}
	return []map[string]any{d.Tree}
}

// Structured reports whether the document carries anything a validator
// or generator can work with.
func (d *Document) Structured() bool {
	return d != nil && (d.Tree != nil || d.Terraform != nil || len(d.Documents) > 0)
}
