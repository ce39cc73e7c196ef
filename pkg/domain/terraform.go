package domain

// TerraformConfig is the normalized shape shared by the native HCL
// scanner and the JSON/YAML adapter, so the Terraform generator renders
// both encodings identically.
type TerraformConfig struct {
	Providers   []TerraformProvider
	Resources   []TerraformResource
	DataSources []TerraformDataSource
	Variables   []TerraformVariable
}

// Empty reports whether the configuration declares nothing renderable.
func (c *TerraformConfig) Empty() bool {
	return c == nil ||
		len(c.Providers)+len(c.Resources)+len(c.DataSources)+len(c.Variables) == 0
}

// TerraformProvider is a provider declaration. Only the name is kept;
// provider bodies carry credentials and regions the diagram never shows.
type TerraformProvider struct {
	Name string
}

// TerraformResource is a single resource block.
type TerraformResource struct {
	Type string
	Name string

	// Attributes holds top-level quoted scalar assignments.
	Attributes map[string]string

	// Refs holds top-level bare expressions that look like references
	// (contain a dot), keyed by attribute name.
	Refs map[string]string

	// Tags holds the flattened tags block, when present.
	Tags map[string]string

	// DependsOn lists explicit depends_on addresses, source order.
	DependsOn []string
}

// Address returns the canonical resource address, e.g. "aws_vpc.main".
func (r TerraformResource) Address() string {
	return r.Type + "." + r.Name
}

// TerraformDataSource is a data block, addressed as "data.TYPE.NAME".
type TerraformDataSource struct {
	Type string
	Name string
}

// Address returns the canonical data source address.
func (d TerraformDataSource) Address() string {
	return "data." + d.Type + "." + d.Name
}

// TerraformVariable is a variable block. Body keeps the raw block text;
// consumers extract the attributes they care about from it.
type TerraformVariable struct {
	Name string
	Body string
}
