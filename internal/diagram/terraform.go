package diagram

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/flori950/Architecture-as-Code-Visualizer/internal/tree"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/mermaid"
)

// typeCallouts lists the attributes worth surfacing for well-known
// resource types. Types without an exact entry fall back to the
// provider-prefix list below.
var typeCallouts = map[string][]string{
	"aws_instance":            {"instance_type", "ami"},
	"aws_db_instance":         {"engine", "instance_class", "allocated_storage"},
	"aws_s3_bucket":           {"bucket"},
	"aws_lambda_function":     {"runtime", "handler"},
	"aws_vpc":                 {"cidr_block"},
	"aws_subnet":              {"cidr_block", "availability_zone"},
	"aws_elasticache_cluster": {"engine", "node_type"},

	"azurerm_virtual_machine":       {"vm_size", "location"},
	"azurerm_linux_virtual_machine": {"size", "location"},
	"azurerm_storage_account":       {"account_tier", "location"},

	"google_compute_instance":      {"machine_type", "zone"},
	"google_sql_database_instance": {"database_version", "region"},
	"google_storage_bucket":        {"location"},
}

var prefixCallouts = []struct {
	prefix string
	keys   []string
}{
	{"aws_", []string{"instance_type", "engine", "cidr_block", "bucket", "runtime"}},
	{"azurerm_", []string{"location", "size", "vm_size", "sku"}},
	{"google_", []string{"machine_type", "region", "zone"}},
}

var (
	interpolationRe = regexp.MustCompile(`\$\{([^}]*)\}`)
	dottedRefRe     = regexp.MustCompile(`[A-Za-z_][\w-]*(?:\.[A-Za-z_][\w-]*)+`)
	varTypeRe       = regexp.MustCompile(`(?m)^[ \t]*type[ \t]*=[ \t]*"?([^"\n]+)"?`)
	varDefaultRe    = regexp.MustCompile(`(?m)^[ \t]*default[ \t]*=[ \t]*"?([^"\n]+)"?`)
)

type terraformGenerator struct{}

func (terraformGenerator) Format() domain.Format { return domain.FormatTerraform }

func (terraformGenerator) Kind() string { return domain.KindFlowchart }

func (terraformGenerator) Generate(doc *domain.Document) (string, error) {
	cfg := doc.Terraform
	if cfg == nil {
		cfg = terraformFromTree(doc.Tree)
	}

	d := mermaid.NewFlowchart()

	resGroup := d.Subgraph("resources", "Resources")
	for _, r := range cfg.Resources {
		resGroup.AddNode(mermaid.Node{
			ID:    mermaid.SanitizeID(r.Address()),
			Label: resourceLabel(r),
			Class: classForType(r.Type),
		})
	}

	dataGroup := d.Subgraph("data_sources", "Data Sources")
	for _, ds := range cfg.DataSources {
		dataGroup.AddNode(mermaid.Node{
			ID:    mermaid.SanitizeID(ds.Address()),
			Label: labelLines(boldName(ds.Name), "data."+ds.Type),
			Class: mermaid.ClassExternal,
		})
	}

	varGroup := d.Subgraph("variables", "Variables")
	for _, v := range cfg.Variables {
		varGroup.AddNode(mermaid.Node{
			ID:    mermaid.SanitizeID("var." + v.Name),
			Label: variableLabel(v),
			Class: mermaid.ClassConfig,
		})
	}

	for _, r := range cfg.Resources {
		to := mermaid.SanitizeID(r.Address())
		seen := map[string]bool{r.Address(): true}

		for _, dep := range r.DependsOn {
			addr := refAddress(dep)
			if addr == "" {
				addr = dep
			}
			if seen[addr] {
				continue
			}
			seen[addr] = true
			d.AddEdge(mermaid.Edge{From: mermaid.SanitizeID(addr), To: to, Label: "depends on"})
		}

		for _, addr := range referencedAddresses(r) {
			if seen[addr] {
				continue
			}
			seen[addr] = true
			d.AddEdge(mermaid.Edge{From: mermaid.SanitizeID(addr), To: to, Label: "referenced by", Dotted: true})
		}
	}

	return d.String(), nil
}

// referencedAddresses collects the resource addresses a resource points
// at, from interpolation patterns inside quoted attribute values and
// from bare HCL2-style expressions. Attribute order is normalized so
// edge order is stable.
func referencedAddresses(r domain.TerraformResource) []string {
	var refs []string
	for _, key := range sortedAttrKeys(r.Attributes) {
		for _, m := range interpolationRe.FindAllStringSubmatch(r.Attributes[key], -1) {
			refs = append(refs, dottedRefRe.FindAllString(m[1], -1)...)
		}
	}
	for _, key := range sortedAttrKeys(r.Refs) {
		refs = append(refs, dottedRefRe.FindAllString(r.Refs[key], -1)...)
	}
	return refTargets(refs)
}

func sortedAttrKeys(m map[string]string) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func resourceLabel(r domain.TerraformResource) string {
	lines := []string{boldName(r.Name), r.Type}
	for _, key := range calloutKeys(r.Type) {
		if v, ok := r.Attributes[key]; ok && v != "" {
			lines = append(lines, key+": "+truncate(v))
		}
	}
	if n := len(r.Tags); n > 0 {
		lines = append(lines, fmt.Sprintf("%d tags", n))
	}
	return labelLines(lines...)
}

func calloutKeys(resourceType string) []string {
	if keys, ok := typeCallouts[resourceType]; ok {
		return keys
	}
	for _, pc := range prefixCallouts {
		if strings.HasPrefix(resourceType, pc.prefix) {
			return pc.keys
		}
	}
	return nil
}

func variableLabel(v domain.TerraformVariable) string {
	lines := []string{boldName(v.Name), "variable"}
	if m := varTypeRe.FindStringSubmatch(v.Body); m != nil {
		lines = append(lines, "type: "+strings.TrimSpace(m[1]))
	}
	if m := varDefaultRe.FindStringSubmatch(v.Body); m != nil {
		lines = append(lines, "default: "+truncate(strings.TrimSpace(m[1])))
	}
	return labelLines(lines...)
}

// terraformFromTree lifts the JSON encoding of Terraform (.tf.json) into
// the same shape the HCL scanner produces, so one generator serves both.
func terraformFromTree(root map[string]any) *domain.TerraformConfig {
	cfg := &domain.TerraformConfig{}
	if root == nil {
		return cfg
	}

	for _, name := range providerNames(root["provider"]) {
		cfg.Providers = append(cfg.Providers, domain.TerraformProvider{Name: name})
	}

	resources := tree.GetMap(root, "resource")
	for _, rType := range tree.Keys(resources) {
		byName := tree.GetMap(resources, rType)
		for _, rName := range tree.Keys(byName) {
			cfg.Resources = append(cfg.Resources, liftResource(rType, rName, tree.GetMap(byName, rName)))
		}
	}

	data := tree.GetMap(root, "data")
	for _, dType := range tree.Keys(data) {
		byName := tree.GetMap(data, dType)
		for _, dName := range tree.Keys(byName) {
			cfg.DataSources = append(cfg.DataSources, domain.TerraformDataSource{Type: dType, Name: dName})
		}
	}

	variables := tree.GetMap(root, "variable")
	for _, vName := range tree.Keys(variables) {
		cfg.Variables = append(cfg.Variables, domain.TerraformVariable{
			Name: vName,
			Body: syntheticVariableBody(tree.GetMap(variables, vName)),
		})
	}

	return cfg
}

// providerNames handles both the object and the list-of-objects
// encodings the JSON syntax allows for provider blocks.
func providerNames(v any) []string {
	switch p := v.(type) {
	case map[string]any:
		return tree.Keys(p)
	case []any:
		var names []string
		seen := map[string]bool{}
		for _, entry := range p {
			for _, name := range tree.Keys(tree.AsMap(entry)) {
				if !seen[name] {
					seen[name] = true
					names = append(names, name)
				}
			}
		}
		return names
	}
	return nil
}

func liftResource(rType, rName string, body map[string]any) domain.TerraformResource {
	r := domain.TerraformResource{
		Type:       rType,
		Name:       rName,
		Attributes: map[string]string{},
	}
	for _, key := range tree.Keys(body) {
		switch key {
		case "depends_on":
			r.DependsOn = tree.Strings(body[key])
		case "tags":
			tags := tree.GetMap(body, key)
			if len(tags) > 0 {
				r.Tags = map[string]string{}
				for _, tk := range tree.Keys(tags) {
					r.Tags[tk] = tree.Scalar(tags[tk])
				}
			}
		default:
			if s := tree.Scalar(body[key]); s != "" {
				r.Attributes[key] = s
			}
		}
	}
	return r
}

func syntheticVariableBody(body map[string]any) string {
	var sb strings.Builder
	if t := tree.Scalar(body["type"]); t != "" {
		fmt.Fprintf(&sb, "type = %q\n", t)
	}
	if d := tree.Scalar(body["default"]); d != "" {
		fmt.Fprintf(&sb, "default = %q\n", d)
	}
	return sb.String()
}
