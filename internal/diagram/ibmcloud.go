package diagram

import (
	"fmt"
	"strings"

	"github.com/flori950/Architecture-as-Code-Visualizer/internal/tree"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/mermaid"
)

// ibmIcons maps type substrings to a label icon. Ordered so compound
// names win over their parts (floating_ip before instance matching,
// security_group before group-ish needles).
var ibmIcons = []struct {
	needle string
	icon   string
}{
	{"floating_ip", "🌐"},
	{"security_group", "🛡️"},
	{"subnet", "🔀"},
	{"vpc", "☁️"},
	{"instance", "🖥️"},
	{"lb", "⚖️"},
	{"cos", "🗄️"},
}

func ibmIcon(resType string) string {
	for _, entry := range ibmIcons {
		if strings.Contains(resType, entry.needle) {
			return entry.icon
		}
	}
	return "📦"
}

// ibmRefKeys are the property keys whose values may reference another
// resource by name.
var ibmRefKeys = []string{"vpc", "subnet", "lb", "target", "security_groups", "group"}

type ibmCloudGenerator struct{}

func (ibmCloudGenerator) Format() domain.Format { return domain.FormatIBMCloud }

func (ibmCloudGenerator) Kind() string { return domain.KindGraph }

func (ibmCloudGenerator) Generate(doc *domain.Document) (string, error) {
	resources := tree.GetSlice(doc.Tree, "resources")
	dataSources := tree.GetSlice(doc.Tree, "data_sources")

	d := mermaid.NewGraph()

	// Reference values carry resource names, not addresses, so edges
	// resolve through a name index.
	idByName := map[string]string{}
	for i, raw := range resources {
		res := tree.AsMap(raw)
		resType := tree.GetString(res, "type")
		name := tree.GetStringOr(res, "name", fmt.Sprintf("resource_%d", i))
		id := mermaid.SanitizeID(name)
		if _, taken := idByName[name]; !taken {
			idByName[name] = id
		}

		lines := []string{ibmIcon(resType) + " " + boldName(name), resType}
		if zone := tree.GetString(res, "zone"); zone != "" {
			lines = append(lines, "zone: "+zone)
		}
		if profile := tree.GetString(res, "profile"); profile != "" {
			lines = append(lines, "profile: "+profile)
		}
		d.AddNode(mermaid.Node{ID: id, Label: labelLines(lines...), Class: classForType(resType)})
	}

	for _, raw := range dataSources {
		ds := tree.AsMap(raw)
		name := tree.GetString(ds, "name")
		if name == "" {
			continue
		}
		d.AddNode(mermaid.Node{
			ID:    "data_" + mermaid.SanitizeID(name),
			Label: labelLines("📡 "+boldName(name), tree.GetString(ds, "type"), "data source"),
			Class: mermaid.ClassExternal,
		})
	}

	for i, raw := range resources {
		res := tree.AsMap(raw)
		name := tree.GetStringOr(res, "name", fmt.Sprintf("resource_%d", i))
		for _, key := range ibmRefKeys {
			for _, value := range tree.Strings(res[key]) {
				if key == "target" && !strings.Contains(value, "instance") {
					continue
				}
				refName := ibmRefName(value)
				from, known := idByName[refName]
				if !known || refName == name {
					continue
				}
				d.AddEdge(mermaid.Edge{From: from, To: idByName[name], Label: "referenced by", Dotted: true})
			}
		}
	}

	return d.String(), nil
}

// ibmRefName pulls the resource name out of an interpolation-shaped
// value: "${ibm_is_vpc.vpc.id}" yields "vpc". Plain names pass through.
func ibmRefName(value string) string {
	if m := interpolationRe.FindStringSubmatch(value); m != nil {
		value = m[1]
	}
	segs := strings.Split(value, ".")
	if len(segs) >= 2 {
		return segs[1]
	}
	return value
}
