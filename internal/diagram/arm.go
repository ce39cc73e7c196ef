package diagram

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/flori950/Architecture-as-Code-Visualizer/internal/tree"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/mermaid"
)

// resourceIdRe pulls the quoted arguments out of an ARM resourceId()
// expression, e.g. [resourceId('Microsoft.Network/virtualNetworks', 'vnet')].
var resourceIdRe = regexp.MustCompile(`resourceId\(([^)]*)\)`)

type armGenerator struct{}

func (armGenerator) Format() domain.Format { return domain.FormatAzureARM }

func (armGenerator) Kind() string { return domain.KindGraph }

func (armGenerator) Generate(doc *domain.Document) (string, error) {
	resources := tree.GetSlice(doc.Tree, "resources")

	d := mermaid.NewGraph()

	// Template expressions are legal in the name field, so same-named
	// entries are common; the array index keeps their IDs distinct.
	ids := make([]string, len(resources))
	for i, raw := range resources {
		res := tree.AsMap(raw)
		resType := tree.GetString(res, "type")
		name := tree.GetStringOr(res, "name", fmt.Sprintf("resource_%d", i))
		ids[i] = mermaid.SanitizeID(fmt.Sprintf("%s_%s_%d", resType, name, i))

		lines := []string{boldName(name), resType}
		if loc := tree.GetString(res, "location"); loc != "" {
			lines = append(lines, "location: "+truncate(loc))
		}
		if kind := tree.GetString(res, "kind"); kind != "" {
			lines = append(lines, "kind: "+kind)
		}
		if sku := tree.GetString(tree.GetMap(res, "sku"), "name"); sku != "" {
			lines = append(lines, "sku: "+sku)
		}
		d.AddNode(mermaid.Node{ID: ids[i], Label: labelLines(lines...), Class: classForType(resType)})
	}

	for i, raw := range resources {
		res := tree.AsMap(raw)
		for _, dep := range tree.Strings(res["dependsOn"]) {
			depID, depLabel := armDependency(dep)
			if depID == "" {
				continue
			}
			if !d.HasNode(depID) {
				d.AddNode(mermaid.Node{ID: depID, Label: depLabel, Class: mermaid.ClassExternal})
			}
			d.AddEdge(mermaid.Edge{From: depID, To: ids[i], Label: "depends on"})
		}
	}

	return d.String(), nil
}

// armDependency derives a placeholder node out of a dependsOn entry.
// resourceId() expressions contribute their type and trailing name
// argument; anything else falls back to the last two path segments of
// the stripped expression.
func armDependency(entry string) (id, label string) {
	entry = strings.TrimSpace(entry)
	trimmed := strings.Trim(entry, "[]")

	if m := resourceIdRe.FindStringSubmatch(trimmed); m != nil {
		args := splitArmArgs(m[1])
		if len(args) > 0 {
			depType := args[0]
			depName := ""
			if len(args) > 1 {
				depName = args[len(args)-1]
			}
			display := depName
			if display == "" {
				display = depType
			}
			id = "dep_" + mermaid.SanitizeID(depType+"_"+depName)
			label = labelLines(boldName(lastPathSegment(display)), depType)
			return id, label
		}
	}

	if trimmed == "" {
		return "", ""
	}
	id = "dep_" + mermaid.SanitizeID(trimmed)
	return id, labelLines(boldName(lastPathSegment(trimmed)), "dependency")
}

// splitArmArgs breaks a resourceId argument list on commas and strips
// the single quotes ARM uses for literals. Nested function calls stay
// as-is; they still make usable labels.
func splitArmArgs(argList string) []string {
	var args []string
	for _, arg := range strings.Split(argList, ",") {
		arg = strings.TrimSpace(arg)
		arg = strings.Trim(arg, "'")
		if arg != "" {
			args = append(args, arg)
		}
	}
	return args
}

func lastPathSegment(s string) string {
	if i := strings.LastIndex(s, "/"); i >= 0 && i+1 < len(s) {
		return s[i+1:]
	}
	return s
}
