package diagram

import "strings"

// nonResourcePrefixes are reference namespaces that never name a managed
// resource, so interpolations rooted in them produce no edge.
var nonResourcePrefixes = map[string]bool{
	"var":       true,
	"local":     true,
	"each":      true,
	"count":     true,
	"module":    true,
	"path":      true,
	"terraform": true,
}

// refAddress reduces a dotted reference like aws_subnet.sub1.id to the
// address of the resource it points at (aws_subnet.sub1). Data source
// references keep three segments (data.aws_ami.ubuntu). References that
// do not name a resource return "".
func refAddress(ref string) string {
	segs := strings.Split(ref, ".")
	if len(segs) < 2 {
		return ""
	}
	if nonResourcePrefixes[segs[0]] {
		return ""
	}
	if segs[0] == "data" {
		if len(segs) < 3 {
			return ""
		}
		return strings.Join(segs[:3], ".")
	}
	return strings.Join(segs[:2], ".")
}

// refName extracts the resource name segment from a reference, used for
// labeling placeholder nodes.
func refName(ref string) string {
	segs := strings.Split(ref, ".")
	if segs[0] == "data" && len(segs) >= 3 {
		return segs[2]
	}
	if len(segs) >= 2 {
		return segs[1]
	}
	return ref
}

// refTargets resolves every raw reference to a distinct resource
// address, preserving first-seen order.
func refTargets(refs []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, ref := range refs {
		addr := refAddress(ref)
		if addr == "" || seen[addr] {
			continue
		}
		seen[addr] = true
		out = append(out, addr)
	}
	return out
}
