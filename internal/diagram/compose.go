package diagram

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/flori950/Architecture-as-Code-Visualizer/internal/tree"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/mermaid"
)

const maxPortsShown = 3

// composeService carries the service attributes the diagram cares
// about. Loosely typed fields (ports, depends_on, networks) keep their
// tree shape because Compose allows both list and map forms.
type composeService struct {
	Image       string `mapstructure:"image"`
	Build       any    `mapstructure:"build"`
	Ports       []any  `mapstructure:"ports"`
	Environment any    `mapstructure:"environment"`
	Volumes     []any  `mapstructure:"volumes"`
	Networks    any    `mapstructure:"networks"`
	DependsOn   any    `mapstructure:"depends_on"`
	Restart     string `mapstructure:"restart"`
	WorkingDir  string `mapstructure:"working_dir"`
	Command     any    `mapstructure:"command"`
}

func decodeService(raw map[string]any) composeService {
	var svc composeService
	if len(raw) == 0 {
		return svc
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &svc,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return svc
	}
	// A failed decode still leaves the fields that did fit; a partial
	// label beats no label.
	_ = dec.Decode(raw)
	return svc
}

type composeGenerator struct{}

func (composeGenerator) Format() domain.Format { return domain.FormatDockerCompose }

func (composeGenerator) Kind() string { return domain.KindFlowchart }

func (composeGenerator) Generate(doc *domain.Document) (string, error) {
	root := doc.Tree
	services := tree.GetMap(root, "services")
	networks := tree.GetMap(root, "networks")
	volumes := tree.GetMap(root, "volumes")

	d := mermaid.NewFlowchart()

	svcGroup := d.Subgraph("services", "Services")
	decoded := make(map[string]composeService, len(services))
	for _, name := range tree.Keys(services) {
		svc := decodeService(tree.GetMap(services, name))
		decoded[name] = svc
		svcGroup.AddNode(mermaid.Node{
			ID:    serviceID(name),
			Label: serviceLabel(name, svc),
			Class: classForImage(svc.Image),
		})
	}

	// Shorthand declarations ("frontend:" with no body) decode to nil;
	// they still render, with the engine default driver.
	netGroup := d.Subgraph("networks", "Networks")
	for _, name := range tree.Keys(networks) {
		cfg := tree.GetMap(networks, name)
		netGroup.AddNode(mermaid.Node{
			ID:    networkID(name),
			Label: labelLines(boldName(name), "driver: "+tree.GetStringOr(cfg, "driver", "bridge")),
			Class: mermaid.ClassNetwork,
		})
	}

	volGroup := d.Subgraph("volumes", "Volumes")
	for _, name := range tree.Keys(volumes) {
		cfg := tree.GetMap(volumes, name)
		volGroup.AddNode(mermaid.Node{
			ID:    volumeID(name),
			Label: labelLines(boldName(name), "driver: "+tree.GetStringOr(cfg, "driver", "local")),
			Class: mermaid.ClassStorage,
		})
	}

	for _, name := range tree.Keys(services) {
		svc := decoded[name]
		for _, dep := range namesOf(svc.DependsOn) {
			d.AddEdge(mermaid.Edge{From: serviceID(dep), To: serviceID(name), Label: "depends on"})
		}
		for _, net := range namesOf(svc.Networks) {
			d.AddEdge(mermaid.Edge{From: serviceID(name), To: networkID(net), Label: "connects to", Dotted: true})
		}
		for _, vol := range namedVolumeMounts(svc.Volumes) {
			d.AddEdge(mermaid.Edge{From: volumeID(vol), To: serviceID(name), Label: "mounts to", Dotted: true})
		}
	}

	return d.String(), nil
}

func serviceID(name string) string { return "svc_" + mermaid.SanitizeID(name) }
func networkID(name string) string { return "net_" + mermaid.SanitizeID(name) }
func volumeID(name string) string  { return "vol_" + mermaid.SanitizeID(name) }

func serviceLabel(name string, svc composeService) string {
	lines := []string{boldName(name)}
	if svc.Image != "" {
		lines = append(lines, svc.Image)
	} else if b := buildSummary(svc.Build); b != "" {
		lines = append(lines, b)
	}
	if p := portSummary(svc.Ports); p != "" {
		lines = append(lines, p)
	}
	if n := tree.Count(svc.Environment); n > 0 {
		lines = append(lines, fmt.Sprintf("%d env vars", n))
	}
	if n := len(svc.Volumes); n > 0 {
		lines = append(lines, fmt.Sprintf("%d volumes", n))
	}
	if svc.Restart != "" {
		lines = append(lines, "restart: "+svc.Restart)
	}
	if svc.WorkingDir != "" {
		lines = append(lines, "workdir: "+svc.WorkingDir)
	}
	if cmd := commandString(svc.Command); cmd != "" {
		lines = append(lines, "cmd: "+truncate(cmd))
	}
	return labelLines(lines...)
}

func buildSummary(build any) string {
	switch v := build.(type) {
	case string:
		return "build: " + v
	case map[string]any:
		if ctx := tree.GetString(v, "context"); ctx != "" {
			return "build: " + ctx
		}
		return "build"
	}
	return ""
}

func portSummary(ports []any) string {
	var parts []string
	for _, p := range ports {
		switch v := p.(type) {
		case map[string]any:
			published := tree.Scalar(v["published"])
			target := tree.Scalar(v["target"])
			switch {
			case published != "" && target != "":
				parts = append(parts, published+":"+target)
			case target != "":
				parts = append(parts, target)
			}
		default:
			if s := tree.Scalar(v); s != "" {
				parts = append(parts, s)
			}
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "ports: " + strings.Join(capped(parts, maxPortsShown), ", ")
}

func commandString(cmd any) string {
	switch v := cmd.(type) {
	case string:
		return v
	case []any:
		return strings.Join(tree.Strings(v), " ")
	}
	return ""
}

// namesOf flattens the list and map spellings Compose allows for
// depends_on and networks. Map form returns sorted keys.
func namesOf(v any) []string {
	switch t := v.(type) {
	case []any:
		return tree.Strings(t)
	case map[string]any:
		return tree.Keys(t)
	case string:
		return []string{t}
	}
	return nil
}

// namedVolumeMounts extracts the named-volume sources out of a
// service's mount list. Bind mounts (paths starting with "." or "/")
// are dropped; only declared volumes get an edge.
func namedVolumeMounts(mounts []any) []string {
	var out []string
	for _, m := range mounts {
		var src string
		switch v := m.(type) {
		case string:
			src, _, _ = strings.Cut(v, ":")
		case map[string]any:
			if tree.GetString(v, "type") == "bind" {
				continue
			}
			src = tree.GetString(v, "source")
		}
		src = strings.TrimSpace(src)
		if src == "" || strings.HasPrefix(src, ".") || strings.HasPrefix(src, "/") {
			continue
		}
		out = append(out, src)
	}
	return out
}
