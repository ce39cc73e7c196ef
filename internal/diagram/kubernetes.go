package diagram

import (
	"fmt"
	"sort"
	"strings"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/flori950/Architecture-as-Code-Visualizer/internal/tree"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/mermaid"
)

// workloadKinds are the kinds whose pod template contributes container
// details to the node label.
var workloadKinds = map[string]bool{
	"Deployment":  true,
	"StatefulSet": true,
	"DaemonSet":   true,
	"ReplicaSet":  true,
	"Job":         true,
	"CronJob":     true,
	"Pod":         true,
}

// selectableKinds receive a "selects" edge from Services in the same
// namespace.
var selectableKinds = map[string]bool{
	"Deployment":  true,
	"StatefulSet": true,
}

type k8sResource struct {
	kind      string
	name      string
	namespace string
	obj       map[string]any
}

// collectResources lifts every manifest document into a resource,
// defaulting the namespace and substituting placeholder names so a
// document without usable metadata still renders.
func collectResources(doc *domain.Document) []k8sResource {
	var out []k8sResource
	for i, t := range doc.Trees() {
		u := unstructured.Unstructured{Object: t}
		r := k8sResource{
			kind:      u.GetKind(),
			name:      u.GetName(),
			namespace: u.GetNamespace(),
			obj:       t,
		}
		if r.kind == "" {
			r.kind = "Unknown"
		}
		if r.name == "" {
			r.name = fmt.Sprintf("resource_%d", i)
		}
		if r.namespace == "" {
			r.namespace = "default"
		}
		out = append(out, r)
	}
	return out
}

type kubernetesGenerator struct{}

func (kubernetesGenerator) Format() domain.Format { return domain.FormatKubernetes }

func (kubernetesGenerator) Kind() string { return domain.KindFlowchart }

func (kubernetesGenerator) Generate(doc *domain.Document) (string, error) {
	resources := collectResources(doc)

	byNamespace := map[string][]k8sResource{}
	var namespaces []string
	for _, r := range resources {
		if _, seen := byNamespace[r.namespace]; !seen {
			namespaces = append(namespaces, r.namespace)
		}
		byNamespace[r.namespace] = append(byNamespace[r.namespace], r)
	}
	sort.Strings(namespaces)

	d := mermaid.NewFlowchart()
	for _, ns := range namespaces {
		group := d.Subgraph("ns_"+mermaid.SanitizeID(ns), "Namespace: "+ns)
		for _, r := range byNamespace[ns] {
			group.AddNode(mermaid.Node{
				ID:    k8sID(r),
				Label: k8sLabel(r),
				Class: k8sClass(r),
			})
		}
	}

	// A Service with any selector at all points at the selectable
	// workloads sharing its namespace. Label matching is not performed;
	// presence of a selector is enough to draw the edge.
	for _, ns := range namespaces {
		for _, svc := range byNamespace[ns] {
			if svc.kind != "Service" || !hasSelector(svc.obj) {
				continue
			}
			for _, target := range byNamespace[ns] {
				if !selectableKinds[target.kind] {
					continue
				}
				d.AddEdge(mermaid.Edge{From: k8sID(svc), To: k8sID(target), Label: "selects"})
			}
		}
	}

	return d.String(), nil
}

func k8sID(r k8sResource) string {
	return mermaid.SanitizeID(strings.ToLower(r.kind + "_" + r.name + "_" + r.namespace))
}

func k8sLabel(r k8sResource) string {
	lines := []string{boldName(r.name), r.kind}
	switch {
	case workloadKinds[r.kind]:
		lines = append(lines, workloadDetails(r.obj)...)
	case r.kind == "Service":
		lines = append(lines, serviceDetails(r.obj)...)
	case r.kind == "ConfigMap" || r.kind == "Secret":
		lines = append(lines, keyCount(r.obj)...)
	case r.kind == "PersistentVolumeClaim":
		lines = append(lines, claimDetails(r.obj)...)
	case r.kind == "Ingress":
		lines = append(lines, ingressDetails(r.obj)...)
	}
	return labelLines(lines...)
}

func k8sClass(r k8sResource) string {
	switch {
	case workloadKinds[r.kind]:
		if c := classForImage(firstImage(r.obj)); c != "" {
			return c
		}
		return mermaid.ClassCompute
	case r.kind == "Service" || r.kind == "NetworkPolicy":
		return mermaid.ClassNetwork
	case r.kind == "Ingress":
		return mermaid.ClassWeb
	case r.kind == "ConfigMap":
		return mermaid.ClassConfig
	case r.kind == "Secret":
		return mermaid.ClassSecret
	case r.kind == "PersistentVolumeClaim" || r.kind == "PersistentVolume" || r.kind == "StorageClass":
		return mermaid.ClassStorage
	}
	return ""
}

// podContainers finds the container list wherever the kind nests its
// pod template. NestedFieldNoCopy is used throughout instead of the
// copying accessors: YAML numbers decode as int, which the apimachinery
// deep-copy helpers reject.
func podContainers(obj map[string]any) []any {
	for _, path := range [][]string{
		{"spec", "template", "spec", "containers"},
		{"spec", "jobTemplate", "spec", "template", "spec", "containers"},
		{"spec", "containers"},
	} {
		if raw, found, err := unstructured.NestedFieldNoCopy(obj, path...); found && err == nil {
			if list := tree.AsSlice(raw); len(list) > 0 {
				return list
			}
		}
	}
	return nil
}

func firstImage(obj map[string]any) string {
	containers := podContainers(obj)
	if len(containers) == 0 {
		return ""
	}
	return tree.GetString(tree.AsMap(containers[0]), "image")
}

func workloadDetails(obj map[string]any) []string {
	var lines []string
	if replicas, ok := tree.GetInt(tree.GetMap(obj, "spec"), "replicas"); ok {
		lines = append(lines, fmt.Sprintf("replicas: %d", replicas))
	}

	containers := podContainers(obj)
	if len(containers) == 0 {
		return lines
	}
	first := tree.AsMap(containers[0])
	if img := tree.GetString(first, "image"); img != "" {
		lines = append(lines, img)
	}
	if ports := containerPortSummary(first); ports != "" {
		lines = append(lines, ports)
	}
	if n := len(tree.GetSlice(first, "env")); n > 0 {
		lines = append(lines, fmt.Sprintf("%d env vars", n))
	}
	lines = append(lines, containerResources(first)...)
	if extra := len(containers) - 1; extra > 0 {
		lines = append(lines, fmt.Sprintf("+%d more containers", extra))
	}
	return lines
}

func containerPortSummary(container map[string]any) string {
	var parts []string
	for _, p := range tree.GetSlice(container, "ports") {
		if s := tree.Scalar(tree.AsMap(p)["containerPort"]); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "ports: " + strings.Join(capped(parts, maxPortsShown), ", ")
}

// containerResources summarizes requests and limits as cpu/memory
// pairs, one line each, skipping whichever side is absent.
func containerResources(container map[string]any) []string {
	var lines []string
	res := tree.GetMap(container, "resources")
	for _, side := range []string{"requests", "limits"} {
		m := tree.GetMap(res, side)
		if len(m) == 0 {
			continue
		}
		var parts []string
		for _, key := range tree.Keys(m) {
			if v := tree.Scalar(m[key]); v != "" {
				parts = append(parts, key+"="+v)
			}
		}
		if len(parts) > 0 {
			lines = append(lines, side+": "+strings.Join(parts, " "))
		}
	}
	return lines
}

func serviceDetails(obj map[string]any) []string {
	svcType, _, _ := unstructured.NestedString(obj, "spec", "type")
	if svcType == "" {
		svcType = "ClusterIP"
	}
	lines := []string{"type: " + svcType}

	raw, _, _ := unstructured.NestedFieldNoCopy(obj, "spec", "ports")
	var parts []string
	for _, p := range tree.AsSlice(raw) {
		pm := tree.AsMap(p)
		port := tree.Scalar(pm["port"])
		if port == "" {
			continue
		}
		if target := tree.Scalar(pm["targetPort"]); target != "" && target != port {
			parts = append(parts, port+":"+target)
		} else {
			parts = append(parts, port)
		}
	}
	if len(parts) > 0 {
		lines = append(lines, "ports: "+strings.Join(capped(parts, maxPortsShown), ", "))
	}
	return lines
}

func keyCount(obj map[string]any) []string {
	n := tree.Count(tree.GetMap(obj, "data")) + tree.Count(tree.GetMap(obj, "binaryData")) +
		tree.Count(tree.GetMap(obj, "stringData"))
	if n == 0 {
		return nil
	}
	return []string{fmt.Sprintf("%d keys", n)}
}

func claimDetails(obj map[string]any) []string {
	var lines []string
	if storage, _, err := unstructured.NestedString(obj, "spec", "resources", "requests", "storage"); err == nil && storage != "" {
		lines = append(lines, "storage: "+storage)
	}
	raw, _, _ := unstructured.NestedFieldNoCopy(obj, "spec", "accessModes")
	if modes := tree.Strings(raw); len(modes) > 0 {
		lines = append(lines, strings.Join(modes, ", "))
	}
	return lines
}

func ingressDetails(obj map[string]any) []string {
	raw, _, _ := unstructured.NestedFieldNoCopy(obj, "spec", "rules")
	var hosts []string
	for _, rule := range tree.AsSlice(raw) {
		if host := tree.GetString(tree.AsMap(rule), "host"); host != "" {
			hosts = append(hosts, host)
		}
	}
	if len(hosts) == 0 {
		return nil
	}
	return []string{"hosts: " + strings.Join(capped(hosts, maxPortsShown), ", ")}
}

func hasSelector(obj map[string]any) bool {
	raw, found, err := unstructured.NestedFieldNoCopy(obj, "spec", "selector")
	return found && err == nil && tree.Count(raw) > 0
}
