package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
)

const k8sThreeDocs = `apiVersion: apps/v1
kind: Deployment
metadata:
  name: web
  namespace: prod
spec:
  replicas: 3
  selector:
    matchLabels:
      app: web
  template:
    spec:
      containers:
        - name: web
          image: nginx:1.27
          ports:
            - containerPort: 80
          env:
            - name: MODE
              value: production
          resources:
            requests:
              cpu: 100m
              memory: 128Mi
---
apiVersion: v1
kind: Service
metadata:
  name: web-svc
  namespace: prod
spec:
  type: LoadBalancer
  selector:
    app: web
  ports:
    - port: 80
      targetPort: 8080
---
apiVersion: networking.k8s.io/v1
kind: Ingress
metadata:
  name: web-ing
spec:
  rules:
    - host: example.com
`

func TestKubernetesMultiDocumentGrouping(t *testing.T) {
	doc := parse(t, domain.FormatKubernetes, k8sThreeDocs)
	require.True(t, doc.MultiDocument)
	require.Len(t, doc.Documents, 3)

	markup := generate(t, domain.FormatKubernetes, k8sThreeDocs)

	assert.Contains(t, markup, `subgraph ns_prod["Namespace: prod"]`)
	assert.Contains(t, markup, `subgraph ns_default["Namespace: default"]`)
	assert.Contains(t, markup, "deployment_web_prod")
	assert.Contains(t, markup, "service_web-svc_prod")
	assert.Contains(t, markup, "ingress_web-ing_default")

	// Namespace containers render in sorted order.
	assert.Less(t, strings.Index(markup, "ns_default"), strings.Index(markup, "ns_prod"))
}

func TestKubernetesWorkloadLabel(t *testing.T) {
	markup := generate(t, domain.FormatKubernetes, k8sThreeDocs)

	assert.Contains(t, markup, "<b>web</b>")
	assert.Contains(t, markup, "replicas: 3")
	assert.Contains(t, markup, "nginx:1.27")
	assert.Contains(t, markup, "ports: 80")
	assert.Contains(t, markup, "1 env vars")
	assert.Contains(t, markup, "requests: cpu=100m memory=128Mi")
}

func TestKubernetesServiceLabelAndSelectsEdge(t *testing.T) {
	markup := generate(t, domain.FormatKubernetes, k8sThreeDocs)

	assert.Contains(t, markup, "type: LoadBalancer")
	assert.Contains(t, markup, "ports: 80:8080")
	assert.Contains(t, markup, "hosts: example.com")
	assert.Contains(t, markup, "service_web-svc_prod -->|selects| deployment_web_prod")
}

func TestKubernetesSelectorScopedToNamespace(t *testing.T) {
	src := `apiVersion: v1
kind: Service
metadata:
  name: api
  namespace: a
spec:
  selector:
    app: api
---
apiVersion: apps/v1
kind: Deployment
metadata:
  name: api
  namespace: b
spec:
  replicas: 1
`
	markup := generate(t, domain.FormatKubernetes, src)
	assert.NotContains(t, markup, "selects")
}

func TestKubernetesPlaceholderResource(t *testing.T) {
	src := `apiVersion: v1
kind: Service
metadata:
  name: lookup
spec:
  selector:
    app: x
---
just: data
`
	markup := generate(t, domain.FormatKubernetes, src)

	assert.Contains(t, markup, "unknown_resource_1_default")
	assert.Contains(t, markup, "<b>resource_1</b>")
	assert.Contains(t, markup, "Unknown")
	// Nothing selectable in the namespace, so no edge either.
	assert.NotContains(t, markup, "selects")
}

func TestKubernetesConfigAndStorageLabels(t *testing.T) {
	src := `apiVersion: v1
kind: ConfigMap
metadata:
  name: app-config
data:
  LOG_LEVEL: info
  TIMEOUT: "30"
---
apiVersion: v1
kind: Secret
metadata:
  name: app-secret
stringData:
  token: abc
---
apiVersion: v1
kind: PersistentVolumeClaim
metadata:
  name: data-pvc
spec:
  accessModes:
    - ReadWriteOnce
  resources:
    requests:
      storage: 10Gi
`
	markup := generate(t, domain.FormatKubernetes, src)

	assert.Contains(t, markup, "2 keys")
	assert.Contains(t, markup, "1 keys")
	assert.Contains(t, markup, "storage: 10Gi")
	assert.Contains(t, markup, "ReadWriteOnce")
	assert.Contains(t, markup, "class configmap_app-config_default config;")
	assert.Contains(t, markup, "class secret_app-secret_default secret;")
	assert.Contains(t, markup, "class persistentvolumeclaim_data-pvc_default storage;")
}

func TestKubernetesMultiContainerSummary(t *testing.T) {
	src := `apiVersion: apps/v1
kind: Deployment
metadata:
  name: bundle
spec:
  template:
    spec:
      containers:
        - name: app
          image: ghcr.io/acme/app:1.0
        - name: sidecar
          image: envoyproxy/envoy:v1.30
        - name: agent
          image: grafana/agent:v0.40
`
	markup := generate(t, domain.FormatKubernetes, src)

	assert.Contains(t, markup, "ghcr.io/acme/app:1.0")
	assert.Contains(t, markup, "+2 more containers")
	assert.NotContains(t, markup, "envoyproxy/envoy")
}
