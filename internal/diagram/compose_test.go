package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
)

const composeChain = `version: "3.8"
services:
  web:
    image: nginx:alpine
    depends_on:
      - api
  api:
    image: node:20
    depends_on:
      - database
  database:
    image: postgres:16
`

func TestComposeDependencyDirection(t *testing.T) {
	markup := generate(t, domain.FormatDockerCompose, composeChain)

	// Dependency points at dependent, never the reverse.
	assert.Contains(t, markup, "svc_database -->|depends on| svc_api")
	assert.Contains(t, markup, "svc_api -->|depends on| svc_web")
	assert.NotContains(t, markup, "svc_web -->|depends on| svc_api")
	assert.NotContains(t, markup, "svc_api -->|depends on| svc_database")
}

func TestComposeNullNetworkAndVolumeConfigs(t *testing.T) {
	src := `version: "3.8"
services:
  web:
    image: nginx
    networks:
      - frontend
    volumes:
      - data:/var/lib/app
networks:
  frontend:
volumes:
  data:
`
	markup := generate(t, domain.FormatDockerCompose, src)

	assert.Contains(t, markup, "driver: bridge")
	assert.Contains(t, markup, "driver: local")
	assert.Contains(t, markup, "svc_web -.->|connects to| net_frontend")
	assert.Contains(t, markup, "vol_data -.->|mounts to| svc_web")
}

func TestComposeServiceLabel(t *testing.T) {
	src := `version: "3.8"
services:
  worker:
    image: python:3.12
    ports:
      - "8000:8000"
      - "8001:8001"
      - "8002:8002"
      - "8003:8003"
    environment:
      DEBUG: "1"
      LOG_LEVEL: info
    restart: unless-stopped
    working_dir: /app
    command: celery -A tasks worker --loglevel=info
`
	markup := generate(t, domain.FormatDockerCompose, src)

	assert.Contains(t, markup, "<b>worker</b>")
	assert.Contains(t, markup, "python:3.12")
	assert.Contains(t, markup, "ports: 8000:8000, 8001:8001, 8002:8002, +1 more")
	assert.Contains(t, markup, "2 env vars")
	assert.Contains(t, markup, "restart: unless-stopped")
	assert.Contains(t, markup, "workdir: /app")
	assert.Contains(t, markup, "cmd: celery -A tasks work...")
}

func TestComposeLongFormPortsAndMapDependsOn(t *testing.T) {
	src := `version: "3.9"
services:
  web:
    build: ./web
    ports:
      - target: 80
        published: 8080
    depends_on:
      api:
        condition: service_healthy
  api:
    image: node:20
`
	markup := generate(t, domain.FormatDockerCompose, src)

	assert.Contains(t, markup, "build: ./web")
	assert.Contains(t, markup, "ports: 8080:80")
	assert.Contains(t, markup, "svc_api -->|depends on| svc_web")
}

func TestComposeBindMountsSkipped(t *testing.T) {
	src := `version: "3.8"
services:
  database:
    image: postgres:16
    volumes:
      - ./init:/docker-entrypoint-initdb.d
      - /var/run/docker.sock:/var/run/docker.sock
      - pgdata:/var/lib/postgresql/data
volumes:
  pgdata:
`
	markup := generate(t, domain.FormatDockerCompose, src)

	assert.Equal(t, 1, strings.Count(markup, "mounts to"))
	assert.Contains(t, markup, "vol_pgdata -.->|mounts to| svc_database")
	// Mount count still reflects every entry, bind mounts included.
	assert.Contains(t, markup, "3 volumes")
}

func TestComposeClassTagging(t *testing.T) {
	markup := generate(t, domain.FormatDockerCompose, composeChain)

	assert.Contains(t, markup, "class svc_web web;")
	assert.Contains(t, markup, "class svc_database database;")
	assert.Contains(t, markup, "class svc_api compute;")
}

func TestComposeSubgraphs(t *testing.T) {
	markup := generate(t, domain.FormatDockerCompose, composeChain)

	assert.Contains(t, markup, "flowchart TD")
	assert.Contains(t, markup, `subgraph services["Services"]`)
	// No networks or volumes declared, so their containers are omitted.
	assert.NotContains(t, markup, `subgraph networks`)
	assert.NotContains(t, markup, `subgraph volumes`)
}
