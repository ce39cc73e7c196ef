package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"

	visualizer "github.com/flori950/Architecture-as-Code-Visualizer"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
)

// samples carries one known-good document per supported format. The
// generated files double as CLI demo input and as a quick manual smoke
// corpus for the pipeline.
var samples = []struct {
	name    string
	format  domain.Format
	content string
}{
	{
		name:   "compose.yaml",
		format: domain.FormatDockerCompose,
		content: `version: "3.8"
services:
  web:
    image: nginx:alpine
    ports:
      - "8080:80"
    depends_on:
      - api
    networks:
      - frontend
  api:
    image: node:20
    environment:
      DATABASE_URL: postgres://db:5432/app
      LOG_LEVEL: info
    depends_on:
      - db
    networks:
      - frontend
      - backend
  db:
    image: postgres:16
    volumes:
      - pgdata:/var/lib/postgresql/data
    networks:
      - backend
networks:
  frontend:
  backend:
volumes:
  pgdata:
`,
	},
	{
		name:   "kubernetes.yaml",
		format: domain.FormatKubernetes,
		content: `apiVersion: apps/v1
kind: Deployment
metadata:
  name: web
  namespace: demo
spec:
  replicas: 2
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
---
apiVersion: v1
kind: Service
metadata:
  name: web
  namespace: demo
spec:
  type: ClusterIP
  selector:
    app: web
  ports:
    - port: 80
      targetPort: 80
---
apiVersion: v1
kind: ConfigMap
metadata:
  name: web-config
  namespace: demo
data:
  LOG_LEVEL: info
`,
	},
	{
		name:   "main.tf",
		format: domain.FormatTerraform,
		content: `provider "aws" {
  region = "eu-central-1"
}

variable "environment" {
  type    = string
  default = "production"
}

resource "aws_vpc" "main" {
  cidr_block = "10.0.0.0/16"
}

resource "aws_subnet" "app" {
  vpc_id     = aws_vpc.main.id
  cidr_block = "10.0.1.0/24"
}

resource "aws_instance" "web" {
  ami           = "ami-0d527b8c289b4af7f"
  instance_type = "t3.micro"
  subnet_id     = aws_subnet.app.id
}

resource "aws_db_instance" "primary" {
  engine         = "postgres"
  instance_class = "db.t3.medium"
  depends_on     = [aws_subnet.app]
}
`,
	},
	{
		name:   "cloudformation.yaml",
		format: domain.FormatCloudFormation,
		content: `AWSTemplateFormatVersion: "2010-09-09"
Description: Two-tier web stack
Parameters:
  EnvName:
    Type: String
    Default: prod
Resources:
  VPC:
    Type: AWS::EC2::VPC
  WebServer:
    Type: AWS::EC2::Instance
    DependsOn: VPC
  Database:
    Type: AWS::RDS::DBInstance
    DependsOn:
      - VPC
      - WebServer
  AssetBucket:
    Type: AWS::S3::Bucket
`,
	},
	{
		name:   "azure-deploy.json",
		format: domain.FormatAzureARM,
		content: `{
  "$schema": "https://schema.management.azure.com/schemas/2019-04-01/deploymentTemplate.json#",
  "contentVersion": "1.0.0.0",
  "resources": [
    {
      "type": "Microsoft.Network/virtualNetworks",
      "name": "vnet",
      "location": "westeurope"
    },
    {
      "type": "Microsoft.Compute/virtualMachines",
      "name": "vm1",
      "location": "westeurope",
      "dependsOn": [
        "[resourceId('Microsoft.Network/virtualNetworks', 'vnet')]"
      ]
    },
    {
      "type": "Microsoft.Web/sites",
      "name": "frontend",
      "kind": "app",
      "dependsOn": ["vnet"]
    }
  ]
}
`,
	},
	{
		name:   "ibm-topology.json",
		format: domain.FormatIBMCloud,
		content: `{
  "resources": [
    {"type": "ibm_is_vpc", "name": "vpc1"},
    {"type": "ibm_is_subnet", "name": "subnet1", "vpc": "${ibm_is_vpc.vpc1.id}", "zone": "eu-de-1"},
    {"type": "ibm_is_instance", "name": "web", "subnet": "${ibm_is_subnet.subnet1.id}", "profile": "bx2-2x8"},
    {"type": "ibm_is_floating_ip", "name": "fip", "target": "${ibm_is_instance.web.primary_network_interface.0.id}"}
  ],
  "data_sources": [
    {"type": "ibm_is_image", "name": "ubuntu"}
  ]
}
`,
	},
}

func main() {
	targetDir := "examples/documents"
	if len(os.Args) > 1 {
		targetDir = os.Args[1]
	}

	// Ensure dir exists
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		panic(err)
	}

	fmt.Printf("Generating sample documents in: %s\n", targetDir)

	fs := afs.New()
	pipeline := visualizer.New()
	ctx := context.TODO()

	for _, s := range samples {
		// Every sample must survive the full pipeline before it hits
		// disk; a demo file that fails to render is worse than none.
		res, err := pipeline.Generate(ctx, s.content)
		check(err)
		if res.Format != s.format {
			check(fmt.Errorf("%s: detected as %s, want %s", s.name, res.Format, s.format))
		}

		err = fs.Upload(ctx, filepath.Join(targetDir, s.name), file.DefaultFileOsMode, strings.NewReader(s.content))
		check(err)
		fmt.Printf("  %-22s %s\n", s.name, s.format)
	}

	fmt.Println("Done. Verify contents in", targetDir)
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
