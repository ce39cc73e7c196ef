package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
)

const cfnTemplate = `AWSTemplateFormatVersion: "2010-09-09"
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
`

func TestCloudFormationNodes(t *testing.T) {
	markup := generate(t, domain.FormatCloudFormation, cfnTemplate)

	assert.Contains(t, markup, "graph TD")
	assert.Contains(t, markup, "<b>VPC</b><br/>AWS::EC2::VPC")
	assert.Contains(t, markup, "<b>WebServer</b><br/>AWS::EC2::Instance")
	assert.Contains(t, markup, "<b>Database</b><br/>AWS::RDS::DBInstance")
	assert.NotContains(t, markup, "subgraph")
}

func TestCloudFormationDependsOnEdges(t *testing.T) {
	markup := generate(t, domain.FormatCloudFormation, cfnTemplate)

	// String and list forms both resolve, dependency pointing at
	// dependent.
	assert.Contains(t, markup, "VPC -->|depends on| WebServer")
	assert.Contains(t, markup, "VPC -->|depends on| Database")
	assert.Contains(t, markup, "WebServer -->|depends on| Database")
}

func TestCloudFormationParameters(t *testing.T) {
	markup := generate(t, domain.FormatCloudFormation, cfnTemplate)

	assert.Contains(t, markup, "param_EnvName")
	assert.Contains(t, markup, "type: String")
	assert.Contains(t, markup, "default: prod")
	assert.Contains(t, markup, "class param_EnvName config;")
	// Parameters are standalone; nothing connects to them.
	assert.NotContains(t, markup, "param_EnvName -->")
	assert.NotContains(t, markup, "| param_EnvName")
}

func TestCloudFormationClassTagging(t *testing.T) {
	markup := generate(t, domain.FormatCloudFormation, cfnTemplate)

	assert.Contains(t, markup, "class VPC network;")
	assert.Contains(t, markup, "class WebServer compute;")
	assert.Contains(t, markup, "class Database database;")
}

func TestCloudFormationJSONTemplate(t *testing.T) {
	src := `{
  "AWSTemplateFormatVersion": "2010-09-09",
  "Resources": {
    "Bucket": {"Type": "AWS::S3::Bucket"},
    "Queue": {"Type": "AWS::SQS::Queue", "DependsOn": "Bucket"}
  }
}`
	markup := generate(t, domain.FormatCloudFormation, src)

	assert.Contains(t, markup, "<b>Bucket</b><br/>AWS::S3::Bucket")
	assert.Contains(t, markup, "Bucket -->|depends on| Queue")
	assert.Contains(t, markup, "class Bucket storage;")
	assert.Contains(t, markup, "class Queue queue;")
}
