/*
Package visualizer turns infrastructure-as-code documents into Mermaid
architecture diagrams. It detects the input dialect, validates the
document, and emits deterministic graph markup ready for any Mermaid
renderer.

# Concept

The pipeline is a pure text-to-text computation: raw IaC text goes in,
Mermaid markup comes out. Format is discovered, never declared: an
ordered cascade of structural checks places each document as Docker
Compose, Kubernetes, Terraform, AWS CloudFormation, Azure ARM, or IBM
Cloud. This Hexagonal Architecture keeps the core free of I/O: the CLI,
HTTP API and MCP server are thin adapters over the same Pipeline.

# Key Features

  - Format auto-detection: six IaC dialects recognized structurally, no
    file extensions or hints required.
  - Deterministic output: identical input yields byte-identical markup,
    safe to diff and cache.
  - Validation before rendering: structural errors block generation,
    warnings ride along with the result.
  - Enriched diagrams: grouped containers, multi-line node labels with
    salient attributes, typed dependency edges, and a fixed style
    palette.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		visualizer "github.com/flori950/Architecture-as-Code-Visualizer"
	)

	func main() {
		pipeline := visualizer.New()

		compose := "version: '3.8'\n" +
			"services:\n" +
			"  web:\n" +
			"    image: nginx\n" +
			"    depends_on:\n" +
			"      - api\n" +
			"  api:\n" +
			"    image: node:20\n"

		res, err := pipeline.Generate(context.Background(), compose)
		if err != nil {
			log.Fatal(err)
		}

		for _, issue := range res.Issues {
			log.Printf("%s: %s", issue.Severity, issue.Message)
		}
		fmt.Println(res.Markup)
	}
*/
package visualizer
