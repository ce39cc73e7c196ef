/*
Package domain contains the core domain models of the visualizer pipeline.

It defines the fundamental entities shared by every stage: the Format label
produced by classification, the parsed Document, validation Issues and the
aggregated Report, and the diagram Result handed back to callers. This
package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Format: One of the supported infrastructure-as-code dialects.
  - Document: A parsed source file (generic tree plus optional Terraform IR).
  - Issue / Report: Validation findings with error or warning severity.
  - Result: Generated diagram markup together with its rendering kind.
*/
package domain
