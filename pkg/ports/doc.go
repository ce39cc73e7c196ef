/*
Package ports defines the driven ports (interfaces) of the visualizer.

These interfaces decouple the pipeline from external implementations,
allowing adapters to swap how documents are fetched and how individual
formats are rendered.

# Key Interfaces

  - Generator: Renders one classified document format as diagram markup.
  - SourceLoader: Fetches raw document text from a location.
*/
package ports
