// Package template defines the renderer-agnostic template seam used by the
// declaration passes. The pongo2 implementation lives in the gotemplate
// subpackage.
package template
