// Package scene describes the design-tool node tree consumed by the property
// model builder. Nodes arrive as JSON or YAML documents exported from the host
// application; loaders fetch the raw payload from files, an fs.FS or HTTP and
// parsers turn it into a linked Tree whose instances point at their backing
// component definitions.
package scene
