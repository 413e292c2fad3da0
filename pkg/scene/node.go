package scene

// NodeType tags a node in the host tree.
type NodeType string

const (
	// NodeTypeComponent is a reusable component definition. Inside a
	// component set it is one variant of the set.
	NodeTypeComponent NodeType = "COMPONENT"
	// NodeTypeComponentSet groups variant components under one definition.
	NodeTypeComponentSet NodeType = "COMPONENT_SET"
	// NodeTypeInstance is a placement of a component.
	NodeTypeInstance NodeType = "INSTANCE"
)

// RawPropertyDefinition is the host's loosely typed schema entry for one
// property key. DefaultValue may hold a bool, a number or a string.
type RawPropertyDefinition struct {
	Type           string   `json:"type" yaml:"type"`
	DefaultValue   any      `json:"defaultValue" yaml:"defaultValue"`
	VariantOptions []string `json:"variantOptions,omitempty" yaml:"variantOptions,omitempty"`
}

// RawPropertyValue is the host's value for one property on one instance.
type RawPropertyValue struct {
	Type  string `json:"type" yaml:"type"`
	Value any    `json:"value" yaml:"value"`
}

// PropertyReferences binds node attributes to property keys. Visible and
// Characters name the keys driving the node's visibility and text content;
// MainComponent names the instance-swap key that chooses the node's backing
// component.
type PropertyReferences struct {
	Visible       string `json:"visible,omitempty" yaml:"visible,omitempty"`
	Characters    string `json:"characters,omitempty" yaml:"characters,omitempty"`
	MainComponent string `json:"mainComponent,omitempty" yaml:"mainComponent,omitempty"`
}

// Node mirrors the subset of the host node contract the builder reads.
// MainComponentID is the serialized link to an instance's component; parsers
// resolve it into MainComponent and populate Parent pointers.
type Node struct {
	ID                           string                           `json:"id" yaml:"id"`
	Name                         string                           `json:"name" yaml:"name"`
	Type                         NodeType                         `json:"type" yaml:"type"`
	Children                     []*Node                          `json:"children,omitempty" yaml:"children,omitempty"`
	ComponentPropertyDefinitions map[string]RawPropertyDefinition `json:"componentPropertyDefinitions,omitempty" yaml:"componentPropertyDefinitions,omitempty"`
	ComponentProperties          map[string]RawPropertyValue      `json:"componentProperties,omitempty" yaml:"componentProperties,omitempty"`
	MainComponentID              string                           `json:"mainComponent,omitempty" yaml:"mainComponent,omitempty"`
	ComponentPropertyReferences  *PropertyReferences              `json:"componentPropertyReferences,omitempty" yaml:"componentPropertyReferences,omitempty"`

	MainComponent *Node `json:"-" yaml:"-"`
	Parent        *Node `json:"-" yaml:"-"`
}

// IsInstance reports whether the node is an instance placement.
func (n *Node) IsInstance() bool {
	return n != nil && n.Type == NodeTypeInstance
}

// IsComponentSet reports whether the node is a variant group.
func (n *Node) IsComponentSet() bool {
	return n != nil && n.Type == NodeTypeComponentSet
}

// IsComponent reports whether the node is a component definition.
func (n *Node) IsComponent() bool {
	return n != nil && n.Type == NodeTypeComponent
}

// Resolver maps node ids to nodes. It is the lookup collaborator used to
// resolve instance-swap targets at render time.
type Resolver interface {
	Resolve(id string) (*Node, bool)
}

// ResolverFunc adapts a function into a Resolver.
type ResolverFunc func(id string) (*Node, bool)

// Resolve calls the underlying function.
func (fn ResolverFunc) Resolve(id string) (*Node, bool) {
	if fn == nil {
		return nil, false
	}
	return fn(id)
}

// MapResolver resolves ids from a fixed table.
type MapResolver map[string]*Node

// Resolve returns the node stored under id.
func (m MapResolver) Resolve(id string) (*Node, bool) {
	node, ok := m[id]
	if !ok || node == nil {
		return nil, false
	}
	return node, true
}
