package model

// PropertyKind is the canonical kind of a component property.
type PropertyKind string

const (
	KindBoolean      PropertyKind = "BOOLEAN"
	KindNumber       PropertyKind = "NUMBER"
	KindText         PropertyKind = "TEXT"
	KindVariant      PropertyKind = "VARIANT"
	KindExplicit     PropertyKind = "EXPLICIT"
	KindInstanceSwap PropertyKind = "INSTANCE_SWAP"
)

// Known reports whether k is one of the six canonical kinds. Kinds the host
// adds in the future pass through normalization verbatim and take the
// fallback branches of every formatter.
func (k PropertyKind) Known() bool {
	switch k {
	case KindBoolean, KindNumber, KindText, KindVariant, KindExplicit, KindInstanceSwap:
		return true
	}
	return false
}

// PropertyDefinition is the canonical schema for one property key on a
// definition. DefaultValue is a Bool for BOOLEAN, a Number for NUMBER, an
// inferred value for EXPLICIT and a String otherwise. VariantOptions is only
// set for VARIANT.
type PropertyDefinition struct {
	Name           string       `json:"name"`
	Type           PropertyKind `json:"type"`
	DefaultValue   Value        `json:"defaultValue"`
	VariantOptions []string     `json:"variantOptions,omitempty"`
	// Hidden marks a property that only toggles the visibility of an
	// instance-swap slot; it is folded into that slot and not emitted.
	Hidden bool `json:"hidden,omitempty"`
	// Optional marks an instance-swap property whose visibility toggle
	// defaults to off, so its default is undefined.
	Optional bool `json:"optional,omitempty"`
}

// Definitions maps property keys to their canonical definitions.
type Definitions map[string]PropertyDefinition

// PropertyValue is the canonical value of one property on one component.
type PropertyValue struct {
	Name    string       `json:"name"`
	Type    PropertyKind `json:"type"`
	Value   Value        `json:"value"`
	Default bool         `json:"default"`
	// Undefined is set on instance-swap values hidden by their visibility
	// toggle on this instance.
	Undefined bool `json:"undefined,omitempty"`
}

// ComponentMeta names a definition.
type ComponentMeta struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Component is one processed node. Definition is a lookup key into the
// model's Definitions, Metas and References maps.
type Component struct {
	ID         string                   `json:"id"`
	Name       string                   `json:"name"`
	Definition string                   `json:"definition"`
	Properties map[string]PropertyValue `json:"properties"`
}

// InstanceBinding records which property keys drive the visibility and text
// of a node whose backing component is chosen by an instance-swap property.
type InstanceBinding struct {
	Visible    string `json:"visible,omitempty"`
	Characters string `json:"characters,omitempty"`
}

// PropertyBinding records which binding kinds a property key participates in.
type PropertyBinding struct {
	Visible    bool `json:"visible,omitempty"`
	Characters bool `json:"characters,omitempty"`
}

// ReferenceMap indexes the structural reference bindings found under one
// definition. Instances is keyed by the instance-swap property key bound
// through a node's mainComponent reference; Properties is the reverse index
// keyed by any bound property key.
type ReferenceMap struct {
	Instances  map[string]InstanceBinding `json:"instances"`
	Properties map[string]PropertyBinding `json:"properties"`
}

// IsTextBound reports whether key drives some descendant's text content.
func (r ReferenceMap) IsTextBound(key string) bool {
	return r.Properties[key].Characters
}

// IsVisibilityBound reports whether key drives some descendant's visibility.
func (r ReferenceMap) IsVisibilityBound(key string) bool {
	return r.Properties[key].Visible
}

// Model is the canonical property model shared by every renderer. Every
// Component.Definition is a key of Definitions, Metas and References.
type Model struct {
	Components  map[string]Component     `json:"components"`
	Definitions map[string]Definitions   `json:"definitions"`
	Metas       map[string]ComponentMeta `json:"metas"`
	References  map[string]ReferenceMap  `json:"references"`
}
