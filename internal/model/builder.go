package model

import (
	"sort"

	"github.com/goliatone/go-propgen/pkg/scene"
)

const unnamedComponent = "Unnamed Component"

// Builder assembles the canonical model from host nodes.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if options.Namer != nil {
		opts.Namer = options.Namer
	}
	if options.Logger != nil {
		opts.Logger = options.Logger
	}
	return &Builder{opts: opts}
}

// Build processes nodes in order. Definitions and references are computed
// once per definition id (the first node to reach a definition wins); metas
// are rewritten by every node. Build never fails: malformed input degrades to
// opaque values.
func (b *Builder) Build(nodes []*scene.Node) Model {
	acc := newAssembly()
	for _, node := range nodes {
		if node == nil {
			continue
		}
		component := b.component(acc, node)
		acc.components[component.ID] = component
	}
	return acc.model()
}

// assembly accumulates the output maps of a single Build call.
type assembly struct {
	components  map[string]Component
	definitions map[string]Definitions
	metas       map[string]ComponentMeta
	references  map[string]ReferenceMap
}

func newAssembly() *assembly {
	return &assembly{
		components:  make(map[string]Component),
		definitions: make(map[string]Definitions),
		metas:       make(map[string]ComponentMeta),
		references:  make(map[string]ReferenceMap),
	}
}

func (a *assembly) model() Model {
	return Model{
		Components:  a.components,
		Definitions: a.definitions,
		Metas:       a.metas,
		References:  a.references,
	}
}

func (b *Builder) component(acc *assembly, node *scene.Node) Component {
	defNode := DefinitionNode(node)

	id, label := "", unnamedComponent
	if defNode != nil {
		id = defNode.ID
		if defNode.Name != "" {
			label = defNode.Name
		}
	} else {
		b.opts.Logger.Debug("instance has no main component", "node", node.ID)
	}
	name := b.opts.Namer(label)

	defs, ok := acc.definitions[id]
	if !ok {
		defs = NormalizeDefinitions(definitionSchema(defNode))
		refs := IndexReferences(defNode)
		foldVisibilityToggles(defs, refs)
		b.logUnknownKinds(id, defs)
		acc.definitions[id] = defs
		acc.references[id] = refs
	}
	acc.metas[id] = ComponentMeta{ID: id, Name: name}

	raw := rawValues(node)
	for _, key := range sortedKeys(raw) {
		if _, known := defs[key]; !known {
			b.opts.Logger.Debug("property value has no definition, treating as text",
				"node", node.ID, "definition", id, "key", key)
		}
	}
	values := NormalizeValues(defs, raw)
	markHiddenSwaps(values, defs, acc.references[id])

	return Component{
		ID:         node.ID,
		Name:       name,
		Definition: id,
		Properties: values,
	}
}

func (b *Builder) logUnknownKinds(id string, defs Definitions) {
	for _, key := range sortedKeys(defs) {
		if kind := defs[key].Type; !kind.Known() {
			b.opts.Logger.Debug("unknown property kind", "definition", id, "key", key, "kind", string(kind))
		}
	}
}

// DefinitionNode returns the node that owns the property schema for node: an
// instance's main component, or that component's set when it is a variant;
// any other node owns its own schema.
func DefinitionNode(node *scene.Node) *scene.Node {
	if node == nil {
		return nil
	}
	if !node.IsInstance() {
		return node
	}
	main := node.MainComponent
	if main == nil {
		return nil
	}
	if main.Parent.IsComponentSet() {
		return main.Parent
	}
	return main
}

func definitionSchema(defNode *scene.Node) map[string]scene.RawPropertyDefinition {
	if defNode == nil {
		return nil
	}
	return defNode.ComponentPropertyDefinitions
}

// rawValues returns an instance's own values, or a definition's defaults
// expressed as values.
func rawValues(node *scene.Node) map[string]scene.RawPropertyValue {
	if node.IsInstance() {
		return node.ComponentProperties
	}
	values := make(map[string]scene.RawPropertyValue, len(node.ComponentPropertyDefinitions))
	for key, def := range node.ComponentPropertyDefinitions {
		values[key] = scene.RawPropertyValue{Type: def.Type, Value: def.DefaultValue}
	}
	return values
}

// foldVisibilityToggles hides boolean properties that only toggle an
// instance-swap slot and marks the slot optional when the toggle defaults
// to off.
func foldVisibilityToggles(defs Definitions, refs ReferenceMap) {
	for swapKey, binding := range refs.Instances {
		swap, toggle, ok := toggledSwap(defs, swapKey, binding)
		if !ok {
			continue
		}
		toggle.Hidden = true
		defs[binding.Visible] = toggle
		if on, _ := toggle.DefaultValue.Bool(); !on {
			swap.Optional = true
			defs[swapKey] = swap
		}
	}
}

// markHiddenSwaps flags instance-swap values whose toggle is off on this
// component.
func markHiddenSwaps(values map[string]PropertyValue, defs Definitions, refs ReferenceMap) {
	for swapKey, binding := range refs.Instances {
		if _, _, ok := toggledSwap(defs, swapKey, binding); !ok {
			continue
		}
		swap, hasSwap := values[swapKey]
		toggle, hasToggle := values[binding.Visible]
		if !hasSwap || !hasToggle {
			continue
		}
		if on, _ := toggle.Value.Bool(); !on {
			swap.Undefined = true
			values[swapKey] = swap
		}
	}
}

func toggledSwap(defs Definitions, swapKey string, binding InstanceBinding) (PropertyDefinition, PropertyDefinition, bool) {
	if binding.Visible == "" {
		return PropertyDefinition{}, PropertyDefinition{}, false
	}
	swap, ok := defs[swapKey]
	if !ok || swap.Type != KindInstanceSwap {
		return PropertyDefinition{}, PropertyDefinition{}, false
	}
	toggle, ok := defs[binding.Visible]
	if !ok || toggle.Type != KindBoolean {
		return PropertyDefinition{}, PropertyDefinition{}, false
	}
	return swap, toggle, true
}

func sortedKeys[V any](in map[string]V) []string {
	keys := make([]string, 0, len(in))
	for key := range in {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
