package render

import "github.com/goliatone/go-propgen/pkg/scene"

// Options describe per-run inputs that renderers use without mutating the
// model.
type Options struct {
	// Resolver looks up instance-swap targets by node id. A nil Resolver
	// resolves nothing, so every swap falls back to its raw id.
	Resolver scene.Resolver
	// InstanceSettings toggles the instance pass (showDefaults,
	// explicitBoolean). Missing keys take their defaults.
	InstanceSettings Settings
	// DefinitionSettings toggles the definitions pass for renderers that
	// expose definition settings (optionsApi for Vue).
	DefinitionSettings Settings
}

// Resolve looks id up through the configured resolver.
func (o Options) Resolve(id string) (*scene.Node, bool) {
	return resolve(o.Resolver, id)
}

func resolve(resolver scene.Resolver, id string) (*scene.Node, bool) {
	if resolver == nil || id == "" {
		return nil, false
	}
	node, ok := resolver.Resolve(id)
	if !ok || node == nil {
		return nil, false
	}
	return node, true
}
