package model

import "github.com/goliatone/go-propgen/pkg/scene"

// IndexReferences walks every descendant of root in pre-order and records the
// property keys bound to visibility, text content and backing components.
// The root's own bindings are not read. Running it twice on the same subtree
// yields equal maps.
func IndexReferences(root *scene.Node) ReferenceMap {
	refs := ReferenceMap{
		Instances:  make(map[string]InstanceBinding),
		Properties: make(map[string]PropertyBinding),
	}
	if root == nil {
		return refs
	}

	scene.Walk(root.Children, func(node *scene.Node) bool {
		bindings := node.ComponentPropertyReferences
		if bindings == nil {
			return true
		}
		if bindings.MainComponent != "" {
			refs.Instances[bindings.MainComponent] = InstanceBinding{
				Visible:    bindings.Visible,
				Characters: bindings.Characters,
			}
		}
		if bindings.Characters != "" {
			binding := refs.Properties[bindings.Characters]
			binding.Characters = true
			refs.Properties[bindings.Characters] = binding
		}
		if bindings.Visible != "" {
			binding := refs.Properties[bindings.Visible]
			binding.Visible = true
			refs.Properties[bindings.Visible] = binding
		}
		return true
	})

	return refs
}
