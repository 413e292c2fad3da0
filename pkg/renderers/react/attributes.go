package react

import (
	"github.com/goliatone/go-propgen/pkg/model"
	"github.com/goliatone/go-propgen/pkg/render"
	"github.com/goliatone/go-propgen/pkg/scene"
)

func formatAttribute(value model.PropertyValue, key string, explicitBoolean bool, resolver scene.Resolver) string {
	clean := render.AttributeName(value, key)
	switch value.Type {
	case model.KindBoolean:
		if explicitBoolean {
			return clean + "={" + value.Value.Text() + "}"
		}
		if on, _ := value.Value.Bool(); on {
			return clean
		}
		return ""
	case model.KindNumber:
		return clean + "={" + value.Value.Text() + "}"
	case model.KindInstanceSwap:
		id := value.Value.Text()
		if name, ok := render.ResolveName(resolver, id); ok {
			return clean + "={<" + name + " />}"
		}
		return clean + `="` + render.EscapeAttribute(id) + `"`
	case model.KindText, model.KindVariant, model.KindExplicit:
		return clean + `="` + render.EscapeAttribute(value.Value.Text()) + `"`
	default:
		return clean + "={" + render.InlineJSON(value.Value) + "}"
	}
}

// formatSlot inlines a lone slot; JSX has no named slots, so several slots
// become sibling spans.
func formatSlot(slot render.Slot, slotCount int) string {
	if slotCount == 1 || slot.Element {
		return slot.Content
	}
	return "<span>" + slot.Content + "</span>"
}
