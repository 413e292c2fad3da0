package vue

import (
	"strings"

	"github.com/goliatone/go-propgen/pkg/model"
	"github.com/goliatone/go-propgen/pkg/render"
	"github.com/goliatone/go-propgen/pkg/scene"
)

func formatAttribute(value model.PropertyValue, key string, explicitBoolean bool, resolver scene.Resolver) string {
	clean := render.AttributeName(value, key)
	switch value.Type {
	case model.KindBoolean:
		if explicitBoolean {
			return ":" + clean + `="` + value.Value.Text() + `"`
		}
		if on, _ := value.Value.Bool(); on {
			return clean
		}
		return ""
	case model.KindNumber:
		return ":" + clean + `="` + value.Value.Text() + `"`
	case model.KindInstanceSwap:
		// Resolved swaps are routed into slots before reaching here.
		id := value.Value.Text()
		if name, ok := render.ResolveName(resolver, id); ok {
			return ":" + clean + `="` + name + `"`
		}
		return clean + `="` + render.EscapeAttribute(id) + `"`
	case model.KindText, model.KindVariant, model.KindExplicit:
		return clean + `="` + render.EscapeAttribute(value.Value.Text()) + `"`
	default:
		return ":" + clean + "='" + strings.ReplaceAll(render.InlineJSON(value.Value), "'", "&#39;") + "'"
	}
}

// formatSlot inlines a lone slot and wraps each of several slots in a named
// template block.
func formatSlot(slot render.Slot, slotCount int) string {
	if slotCount == 1 {
		return slot.Content
	}
	return "<template v-slot:" + slot.Name + ">\n  " + slot.Content + "\n</template>"
}
