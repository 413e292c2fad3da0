package render

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-propgen/pkg/model"
	"github.com/goliatone/go-propgen/pkg/scene"
)

// AttributeFormatter renders one property as a tag attribute. key is the raw
// property key and value.Name the collision-free name to emit (see
// AttributeName). An empty result omits the property.
type AttributeFormatter func(value model.PropertyValue, key string, explicitBoolean bool, resolver scene.Resolver) string

// Slot is a property routed into element content instead of an attribute.
type Slot struct {
	Key string
	// Name is the cleaned property name.
	Name string
	// Content is the text, or the element markup when Element is set.
	Content string
	Element bool
}

// SlotFormatter renders one slot given how many slots the element has. The
// result may span several lines; FormatInstance indents them when the element
// holds more than one slot.
type SlotFormatter func(slot Slot, slotCount int) string

// InstanceFormat is the target specific half of the instance pass.
type InstanceFormat struct {
	Attribute AttributeFormatter
	Slot      SlotFormatter
	// SelfClosing renders slotless elements as <Tag />.
	SelfClosing bool
	// InstanceSlots routes resolved instance swaps into slots.
	InstanceSlots bool
	// TextFilter rewrites text slot content, e.g. to sanitize it.
	TextFilter func(string) string
}

// InstanceSettings are the decoded instance toggles.
type InstanceSettings struct {
	ShowDefaults    bool
	ExplicitBoolean bool
}

// DecodeInstanceSettings reads the instance toggles, applying defaults for
// missing keys.
func DecodeInstanceSettings(settings Settings) InstanceSettings {
	merged := Merge(DefaultInstanceSettings(), settings)
	return InstanceSettings{
		ShowDefaults:    merged.Bool(SettingShowDefaults),
		ExplicitBoolean: merged.Bool(SettingExplicitBoolean),
	}
}

// SortedComponents returns the model's components ordered by display name,
// then id.
func SortedComponents(m model.Model) []model.Component {
	out := make([]model.Component, 0, len(m.Components))
	for _, component := range m.Components {
		out = append(out, component)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// SortedPropertyKeys orders keys by cleaned property name, then raw key.
func SortedPropertyKeys[V any](in map[string]V) []string {
	keys := make([]string, 0, len(in))
	for key := range in {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, nj := model.PropertyName(keys[i]), model.PropertyName(keys[j])
		if ni != nj {
			return ni < nj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// PropertyNames maps every key of in to its cleaned property name. When
// several keys clean to the same name, the first key in SortedPropertyKeys
// order keeps it and later keys get the lowest free numeric suffix ("size",
// "size2").
func PropertyNames[V any](in map[string]V) map[string]string {
	reserved := make(map[string]bool, len(in))
	for key := range in {
		reserved[model.PropertyName(key)] = true
	}

	names := make(map[string]string, len(in))
	assigned := make(map[string]bool, len(in))
	for _, key := range SortedPropertyKeys(in) {
		name := model.PropertyName(key)
		if assigned[name] {
			for n := 2; ; n++ {
				candidate := name + strconv.Itoa(n)
				if !reserved[candidate] && !assigned[candidate] {
					name = candidate
					break
				}
			}
		}
		assigned[name] = true
		names[key] = name
	}
	return names
}

// AttributeName is the name an attribute formatter should emit for value.
func AttributeName(value model.PropertyValue, key string) string {
	if value.Name != "" {
		return value.Name
	}
	return model.PropertyName(key)
}

func instanceKeys(defs model.Definitions, values map[string]model.PropertyValue) map[string]struct{} {
	keys := make(map[string]struct{}, len(defs)+len(values))
	for key := range defs {
		keys[key] = struct{}{}
	}
	for key := range values {
		keys[key] = struct{}{}
	}
	return keys
}

// FormatInstance renders a single component as markup. Attribute and slot
// names come from PropertyNames over the definition and instance keys, so
// they match the declarations pass.
func FormatInstance(c model.Component, m model.Model, format InstanceFormat, settings InstanceSettings, resolver scene.Resolver) string {
	defs := m.Definitions[c.Definition]
	refs := m.References[c.Definition]

	var (
		attrs []string
		slots []Slot
	)
	names := PropertyNames(instanceKeys(defs, c.Properties))
	for _, key := range SortedPropertyKeys(c.Properties) {
		value := c.Properties[key]
		value.Name = names[key]
		if def, ok := defs[key]; ok && def.Hidden {
			continue
		}
		if value.Undefined {
			continue
		}
		if slot, ok := slotFor(value, key, refs, format, resolver); ok {
			slots = append(slots, slot)
			continue
		}
		if value.Default && !settings.ShowDefaults {
			continue
		}
		if format.Attribute == nil {
			continue
		}
		if attr := format.Attribute(value, key, settings.ExplicitBoolean, resolver); attr != "" {
			attrs = append(attrs, attr)
		}
	}

	open := c.Name
	if len(attrs) > 0 {
		open += " " + strings.Join(attrs, " ")
	}

	switch len(slots) {
	case 0:
		if format.SelfClosing {
			return "<" + open + " />"
		}
		return "<" + open + "></" + c.Name + ">"
	case 1:
		return "<" + open + ">" + formatSlot(format, slots[0], 1) + "</" + c.Name + ">"
	}

	var b strings.Builder
	b.WriteString("<" + open + ">")
	for _, slot := range slots {
		for _, line := range strings.Split(formatSlot(format, slot, len(slots)), "\n") {
			b.WriteString("\n  " + line)
		}
	}
	b.WriteString("\n</" + c.Name + ">")
	return b.String()
}

func slotFor(value model.PropertyValue, key string, refs model.ReferenceMap, format InstanceFormat, resolver scene.Resolver) (Slot, bool) {
	name := AttributeName(value, key)
	switch value.Type {
	case model.KindText:
		if !refs.IsTextBound(key) {
			return Slot{}, false
		}
		text := value.Value.Text()
		if format.TextFilter != nil {
			text = format.TextFilter(text)
		}
		return Slot{Key: key, Name: name, Content: text}, true
	case model.KindInstanceSwap:
		if !format.InstanceSlots {
			return Slot{}, false
		}
		target, ok := ResolveName(resolver, value.Value.Text())
		if !ok {
			return Slot{}, false
		}
		return Slot{Key: key, Name: name, Content: "<" + target + " />", Element: true}, true
	}
	return Slot{}, false
}

func formatSlot(format InstanceFormat, slot Slot, count int) string {
	if format.Slot == nil {
		return slot.Content
	}
	return format.Slot(slot, count)
}

// ResolveName looks up id and returns the capitalized display name of the
// node it names.
func ResolveName(resolver scene.Resolver, id string) (string, bool) {
	node, ok := resolve(resolver, id)
	if !ok {
		return "", false
	}
	return model.CapitalizedName(node.Name), true
}
