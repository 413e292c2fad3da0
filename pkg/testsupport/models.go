package testsupport

import (
	"fmt"

	pkgmodel "github.com/goliatone/go-propgen/pkg/model"
)

// MarkupModel is a single Card definition and instance whose values carry
// markup characters, an unknown property kind and two keys that clean to
// the same name ("Size" and "size#9:9").
func MarkupModel() pkgmodel.Model {
	return pkgmodel.Model{
		Components: map[string]pkgmodel.Component{"2:1": {
			ID: "2:1", Name: "Card", Definition: "1:1",
			Properties: map[string]pkgmodel.PropertyValue{
				"Title#1:2": {Name: "title", Type: pkgmodel.KindText, Value: pkgmodel.StringValue("Q & <A>")},
				"Pin#1:3":   {Name: "pin", Type: pkgmodel.KindExplicit, Value: pkgmodel.StringValue("<P>"), Default: true},
				"Extra#1:4": {Name: "extra", Type: "SLOT", Value: pkgmodel.StringValue("<x>")},
				"Size":      {Name: "size", Type: pkgmodel.KindVariant, Value: pkgmodel.StringValue("lg")},
				"size#9:9":  {Name: "size", Type: pkgmodel.KindText, Value: pkgmodel.StringValue("y")},
			},
		}},
		Definitions: map[string]pkgmodel.Definitions{"1:1": {
			"Title#1:2": {Name: "title", Type: pkgmodel.KindText, DefaultValue: pkgmodel.StringValue("A & <b>")},
			"Pin#1:3":   {Name: "pin", Type: pkgmodel.KindExplicit, DefaultValue: pkgmodel.StringValue("<P>")},
			"Extra#1:4": {Name: "extra", Type: "SLOT", DefaultValue: pkgmodel.StringValue("")},
			"Size":      {Name: "size", Type: pkgmodel.KindVariant, DefaultValue: pkgmodel.StringValue("sm"), VariantOptions: []string{"sm", "lg"}},
			"size#9:9":  {Name: "size", Type: pkgmodel.KindText, DefaultValue: pkgmodel.StringValue("x")},
		}},
		Metas:      map[string]pkgmodel.ComponentMeta{"1:1": {ID: "1:1", Name: "Card"}},
		References: map[string]pkgmodel.ReferenceMap{"1:1": {}},
	}
}

// WideModel builds the given number of definitions with one instance each.
// Every definition has keys properties spread over the known kinds, and
// display names repeat so ordering falls back to ids.
func WideModel(definitions, keys int) pkgmodel.Model {
	m := pkgmodel.Model{
		Components:  make(map[string]pkgmodel.Component),
		Definitions: make(map[string]pkgmodel.Definitions),
		Metas:       make(map[string]pkgmodel.ComponentMeta),
		References:  make(map[string]pkgmodel.ReferenceMap),
	}
	for d := 0; d < definitions; d++ {
		id := fmt.Sprintf("%d:1", d+1)
		defs := make(pkgmodel.Definitions, keys)
		values := make(map[string]pkgmodel.PropertyValue, keys)
		for k := 0; k < keys; k++ {
			key := fmt.Sprintf("Prop %d#%d:%d", k, d+1, k+2)
			def, value := wideProperty(k)
			def.Name = pkgmodel.PropertyName(key)
			value.Name = def.Name
			defs[key] = def
			values[key] = value
		}
		m.Definitions[id] = defs
		m.Metas[id] = pkgmodel.ComponentMeta{ID: id, Name: fmt.Sprintf("Widget%d", d%3)}
		m.References[id] = pkgmodel.ReferenceMap{}
		m.Components[fmt.Sprintf("%d:9", d+1)] = pkgmodel.Component{
			ID:         fmt.Sprintf("%d:9", d+1),
			Name:       m.Metas[id].Name,
			Definition: id,
			Properties: values,
		}
	}
	return m
}

func wideProperty(k int) (pkgmodel.PropertyDefinition, pkgmodel.PropertyValue) {
	switch k % 5 {
	case 0:
		return pkgmodel.PropertyDefinition{Type: pkgmodel.KindBoolean, DefaultValue: pkgmodel.BoolValue(false)},
			pkgmodel.PropertyValue{Type: pkgmodel.KindBoolean, Value: pkgmodel.BoolValue(k%2 == 0)}
	case 1:
		return pkgmodel.PropertyDefinition{Type: pkgmodel.KindNumber, DefaultValue: pkgmodel.NumberValue(1)},
			pkgmodel.PropertyValue{Type: pkgmodel.KindNumber, Value: pkgmodel.NumberValue(float64(k))}
	case 2:
		return pkgmodel.PropertyDefinition{Type: pkgmodel.KindVariant, DefaultValue: pkgmodel.StringValue("a"), VariantOptions: []string{"a", "b"}},
			pkgmodel.PropertyValue{Type: pkgmodel.KindVariant, Value: pkgmodel.StringValue("b")}
	case 3:
		return pkgmodel.PropertyDefinition{Type: pkgmodel.KindText, DefaultValue: pkgmodel.StringValue("t")},
			pkgmodel.PropertyValue{Type: pkgmodel.KindText, Value: pkgmodel.StringValue(fmt.Sprintf("text %d", k))}
	default:
		return pkgmodel.PropertyDefinition{Type: pkgmodel.KindExplicit, DefaultValue: pkgmodel.StringValue("pinned")},
			pkgmodel.PropertyValue{Type: pkgmodel.KindExplicit, Value: pkgmodel.StringValue("pinned"), Default: true}
	}
}
