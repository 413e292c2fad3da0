package model

import (
	"github.com/goliatone/go-propgen/internal/coerce"
	"github.com/goliatone/go-propgen/pkg/scene"
)

// NormalizeValues converts host property values into canonical values, using
// each key's definition as the coercion authority. Keys without a definition
// are kept as opaque TEXT.
func NormalizeValues(defs Definitions, raw map[string]scene.RawPropertyValue) map[string]PropertyValue {
	values := make(map[string]PropertyValue, len(raw))
	for key, value := range raw {
		def, ok := defs[key]
		if !ok {
			values[key] = opaqueValue(key, value)
			continue
		}
		values[key] = NormalizeValue(key, def, value)
	}
	return values
}

// NormalizeValue coerces one raw value by the definition's kind rather than
// the kind the host declared on the value, so every instance of a definition
// reports the same primitive for a key.
func NormalizeValue(key string, def PropertyDefinition, raw scene.RawPropertyValue) PropertyValue {
	text := coerce.Text(raw.Value)

	var value Value
	switch def.Type {
	case KindBoolean:
		value = BoolValue(coerce.AsBoolean(text))
	case KindNumber:
		value = NumberValue(coerce.AsNumber(text))
	case KindExplicit:
		value = InferValue(text)
	default:
		value = StringValue(text)
	}

	return PropertyValue{
		Name:    PropertyName(key),
		Type:    def.Type,
		Value:   value,
		Default: value.Equal(def.DefaultValue),
	}
}

func opaqueValue(key string, raw scene.RawPropertyValue) PropertyValue {
	return PropertyValue{
		Name:  PropertyName(key),
		Type:  KindText,
		Value: StringValue(coerce.Text(raw.Value)),
	}
}
