package model

import (
	"github.com/goliatone/go-propgen/internal/coerce"
	"github.com/goliatone/go-propgen/pkg/scene"
)

// NormalizeDefinitions converts a host property schema into canonical
// definitions, one per key.
func NormalizeDefinitions(raw map[string]scene.RawPropertyDefinition) Definitions {
	defs := make(Definitions, len(raw))
	for key, def := range raw {
		defs[key] = NormalizeDefinition(key, def)
	}
	return defs
}

// NormalizeDefinition refines a single schema entry. Variants narrow to
// EXPLICIT when they offer one option, to BOOLEAN when they offer exactly the
// two boolean literals and to NUMBER when every option is numeric, which
// includes an empty option list. Every other kind keeps its raw type; the
// default is coerced to match it and unknown kinds keep a string default.
func NormalizeDefinition(key string, raw scene.RawPropertyDefinition) PropertyDefinition {
	kind := PropertyKind(raw.Type)
	rawValue := coerce.Text(raw.DefaultValue)
	name := PropertyName(key)

	if kind == KindVariant {
		options := raw.VariantOptions
		switch {
		case len(options) == 1:
			return PropertyDefinition{
				Name:         name,
				Type:         KindExplicit,
				DefaultValue: InferValue(rawValue),
			}
		case len(options) == 2 && coerce.IsBoolean(options[0]) && coerce.IsBoolean(options[1]):
			return PropertyDefinition{
				Name:         name,
				Type:         KindBoolean,
				DefaultValue: BoolValue(coerce.AsBoolean(rawValue)),
			}
		case allNumeric(options):
			return PropertyDefinition{
				Name:         name,
				Type:         KindNumber,
				DefaultValue: NumberValue(coerce.AsNumber(rawValue)),
			}
		}
		return PropertyDefinition{
			Name:           name,
			Type:           KindVariant,
			DefaultValue:   StringValue(rawValue),
			VariantOptions: append([]string(nil), options...),
		}
	}

	switch kind {
	case KindBoolean:
		return PropertyDefinition{
			Name:         name,
			Type:         kind,
			DefaultValue: BoolValue(coerce.AsBoolean(rawValue)),
		}
	case KindNumber:
		return PropertyDefinition{
			Name:         name,
			Type:         kind,
			DefaultValue: NumberValue(coerce.AsNumber(rawValue)),
		}
	case KindExplicit:
		return PropertyDefinition{
			Name:         name,
			Type:         kind,
			DefaultValue: InferValue(rawValue),
		}
	default:
		return PropertyDefinition{
			Name:         name,
			Type:         kind,
			DefaultValue: StringValue(rawValue),
		}
	}
}

func allNumeric(options []string) bool {
	for _, option := range options {
		if !coerce.IsNumber(option) {
			return false
		}
	}
	return true
}
