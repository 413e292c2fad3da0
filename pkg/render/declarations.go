package render

import (
	"sort"
	"strings"

	"github.com/goliatone/go-propgen/internal/coerce"
	"github.com/goliatone/go-propgen/pkg/model"
	"github.com/goliatone/go-propgen/pkg/scene"
)

// Declaration is one definition prepared for the definitions pass.
type Declaration struct {
	ID   string
	Name string
	// Props holds the non-hidden properties ordered by cleaned name.
	Props []Prop
}

// InterfaceName is the props interface emitted for the declaration.
func (d Declaration) InterfaceName() string {
	return d.Name + "Props"
}

// Prop is a single declared property.
type Prop struct {
	Key        string
	Name       string
	Definition model.PropertyDefinition
}

// TypeAlias is a synthesized union type for a VARIANT property.
type TypeAlias struct {
	Name  string
	Union string
}

func (a TypeAlias) String() string {
	return "type " + a.Name + " = " + a.Union + ";"
}

// Declarations returns the model's definitions ordered by display name, then
// id.
func Declarations(m model.Model) []Declaration {
	out := make([]Declaration, 0, len(m.Definitions))
	for id, defs := range m.Definitions {
		name := m.Metas[id].Name
		if name == "" {
			name = model.CapitalizedName(id)
		}
		decl := Declaration{ID: id, Name: name}
		names := PropertyNames(defs)
		for _, key := range SortedPropertyKeys(defs) {
			def := defs[key]
			if def.Hidden {
				continue
			}
			decl.Props = append(decl.Props, Prop{Key: key, Name: names[key], Definition: def})
		}
		out = append(out, decl)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// AliasName builds the union type name for a VARIANT property.
func AliasName(prefix string, p Prop) string {
	return prefix + model.CapitalizedName(p.Name)
}

// FieldType returns the TypeScript type of p. VARIANT properties register a
// union alias named after prefix and reference it; swapType is the target's
// type for instance swaps.
func FieldType(p Prop, prefix, swapType string, aliases *[]TypeAlias) string {
	def := p.Definition
	switch def.Type {
	case model.KindBoolean:
		return "boolean"
	case model.KindNumber:
		return "number"
	case model.KindText:
		return "string"
	case model.KindVariant:
		alias := TypeAlias{Name: AliasName(prefix, p), Union: UnionType(def.VariantOptions)}
		if aliases != nil {
			*aliases = append(*aliases, alias)
		}
		return alias.Name
	case model.KindExplicit:
		return Quote(def.DefaultValue.Text())
	case model.KindInstanceSwap:
		return swapType
	default:
		return InlineJSON(def)
	}
}

// StubDefault returns the default expression of p in a component stub. The
// second result is false when the parameter has no default.
func StubDefault(p Prop, resolver scene.Resolver) (string, bool) {
	def := p.Definition
	if def.Optional {
		return "", false
	}
	switch def.Type {
	case model.KindBoolean, model.KindNumber:
		return Literal(def.DefaultValue), true
	case model.KindInstanceSwap:
		id := def.DefaultValue.Text()
		if name, ok := ResolveName(resolver, id); ok {
			return "<" + name + " />", true
		}
		return Quote(id), true
	default:
		return Quote(def.DefaultValue.Text()), true
	}
}

// Literal renders v as a TypeScript literal.
func Literal(v model.Value) string {
	if v.Kind() == model.ValueString {
		return Quote(v.Text())
	}
	return v.Text()
}

// Quote renders s as a double quoted string literal.
func Quote(s string) string {
	b, err := coerce.EncodeJSON(s)
	if err != nil {
		return `""`
	}
	return string(b)
}

// UnionType renders options as a union of single quoted literals. An empty
// option list widens to string.
func UnionType(options []string) string {
	if len(options) == 0 {
		return "string"
	}
	parts := make([]string, len(options))
	for i, option := range options {
		escaped := strings.ReplaceAll(option, `\`, `\\`)
		parts[i] = "'" + strings.ReplaceAll(escaped, "'", `\'`) + "'"
	}
	return strings.Join(parts, " | ")
}

// InlineJSON renders v as compact JSON for kinds no target understands.
func InlineJSON(v any) string {
	b, err := coerce.EncodeJSON(v)
	if err != nil {
		return "unknown"
	}
	return string(b)
}

// EscapeAttribute escapes s for use inside a double quoted markup attribute.
func EscapeAttribute(s string) string {
	return strings.ReplaceAll(s, `"`, "&quot;")
}

// InlineObject joins members into a single line object type.
func InlineObject(members []string) string {
	if len(members) == 0 {
		return "{}"
	}
	return "{ " + strings.Join(members, " ") + " }"
}

// Block joins entries into a multi-line object literal indented by two
// spaces. Entries may span several lines.
func Block(entries []string) string {
	if len(entries) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{")
	for _, entry := range entries {
		for _, line := range strings.Split(entry, "\n") {
			b.WriteString("\n  " + line)
		}
	}
	b.WriteString("\n}")
	return b.String()
}

// Aliases renders the collected union aliases one per line.
func Aliases(aliases []TypeAlias) string {
	lines := make([]string, len(aliases))
	for i, alias := range aliases {
		lines[i] = alias.String()
	}
	return strings.Join(lines, "\n")
}
