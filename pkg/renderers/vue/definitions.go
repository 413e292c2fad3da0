package vue

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-propgen/pkg/model"
	"github.com/goliatone/go-propgen/pkg/render"
	"github.com/goliatone/go-propgen/pkg/scene"
)

// DecodeDefinitionSettings reports whether the options API style is enabled,
// applying defaults for missing keys.
func DecodeDefinitionSettings(settings render.Settings) (render.Settings, bool) {
	merged := render.Merge(render.DefaultVueDefinitionSettings(), settings)
	return merged, merged.Bool(render.SettingOptionsAPI)
}

func (r *Renderer) formatDefinitions(m model.Model, options render.Options) (render.FormatResultItem, error) {
	settings, optionsAPI := DecodeDefinitionSettings(options.DefinitionSettings)

	declarations := render.Declarations(m)
	lines := make([]string, 0, len(declarations)+1)
	if optionsAPI {
		lines = append(lines, optionsHeader)
	}

	for _, decl := range declarations {
		var (
			out string
			err error
		)
		if optionsAPI {
			out, err = r.formatOptionsAPI(decl, options.Resolver)
		} else {
			out, err = r.formatComposition(decl, options.Resolver)
		}
		if err != nil {
			return render.FormatResultItem{}, fmt.Errorf("vue renderer: render definition %q: %w", decl.Name, err)
		}
		lines = append(lines, strings.TrimRight(out, "\n"))
	}

	return render.FormatResultItem{
		Label:       "Definitions",
		Code:        []render.Code{{Language: "tsx", Lines: lines}},
		Settings:    settings,
		SettingsKey: render.SettingsKeyVueDefinition,
	}, nil
}

func (r *Renderer) formatComposition(decl render.Declaration, resolver scene.Resolver) (string, error) {
	var (
		aliases  []render.TypeAlias
		fields   []string
		defaults []string
	)
	for _, prop := range decl.Props {
		fields = append(fields, prop.Name+"?: "+render.FieldType(prop, decl.InterfaceName(), "Component", &aliases)+";")
		// Optional props have no default and stay out of withDefaults.
		if value, ok := render.StubDefault(prop, resolver); ok {
			defaults = append(defaults, prop.Name+": "+value+",")
		}
	}

	return r.templates.RenderTemplate(compositionTemplate, map[string]any{
		"name":      decl.Name,
		"interface": decl.InterfaceName(),
		"types":     render.Aliases(aliases),
		"body":      render.InlineObject(fields),
		"defaults":  render.Block(defaults),
	})
}

func (r *Renderer) formatOptionsAPI(decl render.Declaration, resolver scene.Resolver) (string, error) {
	var (
		aliases []render.TypeAlias
		props   []string
	)
	for _, prop := range decl.Props {
		props = append(props, optionsProp(decl, prop, resolver, &aliases))
	}

	return r.templates.RenderTemplate(optionsTemplate, map[string]any{
		"name":        decl.Name,
		"quoted_name": render.Quote(decl.Name),
		"types":       render.Aliases(aliases),
		"props":       render.Block(props),
	})
}

// optionsProp renders one runtime prop declaration.
func optionsProp(decl render.Declaration, prop render.Prop, resolver scene.Resolver, aliases *[]render.TypeAlias) string {
	def := prop.Definition

	var propType, value string
	switch def.Type {
	case model.KindBoolean:
		propType, value = "Boolean", render.Literal(def.DefaultValue)
	case model.KindNumber:
		propType, value = "Number", render.Literal(def.DefaultValue)
	case model.KindVariant:
		alias := render.TypeAlias{Name: render.AliasName(decl.Name, prop), Union: render.UnionType(def.VariantOptions)}
		*aliases = append(*aliases, alias)
		propType, value = "String as PropType<"+alias.Name+">", render.Quote(def.DefaultValue.Text())
	case model.KindInstanceSwap:
		id := def.DefaultValue.Text()
		if name, ok := render.ResolveName(resolver, id); ok {
			propType, value = "Object", render.Quote(name)
		} else {
			propType, value = "String", render.Quote(id)
		}
	default:
		propType, value = "String", render.Quote(def.DefaultValue.Text())
	}

	lines := []string{prop.Name + ": {", "  type: " + propType + ","}
	if !def.Optional {
		lines = append(lines, "  default: "+value+",")
	}
	lines = append(lines, "},")
	return strings.Join(lines, "\n")
}
