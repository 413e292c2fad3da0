package react

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-propgen/pkg/model"
	"github.com/goliatone/go-propgen/pkg/render"
)

func (r *Renderer) formatDefinitions(m model.Model, options render.Options) (render.FormatResultItem, error) {
	declarations := render.Declarations(m)
	lines := make([]string, 0, len(declarations)+1)
	lines = append(lines, header)

	for _, decl := range declarations {
		var (
			aliases []render.TypeAlias
			fields  []string
			params  []string
		)
		for _, prop := range decl.Props {
			fields = append(fields, prop.Name+"?: "+render.FieldType(prop, decl.InterfaceName(), "ReactNode", &aliases)+";")
			if value, ok := render.StubDefault(prop, options.Resolver); ok {
				params = append(params, prop.Name+" = "+value+",")
			} else {
				params = append(params, prop.Name+",")
			}
		}

		out, err := r.templates.RenderTemplate(definitionTemplate, map[string]any{
			"name":      decl.Name,
			"interface": decl.InterfaceName(),
			"types":     render.Aliases(aliases),
			"body":      render.InlineObject(fields),
			"params":    render.Block(params),
		})
		if err != nil {
			return render.FormatResultItem{}, fmt.Errorf("react renderer: render definition %q: %w", decl.Name, err)
		}
		lines = append(lines, strings.TrimRight(out, "\n"))
	}

	return render.FormatResultItem{
		Label:    "Definitions",
		Code:     []render.Code{{Language: "tsx", Lines: lines}},
		Settings: render.Settings{},
	}, nil
}
