package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ddddddO/gtree"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-propgen/pkg/model"
	"github.com/goliatone/go-propgen/pkg/orchestrator"
	"github.com/goliatone/go-propgen/pkg/render"
)

func (a *app) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print the canonical property model as a tree",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.config(cmd)
			if err != nil {
				return err
			}
			source, err := parseSource(cfg.Source)
			if err != nil {
				return err
			}
			gen, err := a.orchestrator(cfg)
			if err != nil {
				return err
			}
			m, err := gen.Model(cmd.Context(), orchestrator.Request{Source: source})
			if err != nil {
				return err
			}
			return writeModelTree(a.stdout, source.Location(), m)
		},
	}
}

// writeModelTree prints definitions and then components. Labels carry node
// ids because gtree merges siblings with identical text.
func writeModelTree(w io.Writer, title string, m model.Model) error {
	root := gtree.NewRoot(title)

	definitions := root.Add(fmt.Sprintf("definitions (%d)", len(m.Definitions)))
	for _, decl := range render.Declarations(m) {
		node := definitions.Add(fmt.Sprintf("%s [%s]", decl.Name, decl.ID))
		defs := m.Definitions[decl.ID]
		for _, key := range render.SortedPropertyKeys(defs) {
			node.Add(definitionLabel(key, defs[key]))
		}
	}

	components := root.Add(fmt.Sprintf("components (%d)", len(m.Components)))
	for _, c := range render.SortedComponents(m) {
		node := components.Add(fmt.Sprintf("%s [%s] of %s", c.Name, c.ID, c.Definition))
		for _, key := range render.SortedPropertyKeys(c.Properties) {
			node.Add(valueLabel(key, c.Properties[key]))
		}
	}

	if err := gtree.OutputProgrammably(w, root); err != nil {
		return fmt.Errorf("inspect: write tree: %w", err)
	}
	return nil
}

func definitionLabel(key string, def model.PropertyDefinition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s = %s", model.PropertyName(key), def.Type, render.Literal(def.DefaultValue))
	if len(def.VariantOptions) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(def.VariantOptions, " | "))
	}
	if def.Hidden {
		b.WriteString(" hidden")
	}
	if def.Optional {
		b.WriteString(" optional")
	}
	fmt.Fprintf(&b, " [%s]", key)
	return b.String()
}

func valueLabel(key string, value model.PropertyValue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s = %s", model.PropertyName(key), render.Literal(value.Value))
	if value.Default {
		b.WriteString(" default")
	}
	if value.Undefined {
		b.WriteString(" undefined")
	}
	fmt.Fprintf(&b, " [%s]", key)
	return b.String()
}
