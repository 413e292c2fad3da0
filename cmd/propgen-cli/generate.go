package main

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-propgen/internal/prompt"
	"github.com/goliatone/go-propgen/pkg/orchestrator"
	"github.com/goliatone/go-propgen/pkg/render"
)

func (a *app) newGenerateCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render instances and definitions for one or all targets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.config(cmd)
			if err != nil {
				return err
			}
			return a.runGenerate(cmd, cfg, interactive)
		},
	}

	flags := cmd.Flags()
	flags.StringP("renderer", "r", "react", "target renderer: react, vue or all")
	flags.StringP("format", "f", formatText, "output format: text or json")
	flags.Bool("show-defaults", false, "emit attributes equal to their default")
	flags.Bool("explicit-boolean", false, "render booleans as explicit values")
	flags.Bool("options-api", false, "emit Vue definitions with the options API")
	flags.Bool("sanitize", false, "strip markup from text slot content")
	flags.BoolVarP(&interactive, "interactive", "i", false, "choose the target and settings interactively")
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, cfg Config, interactive bool) error {
	ctx := cmd.Context()

	source, err := parseSource(cfg.Source)
	if err != nil {
		return err
	}
	gen, err := a.orchestrator(cfg)
	if err != nil {
		return err
	}

	choices := prompt.Choices{
		Renderer:           cfg.Renderer,
		InstanceSettings:   cfg.InstanceSettings(),
		DefinitionSettings: cfg.DefinitionSettings(),
	}
	if interactive {
		choices, err = prompt.Ask(ctx, a.driver, gen.Renderers(), choices)
		if err != nil {
			return err
		}
	}

	targets := []string{choices.Renderer}
	if choices.Renderer == rendererAll {
		targets = gen.Renderers()
	}

	tree, err := gen.LoadTree(ctx, source)
	if err != nil {
		return err
	}

	results := make([]render.FormatResult, 0, len(targets))
	for _, target := range targets {
		result, err := gen.Generate(ctx, orchestrator.Request{
			Tree:     tree,
			Renderer: target,
			Options: render.Options{
				InstanceSettings:   choices.InstanceSettings,
				DefinitionSettings: choices.DefinitionSettings,
			},
		})
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	if cfg.Format == formatJSON {
		return writeJSON(a.stdout, results)
	}
	return writeText(a.stdout, results)
}

func writeJSON(w io.Writer, results []render.FormatResult) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}

func writeText(w io.Writer, results []render.FormatResult) error {
	var b strings.Builder
	for _, result := range results {
		for _, item := range result.Items {
			for _, code := range item.Code {
				fmt.Fprintf(&b, "// %s %s (%s)\n", result.Label, item.Label, code.Language)
				for _, line := range code.Lines {
					b.WriteString(line)
					b.WriteString("\n\n")
				}
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
