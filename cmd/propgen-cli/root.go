package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	propgen "github.com/goliatone/go-propgen"
	"github.com/goliatone/go-propgen/internal/logging"
	"github.com/goliatone/go-propgen/internal/prompt"
	"github.com/goliatone/go-propgen/pkg/orchestrator"
	"github.com/goliatone/go-propgen/pkg/scene"
)

type app struct {
	stdout     io.Writer
	stderr     io.Writer
	driver     prompt.Driver
	configPath string
}

func newRootCmd(stdout, stderr io.Writer, driver prompt.Driver) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, driver: driver}

	root := &cobra.Command{
		Use:           "propgen",
		Short:         "Generate React and Vue component code from design component properties",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./propgen.yaml when present)")
	flags.StringP("source", "s", "", "scene document path or URL")
	flags.String("log-level", "warn", "log level: debug, info, warn, error, off")
	flags.Bool("http", false, "allow loading scene documents over HTTP")
	flags.Duration("http-timeout", 0, "HTTP request timeout")
	flags.String("preset", "", "YAML or JSON preset renaming definitions and hiding properties")

	root.AddCommand(a.newGenerateCmd(), a.newInspectCmd())
	return root
}

func (a *app) config(cmd *cobra.Command) (Config, error) {
	v, err := newViper(cmd.Flags(), a.configPath)
	if err != nil {
		return Config{}, err
	}
	return loadConfig(v)
}

func (a *app) logger(cfg Config) (*slog.Logger, error) {
	return logging.New(a.stderr, logging.Options{Level: cfg.Log.Level, NoColor: a.stderr != os.Stderr})
}

func (a *app) orchestrator(cfg Config) (*orchestrator.Orchestrator, error) {
	logger, err := a.logger(cfg)
	if err != nil {
		return nil, err
	}

	var loaderOpts []scene.LoaderOption
	if cfg.HTTP.Enabled {
		loaderOpts = append(loaderOpts, scene.WithHTTPFallback(cfg.HTTP.Timeout))
	}

	options := []orchestrator.Option{
		orchestrator.WithLogger(logger),
		orchestrator.WithLoader(propgen.NewLoader(loaderOpts...)),
	}
	if cfg.Sanitize {
		options = append(options, orchestrator.WithSanitizedText())
	}
	if cfg.Preset != "" {
		data, err := os.ReadFile(cfg.Preset)
		if err != nil {
			return nil, fmt.Errorf("read preset: %w", err)
		}
		preset, err := orchestrator.NewPresetTransformer(data)
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithTransformer(preset))
	}
	return orchestrator.New(options...), nil
}

func parseSource(raw string) (scene.Source, error) {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil, fmt.Errorf("a scene source is required (--source or PROPGEN_SOURCE)")
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return scene.SourceFromURL(path), nil
	}
	return scene.SourceFromFile(path), nil
}
