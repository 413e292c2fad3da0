package prompt

import (
	"context"
	"fmt"

	"github.com/goliatone/go-propgen/pkg/render"
)

// Choices is the outcome of an interactive session.
type Choices struct {
	Renderer           string
	InstanceSettings   render.Settings
	DefinitionSettings render.Settings
}

var settingHelp = map[string]string{
	render.SettingShowDefaults:    "Emit attributes whose value equals the definition default",
	render.SettingExplicitBoolean: "Render booleans as prop={true} instead of a bare flag",
	render.SettingOptionsAPI:      "Declare Vue props with defineComponent instead of defineProps",
}

// Ask lets the user pick a renderer and toggle each setting. current seeds
// the defaults shown in every prompt.
func Ask(ctx context.Context, driver Driver, renderers []string, current Choices) (Choices, error) {
	if driver == nil {
		return Choices{}, fmt.Errorf("prompt: driver is nil")
	}
	if len(renderers) == 0 {
		return Choices{}, fmt.Errorf("prompt: no renderers to choose from")
	}

	idx, err := driver.Select(ctx, SelectConfig{
		Message:      "Target framework",
		Options:      renderers,
		DefaultIndex: indexOf(renderers, current.Renderer),
	})
	if err != nil {
		return Choices{}, err
	}
	if idx < 0 {
		return Choices{}, fmt.Errorf("prompt: no renderer selected")
	}

	out := Choices{Renderer: renderers[idx]}
	out.InstanceSettings, err = askSettings(ctx, driver, render.Merge(render.DefaultInstanceSettings(), current.InstanceSettings))
	if err != nil {
		return Choices{}, err
	}
	if out.Renderer == "vue" {
		out.DefinitionSettings, err = askSettings(ctx, driver, render.Merge(render.DefaultVueDefinitionSettings(), current.DefinitionSettings))
		if err != nil {
			return Choices{}, err
		}
	} else {
		out.DefinitionSettings = current.DefinitionSettings
	}
	return out, nil
}

func askSettings(ctx context.Context, driver Driver, settings render.Settings) (render.Settings, error) {
	out := make(render.Settings, 0, len(settings))
	for _, setting := range settings {
		value, err := driver.Confirm(ctx, ConfirmConfig{
			Message: setting.Key,
			Default: setting.Value,
			Help:    settingHelp[setting.Key],
		})
		if err != nil {
			return nil, err
		}
		out = append(out, render.Setting{Key: setting.Key, Value: value})
	}
	return out, nil
}
