package render

import (
	"fmt"

	json "github.com/goccy/go-json"
)

const (
	// SettingShowDefaults emits attributes whose value equals the default.
	SettingShowDefaults = "showDefaults"
	// SettingExplicitBoolean renders booleans as key/value pairs instead of
	// bare flags.
	SettingExplicitBoolean = "explicitBoolean"
	// SettingOptionsAPI switches Vue definitions to the options API style.
	SettingOptionsAPI = "optionsApi"

	// SettingsKeyInstance groups instance settings across renderers.
	SettingsKeyInstance = "instance"
	// SettingsKeyVueDefinition groups Vue definition settings.
	SettingsKeyVueDefinition = "vueDefinition"
)

// Setting is one boolean toggle. It encodes as a [key, value] tuple.
type Setting struct {
	Key   string
	Value bool
}

// MarshalJSON encodes the setting as a two element array.
func (s Setting) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{s.Key, s.Value})
}

// UnmarshalJSON decodes a [key, value] tuple.
func (s *Setting) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 2 {
		return fmt.Errorf("render: setting must have 2 elements, got %d", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &s.Key); err != nil {
		return fmt.Errorf("render: setting key: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &s.Value); err != nil {
		return fmt.Errorf("render: setting %q value: %w", s.Key, err)
	}
	return nil
}

// Settings is an ordered list of toggles.
type Settings []Setting

// DefaultInstanceSettings lists the instance toggles in display order.
func DefaultInstanceSettings() Settings {
	return Settings{
		{Key: SettingShowDefaults, Value: false},
		{Key: SettingExplicitBoolean, Value: false},
	}
}

// DefaultVueDefinitionSettings lists the Vue definition toggles.
func DefaultVueDefinitionSettings() Settings {
	return Settings{
		{Key: SettingOptionsAPI, Value: false},
	}
}

// Lookup returns the value of key and whether it is present.
func (s Settings) Lookup(key string) (bool, bool) {
	for _, setting := range s {
		if setting.Key == key {
			return setting.Value, true
		}
	}
	return false, false
}

// Bool returns the value of key, false when absent.
func (s Settings) Bool(key string) bool {
	value, _ := s.Lookup(key)
	return value
}

// With returns a copy with key set to value, appended when absent.
func (s Settings) With(key string, value bool) Settings {
	out := append(Settings{}, s...)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, Setting{Key: key, Value: value})
}

// Merge returns defaults overridden by overrides, keeping the defaults' order
// and appending keys only present in overrides.
func Merge(defaults, overrides Settings) Settings {
	out := append(Settings{}, defaults...)
	for _, setting := range overrides {
		out = out.With(setting.Key, setting.Value)
	}
	return out
}
