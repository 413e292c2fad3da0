package render

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

func TestSettings_JSONTuples(t *testing.T) {
	settings := Settings{{Key: SettingShowDefaults, Value: true}, {Key: SettingExplicitBoolean, Value: false}}

	payload, err := json.Marshal(settings)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(payload), `[["showDefaults",true],["explicitBoolean",false]]`; got != want {
		t.Fatalf("marshal = %s, want %s", got, want)
	}

	var decoded Settings
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(settings, decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSetting_UnmarshalRejectsMalformedTuples(t *testing.T) {
	for _, payload := range []string{`["showDefaults"]`, `[1,true]`, `["showDefaults","yes"]`, `{}`} {
		var s Setting
		if err := json.Unmarshal([]byte(payload), &s); err == nil {
			t.Fatalf("expected error for %s", payload)
		}
	}
}

func TestMerge_KeepsDefaultOrder(t *testing.T) {
	merged := Merge(DefaultInstanceSettings(), Settings{
		{Key: SettingExplicitBoolean, Value: true},
		{Key: "custom", Value: true},
	})
	want := Settings{
		{Key: SettingShowDefaults, Value: false},
		{Key: SettingExplicitBoolean, Value: true},
		{Key: "custom", Value: true},
	}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestSettings_WithDoesNotMutate(t *testing.T) {
	base := DefaultVueDefinitionSettings()
	updated := base.With(SettingOptionsAPI, true)

	if base.Bool(SettingOptionsAPI) {
		t.Fatalf("With must not mutate the receiver")
	}
	if !updated.Bool(SettingOptionsAPI) {
		t.Fatalf("expected updated setting")
	}
	if _, ok := updated.Lookup("missing"); ok {
		t.Fatalf("expected missing key to be absent")
	}
}

func TestDecodeInstanceSettings_Defaults(t *testing.T) {
	got := DecodeInstanceSettings(nil)
	if got.ShowDefaults || got.ExplicitBoolean {
		t.Fatalf("expected both toggles off, got %+v", got)
	}
	got = DecodeInstanceSettings(Settings{{Key: SettingShowDefaults, Value: true}})
	if !got.ShowDefaults || got.ExplicitBoolean {
		t.Fatalf("expected only showDefaults, got %+v", got)
	}
}
