package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-propgen/pkg/render"
)

type scriptedDriver struct {
	selects  []string
	confirms map[string]bool
	asked    []string
	err      error
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	d.asked = append(d.asked, cfg.Message)
	if value, ok := d.confirms[cfg.Message]; ok {
		return value, nil
	}
	return cfg.Default, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	choice := d.selects[0]
	d.selects = d.selects[1:]
	return indexOf(cfg.Options, choice), nil
}

func TestAsk_VueAsksDefinitionSettings(t *testing.T) {
	driver := &scriptedDriver{
		selects:  []string{"vue"},
		confirms: map[string]bool{render.SettingExplicitBoolean: true, render.SettingOptionsAPI: true},
	}

	got, err := Ask(context.Background(), driver, []string{"react", "vue"}, Choices{Renderer: "react"})
	if err != nil {
		t.Fatalf("ask: %v", err)
	}

	want := Choices{
		Renderer: "vue",
		InstanceSettings: render.Settings{
			{Key: render.SettingShowDefaults, Value: false},
			{Key: render.SettingExplicitBoolean, Value: true},
		},
		DefinitionSettings: render.Settings{
			{Key: render.SettingOptionsAPI, Value: true},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}
}

func TestAsk_ReactSkipsDefinitionSettings(t *testing.T) {
	driver := &scriptedDriver{selects: []string{"react"}}

	got, err := Ask(context.Background(), driver, []string{"react", "vue"}, Choices{})
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if got.Renderer != "react" {
		t.Fatalf("unexpected renderer %q", got.Renderer)
	}
	if diff := cmp.Diff([]string{render.SettingShowDefaults, render.SettingExplicitBoolean}, driver.asked); diff != "" {
		t.Fatalf("asked mismatch (-want +got):\n%s", diff)
	}
}

func TestAsk_PropagatesAbort(t *testing.T) {
	driver := &scriptedDriver{err: ErrAborted}
	if _, err := Ask(context.Background(), driver, []string{"react"}, Choices{}); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}
