package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-propgen/pkg/model"
	"github.com/goliatone/go-propgen/pkg/scene"
)

// plainFormat renders attributes as key=value and slots verbatim.
var plainFormat = InstanceFormat{
	Attribute: func(value model.PropertyValue, key string, explicit bool, _ scene.Resolver) string {
		if b, ok := value.Value.Bool(); ok && !explicit {
			if b {
				return model.PropertyName(key)
			}
			return ""
		}
		return model.PropertyName(key) + "=" + value.Value.Text()
	},
	SelfClosing: true,
}

func cardModel(props map[string]model.PropertyValue) (model.Component, model.Model) {
	c := model.Component{ID: "2:1", Name: "Card", Definition: "1:1", Properties: props}
	m := model.Model{
		Components: map[string]model.Component{c.ID: c},
		Definitions: map[string]model.Definitions{"1:1": {
			"Title#1:2":   {Name: "title", Type: model.KindText},
			"Body#1:3":    {Name: "body", Type: model.KindText},
			"Show#1:4":    {Name: "show", Type: model.KindBoolean, Hidden: true},
			"Icon#1:5":    {Name: "icon", Type: model.KindInstanceSwap},
			"Tone":        {Name: "tone", Type: model.KindVariant},
			"Elevated":    {Name: "elevated", Type: model.KindBoolean},
			"Caption#1:6": {Name: "caption", Type: model.KindText},
		}},
		Metas: map[string]model.ComponentMeta{"1:1": {ID: "1:1", Name: "Card"}},
		References: map[string]model.ReferenceMap{"1:1": {
			Instances: map[string]model.InstanceBinding{},
			Properties: map[string]model.PropertyBinding{
				"Title#1:2": {Characters: true},
				"Body#1:3":  {Characters: true},
			},
		}},
	}
	return c, m
}

func text(s string) model.PropertyValue {
	return model.PropertyValue{Type: model.KindText, Value: model.StringValue(s)}
}

func TestFormatInstance_SelfClosingWithoutSlots(t *testing.T) {
	c, m := cardModel(map[string]model.PropertyValue{
		"Tone":     {Type: model.KindVariant, Value: model.StringValue("warm")},
		"Elevated": {Type: model.KindBoolean, Value: model.BoolValue(true)},
	})
	got := FormatInstance(c, m, plainFormat, InstanceSettings{}, nil)
	if want := "<Card elevated tone=warm />"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatInstance_EmptyPairWhenNotSelfClosing(t *testing.T) {
	c, m := cardModel(nil)
	format := plainFormat
	format.SelfClosing = false
	if got := FormatInstance(c, m, format, InstanceSettings{}, nil); got != "<Card></Card>" {
		t.Fatalf("unexpected markup %q", got)
	}
}

func TestFormatInstance_SingleSlotInline(t *testing.T) {
	c, m := cardModel(map[string]model.PropertyValue{"Title#1:2": text("Hello")})
	if got := FormatInstance(c, m, plainFormat, InstanceSettings{}, nil); got != "<Card>Hello</Card>" {
		t.Fatalf("unexpected markup %q", got)
	}
}

func TestFormatInstance_MultipleSlotsIndented(t *testing.T) {
	c, m := cardModel(map[string]model.PropertyValue{
		"Title#1:2": text("Hello"),
		"Body#1:3":  text("Line one\nLine two"),
	})
	got := FormatInstance(c, m, plainFormat, InstanceSettings{}, nil)
	want := strings.Join([]string{
		"<Card>",
		"  Line one",
		"  Line two",
		"  Hello",
		"</Card>",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatInstance_SkipsHiddenUndefinedAndDefaults(t *testing.T) {
	c, m := cardModel(map[string]model.PropertyValue{
		"Show#1:4": {Type: model.KindBoolean, Value: model.BoolValue(true)},
		"Icon#1:5": {Type: model.KindInstanceSwap, Value: model.StringValue("9:9"), Undefined: true},
		"Tone":     {Type: model.KindVariant, Value: model.StringValue("cool"), Default: true},
	})
	if got := FormatInstance(c, m, plainFormat, InstanceSettings{}, nil); got != "<Card />" {
		t.Fatalf("unexpected markup %q", got)
	}
	got := FormatInstance(c, m, plainFormat, InstanceSettings{ShowDefaults: true}, nil)
	if got != "<Card tone=cool />" {
		t.Fatalf("expected default to be shown, got %q", got)
	}
}

func TestFormatInstance_TextSlotsIgnoreShowDefaults(t *testing.T) {
	value := text("Hello")
	value.Default = true
	c, m := cardModel(map[string]model.PropertyValue{"Title#1:2": value})
	if got := FormatInstance(c, m, plainFormat, InstanceSettings{}, nil); got != "<Card>Hello</Card>" {
		t.Fatalf("text slots always render, got %q", got)
	}
}

func TestFormatInstance_UnboundTextIsAttribute(t *testing.T) {
	c, m := cardModel(map[string]model.PropertyValue{"Caption#1:6": text("Small")})
	if got := FormatInstance(c, m, plainFormat, InstanceSettings{}, nil); got != "<Card caption=Small />" {
		t.Fatalf("unexpected markup %q", got)
	}
}

func TestFormatInstance_InstanceSlotsAndTextFilter(t *testing.T) {
	c, m := cardModel(map[string]model.PropertyValue{
		"Icon#1:5":  {Type: model.KindInstanceSwap, Value: model.StringValue("9:9")},
		"Title#1:2": text("<b>Hi</b>"),
	})
	format := plainFormat
	format.InstanceSlots = true
	format.TextFilter = SanitizeText
	format.Slot = func(slot Slot, count int) string {
		return "[" + slot.Name + "]" + slot.Content
	}
	resolver := scene.MapResolver{"9:9": {ID: "9:9", Name: "arrow right"}}

	got := FormatInstance(c, m, format, InstanceSettings{}, resolver)
	want := "<Card>\n  [icon]<ArrowRight />\n  [title]Hi\n</Card>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	unresolved := FormatInstance(c, m, format, InstanceSettings{}, nil)
	if unresolved != "<Card icon=9:9>[title]Hi</Card>" {
		t.Fatalf("unresolved swaps fall back to attributes, got %q", unresolved)
	}
}

func TestSortedComponents(t *testing.T) {
	m := model.Model{Components: map[string]model.Component{
		"3": {ID: "3", Name: "Badge"},
		"1": {ID: "1", Name: "Card"},
		"2": {ID: "2", Name: "Badge"},
	}}
	var ids []string
	for _, c := range SortedComponents(m) {
		ids = append(ids, c.ID)
	}
	if diff := cmp.Diff([]string{"2", "3", "1"}, ids); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortedPropertyKeys_UsesCleanNames(t *testing.T) {
	keys := SortedPropertyKeys(map[string]int{
		"Zeta#1:1":  0,
		"alpha":     0,
		"Alpha#2:2": 0,
		"Beta":      0,
	})
	if diff := cmp.Diff([]string{"Alpha#2:2", "alpha", "Beta", "Zeta#1:1"}, keys); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}
