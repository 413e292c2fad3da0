package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-propgen/pkg/model"
	"github.com/goliatone/go-propgen/pkg/scene"
)

func TestDeclarations_SortsAndDropsHidden(t *testing.T) {
	m := model.Model{
		Definitions: map[string]model.Definitions{
			"2:1": {
				"Size":         {Type: model.KindVariant},
				"Has Icon#1:3": {Type: model.KindBoolean, Hidden: true},
				"Label#1:2":    {Type: model.KindText},
			},
			"1:1": {},
		},
		Metas: map[string]model.ComponentMeta{
			"2:1": {ID: "2:1", Name: "Button"},
		},
	}

	decls := Declarations(m)
	if len(decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(decls))
	}
	if decls[1].Name != "_11" {
		t.Fatalf("a missing meta falls back to the id, got %q", decls[1].Name)
	}
	button := decls[0]
	if button.InterfaceName() != "ButtonProps" {
		t.Fatalf("unexpected interface name %q", button.InterfaceName())
	}
	var names []string
	for _, p := range button.Props {
		names = append(names, p.Name)
	}
	if diff := cmp.Diff([]string{"label", "size"}, names); diff != "" {
		t.Fatalf("props mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldType(t *testing.T) {
	var aliases []TypeAlias
	cases := []struct {
		def  model.PropertyDefinition
		want string
	}{
		{model.PropertyDefinition{Type: model.KindBoolean}, "boolean"},
		{model.PropertyDefinition{Type: model.KindNumber}, "number"},
		{model.PropertyDefinition{Type: model.KindText}, "string"},
		{model.PropertyDefinition{Type: model.KindExplicit, DefaultValue: model.StringValue("only")}, `"only"`},
		{model.PropertyDefinition{Type: model.KindInstanceSwap}, "ReactNode"},
		{model.PropertyDefinition{Type: model.KindVariant, VariantOptions: []string{"sm", "it's"}}, "ButtonPropsSize"},
		{model.PropertyDefinition{Type: "SLOT", DefaultValue: model.StringValue("x")}, `{"name":"","type":"SLOT","defaultValue":"x"}`},
	}
	for _, tc := range cases {
		got := FieldType(Prop{Key: "Size", Name: "size", Definition: tc.def}, "ButtonProps", "ReactNode", &aliases)
		if got != tc.want {
			t.Fatalf("FieldType(%s) = %q, want %q", tc.def.Type, got, tc.want)
		}
	}
	if diff := cmp.Diff([]TypeAlias{{Name: "ButtonPropsSize", Union: `'sm' | 'it\'s'`}}, aliases); diff != "" {
		t.Fatalf("aliases mismatch (-want +got):\n%s", diff)
	}
	if got := Aliases(aliases); got != `type ButtonPropsSize = 'sm' | 'it\'s';` {
		t.Fatalf("unexpected alias line %q", got)
	}
}

func TestStubDefault(t *testing.T) {
	resolver := scene.MapResolver{"3:1": {ID: "3:1", Name: "star icon"}}
	cases := []struct {
		name   string
		def    model.PropertyDefinition
		want   string
		wantOK bool
	}{
		{"boolean", model.PropertyDefinition{Type: model.KindBoolean, DefaultValue: model.BoolValue(false)}, "false", true},
		{"number", model.PropertyDefinition{Type: model.KindNumber, DefaultValue: model.NumberValue(2)}, "2", true},
		{"text", model.PropertyDefinition{Type: model.KindText, DefaultValue: model.StringValue(`Say "hi"`)}, `"Say \"hi\""`, true},
		{"resolved swap", model.PropertyDefinition{Type: model.KindInstanceSwap, DefaultValue: model.StringValue("3:1")}, "<StarIcon />", true},
		{"unresolved swap", model.PropertyDefinition{Type: model.KindInstanceSwap, DefaultValue: model.StringValue("4:4")}, `"4:4"`, true},
		{"optional swap", model.PropertyDefinition{Type: model.KindInstanceSwap, Optional: true}, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := StubDefault(Prop{Name: "p", Definition: tc.def}, resolver)
			if got != tc.want || ok != tc.wantOK {
				t.Fatalf("StubDefault = (%q, %v), want (%q, %v)", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestObjectHelpers(t *testing.T) {
	if got := InlineObject(nil); got != "{}" {
		t.Fatalf("unexpected empty object %q", got)
	}
	if got := InlineObject([]string{"a?: string;", "b?: number;"}); got != "{ a?: string; b?: number; }" {
		t.Fatalf("unexpected inline object %q", got)
	}
	if got := Block([]string{"a,", "b: {\n  c\n},"}); got != "{\n  a,\n  b: {\n    c\n  },\n}" {
		t.Fatalf("unexpected block %q", got)
	}
	if got := UnionType(nil); got != "string" {
		t.Fatalf("empty unions widen to string, got %q", got)
	}
	if got := EscapeAttribute(`a "b"`); got != "a &quot;b&quot;" {
		t.Fatalf("unexpected escape %q", got)
	}
	if got := Quote("<Tag>"); got != `"<Tag>"` {
		t.Fatalf("quotes must not escape markup, got %q", got)
	}
	if got := Quote("A & <b>"); got != `"A & <b>"` {
		t.Fatalf("quotes must not escape ampersands, got %q", got)
	}
	def := model.PropertyDefinition{Name: "body", Type: "SLOT", DefaultValue: model.StringValue("<p>&nbsp;</p>")}
	if got := InlineJSON(def); got != `{"name":"body","type":"SLOT","defaultValue":"<p>&nbsp;</p>"}` {
		t.Fatalf("inline JSON must not escape markup, got %q", got)
	}
}

func TestPropertyNames_SuffixesCollisions(t *testing.T) {
	defs := model.Definitions{
		"Size":       {Type: model.KindVariant},
		"size#9:9":   {Type: model.KindText},
		"Size 2#4:4": {Type: model.KindText},
		"Label#1:2":  {Type: model.KindText},
	}
	want := map[string]string{
		"Size":       "size",
		"size#9:9":   "size3",
		"Size 2#4:4": "size2",
		"Label#1:2":  "label",
	}
	if diff := cmp.Diff(want, PropertyNames(defs)); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestDeclarations_CollidingKeysGetDistinctNames(t *testing.T) {
	m := model.Model{
		Definitions: map[string]model.Definitions{"1:1": {
			"Size":     {Type: model.KindVariant, VariantOptions: []string{"sm", "lg"}},
			"size#9:9": {Type: model.KindVariant, VariantOptions: []string{"a", "b"}},
		}},
		Metas: map[string]model.ComponentMeta{"1:1": {ID: "1:1", Name: "Card"}},
	}

	decl := Declarations(m)[0]
	var aliases []TypeAlias
	var fields []string
	for _, p := range decl.Props {
		fields = append(fields, p.Name+"?: "+FieldType(p, decl.InterfaceName(), "ReactNode", &aliases)+";")
	}
	if diff := cmp.Diff([]string{"size?: CardPropsSize;", "size2?: CardPropsSize2;"}, fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("type CardPropsSize = 'sm' | 'lg';\ntype CardPropsSize2 = 'a' | 'b';", Aliases(aliases)); diff != "" {
		t.Fatalf("aliases mismatch (-want +got):\n%s", diff)
	}
}
