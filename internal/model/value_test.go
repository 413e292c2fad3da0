package model

import (
	"math"
	"testing"

	json "github.com/goccy/go-json"
)

func TestInferValue_Precedence(t *testing.T) {
	if v := InferValue("true"); v.Kind() != ValueBool {
		t.Fatalf("expected bool, got %s", v.Kind())
	}
	if v := InferValue("12.5"); v.Kind() != ValueNumber {
		t.Fatalf("expected number, got %s", v.Kind())
	}
	if v := InferValue("True"); v.Kind() != ValueString || v.Text() != "True" {
		t.Fatalf("expected verbatim string, got %s %q", v.Kind(), v.Text())
	}
}

func TestValue_Text(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{BoolValue(true), "true"},
		{BoolValue(false), "false"},
		{NumberValue(3), "3"},
		{NumberValue(0.5), "0.5"},
		{StringValue("lg"), "lg"},
		{Value{}, ""},
	}
	for _, tc := range cases {
		if got := tc.v.Text(); got != tc.want {
			t.Fatalf("Text() = %q, want %q", got, tc.want)
		}
	}
}

func TestValue_Equal(t *testing.T) {
	if !NumberValue(2).Equal(NumberValue(2)) {
		t.Fatalf("expected equal numbers")
	}
	if NumberValue(1).Equal(StringValue("1")) {
		t.Fatalf("kinds must match")
	}
	nan := NumberValue(math.NaN())
	if nan.Equal(nan) {
		t.Fatalf("NaN must not equal itself")
	}
}

func TestValue_JSON(t *testing.T) {
	payload, err := json.Marshal([]Value{BoolValue(true), NumberValue(1.5), StringValue("x"), NumberValue(math.NaN())})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(payload), `[true,1.5,"x",null]`; got != want {
		t.Fatalf("marshal = %s, want %s", got, want)
	}

	var decoded []Value
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 4 {
		t.Fatalf("expected 4 values, got %d", len(decoded))
	}
	if b, ok := decoded[0].Bool(); !ok || !b {
		t.Fatalf("expected true, got %v", decoded[0])
	}
	if n, ok := decoded[3].Number(); !ok || !math.IsNaN(n) {
		t.Fatalf("expected null to decode as NaN, got %v", decoded[3])
	}
}

func TestValue_MarshalJSONKeepsMarkup(t *testing.T) {
	payload, err := StringValue("A & <b>").MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(payload), `"A & <b>"`; got != want {
		t.Fatalf("marshal = %s, want %s", got, want)
	}
}
