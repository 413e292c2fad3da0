package coerce

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// EncodeJSON encodes v as compact JSON without escaping &, < and >, which
// generated code embeds verbatim.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
