package render

// Code is one block of generated source in a single language.
type Code struct {
	Language string   `json:"language"`
	Lines    []string `json:"lines"`
}

// FormatResultItem is one pass of a renderer (instances or definitions)
// together with the settings it was produced with.
type FormatResultItem struct {
	Label       string   `json:"label"`
	Code        []Code   `json:"code"`
	Settings    Settings `json:"settings"`
	SettingsKey string   `json:"settingsKey,omitempty"`
}

// FormatResult is the output contract handed to the surrounding UI or export
// layer.
type FormatResult struct {
	Label string             `json:"label"`
	Items []FormatResultItem `json:"items"`
}

// Lines flattens every code block of the item in order.
func (i FormatResultItem) Lines() []string {
	var out []string
	for _, code := range i.Code {
		out = append(out, code.Lines...)
	}
	return out
}

// Item returns the item with the given label.
func (r FormatResult) Item(label string) (FormatResultItem, bool) {
	for _, item := range r.Items {
		if item.Label == label {
			return item, true
		}
	}
	return FormatResultItem{}, false
}
