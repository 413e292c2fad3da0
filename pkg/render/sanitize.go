package render

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// SanitizeText strips markup from slot text so designer supplied strings
// cannot inject elements into generated templates.
func SanitizeText(raw string) string {
	if raw == "" {
		return ""
	}
	return textSanitizer().Sanitize(raw)
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
