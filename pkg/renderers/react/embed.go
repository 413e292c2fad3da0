package react

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded declaration templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
