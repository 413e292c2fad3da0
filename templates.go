package propgen

import (
	"io/fs"

	"github.com/goliatone/go-propgen/pkg/renderers/react"
	"github.com/goliatone/go-propgen/pkg/renderers/vue"
)

// ReactTemplates exposes the built-in React declaration templates so callers
// can copy and extend them (see react.WithTemplatesFS).
func ReactTemplates() fs.FS {
	return react.TemplatesFS()
}

// VueTemplates exposes the built-in Vue declaration templates.
func VueTemplates() fs.FS {
	return vue.TemplatesFS()
}
