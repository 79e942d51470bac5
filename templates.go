package lsaui

import (
	"io/fs"

	"github.com/cloudprivacylabs/lsa-ui/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in form templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}
