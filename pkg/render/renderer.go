package render

import (
	"context"

	"github.com/cloudprivacylabs/lsa-ui/pkg/model"
)

// Renderer converts a FormModel into bytes (HTML, JSON, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.FormModel, options RenderOptions) ([]byte, error)
}
