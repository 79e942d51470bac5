package lsaui

import (
	"context"

	pkgopenapi "github.com/cloudprivacylabs/lsa-ui/pkg/openapi"
	"github.com/cloudprivacylabs/lsa-ui/pkg/orchestrator"
	"github.com/cloudprivacylabs/lsa-ui/pkg/render"
	"github.com/cloudprivacylabs/lsa-ui/pkg/themes"
	theme "github.com/goliatone/go-theme"
)

// RenderOptions carries the stored field values and the resolved theme.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML renders the Layered Schemas parameter form with the named
// renderer. Every input starts empty.
func GenerateHTML(ctx context.Context, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Renderer: rendererName})
}

// GenerateHTMLFromDocument renders an operation of a pre-loaded document,
// bypassing the loader stage.
func GenerateHTMLFromDocument(ctx context.Context, doc pkgopenapi.Document, operationID, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document:    &doc,
		OperationID: operationID,
		Renderer:    rendererName,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithDefaultTheme registers the built-in theme with the given variant as the
// default selection.
func WithDefaultTheme(variant string) (orchestrator.Option, error) {
	if variant == "" {
		variant = themes.DefaultVariant
	}
	selector, err := themes.NewSelector(themes.DefaultTheme, variant, themes.Default())
	if err != nil {
		return nil, err
	}
	return orchestrator.WithThemeSelector(selector), nil
}
