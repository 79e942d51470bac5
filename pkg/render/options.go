package render

import theme "github.com/goliatone/go-theme"

// RenderOptions carry per-render data that does not belong in the form model.
type RenderOptions struct {
	// Values holds the stored value of each field keyed by field name. Inputs
	// display exactly these values; missing keys render empty.
	Values map[string]string
	// Theme carries the resolved theme selection, when one is configured.
	Theme *theme.RendererConfig
}
