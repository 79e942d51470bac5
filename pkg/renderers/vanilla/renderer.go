// Package vanilla renders form models as plain HTML with a small optional
// runtime script that keeps inputs bound to server-side state.
package vanilla

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/cloudprivacylabs/lsa-ui/pkg/form"
	"github.com/cloudprivacylabs/lsa-ui/pkg/model"
	"github.com/cloudprivacylabs/lsa-ui/pkg/render"
	rendertemplate "github.com/cloudprivacylabs/lsa-ui/pkg/render/template"
	"github.com/cloudprivacylabs/lsa-ui/pkg/render/template/gotemplate"
)

const (
	formTemplate = "templates/form.tmpl"

	// DefaultChangeEndpoint prefixes the per-field change URL.
	DefaultChangeEndpoint = "/fields/"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	changeEndpoint   string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithChangeEndpoint sets the URL prefix the runtime posts change events to.
// An empty prefix disables live binding.
func WithChangeEndpoint(prefix string) Option {
	return func(cfg *config) {
		cfg.changeEndpoint = prefix
	}
}

// Renderer renders a FormModel to HTML.
type Renderer struct {
	templates      rendertemplate.TemplateRenderer
	changeEndpoint string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:     TemplatesFS(),
		changeEndpoint: DefaultChangeEndpoint,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, changeEndpoint: cfg.changeEndpoint}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes the form with every input showing its stored value from
// options.Values.
func (r *Renderer) Render(ctx context.Context, formModel model.FormModel, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("vanilla renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, errors.New("vanilla renderer: template renderer is nil")
	}

	state := form.New(formModel)
	for name, value := range options.Values {
		// Values for undeclared fields have nowhere to render.
		_ = state.Change(name, value)
	}

	data := map[string]any{
		"fields":          state.View(),
		"method":          formMethod(formModel.Method),
		"action":          formModel.Endpoint,
		"operation":       formModel.OperationID,
		"change_endpoint": r.changeEndpoint,
		"submit_label":    formModel.Actions.SubmitLabel,
	}
	if options.Theme != nil {
		data["theme"] = options.Theme.Theme
	}

	result, err := r.templates.RenderTemplate(formTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// formMethod maps the model verb to what an HTML form can submit.
func formMethod(method string) string {
	if strings.EqualFold(method, "GET") {
		return "get"
	}
	return "post"
}
