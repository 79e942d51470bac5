package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	internalLoader "github.com/cloudprivacylabs/lsa-ui/internal/openapi/loader"
	internalParser "github.com/cloudprivacylabs/lsa-ui/internal/openapi/parser"
	"github.com/cloudprivacylabs/lsa-ui/pkg/model"
	pkgopenapi "github.com/cloudprivacylabs/lsa-ui/pkg/openapi"
	"github.com/cloudprivacylabs/lsa-ui/pkg/render"
	"github.com/cloudprivacylabs/lsa-ui/pkg/renderers/vanilla"
	"github.com/cloudprivacylabs/lsa-ui/pkg/searchparams"
	"github.com/cloudprivacylabs/lsa-ui/pkg/themes"
	"github.com/cloudprivacylabs/lsa-ui/pkg/uischema"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithDocumentFS backs the default loader with fsys instead of the embedded
// parameter form declaration.
func WithDocumentFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.documentFS = fsys
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithModelBuilder injects a custom form model builder.
func WithModelBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits one.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithUIDecorators registers decorators that run after the UI schema one.
func WithUIDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithUISchemaFS supplies an fs.FS holding UI schema documents. Pass nil to
// disable the embedded defaults.
func WithUISchemaFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.uiSchemaFS = fsys
		o.uiSchemaSpecified = true
	}
}

// WithThemeSelector resolves Request.ThemeName/ThemeVariant before rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// Orchestrator coordinates the pipeline from OpenAPI document to rendered
// output.
type Orchestrator struct {
	loader            pkgopenapi.Loader
	documentFS        fs.FS
	parser            pkgopenapi.Parser
	builder           model.Builder
	registry          *render.Registry
	defaultRenderer   string
	decorators        []model.Decorator
	uiSchemaFS        fs.FS
	uiSchemaSpecified bool
	themeSelector     theme.ThemeSelector
	initialiseErr     error
}

// New constructs an Orchestrator, filling missing dependencies with the
// built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{defaultRenderer: defaultRendererName}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes what to render.
type Request struct {
	// Source identifies the OpenAPI document. Defaults to the embedded
	// parameter form declaration when Document is also nil.
	Source pkgopenapi.Source

	// Document bypasses the loader.
	Document *pkgopenapi.Document

	// OperationID selects the operation. Defaults to the parameter form's.
	OperationID string

	// Renderer names the renderer; empty selects the default.
	Renderer string

	// ThemeName and ThemeVariant are resolved through the theme selector.
	ThemeName    string
	ThemeVariant string

	RenderOptions render.RenderOptions
}

// BuildForm runs the loader → parser → builder → decorator stages.
func (o *Orchestrator) BuildForm(ctx context.Context, req Request) (model.FormModel, error) {
	if ctx == nil {
		return model.FormModel{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.FormModel{}, err
	}
	if o.initialiseErr != nil {
		return model.FormModel{}, o.initialiseErr
	}

	operationID := req.OperationID
	if operationID == "" {
		operationID = searchparams.OperationID
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return model.FormModel{}, err
	}
	operations, err := o.parser.Operations(ctx, doc)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("orchestrator: parse operations: %w", err)
	}
	op, ok := operations[operationID]
	if !ok {
		return model.FormModel{}, fmt.Errorf("orchestrator: operation %q not found", operationID)
	}

	form, err := o.builder.Build(op)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("orchestrator: build form model: %w", err)
	}
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(&form); err != nil {
			return model.FormModel{}, fmt.Errorf("orchestrator: decorate form: %w", err)
		}
	}
	return form, nil
}

// Render renders an already built form. The request's render options are
// used as given, except that a configured theme selector fills in the theme.
func (o *Orchestrator) Render(ctx context.Context, req Request, form model.FormModel) ([]byte, error) {
	renderer, err := o.Renderer(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := req.RenderOptions
	if options.Theme == nil {
		cfg, err := o.ResolveTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
		options.Theme = cfg
	}

	output, err := renderer.Render(ctx, form, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Generate builds and renders in one call.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	form, err := o.BuildForm(ctx, req)
	if err != nil {
		return nil, err
	}
	return o.Render(ctx, req, form)
}

// ResolveTheme returns nil when no selector is configured.
func (o *Orchestrator) ResolveTheme(name, variant string) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}
	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	return themes.RendererConfig(selection), nil
}

// Renderer looks up name, falling back to the default renderer when empty.
func (o *Orchestrator) Renderer(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}
	target := name
	if target == "" {
		target = o.defaultRenderer
	}
	renderer, err := o.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgopenapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	src := req.Source
	if src == nil {
		src = searchparams.Source()
	}
	doc, err := o.loader.Load(ctx, src)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		if o.documentFS == nil {
			o.documentFS = searchparams.DocumentFS()
		}
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithFileSystem(o.documentFS)))
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgopenapi.NewParserOptions())
	}
	if o.builder == nil {
		o.builder = model.NewBuilder()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	o.prependUIDecorator()
}

// prependUIDecorator runs the UI schema decorator before caller decorators so
// they see the final labels and order.
func (o *Orchestrator) prependUIDecorator() {
	if !o.uiSchemaSpecified && o.uiSchemaFS == nil {
		o.uiSchemaFS = searchparams.UISchemaFS()
	}
	if o.uiSchemaFS == nil {
		return
	}
	store, err := uischema.LoadFS(o.uiSchemaFS)
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: load ui schema: %w", err)
		return
	}
	if store.Empty() {
		return
	}
	o.decorators = append([]model.Decorator{uischema.NewDecorator(store)}, o.decorators...)
}
