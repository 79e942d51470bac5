// Package shell serves the Layered Schemas application: a page layout with a
// header link back to the root route, and the parameter form mounted into the
// layout's mount element.
package shell

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/cloudprivacylabs/lsa-ui/internal/logging"
	"github.com/cloudprivacylabs/lsa-ui/pkg/model"
	"github.com/cloudprivacylabs/lsa-ui/pkg/orchestrator"
	"github.com/cloudprivacylabs/lsa-ui/pkg/render/template/gotemplate"
	"github.com/cloudprivacylabs/lsa-ui/pkg/renderers/vanilla"
	"github.com/cloudprivacylabs/lsa-ui/pkg/themes"
)

const (
	// Title is the header caption; it links to HomePath.
	Title = "Layered Schemas"
	// HomePath is the only page route.
	HomePath = "/"
	// DefaultMountID is the id of the element the form mounts into.
	DefaultMountID = "root"
	// ChangePath prefixes the per-field change endpoint.
	ChangePath = vanilla.DefaultChangeEndpoint

	layoutTemplate = "templates/layout.tmpl"
)

var (
	// ErrMountPointMissing is returned by Init when the layout has no element
	// with the configured mount id.
	ErrMountPointMissing = errors.New("shell: mount point missing")
	// ErrAlreadyMounted is returned by a second Init.
	ErrAlreadyMounted = errors.New("shell: already mounted")
	// ErrNotMounted is returned when the handler is requested before Init.
	ErrNotMounted = errors.New("shell: not mounted")
)

//go:embed templates/*.tmpl
var embeddedLayout embed.FS

// LayoutFS exposes the embedded page layout.
func LayoutFS() fs.FS {
	return embeddedLayout
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger used for request and lifecycle records.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithOrchestrator supplies the pipeline that builds and renders the form.
func WithOrchestrator(o *orchestrator.Orchestrator) Option {
	return func(s *Shell) {
		s.orchestrator = o
	}
}

// WithMountID changes the id of the element the form mounts into.
func WithMountID(id string) Option {
	return func(s *Shell) {
		s.mountID = strings.TrimSpace(id)
	}
}

// WithRenderer selects the registered renderer used for the page form. It
// must produce HTML.
func WithRenderer(name string) Option {
	return func(s *Shell) {
		s.rendererName = name
	}
}

// WithTheme selects the theme name and variant.
func WithTheme(name, variant string) Option {
	return func(s *Shell) {
		s.themeName = name
		s.themeVariant = variant
	}
}

// WithLayoutFS replaces the embedded layout. The filesystem must contain
// templates/layout.tmpl.
func WithLayoutFS(files fs.FS) Option {
	return func(s *Shell) {
		if files != nil {
			s.layoutFS = files
		}
	}
}

// WithAssetsFS replaces the static files served under the theme's asset
// prefix.
func WithAssetsFS(files fs.FS) Option {
	return func(s *Shell) {
		if files != nil {
			s.assetsFS = files
		}
	}
}

// Shell is the application shell. Build it with New, then call Init once
// before serving.
type Shell struct {
	orchestrator *orchestrator.Orchestrator
	logger       *slog.Logger
	mountID      string
	rendererName string
	themeName    string
	themeVariant string
	layoutFS     fs.FS
	assetsFS     fs.FS

	mu      sync.Mutex
	mounted bool
	form    model.FormModel
	theme   *theme.RendererConfig
	layout  string
	handler http.Handler
}

// New applies options and fills the defaults: the embedded layout and assets,
// and an orchestrator with the built-in theme.
func New(options ...Option) (*Shell, error) {
	s := &Shell{
		logger:   logging.Discard(),
		mountID:  DefaultMountID,
		layoutFS: LayoutFS(),
		assetsFS: vanilla.AssetsFS(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.mountID == "" {
		return nil, errors.New("shell: mount id is required")
	}
	if s.orchestrator == nil {
		selector, err := themes.NewSelector(themes.DefaultTheme, themes.DefaultVariant, themes.Default())
		if err != nil {
			return nil, fmt.Errorf("shell: theme selector: %w", err)
		}
		s.orchestrator = orchestrator.New(orchestrator.WithThemeSelector(selector))
	}
	return s, nil
}

// Init mounts the form: it builds the form model, resolves the theme, renders
// the layout and checks that the mount element exists. It may only succeed
// once per Shell.
func (s *Shell) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mounted {
		return ErrAlreadyMounted
	}

	renderer, err := s.orchestrator.Renderer(s.rendererName)
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	if !strings.HasPrefix(renderer.ContentType(), "text/html") {
		return fmt.Errorf("shell: renderer %q produces %s, not HTML", renderer.Name(), renderer.ContentType())
	}

	form, err := s.orchestrator.BuildForm(ctx, orchestrator.Request{})
	if err != nil {
		return fmt.Errorf("shell: build form: %w", err)
	}
	themeCfg, err := s.orchestrator.ResolveTheme(s.themeName, s.themeVariant)
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	layout, err := s.renderLayout(themeCfg)
	if err != nil {
		return err
	}
	if err := checkMountPoint(layout, s.mountID); err != nil {
		return err
	}

	s.form = form
	s.theme = themeCfg
	s.layout = layout
	s.handler = s.routes()
	s.mounted = true

	s.logger.Info("form mounted",
		"operation", form.OperationID,
		"fields", len(form.Fields),
		"mount", s.mountID,
		"renderer", renderer.Name(),
	)
	return nil
}

// Handler returns the HTTP handler for the mounted application.
func (s *Shell) Handler() (http.Handler, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mounted {
		return nil, ErrNotMounted
	}
	return s.handler, nil
}

// Form returns the mounted form model.
func (s *Shell) Form() model.FormModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *Shell) renderLayout(themeCfg *theme.RendererConfig) (string, error) {
	engine, err := gotemplate.New(gotemplate.WithFS(s.layoutFS))
	if err != nil {
		return "", fmt.Errorf("shell: layout engine: %w", err)
	}

	data := map[string]any{
		"title":     Title,
		"home_href": HomePath,
		"mount_id":  s.mountID,
	}
	if themeCfg != nil {
		data["theme"] = themeCfg.Theme
		data["variant"] = themeCfg.Variant
		data["css_vars"] = themes.CSSVarsStyle(themeCfg)
		if themeCfg.AssetURL != nil {
			data["stylesheet"] = themeCfg.AssetURL(themes.StylesheetAsset)
			data["runtime"] = themeCfg.AssetURL(themes.RuntimeAsset)
		}
	}

	layout, err := engine.RenderTemplate(layoutTemplate, data)
	if err != nil {
		return "", fmt.Errorf("shell: render layout: %w", err)
	}
	return layout, nil
}

// assetPrefix is where static files are served; it follows the theme so the
// URLs in the layout resolve.
func (s *Shell) assetPrefix() string {
	if s.theme == nil || s.theme.AssetURL == nil {
		return "/assets/"
	}
	stylesheet := s.theme.AssetURL(themes.StylesheetAsset)
	idx := strings.LastIndex(stylesheet, "/")
	if idx <= 0 || strings.Contains(stylesheet, "://") {
		return "/assets/"
	}
	return stylesheet[:idx+1]
}
