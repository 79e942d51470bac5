// lsa-ui serves the Layered Schemas parameter form over HTTP, or with --tui
// fills it in from the terminal and prints the resulting field values.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/cloudprivacylabs/lsa-ui/internal/config"
	"github.com/cloudprivacylabs/lsa-ui/internal/logging"
	"github.com/cloudprivacylabs/lsa-ui/internal/shell"
	"github.com/cloudprivacylabs/lsa-ui/pkg/orchestrator"
	"github.com/cloudprivacylabs/lsa-ui/pkg/render"
	"github.com/cloudprivacylabs/lsa-ui/pkg/renderers/tui"
	"github.com/cloudprivacylabs/lsa-ui/pkg/renderers/vanilla"
	"github.com/cloudprivacylabs/lsa-ui/pkg/themes"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	flags := config.NewFlags("lsa-ui")
	cfg, err := flags.Parse(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(level, os.Stderr)

	orch, err := newOrchestrator(cfg)
	if err != nil {
		return err
	}

	if flags.TUI() {
		return runTUI(ctx, orch, cfg, stdout)
	}
	return runServer(ctx, orch, cfg, logger)
}

func newOrchestrator(cfg config.Config) (*orchestrator.Orchestrator, error) {
	selector, err := themes.NewSelector(themes.DefaultTheme, themes.DefaultVariant, themes.Default())
	if err != nil {
		return nil, err
	}

	var vanillaOpts []vanilla.Option
	if cfg.TemplatesDir != "" {
		vanillaOpts = append(vanillaOpts, vanilla.WithTemplatesDir(cfg.TemplatesDir))
	}
	htmlRenderer, err := vanilla.New(vanillaOpts...)
	if err != nil {
		return nil, err
	}
	termRenderer, err := tui.New()
	if err != nil {
		return nil, err
	}

	registry := render.NewRegistry()
	if err := registry.Register(htmlRenderer); err != nil {
		return nil, err
	}
	if err := registry.Register(termRenderer); err != nil {
		return nil, err
	}

	return orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(cfg.Renderer),
		orchestrator.WithThemeSelector(selector),
	), nil
}

func runServer(ctx context.Context, orch *orchestrator.Orchestrator, cfg config.Config, logger *slog.Logger) error {
	options := []shell.Option{
		shell.WithLogger(logger),
		shell.WithOrchestrator(orch),
		shell.WithMountID(cfg.MountID),
		shell.WithRenderer(cfg.Renderer),
		shell.WithTheme(cfg.Theme, cfg.Variant),
	}
	if cfg.TemplatesDir != "" {
		dir := os.DirFS(cfg.TemplatesDir)
		if _, err := fs.Stat(dir, "templates/layout.tmpl"); err == nil {
			options = append(options, shell.WithLayoutFS(dir))
		}
	}

	app, err := shell.New(options...)
	if err != nil {
		return err
	}
	if err := app.Init(ctx); err != nil {
		return err
	}
	return app.Serve(ctx, cfg.Addr)
}

func runTUI(ctx context.Context, orch *orchestrator.Orchestrator, cfg config.Config, stdout io.Writer) error {
	out, err := orch.Generate(ctx, orchestrator.Request{
		Renderer:     "tui",
		ThemeName:    cfg.Theme,
		ThemeVariant: cfg.Variant,
	})
	if errors.Is(err, tui.ErrAborted) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}
