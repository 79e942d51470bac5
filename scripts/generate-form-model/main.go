package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing/fstest"

	"github.com/spf13/pflag"

	"github.com/cloudprivacylabs/lsa-ui/pkg/model"
	pkgopenapi "github.com/cloudprivacylabs/lsa-ui/pkg/openapi"
	"github.com/cloudprivacylabs/lsa-ui/pkg/orchestrator"
	"github.com/cloudprivacylabs/lsa-ui/pkg/render"
	"github.com/cloudprivacylabs/lsa-ui/pkg/searchparams"
)

const snapshotRendererName = "form-model-snapshot"

type snapshotRenderer struct {
	path string
}

func (r *snapshotRenderer) Name() string {
	return snapshotRendererName
}

func (r *snapshotRenderer) ContentType() string {
	return "application/json"
}

func (r *snapshotRenderer) Render(_ context.Context, form model.FormModel, _ render.RenderOptions) ([]byte, error) {
	payload, err := json.MarshalIndent(form, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(r.path, payload, 0o644); err != nil {
		return nil, err
	}
	return payload, nil
}

func main() {
	var (
		schemaPath   string
		uiSchemaPath string
		operationID  string
		outputPath   string
	)
	flags := pflag.NewFlagSet("generate-form-model", pflag.ExitOnError)
	flags.StringVar(&schemaPath, "schema", "", "OpenAPI document path (embedded declaration when empty)")
	flags.StringVar(&uiSchemaPath, "uischema", "", "UI schema file (embedded UI schema when empty)")
	flags.StringVar(&operationID, "operation", searchparams.OperationID, "operation ID to snapshot")
	flags.StringVar(&outputPath, "output", "form_model.json", "output path for the serialized form model")
	_ = flags.Parse(os.Args[1:])

	ctx := context.Background()

	registry := render.NewRegistry()
	registry.MustRegister(&snapshotRenderer{path: outputPath})

	options := []orchestrator.Option{
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(snapshotRendererName),
	}
	if uiSchemaPath != "" {
		files, err := uiSchemaFS(uiSchemaPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load UI schema: %v\n", err)
			os.Exit(1)
		}
		options = append(options, orchestrator.WithUISchemaFS(files))
	}

	req := orchestrator.Request{OperationID: operationID}
	if schemaPath != "" {
		req.Source = pkgopenapi.SourceFromFile(schemaPath)
	}

	if _, err := orchestrator.New(options...).Generate(ctx, req); err != nil {
		fmt.Fprintf(os.Stderr, "failed to snapshot form model: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote form model snapshot to %s\n", outputPath)
}

func uiSchemaFS(path string) (fstest.MapFS, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ui schema: %w", err)
	}
	return fstest.MapFS{
		filepath.Base(path): {Data: data},
	}, nil
}
