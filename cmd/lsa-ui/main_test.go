package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/cloudprivacylabs/lsa-ui/internal/config"
	"github.com/cloudprivacylabs/lsa-ui/pkg/orchestrator"
)

func TestNewOrchestrator_RegistersRenderers(t *testing.T) {
	orch, err := newOrchestrator(config.Default())
	if err != nil {
		t.Fatalf("new orchestrator: %v", err)
	}
	for _, name := range []string{"vanilla", "tui"} {
		if _, err := orch.Renderer(name); err != nil {
			t.Fatalf("renderer %s: %v", name, err)
		}
	}

	out, err := orch.Generate(context.Background(), orchestrator.Request{Renderer: "vanilla"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), `data-theme="layered"`) {
		t.Fatalf("expected themed output:\n%s", out)
	}
}

func TestRun_Help(t *testing.T) {
	var stdout bytes.Buffer
	if err := run(context.Background(), []string{"--help"}, &stdout); err != nil {
		t.Fatalf("help: %v", err)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	var stdout bytes.Buffer
	if err := run(context.Background(), []string{"--log-level", "loud"}, &stdout); err == nil {
		t.Fatalf("expected error")
	}
}
