// Package tui drives a form from the terminal. Each field is prompted in model
// order with its stored value as the default, answers are written back as
// change events, and the collected values are serialized once the submit
// prompt has been answered.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/cloudprivacylabs/lsa-ui/pkg/form"
	"github.com/cloudprivacylabs/lsa-ui/pkg/model"
	"github.com/cloudprivacylabs/lsa-ui/pkg/render"
)

// Renderer implements render.Renderer for terminal-driven sessions.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	theme        Theme
}

var _ render.Renderer = (*Renderer)(nil)

// Snapshot is the JSON payload produced by Render.
type Snapshot struct {
	OperationID string            `json:"operationId"`
	Fields      []form.FieldView  `json:"fields"`
	Submit      form.SubmitResult `json:"submit"`
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	switch r.outputFormat {
	case OutputFormatJSON, OutputFormatFormURLEncoded, OutputFormatPrettyText:
	default:
		return nil, fmt.Errorf("tui: unsupported output format %q", r.outputFormat)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render prompts for every field and returns the collected values. Values in
// options seed the prompts' defaults.
func (r *Renderer) Render(ctx context.Context, formModel model.FormModel, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, ErrNoDriver
	}

	state := form.New(formModel)
	for name, value := range options.Values {
		if err := state.Change(name, value); err != nil && !errors.Is(err, form.ErrUnknownField) {
			return nil, err
		}
	}

	if formModel.Summary != "" {
		if err := r.driver.Info(ctx, r.theme.InfoPrefix+formModel.Summary); err != nil {
			return nil, err
		}
	}

	for _, view := range state.View() {
		answer, err := r.driver.Input(ctx, InputConfig{
			Message: view.Label,
			Default: view.Value,
			Help:    view.Placeholder,
		})
		if err != nil {
			return nil, fmt.Errorf("tui: prompt %s: %w", view.ID, err)
		}
		if err := state.Change(view.ID, answer); err != nil {
			return nil, err
		}
	}

	submitLabel := formModel.Actions.SubmitLabel
	if submitLabel == "" {
		submitLabel = model.DefaultSubmitLabel
	}
	if _, err := r.driver.Confirm(ctx, ConfirmConfig{Message: submitLabel + "?", Default: true}); err != nil {
		return nil, fmt.Errorf("tui: prompt submit: %w", err)
	}

	return r.serialize(formModel.OperationID, state.View(), state.Submit())
}

func (r *Renderer) serialize(operationID string, views []form.FieldView, result form.SubmitResult) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		values := url.Values{}
		for _, view := range views {
			values.Set(view.ID, view.Value)
		}
		return []byte(values.Encode()), nil
	case OutputFormatPrettyText:
		var b strings.Builder
		for _, view := range views {
			fmt.Fprintf(&b, "%s (%s): %q\n", view.Label, view.ID, view.Value)
		}
		return []byte(b.String()), nil
	default:
		out, err := json.MarshalIndent(Snapshot{OperationID: operationID, Fields: views, Submit: result}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("tui: encode snapshot: %w", err)
		}
		return out, nil
	}
}
