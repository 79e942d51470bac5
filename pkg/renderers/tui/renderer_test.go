package tui

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/cloudprivacylabs/lsa-ui/pkg/form"
	"github.com/cloudprivacylabs/lsa-ui/pkg/render"
	"github.com/cloudprivacylabs/lsa-ui/pkg/testsupport"
)

type stubDriver struct {
	inputs       []string
	confirm      []bool
	inputErr     error
	prompts      []InputConfig
	confirms     []ConfirmConfig
	infoMessages []string
	inputPos     int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg)
	if s.inputErr != nil {
		return "", s.inputErr
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.confirms = append(s.confirms, cfg)
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func TestRender_PromptsEveryFieldInOrder(t *testing.T) {
	driver := &stubDriver{
		inputs:  []string{"person.schema.json", "", "  spaced  "},
		confirm: []bool{true},
	}
	r, err := New(WithPromptDriver(driver), WithTheme(Theme{InfoPrefix: "> "}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(context.Background(), testsupport.ParameterFormModel(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	testsupport.AssertEqual(t, []InputConfig{
		{Message: "Schema", Help: "Schema"},
		{Message: "valueType"},
		{Message: "valueType"},
	}, driver.prompts)
	testsupport.AssertEqual(t, []ConfirmConfig{{Message: "Generate?", Default: true}}, driver.confirms)
	testsupport.AssertEqual(t, []string{"> Generate a layered schema"}, driver.infoMessages)

	var snapshot Snapshot
	if err := json.Unmarshal(out, &snapshot); err != nil {
		t.Fatalf("decode: %v", err)
	}
	testsupport.AssertEqual(t, Snapshot{
		OperationID: "generateLayeredSchema",
		Fields: []form.FieldView{
			{ID: "schema", Label: "Schema", Placeholder: "Schema", Value: "person.schema.json"},
			{ID: "valueType", Label: "valueType", Value: ""},
			{ID: "labelText", Label: "valueType", Value: "  spaced  "},
		},
		Submit: form.SubmitResult{Prevented: true},
	}, snapshot)
}

func TestRender_SeedsDefaultsFromValues(t *testing.T) {
	driver := &stubDriver{inputs: []string{"a", "b", "c"}, confirm: []bool{false}}
	r, err := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatFormURLEncoded))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(context.Background(), testsupport.ParameterFormModel(), render.RenderOptions{
		Values: map[string]string{"valueType": "xsd:string", "ignored": "x"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if driver.prompts[1].Default != "xsd:string" {
		t.Fatalf("valueType default = %q", driver.prompts[1].Default)
	}
	if got := string(out); got != "labelText=c&schema=a&valueType=b" {
		t.Fatalf("unexpected payload %q", got)
	}
	if r.ContentType() != "application/x-www-form-urlencoded" {
		t.Fatalf("content type = %q", r.ContentType())
	}
}

func TestRender_PrettyText(t *testing.T) {
	driver := &stubDriver{inputs: []string{"abc", "", ""}, confirm: []bool{true}}
	r, err := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatPrettyText))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(context.Background(), testsupport.ParameterFormModel(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "Schema (schema): \"abc\"\nvalueType (valueType): \"\"\nvalueType (labelText): \"\"\n"
	if string(out) != want {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRender_Aborted(t *testing.T) {
	driver := &stubDriver{inputErr: ErrAborted}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	_, err = r.Render(context.Background(), testsupport.ParameterFormModel(), render.RenderOptions{})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if len(driver.confirms) != 0 {
		t.Fatalf("submit prompt should not run after abort")
	}
}

func TestRender_CancelledContext(t *testing.T) {
	r, err := New(WithPromptDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Render(ctx, testsupport.ParameterFormModel(), render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	if _, err := New(WithOutputFormat("yaml")); err == nil {
		t.Fatalf("expected error")
	}
}
