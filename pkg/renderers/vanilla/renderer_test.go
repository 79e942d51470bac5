package vanilla_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/cloudprivacylabs/lsa-ui/pkg/render"
	"github.com/cloudprivacylabs/lsa-ui/pkg/renderers/vanilla"
	"github.com/cloudprivacylabs/lsa-ui/pkg/testsupport"
	theme "github.com/goliatone/go-theme"
)

func renderForm(t *testing.T, opts render.RenderOptions, options ...vanilla.Option) []byte {
	t.Helper()

	renderer, err := vanilla.New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	output, err := renderer.Render(context.Background(), testsupport.ParameterFormModel(), opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return output
}

func TestRenderer_Structure(t *testing.T) {
	doc := testsupport.ParseHTML(t, renderForm(t, render.RenderOptions{}))

	forms := testsupport.Elements(doc, "form")
	if len(forms) != 1 {
		t.Fatalf("expected one form, got %d", len(forms))
	}
	if method, _ := testsupport.Attr(forms[0], "method"); method != "post" {
		t.Fatalf("form method = %q", method)
	}
	if action, _ := testsupport.Attr(forms[0], "action"); action != "/" {
		t.Fatalf("form action = %q", action)
	}
	if endpoint, _ := testsupport.Attr(forms[0], "data-change-endpoint"); endpoint != vanilla.DefaultChangeEndpoint {
		t.Fatalf("change endpoint = %q", endpoint)
	}

	type labelled struct {
		For, Caption, InputID, Placeholder, Value string
	}
	var got []labelled
	for _, label := range testsupport.Elements(doc, "label") {
		inputs := testsupport.Elements(label, "input")
		if len(inputs) != 1 {
			t.Fatalf("label should wrap exactly one input, got %d", len(inputs))
		}
		forAttr, _ := testsupport.Attr(label, "for")
		id, _ := testsupport.Attr(inputs[0], "id")
		placeholder, _ := testsupport.Attr(inputs[0], "placeholder")
		value, _ := testsupport.Attr(inputs[0], "value")
		got = append(got, labelled{
			For:         forAttr,
			Caption:     testsupport.Text(label),
			InputID:     id,
			Placeholder: placeholder,
			Value:       value,
		})
	}

	testsupport.AssertEqual(t, []labelled{
		{For: "schema", Caption: "Schema", InputID: "schema", Placeholder: "Schema"},
		{For: "valueType", Caption: "valueType", InputID: "valueType"},
		{For: "labelText", Caption: "valueType", InputID: "labelText"},
	}, got)

	buttons := testsupport.Elements(doc, "button")
	if len(buttons) != 1 {
		t.Fatalf("expected one button, got %d", len(buttons))
	}
	if text := testsupport.Text(buttons[0]); text != "Generate" {
		t.Fatalf("button text = %q", text)
	}
	if typ, _ := testsupport.Attr(buttons[0], "type"); typ != "submit" {
		t.Fatalf("button type = %q", typ)
	}
}

func TestRenderer_PlaceholderOnlyOnSchema(t *testing.T) {
	doc := testsupport.ParseHTML(t, renderForm(t, render.RenderOptions{}))

	for _, id := range []string{"valueType", "labelText"} {
		input := testsupport.ElementByID(doc, id)
		if input == nil {
			t.Fatalf("input %s missing", id)
		}
		if _, ok := testsupport.Attr(input, "placeholder"); ok {
			t.Fatalf("input %s should not carry a placeholder", id)
		}
	}
}

func TestRenderer_ValuesComeFromStore(t *testing.T) {
	output := renderForm(t, render.RenderOptions{Values: map[string]string{
		"schema":    `"><script>alert(1)</script>`,
		"labelText": "  Name  ",
		"unknown":   "dropped",
	}})
	doc := testsupport.ParseHTML(t, output)

	if scripts := testsupport.Elements(doc, "script"); len(scripts) != 0 {
		t.Fatalf("value escaped into markup: %s", output)
	}

	want := map[string]string{
		"schema":    `"><script>alert(1)</script>`,
		"valueType": "",
		"labelText": "  Name  ",
	}
	for id, value := range want {
		input := testsupport.ElementByID(doc, id)
		if input == nil {
			t.Fatalf("input %s missing", id)
		}
		if got, _ := testsupport.Attr(input, "value"); got != value {
			t.Fatalf("input %s value = %q, want %q", id, got, value)
		}
	}
}

func TestRenderer_ThemeAttribute(t *testing.T) {
	doc := testsupport.ParseHTML(t, renderForm(t, render.RenderOptions{
		Theme: &theme.RendererConfig{Theme: "layered", Variant: "dark"},
	}))

	divs := testsupport.Elements(doc, "div")
	if len(divs) == 0 {
		t.Fatalf("wrapper missing")
	}
	if got, _ := testsupport.Attr(divs[0], "data-theme"); got != "layered" {
		t.Fatalf("data-theme = %q", got)
	}
}

func TestRenderer_WithTemplateRenderer(t *testing.T) {
	stub := &stubTemplateRenderer{output: "custom-output"}

	renderer, err := vanilla.New(vanilla.WithTemplateRenderer(stub))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	output, err := renderer.Render(context.Background(), testsupport.ParameterFormModel(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(output) != "custom-output" {
		t.Fatalf("unexpected output %q", output)
	}
	if stub.name != "templates/form.tmpl" {
		t.Fatalf("unexpected template %q", stub.name)
	}
}

func TestRenderer_TemplateError(t *testing.T) {
	stub := &stubTemplateRenderer{err: errors.New("boom")}

	renderer, err := vanilla.New(vanilla.WithTemplateRenderer(stub))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := renderer.Render(context.Background(), testsupport.ParameterFormModel(), render.RenderOptions{}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRenderer_CancelledContext(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := renderer.Render(ctx, testsupport.ParameterFormModel(), render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestAssetsFS(t *testing.T) {
	for _, name := range []string{vanilla.StylesheetName, vanilla.RuntimeScriptName} {
		f, err := vanilla.AssetsFS().Open(name)
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		_ = f.Close()
	}
}

type stubTemplateRenderer struct {
	output string
	err    error
	name   string
}

func (s *stubTemplateRenderer) RenderTemplate(name string, _ any, _ ...io.Writer) (string, error) {
	s.name = name
	return s.output, s.err
}

func (s *stubTemplateRenderer) RenderString(string, any, ...io.Writer) (string, error) {
	return s.output, s.err
}

func (s *stubTemplateRenderer) GlobalContext(any) error {
	return nil
}
