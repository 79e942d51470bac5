package form_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/cloudprivacylabs/lsa-ui/pkg/form"
	"github.com/cloudprivacylabs/lsa-ui/pkg/testsupport"
)

func TestNew_AllFieldsStartEmpty(t *testing.T) {
	state := form.New(testsupport.ParameterFormModel())

	testsupport.AssertEqual(t, map[string]string{
		"schema":    "",
		"valueType": "",
		"labelText": "",
	}, state.Values())
}

func TestChange_StoresRawValue(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"  padded  ",
		"<b>markup</b>",
		"line\nbreak",
		"ünïcødé ✓",
	}

	for _, name := range []string{"schema", "valueType", "labelText"} {
		for _, raw := range inputs {
			t.Run(name+"/"+raw, func(t *testing.T) {
				state := form.New(testsupport.ParameterFormModel())
				if err := state.Change(name, raw); err != nil {
					t.Fatalf("change: %v", err)
				}
				got, ok := state.Value(name)
				if !ok {
					t.Fatalf("value for %q missing", name)
				}
				if got != raw {
					t.Fatalf("value mismatch: want %q, got %q", raw, got)
				}
			})
		}
	}
}

func TestChange_DoesNotTouchOtherFields(t *testing.T) {
	state := form.New(testsupport.ParameterFormModel())

	if err := state.Change("valueType", "xsd:string"); err != nil {
		t.Fatalf("change valueType: %v", err)
	}
	if err := state.Change("labelText", "Name"); err != nil {
		t.Fatalf("change labelText: %v", err)
	}
	if err := state.Change("valueType", "xsd:int"); err != nil {
		t.Fatalf("change valueType again: %v", err)
	}

	testsupport.AssertEqual(t, map[string]string{
		"schema":    "",
		"valueType": "xsd:int",
		"labelText": "Name",
	}, state.Values())
}

func TestChange_TypeThenClearSchema(t *testing.T) {
	state := form.New(testsupport.ParameterFormModel())

	typed := ""
	for _, r := range "abc" {
		typed += string(r)
		if err := state.Change("schema", typed); err != nil {
			t.Fatalf("change: %v", err)
		}
		if got, _ := state.Value("schema"); got != typed {
			t.Fatalf("after keystroke want %q, got %q", typed, got)
		}
	}
	if got, _ := state.Value("schema"); got != "abc" {
		t.Fatalf("want abc, got %q", got)
	}

	if err := state.Change("schema", ""); err != nil {
		t.Fatalf("clear: %v", err)
	}

	testsupport.AssertEqual(t, map[string]string{
		"schema":    "",
		"valueType": "",
		"labelText": "",
	}, state.Values())
}

func TestChange_UnknownField(t *testing.T) {
	state := form.New(testsupport.ParameterFormModel())

	err := state.Change("nope", "x")
	if !errors.Is(err, form.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if _, ok := state.Value("nope"); ok {
		t.Fatalf("unknown field must not be stored")
	}
}

func TestView_DerivesFromStore(t *testing.T) {
	state := form.New(testsupport.ParameterFormModel())
	if err := state.Change("labelText", "Patient name"); err != nil {
		t.Fatalf("change: %v", err)
	}

	testsupport.AssertEqual(t, []form.FieldView{
		{ID: "schema", Label: "Schema", Placeholder: "Schema", Value: ""},
		{ID: "valueType", Label: "valueType", Value: ""},
		{ID: "labelText", Label: "valueType", Value: "Patient name"},
	}, state.View())
}

func TestValues_ReturnsCopy(t *testing.T) {
	state := form.New(testsupport.ParameterFormModel())
	values := state.Values()
	values["schema"] = "mutated"

	if got, _ := state.Value("schema"); got != "" {
		t.Fatalf("store changed through Values copy: %q", got)
	}
}

func TestSubmit_IsNoOp(t *testing.T) {
	cases := map[string]map[string]string{
		"empty": {},
		"filled": {
			"schema":    "person.json",
			"valueType": "xsd:string",
			"labelText": "Name",
		},
	}

	for name, inputs := range cases {
		t.Run(name, func(t *testing.T) {
			state := form.New(testsupport.ParameterFormModel())
			for field, value := range inputs {
				if err := state.Change(field, value); err != nil {
					t.Fatalf("change %s: %v", field, err)
				}
			}
			before := state.Values()

			result := state.Submit()
			if !result.Prevented {
				t.Fatalf("submission must be prevented")
			}
			testsupport.AssertEqual(t, before, state.Values())
		})
	}
}

func TestReset_RestoresMountState(t *testing.T) {
	state := form.New(testsupport.ParameterFormModel())
	_ = state.Change("schema", "abc")

	state.Reset()

	if got, _ := state.Value("schema"); got != "" {
		t.Fatalf("reset left %q", got)
	}
}

func TestFromValues_ReplaysDeclaredFields(t *testing.T) {
	state := form.FromValues(testsupport.ParameterFormModel(), url.Values{
		"schema":    {"a b"},
		"extra":     {"ignored"},
		"labelText": {""},
	})

	testsupport.AssertEqual(t, map[string]string{
		"schema":    "a b",
		"valueType": "",
		"labelText": "",
	}, state.Values())
}
