package uischema_test

import (
	"testing"
	"testing/fstest"

	pkgmodel "github.com/cloudprivacylabs/lsa-ui/pkg/model"
	"github.com/cloudprivacylabs/lsa-ui/pkg/searchparams"
	"github.com/cloudprivacylabs/lsa-ui/pkg/testsupport"
	"github.com/cloudprivacylabs/lsa-ui/pkg/uischema"
)

func TestLoadFS_Embedded(t *testing.T) {
	store, err := uischema.LoadFS(searchparams.UISchemaFS())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	op, ok := store.Operation(searchparams.OperationID)
	if !ok {
		t.Fatalf("operation missing")
	}
	if op.Form.SubmitLabel != "Generate" {
		t.Fatalf("submit label = %q", op.Form.SubmitLabel)
	}
	if got := *op.Fields["labelText"].Label; got != "valueType" {
		t.Fatalf("labelText label = %q", got)
	}
	if op.Fields["valueType"].Placeholder != nil {
		t.Fatalf("valueType should not declare a placeholder")
	}
}

func TestLoadFS_JSONAndSanitising(t *testing.T) {
	files := fstest.MapFS{
		"ui.json": {Data: []byte(`{"operations":{"op":{"fields":{"a":{"label":"<b>Bold</b> &amp; plain"}}}}}`)},
		"notes.txt": {Data: []byte("ignored")},
	}
	store, err := uischema.LoadFS(files)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	op, _ := store.Operation("op")
	if got := *op.Fields["a"].Label; got != "Bold & plain" {
		t.Fatalf("label = %q", got)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := map[string]fstest.MapFS{
		"empty file": {"ui.yaml": {Data: []byte("   ")}},
		"invalid":    {"ui.yaml": {Data: []byte("operations: [")}},
		"duplicate": {
			"a.yaml": {Data: []byte("operations: {op: {}}")},
			"b.yaml": {Data: []byte("operations: {op: {}}")},
		},
		"empty id": {"ui.yaml": {Data: []byte(`operations: {" ": {}}`)}},
	}
	for name, files := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := uischema.LoadFS(files); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadFS_Nil(t *testing.T) {
	store, err := uischema.LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}

func TestDecorator_AppliesOrderLabelsAndSubmit(t *testing.T) {
	store, err := uischema.LoadFS(searchparams.UISchemaFS())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	form := pkgmodel.FormModel{
		OperationID: searchparams.OperationID,
		Fields: []pkgmodel.Field{
			{Name: "extra", Label: "extra"},
			{Name: "labelText", Label: "labelText"},
			{Name: "schema", Label: "schema"},
			{Name: "valueType", Label: "valueType"},
		},
		Actions: pkgmodel.Actions{SubmitLabel: pkgmodel.DefaultSubmitLabel},
	}
	if err := uischema.NewDecorator(store).Decorate(&form); err != nil {
		t.Fatalf("decorate: %v", err)
	}

	testsupport.AssertEqual(t, []pkgmodel.Field{
		{Name: "schema", Label: "Schema", Placeholder: "Schema", Order: 1},
		{Name: "valueType", Label: "valueType", Order: 2},
		{Name: "labelText", Label: "valueType", Order: 3},
		{Name: "extra", Label: "extra"},
	}, form.Fields)
	if form.Actions.SubmitLabel != "Generate" {
		t.Fatalf("submit label = %q", form.Actions.SubmitLabel)
	}
}

func TestDecorator_UnknownOperationUntouched(t *testing.T) {
	store, err := uischema.LoadFS(searchparams.UISchemaFS())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	form := pkgmodel.FormModel{OperationID: "other", Fields: []pkgmodel.Field{{Name: "b"}, {Name: "a"}}}
	want := form

	if err := uischema.NewDecorator(store).Decorate(&form); err != nil {
		t.Fatalf("decorate: %v", err)
	}
	testsupport.AssertEqual(t, want, form)
}
