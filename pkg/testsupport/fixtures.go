// Package testsupport holds fixtures shared by package tests.
package testsupport

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgmodel "github.com/cloudprivacylabs/lsa-ui/pkg/model"
)

// ParameterFormModel returns the decorated model for the Layered Schemas
// parameter form, as the orchestrator produces it from the embedded
// declaration.
func ParameterFormModel() pkgmodel.FormModel {
	return pkgmodel.FormModel{
		OperationID: "generateLayeredSchema",
		Endpoint:    "/",
		Method:      "POST",
		Summary:     "Generate a layered schema",
		Fields: []pkgmodel.Field{
			{Name: "schema", Type: pkgmodel.FieldTypeString, Label: "Schema", Placeholder: "Schema", Order: 1},
			{Name: "valueType", Type: pkgmodel.FieldTypeString, Label: "valueType", Order: 2},
			{Name: "labelText", Type: pkgmodel.FieldTypeString, Label: "valueType", Order: 3},
		},
		Actions: pkgmodel.Actions{SubmitLabel: "Generate"},
	}
}

// AssertEqual fails the test with a diff when want and got differ.
func AssertEqual(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
