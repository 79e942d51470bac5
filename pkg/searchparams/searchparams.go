// Package searchparams declares the Layered Schemas parameter form: an OpenAPI
// operation describing its three text inputs plus the UI schema that orders
// and labels them.
package searchparams

import (
	"embed"
	"io/fs"

	pkgopenapi "github.com/cloudprivacylabs/lsa-ui/pkg/openapi"
)

const (
	// OperationID names the operation backing the parameter form.
	OperationID = "generateLayeredSchema"

	FieldSchema    = "schema"
	FieldValueType = "valueType"
	FieldLabelText = "labelText"

	documentName = "openapi.yaml"
)

//go:embed openapi.yaml
var documentFS embed.FS

//go:embed uischema.yaml
var uiSchemaFS embed.FS

// FieldNames lists the form inputs in display order.
func FieldNames() []string {
	return []string{FieldSchema, FieldValueType, FieldLabelText}
}

// DocumentFS exposes the embedded OpenAPI declaration.
func DocumentFS() fs.FS {
	return documentFS
}

// UISchemaFS exposes the embedded UI schema.
func UISchemaFS() fs.FS {
	return uiSchemaFS
}

// Source points a loader configured with DocumentFS at the declaration.
func Source() pkgopenapi.Source {
	return pkgopenapi.SourceFromFS(documentName)
}
