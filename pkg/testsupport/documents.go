package testsupport

import (
	"io/fs"
	"testing"

	pkgopenapi "github.com/cloudprivacylabs/lsa-ui/pkg/openapi"
	"github.com/cloudprivacylabs/lsa-ui/pkg/searchparams"
)

// LoadEmbeddedDocument wraps the embedded parameter form declaration.
func LoadEmbeddedDocument(t *testing.T) pkgopenapi.Document {
	t.Helper()

	src := searchparams.Source()
	data, err := fs.ReadFile(searchparams.DocumentFS(), src.Location())
	if err != nil {
		t.Fatalf("read embedded document: %v", err)
	}
	doc, err := pkgopenapi.NewDocument(src, data)
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return doc
}
