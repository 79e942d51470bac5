package lsaui

import (
	internalLoader "github.com/cloudprivacylabs/lsa-ui/internal/openapi/loader"
	internalParser "github.com/cloudprivacylabs/lsa-ui/internal/openapi/parser"
	pkgopenapi "github.com/cloudprivacylabs/lsa-ui/pkg/openapi"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	return internalLoader.New(pkgopenapi.NewLoaderOptions(options...))
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	return internalParser.New(pkgopenapi.NewParserOptions(options...))
}
