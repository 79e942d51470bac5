// lsa-ui-lint checks OpenAPI documents for x-formgen extensions the form
// builder does not understand. With no arguments it checks the embedded
// parameter form declaration.
package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/pflag"

	lsaui "github.com/cloudprivacylabs/lsa-ui"
	"github.com/cloudprivacylabs/lsa-ui/pkg/model"
	pkgopenapi "github.com/cloudprivacylabs/lsa-ui/pkg/openapi"
	"github.com/cloudprivacylabs/lsa-ui/pkg/searchparams"
)

type violation struct {
	file string
	model.Violation
}

func main() {
	code, err := run(context.Background(), os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

func run(ctx context.Context, args []string, stderr io.Writer) (int, error) {
	flagSet := pflag.NewFlagSet("lsa-ui-lint", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [paths...]\n\nLint OpenAPI documents for unsupported x-formgen extensions.\n", filepath.Base(os.Args[0]))
	}
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0, nil
		}
		return 2, err
	}

	parser := lsaui.NewParser(pkgopenapi.WithPartialDocuments(true))

	var docs []pkgopenapi.Document
	if paths := flagSet.Args(); len(paths) > 0 {
		for _, path := range paths {
			raw, err := os.ReadFile(path)
			if err != nil {
				return 1, fmt.Errorf("lint %s: read file: %w", path, err)
			}
			doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(path), raw)
			if err != nil {
				return 1, fmt.Errorf("lint %s: %w", path, err)
			}
			docs = append(docs, doc)
		}
	} else {
		src := searchparams.Source()
		raw, err := fs.ReadFile(searchparams.DocumentFS(), src.Location())
		if err != nil {
			return 1, fmt.Errorf("lint embedded declaration: %w", err)
		}
		doc, err := pkgopenapi.NewDocument(src, raw)
		if err != nil {
			return 1, err
		}
		docs = append(docs, doc)
	}

	var violations []violation
	for _, doc := range docs {
		linted, err := lintDocument(ctx, parser, doc)
		if err != nil {
			return 1, fmt.Errorf("lint %s: %w", doc.Location(), err)
		}
		violations = append(violations, linted...)
	}

	if len(violations) == 0 {
		return 0, nil
	}
	for _, v := range violations {
		fmt.Fprintf(stderr, "%s: %s\n", v.file, v.Violation)
	}
	return 1, nil
}

func lintDocument(ctx context.Context, parser pkgopenapi.Parser, doc pkgopenapi.Document) ([]violation, error) {
	operations, err := parser.Operations(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("parse operations: %w", err)
	}

	ids := make([]string, 0, len(operations))
	for id := range operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var result []violation
	for _, id := range ids {
		for _, v := range model.LintOperation(operations[id]) {
			result = append(result, violation{file: doc.Location(), Violation: v})
		}
	}
	return result, nil
}
