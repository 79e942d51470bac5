// Package uischema loads UI schema documents (YAML or JSON) that sit beside an
// OpenAPI declaration and tune how its operations render: field order, label
// and placeholder text, and the submit button caption.
//
// A document is keyed by operation id:
//
//	operations:
//	  generateLayeredSchema:
//	    form:
//	      submitLabel: Generate
//	    fields:
//	      schema:
//	        order: 1
//	        label: Schema
//
// Text is applied verbatim after stripping markup; the decorator never
// deduplicates or rewrites labels.
package uischema
