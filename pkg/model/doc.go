// Package model defines the typed form model consumed by renderers and the
// builder that derives it from an OpenAPI operation. Labels and placeholders
// are read from the `x-formgen-label` and `x-formgen-placeholder` schema
// extensions; when absent the property name is used verbatim. Builders sort
// fields by name so output is deterministic; visual ordering is the job of a
// Decorator such as the one in pkg/uischema.
package model
