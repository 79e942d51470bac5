package model

import (
	"errors"
	"fmt"
	"sort"

	pkgopenapi "github.com/cloudprivacylabs/lsa-ui/pkg/openapi"
)

const (
	extensionLabel       = ExtensionNamespace + "-" + ExtensionKeyLabel
	extensionPlaceholder = ExtensionNamespace + "-" + ExtensionKeyPlaceholder

	// DefaultSubmitLabel is used until a decorator supplies one.
	DefaultSubmitLabel = "Submit"
)

// Builder converts OpenAPI operations into form models.
type Builder interface {
	Build(op pkgopenapi.Operation) (FormModel, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builder)

// WithLabeler overrides how labels are derived when a property carries no
// x-formgen-label extension.
func WithLabeler(labeler func(string) string) BuilderOption {
	return func(b *builder) {
		if labeler != nil {
			b.labeler = labeler
		}
	}
}

type builder struct {
	labeler func(string) string
}

// NewBuilder returns the default Builder.
func NewBuilder(options ...BuilderOption) Builder {
	b := &builder{labeler: func(name string) string { return name }}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

func (b *builder) Build(op pkgopenapi.Operation) (FormModel, error) {
	if op.ID == "" {
		return FormModel{}, errors.New("model: operation id is required")
	}
	body := op.RequestBody
	if body.Type != "" && body.Type != "object" {
		return FormModel{}, fmt.Errorf("model: operation %q request body must be an object, got %q", op.ID, body.Type)
	}

	names := make([]string, 0, len(body.Properties))
	for name := range body.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		field, err := b.buildField(name, body.Properties[name], body.IsRequired(name))
		if err != nil {
			return FormModel{}, fmt.Errorf("model: operation %q: %w", op.ID, err)
		}
		fields = append(fields, field)
	}

	return FormModel{
		OperationID: op.ID,
		Endpoint:    op.Path,
		Method:      op.Method,
		Summary:     op.Summary,
		Fields:      fields,
		Actions:     Actions{SubmitLabel: DefaultSubmitLabel},
	}, nil
}

func (b *builder) buildField(name string, schema pkgopenapi.Schema, required bool) (Field, error) {
	fieldType, err := mapFieldType(schema.Type)
	if err != nil {
		return Field{}, fmt.Errorf("field %q: %w", name, err)
	}

	field := Field{
		Name:        name,
		Type:        fieldType,
		Required:    required,
		Label:       b.labeler(name),
		Description: schema.Description,
	}
	if label, ok := schema.Extension(extensionLabel); ok && label != "" {
		field.Label = label
	}
	if placeholder, ok := schema.Extension(extensionPlaceholder); ok {
		field.Placeholder = placeholder
	}
	if schema.Default != nil {
		field.Default = fmt.Sprint(schema.Default)
	}
	if schema.MaxLength != nil {
		field.MaxLength = *schema.MaxLength
	}
	return field, nil
}

func mapFieldType(raw string) (FieldType, error) {
	switch raw {
	case "", "string":
		return FieldTypeString, nil
	case "integer":
		return FieldTypeInteger, nil
	case "number":
		return FieldTypeNumber, nil
	case "boolean":
		return FieldTypeBoolean, nil
	default:
		return "", fmt.Errorf("unsupported type %q", raw)
	}
}
