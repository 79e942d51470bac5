package uischema

// Store keeps the parsed operations from UI schema documents. It is safe for
// concurrent readers once LoadFS returns.
type Store struct {
	operations map[string]Operation
}

// Operation describes the UI schema overrides for one OpenAPI operation.
type Operation struct {
	ID     string
	Source string
	Form   FormConfig
	Fields map[string]FieldConfig
}

// FormConfig captures form-level overrides.
type FormConfig struct {
	SubmitLabel string `json:"submitLabel" yaml:"submitLabel"`
}

// FieldConfig customises how a single field renders.
type FieldConfig struct {
	Order       *int    `json:"order,omitempty" yaml:"order,omitempty"`
	Label       *string `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder *string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}
