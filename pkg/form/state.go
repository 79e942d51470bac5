// Package form holds the Parameter Form's controlled-input state: one value
// store per field, views derived from those stores, and change/submit events
// that write to them.
package form

import (
	"errors"
	"fmt"

	pkgmodel "github.com/cloudprivacylabs/lsa-ui/pkg/model"
)

// ErrUnknownField is returned when an event names a field the form does not
// declare.
var ErrUnknownField = errors.New("form: unknown field")

// FieldView is what a renderer shows for one input. Value always comes from
// the store.
type FieldView struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder,omitempty"`
	Value       string `json:"value"`
}

// SubmitResult reports the outcome of a submission.
type SubmitResult struct {
	// Prevented is always true: submitting never navigates away.
	Prevented bool `json:"prevented"`
}

// State is one mounted instance of a form. It is not safe for concurrent use;
// each request or terminal session owns its own instance.
type State struct {
	model  pkgmodel.FormModel
	values map[string]string
}

// New mounts a form instance with every field empty.
func New(form pkgmodel.FormModel) *State {
	s := &State{model: form}
	s.Reset()
	return s
}

// Model returns the form model the state was mounted with.
func (s *State) Model() pkgmodel.FormModel {
	return s.model
}

// Reset restores the mount-time state.
func (s *State) Reset() {
	s.values = make(map[string]string, len(s.model.Fields))
	for _, field := range s.model.Fields {
		s.values[field.Name] = ""
	}
}

// Change replaces the stored value of name with raw, byte for byte.
func (s *State) Change(name, raw string) error {
	if _, ok := s.values[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	s.values[name] = raw
	return nil
}

// Value returns the stored value for name.
func (s *State) Value(name string) (string, bool) {
	value, ok := s.values[name]
	return value, ok
}

// Values returns a copy of every stored value.
func (s *State) Values() map[string]string {
	out := make(map[string]string, len(s.values))
	for name, value := range s.values {
		out[name] = value
	}
	return out
}

// View derives the displayed inputs from the stores, in model order.
func (s *State) View() []FieldView {
	views := make([]FieldView, 0, len(s.model.Fields))
	for _, field := range s.model.Fields {
		views = append(views, FieldView{
			ID:          field.Name,
			Label:       field.Label,
			Placeholder: field.Placeholder,
			Value:       s.values[field.Name],
		})
	}
	return views
}

// Submit intercepts a submission. It performs no validation and leaves every
// stored value untouched.
func (s *State) Submit() SubmitResult {
	return SubmitResult{Prevented: true}
}
