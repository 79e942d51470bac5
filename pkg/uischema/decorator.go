package uischema

import (
	"sort"

	pkgmodel "github.com/cloudprivacylabs/lsa-ui/pkg/model"
)

// Decorator applies UI schema overrides to a form model.
type Decorator struct {
	store *Store
}

var _ pkgmodel.Decorator = (*Decorator)(nil)

// NewDecorator builds a Decorator backed by the provided store. A nil or empty
// store makes it a no-op.
func NewDecorator(store *Store) *Decorator {
	return &Decorator{store: store}
}

// Decorate applies labels, placeholders, order, and the submit caption. Forms
// without a matching operation are left untouched.
func (d *Decorator) Decorate(form *pkgmodel.FormModel) error {
	if d == nil || d.store.Empty() || form == nil {
		return nil
	}
	op, ok := d.store.Operation(form.OperationID)
	if !ok {
		return nil
	}

	if op.Form.SubmitLabel != "" {
		form.Actions.SubmitLabel = op.Form.SubmitLabel
	}

	for i := range form.Fields {
		cfg, ok := op.Fields[form.Fields[i].Name]
		if !ok {
			continue
		}
		if cfg.Label != nil {
			form.Fields[i].Label = *cfg.Label
		}
		if cfg.Placeholder != nil {
			form.Fields[i].Placeholder = *cfg.Placeholder
		}
		if cfg.Order != nil {
			form.Fields[i].Order = *cfg.Order
		}
	}

	sort.SliceStable(form.Fields, func(i, j int) bool {
		return orderKey(form.Fields[i]) < orderKey(form.Fields[j])
	})
	return nil
}

// orderKey sorts unordered fields after every explicitly ordered one.
func orderKey(field pkgmodel.Field) int {
	if field.Order == 0 {
		return int(^uint(0) >> 1)
	}
	return field.Order
}
