package form

import (
	"net/url"

	pkgmodel "github.com/cloudprivacylabs/lsa-ui/pkg/model"
)

// FromValues mounts a form instance and replays the supplied inputs into it as
// change events. Names the model does not declare are ignored, and missing
// names stay empty.
func FromValues(form pkgmodel.FormModel, values url.Values) *State {
	s := New(form)
	for _, field := range form.Fields {
		if _, ok := values[field.Name]; !ok {
			continue
		}
		_ = s.Change(field.Name, values.Get(field.Name))
	}
	return s
}
