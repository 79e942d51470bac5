package shell

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/cloudprivacylabs/lsa-ui/pkg/form"
	"github.com/cloudprivacylabs/lsa-ui/pkg/orchestrator"
	"github.com/cloudprivacylabs/lsa-ui/pkg/render"
)

// FieldValue is one entry of a change response.
type FieldValue struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// ChangeResponse carries the stored value of every field after a change.
type ChangeResponse struct {
	Fields []FieldValue `json:"fields"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Shell) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("POST /{$}", s.handleSubmit)
	mux.HandleFunc("POST "+ChangePath+"{name}", s.handleChange)

	prefix := s.assetPrefix()
	mux.Handle("GET "+prefix, http.StripPrefix(strings.TrimSuffix(prefix, "/"), http.FileServerFS(s.assetsFS)))
	mux.HandleFunc("/", http.NotFound)
	return requestLogger(s.logger, mux)
}

// handlePage serves a freshly mounted form: every input starts empty.
func (s *Shell) handlePage(w http.ResponseWriter, r *http.Request) {
	fragment, err := s.orchestrator.Render(r.Context(), orchestrator.Request{
		Renderer:      s.rendererName,
		RenderOptions: render.RenderOptions{Theme: s.theme},
	}, s.form)
	if err != nil {
		s.logger.Error("render form", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	page, err := mount(s.layout, s.mountID, fragment)
	if err != nil {
		s.logger.Error("mount form", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// handleSubmit intercepts a submission. Nothing is validated or stored and
// the browser is told to stay where it is.
func (s *Shell) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	result := form.FromValues(s.form, r.PostForm).Submit()
	s.logger.Debug("submission intercepted", "operation", s.form.OperationID, "prevented", result.Prevented)
	w.WriteHeader(http.StatusNoContent)
}

// handleChange applies one change event to the posted field values and
// replies with the resulting stores. The new value is read from "value",
// falling back to the field's own key.
func (s *Shell) handleChange(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form body"})
		return
	}
	name := r.PathValue("name")

	state := form.FromValues(s.form, r.PostForm)
	value, ok := r.PostForm["value"]
	if !ok {
		value = r.PostForm[name]
	}
	raw := ""
	if len(value) > 0 {
		raw = value[0]
	}

	if err := state.Change(name, raw); err != nil {
		if errors.Is(err, form.ErrUnknownField) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
		return
	}

	views := state.View()
	resp := ChangeResponse{Fields: make([]FieldValue, 0, len(views))}
	for _, view := range views {
		resp.Fields = append(resp.Fields, FieldValue{ID: view.ID, Value: view.Value})
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
