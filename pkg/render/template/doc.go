// Package template defines the template engine seam renderers and the shell
// layout rely on. The pongo2-backed implementation lives in gotemplate.
package template
