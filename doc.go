// Package lsaui is the entry point for rendering the Layered Schemas
// parameter form outside the bundled server: it re-exports the orchestrator,
// the embedded templates and the browser runtime assets.
package lsaui
