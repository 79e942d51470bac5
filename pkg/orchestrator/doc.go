// Package orchestrator wires the loader → parser → model builder → decorator →
// renderer pipeline. With no options it renders the embedded Layered Schemas
// parameter form with the vanilla HTML renderer.
package orchestrator
