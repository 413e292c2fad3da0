// Package model defines the canonical property model consumed by renderers.
// Builders reside in internal/model but return the types re-exported here.
//
// A Model holds four maps keyed by id: Components (one per processed node),
// Definitions (canonical property schemas per definition), Metas (display
// names per definition) and References (structural bindings per definition).
// Components refer to their definition by id only; several components share
// one definition entry. Property values and defaults are typed through the
// Value sum type so renderers never re-parse strings.
package model
