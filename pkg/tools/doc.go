// Package tools defines the tool abstraction used by the dispatch
// layer: a named operation with a JSON-schema argument description and
// an Execute method taking raw JSON arguments, plus a registry for
// looking tools up by name.
//
// Tool implementations live in subpackages: notetools wraps the note
// store's operations, utility holds the store-independent helpers
// (calculator, clock).
package tools
