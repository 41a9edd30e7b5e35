// Package utility holds the store-independent tools: a sandboxed
// arithmetic calculator and the current-time clock.
package utility
