// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing helpers (pane chrome, split strips, lists, popup overlay)
//
// Not allowed here:
// - splitter state, key or mouse handling, persistence
package widgets
