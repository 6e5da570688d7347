// Package layout is the split-pane sizing engine.
//
// Allowed here:
// - the flex/collapse state of a splitter and its persistence contract
// - drag gesture math and handle input translation
// - pane size computation along one axis
//
// Not allowed here:
// - rendering, terminal events, or concrete storage backends
package layout
