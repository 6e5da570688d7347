// Package tui is the bubbletea shell around the toolbar splitter.
//
// Allowed here:
// - translating terminal key, mouse and focus events into splitter handle calls
// - modal screens (quick switcher, render picker) and the render queue
//
// Not allowed here:
// - sizing math or persistence (internal/layout owns both)
package tui
