package layout

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
)

const DefaultDoubleClickInterval = 400 * time.Millisecond

// HandleOptions configures the interactive boundary between two panes.
type HandleOptions struct {
	AllowToCollapse     Side
	OnCollapse          func(Side)
	OnUncollapse        func()
	DoubleClickInterval time.Duration
	Now                 func() time.Time
	Logger              *log.Logger
}

// Handle translates pointer input into drag sessions and collapse toggles.
// It has no sizing authority of its own.
type Handle struct {
	model   *Model
	drag    *DragSession
	measure func() float64
	opts    HandleOptions
	logger  *log.Logger

	last        float64
	lastDown    time.Time
	lastDownPos float64
	moved       bool
}

// NewHandle binds a handle to model and drag. measure reports the
// container's main-axis extent and is called once per gesture.
func NewHandle(model *Model, drag *DragSession, measure func() float64, opts HandleOptions) *Handle {
	if opts.DoubleClickInterval == 0 {
		opts.DoubleClickInterval = DefaultDoubleClickInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = model.logger
	}
	return &Handle{model: model, drag: drag, measure: measure, opts: opts, logger: logger}
}

func (h *Handle) AllowToCollapse() Side { return h.opts.AllowToCollapse }

// Dragging reports whether a gesture is in progress.
func (h *Handle) Dragging() bool { return h.drag.Active() }

// PointerDown starts a gesture, or toggles collapse when it completes a
// double click.
func (h *Handle) PointerDown(pos float64) {
	now := h.opts.Now()
	if h.isDoubleClick(now, pos) {
		h.lastDown = time.Time{}
		h.Toggle()
		return
	}
	h.lastDown = now
	h.lastDownPos = pos
	h.moved = false
	h.last = pos
	if h.model.IsCollapsed() {
		h.logger.Debug("pointer down on collapsed handle")
		return
	}
	h.drag.Begin(pos, h.model.Flex(), h.measure())
}

func (h *Handle) isDoubleClick(now time.Time, pos float64) bool {
	if h.lastDown.IsZero() || h.moved {
		return false
	}
	return now.Sub(h.lastDown) <= h.opts.DoubleClickInterval && math.Abs(pos-h.lastDownPos) < 1
}

// PointerMove forwards to the active gesture.
func (h *Handle) PointerMove(pos float64) {
	if !h.drag.Active() {
		return
	}
	if pos != h.lastDownPos {
		h.moved = true
	}
	h.last = pos
	h.drag.Update(pos)
}

// PointerUp ends the gesture at pos.
func (h *Handle) PointerUp(pos float64) {
	if !h.drag.Active() {
		return
	}
	h.PointerMove(pos)
	h.end()
}

// PointerLeave ends the gesture at the last known position when the
// pointer leaves the viewport.
func (h *Handle) PointerLeave() {
	if !h.drag.Active() {
		return
	}
	h.end()
}

func (h *Handle) end() {
	if side := h.drag.End(); side != SideNone {
		h.notifyCollapse(side)
	}
}

// CaptureLost cancels the gesture when another consumer claims the pointer
// or focus is lost.
func (h *Handle) CaptureLost() {
	h.drag.Cancel()
}

// Escape cancels the gesture.
func (h *Handle) Escape() {
	h.drag.Cancel()
}

// Toggle collapses toward AllowToCollapse, or restores a collapsed splitter.
// An active gesture is cancelled first. It reports whether state changed.
func (h *Handle) Toggle() bool {
	if h.drag.Active() {
		h.drag.Cancel()
	}
	if h.model.IsCollapsed() {
		return h.uncollapse() == nil
	}
	if h.opts.AllowToCollapse == SideNone {
		h.logger.Debug("toggle ignored: collapsing not allowed")
		return false
	}
	return h.collapse(h.opts.AllowToCollapse) == nil
}

func (h *Handle) collapse(side Side) error {
	if h.model.CollapsedSide() == side {
		return nil
	}
	if err := h.model.Collapse(side); err != nil {
		return err
	}
	h.notifyCollapse(side)
	return nil
}

func (h *Handle) uncollapse() error {
	if !h.model.IsCollapsed() {
		return nil
	}
	if err := h.model.Uncollapse(); err != nil {
		return err
	}
	if h.opts.OnUncollapse != nil {
		h.opts.OnUncollapse()
	}
	return nil
}

func (h *Handle) notifyCollapse(side Side) {
	if h.opts.OnCollapse != nil {
		h.opts.OnCollapse(side)
	}
}
