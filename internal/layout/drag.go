package layout

import (
	"math"

	"github.com/charmbracelet/log"
)

// DragOptions tunes how a gesture maps to flex changes.
//
// FlexerSide is the side the flexer pane sits on; it decides the sign of
// pointer deltas and which side a low flex snaps toward. SnapThreshold > 0
// enables auto-collapse on release; AllowCollapse limits it to one side.
type DragOptions struct {
	FlexerSide    Side
	SnapThreshold float64
	AllowCollapse Side
	Logger        *log.Logger
}

// DragSession tracks one resize gesture from pointer-down to release or
// cancellation. While active it is the only writer of the model's flex.
type DragSession struct {
	model *Model
	opts  DragOptions

	active        bool
	origin        float64
	flexAtOrigin  float64
	savedAtOrigin float64
	extent        float64
	raw           float64
	logger        *log.Logger
}

func NewDragSession(model *Model, opts DragOptions) *DragSession {
	if opts.FlexerSide == SideNone {
		opts.FlexerSide = SideStart
	}
	logger := opts.Logger
	if logger == nil {
		logger = model.logger
	}
	return &DragSession{model: model, opts: opts, logger: logger}
}

func (d *DragSession) Active() bool { return d.active }

// Begin opens a session at pointer. It returns false without side effects
// when a session is already active, the extent is not positive, or the
// model is collapsed or owned by another session.
func (d *DragSession) Begin(pointer, currentFlex, extent float64) bool {
	switch {
	case d.active:
		d.logger.Debug("drag begin ignored: session already active")
		return false
	case !(extent > 0) || math.IsInf(extent, 0):
		d.logger.Debug("drag begin ignored: no extent", "extent", extent)
		return false
	case d.model.IsCollapsed():
		d.logger.Debug("drag begin ignored: collapsed", "side", d.model.CollapsedSide())
		return false
	case !d.model.acquire(d):
		d.logger.Debug("drag begin ignored: model owned by another gesture")
		return false
	}
	d.active = true
	d.origin = pointer
	d.flexAtOrigin = currentFlex
	d.savedAtOrigin = d.model.saved
	d.extent = extent
	d.raw = currentFlex
	return true
}

func (d *DragSession) sign() float64 {
	if d.opts.FlexerSide == SideEnd {
		return -1
	}
	return 1
}

// Update moves the gesture to pointer. The delta is divided by the extent
// captured at Begin, never a fresh measurement.
func (d *DragSession) Update(pointer float64) {
	if !d.active {
		d.logger.Debug("drag update ignored: no active session")
		return
	}
	d.raw = d.flexAtOrigin + d.sign()*(pointer-d.origin)/d.extent
	d.model.setOwned(d, d.raw)
}

// End closes the session. If the release lands in a snap zone toward an
// allowed side, the flex held at Begin is restored and the model collapses
// toward that side, which is returned. Otherwise SideNone is returned.
func (d *DragSession) End() Side {
	if !d.active {
		d.logger.Debug("drag end ignored: no active session")
		return SideNone
	}
	side := d.snapSide()
	if side != SideNone {
		d.model.revert(d, d.flexAtOrigin, d.savedAtOrigin)
	}
	d.finish()
	if side == SideNone {
		return SideNone
	}
	if err := d.model.Collapse(side); err != nil {
		d.logger.Debug("snap collapse rejected", "err", err)
		return SideNone
	}
	return side
}

// Cancel restores the flex held at Begin and closes the session.
func (d *DragSession) Cancel() {
	if !d.active {
		d.logger.Debug("drag cancel ignored: no active session")
		return
	}
	d.model.revert(d, d.flexAtOrigin, d.savedAtOrigin)
	d.finish()
}

func (d *DragSession) finish() {
	d.active = false
	d.model.release(d)
}

func (d *DragSession) snapSide() Side {
	t := d.opts.SnapThreshold
	if !(t > 0) || d.opts.AllowCollapse == SideNone {
		return SideNone
	}
	b := d.model.Bounds()
	var side Side
	switch {
	case d.raw < math.Max(b.Min, t):
		side = d.opts.FlexerSide
	case d.raw > math.Min(b.Max, 1-t):
		side = d.opts.FlexerSide.Opposite()
	default:
		return SideNone
	}
	if side != d.opts.AllowCollapse {
		return SideNone
	}
	return side
}
