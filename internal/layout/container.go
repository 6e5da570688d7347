package layout

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
)

// ContainerOptions configures a splitter. Orientation, ID and the three
// flex values are required; everything else has a usable zero value.
type ContainerOptions struct {
	ID          string
	Orientation Orientation
	DefaultFlex float64
	MinFlex     float64
	MaxFlex     float64

	// HandleSize is the number of cells the handle strip occupies; 0 means 1.
	HandleSize int

	SnapThreshold       float64
	AllowToCollapse     Side
	OnCollapse          func(Side)
	OnUncollapse        func()
	DoubleClickInterval time.Duration
	Now                 func() time.Time

	Store     Store
	Persister *Persister
	Debounce  time.Duration
	Logger    *log.Logger
}

// Sizes are main-axis cell counts, in order from the start edge.
type Sizes struct {
	Start  int
	Handle int
	End    int
}

// HandleContains reports whether offset falls on the handle strip.
func (s Sizes) HandleContains(offset int) bool {
	return offset >= s.Start && offset < s.Start+s.Handle
}

// State is the container's position in its state machine. Dragging is only
// ever true while expanded.
type State struct {
	Collapsed Side
	Flex      float64
	Dragging  bool
}

func (s State) Expanded() bool { return s.Collapsed == SideNone }

func (s State) String() string {
	if !s.Expanded() {
		return fmt.Sprintf("collapsed(%s)", s.Collapsed)
	}
	if s.Dragging {
		return fmt.Sprintf("expanded(%.3f) dragging", s.Flex)
	}
	return fmt.Sprintf("expanded(%.3f)", s.Flex)
}

// Container arranges exactly two elements around one handle.
type Container struct {
	orientation Orientation
	elements    [2]Element
	flexerSide  Side
	handleSize  int

	model  *Model
	drag   *DragSession
	handle *Handle
	logger *log.Logger

	extent    int
	laidOut   bool
	lastFlex  float64
	lastSide  Side
	stickyLen int
}

func NewContainer(ctx context.Context, opts ContainerOptions, first, second Element) (*Container, error) {
	if opts.Orientation != Horizontal && opts.Orientation != Vertical {
		return nil, fmt.Errorf("splitter %q: %w", opts.ID, ErrInvalidOrientation)
	}
	var flexerSide Side
	switch {
	case first.Role == Flexer && second.Role == AntiFlexer:
		flexerSide = SideStart
	case first.Role == AntiFlexer && second.Role == Flexer:
		flexerSide = SideEnd
	default:
		return nil, fmt.Errorf("splitter %q: %w", opts.ID, ErrInvalidRoles)
	}
	if opts.AllowToCollapse != SideNone && opts.AllowToCollapse != SideStart && opts.AllowToCollapse != SideEnd {
		return nil, fmt.Errorf("splitter %q: %w", opts.ID, ErrInvalidSide)
	}
	if opts.SnapThreshold < 0 || opts.SnapThreshold >= 0.5 || math.IsNaN(opts.SnapThreshold) {
		return nil, fmt.Errorf("splitter %q: %w: snap threshold %v", opts.ID, ErrInvalidBounds, opts.SnapThreshold)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	model, err := NewModel(ctx, ModelOptions{
		ID:          opts.ID,
		DefaultFlex: opts.DefaultFlex,
		MinFlex:     opts.MinFlex,
		MaxFlex:     opts.MaxFlex,
		Store:       opts.Store,
		Persister:   opts.Persister,
		Debounce:    opts.Debounce,
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}

	handleSize := opts.HandleSize
	if handleSize <= 0 {
		handleSize = 1
	}
	c := &Container{
		orientation: opts.Orientation,
		elements:    [2]Element{first, second},
		flexerSide:  flexerSide,
		handleSize:  handleSize,
		model:       model,
		logger:      model.logger,
	}
	c.drag = NewDragSession(model, DragOptions{
		FlexerSide:    flexerSide,
		SnapThreshold: opts.SnapThreshold,
		AllowCollapse: opts.AllowToCollapse,
		Logger:        c.logger,
	})
	c.handle = NewHandle(model, c.drag, c.available, HandleOptions{
		AllowToCollapse:     opts.AllowToCollapse,
		OnCollapse:          opts.OnCollapse,
		OnUncollapse:        opts.OnUncollapse,
		DoubleClickInterval: opts.DoubleClickInterval,
		Now:                 opts.Now,
		Logger:              c.logger,
	})
	return c, nil
}

func (c *Container) ID() string { return c.model.ID() }
func (c *Container) Orientation() Orientation { return c.orientation }
func (c *Container) Model() *Model { return c.model }
func (c *Container) Handle() *Handle { return c.handle }
func (c *Container) FlexerSide() Side { return c.flexerSide }
func (c *Container) IsCollapsed() bool { return c.model.IsCollapsed() }
func (c *Container) Flex() float64 { return c.model.Flex() }

// Element returns the element on side.
func (c *Container) Element(side Side) Element {
	if side == SideEnd {
		return c.elements[1]
	}
	return c.elements[0]
}

func (c *Container) State() State {
	return State{
		Collapsed: c.model.CollapsedSide(),
		Flex:      c.model.Flex(),
		Dragging:  c.drag.Active(),
	}
}

// available is the extent shared by the two panes at the last layout.
func (c *Container) available() float64 {
	return float64(max(0, c.extent-c.handleSize))
}

// SetFlex is the programmatic resize path. It fails with ErrDragActive
// while a gesture owns the splitter.
func (c *Container) SetFlex(v float64) error { return c.model.SetFlex(v) }

// Collapse collapses side and notifies the handle's listeners.
func (c *Container) Collapse(side Side) error {
	if side != SideStart && side != SideEnd {
		return ErrInvalidSide
	}
	return c.handle.collapse(side)
}

func (c *Container) Uncollapse() error { return c.handle.uncollapse() }

// Reset returns the splitter to its default flex, expanded.
func (c *Container) Reset() error {
	wasCollapsed := c.model.IsCollapsed()
	if err := c.model.Reset(); err != nil {
		return err
	}
	if wasCollapsed && c.handle.opts.OnUncollapse != nil {
		c.handle.opts.OnUncollapse()
	}
	return nil
}

// Layout computes pane sizes for extent cells along the main axis.
func (c *Container) Layout(extent int) Sizes {
	extent = max(0, extent)
	handle := min(c.handleSize, extent)
	avail := extent - handle

	if c.laidOut && extent != c.extent && c.explicitUnchanged() {
		c.applySticky(avail)
	}
	c.extent = extent

	flexer := c.flexerSize(avail)
	sizes := Sizes{Handle: handle}
	if c.flexerSide == SideStart {
		sizes.Start, sizes.End = flexer, avail-flexer
	} else {
		sizes.Start, sizes.End = avail-flexer, flexer
	}

	if !c.laidOut || !c.explicitUnchanged() {
		c.recordSticky(flexer, avail)
	}
	c.laidOut = true
	c.lastFlex = c.model.Flex()
	c.lastSide = c.model.CollapsedSide()
	return sizes
}

func (c *Container) explicitUnchanged() bool {
	return c.model.Flex() == c.lastFlex && c.model.CollapsedSide() == c.lastSide
}

func (c *Container) flexerSize(avail int) int {
	if avail <= 0 {
		return 0
	}
	switch c.model.CollapsedSide() {
	case c.flexerSide:
		return 0
	case c.flexerSide.Opposite():
		return avail
	}
	b := c.model.Bounds()
	size := int(math.Round(c.model.Flex() * float64(avail)))
	if anti := c.Element(c.flexerSide.Opposite()); anti.MinSize > 0 && avail-size < anti.MinSize {
		size = avail - anti.MinSize
	}
	lo := int(math.Round(b.Min * float64(avail)))
	hi := int(math.Round(b.Max * float64(avail)))
	return min(avail, max(0, min(hi, max(lo, size))))
}

func (c *Container) recordSticky(flexer, avail int) {
	if c.model.IsCollapsed() {
		return
	}
	switch {
	case c.Element(c.flexerSide).Sticky:
		c.stickyLen = flexer
	case c.Element(c.flexerSide.Opposite()).Sticky:
		c.stickyLen = avail - flexer
	}
}

// applySticky refits the in-memory flex so a sticky element keeps its size
// when only the container extent changed. Nothing is persisted.
func (c *Container) applySticky(avail int) {
	if avail <= 0 || c.model.IsCollapsed() || c.drag.Active() {
		return
	}
	var flexer int
	switch {
	case c.Element(c.flexerSide).Sticky:
		flexer = c.stickyLen
	case c.Element(c.flexerSide.Opposite()).Sticky:
		flexer = avail - c.stickyLen
	default:
		return
	}
	c.model.fit(float64(flexer) / float64(avail))
	c.lastFlex = c.model.Flex()
}

// Close ends any gesture and flushes pending persistence.
func (c *Container) Close(ctx context.Context) {
	c.drag.Cancel()
	c.model.Flush(ctx)
}
