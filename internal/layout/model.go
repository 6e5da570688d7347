package layout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Bounds is the closed interval a flex ratio may take.
type Bounds struct {
	Min float64
	Max float64
}

func (b Bounds) Clamp(v float64) float64 {
	return math.Min(b.Max, math.Max(b.Min, v))
}

func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// ValidateFlex checks 0 <= min <= def <= max <= 1 with finite values.
func ValidateFlex(def, min, max float64) error {
	for _, v := range []float64{def, min, max} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value", ErrInvalidBounds)
		}
	}
	switch {
	case min < 0:
		return fmt.Errorf("%w: minFlex %v below 0", ErrInvalidBounds, min)
	case max > 1:
		return fmt.Errorf("%w: maxFlex %v above 1", ErrInvalidBounds, max)
	case min > max:
		return fmt.Errorf("%w: minFlex %v exceeds maxFlex %v", ErrInvalidBounds, min, max)
	case def < min || def > max:
		return fmt.Errorf("%w: defaultFlex %v outside [%v, %v]", ErrInvalidBounds, def, min, max)
	}
	return nil
}

// ModelOptions configures a sizing model. Store and Persister are optional;
// without either the model is not persisted.
type ModelOptions struct {
	ID          string
	DefaultFlex float64
	MinFlex     float64
	MaxFlex     float64
	Store       Store
	Persister   *Persister
	Debounce    time.Duration
	Logger      *log.Logger
}

// Model holds the flex ratio and collapse state of one splitter. It is not
// safe for concurrent use; all calls are expected on the UI event loop.
type Model struct {
	id        string
	bounds    Bounds
	def       float64
	flex      float64
	// saved is the last explicitly chosen flex; only it is persisted.
	saved     float64
	collapsed Side

	owner     *DragSession
	persister *Persister
	logger    *log.Logger
}

type entry struct {
	Flex      *float64 `json:"flex"`
	Collapsed string   `json:"collapsed,omitempty"`
}

// SavedState is a decoded persisted entry.
type SavedState struct {
	Flex      float64
	Collapsed Side
}

// DecodeState parses a persisted entry. It does not check bounds.
func DecodeState(raw []byte) (SavedState, error) {
	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return SavedState{}, err
	}
	if e.Flex == nil || math.IsNaN(*e.Flex) {
		return SavedState{}, errors.New("missing flex")
	}
	side, err := ParseSide(e.Collapsed)
	if err != nil {
		return SavedState{}, err
	}
	return SavedState{Flex: *e.Flex, Collapsed: side}, nil
}

// NewModel validates the bounds and restores any persisted state for
// opts.ID. Persisted data is best-effort: read failures and malformed
// entries fall back to the default.
func NewModel(ctx context.Context, opts ModelOptions) (*Model, error) {
	id := strings.TrimSpace(opts.ID)
	if id == "" {
		return nil, ErrInvalidID
	}
	if err := ValidateFlex(opts.DefaultFlex, opts.MinFlex, opts.MaxFlex); err != nil {
		return nil, fmt.Errorf("splitter %q: %w", id, err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	persister := opts.Persister
	if persister == nil && opts.Store != nil {
		persister = NewPersister(opts.Store, opts.Debounce, logger)
	}
	m := &Model{
		id:        id,
		bounds:    Bounds{Min: opts.MinFlex, Max: opts.MaxFlex},
		def:       opts.DefaultFlex,
		persister: persister,
		logger:    logger.With("splitter", id),
	}
	m.flex = m.bounds.Clamp(m.def)
	m.saved = m.flex
	if persister != nil {
		m.restore(ctx, persister.store)
	}
	return m, nil
}

func (m *Model) restore(ctx context.Context, store Store) {
	raw, found, err := store.Get(ctx, m.id)
	if err != nil {
		m.logger.Warn("read splitter state", "err", err)
		return
	}
	if !found {
		return
	}
	st, err := DecodeState(raw)
	if err != nil {
		m.logger.Warn("discarding malformed splitter state", "err", err)
		return
	}
	if !m.bounds.Contains(st.Flex) {
		m.logger.Warn("discarding out-of-range splitter state", "value", string(raw))
		return
	}
	m.flex = st.Flex
	m.saved = st.Flex
	m.collapsed = st.Collapsed
}

func (m *Model) ID() string { return m.id }
func (m *Model) Flex() float64 { return m.flex }
func (m *Model) Default() float64 { return m.def }
func (m *Model) Bounds() Bounds { return m.bounds }
func (m *Model) CollapsedSide() Side { return m.collapsed }
func (m *Model) IsCollapsed() bool { return m.collapsed != SideNone }

// Dragging reports whether a drag session currently owns the model.
func (m *Model) Dragging() bool { return m.owner != nil }

// SetFlex clamps v into bounds and stores it. NaN is ignored.
func (m *Model) SetFlex(v float64) error {
	if m.owner != nil {
		return ErrDragActive
	}
	m.set(v)
	return nil
}

func (m *Model) set(v float64) {
	if math.IsNaN(v) {
		m.logger.Debug("ignoring NaN flex")
		return
	}
	v = m.bounds.Clamp(v)
	if v == m.flex && v == m.saved {
		return
	}
	m.flex = v
	m.saved = v
	m.persist()
}

// fit adjusts the in-memory flex for a new container extent. The persisted
// value keeps the last explicit choice.
func (m *Model) fit(v float64) {
	if math.IsNaN(v) || m.owner != nil {
		return
	}
	m.flex = m.bounds.Clamp(v)
}

// Collapse forces side to zero size. The stored flex is untouched.
func (m *Model) Collapse(side Side) error {
	if side != SideStart && side != SideEnd {
		return ErrInvalidSide
	}
	if m.owner != nil {
		return ErrDragActive
	}
	if m.collapsed == side {
		return nil
	}
	m.collapsed = side
	m.persist()
	return nil
}

func (m *Model) Uncollapse() error {
	if m.owner != nil {
		return ErrDragActive
	}
	if m.collapsed == SideNone {
		return nil
	}
	m.collapsed = SideNone
	m.persist()
	return nil
}

// Reset restores the default flex and clears collapse.
func (m *Model) Reset() error {
	if m.owner != nil {
		return ErrDragActive
	}
	m.collapsed = SideNone
	m.flex = m.bounds.Clamp(m.def)
	m.saved = m.flex
	m.persist()
	return nil
}

func (m *Model) acquire(d *DragSession) bool {
	if m.owner != nil && m.owner != d {
		return false
	}
	m.owner = d
	return true
}

func (m *Model) release(d *DragSession) {
	if m.owner == d {
		m.owner = nil
	}
}

// setOwned applies v on behalf of the owning drag session.
func (m *Model) setOwned(d *DragSession, v float64) {
	if m.owner != d || m.bounds.Clamp(v) == m.flex {
		return
	}
	m.set(v)
}

// revert puts back the flex pair captured when d began.
func (m *Model) revert(d *DragSession, flex, saved float64) {
	if m.owner != d {
		return
	}
	m.flex = flex
	m.saved = saved
	m.persist()
}

func (m *Model) persist() {
	if m.persister == nil {
		return
	}
	flex := m.saved
	e := entry{Flex: &flex}
	if m.collapsed != SideNone {
		e.Collapsed = m.collapsed.String()
	}
	raw, err := json.Marshal(e)
	if err != nil {
		m.logger.Warn("encode splitter state", "err", err)
		return
	}
	m.persister.Schedule(m.id, raw)
}

// Flush writes any pending state for this model's persister.
func (m *Model) Flush(ctx context.Context) {
	m.persister.Flush(ctx)
}
