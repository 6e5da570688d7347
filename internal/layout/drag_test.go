package layout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newDragFixture(t *testing.T, def, min, max float64, opts DragOptions) (*Model, *DragSession) {
	t.Helper()
	m, err := NewModel(context.Background(), ModelOptions{ID: "drag", DefaultFlex: def, MinFlex: min, MaxFlex: max})
	require.NoError(t, err)
	return m, NewDragSession(m, opts)
}

func TestDragMathUsesCapturedExtent(t *testing.T) {
	m, d := newDragFixture(t, 0.3, 0, 1, DragOptions{})
	require.True(t, d.Begin(100, m.Flex(), 1000))
	d.Update(200)
	require.InDelta(t, 0.4, m.Flex(), 1e-12)
	d.Update(50)
	require.InDelta(t, 0.25, m.Flex(), 1e-12)
	require.Equal(t, SideNone, d.End())
	require.InDelta(t, 0.25, m.Flex(), 1e-12)
}

func TestDragFlexerAtEndInvertsDelta(t *testing.T) {
	m, d := newDragFixture(t, 0.3, 0, 1, DragOptions{FlexerSide: SideEnd})
	require.True(t, d.Begin(100, m.Flex(), 1000))
	d.Update(200)
	require.InDelta(t, 0.2, m.Flex(), 1e-12)
}

func TestDragBeginIsNotReentrant(t *testing.T) {
	m, d := newDragFixture(t, 0.3, 0, 1, DragOptions{})
	require.True(t, d.Begin(100, m.Flex(), 1000))
	require.False(t, d.Begin(500, 0.9, 10))
	d.Update(200)
	require.InDelta(t, 0.4, m.Flex(), 1e-12)
}

func TestDragBeginRejectsCollapsedAndZeroExtent(t *testing.T) {
	m, d := newDragFixture(t, 0.3, 0, 1, DragOptions{})
	require.False(t, d.Begin(0, m.Flex(), 0))
	require.NoError(t, m.Collapse(SideStart))
	require.False(t, d.Begin(0, m.Flex(), 1000))
	require.False(t, d.Active())
}

func TestDragSnapCollapse(t *testing.T) {
	opts := DragOptions{SnapThreshold: 0.02, AllowCollapse: SideStart}

	m, d := newDragFixture(t, 0.2, 0.1, 0.3, opts)
	require.True(t, d.Begin(100, m.Flex(), 1000))
	d.Update(-10) // raw 0.09
	require.Equal(t, SideStart, d.End())
	require.Equal(t, SideStart, m.CollapsedSide())
	require.InDelta(t, 0.2, m.Flex(), 1e-12)

	m, d = newDragFixture(t, 0.2, 0.1, 0.3, opts)
	require.True(t, d.Begin(100, m.Flex(), 1000))
	d.Update(20) // raw 0.12
	require.Equal(t, SideNone, d.End())
	require.False(t, m.IsCollapsed())
	require.InDelta(t, 0.12, m.Flex(), 1e-12)
}

func TestDragSnapRespectsAllowedSideAndToggle(t *testing.T) {
	m, d := newDragFixture(t, 0.2, 0.1, 0.3, DragOptions{SnapThreshold: 0.02, AllowCollapse: SideEnd})
	require.True(t, d.Begin(100, m.Flex(), 1000))
	d.Update(-10)
	require.Equal(t, SideNone, d.End())
	require.False(t, m.IsCollapsed())

	m, d = newDragFixture(t, 0.2, 0.1, 0.3, DragOptions{AllowCollapse: SideStart})
	require.True(t, d.Begin(100, m.Flex(), 1000))
	d.Update(-10)
	require.Equal(t, SideNone, d.End())
	require.InDelta(t, 0.1, m.Flex(), 1e-12)

	m, d = newDragFixture(t, 0.2, 0.1, 0.3, DragOptions{SnapThreshold: 0.02, AllowCollapse: SideEnd})
	require.True(t, d.Begin(100, m.Flex(), 1000))
	d.Update(250) // raw 0.45, past max
	require.Equal(t, SideEnd, d.End())
}

func TestDragEndTwiceIsIdempotent(t *testing.T) {
	m, d := newDragFixture(t, 0.3, 0, 1, DragOptions{})
	require.True(t, d.Begin(100, m.Flex(), 1000))
	d.Update(150)
	d.End()
	after := m.Flex()
	d.End()
	d.Cancel()
	require.Equal(t, after, m.Flex())
	require.False(t, d.Active())
}

func TestDragCancelRestoresOrigin(t *testing.T) {
	m, d := newDragFixture(t, 0.3, 0, 1, DragOptions{})
	require.True(t, d.Begin(100, m.Flex(), 1000))
	d.Update(400)
	require.InDelta(t, 0.6, m.Flex(), 1e-12)
	d.Cancel()
	require.Equal(t, 0.3, m.Flex())
	d.End()
	require.Equal(t, 0.3, m.Flex())
}

func TestExternalSetFlexBlockedDuringDrag(t *testing.T) {
	m, d := newDragFixture(t, 0.3, 0, 1, DragOptions{})
	require.True(t, d.Begin(100, m.Flex(), 1000))
	require.ErrorIs(t, m.SetFlex(0.9), ErrDragActive)
	require.ErrorIs(t, m.Collapse(SideStart), ErrDragActive)
	require.Equal(t, 0.3, m.Flex())

	d.End()
	require.NoError(t, m.SetFlex(0.9))
	require.Equal(t, 0.9, m.Flex())
}

func TestUpdateWithoutSessionIsNoop(t *testing.T) {
	m, d := newDragFixture(t, 0.3, 0, 1, DragOptions{})
	d.Update(900)
	require.Equal(t, 0.3, m.Flex())
	require.Equal(t, SideNone, d.End())
}
