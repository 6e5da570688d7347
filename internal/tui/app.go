package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jask/splitpane/internal/config"
	"github.com/jask/splitpane/internal/layout"
)

const (
	noticeDuration = 5 * time.Second
	nudgeStep      = 0.01
)

// Options wires the shell to its splitter storage and host features.
type Options struct {
	Splitter config.SplitterConfig
	Studio   config.StudioConfig
	Store    layout.Store
	Debounce time.Duration
	Logger   *log.Logger
	// Now drives double-click detection and render timestamps; nil means
	// time.Now.
	Now func() time.Time
}

type noticeExpiredMsg struct {
	id int
}

// splitterEvents collects collapse callbacks fired from inside the layout
// package so Update can surface them.
type splitterEvents struct {
	note string
}

// Model is the studio shell: a toolbar and a render queue around one
// splitter.
type Model struct {
	splitter *layout.Container
	events   *splitterEvents
	studio   config.StudioConfig
	buttons  []toolbarButton
	keys     keyMap
	logger   *log.Logger
	now      func() time.Time

	screens     ScreenStack
	width       int
	height      int
	sizes       layout.Sizes
	composition string
	queue       []RenderJob
	askAIOpen   bool
	notice      string
	noticeID    int
	status      string
	statusErr   bool
	quitting    bool
}

// New builds the shell and its "sidebar-to-main" splitter, restoring any
// persisted split from opts.Store.
func New(ctx context.Context, opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	orientation, err := layout.ParseOrientation(opts.Splitter.Orientation)
	if err != nil {
		return Model{}, err
	}
	allow, err := layout.ParseSide(opts.Splitter.AllowCollapse)
	if err != nil {
		return Model{}, err
	}
	events := &splitterEvents{}
	splitter, err := layout.NewContainer(ctx, layout.ContainerOptions{
		ID:                  opts.Splitter.ID,
		Orientation:         orientation,
		DefaultFlex:         opts.Splitter.DefaultFlex,
		MinFlex:             opts.Splitter.MinFlex,
		MaxFlex:             opts.Splitter.MaxFlex,
		SnapThreshold:       opts.Splitter.EffectiveSnapThreshold(),
		AllowToCollapse:     allow,
		OnCollapse:          func(side layout.Side) { events.note = "Toolbar collapsed (" + side.String() + ")" },
		OnUncollapse:        func() { events.note = "Toolbar expanded" },
		DoubleClickInterval: opts.Splitter.DoubleClickInterval,
		Now:                 now,
		Store:               opts.Store,
		Debounce:            opts.Debounce,
		Logger:              logger,
	},
		layout.Element{Role: layout.Flexer},
		layout.Element{Role: layout.AntiFlexer, MinSize: opts.Splitter.RenderQueueMinWidth, Sticky: true},
	)
	if err != nil {
		return Model{}, fmt.Errorf("toolbar splitter: %w", err)
	}

	composition := ""
	if len(opts.Studio.Compositions) > 0 {
		composition = opts.Studio.Compositions[0]
	}
	m := Model{
		splitter:    splitter,
		events:      events,
		studio:      opts.Studio,
		buttons:     toolbarButtons(opts.Studio),
		keys:        defaultKeyMap(),
		logger:      logger,
		now:         now,
		composition: composition,
		status:      "Ready",
	}
	return m, nil
}

// Splitter exposes the toolbar splitter, mainly for flushing on exit.
func (m Model) Splitter() *layout.Container { return m.splitter }

// Close ends any gesture and flushes the persisted split.
func (m Model) Close(ctx context.Context) { m.splitter.Close(ctx) }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	case tea.BlurMsg:
		m.splitter.Handle().PointerLeave()
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case compositionSelectedMsg:
		m.composition = msg.Name
		m.setStatus("Opened " + msg.Name)
	case renderRequestedMsg:
		job := newRenderJob(msg.Composition, m.now())
		m.queue = append(m.queue, job)
		m.logger.Info("render queued", "job", job.ID, "composition", job.Composition)
		m.setStatus("Queued render of " + msg.Composition)
	case noticeExpiredMsg:
		if msg.id == m.noticeID {
			m.notice = ""
		}
	default:
		if top := m.screens.Top(); top != nil {
			cmd = m.updateScreen(top, msg)
		}
	}
	if note := m.events.note; note != "" {
		m.events.note = ""
		m.setStatus(note)
	}
	m.relayout()
	return m, cmd
}

// relayout waits for the first WindowSizeMsg so the sticky render queue
// records its size against the real terminal size.
func (m *Model) relayout() {
	if m.width <= 0 {
		return
	}
	m.sizes = m.splitter.Layout(m.mainExtent())
}

func (m *Model) vertical() bool {
	return m.splitter.Orientation() == layout.Vertical
}

// mainExtent is the body size along the splitter's axis.
func (m *Model) mainExtent() int {
	if m.vertical() {
		return m.bodyHeight()
	}
	return m.width
}

// mainOffset projects a mouse position onto the splitter's axis.
func (m *Model) mainOffset(msg tea.MouseMsg) int {
	if m.vertical() {
		return msg.Y
	}
	return msg.X
}

func (m *Model) bodyHeight() int {
	return max(0, m.height-1)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return tea.Quit
	}
	if top := m.screens.Top(); top != nil {
		return m.updateScreen(top, msg)
	}
	h := m.splitter.Handle()
	switch {
	case key.Matches(msg, m.keys.Cancel):
		if h.Dragging() {
			h.Escape()
			m.setStatus("Resize cancelled")
		}
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Narrow):
		m.nudge(-1)
	case key.Matches(msg, m.keys.Widen):
		m.nudge(1)
	case key.Matches(msg, m.keys.Toggle):
		if !m.splitter.IsCollapsed() && h.AllowToCollapse() == layout.SideNone {
			m.setStatus("Collapsing is disabled")
			return nil
		}
		h.Toggle()
	case key.Matches(msg, m.keys.Reset):
		m.setError(m.splitter.Reset())
	case key.Matches(msg, m.keys.Switcher):
		return m.activate(actionQuickSwitcher)
	case key.Matches(msg, m.keys.AskAI):
		if m.studio.AskAI {
			return m.activate(actionAskAI)
		}
	case key.Matches(msg, m.keys.Render):
		return m.activate(actionRender)
	case key.Matches(msg, m.keys.Compose):
		return m.activate(actionNewComposition)
	}
	return nil
}

// nudge moves the handle one step toward dir (-1 start, +1 end) through the
// programmatic path, so it is refused while a drag is running.
func (m *Model) nudge(dir float64) {
	if m.splitter.IsCollapsed() {
		m.setStatus("Toolbar is collapsed; press \\ to expand")
		return
	}
	if m.splitter.FlexerSide() == layout.SideEnd {
		dir = -dir
	}
	if err := m.splitter.SetFlex(m.splitter.Flex() + dir*nudgeStep); err != nil {
		if errors.Is(err, layout.ErrDragActive) {
			m.setStatus("Finish the drag first")
			return
		}
		m.setError(err)
	}
}

func (m *Model) activate(a buttonAction) tea.Cmd {
	switch a {
	case actionNewComposition:
		m.noticeID++
		m.notice = newCompositionNotice
		id := m.noticeID
		return tea.Tick(noticeDuration, func(time.Time) tea.Msg { return noticeExpiredMsg{id: id} })
	case actionQuickSwitcher:
		m.pushScreen(NewQuickSwitcher(m.studio.Compositions))
	case actionAskAI:
		m.askAIOpen = !m.askAIOpen
	case actionRender:
		m.pushScreen(NewRenderModal(m.studio.Compositions, m.composition))
	}
	return nil
}

// pushScreen opens a modal. The modal takes the pointer, so a running
// resize is cancelled first.
func (m *Model) pushScreen(s Screen) {
	if h := m.splitter.Handle(); h.Dragging() {
		h.CaptureLost()
		m.setStatus("Resize cancelled")
	}
	m.screens.Push(s)
}

func (m *Model) updateScreen(top Screen, msg tea.Msg) tea.Cmd {
	next, cmd, closed := top.Update(msg)
	if closed {
		m.screens.Pop()
	} else {
		m.screens.Replace(next)
	}
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.screens.Len() > 0 {
		return nil
	}
	h := m.splitter.Handle()
	offset := m.mainOffset(msg)
	pos := float64(offset)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y >= m.bodyHeight() {
			return nil
		}
		if m.sizes.HandleContains(offset) {
			h.PointerDown(pos)
			return nil
		}
		if offset < m.sizes.Start {
			// pane content starts below the top border
			if row := msg.Y - 1; row >= 0 && row < len(m.buttons) {
				return m.activate(m.buttons[row].Action)
			}
		}
	case tea.MouseActionMotion:
		h.PointerMove(pos)
	case tea.MouseActionRelease:
		h.PointerUp(pos)
	}
	return nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	m.status = err.Error()
	m.statusErr = true
}
