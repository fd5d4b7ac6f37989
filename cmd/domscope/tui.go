package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/npillmayer/domscope"
	"github.com/npillmayer/domscope/dom"
	"github.com/npillmayer/domscope/snapshot"
	"github.com/npillmayer/domscope/termcanvas"
)

// chrome rows around the canvas: the URL bar above, the status line below.
const chromeRows = 2

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type repaintMsg struct{}

type docMsg struct {
	root     dom.Node
	location string
	err      error
}

// hoverInfo carries the hovered-node caption from the debounce timer
// goroutine to the next frame.
type hoverInfo struct {
	mu   sync.Mutex
	text string
}

func (h *hoverInfo) set(text string) {
	h.mu.Lock()
	h.text = text
	h.mu.Unlock()
}

func (h *hoverInfo) get() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.text
}

type tuiModel struct {
	view     *domscope.View
	canvas   *termcanvas.Canvas
	input    textinput.Model
	doc      dom.Node
	location string
	selector string
	status   string
	hovered  *hoverInfo
	repaint  chan struct{}
	width    int
	height   int
	loading  bool
}

func newTUIModel(location, selector string) tuiModel {
	input := textinput.New()
	input.Placeholder = "https://example.org"
	input.Prompt = "url> "
	if location == "" {
		input.Focus()
	} else {
		input.SetValue(location)
	}
	return tuiModel{
		input:    input,
		location: location,
		selector: selector,
		hovered:  &hoverInfo{},
		repaint:  make(chan struct{}, 1),
	}
}

func runTUI(location, selector string) error {
	p := tea.NewProgram(newTUIModel(location, selector),
		tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

func (m tuiModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.awaitRepaint()}
	if m.location != "" {
		cmds = append(cmds, m.fetch(m.location))
	}
	return tea.Batch(cmds...)
}

// awaitRepaint returns a command that delivers the next asynchronous
// repaint signal (view updates triggered by the hover debouncer).
func (m tuiModel) awaitRepaint() tea.Cmd {
	ch := m.repaint
	return func() tea.Msg {
		<-ch
		return repaintMsg{}
	}
}

func (m tuiModel) fetch(location string) tea.Cmd {
	selector := m.selector
	return func() tea.Msg {
		root, err := loadDocument(context.Background(), location, selector)
		return docMsg{root: root, location: location, err: err}
	}
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m = m.rebuildView()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case docMsg:
		m.loading = false
		if msg.err != nil {
			// keep whatever is on screen, just report
			m.status = errorStyle.Render(msg.err.Error())
			return m, nil
		}
		m.doc = msg.root
		m.location = msg.location
		m.status = "loaded " + msg.location
		m = m.showDocument()
		return m, nil

	case repaintMsg:
		return m, m.awaitRepaint()
	}
	return m, nil
}

func (m tuiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.teardown()
		return m, tea.Quit
	case "tab":
		if m.input.Focused() {
			m.input.Blur()
		} else {
			m.input.Focus()
		}
		return m, nil
	case "enter":
		if m.input.Focused() && m.input.Value() != "" {
			m.input.Blur()
			m.loading = true
			m.status = "fetching " + m.input.Value() + "…"
			return m, m.fetch(m.input.Value())
		}
		return m, nil
	}
	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "q":
		m.teardown()
		return m, tea.Quit
	case "r":
		if m.location != "" {
			m.loading = true
			m.status = "reloading " + m.location + "…"
			return m, m.fetch(m.location)
		}
	}
	return m, nil
}

func (m tuiModel) handleMouse(msg tea.MouseMsg) {
	if m.view == nil {
		return
	}
	// translate terminal cells to canvas coordinates; row 0 is the URL bar
	x, y := float64(msg.X), float64(msg.Y-1)
	if y < 0 || msg.Y > m.height-chromeRows {
		return
	}
	switch {
	case msg.Action == tea.MouseActionMotion:
		m.view.Hover(x, y)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease:
		m.view.Click(x, y)
	}
}

// rebuildView recreates canvas and view for the current terminal size
// and re-installs the document, if any.
func (m tuiModel) rebuildView() tuiModel {
	if m.width < 1 || m.height <= chromeRows {
		return m
	}
	if m.view != nil {
		m.view.Close()
	}
	m.canvas = termcanvas.New(m.width, m.height-chromeRows)
	repaint := m.repaint
	hovered := m.hovered
	m.view = domscope.New(m.canvas,
		domscope.WithUpdateFunc(func() {
			select {
			case repaint <- struct{}{}:
			default:
			}
		}),
		domscope.WithHoverFunc(func(n *snapshot.Node) {
			hovered.set(caption(n))
		}),
	)
	m.input.Width = m.width - len(m.input.Prompt) - 1
	return m.showDocument()
}

func (m tuiModel) showDocument() tuiModel {
	if m.view == nil || m.doc == nil {
		return m
	}
	if m.selector != "" {
		m.view.SetRoot(m.doc)
		return m
	}
	if err := m.view.SetDocument(m.doc); err != nil {
		m.status = errorStyle.Render(err.Error())
	}
	return m
}

func (m tuiModel) teardown() {
	if m.view != nil {
		m.view.Close()
	}
}

func caption(n *snapshot.Node) string {
	if n == nil {
		return ""
	}
	text := "<" + n.TagName() + ">"
	if n.ID() != "" {
		text += " #" + n.ID()
	}
	return fmt.Sprintf("%s depth %d", text, n.Depth())
}

func (m tuiModel) View() string {
	frame := m.input.View() + "\n"
	if m.canvas != nil {
		frame += m.canvas.Render()
	}
	status := m.status
	if h := m.hovered.get(); h != "" {
		status = h + "  " + status
	}
	if m.loading {
		status = "⋯ " + status
	}
	return frame + "\n" + statusStyle.Render(status)
}
