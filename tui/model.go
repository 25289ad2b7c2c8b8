// Package tui is pinder's interactive front end: a bubbletea program with a
// board pane and a command menu pane.
//
// The board pane moves a cursor over the cells and edits them; the menu runs
// the searches, switches the data overlay and resets the board. All work
// happens inside Update on bubbletea's event loop.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pinder/gridgraph"
	"github.com/katalvlaran/pinder/session"
)

// pane identifies which window receives key input.
type pane int

const (
	paneBoard pane = iota
	paneMenu
)

// Model is the bubbletea model driving a Session.
type Model struct {
	sess   *session.Session
	keys   keyMap
	help   help.Model
	menu   menu
	focus  pane
	view   session.View
	cursor gridgraph.Location
	status string

	width    int
	quitting bool
}

// New returns a model over sess with the board focused and the path view active.
func New(sess *session.Session) Model {
	return Model{
		sess: sess,
		keys: defaultKeyMap(),
		help: help.New(),
		view: session.ViewPath,
	}
}

// Run starts the interactive program on the alternate screen and blocks
// until the user exits.
func Run(sess *session.Session, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(New(sess), opts...).Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Focus):
			if m.focus == paneBoard {
				m.focus = paneMenu
			} else {
				m.focus = paneBoard
			}
			return m, nil
		}

		if m.focus == paneMenu {
			return m.updateMenu(msg)
		}
		m.updateBoard(msg)
	}

	return m, nil
}

// updateBoard handles cursor movement and cell edits.
func (m *Model) updateBoard(msg tea.KeyMsg) {
	b := m.sess.Board()
	rows, cols := b.Rows(), b.Columns()

	var edited bool
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor.Y = (m.cursor.Y - 1 + rows) % rows
	case key.Matches(msg, m.keys.Down):
		m.cursor.Y = (m.cursor.Y + 1) % rows
	case key.Matches(msg, m.keys.Left):
		m.cursor.X = (m.cursor.X - 1 + cols) % cols
	case key.Matches(msg, m.keys.Right):
		m.cursor.X = (m.cursor.X + 1) % cols
	case key.Matches(msg, m.keys.Start):
		edited = m.sess.SetStart(m.cursor)
	case key.Matches(msg, m.keys.Goal):
		edited = m.sess.SetGoal(m.cursor)
	case key.Matches(msg, m.keys.Wall):
		edited = m.sess.ToggleWall(m.cursor)
	case key.Matches(msg, m.keys.Weight):
		edited = m.sess.ToggleWeight(m.cursor)
	case key.Matches(msg, m.keys.Clear):
		edited = m.sess.SetEmpty(m.cursor)
	}
	if edited {
		m.status = ""
	}
}

// updateMenu handles menu navigation and selection.
func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.menu.up()
	case key.Matches(msg, m.keys.Down):
		m.menu.down()
	case key.Matches(msg, m.keys.Select):
		return m.activate(m.menu.cursor)
	}
	return m, nil
}

// activate performs the action bound to item.
func (m Model) activate(item menuItem) (tea.Model, tea.Cmd) {
	if disabled(item, m.view) {
		return m, nil
	}
	if a, ok := item.algorithm(); ok {
		m.sess.Run(a)
		m.status = m.sess.Status()
		return m, nil
	}
	if v, ok := item.view(); ok {
		m.view = v
		return m, nil
	}

	switch item {
	case itemRandom:
		m.sess.Randomize()
		m.status = ""
	case itemClear:
		m.sess.Reset()
		m.status = ""
	case itemExit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	boardPane, menuPane := inactivePane, inactivePane
	if m.focus == paneBoard {
		boardPane = activePane
	} else {
		menuPane = activePane
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		boardPane.Render(m.renderBoard()),
		"  ",
		menuPane.Width(menuWidth).Render(m.menu.render(m.view)),
	)

	var sb strings.Builder
	sb.WriteString(panes)
	sb.WriteString("\n")
	if m.status != "" {
		sb.WriteString(statusStyle.Render(m.status))
	}
	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render(fmt.Sprintf("view: %s  cursor: %s", m.view, m.cursor)))
	sb.WriteString("\n")
	if m.focus == paneBoard {
		sb.WriteString(m.help.View(boardHelp(m.keys)))
	} else {
		sb.WriteString(m.help.View(menuHelp(m.keys)))
	}
	return sb.String()
}

// renderBoard draws every cell padded to cellWidth, highlighting the cursor
// while the board has focus.
func (m Model) renderBoard() string {
	b := m.sess.Board()
	var sb strings.Builder
	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Columns(); x++ {
			l := gridgraph.Location{X: x, Y: y}
			r := m.sess.Glyph(l, m.view)
			style := styleFor(r)
			if m.focus == paneBoard && l == m.cursor {
				style = style.Inherit(cursorStyle)
			}
			sb.WriteString(" ")
			sb.WriteString(style.Render(string(r)))
			sb.WriteString(strings.Repeat(" ", cellWidth-2))
		}
		if y < b.Rows()-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
