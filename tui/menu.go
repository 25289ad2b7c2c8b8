package tui

import (
	"strings"

	"github.com/katalvlaran/pinder/session"
)

// menuItem is one entry of the command menu.
type menuItem int

const (
	itemAStar menuItem = iota
	itemBFS
	itemDijkstra
	itemShowPath
	itemShowCameFrom
	itemShowGoingTo
	itemShowCost
	itemRandom
	itemClear
	itemExit
	menuItemCount
)

var menuLabels = [menuItemCount]string{
	itemAStar:        "A*",
	itemBFS:          "BFS",
	itemDijkstra:     "Dijkstra",
	itemShowPath:     "Show path",
	itemShowCameFrom: "Show previous location",
	itemShowGoingTo:  "Show following location",
	itemShowCost:     "Show cost",
	itemRandom:       "Reset with random data",
	itemClear:        "Clear",
	itemExit:         "Exit",
}

func (i menuItem) String() string {
	if i < 0 || i >= menuItemCount {
		return "?"
	}
	return menuLabels[i]
}

// algorithm returns the search an item runs, if any.
func (i menuItem) algorithm() (session.Algorithm, bool) {
	switch i {
	case itemAStar:
		return session.AStar, true
	case itemBFS:
		return session.BFS, true
	case itemDijkstra:
		return session.Dijkstra, true
	}
	return 0, false
}

// view returns the overlay an item switches to, if any.
func (i menuItem) view() (session.View, bool) {
	switch i {
	case itemShowPath:
		return session.ViewPath, true
	case itemShowCameFrom:
		return session.ViewCameFrom, true
	case itemShowGoingTo:
		return session.ViewGoingTo, true
	case itemShowCost:
		return session.ViewCost, true
	}
	return 0, false
}

// menu tracks the highlighted item. Navigation wraps at both ends.
type menu struct {
	cursor menuItem
}

func (m *menu) up() {
	if m.cursor == 0 {
		m.cursor = menuItemCount - 1
		return
	}
	m.cursor--
}

func (m *menu) down() {
	m.cursor = (m.cursor + 1) % menuItemCount
}

// disabled reports whether item i shows the overlay already on screen.
func disabled(i menuItem, current session.View) bool {
	v, ok := i.view()
	return ok && v == current
}

func (m menu) render(current session.View) string {
	var sb strings.Builder
	for i := menuItem(0); i < menuItemCount; i++ {
		style := menuItemStyle
		prefix := "  "
		switch {
		case disabled(i, current):
			style = menuDisabledStyle
		case i == m.cursor:
			style = menuCurrentStyle
		}
		if i == m.cursor {
			prefix = "> "
		}
		sb.WriteString(style.Render(prefix + i.String()))
		if i < menuItemCount-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
