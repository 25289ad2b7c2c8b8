package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the model reacts to.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Start  key.Binding
	Goal   key.Binding
	Wall   key.Binding
	Weight key.Binding
	Clear  key.Binding
	Select key.Binding
	Focus  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Start:  key.NewBinding(key.WithKeys("s", "S"), key.WithHelp("s", "start")),
		Goal:   key.NewBinding(key.WithKeys("g", "G"), key.WithHelp("g", "goal")),
		Wall:   key.NewBinding(key.WithKeys("w", "W"), key.WithHelp("w", "wall")),
		Weight: key.NewBinding(key.WithKeys("h", "H"), key.WithHelp("h", "heavy path")),
		Clear:  key.NewBinding(key.WithKeys("c", "C"), key.WithHelp("c", "clear cell")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "change window")),
		Quit:   key.NewBinding(key.WithKeys("f1", "f2", "ctrl+c"), key.WithHelp("F1/F2", "exit")),
	}
}

// boardHelp and menuHelp expose the bindings relevant to each pane to the
// help footer.
type (
	boardHelp keyMap
	menuHelp  keyMap
)

func (k boardHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Start, k.Goal, k.Wall, k.Weight, k.Clear, k.Focus, k.Quit}
}

func (k boardHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.Goal, k.Wall, k.Weight, k.Clear},
		{k.Focus, k.Quit},
	}
}

func (k menuHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Focus, k.Quit}
}

func (k menuHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Focus, k.Quit}}
}
