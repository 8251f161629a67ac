package editor

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding of the editor. It satisfies help.KeyMap.
type keyMap struct {
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	PrevFeature   key.Binding
	NextFeature   key.Binding
	Edit          key.Binding
	Blur          key.Binding
	AddPackage    key.Binding
	AddFeature    key.Binding
	DeleteFeature key.Binding
	Delete        key.Binding
	Confirm       key.Binding
	Cancel        key.Binding
	Customize     key.Binding
	Reset         key.Binding
	Palette       key.Binding
	Gradient      key.Binding
	Export        key.Binding
	Dismiss       key.Binding
	Help          key.Binding
	Quit          key.Binding
	ForceQuit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		PrevFeature: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev feature"),
		),
		NextFeature: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next feature"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter/e", "edit"),
		),
		Blur: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "up", "down"),
			key.WithHelp("tab", "save and leave"),
		),
		AddPackage: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add package"),
		),
		AddFeature: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "add feature"),
		),
		DeleteFeature: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove feature"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete package"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm delete"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "cancel delete"),
		),
		Customize: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "customize"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset colors"),
		),
		Palette: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "generate UI colors"),
		),
		Gradient: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "generate gradient"),
		),
		Export: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "download image"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x", "esc"),
			key.WithHelp("x", "dismiss"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp returns the bindings shown in the collapsed footer
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.AddPackage, k.Delete, k.Customize, k.Export, k.Help, k.Quit}
}

// FullHelp returns the bindings shown when help is expanded
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.PrevFeature, k.NextFeature},
		{k.Edit, k.Blur, k.AddPackage, k.AddFeature, k.DeleteFeature},
		{k.Delete, k.Confirm, k.Cancel},
		{k.Customize, k.Reset, k.Palette, k.Gradient, k.Export},
		{k.Help, k.Quit},
	}
}
