package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/folio/internal/model"
)

type keyMap struct {
	NextPage   key.Binding
	PrevPage   key.Binding
	JumpPage   key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Help       key.Binding
	Quit       key.Binding

	Resume    key.Binding
	ContactMe key.Binding

	PrevTab    key.Binding
	NextTab    key.Binding
	EntryUp    key.Binding
	EntryDown  key.Binding
	ToggleItem key.Binding

	PrevFilter key.Binding
	NextFilter key.Binding
	ChartKind  key.Binding
	Shuffle    key.Binding

	Edit      key.Binding
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Cancel    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextPage:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
		PrevPage:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev page")),
		JumpPage:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "jump")),
		ScrollUp:   key.NewBinding(key.WithKeys("up", "pgup"), key.WithHelp("↑/pgup", "scroll")),
		ScrollDown: key.NewBinding(key.WithKeys("down", "pgdown"), key.WithHelp("↓/pgdn", "scroll")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Resume:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "download resume")),
		ContactMe: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "contact me")),

		PrevTab:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev tab")),
		NextTab:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next tab")),
		EntryUp:    key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "prev entry")),
		EntryDown:  key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "next entry")),
		ToggleItem: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "expand/collapse")),

		PrevFilter: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "category")),
		NextFilter: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "category")),
		ChartKind:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chart type")),
		Shuffle:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "new data")),

		Edit:      key.NewBinding(key.WithKeys("enter", "i"), key.WithHelp("enter", "edit form")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
	}
}

// pageHelp adapts the key map to the bindings active on one page.
type pageHelp struct {
	keys    keyMap
	page    model.PageID
	editing bool
}

func (h pageHelp) ShortHelp() []key.Binding {
	if h.editing {
		return []key.Binding{h.keys.NextField, h.keys.PrevField, h.keys.Submit, h.keys.Cancel}
	}
	return append(h.pageBindings(), h.keys.NextPage, h.keys.Help, h.keys.Quit)
}

func (h pageHelp) FullHelp() [][]key.Binding {
	if h.editing {
		return [][]key.Binding{h.ShortHelp()}
	}
	return [][]key.Binding{
		h.pageBindings(),
		{h.keys.NextPage, h.keys.PrevPage, h.keys.JumpPage},
		{h.keys.ScrollUp, h.keys.ScrollDown, h.keys.Help, h.keys.Quit},
	}
}

func (h pageHelp) pageBindings() []key.Binding {
	switch h.page {
	case model.PageHome:
		return []key.Binding{h.keys.Resume, h.keys.ContactMe}
	case model.PageAbout:
		return []key.Binding{h.keys.PrevTab, h.keys.NextTab, h.keys.EntryDown, h.keys.EntryUp, h.keys.ToggleItem}
	case model.PagePortfolio:
		return []key.Binding{h.keys.PrevFilter, h.keys.NextFilter, h.keys.ChartKind, h.keys.Shuffle}
	case model.PageContact:
		return []key.Binding{h.keys.Edit, h.keys.Submit}
	default:
		return nil
	}
}
