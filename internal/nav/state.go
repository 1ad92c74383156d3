// Package nav holds the sidebar navigation state.
package nav

import "github.com/verte-zerg/folio/internal/model"

// State tracks the currently selected page.
type State struct {
	current model.PageID
}

// NewState returns a State positioned on the home page.
func NewState() *State {
	return &State{current: model.PageHome}
}

// Select makes page current. Ids outside the enumeration are ignored.
func (s *State) Select(page model.PageID) {
	if !page.Valid() {
		return
	}
	s.current = page
}

// Current returns the selected page.
func (s *State) Current() model.PageID {
	return s.current
}

// Next moves to the following sidebar entry, wrapping at the end.
func (s *State) Next() {
	s.move(1)
}

// Prev moves to the previous sidebar entry, wrapping at the start.
func (s *State) Prev() {
	s.move(-1)
}

func (s *State) move(delta int) {
	count := len(model.Pages)
	idx := 0
	for i, p := range model.Pages {
		if p == s.current {
			idx = i
			break
		}
	}
	next := (idx + delta) % count
	if next < 0 {
		next += count
	}
	s.current = model.Pages[next]
}
