package nav

import (
	"testing"

	"github.com/verte-zerg/folio/internal/model"
)

func TestNewStateDefaultsToHome(t *testing.T) {
	s := NewState()
	if s.Current() != model.PageHome {
		t.Fatalf("expected Home, got %s", s.Current())
	}
}

func TestSelect(t *testing.T) {
	s := NewState()
	s.Select(model.PageSkills)
	if s.Current() != model.PageSkills {
		t.Fatalf("expected Skills, got %s", s.Current())
	}
}

func TestSelectIgnoresUnknownPage(t *testing.T) {
	s := NewState()
	s.Select(model.PagePortfolio)
	s.Select(model.PageID(42))
	if s.Current() != model.PagePortfolio {
		t.Fatalf("expected Portfolio to stay selected, got %s", s.Current())
	}
}

func TestNextPrevWrap(t *testing.T) {
	s := NewState()
	s.Prev()
	if s.Current() != model.PageContact {
		t.Fatalf("expected wrap to Contact, got %s", s.Current())
	}
	s.Next()
	if s.Current() != model.PageHome {
		t.Fatalf("expected wrap to Home, got %s", s.Current())
	}
	s.Next()
	s.Next()
	if s.Current() != model.PagePortfolio {
		t.Fatalf("expected Portfolio, got %s", s.Current())
	}
}
