package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/folio/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "folio.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestVisitCounts(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	visits := []struct {
		page model.PageID
		at   time.Time
	}{
		{model.PageHome, base},
		{model.PageSkills, base.Add(time.Minute)},
		{model.PageHome, base.Add(2 * time.Minute)},
		{model.PageContact, base.Add(3 * time.Minute)},
	}
	for _, v := range visits {
		if err := st.RecordVisit(ctx, v.page, v.at); err != nil {
			t.Fatalf("record visit: %v", err)
		}
	}

	counts, err := st.VisitCounts(ctx, nil)
	if err != nil {
		t.Fatalf("visit counts: %v", err)
	}
	if len(counts) != len(model.Pages) {
		t.Fatalf("expected %d rows, got %d", len(model.Pages), len(counts))
	}
	if counts[0].Page != model.PageHome || counts[0].Count != 2 {
		t.Fatalf("unexpected home row: %+v", counts[0])
	}
	if !counts[0].LastVisited.Equal(base.Add(2 * time.Minute)) {
		t.Fatalf("unexpected last visit: %v", counts[0].LastVisited)
	}
	if counts[1].Page != model.PageAbout || counts[1].Count != 0 || !counts[1].LastVisited.IsZero() {
		t.Fatalf("expected empty about row, got %+v", counts[1])
	}

	since := base.Add(90 * time.Second)
	recent, err := st.VisitCounts(ctx, &since)
	if err != nil {
		t.Fatalf("visit counts since: %v", err)
	}
	if recent[0].Count != 1 || recent[3].Count != 0 || recent[4].Count != 1 {
		t.Fatalf("unexpected recent counts: %+v", recent)
	}
}

func TestPrune(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	old := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fresh := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, at := range []time.Time{old, old.Add(time.Hour), fresh} {
		if err := st.RecordVisit(ctx, model.PagePortfolio, at); err != nil {
			t.Fatalf("record visit: %v", err)
		}
	}
	removed, err := st.Prune(ctx, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	counts, err := st.VisitCounts(ctx, nil)
	if err != nil {
		t.Fatalf("visit counts: %v", err)
	}
	if counts[2].Count != 1 {
		t.Fatalf("expected 1 portfolio visit left, got %d", counts[2].Count)
	}
}

func TestSubSecondVisitsOrderByTime(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	half := base.Add(500 * time.Millisecond)
	for _, at := range []time.Time{base, half} {
		if err := st.RecordVisit(ctx, model.PageHome, at); err != nil {
			t.Fatalf("record visit: %v", err)
		}
	}

	counts, err := st.VisitCounts(ctx, &base)
	if err != nil {
		t.Fatalf("visit counts: %v", err)
	}
	if counts[0].Count != 2 {
		t.Fatalf("expected 2 visits since base, got %d", counts[0].Count)
	}
	if !counts[0].LastVisited.Equal(half) {
		t.Fatalf("expected last visit %v, got %v", half, counts[0].LastVisited)
	}

	removed, err := st.Prune(ctx, base.Add(time.Second))
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
}
