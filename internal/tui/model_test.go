package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/folio/internal/asset"
	"github.com/verte-zerg/folio/internal/content"
	"github.com/verte-zerg/folio/internal/model"
	"github.com/verte-zerg/folio/internal/pages"
)

type fakeVisits struct {
	pages []model.PageID
	err   error
}

func (f *fakeVisits) RecordVisit(_ context.Context, page model.PageID, _ time.Time) error {
	f.pages = append(f.pages, page)
	return f.err
}

func newTestModel(t *testing.T, cfg model.Config, visits VisitRecorder) *Model {
	t.Helper()
	opts := Options{
		Config:  cfg,
		Content: content.Default(),
		Now:     func() time.Time { return time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC) },
	}
	if visits != nil {
		opts.Visits = visits
	}
	m := NewModel(opts)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func press(m *Model, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNavigationKeysChangePage(t *testing.T) {
	m := newTestModel(t, model.Config{Seed: 1}, nil)
	if m.Current() != model.PageHome {
		t.Fatalf("expected home by default, got %v", m.Current())
	}
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Current() != model.PageAbout {
		t.Fatalf("expected about after tab, got %v", m.Current())
	}
	press(m, runes("4"))
	if m.Current() != model.PageSkills {
		t.Fatalf("expected skills after 4, got %v", m.Current())
	}
	press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Current() != model.PagePortfolio {
		t.Fatalf("expected portfolio after shift+tab, got %v", m.Current())
	}
	if !strings.Contains(m.View(), "▸ 3 Portfolio") {
		t.Fatalf("sidebar does not mark the current page:\n%s", m.View())
	}
}

func TestStartPageFromConfig(t *testing.T) {
	m := newTestModel(t, model.Config{StartPage: model.PageSkills, Seed: 1}, nil)
	if m.Current() != model.PageSkills {
		t.Fatalf("expected skills start page, got %v", m.Current())
	}
}

func TestHomeActions(t *testing.T) {
	m := newTestModel(t, model.Config{Seed: 1}, nil)
	cmd := press(m, runes("r"))
	if cmd == nil {
		t.Fatalf("expected toast expiry command")
	}
	if !strings.Contains(m.renderFooter(), pages.ResumeToast) {
		t.Fatalf("footer missing toast: %s", m.renderFooter())
	}
	m.Update(toastExpiredMsg{id: m.toastID})
	if m.toast != "" {
		t.Fatalf("expected toast cleared, got %q", m.toast)
	}

	press(m, runes("c"))
	if m.Current() != model.PageContact {
		t.Fatalf("expected contact page, got %v", m.Current())
	}
}

func TestStaleToastExpiryIgnored(t *testing.T) {
	m := newTestModel(t, model.Config{Seed: 1}, nil)
	press(m, runes("r"))
	first := m.toastID
	press(m, runes("r"))
	m.Update(toastExpiredMsg{id: first})
	if m.toast == "" {
		t.Fatalf("newer toast must survive an older expiry")
	}
}

func TestContactSubmitWithEmptyEmailShowsError(t *testing.T) {
	m := newTestModel(t, model.Config{StartPage: model.PageContact, Seed: 1}, nil)
	press(m,
		tea.KeyMsg{Type: tea.KeyEnter},
		runes("Ann"),
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		runes("Hello there"),
		tea.KeyMsg{Type: tea.KeyCtrlS},
	)
	page := m.renderPage(100)
	if !strings.Contains(page, pages.ContactMissing) {
		t.Fatalf("expected error message, got:\n%s", page)
	}
	if !strings.Contains(page, "Missing: email") {
		t.Fatalf("expected missing email, got:\n%s", page)
	}
	if m.inputs[fieldName].Value() != "Ann" {
		t.Fatalf("form must keep values after a failed submit, got %q", m.inputs[fieldName].Value())
	}
}

func TestContactSubmitSuccessClearsForm(t *testing.T) {
	m := newTestModel(t, model.Config{StartPage: model.PageContact, Seed: 1}, nil)
	press(m,
		tea.KeyMsg{Type: tea.KeyEnter},
		runes("Ann"),
		tea.KeyMsg{Type: tea.KeyEnter},
		runes("ann@example.com"),
		tea.KeyMsg{Type: tea.KeyTab},
		runes("Hi"),
		tea.KeyMsg{Type: tea.KeyCtrlS},
	)
	page := m.renderPage(100)
	if !strings.Contains(page, pages.ContactSuccess) {
		t.Fatalf("expected success message, got:\n%s", page)
	}
	if m.editing {
		t.Fatalf("expected editing to stop after success")
	}
	if m.toast != pages.SentToast {
		t.Fatalf("expected celebration toast, got %q", m.toast)
	}
	if m.inputs[fieldEmail].Value() != "" || m.message.Value() != "" {
		t.Fatalf("expected form cleared")
	}
}

func TestQuitKeyIgnoredWhileEditing(t *testing.T) {
	m := newTestModel(t, model.Config{StartPage: model.PageContact, Seed: 1}, nil)
	press(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("q"))
	if m.inputs[fieldName].Value() != "q" {
		t.Fatalf("expected q in name field, got %q", m.inputs[fieldName].Value())
	}
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	cmd := press(m, runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
}

func TestPortfolioFilterAndChartKeys(t *testing.T) {
	m := newTestModel(t, model.Config{StartPage: model.PagePortfolio, Seed: 5}, nil)
	before := m.data.Rows[0][0]
	press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.filter != model.FilterDataScience {
		t.Fatalf("expected data science filter, got %v", m.filter)
	}
	page := m.renderPage(100)
	if !strings.Contains(page, "Stock Price Predictor") || strings.Contains(page, "E-commerce Website") {
		t.Fatalf("unexpected filtered page:\n%s", page)
	}
	if m.data.Rows[0][0] != before {
		t.Fatalf("changing the filter must not regenerate data")
	}

	press(m, runes("c"))
	if m.chartKind != model.ChartBar {
		t.Fatalf("expected bar chart, got %v", m.chartKind)
	}
	press(m, runes("s"))
	if m.data.Rows[0][0] == before {
		t.Fatalf("expected new data after reshuffle")
	}
}

func TestAboutTabsAndExpanders(t *testing.T) {
	m := newTestModel(t, model.Config{StartPage: model.PageAbout, Seed: 1}, nil)
	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.aboutTab != pages.TabExperience {
		t.Fatalf("expected wrap to experience tab, got %v", m.aboutTab)
	}
	if !m.expanded[0] || m.expanded[1] {
		t.Fatalf("unexpected default expanders: %v", m.expanded)
	}
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	press(m, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.expanded[0] || !m.expanded[1] {
		t.Fatalf("unexpected toggled expanders: %v", m.expanded)
	}
	if !strings.Contains(m.renderPage(100), "Assisted in getting apples.") {
		t.Fatalf("expanded entry bullets missing")
	}
}

func TestVisitsRecordedPerPageChange(t *testing.T) {
	visits := &fakeVisits{}
	m := newTestModel(t, model.Config{Seed: 1}, visits)
	press(m, tea.KeyMsg{Type: tea.KeyTab}, runes("2"), runes("5"))
	want := []model.PageID{model.PageHome, model.PageAbout, model.PageContact}
	if len(visits.pages) != len(want) {
		t.Fatalf("expected %d visits, got %v", len(want), visits.pages)
	}
	for i := range want {
		if visits.pages[i] != want[i] {
			t.Fatalf("visit %d: expected %v, got %v", i, want[i], visits.pages[i])
		}
	}
}

func TestVisitErrorShownInFooter(t *testing.T) {
	visits := &fakeVisits{err: errors.New("disk full")}
	m := newTestModel(t, model.Config{Seed: 1}, visits)
	if !strings.Contains(m.renderFooter(), "disk full") {
		t.Fatalf("footer missing error: %s", m.renderFooter())
	}
}

func TestContentReload(t *testing.T) {
	m := newTestModel(t, model.Config{Seed: 1}, nil)
	updated := content.Default()
	updated.Profile.Name = "Someone Else"
	updated.About.Experience = updated.About.Experience[:1]
	m.Update(ContentReloadedMsg{Content: updated})
	if !strings.Contains(m.renderPage(100), "Someone Else") {
		t.Fatalf("reloaded name not shown")
	}
	if len(m.expanded) != 1 {
		t.Fatalf("expected expander state rebuilt, got %v", m.expanded)
	}

	m.Update(ContentReloadedMsg{Err: errors.New("bad toml")})
	if !strings.Contains(m.renderFooter(), "bad toml") {
		t.Fatalf("footer missing reload error: %s", m.renderFooter())
	}
	if !strings.Contains(m.renderPage(100), "Someone Else") {
		t.Fatalf("failed reload must keep the previous catalog")
	}
}

func TestImagesResolvedOncePerCatalog(t *testing.T) {
	dir := t.TempDir()
	photo := filepath.Join(dir, "me.png")
	// PNG signature is enough for content detection.
	png := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52}
	if err := os.WriteFile(photo, png, 0o644); err != nil {
		t.Fatalf("write photo: %v", err)
	}
	m := NewModel(Options{
		Config:  model.Config{Seed: 1},
		Content: content.Default(),
		Assets:  asset.NewResolver(dir),
	})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if !m.images.Profile.Found {
		t.Fatalf("expected profile photo resolved, got %+v", m.images.Profile)
	}
	if err := os.Remove(photo); err != nil {
		t.Fatalf("remove photo: %v", err)
	}

	press(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	if !strings.Contains(m.renderPage(100), "image/png") {
		t.Fatalf("expected cached photo summary on home:\n%s", m.renderPage(100))
	}

	m.Update(ContentReloadedMsg{Content: content.Default()})
	if m.images.Profile.Found || m.images.Profile.Warning != pages.ProfileImageMissed {
		t.Fatalf("reload must resolve images again, got %+v", m.images.Profile)
	}
}

func TestProjectCardActionAndSidebarCaption(t *testing.T) {
	m := newTestModel(t, model.Config{Seed: 1, StartPage: model.PagePortfolio}, nil)
	if !strings.Contains(m.renderPage(100), "View Code for Stock Price Predictor") {
		t.Fatalf("expected project card action:\n%s", m.renderPage(100))
	}
	if !strings.Contains(m.renderSidebar(30), "Aspiring Developer") {
		t.Fatalf("expected caption under sidebar name:\n%s", m.renderSidebar(30))
	}
}
