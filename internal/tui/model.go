package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/folio/internal/asset"
	"github.com/verte-zerg/folio/internal/contact"
	"github.com/verte-zerg/folio/internal/content"
	"github.com/verte-zerg/folio/internal/demo"
	"github.com/verte-zerg/folio/internal/model"
	"github.com/verte-zerg/folio/internal/nav"
	"github.com/verte-zerg/folio/internal/pages"
	"github.com/verte-zerg/folio/internal/portfolio"
)

const (
	sidebarWidth  = 24
	toastDuration = 3 * time.Second
)

const (
	fieldName = iota
	fieldEmail
	fieldMessage
	fieldCount
)

// VisitRecorder stores page views.
type VisitRecorder interface {
	RecordVisit(ctx context.Context, page model.PageID, at time.Time) error
}

// Options configures a Model.
type Options struct {
	Config  model.Config
	Content content.Content
	Assets  *asset.Resolver
	// Visits is nil when tracking is disabled.
	Visits VisitRecorder
	Now    func() time.Time
}

type toastExpiredMsg struct {
	id int
}

// ContentReloadedMsg carries a catalog reloaded from disk.
type ContentReloadedMsg struct {
	Content content.Content
	Err     error
}

// Model implements the Bubble Tea portfolio UI.
type Model struct {
	content content.Content
	assets  *asset.Resolver
	images  pages.Images
	visits  VisitRecorder
	now     func() time.Time

	nav *nav.State

	aboutTab      pages.AboutTab
	expanded      []bool
	selectedEntry int

	filter    model.CategoryFilter
	chartKind model.ChartKind
	gen       *demo.Generator
	data      model.DataTable
	dataTable table.Model

	inputs       []textinput.Model
	message      textarea.Model
	editing      bool
	focusedField int
	attempt      *pages.Submission

	keys     keyMap
	help     help.Model
	viewport viewport.Model

	toast   string
	toastID int
	errMsg  string

	width  int
	height int
}

// NewModel constructs the portfolio UI and records the first page view.
func NewModel(opts Options) *Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	gen := demo.New(opts.Config.Seed)
	m := &Model{
		content:   opts.Content,
		assets:    opts.Assets,
		visits:    opts.Visits,
		now:       now,
		nav:       nav.NewState(),
		expanded:  pages.DefaultExpanded(opts.Content),
		filter:    opts.Config.Category,
		chartKind: opts.Config.Chart,
		gen:       gen,
		data:      gen.DefaultTable(),
		keys:      defaultKeyMap(),
		help:      help.New(),
		viewport:  viewport.New(0, 0),
	}
	if !m.chartKind.Valid() {
		m.chartKind = model.ChartLine
	}
	m.images = pages.ResolveImages(m.content, m.assets)
	m.nav.Select(opts.Config.StartPage)
	m.initInputs()
	m.dataTable = buildDataTable(m.data)
	m.recordVisit()
	m.refreshContent()
	return m
}

// Current returns the page being shown.
func (m *Model) Current() model.PageID {
	return m.nav.Current()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = ""
		}
	case ContentReloadedMsg:
		cmd = m.applyContent(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.editing {
			cmd = m.updateForm(msg)
		} else {
			var quit bool
			cmd, quit = m.handleKey(msg)
			if quit {
				return m, tea.Quit
			}
		}
	default:
		if m.editing {
			cmd = m.forwardToFocused(msg)
		}
	}
	m.updateLayout()
	m.refreshContent()
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	bodyHeight, footerHeight := m.layoutHeights()
	sidebar := fitLines(m.renderSidebar(bodyHeight), sidebarWidth, bodyHeight)
	body := fitLines(m.viewport.View(), m.contentWidth(), bodyHeight)
	main := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, body)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return main + "\n" + footer
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return nil, true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil, false
	case key.Matches(msg, m.keys.NextPage):
		m.nav.Next()
		m.pageChanged()
		return nil, false
	case key.Matches(msg, m.keys.PrevPage):
		m.nav.Prev()
		m.pageChanged()
		return nil, false
	case key.Matches(msg, m.keys.JumpPage):
		idx := int(msg.Runes[0] - '1')
		if idx >= 0 && idx < len(model.Pages) {
			m.goTo(model.Pages[idx])
		}
		return nil, false
	}

	switch m.nav.Current() {
	case model.PageHome:
		switch {
		case key.Matches(msg, m.keys.Resume):
			return m.showToast(pages.ResumeToast), false
		case key.Matches(msg, m.keys.ContactMe):
			m.goTo(model.PageContact)
			return nil, false
		}
	case model.PageAbout:
		switch {
		case key.Matches(msg, m.keys.PrevTab):
			m.moveAboutTab(-1)
			return nil, false
		case key.Matches(msg, m.keys.NextTab):
			m.moveAboutTab(1)
			return nil, false
		case m.aboutTab == pages.TabExperience && key.Matches(msg, m.keys.EntryDown):
			m.moveEntry(1)
			return nil, false
		case m.aboutTab == pages.TabExperience && key.Matches(msg, m.keys.EntryUp):
			m.moveEntry(-1)
			return nil, false
		case m.aboutTab == pages.TabExperience && key.Matches(msg, m.keys.ToggleItem):
			if m.selectedEntry < len(m.expanded) {
				m.expanded[m.selectedEntry] = !m.expanded[m.selectedEntry]
			}
			return nil, false
		}
	case model.PagePortfolio:
		switch {
		case key.Matches(msg, m.keys.PrevFilter):
			m.filter = portfolio.Step(m.filter, -1)
			return nil, false
		case key.Matches(msg, m.keys.NextFilter):
			m.filter = portfolio.Step(m.filter, 1)
			return nil, false
		case key.Matches(msg, m.keys.ChartKind):
			m.chartKind = model.ChartKinds[(int(m.chartKind)+1)%len(model.ChartKinds)]
			return nil, false
		case key.Matches(msg, m.keys.Shuffle):
			m.data = m.gen.DefaultTable()
			m.dataTable = buildDataTable(m.data)
			return nil, false
		}
	case model.PageContact:
		switch {
		case key.Matches(msg, m.keys.Edit):
			return m.startEditing(), false
		case key.Matches(msg, m.keys.Submit):
			return m.submit(), false
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd, false
}

func (m *Model) goTo(page model.PageID) {
	if page == m.nav.Current() {
		return
	}
	m.nav.Select(page)
	m.pageChanged()
}

func (m *Model) pageChanged() {
	m.viewport.GotoTop()
	m.recordVisit()
}

func (m *Model) recordVisit() {
	if m.visits == nil {
		return
	}
	if err := m.visits.RecordVisit(context.Background(), m.nav.Current(), m.now()); err != nil {
		m.errMsg = "Failed to record visit: " + err.Error()
		return
	}
	m.errMsg = ""
}

func (m *Model) applyContent(msg ContentReloadedMsg) tea.Cmd {
	if msg.Err != nil {
		m.errMsg = "Failed to reload content: " + msg.Err.Error()
		return nil
	}
	m.content = msg.Content
	m.images = pages.ResolveImages(m.content, m.assets)
	m.expanded = pages.DefaultExpanded(m.content)
	m.selectedEntry = 0
	m.errMsg = ""
	return m.showToast("Content reloaded.")
}

func (m *Model) showToast(text string) tea.Cmd {
	m.toastID++
	m.toast = text
	id := m.toastID
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m *Model) moveAboutTab(delta int) {
	count := len(pages.AboutTabs)
	next := (int(m.aboutTab) + delta + count) % count
	m.aboutTab = pages.AboutTabs[next]
}

func (m *Model) moveEntry(delta int) {
	if len(m.expanded) == 0 {
		return
	}
	m.selectedEntry = (m.selectedEntry + delta + len(m.expanded)) % len(m.expanded)
}

func (m *Model) initInputs() {
	m.inputs = make([]textinput.Model, 0, fieldMessage)
	for _, f := range pages.ContactFields {
		if f.Multiline {
			continue
		}
		m.inputs = append(m.inputs, newFormInput(f.Placeholder))
	}
	msgField := pages.ContactFields[fieldMessage]
	m.message = textarea.New()
	m.message.Placeholder = msgField.Placeholder
	m.message.ShowLineNumbers = false
	m.message.CharLimit = 0
	m.message.SetHeight(5)
	m.message.Cursor.SetMode(cursor.CursorBlink)
}

func newFormInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = placeholder
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) startEditing() tea.Cmd {
	m.editing = true
	return m.focusField(m.focusedField)
}

func (m *Model) stopEditing() {
	m.editing = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.message.Blur()
}

func (m *Model) focusField(idx int) tea.Cmd {
	m.focusedField = (idx + fieldCount) % fieldCount
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.message.Blur()
	if m.focusedField == fieldMessage {
		return m.message.Focus()
	}
	return m.inputs[m.focusedField].Focus()
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.stopEditing()
		return nil
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.NextField):
		return m.focusField(m.focusedField + 1)
	case key.Matches(msg, m.keys.PrevField):
		return m.focusField(m.focusedField - 1)
	case msg.Type == tea.KeyEnter && m.focusedField != fieldMessage:
		return m.focusField(m.focusedField + 1)
	}
	return m.forwardToFocused(msg)
}

func (m *Model) forwardToFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.focusedField == fieldMessage {
		m.message, cmd = m.message.Update(msg)
		return cmd
	}
	m.inputs[m.focusedField], cmd = m.inputs[m.focusedField].Update(msg)
	return cmd
}

func (m *Model) submission() model.ContactSubmission {
	return model.ContactSubmission{
		Name:    m.inputs[fieldName].Value(),
		Email:   m.inputs[fieldEmail].Value(),
		Message: m.message.Value(),
	}
}

func (m *Model) submit() tea.Cmd {
	receipt, err := contact.Submit(m.submission(), m.now())
	m.attempt = &pages.Submission{Receipt: receipt, Err: err}
	if err != nil {
		return nil
	}
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.message.Reset()
	m.stopEditing()
	m.focusedField = fieldName
	return m.showToast(pages.SentToast)
}

func (m *Model) contentWidth() int {
	return maxInt(20, m.width-sidebarWidth)
}

func (m *Model) layoutHeights() (bodyHeight, footerHeight int) {
	footerHeight = lipgloss.Height(m.renderFooter())
	bodyHeight = m.height - footerHeight - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.help.Width = m.width
	bodyHeight, _ := m.layoutHeights()
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = bodyHeight
	inputWidth := minInt(60, m.contentWidth()-4)
	for i := range m.inputs {
		m.inputs[i].Width = maxInt(10, inputWidth)
	}
	m.message.SetWidth(maxInt(10, inputWidth))
}

func (m *Model) refreshContent() {
	width := m.width
	if width <= 0 {
		width = 100
	}
	m.viewport.SetContent(m.renderPage(maxInt(20, width-sidebarWidth) - 2))
}

func (m *Model) renderSidebar(height int) string {
	lines := []string{titleStyle.Render(truncateLine(m.content.Profile.Name, sidebarWidth-3))}
	if caption := m.images.Profile.Caption; caption != "" {
		lines = append(lines, cardTitleStyle.Render(truncateLine(caption, sidebarWidth-3)))
	}
	lines = append(lines, "")
	for i, p := range model.Pages {
		label := truncateLine(p.String(), sidebarWidth-7)
		if p == m.nav.Current() {
			lines = append(lines, sidebarActiveStyle.Render("▸ "+strconv.Itoa(i+1)+" "+label))
		} else {
			lines = append(lines, sidebarInactiveStyle.Render("  "+strconv.Itoa(i+1)+" "+label))
		}
	}
	if len(m.content.Profile.Links) > 0 {
		lines = append(lines, "", headerStyle.Render("Links"))
		for _, link := range m.content.Profile.Links {
			lines = append(lines, headerStyle.Render(truncateLine(link.Label, sidebarWidth-3)))
		}
	}
	if m.content.Footer != "" {
		footer := wrapText(m.content.Footer, sidebarWidth-3)
		pad := height - len(lines) - strings.Count(footer, "\n") - 1
		for ; pad > 0; pad-- {
			lines = append(lines, "")
		}
		lines = append(lines, headerStyle.Render(footer))
	}
	return sidebarStyle.Height(maxInt(1, height)).Width(sidebarWidth - 1).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFooter() string {
	lines := []string{headerStyle.Render(m.help.View(pageHelp{keys: m.keys, page: m.nav.Current(), editing: m.editing}))}
	if m.toast != "" {
		lines = append(lines, toastStyle.Render(m.toast))
	}
	if m.errMsg != "" {
		lines = append(lines, errorStyle.Render(m.errMsg))
	}
	return strings.Join(lines, "\n")
}

