package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/folio/internal/asset"
	"github.com/verte-zerg/folio/internal/chart"
	"github.com/verte-zerg/folio/internal/model"
	"github.com/verte-zerg/folio/internal/pages"
)

const (
	plotHeight    = 10
	imageWidth    = 30
	barWidth      = 24
	mapHeight     = 12
	maxTextWidth  = 72
	dataColWidth  = 9
	wideThreshold = 80
)

func (m *Model) renderPage(width int) string {
	width = maxInt(20, width)
	switch m.nav.Current() {
	case model.PageAbout:
		return m.renderAbout(width)
	case model.PagePortfolio:
		return m.renderPortfolio(width)
	case model.PageSkills:
		return m.renderSkills(width)
	case model.PageContact:
		return m.renderContact(width)
	default:
		return m.renderHome(width)
	}
}

func (m *Model) renderHome(width int) string {
	v := pages.Home(m.content, m.images)
	textWidth := minInt(width, maxTextWidth)
	intro := []string{
		titleStyle.Render(v.Name),
		cardTitleStyle.Render(wrapText(v.Headline, textWidth)),
		"",
		wrapText(v.Summary, textWidth),
	}
	if len(v.Links) > 0 {
		labels := make([]string, len(v.Links))
		for i, l := range v.Links {
			labels[i] = l.Label
		}
		intro = append(intro, "", headerStyle.Render(strings.Join(labels, " · ")))
	}

	var top string
	photo := renderImage(v.Photo, imageWidth)
	if width >= textWidth+imageWidth+4 {
		top = lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(textWidth+2).Render(strings.Join(intro, "\n")), photo)
	} else {
		top = strings.Join(intro, "\n") + "\n\n" + photo
	}

	cards := make([]string, len(v.Metrics))
	for i, metric := range v.Metrics {
		cards[i] = metricCard(metric)
	}
	var metrics string
	if width >= wideThreshold {
		metrics = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	} else {
		metrics = strings.Join(cards, "\n")
	}

	buttons := make([]string, len(v.Actions))
	for i, a := range v.Actions {
		buttons[i] = buttonStyle.Render(fmt.Sprintf("[%s] %s", m.actionKey(a), a))
	}
	actions := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
	return strings.Join([]string{top, "", metrics, "", actions}, "\n")
}

func (m *Model) actionKey(a pages.Action) string {
	if a == pages.ActionResume {
		return m.keys.Resume.Help().Key
	}
	return m.keys.ContactMe.Help().Key
}

func metricCard(metric model.Metric) string {
	lines := []string{cardTitleStyle.Render(metric.Label), cardValueStyle.Render(metric.Value)}
	if metric.Delta != "" {
		lines = append(lines, cardDeltaStyle.Render(metric.Delta))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func renderImage(img asset.Image, width int) string {
	inner := maxInt(10, width-4)
	var lines []string
	switch {
	case img.Found || img.Summary != "":
		lines = append(lines, headerStyle.Render(wrapText(img.Summary, inner)))
	case img.Warning != "":
		lines = append(lines, errorStyle.Render(wrapText(img.Warning, inner)))
	}
	if img.Caption != "" {
		lines = append(lines, cardTitleStyle.Render(wrapText(img.Caption, inner)))
	}
	return cardStyle.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderAbout(width int) string {
	v := pages.About(m.content, m.images, m.aboutTab, m.expanded)
	tabs := make([]string, len(v.Tabs))
	for i, tab := range v.Tabs {
		if tab == v.Active {
			tabs[i] = activeNavStyle.Render(tab.String())
		} else {
			tabs[i] = inactiveNavStyle.Render(tab.String())
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	textWidth := minInt(width, maxTextWidth)

	var body string
	switch v.Active {
	case pages.TabEducation:
		lines := []string{
			titleStyle.Render(wrapText(v.Degree, textWidth)),
			v.School,
			headerStyle.Render(v.Years),
		}
		if v.EducationNote != "" {
			lines = append(lines, "", wrapText(v.EducationNote, textWidth))
		}
		body = strings.Join(lines, "\n")
	case pages.TabExperience:
		body = m.renderExperience(v.Experience, textWidth)
	default:
		story := titleStyle.Render("My Story") + "\n\n" + wrapText(v.Story, textWidth)
		img := renderImage(v.Image, imageWidth)
		if width >= textWidth+imageWidth+4 {
			body = lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(textWidth+2).Render(story), img)
		} else {
			body = story + "\n\n" + img
		}
	}
	return header + "\n\n" + body
}

func (m *Model) renderExperience(items []pages.ExperienceItem, width int) string {
	if len(items) == 0 {
		return "No experience listed."
	}
	var blocks []string
	for i, item := range items {
		marker := "▸"
		if item.Expanded {
			marker = "▾"
		}
		title := truncateLine(marker+" "+item.Title, width)
		if i == m.selectedEntry {
			title = selectedStyle.Render(title)
		} else {
			title = titleStyle.Render(title)
		}
		lines := []string{title}
		if item.Expanded {
			for _, b := range item.Bullets {
				lines = append(lines, "  • "+wrapText(b, width-4))
			}
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

func (m *Model) renderPortfolio(width int) string {
	v := pages.Portfolio(m.content, m.images, m.filter, m.data, m.gen.Seed(), m.chartKind)
	options := make([]string, len(v.Filters))
	for i, f := range v.Filters {
		label := fmt.Sprintf("%s (%d)", f, v.Counts[f])
		if f == v.Filter {
			options[i] = selectedStyle.Render("[" + label + "]")
		} else {
			options[i] = headerStyle.Render(" " + label + " ")
		}
	}
	sections := []string{
		titleStyle.Render("My Projects"),
		"Category: " + strings.Join(options, " "),
		"",
	}

	if len(v.Projects) == 0 {
		sections = append(sections, headerStyle.Render("No projects in this category."))
	} else {
		cols := 1
		if width >= wideThreshold {
			cols = 2
		}
		cardWidth := width/cols - 1
		cards := make([]string, len(v.Projects))
		for i, card := range v.Projects {
			cards[i] = projectCard(card, cardWidth)
		}
		for i := 0; i < len(cards); i += cols {
			end := minInt(len(cards), i+cols)
			sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
		}
	}

	kinds := make([]string, len(model.ChartKinds))
	for i, k := range model.ChartKinds {
		if k == v.Chart {
			kinds[i] = selectedStyle.Render("[" + k.String() + "]")
		} else {
			kinds[i] = headerStyle.Render(" " + k.String() + " ")
		}
	}
	sections = append(sections,
		"",
		titleStyle.Render("Interactive Data Demo"),
		headerStyle.Render(fmt.Sprintf("seed %d", v.Seed))+"  Chart: "+strings.Join(kinds, " "),
		"",
		tableMutedStyle.Render(m.dataTable.View()),
		"",
		renderPlot(v, width),
	)
	return strings.Join(sections, "\n")
}

func projectCard(card pages.ProjectCard, width int) string {
	inner := maxInt(10, width-4)
	lines := []string{
		cardValueStyle.Render(truncateLine(card.Project.Title, inner)),
		cardTitleStyle.Render(card.Project.Category.String()),
		wrapText(card.Project.Description, inner),
	}
	switch {
	case card.Image.Summary != "":
		lines = append(lines, headerStyle.Render(truncateLine(card.Image.Summary, inner)))
	case card.Image.Warning != "":
		lines = append(lines, errorStyle.Render(truncateLine(card.Image.Warning, inner)))
	}
	if card.Action != "" {
		lines = append(lines, buttonStyle.Render(truncateLine(card.Action, inner-4)))
	}
	return cardStyle.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

func renderPlot(v pages.PortfolioView, width int) string {
	opts, err := chart.NewOptions(v.Chart, chart.PlotWidthFor(width), plotHeight, true)
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("Failed to render chart: %v", err))
	}
	var buf bytes.Buffer
	if err := chart.Plot(&buf, v.Chart.String()+" Chart", v.Series, opts); err != nil {
		return errorStyle.Render(fmt.Sprintf("Failed to render chart: %v", err))
	}
	return strings.TrimRight(buf.String(), "\n")
}

func buildDataTable(data model.DataTable) table.Model {
	columns := []table.Column{{Title: "#", Width: 3}}
	for _, name := range data.Columns {
		columns = append(columns, table.Column{Title: name, Width: dataColWidth})
	}
	rows := make([]table.Row, 0, len(data.Rows))
	for i, r := range data.Rows {
		row := table.Row{fmt.Sprintf("%d", i)}
		for _, v := range r {
			row = append(row, fmt.Sprintf("%.4f", v))
		}
		rows = append(rows, row)
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
	)
	t.SetStyles(dataTableStyles())
	t.Blur()
	return t
}

func (m *Model) renderSkills(width int) string {
	v := pages.Skills(m.content)
	if len(v.Skills) == 0 {
		return titleStyle.Render("Skills Overview") + "\n\n" + headerStyle.Render("No skills listed.")
	}
	size := 6
	if width < wideThreshold {
		size = 4
	}
	opts, err := chart.NewRadarOptions(size, true, true)
	var radar string
	if err != nil {
		radar = errorStyle.Render(err.Error())
	} else {
		radar = chart.Radar(v.Labels, v.Values, opts)
	}

	nameWidth := 0
	for _, s := range v.Skills {
		nameWidth = maxInt(nameWidth, runewidth.StringWidth(s.Name))
	}
	bars := []string{titleStyle.Render("Proficiency"), ""}
	for _, s := range v.Skills {
		name := runewidth.FillRight(s.Name, nameWidth)
		bars = append(bars, name+"  "+chart.ProgressLine(s.Proficiency, barWidth))
	}
	barBlock := strings.Join(bars, "\n")

	var top string
	if width >= lipgloss.Width(radar)+lipgloss.Width(barBlock)+4 {
		top = lipgloss.JoinHorizontal(lipgloss.Center, radar, "    ", barBlock)
	} else {
		top = radar + "\n\n" + barBlock
	}
	location := titleStyle.Render("Location") + "\n" + chart.MapPin(v.Location, minInt(width-2, maxTextWidth), mapHeight)
	return titleStyle.Render("Skills Overview") + "\n\n" + top + "\n\n" + location
}

func (m *Model) renderContact(width int) string {
	v := pages.Contact(m.attempt)
	textWidth := minInt(width, maxTextWidth)
	lines := []string{
		titleStyle.Render("Contact Me"),
		wrapText("Have a question or want to work together? Send a message.", textWidth),
		"",
	}
	for i, f := range v.Fields {
		label := cardTitleStyle.Render(f.Label)
		if m.editing && i == m.focusedField {
			label = selectedStyle.Render(f.Label)
		}
		lines = append(lines, label)
		if f.Multiline {
			lines = append(lines, m.message.View())
		} else {
			lines = append(lines, m.inputs[i].View())
		}
		lines = append(lines, "")
	}
	if !m.editing {
		lines = append(lines, headerStyle.Render(fmt.Sprintf("Press %s to type, %s to send.", m.keys.Edit.Help().Key, m.keys.Submit.Help().Key)))
	}
	switch v.Status {
	case pages.StatusSent:
		lines = append(lines, successStyle.Render(v.Message))
		lines = append(lines, headerStyle.Render("Reference "+v.Receipt.ID.String()))
	case pages.StatusError:
		lines = append(lines, errorStyle.Render(v.Message))
		if len(v.Missing) > 0 {
			lines = append(lines, headerStyle.Render("Missing: "+strings.Join(v.Missing, ", ")))
		}
	}
	return strings.Join(lines, "\n")
}
