package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/folio/internal/chart"
	"github.com/verte-zerg/folio/internal/model"
	"github.com/verte-zerg/folio/internal/portfolio"
)

const (
	sparkChars      = " .:-=+*#%@"
	defaultBarWidth = 20
)

// RenderProjects prints the projects passing filter as a table.
func RenderProjects(w io.Writer, projects []model.Project, filter model.CategoryFilter) error {
	shown := portfolio.Filter(projects, filter)
	if _, err := fmt.Fprintf(w, "Projects (%s): %d of %d\n", filter, len(shown), len(projects)); err != nil {
		return err
	}
	if len(shown) == 0 {
		_, err := fmt.Fprintln(w, "No projects in this category.")
		return err
	}
	rows := make([][]string, 0, len(shown))
	for i, p := range shown {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			p.Title,
			p.Category.String(),
			p.Description,
		})
	}
	lines := formatTable([]string{"#", "Title", "Category", "Description"}, rows, map[int]bool{0: true})
	return writeLines(w, lines)
}

// RenderSkills prints the radar chart followed by one proficiency bar per skill.
func RenderSkills(w io.Writer, skills []model.SkillEntry, opts chart.RadarOptions, barWidth int) error {
	if len(skills) == 0 {
		_, err := fmt.Fprintln(w, "No skills found.")
		return err
	}
	if barWidth <= 0 {
		barWidth = defaultBarWidth
	}
	labels := make([]string, len(skills))
	values := make([]float64, len(skills))
	rows := make([][]string, 0, len(skills))
	for i, s := range skills {
		labels[i] = s.Name
		values[i] = float64(s.Proficiency)
		rows = append(rows, []string{s.Name, chart.ProgressLine(s.Proficiency, barWidth)})
	}
	if _, err := fmt.Fprintln(w, "Skills Overview"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, chart.Radar(labels, values, opts)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Proficiency"); err != nil {
		return err
	}
	return writeLines(w, formatTable(nil, rows, nil))
}

// RenderLocation prints the map pin panel.
func RenderLocation(w io.Writer, p model.GeoPoint, width, height int) error {
	if _, err := fmt.Fprintln(w, "Location"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, chart.MapPin(p, width, height))
	return err
}

// RenderData prints the demo table, per-column summaries and a chart.
func RenderData(w io.Writer, table model.DataTable, seed int64, opts chart.Options) error {
	if len(table.Rows) == 0 {
		_, err := fmt.Fprintln(w, "No data.")
		return err
	}
	if _, err := fmt.Fprintf(w, "Demo data (seed %d)\n", seed); err != nil {
		return err
	}
	headers := append([]string{"#"}, table.Columns...)
	rightAlign := map[int]bool{}
	for i := range headers {
		rightAlign[i] = true
	}
	rows := make([][]string, 0, len(table.Rows))
	for i, row := range table.Rows {
		cells := []string{fmt.Sprintf("%d", i)}
		for _, v := range row {
			cells = append(cells, fmt.Sprintf("%.4f", v))
		}
		rows = append(rows, cells)
	}
	if err := writeLines(w, formatTable(headers, rows, rightAlign)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}

	summary := make([][]string, 0, len(table.Columns))
	for i, name := range table.Columns {
		col := table.Column(i)
		mean, lo, hi := describe(col)
		summary = append(summary, []string{
			name,
			fmt.Sprintf("%.3f", mean),
			fmt.Sprintf("%.3f", lo),
			fmt.Sprintf("%.3f", hi),
			Sparkline(col),
		})
	}
	if err := writeLines(w, formatTable([]string{"Column", "Mean", "Min", "Max", "Trend"}, summary, map[int]bool{1: true, 2: true, 3: true})); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return chart.Plot(w, opts.Kind.String()+" Chart", chart.SeriesFromTable(table), opts)
}

// RenderVisits prints recorded page views relative to now.
func RenderVisits(w io.Writer, visits []model.PageVisits, now time.Time) error {
	total := 0
	rows := make([][]string, 0, len(visits))
	for _, v := range visits {
		total += v.Count
		last := "never"
		if !v.LastVisited.IsZero() {
			last = humanize.RelTime(v.LastVisited, now, "ago", "from now")
		}
		rows = append(rows, []string{v.Page.String(), humanize.Comma(int64(v.Count)), last})
	}
	if total == 0 {
		_, err := fmt.Fprintln(w, "No visits recorded.")
		return err
	}
	if _, err := fmt.Fprintf(w, "Page views: %s\n", humanize.Comma(int64(total))); err != nil {
		return err
	}
	return writeLines(w, formatTable([]string{"Page", "Views", "Last visited"}, rows, map[int]bool{1: true}))
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	_, minVal, maxVal := describe(values)
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

func describe(values []float64) (mean, minVal, maxVal float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	minVal, maxVal = values[0], values[0]
	var sum float64
	for _, v := range values {
		sum += v
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	return sum / float64(len(values)), minVal, maxVal
}
