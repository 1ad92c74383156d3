// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
	"time"
)

// PageID identifies one of the navigable pages.
type PageID int

// Pages in sidebar order.
const (
	PageHome PageID = iota
	PageAbout
	PagePortfolio
	PageSkills
	PageContact
)

// Pages lists every page in sidebar order.
var Pages = []PageID{PageHome, PageAbout, PagePortfolio, PageSkills, PageContact}

var pageNames = map[PageID]string{
	PageHome:      "Home",
	PageAbout:     "About Me",
	PagePortfolio: "Portfolio",
	PageSkills:    "Skills",
	PageContact:   "Contact",
}

var pageSlugs = map[PageID]string{
	PageHome:      "home",
	PageAbout:     "about",
	PagePortfolio: "portfolio",
	PageSkills:    "skills",
	PageContact:   "contact",
}

// Valid reports whether p is one of the enumerated pages.
func (p PageID) Valid() bool {
	_, ok := pageNames[p]
	return ok
}

// String returns the sidebar label.
func (p PageID) String() string {
	if name, ok := pageNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PageID(%d)", int(p))
}

// Slug returns the lower-case identifier used in flags, config and storage.
func (p PageID) Slug() string {
	return pageSlugs[p]
}

// ParsePageID accepts a slug or a sidebar label.
func ParsePageID(s string) (PageID, error) {
	key := normalizeKey(s)
	for _, p := range Pages {
		if key == p.Slug() || key == normalizeKey(p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown page %q (expected one of: %s)", s, strings.Join(pageSlugList(), ", "))
}

func pageSlugList() []string {
	out := make([]string, 0, len(Pages))
	for _, p := range Pages {
		out = append(out, p.Slug())
	}
	return out
}

// Category is a project category.
type Category int

// Project categories.
const (
	CategoryDataScience Category = iota + 1
	CategoryWebDev
	CategoryAutomation
)

// Categories lists project categories in display order.
var Categories = []Category{CategoryDataScience, CategoryWebDev, CategoryAutomation}

var categoryNames = map[Category]string{
	CategoryDataScience: "Data Science",
	CategoryWebDev:      "Web Dev",
	CategoryAutomation:  "Automation",
}

var categorySlugs = map[Category]string{
	CategoryDataScience: "data-science",
	CategoryWebDev:      "web-dev",
	CategoryAutomation:  "automation",
}

// String returns the display name.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Slug returns the lower-case identifier.
func (c Category) Slug() string {
	return categorySlugs[c]
}

// ParseCategory accepts a slug or a display name.
func ParseCategory(s string) (Category, error) {
	key := normalizeKey(s)
	for _, c := range Categories {
		if key == c.Slug() || key == normalizeKey(c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if _, ok := categoryNames[c]; !ok {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CategoryFilter selects which projects the portfolio shows.
type CategoryFilter int

// Filter values in slider order.
const (
	FilterAll CategoryFilter = iota
	FilterDataScience
	FilterWebDev
	FilterAutomation
)

// CategoryFilters lists filter values in slider order.
var CategoryFilters = []CategoryFilter{FilterAll, FilterDataScience, FilterWebDev, FilterAutomation}

// Category returns the category the filter selects. ok is false for FilterAll.
func (f CategoryFilter) Category() (Category, bool) {
	switch f {
	case FilterDataScience:
		return CategoryDataScience, true
	case FilterWebDev:
		return CategoryWebDev, true
	case FilterAutomation:
		return CategoryAutomation, true
	default:
		return 0, false
	}
}

// Matches reports whether a project of category c passes the filter.
func (f CategoryFilter) Matches(c Category) bool {
	want, ok := f.Category()
	if !ok {
		return true
	}
	return want == c
}

// String returns the display name.
func (f CategoryFilter) String() string {
	if c, ok := f.Category(); ok {
		return c.String()
	}
	return "All"
}

// Slug returns the lower-case identifier.
func (f CategoryFilter) Slug() string {
	if c, ok := f.Category(); ok {
		return c.Slug()
	}
	return "all"
}

// ParseCategoryFilter accepts "all" or any category name.
func ParseCategoryFilter(s string) (CategoryFilter, error) {
	if normalizeKey(s) == "all" || strings.TrimSpace(s) == "" {
		return FilterAll, nil
	}
	c, err := ParseCategory(s)
	if err != nil {
		return FilterAll, fmt.Errorf("unknown category filter %q (expected all, data-science, web-dev or automation)", s)
	}
	return FilterFor(c), nil
}

// FilterFor returns the filter selecting a single category.
func FilterFor(c Category) CategoryFilter {
	switch c {
	case CategoryDataScience:
		return FilterDataScience
	case CategoryWebDev:
		return FilterWebDev
	case CategoryAutomation:
		return FilterAutomation
	default:
		return FilterAll
	}
}

// ChartKind is the display mode of the demo chart.
type ChartKind int

// Chart kinds in selector order.
const (
	ChartLine ChartKind = iota
	ChartBar
	ChartArea
)

// ChartKinds lists chart kinds in selector order.
var ChartKinds = []ChartKind{ChartLine, ChartBar, ChartArea}

// String returns the selector label.
func (k ChartKind) String() string {
	switch k {
	case ChartLine:
		return "Line"
	case ChartBar:
		return "Bar"
	case ChartArea:
		return "Area"
	default:
		return fmt.Sprintf("ChartKind(%d)", int(k))
	}
}

// Valid reports whether k is an enumerated chart kind.
func (k ChartKind) Valid() bool {
	return k >= ChartLine && k <= ChartArea
}

// ParseChartKind accepts line, bar or area.
func ParseChartKind(s string) (ChartKind, error) {
	key := normalizeKey(s)
	for _, k := range ChartKinds {
		if key == normalizeKey(k.String()) {
			return k, nil
		}
	}
	return ChartLine, fmt.Errorf("unknown chart kind %q (expected line, bar or area)", s)
}

// Project is a portfolio entry.
type Project struct {
	Title       string   `toml:"title"`
	Category    Category `toml:"category"`
	Description string   `toml:"description"`
	ImageRef    string   `toml:"image"`
}

// SkillEntry is a named proficiency level between 0 and 100.
type SkillEntry struct {
	Name        string `toml:"name"`
	Proficiency int    `toml:"proficiency"`
}

// ContactSubmission is a contact form payload. It is never stored.
type ContactSubmission struct {
	Name    string
	Email   string
	Message string
}

// Metric is a headline number shown on the home page.
type Metric struct {
	Label string `toml:"label"`
	Value string `toml:"value"`
	Delta string `toml:"delta"`
}

// GeoPoint is a map pin.
type GeoPoint struct {
	Lat  float64 `toml:"lat"`
	Lon  float64 `toml:"lon"`
	Zoom int     `toml:"zoom"`
}

// DataTable is a column-major-named table of numeric rows.
type DataTable struct {
	Columns []string
	Rows    [][]float64
}

// Column returns the values of column i.
func (t DataTable) Column(i int) []float64 {
	out := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		if i < len(row) {
			out = append(out, row[i])
		}
	}
	return out
}

// Config defines viewer settings.
type Config struct {
	StartPage   PageID
	Category    CategoryFilter
	Chart       ChartKind
	Seed        int64
	TrackVisits bool
	ContentPath string
	AssetDir    string
}

// PageVisits summarizes recorded views of one page.
type PageVisits struct {
	Page        PageID
	Count       int
	LastVisited time.Time
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "-")
	return strings.ReplaceAll(s, " ", "-")
}
