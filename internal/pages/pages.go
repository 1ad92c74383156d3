// Package pages selects what each portfolio page shows. Builders are pure:
// the same inputs always produce the same view, and drawing is left to the
// caller. Images are resolved up front by ResolveImages.
package pages

import (
	"errors"

	"github.com/verte-zerg/folio/internal/asset"
	"github.com/verte-zerg/folio/internal/chart"
	"github.com/verte-zerg/folio/internal/contact"
	"github.com/verte-zerg/folio/internal/content"
	"github.com/verte-zerg/folio/internal/model"
	"github.com/verte-zerg/folio/internal/portfolio"
)

// User-facing messages.
const (
	ResumeToast        = "Resume download started! (Simulated)"
	ContactSuccess     = "Message sent! I'll get back to you soon."
	ContactMissing     = "Please fill in all fields."
	SentToast          = "🎈 Thanks for reaching out!"
	ProfileImageMissed = "Profile image not found."
	AboutImageMissed   = "About image not found."
	ProjectImageMissed = "Project image not found."
)

// Images holds the resolved pictures of a catalog.
type Images struct {
	Profile  asset.Image
	About    asset.Image
	Projects map[string]asset.Image // keyed by image reference
}

// ResolveImages resolves every image c refers to. It reads the asset
// directory, so callers run it when the catalog changes, not per render.
func ResolveImages(c content.Content, assets *asset.Resolver) Images {
	imgs := Images{
		Profile:  assets.Placeholder(c.Profile.Photo, c.Profile.Caption, ProfileImageMissed),
		About:    assets.Placeholder(c.About.Image, c.About.ImageCaption, AboutImageMissed),
		Projects: make(map[string]asset.Image, len(c.Projects)),
	}
	for _, p := range c.Projects {
		if _, ok := imgs.Projects[p.ImageRef]; ok {
			continue
		}
		imgs.Projects[p.ImageRef] = assets.Placeholder(p.ImageRef, "", ProjectImageMissed)
	}
	return imgs
}

func (imgs Images) project(p model.Project) asset.Image {
	img, ok := imgs.Projects[p.ImageRef]
	if !ok {
		img = asset.Image{Ref: p.ImageRef, Warning: ProjectImageMissed}
	}
	img.Caption = p.Title
	return img
}

// Action is a button on the home page.
type Action int

// Home page actions.
const (
	ActionResume Action = iota
	ActionContact
)

// String returns the button label.
func (a Action) String() string {
	switch a {
	case ActionResume:
		return "Download Resume"
	case ActionContact:
		return "Contact Me"
	default:
		return "Unknown"
	}
}

// HomeView is the landing page.
type HomeView struct {
	Name     string
	Headline string
	Summary  string
	Photo    asset.Image
	Metrics  []model.Metric
	Links    []content.Link
	Actions  []Action
}

// Home builds the landing page.
func Home(c content.Content, imgs Images) HomeView {
	return HomeView{
		Name:     c.Profile.Name,
		Headline: c.Profile.Headline,
		Summary:  c.Profile.Summary,
		Photo:    imgs.Profile,
		Metrics:  c.Metrics,
		Links:    c.Profile.Links,
		Actions:  []Action{ActionResume, ActionContact},
	}
}

// AboutTab is one tab of the about page.
type AboutTab int

// About tabs in display order.
const (
	TabBiography AboutTab = iota
	TabEducation
	TabExperience
)

// AboutTabs lists tabs in display order.
var AboutTabs = []AboutTab{TabBiography, TabEducation, TabExperience}

// String returns the tab label.
func (t AboutTab) String() string {
	switch t {
	case TabBiography:
		return "Biography"
	case TabEducation:
		return "Education"
	case TabExperience:
		return "Experience"
	default:
		return "Unknown"
	}
}

// ExperienceItem is one collapsible experience entry.
type ExperienceItem struct {
	Title    string
	Bullets  []string
	Expanded bool
}

// AboutView is the about page with its active tab.
type AboutView struct {
	Tabs          []AboutTab
	Active        AboutTab
	Story         string
	Image         asset.Image
	Degree        string
	School        string
	Years         string
	EducationNote string
	Experience    []ExperienceItem
}

// DefaultExpanded returns the initial expander state of the experience entries.
func DefaultExpanded(c content.Content) []bool {
	out := make([]bool, len(c.About.Experience))
	for i, e := range c.About.Experience {
		out[i] = e.Expanded
	}
	return out
}

// About builds the about page. expanded holds one flag per experience entry;
// entries without a flag use their catalog default.
func About(c content.Content, imgs Images, active AboutTab, expanded []bool) AboutView {
	if active < TabBiography || active > TabExperience {
		active = TabBiography
	}
	items := make([]ExperienceItem, len(c.About.Experience))
	for i, e := range c.About.Experience {
		open := e.Expanded
		if i < len(expanded) {
			open = expanded[i]
		}
		items[i] = ExperienceItem{Title: e.Title, Bullets: e.Bullets, Expanded: open}
	}
	return AboutView{
		Tabs:          AboutTabs,
		Active:        active,
		Story:         c.About.Story,
		Image:         imgs.About,
		Degree:        c.About.Degree,
		School:        c.About.School,
		Years:         c.About.Years,
		EducationNote: c.About.EducationNote,
		Experience:    items,
	}
}

// ProjectCard is a project with its resolved image and an inert button label.
type ProjectCard struct {
	Project model.Project
	Image   asset.Image
	Action  string
}

// PortfolioView is the filtered gallery and the demo data panel.
type PortfolioView struct {
	Filter   model.CategoryFilter
	Filters  []model.CategoryFilter
	Counts   map[model.CategoryFilter]int
	Projects []ProjectCard
	Data     model.DataTable
	Series   []chart.Series
	Chart    model.ChartKind
	Seed     int64
}

// Portfolio builds the gallery for filter. data is shown as given; it only
// changes when the caller regenerates it.
func Portfolio(c content.Content, imgs Images, filter model.CategoryFilter, data model.DataTable, seed int64, kind model.ChartKind) PortfolioView {
	shown := portfolio.Filter(c.Projects, filter)
	cards := make([]ProjectCard, len(shown))
	for i, p := range shown {
		cards[i] = ProjectCard{Project: p, Image: imgs.project(p), Action: "View Code for " + p.Title}
	}
	return PortfolioView{
		Filter:   filter,
		Filters:  portfolio.Categories(),
		Counts:   portfolio.Counts(c.Projects),
		Projects: cards,
		Data:     data,
		Series:   chart.SeriesFromTable(data),
		Chart:    kind,
		Seed:     seed,
	}
}

// SkillsView is the radar chart, the bar list and the location pin.
type SkillsView struct {
	Skills     []model.SkillEntry
	Labels     []string
	Values     []float64
	Location   model.GeoPoint
	Coordinate string
}

// Skills builds the skills page.
func Skills(c content.Content) SkillsView {
	labels := make([]string, len(c.Skills))
	values := make([]float64, len(c.Skills))
	for i, s := range c.Skills {
		labels[i] = s.Name
		values[i] = float64(s.Proficiency)
	}
	return SkillsView{
		Skills:     c.Skills,
		Labels:     labels,
		Values:     values,
		Location:   c.Location,
		Coordinate: chart.FormatCoordinate(c.Location),
	}
}

// Status is the outcome line under the contact form.
type Status int

// Contact form statuses.
const (
	StatusIdle Status = iota
	StatusSent
	StatusError
)

// Field describes one contact form input.
type Field struct {
	Label       string
	Placeholder string
	Multiline   bool
}

// ContactFields lists the form inputs in focus order.
var ContactFields = []Field{
	{Label: "Name", Placeholder: "Your name"},
	{Label: "Email", Placeholder: "you@example.com"},
	{Label: "Message", Placeholder: "Say hello", Multiline: true},
}

// Submission is the last submit attempt.
type Submission struct {
	Receipt contact.Receipt
	Err     error
}

// ContactView is the contact form with the outcome of the last submit.
type ContactView struct {
	Fields  []Field
	Status  Status
	Message string
	Missing []string
	Receipt contact.Receipt
}

// Contact builds the contact page. A nil attempt means nothing was submitted yet.
func Contact(attempt *Submission) ContactView {
	v := ContactView{Fields: ContactFields}
	if attempt == nil {
		return v
	}
	if attempt.Err == nil {
		v.Status = StatusSent
		v.Message = ContactSuccess
		v.Receipt = attempt.Receipt
		return v
	}
	v.Status = StatusError
	v.Message = ContactMissing
	var verr *contact.ValidationError
	if errors.As(attempt.Err, &verr) {
		v.Missing = verr.Fields
	}
	return v
}
