// Package content holds the portfolio catalog: profile text, projects and skills.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/folio/internal/model"
)

// Link is a labelled external profile link.
type Link struct {
	Label string `toml:"label"`
	URL   string `toml:"url"`
}

// Profile is the owner's headline information.
type Profile struct {
	Name     string `toml:"name"`
	Headline string `toml:"headline"`
	Summary  string `toml:"summary"`
	Photo    string `toml:"photo"`
	Caption  string `toml:"caption"`
	Links    []Link `toml:"links"`
}

// Experience is one collapsible entry of the experience tab.
type Experience struct {
	Title    string   `toml:"title"`
	Bullets  []string `toml:"bullets"`
	Expanded bool     `toml:"expanded"`
}

// About holds the biography, education and experience tabs.
type About struct {
	Story         string       `toml:"story"`
	Image         string       `toml:"image"`
	ImageCaption  string       `toml:"image-caption"`
	Degree        string       `toml:"degree"`
	School        string       `toml:"school"`
	Years         string       `toml:"years"`
	EducationNote string       `toml:"education-note"`
	Experience    []Experience `toml:"experience"`
}

// Content is the full catalog rendered by the pages.
type Content struct {
	Profile  Profile            `toml:"profile"`
	Metrics  []model.Metric     `toml:"metrics"`
	About    About              `toml:"about"`
	Projects []model.Project    `toml:"projects"`
	Skills   []model.SkillEntry `toml:"skills"`
	Location model.GeoPoint     `toml:"location"`
	Footer   string             `toml:"footer"`
}

// Load reads a catalog from path. Each top-level section present in the file
// replaces the default section as a whole. Missing file is not an error.
func Load(path string) (Content, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return Content{}, fmt.Errorf("failed to stat content: %w", err)
	}
	var file Content
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return Content{}, fmt.Errorf("failed to decode content: %w", err)
	}
	if md.IsDefined("profile") {
		c.Profile = file.Profile
	}
	if md.IsDefined("metrics") {
		c.Metrics = file.Metrics
	}
	if md.IsDefined("about") {
		c.About = file.About
	}
	if md.IsDefined("projects") {
		c.Projects = file.Projects
	}
	if md.IsDefined("skills") {
		c.Skills = file.Skills
	}
	if md.IsDefined("location") {
		c.Location = file.Location
	}
	if md.IsDefined("footer") {
		c.Footer = file.Footer
	}
	if err := c.Validate(); err != nil {
		return Content{}, fmt.Errorf("invalid content %s: %w", path, err)
	}
	return c, nil
}

// Validate checks the invariants the pages rely on.
func (c Content) Validate() error {
	if strings.TrimSpace(c.Profile.Name) == "" {
		return fmt.Errorf("profile name must not be empty")
	}
	for i, p := range c.Projects {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("project %d: title must not be empty", i+1)
		}
		if _, err := p.Category.MarshalText(); err != nil {
			return fmt.Errorf("project %q: %w", p.Title, err)
		}
	}
	for _, s := range c.Skills {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("skill name must not be empty")
		}
		if s.Proficiency < 0 || s.Proficiency > 100 {
			return fmt.Errorf("skill %q: proficiency must be between 0 and 100", s.Name)
		}
	}
	if c.Location.Lat < -90 || c.Location.Lat > 90 || c.Location.Lon < -180 || c.Location.Lon > 180 {
		return fmt.Errorf("location out of range")
	}
	return nil
}

// Write encodes c as TOML to path, creating parent directories.
func Write(path string, c Content) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create content directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create content file: %w", err)
	}
	if err := toml.NewEncoder(file).Encode(c); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to encode content: %w", err)
	}
	return file.Close()
}
