// Package portfolio provides project gallery filtering.
package portfolio

import "github.com/verte-zerg/folio/internal/model"

// Filter returns the projects matching category, in source order.
// FilterAll returns projects unchanged.
func Filter(projects []model.Project, category model.CategoryFilter) []model.Project {
	if category == model.FilterAll {
		return projects
	}
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if category.Matches(p.Category) {
			out = append(out, p)
		}
	}
	return out
}

// Counts returns how many projects each filter option would show.
func Counts(projects []model.Project) map[model.CategoryFilter]int {
	counts := make(map[model.CategoryFilter]int, len(model.CategoryFilters))
	for _, f := range model.CategoryFilters {
		counts[f] = 0
	}
	counts[model.FilterAll] = len(projects)
	for _, p := range projects {
		f := model.FilterFor(p.Category)
		if f != model.FilterAll {
			counts[f]++
		}
	}
	return counts
}

// Step moves through the filter options like a slider, clamping at both ends.
func Step(current model.CategoryFilter, delta int) model.CategoryFilter {
	idx := 0
	for i, f := range model.CategoryFilters {
		if f == current {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(model.CategoryFilters) {
		idx = len(model.CategoryFilters) - 1
	}
	return model.CategoryFilters[idx]
}

// Categories lists the filter options in slider order.
func Categories() []model.CategoryFilter {
	out := make([]model.CategoryFilter, len(model.CategoryFilters))
	copy(out, model.CategoryFilters)
	return out
}
