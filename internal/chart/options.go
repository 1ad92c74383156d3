// Package chart renders text charts: line, bar and area plots, radar charts,
// proficiency bars and a map pin panel.
package chart

import (
	"fmt"

	"github.com/verte-zerg/folio/internal/model"
)

const (
	defaultPlotHeight = 10
	minPlotWidth      = 10
	maxPlotHeight     = 200
	defaultRadarSize  = 6
	minRadarSize      = 2
	maxRadarSize      = 40
)

// Options configures a Plot call.
type Options struct {
	Kind   model.ChartKind
	Width  int
	Height int
	Color  bool
}

// NewOptions validates plot settings. Zero width sizes the plot to the
// terminal; zero height uses the default height.
func NewOptions(kind model.ChartKind, width, height int, color bool) (Options, error) {
	if !kind.Valid() {
		return Options{}, fmt.Errorf("invalid chart kind %d", int(kind))
	}
	if width < 0 {
		return Options{}, fmt.Errorf("plot width must be >= 0")
	}
	if width > 0 && width < minPlotWidth {
		return Options{}, fmt.Errorf("plot width must be at least %d", minPlotWidth)
	}
	if height < 0 || height > maxPlotHeight {
		return Options{}, fmt.Errorf("plot height must be between 0 and %d", maxPlotHeight)
	}
	if height == 0 {
		height = defaultPlotHeight
	}
	return Options{Kind: kind, Width: width, Height: height, Color: color}, nil
}

// RadarOptions configures a Radar call.
type RadarOptions struct {
	// Size is the radius in text rows.
	Size  int
	Fill  bool
	Color bool
}

// NewRadarOptions validates radar settings. Zero size uses the default radius.
func NewRadarOptions(size int, fill, color bool) (RadarOptions, error) {
	if size == 0 {
		size = defaultRadarSize
	}
	if size < minRadarSize || size > maxRadarSize {
		return RadarOptions{}, fmt.Errorf("radar size must be between %d and %d", minRadarSize, maxRadarSize)
	}
	return RadarOptions{Size: size, Fill: fill, Color: color}, nil
}
