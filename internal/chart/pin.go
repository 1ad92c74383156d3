package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/verte-zerg/folio/internal/model"
)

const (
	pinMarker     = '◉'
	graticuleStep = 30.0
)

// MapPin draws an equirectangular world grid of width x height cells with a
// marker at p, followed by a coordinate caption.
func MapPin(p model.GeoPoint, width, height int) string {
	if width < 3 {
		width = 3
	}
	if height < 3 {
		height = 3
	}
	pinCol := clampInt(int((p.Lon+180)/360*float64(width)), 0, width-1)
	pinRow := clampInt(int((90-p.Lat)/180*float64(height)), 0, height-1)

	lonStep := 360 / float64(width)
	latStep := 180 / float64(height)
	var b strings.Builder
	for r := 0; r < height; r++ {
		lat := 90 - (float64(r)+0.5)*latStep
		for c := 0; c < width; c++ {
			lon := -180 + (float64(c)+0.5)*lonStep
			switch {
			case r == pinRow && c == pinCol:
				b.WriteRune(pinMarker)
			case nearLine(lat, 0, latStep) && nearLine(lon, 0, lonStep):
				b.WriteRune('┼')
			case nearLine(lat, 0, latStep):
				b.WriteRune('─')
			case nearLine(lon, 0, lonStep):
				b.WriteRune('│')
			case nearGraticule(lat, latStep) || nearGraticule(lon, lonStep):
				b.WriteRune('·')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString(FormatCoordinate(p))
	return b.String()
}

// FormatCoordinate renders p as "11.1761°N 119.3891°E (zoom 10)".
func FormatCoordinate(p model.GeoPoint) string {
	ns := "N"
	if p.Lat < 0 {
		ns = "S"
	}
	ew := "E"
	if p.Lon < 0 {
		ew = "W"
	}
	out := fmt.Sprintf("%.4f°%s %.4f°%s", math.Abs(p.Lat), ns, math.Abs(p.Lon), ew)
	if p.Zoom > 0 {
		out += fmt.Sprintf(" (zoom %d)", p.Zoom)
	}
	return out
}

func nearLine(v, line, step float64) bool {
	return math.Abs(v-line) < step/2
}

func nearGraticule(v, step float64) bool {
	nearest := math.Round(v/graticuleStep) * graticuleStep
	return nearLine(v, nearest, step)
}
