package chart

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/verte-zerg/folio/internal/model"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		level, width, filled int
	}{
		{90, 10, 9},
		{0, 10, 0},
		{100, 10, 10},
		{150, 4, 4},
		{-5, 4, 0},
		{75, 10, 8},
	}
	for _, tt := range tests {
		bar := ProgressBar(tt.level, tt.width)
		if utf8.RuneCountInString(bar) != tt.width {
			t.Fatalf("level %d: expected width %d, got %q", tt.level, tt.width, bar)
		}
		if got := strings.Count(bar, barFull); got != tt.filled {
			t.Fatalf("level %d: expected %d filled cells, got %d", tt.level, tt.filled, got)
		}
	}
	if ProgressBar(50, 0) != "" {
		t.Fatalf("expected empty bar for zero width")
	}
}

func TestProgressLine(t *testing.T) {
	if got := ProgressLine(40, 5); !strings.HasSuffix(got, " 40%") {
		t.Fatalf("unexpected progress line %q", got)
	}
}

func TestMapPin(t *testing.T) {
	out := MapPin(model.GeoPoint{Lat: 11.1761, Lon: 119.3891, Zoom: 10}, 36, 9)
	if strings.Count(out, string(pinMarker)) != 1 {
		t.Fatalf("expected exactly one pin:\n%s", out)
	}
	if !strings.Contains(out, "11.1761°N 119.3891°E (zoom 10)") {
		t.Fatalf("expected coordinate caption, got:\n%s", out)
	}
	lines := strings.Split(out, "\n")
	pinLine := -1
	for i, line := range lines {
		if strings.ContainsRune(line, pinMarker) {
			pinLine = i
		}
	}
	if pinLine < 0 || pinLine >= 9/2 {
		t.Fatalf("expected pin in the northern half, got line %d", pinLine)
	}
}

func TestFormatCoordinateHemispheres(t *testing.T) {
	got := FormatCoordinate(model.GeoPoint{Lat: -33.8688, Lon: -70.6693})
	if got != "33.8688°S 70.6693°W" {
		t.Fatalf("unexpected coordinate %q", got)
	}
}
