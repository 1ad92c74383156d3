package chart

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRadarContainsLabels(t *testing.T) {
	labels := []string{"Python", "SQL", "Machine Learning", "Web Development", "Cloud (AWS)"}
	values := []float64{90, 75, 60, 80, 40}
	opts, err := NewRadarOptions(4, true, false)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	out := Radar(labels, values, opts)
	for _, l := range labels {
		if !strings.Contains(out, l) {
			t.Fatalf("expected label %q in radar:\n%s", l, out)
		}
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 4*2+1+2 {
		t.Fatalf("expected %d lines, got %d", 4*2+1+2, len(lines))
	}
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	labelWidth := len("Machine Learning") + labelMargin
	if maxWidth > labelWidth*2+4*4+1 {
		t.Fatalf("radar wider than expected: %d", maxWidth)
	}
}

func TestRadarEmpty(t *testing.T) {
	if out := Radar(nil, nil, RadarOptions{Size: 3}); out != "" {
		t.Fatalf("expected empty radar, got %q", out)
	}
}

func TestRadarDrawsDataPolygon(t *testing.T) {
	empty := Radar([]string{"a", "b", "c"}, []float64{0, 0, 0}, RadarOptions{Size: 3})
	full := Radar([]string{"a", "b", "c"}, []float64{100, 100, 100}, RadarOptions{Size: 3, Fill: true})
	if countDots(full) <= countDots(empty) {
		t.Fatalf("expected more dots for a filled full polygon")
	}
}

func TestRadarColor(t *testing.T) {
	out := Radar([]string{"a", "b", "c"}, []float64{50, 50, 50}, RadarOptions{Size: 3, Color: true})
	if !strings.Contains(out, colorReset) {
		t.Fatalf("expected color codes")
	}
}

func TestPointInPolygon(t *testing.T) {
	square := [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if !pointInPolygon(5, 5, square) {
		t.Fatalf("expected center inside")
	}
	if pointInPolygon(15, 5, square) {
		t.Fatalf("expected point outside")
	}
}

func countDots(s string) int {
	total := 0
	for _, r := range s {
		if r >= 0x2800 && r <= 0x28FF {
			mask := uint8(r - 0x2800)
			for mask != 0 {
				total += int(mask & 1)
				mask >>= 1
			}
		}
	}
	return total
}
