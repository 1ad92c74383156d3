package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/folio/internal/model"
)

func TestPlotKinds(t *testing.T) {
	series := []Series{
		{Name: "A", Values: []float64{1, -2, 3, 2, 1}},
		{Name: "B", Values: []float64{1, 1, 2, 3, 4}},
	}
	for _, kind := range model.ChartKinds {
		var buf bytes.Buffer
		opts, err := NewOptions(kind, 20, 4, false)
		if err != nil {
			t.Fatalf("options: %v", err)
		}
		if err := Plot(&buf, "Test Plot", series, opts); err != nil {
			t.Fatalf("%s: Plot failed: %v", kind, err)
		}
		out := buf.String()
		if !strings.Contains(out, "Test Plot") {
			t.Fatalf("%s: expected title in output", kind)
		}
		if !strings.Contains(out, "Legend:") {
			t.Fatalf("%s: expected legend in output", kind)
		}
		if strings.Contains(out, "\x1b[") {
			t.Fatalf("%s: expected no color codes for a buffer", kind)
		}
		lines := strings.Split(strings.TrimSpace(out), "\n")
		if len(lines) != 1+4+1 {
			t.Fatalf("%s: expected 6 lines, got %d", kind, len(lines))
		}
	}
}

func TestPlotAxisLabelsUseSharedRange(t *testing.T) {
	var buf bytes.Buffer
	opts, _ := NewOptions(model.ChartLine, 10, 3, false)
	if err := Plot(&buf, "", []Series{
		{Name: "A", Values: []float64{-1, 1}},
		{Name: "B", Values: []float64{0, 3}},
	}, opts); err != nil {
		t.Fatalf("Plot failed: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if !strings.Contains(lines[0], "3.00") || !strings.Contains(lines[2], "-1.00") {
		t.Fatalf("unexpected axis labels: %q / %q", lines[0], lines[2])
	}
}

func TestBarChartIncludesZeroBaseline(t *testing.T) {
	var buf bytes.Buffer
	opts, _ := NewOptions(model.ChartBar, 10, 3, false)
	if err := Plot(&buf, "", []Series{{Name: "A", Values: []float64{2, 4}}}, opts); err != nil {
		t.Fatalf("Plot failed: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if !strings.Contains(lines[2], "0.00") {
		t.Fatalf("expected 0.00 bottom label, got %q", lines[2])
	}
}

func TestPlotEmptySeriesWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	opts, _ := NewOptions(model.ChartLine, 0, 0, false)
	if err := Plot(&buf, "Empty", []Series{{Name: "A"}}, opts); err != nil {
		t.Fatalf("Plot failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestSeriesFromTable(t *testing.T) {
	series := SeriesFromTable(model.DataTable{
		Columns: []string{"A", "B"},
		Rows:    [][]float64{{1, 2}, {3, 4}},
	})
	if len(series) != 2 || series[1].Name != "B" || series[1].Values[1] != 4 {
		t.Fatalf("unexpected series: %+v", series)
	}
}
