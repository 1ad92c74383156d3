package chart

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	gridColor   = "\x1b[90m"
	labelMargin = 1
)

// Radar renders values in [0, 100] on evenly spaced spokes as a closed
// polygon, starting at the top and going clockwise. labels name the spokes.
func Radar(labels []string, values []float64, opts RadarOptions) string {
	n := len(values)
	if len(labels) < n {
		n = len(labels)
	}
	if n == 0 {
		return ""
	}
	size := opts.Size
	if size <= 0 {
		size = defaultRadarSize
	}

	radius := size * 4
	plotRows := size*2 + 1
	plotCols := radius + 1
	cx, cy := float64(radius), float64(radius)

	labelWidth := 0
	for _, l := range labels[:n] {
		if w := runewidth.StringWidth(l); w > labelWidth {
			labelWidth = w
		}
	}
	labelWidth += labelMargin
	totalCols := labelWidth*2 + plotCols
	totalRows := plotRows + 2

	grid := makeCells(plotRows, plotCols)
	data := makeCells(plotRows, plotCols)

	angles := make([]float64, n)
	vertices := make([][2]float64, n)
	for i := 0; i < n; i++ {
		angles[i] = -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		r := clamp(values[i], 0, 100) / 100 * float64(radius)
		vertices[i] = [2]float64{cx + r*math.Cos(angles[i]), cy + r*math.Sin(angles[i])}
	}

	dotted := lineStyles[2]
	for i := 0; i < n; i++ {
		ox := cx + float64(radius)*math.Cos(angles[i])
		oy := cy + float64(radius)*math.Sin(angles[i])
		drawLine(round(cx), round(cy), round(ox), round(oy), func(x, y int) {
			if dotted.shouldPlot(x + y) {
				setBrailleDot(grid, x, y)
			}
		})
		nx := cx + float64(radius)*math.Cos(angles[(i+1)%n])
		ny := cy + float64(radius)*math.Sin(angles[(i+1)%n])
		drawLine(round(ox), round(oy), round(nx), round(ny), func(x, y int) {
			if dotted.shouldPlot(x + y) {
				setBrailleDot(grid, x, y)
			}
		})
	}

	if opts.Fill && n >= 3 {
		for y := 0; y < plotRows*4; y++ {
			for x := 0; x < plotCols*2; x++ {
				if (x+y)%2 == 0 && pointInPolygon(float64(x), float64(y), vertices) {
					setBrailleDot(data, x, y)
				}
			}
		}
	}
	for i := 0; i < n; i++ {
		a := vertices[i]
		b := vertices[(i+1)%n]
		drawLine(round(a[0]), round(a[1]), round(b[0]), round(b[1]), func(x, y int) {
			setBrailleDot(data, x, y)
		})
	}

	overlay := make([][]rune, totalRows)
	for r := range overlay {
		overlay[r] = make([]rune, totalCols)
	}
	for i := 0; i < n; i++ {
		placeLabel(overlay, labels[i], angles[i], radius, labelWidth)
	}

	lines := make([]string, totalRows)
	for r := 0; r < totalRows; r++ {
		var b strings.Builder
		for c := 0; c < totalCols; c++ {
			if ch := overlay[r][c]; ch != 0 {
				if ch != -1 {
					b.WriteRune(ch)
				}
				continue
			}
			pr, pc := r-1, c-labelWidth
			if pr < 0 || pr >= plotRows || pc < 0 || pc >= plotCols {
				b.WriteByte(' ')
				continue
			}
			mask, layer := composeCell([][][]uint8{data, grid}, pc, pr)
			ch := brailleFromMask(mask)
			if !opts.Color || layer < 0 {
				b.WriteRune(ch)
				continue
			}
			if layer == 0 {
				b.WriteString(colorPalette[0].code)
			} else {
				b.WriteString(gridColor)
			}
			b.WriteRune(ch)
			b.WriteString(colorReset)
		}
		lines[r] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// placeLabel writes label just outside the spoke end. Cells covered by the
// trailing half of a wide rune are marked -1 so they are skipped on output.
func placeLabel(overlay [][]rune, label string, angle float64, radius, labelWidth int) {
	cos, sin := math.Cos(angle), math.Sin(angle)
	dx := float64(radius) + float64(radius)*cos + 2*cos
	dy := float64(radius) + float64(radius)*sin + 3*sin
	row := int(math.Round(dy/4)) + 1
	col := int(math.Round(dx/2)) + labelWidth
	width := runewidth.StringWidth(label)
	switch {
	case cos < -0.3:
		col -= width
	case cos > 0.3:
		col++
	default:
		col -= width / 2
	}
	if row < 0 {
		row = 0
	}
	if row >= len(overlay) {
		row = len(overlay) - 1
	}
	line := overlay[row]
	if col < 0 {
		col = 0
	}
	if col+width > len(line) {
		col = len(line) - width
		if col < 0 {
			col = 0
			label = runewidth.Truncate(label, len(line), "")
		}
	}
	for _, r := range label {
		w := runewidth.RuneWidth(r)
		if col+w > len(line) {
			return
		}
		line[col] = r
		for k := 1; k < w; k++ {
			line[col+k] = -1
		}
		col += w
	}
}

func pointInPolygon(x, y float64, poly [][2]float64) bool {
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		xi, yi := poly[i][0], poly[i][1]
		xj, yj := poly[j][0], poly[j][1]
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

func round(v float64) int {
	return int(math.Round(v))
}
