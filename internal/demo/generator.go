// Package demo builds synthetic numeric tables for chart previews.
package demo

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/folio/internal/model"
)

// DefaultRows is the row count of the portfolio demo table.
const DefaultRows = 20

// DefaultColumns names the demo table columns.
var DefaultColumns = []string{"A", "B", "C"}

// Generator produces reproducible standard-normal tables.
type Generator struct {
	seed int64
	rnd  *rand.Rand
}

// New returns a Generator for seed. A zero seed uses the current time.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{seed: seed, rnd: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed the generator started from.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Table draws rows x len(columns) values from a standard normal distribution.
func (g *Generator) Table(rows int, columns []string) model.DataTable {
	if rows < 0 {
		rows = 0
	}
	cols := append([]string(nil), columns...)
	out := make([][]float64, rows)
	for i := range out {
		row := make([]float64, len(cols))
		for j := range row {
			row[j] = g.rnd.NormFloat64()
		}
		out[i] = row
	}
	return model.DataTable{Columns: cols, Rows: out}
}

// DefaultTable draws the 20x3 portfolio demo table.
func (g *Generator) DefaultTable() model.DataTable {
	return g.Table(DefaultRows, DefaultColumns)
}
