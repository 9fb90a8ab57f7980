// SPDX-License-Identifier: MIT

package combine

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of cells over combinations.
type Summary struct {
	Cells        int     `json:"cells" yaml:"cells"`
	Combinations int     `json:"combinations" yaml:"combinations"`
	Dominant     Entry   `json:"dominant" yaml:"dominant"` // most frequent pair; lowest code on ties
	Entropy      float64 `json:"entropy" yaml:"entropy"`   // Shannon entropy in nats
	Evenness     float64 `json:"evenness" yaml:"evenness"` // Entropy / ln(Combinations); 0 when Combinations < 2
	Simpson      float64 `json:"simpson" yaml:"simpson"`   // 1 - Σ p²
}

// Summary computes diversity statistics over the table's cell proportions.
// An empty table yields the zero Summary.
func (t *Table) Summary() Summary {
	n := len(t.entries)
	if n == 0 || t.total == 0 {
		return Summary{}
	}

	counts := make([]float64, n)
	for i, e := range t.entries {
		counts[i] = float64(e.Count)
	}
	p := make([]float64, n)
	floats.ScaleTo(p, 1/floats.Sum(counts), counts)

	s := Summary{
		Cells:        t.total,
		Combinations: n,
		Dominant:     t.entries[floats.MaxIdx(counts)], // first max ⇒ lowest code
		Entropy:      stat.Entropy(p),
		Simpson:      1 - floats.Dot(p, p),
	}
	if n > 1 {
		s.Evenness = s.Entropy / math.Log(float64(n))
	}

	return s
}

// Marginals holds per-layer cell counts recovered from the table.
type Marginals struct {
	First  map[uint64]int `json:"first" yaml:"first"`
	Second map[uint64]int `json:"second" yaml:"second"`
}

// Marginals sums entry counts per value of each input layer, i.e. the
// histograms of the two original grids.
func (t *Table) Marginals() Marginals {
	m := Marginals{
		First:  make(map[uint64]int),
		Second: make(map[uint64]int),
	}
	for _, e := range t.entries {
		m.First[e.First] += e.Count
		m.Second[e.Second] += e.Count
	}

	return m
}
