// Package combine_test provides benchmarks for the combine engine on seeded
// random uint16 grids shaped like the classic 2000×3000 raster benchmark.
package combine_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvraster/combine"
	"github.com/katalvlaran/lvraster/grid"
)

// benchShapes are rows×cols pairs to benchmark.
var benchShapes = [][2]int{{256, 256}, {1000, 1000}, {2000, 3000}}

// sinks to defeat dead-code elimination
var (
	sinkRes   *combine.Result
	sinkGrid  *grid.Dense[uint64]
	sinkTable *combine.Table
)

func benchGrids(b *testing.B, rows, cols int) (*grid.Dense[uint16], *grid.Dense[uint16]) {
	b.Helper()
	rng := rand.New(rand.NewSource(1337))
	ga, err := grid.Random[uint16](rows, cols, 10, 13, rng)
	if err != nil {
		b.Fatal(err)
	}
	gb, err := grid.Random[uint16](rows, cols, 20, 23, rng)
	if err != nil {
		b.Fatal(err)
	}
	return ga, gb
}

// BenchmarkCombine compares the scalar loop (workers=1) with the parallel default.
func BenchmarkCombine(b *testing.B) {
	b.ReportAllocs()
	for _, s := range benchShapes {
		ga, gb := benchGrids(b, s[0], s[1])
		for _, w := range []int{1, 0} {
			b.Run(fmt.Sprintf("%dx%d/workers=%d", s[0], s[1], w), func(b *testing.B) {
				b.SetBytes(int64(s[0] * s[1] * 2 * 2))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					res, err := combine.Combine(ga, gb, combine.WithWorkers(w))
					if err != nil {
						b.Fatal(err)
					}
					sinkRes = res
				}
			})
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	b.ReportAllocs()
	ga, gb := benchGrids(b, 1000, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := combine.Encode(ga, gb)
		if err != nil {
			b.Fatal(err)
		}
		sinkGrid = g
	}
}

func BenchmarkTabulate(b *testing.B) {
	b.ReportAllocs()
	ga, gb := benchGrids(b, 1000, 1000)
	g, err := combine.Encode(ga, gb)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t, err := combine.Tabulate(g)
		if err != nil {
			b.Fatal(err)
		}
		sinkTable = t
	}
}
