// Package lvraster combines categorical raster layers.
//
// Two equally shaped integer grids (say land cover and soil type) are paired
// cell by cell into one coded grid, and every distinct pair is listed in a
// Value Attribute Table with its occurrence count.
//
// Subpackages:
//
//	pairing/  - Cantor pairing: Encode/Decode plus range-checked variants
//	grid/     - generic row-major Dense[T] integer grid, dtypes, validators, fixtures
//	combine/  - parallel encode, partitioned histogram, Table, export, summary, Verify
//	vatstore/ - sqlite persistence of tables
//
// Quick start:
//
//	a, _ := grid.FromRows([][]uint8{{10, 10}, {11, 11}})
//	b, _ := grid.FromRows([][]uint8{{20, 21}, {20, 21}})
//	res, err := combine.Combine(a, b)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, e := range res.Table.Entries() {
//		fmt.Println(e.Value, e.First, e.Second, e.Count)
//	}
//
// The cmd/rastercombine tool generates random layers, combines them and writes
// the table as CSV, JSON or YAML, optionally storing it in sqlite.
package lvraster
