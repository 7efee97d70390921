// Package sparse_test provides benchmarks for CRS storage and arithmetic,
// using deterministic random fill.
package sparse_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/crs/sparse"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *sparse.Matrix[float64]
	sinkV []float64
	sinkF float64
)

// banded returns an n×n matrix with the given half-bandwidth.
func banded(b *testing.B, n, half int) *sparse.Matrix[float64] {
	b.Helper()
	var ts []sparse.Triplet[float64]
	for i := 0; i < n; i++ {
		for j := max(0, i-half); j <= min(n-1, i+half); j++ {
			ts = append(ts, sparse.Triplet[float64]{Row: i, Col: j, Val: float64(1 + (i+j)%5)})
		}
	}
	m, err := sparse.NewFromTriplets(n, n, ts)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkPut(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1337))
			for i := 0; i < b.N; i++ {
				m, _ := sparse.New[float64](n, n)
				for k := 0; k < 4*n; k++ {
					_ = m.Put(rng.Intn(n), rng.Intn(n), 1)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAt(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := banded(b, n, 3)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, _ := m.At(i%n, (i*7)%n)
				sinkF = v
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := banded(b, n, 2), banded(b, n, 4)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := sparse.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := banded(b, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := sparse.Mul(x, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMulVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := banded(b, n, 3)
			v := make([]float64, n)
			for i := range v {
				v[i] = float64(i % 3)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := sparse.MulVec(x, v)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}
