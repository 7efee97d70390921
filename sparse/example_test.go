package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/crs/sparse"
)

// ExampleNewFromTriplets builds a tridiagonal matrix from unordered triplets
// and prints its dense rendering.
func ExampleNewFromTriplets() {
	m, err := sparse.NewFromTriplets(3, 3, []sparse.Triplet[float64]{
		{Row: 2, Col: 2, Val: 4},
		{Row: 0, Col: 0, Val: 4},
		{Row: 0, Col: 1, Val: 1},
		{Row: 1, Col: 0, Val: 1},
		{Row: 1, Col: 1, Val: 4},
		{Row: 1, Col: 2, Val: 1},
		{Row: 2, Col: 1, Val: 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m)
	fmt.Println("nnz:", m.NNZ())

	// Output:
	// 4, 1, 0
	// 1, 4, 1
	// 0, 1, 4
	// nnz: 7
}

// ExampleMatrix_Put shows insert, overwrite and the zero no-op.
func ExampleMatrix_Put() {
	m, _ := sparse.New[float64](2, 3)
	_ = m.Put(1, 2, 5)
	_ = m.Put(1, 2, 6) // overwrite
	_ = m.Put(1, 2, 0) // no-op, the entry stays
	_ = m.Put(0, 1, 1)
	fmt.Println(m)

	err := m.Put(2, 0, 1)
	fmt.Println(sparse.KindOf(err))

	// Output:
	// 0, 1, 0
	// 0, 0, 6
	// InvalidIndex
}

// ExampleMul multiplies two small matrices.
func ExampleMul() {
	a, _ := sparse.NewFromTriplets(2, 2, []sparse.Triplet[float64]{
		{Row: 0, Col: 0, Val: 1}, {Row: 0, Col: 1, Val: 2},
		{Row: 1, Col: 1, Val: 3},
	})
	p, err := sparse.Mul(a, sparse.Transpose(a))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p)

	// Output:
	// 5, 6
	// 6, 9
}
