package boolmatrix_test

import (
	"fmt"

	"github.com/SmirnovOleg/formal-languages/boolmatrix"
)

// ExampleBoolMatrix demonstrates building two small boolean matrices and
// combining them with the boolean semiring's union and matmul operations.
func ExampleBoolMatrix() {
	a, _ := boolmatrix.NewBoolMatrix(3)
	_ = a.Set(0, 1, true)
	_ = a.Set(1, 2, true)

	b, _ := boolmatrix.NewBoolMatrix(3)
	_ = b.Set(1, 2, true)
	_ = b.Set(2, 0, true)

	union, _ := boolmatrix.Union(a, b)
	fmt.Println("union nvals:", union.NVals())

	// a@b composes a's 0->1 with b's 1->2, and a's 1->2 with b's 2->0.
	product, _ := boolmatrix.Matmul(a, b)
	for _, e := range product.IterEntries() {
		fmt.Printf("product: %d->%d\n", e.Row, e.Col)
	}

	// Output:
	// union nvals: 3
	// product: 0->2
	// product: 1->0
}
