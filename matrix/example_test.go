package matrix_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/cuckoo/matrix"
)

// ExampleWriteText dumps a small hand-written distance matrix.
func ExampleWriteText() {
	m, err := matrix.NewFromRows([][]float64{
		{0, 1, 2, 3},
		{1, 0, 4, 5},
		{2, 4, 0, 6},
		{3, 5, 6, 0},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if err = matrix.WriteText(os.Stdout, m); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// # distance matrix 4 x 4
	// 0 1 2 3
	// 1 0 4 5
	// 2 4 0 6
	// 3 5 6 0
}
