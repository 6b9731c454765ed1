// Package matrix provides core primitives for distance matrices.
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFromRows builds a Dense matrix from a rectangular slice of rows.
// The input is copied; later changes to rows do not affect the result.
//
// Errors: ErrInvalidDimensions for an empty input or ragged rows.
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	var (
		r = len(rows)
		c = len(rows[0])
		i int
	)
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrInvalidDimensions)
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// RawRow returns a copy of row i. Returns nil when i is out of range.
func (m *Dense) RawRow(i int) []float64 {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			sb.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Flatten copies any square Matrix into a row-major buffer w[i*n+j].
// Solvers use it to take an immutable snapshot before a search so hot loops
// avoid interface dispatch and bounds checks.
//
// Errors: ErrNilMatrix, ErrNonSquare, or the error returned by At.
// Complexity: O(n²).
func Flatten(m Matrix) ([]float64, int, error) {
	if m == nil {
		return nil, 0, ErrNilMatrix
	}
	n := m.Rows()
	if n != m.Cols() || n <= 0 {
		return nil, 0, ErrNonSquare
	}
	if d, ok := m.(*Dense); ok {
		w := make([]float64, len(d.data))
		copy(w, d.data)

		return w, n, nil
	}

	var (
		w    = make([]float64, n*n)
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if x, err = m.At(i, j); err != nil {
				return nil, 0, err
			}
			w[i*n+j] = x
		}
	}

	return w, n, nil
}
