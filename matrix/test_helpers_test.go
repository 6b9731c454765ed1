package matrix_test

import "github.com/katalvlaran/cuckoo/matrix"

// rowsMatrix is a minimal Matrix over [][]float64 used to exercise the
// generic (non-Dense) code paths.
type rowsMatrix [][]float64

var _ matrix.Matrix = rowsMatrix{}

func (m rowsMatrix) Rows() int { return len(m) }
func (m rowsMatrix) Cols() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}
func (m rowsMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return m[i][j], nil
}
func (m rowsMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrOutOfRange
	}
	m[i][j] = v

	return nil
}
func (m rowsMatrix) Clone() matrix.Matrix {
	cp := make(rowsMatrix, len(m))
	for i := range m {
		cp[i] = append([]float64(nil), m[i]...)
	}

	return cp
}
