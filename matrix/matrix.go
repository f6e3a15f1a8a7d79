package matrix

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDimension is returned when a matrix dimension is out of range.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrDimensionMismatch is returned when two operands are not both n x n for the same n.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// Matrix is a square n x n float64 matrix stored row-major in Data.
type Matrix struct {
	N    int
	Data []float64
}

// float64Size is the byte width of one element.
const float64Size = 8

// CheckDimension returns ErrInvalidDimension unless n is positive and the
// byte size of n*n float64 elements fits in an int.
func CheckDimension(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: n=%d, must be positive", ErrInvalidDimension, n)
	}
	if n > math.MaxInt/float64Size/n {
		return fmt.Errorf("%w: n=%d, n*n elements overflow addressable memory", ErrInvalidDimension, n)
	}
	return nil
}

// New creates an n x n matrix initialized to zero.
func New(n int) (*Matrix, error) {
	if err := CheckDimension(n); err != nil {
		return nil, err
	}
	return &Matrix{N: n, Data: make([]float64, n*n)}, nil
}

// FromRows builds a matrix from a slice of equal-length rows.
// The row count must equal every row length.
func FromRows(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), n)
		}
		copy(m.Row(i), row)
	}
	return m, nil
}

// Identity returns the n x n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.Data[i*n+i] = 1
	}
	return m, nil
}

// At returns the element at (row, col).
func (m *Matrix) At(row, col int) float64 {
	return m.Data[row*m.N+col]
}

// Set stores v at (row, col).
func (m *Matrix) Set(row, col int, v float64) {
	m.Data[row*m.N+col] = v
}

// Row returns row i as a slice sharing the backing storage.
func (m *Matrix) Row(i int) []float64 {
	return m.Data[i*m.N : (i+1)*m.N]
}

// Valid reports whether m is non-nil, has an in-range N and N*N backing elements.
func (m *Matrix) Valid() bool {
	return m != nil && CheckDimension(m.N) == nil && len(m.Data) == m.N*m.N
}

// Equal reports whether a and b have the same dimension and every pair of
// elements differs by at most tol.
func Equal(a, b *Matrix, tol float64) bool {
	if !a.Valid() || !b.Valid() || a.N != b.N {
		return false
	}
	for i, v := range a.Data {
		d := v - b.Data[i]
		if d < -tol || d > tol {
			return false
		}
	}
	return true
}

// CheckSquarePair returns ErrDimensionMismatch unless a and b are both valid
// n x n matrices with the same n.
func CheckSquarePair(a, b *Matrix) error {
	switch {
	case a == nil || b == nil:
		return fmt.Errorf("%w: nil operand", ErrDimensionMismatch)
	case !a.Valid():
		return fmt.Errorf("%w: A has %d elements for n=%d", ErrDimensionMismatch, len(a.Data), a.N)
	case !b.Valid():
		return fmt.Errorf("%w: B has %d elements for n=%d", ErrDimensionMismatch, len(b.Data), b.N)
	case a.N != b.N:
		return fmt.Errorf("%w: A is %dx%d, B is %dx%d", ErrDimensionMismatch, a.N, a.N, b.N, b.N)
	}
	return nil
}
