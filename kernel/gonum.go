package kernel

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ieee0824/matbench-go/matrix"
)

// Gonum multiplies through gonum's mat.Dense.
type Gonum struct{}

func (Gonum) Name() string { return "gonum" }

func (Gonum) Multiply(a, b *matrix.Matrix) (*matrix.Matrix, error) {
	c, err := prepare(a, b)
	if err != nil {
		return nil, err
	}
	n := a.N
	// mat.NewDense wraps the slices without copying; C is written in place.
	dst := mat.NewDense(n, n, c.Data)
	dst.Mul(mat.NewDense(n, n, a.Data), mat.NewDense(n, n, b.Data))
	return c, nil
}
