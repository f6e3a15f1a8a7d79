package kernel

import (
	"github.com/ieee0824/matbench-go/internal/blas"
	"github.com/ieee0824/matbench-go/matrix"
)

// BLAS delegates to Dgemm: Apple Accelerate when built on darwin with cgo,
// gonum's native BLAS otherwise.
type BLAS struct{}

func (BLAS) Name() string { return "blas" }

// Backend names the library behind Dgemm in this build.
func (BLAS) Backend() string { return blas.Backend() }

func (BLAS) Multiply(a, b *matrix.Matrix) (*matrix.Matrix, error) {
	c, err := prepare(a, b)
	if err != nil {
		return nil, err
	}
	n := a.N
	blas.Dgemm(n, n, n, 1.0, a.Data, n, b.Data, n, 0.0, c.Data, n)
	return c, nil
}
