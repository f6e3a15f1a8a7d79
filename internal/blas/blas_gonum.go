//go:build !darwin || !cgo

package blas

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/gonum"
)

func init() {
	blas64.Use(gonum.Implementation{})
}

// Dgemm computes C = alpha*A*B + beta*C with gonum's native Go BLAS.
// All matrices are row-major: A is (m x k), B is (k x n), C is (m x n).
func Dgemm(m, n, k int,
	alpha float64, a []float64, lda int,
	b []float64, ldb int,
	beta float64, c []float64, ldc int) {

	if m == 0 || n == 0 {
		return
	}
	blas64.Gemm(blas.NoTrans, blas.NoTrans, alpha,
		blas64.General{Rows: m, Cols: k, Stride: lda, Data: a},
		blas64.General{Rows: k, Cols: n, Stride: ldb, Data: b},
		beta,
		blas64.General{Rows: m, Cols: n, Stride: ldc, Data: c})
}

// Backend names the library serving Dgemm.
func Backend() string { return "gonum" }

// HasAccelerate returns false when Accelerate is not linked.
func HasAccelerate() bool { return false }
