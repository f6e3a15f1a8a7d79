//go:build darwin && cgo

package blas

/*
#cgo CFLAGS: -DACCELERATE_NEW_LAPACK
#cgo LDFLAGS: -framework Accelerate
#include <Accelerate/Accelerate.h>
*/
import "C"
import "unsafe"

// Dgemm computes C = alpha*A*B + beta*C using Apple Accelerate (AMX).
// All matrices are row-major: A is (m x k), B is (k x n), C is (m x n).
func Dgemm(m, n, k int,
	alpha float64, a []float64, lda int,
	b []float64, ldb int,
	beta float64, c []float64, ldc int) {

	if m == 0 || n == 0 {
		return
	}
	C.cblas_dgemm(C.CblasRowMajor, C.CblasNoTrans, C.CblasNoTrans,
		C.int(m), C.int(n), C.int(k),
		C.double(alpha),
		(*C.double)(unsafe.Pointer(&a[0])), C.int(lda),
		(*C.double)(unsafe.Pointer(&b[0])), C.int(ldb),
		C.double(beta),
		(*C.double)(unsafe.Pointer(&c[0])), C.int(ldc))
}

// Backend names the library serving Dgemm.
func Backend() string { return "accelerate" }

// HasAccelerate returns true when Apple Accelerate framework is available.
func HasAccelerate() bool { return true }
