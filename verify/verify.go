// Package verify reduces a product matrix to a single reportable value.
package verify

import (
	"fmt"
	"math"

	"github.com/ieee0824/matbench-go/matrix"
)

// Func reduces c to a scalar.
type Func func(c *matrix.Matrix) float64

// SampleElement returns C[n/2][n/2] with truncating division.
func SampleElement(c *matrix.Matrix) float64 {
	mid := c.N / 2
	return c.At(mid, mid)
}

// FrobeniusNorm returns sqrt(sum |C[i][j]|^2) over all elements.
func FrobeniusNorm(c *matrix.Matrix) float64 {
	sum := 0.0
	for _, v := range c.Data {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Lookup returns the verifier registered under name: "element" or "frobenius".
func Lookup(name string) (Func, error) {
	switch name {
	case "element":
		return SampleElement, nil
	case "frobenius":
		return FrobeniusNorm, nil
	}
	return nil, fmt.Errorf("unknown verifier %q (want element or frobenius)", name)
}

// Label describes what the verifier named name reports for an n x n result,
// e.g. "C[2][2]" or "frobenius norm".
func Label(name string, n int) string {
	if name == "element" {
		return fmt.Sprintf("C[%d][%d]", n/2, n/2)
	}
	return "frobenius norm"
}
