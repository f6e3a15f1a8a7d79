// Package kernel multiplies square matrices.
//
// Every Strategy computes C[i][j] = sum over k of A[i][k]*B[k][j]. Naive is
// the reference: it accumulates from 0.0 with k ascending. The other
// strategies trade that exact order for speed and agree with Naive to within
// floating-point rounding.
package kernel

import (
	"fmt"
	"sort"

	"github.com/ieee0824/matbench-go/matrix"
)

// Strategy is one way of computing C = A*B.
type Strategy interface {
	Name() string
	Multiply(a, b *matrix.Matrix) (*matrix.Matrix, error)
}

// Multiply computes A*B with the naive kernel.
func Multiply(a, b *matrix.Matrix) (*matrix.Matrix, error) {
	return Naive{}.Multiply(a, b)
}

var registry = map[string]func() Strategy{
	"naive":    func() Strategy { return Naive{} },
	"blocked":  func() Strategy { return Blocked{} },
	"parallel": func() Strategy { return Parallel{} },
	"blas":     func() Strategy { return BLAS{} },
	"gonum":    func() Strategy { return Gonum{} },
}

// Names lists the strategy names accepted by Lookup, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the strategy registered under name with default settings.
func Lookup(name string) (Strategy, error) {
	mk, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown kernel %q (want one of %v)", name, Names())
	}
	return mk(), nil
}

// prepare validates the operands and allocates C.
func prepare(a, b *matrix.Matrix) (*matrix.Matrix, error) {
	if err := matrix.CheckSquarePair(a, b); err != nil {
		return nil, err
	}
	return matrix.New(a.N)
}
