package kernel

import "github.com/ieee0824/matbench-go/matrix"

// Naive is the triple-loop kernel: O(n^3) scalar multiply-accumulate with
// k ascending for each output element.
type Naive struct{}

func (Naive) Name() string { return "naive" }

func (Naive) Multiply(a, b *matrix.Matrix) (*matrix.Matrix, error) {
	c, err := prepare(a, b)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.N; i++ {
		naiveRow(a, b, c, i)
	}
	return c, nil
}

// naiveRow fills row i of c.
func naiveRow(a, b, c *matrix.Matrix, i int) {
	n := a.N
	aRow := a.Data[i*n : (i+1)*n]
	cRow := c.Data[i*n : (i+1)*n]
	for j := 0; j < n; j++ {
		sum := 0.0
		for k, aik := range aRow {
			sum += aik * b.Data[k*n+j]
		}
		cRow[j] = sum
	}
}
