package kernel

import "github.com/ieee0824/matbench-go/matrix"

// DefaultBlockSize keeps three 64x64 float64 tiles (96KB) within a typical L2.
const DefaultBlockSize = 64

// Blocked tiles the i, j and k loops. Within a tile it broadcasts A[i][k]
// and streams a row of B, so each C element still receives its products in
// ascending k.
type Blocked struct {
	Size int // tile edge; <= 0 selects DefaultBlockSize
}

func (Blocked) Name() string { return "blocked" }

func (s Blocked) Multiply(a, b *matrix.Matrix) (*matrix.Matrix, error) {
	c, err := prepare(a, b)
	if err != nil {
		return nil, err
	}
	bs := s.Size
	if bs <= 0 {
		bs = DefaultBlockSize
	}
	n := a.N
	for i0 := 0; i0 < n; i0 += bs {
		iEnd := min(i0+bs, n)
		for j0 := 0; j0 < n; j0 += bs {
			jEnd := min(j0+bs, n)
			for k0 := 0; k0 < n; k0 += bs {
				kEnd := min(k0+bs, n)
				for i := i0; i < iEnd; i++ {
					cRow := c.Data[i*n+j0 : i*n+jEnd]
					for k := k0; k < kEnd; k++ {
						aik := a.Data[i*n+k]
						bRow := b.Data[k*n+j0 : k*n+jEnd]
						for j, bkj := range bRow {
							cRow[j] += aik * bkj
						}
					}
				}
			}
		}
	}
	return c, nil
}
