package matrix

import (
	"errors"
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	m, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	if m.N != 3 || len(m.Data) != 9 {
		t.Fatalf("N=%d len=%d, want 3 and 9", m.N, len(m.Data))
	}
	for i, v := range m.Data {
		if v != 0 {
			t.Errorf("Data[%d] = %f, want 0", i, v)
		}
	}
}

// overflowDims returns dimensions whose n*n element storage cannot be
// addressed: n*n wrapping negative, n*n wrapping to zero on 64-bit, and the
// largest int.
func overflowDims() []int {
	dims := []int{
		int(math.Sqrt(float64(math.MaxInt))) + 1,
		math.MaxInt,
	}
	if wrap := uint64(1) << 32; uint64(math.MaxInt) > wrap {
		dims = append(dims, int(wrap))
	}
	return dims
}

func TestNew_InvalidDimension(t *testing.T) {
	dims := append([]int{0, -1, -100}, overflowDims()...)
	for _, n := range dims {
		if _, err := New(n); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("New(%d) err = %v, want ErrInvalidDimension", n, err)
		}
	}
}

func TestCheckDimension(t *testing.T) {
	for _, n := range []int{1, 2, 1024, 10000} {
		if err := CheckDimension(n); err != nil {
			t.Errorf("CheckDimension(%d) = %v, want nil", n, err)
		}
	}
	for _, n := range overflowDims() {
		if err := CheckDimension(n); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("CheckDimension(%d) err = %v, want ErrInvalidDimension", n, err)
		}
	}
}

func TestValid_OverflowingDimension(t *testing.T) {
	for _, n := range overflowDims() {
		m := &Matrix{N: n}
		if m.Valid() {
			t.Errorf("Matrix{N: %d, Data: nil}.Valid() = true", n)
		}
	}
}

func TestFromRows(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 2, 3, 4}
	for i := range want {
		if m.Data[i] != want[i] {
			t.Errorf("Data[%d] = %f, want %f", i, m.Data[i], want[i])
		}
	}
	if m.At(1, 0) != 3 {
		t.Errorf("At(1,0) = %f, want 3", m.At(1, 0))
	}
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := FromRows([][]float64{{1, 2}, {3}})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("err = %v, want ErrDimensionMismatch", err)
	}
	_, err = FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("non-square err = %v, want ErrDimensionMismatch", err)
	}
}

func TestIdentity(t *testing.T) {
	m, err := Identity(4)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if m.At(i, j) != want {
				t.Errorf("I[%d][%d] = %f, want %f", i, j, m.At(i, j), want)
			}
		}
	}
}

func TestRowSharesStorage(t *testing.T) {
	m, _ := New(3)
	m.Row(1)[2] = 7
	if m.At(1, 2) != 7 {
		t.Errorf("At(1,2) = %f, want 7", m.At(1, 2))
	}
}

func TestCheckSquarePair(t *testing.T) {
	a3, _ := New(3)
	b3, _ := New(3)
	b4, _ := New(4)
	short := &Matrix{N: 3, Data: make([]float64, 8)}

	tests := []struct {
		name string
		a, b *Matrix
		ok   bool
	}{
		{"same", a3, b3, true},
		{"3x3 by 4x4", a3, b4, false},
		{"nil A", nil, b3, false},
		{"nil B", a3, nil, false},
		{"short backing", short, b3, false},
	}
	for _, tt := range tests {
		err := CheckSquarePair(tt.a, tt.b)
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("%s: err = %v, want ErrDimensionMismatch", tt.name, err)
		}
	}
}

func TestEqual(t *testing.T) {
	a, _ := FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := FromRows([][]float64{{1, 2}, {3, 4 + 1e-12}})
	c, _ := New(3)
	if !Equal(a, b, 1e-9) {
		t.Error("Equal within tolerance = false, want true")
	}
	if Equal(a, b, 0) {
		t.Error("Equal with zero tolerance = true, want false")
	}
	if Equal(a, c, 1) {
		t.Error("Equal across dimensions = true, want false")
	}
}
