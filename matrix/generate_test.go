package matrix

import (
	"errors"
	"math/rand"
	"testing"
)

func TestGenerate_ProgressionClosedForm(t *testing.T) {
	cases := []struct {
		n    int
		seed float64
	}{
		{4, 20.0},
		{4, 5.0},
		{2, 20.0},
		{7, 1.5},
		{16, 5.0},
	}
	for _, c := range cases {
		m, err := Generate(c.n, ArithmeticProgression(c.seed))
		if err != nil {
			t.Fatalf("n=%d seed=%g: %v", c.n, c.seed, err)
		}
		step := 0.95 * 2 * c.seed / float64(c.n*c.n-1)
		for row := 0; row < c.n; row++ {
			for col := 0; col < c.n; col++ {
				want := -c.seed + float64(float64(row*c.n+col)*step)
				if got := m.At(row, col); got != want {
					t.Errorf("n=%d seed=%g A[%d][%d] = %v, want %v", c.n, c.seed, row, col, got, want)
				}
			}
		}
	}
}

func TestGenerate_ProgressionEndpoints(t *testing.T) {
	m, err := Generate(4, ArithmeticProgression(20))
	if err != nil {
		t.Fatal(err)
	}
	if m.At(0, 0) != -20 {
		t.Errorf("first = %v, want -20", m.At(0, 0))
	}
	// last = -seed + 0.95*2*seed = 0.9*seed
	last := m.At(3, 3)
	if d := last - 18; d < -1e-12 || d > 1e-12 {
		t.Errorf("last = %v, want 18", last)
	}
	for i := 1; i < len(m.Data); i++ {
		if m.Data[i] <= m.Data[i-1] {
			t.Fatalf("Data[%d]=%v not above Data[%d]=%v", i, m.Data[i], i-1, m.Data[i-1])
		}
	}
}

func TestProgressionStep(t *testing.T) {
	p := Progression{Seed: 20}
	got, err := p.Step(4)
	if err != nil {
		t.Fatal(err)
	}
	seed := 20.0
	if want := 0.95 * (2 * seed) / 15; got != want {
		t.Errorf("Step(4) = %v, want %v", got, want)
	}
	if _, err := p.Step(1); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("Step(1) err = %v, want ErrInvalidDimension", err)
	}
}

func TestGenerate_InvalidDimension(t *testing.T) {
	type dimCase struct {
		n    int
		mode Mode
	}
	tests := []dimCase{
		{1, ArithmeticProgression(20)},
		{0, ArithmeticProgression(20)},
		{-3, ArithmeticProgression(20)},
		{0, RandomSeeded()},
		{-1, RandomSeeded()},
		{0, RandomBulk()},
	}
	for _, n := range overflowDims() {
		tests = append(tests, dimCase{n, ArithmeticProgression(20)}, dimCase{n, RandomBulk()})
	}
	for _, tt := range tests {
		if _, err := Generate(tt.n, tt.mode); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("Generate(%d, %s) err = %v, want ErrInvalidDimension", tt.n, tt.mode.Name(), err)
		}
	}
}

func TestGenerate_RandomSingleElement(t *testing.T) {
	m, err := Generate(1, RandomSeeded())
	if err != nil {
		t.Fatalf("n=1 random: %v", err)
	}
	if v := m.At(0, 0); v < 0 || v >= 1 {
		t.Errorf("value %v outside [0,1)", v)
	}
}

func TestGenerate_RandomReproducible(t *testing.T) {
	for _, mode := range []Mode{RandomSeeded(), RandomBulk()} {
		a, err := Generate(8, mode)
		if err != nil {
			t.Fatal(err)
		}
		b, err := Generate(8, mode)
		if err != nil {
			t.Fatal(err)
		}
		for i := range a.Data {
			if a.Data[i] != b.Data[i] {
				t.Fatalf("%s: Data[%d] differs across runs: %v vs %v", mode.Name(), i, a.Data[i], b.Data[i])
			}
			if a.Data[i] < 0 || a.Data[i] >= 1 {
				t.Errorf("%s: Data[%d] = %v outside [0,1)", mode.Name(), i, a.Data[i])
			}
		}
	}
}

func TestGenerate_RandomIsBulkTransposed(t *testing.T) {
	n := 7
	seeded, err := Generate(n, RandomSeeded())
	if err != nil {
		t.Fatal(err)
	}
	bulk, err := Generate(n, RandomBulk())
	if err != nil {
		t.Fatal(err)
	}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if seeded.At(row, col) != bulk.At(col, row) {
				t.Fatalf("random[%d][%d] = %v, bulk[%d][%d] = %v", row, col, seeded.At(row, col), col, row, bulk.At(col, row))
			}
		}
	}
	if Equal(seeded, bulk, 0) {
		t.Error("random and bulk fills are identical, want distinct orderings")
	}
}

func TestGenerate_BulkRowMajorDraws(t *testing.T) {
	m, err := Generate(3, RandomBulk())
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(RandomSeed))
	for i, got := range m.Data {
		if want := rng.Float64(); got != want {
			t.Errorf("Data[%d] = %v, want draw %d = %v", i, got, i, want)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, name := range []string{"random", "bulk", "progression"} {
		m, err := ParseMode(name, 3)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", name, err)
		}
		if m.Name() != name {
			t.Errorf("Name() = %q, want %q", m.Name(), name)
		}
	}
	if p, _ := ParseMode("progression", 3); p.(Progression).Seed != 3 {
		t.Errorf("progression seed = %v, want 3", p.(Progression).Seed)
	}
	if _, err := ParseMode("gaussian", 0); err == nil {
		t.Error("ParseMode(gaussian) err = nil, want error")
	}
}

func BenchmarkGenerate_Progression_512(b *testing.B) {
	mode := ArithmeticProgression(20)
	for i := 0; i < b.N; i++ {
		Generate(512, mode)
	}
}
