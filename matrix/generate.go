package matrix

import (
	"errors"
	"fmt"
	"math/rand"
)

// RandomSeed seeds the pseudo-random source for the random fill modes.
const RandomSeed = 101

// Mode selects how Generate fills a matrix.
type Mode interface {
	Name() string
	fill(m *Matrix) error
}

type randomSeeded struct{}

// RandomSeeded draws n*n uniform [0,1) values from a source seeded with
// RandomSeed, one element at a time with the column index in the outer loop
// and the row index in the inner loop. The result is the transpose of the
// RandomBulk matrix of the same n.
func RandomSeeded() Mode { return randomSeeded{} }

func (randomSeeded) Name() string { return "random" }

func (randomSeeded) fill(m *Matrix) error {
	rng := rand.New(rand.NewSource(RandomSeed))
	for col := 0; col < m.N; col++ {
		for row := 0; row < m.N; row++ {
			m.Set(row, col, rng.Float64())
		}
	}
	return nil
}

type randomBulk struct{}

// RandomBulk fills the flat backing slice in a single pass, in row-major
// order, from a source seeded with RandomSeed.
func RandomBulk() Mode { return randomBulk{} }

func (randomBulk) Name() string { return "bulk" }

func (randomBulk) fill(m *Matrix) error {
	rng := rand.New(rand.NewSource(RandomSeed))
	for i := range m.Data {
		m.Data[i] = rng.Float64()
	}
	return nil
}

// Progression fills a matrix with -Seed + i*step for flattened row-major
// index i, where step = 0.95*(2*Seed)/(n*n-1). The values are pure
// arithmetic and reproduce bit for bit.
type Progression struct {
	Seed float64
}

// ArithmeticProgression returns a Progression mode for seed.
func ArithmeticProgression(seed float64) Mode { return Progression{Seed: seed} }

func (p Progression) Name() string { return "progression" }

// Step returns the increment between consecutive elements of an n x n fill.
func (p Progression) Step(n int) (float64, error) {
	if n <= 1 {
		return 0, fmt.Errorf("%w: n=%d, arithmetic progression needs n > 1", ErrInvalidDimension, n)
	}
	return 0.95 * (2 * p.Seed) / float64(n*n-1), nil
}

func (p Progression) fill(m *Matrix) error {
	step, err := p.Step(m.N)
	if err != nil {
		return err
	}
	i := 0
	for row := 0; row < m.N; row++ {
		for col := 0; col < m.N; col++ {
			// float64() rounds the product so it is never fused into an FMA.
			m.Set(row, col, -p.Seed+float64(float64(i)*step))
			i++
		}
	}
	return nil
}

// MinDimension returns the smallest n that mode accepts.
func MinDimension(mode Mode) int {
	if _, ok := mode.(Progression); ok {
		return 2
	}
	return 1
}

// Generate creates an n x n matrix filled according to mode.
func Generate(n int, mode Mode) (*Matrix, error) {
	if mode == nil {
		return nil, errors.New("generate: nil mode")
	}
	if lo := MinDimension(mode); n < lo {
		return nil, fmt.Errorf("generate %s: %w: n=%d, must be at least %d", mode.Name(), ErrInvalidDimension, n, lo)
	}
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	if err := mode.fill(m); err != nil {
		return nil, fmt.Errorf("generate %s: %w", mode.Name(), err)
	}
	return m, nil
}

// ParseMode maps a CLI name to a Mode. seed is used only by "progression".
func ParseMode(name string, seed float64) (Mode, error) {
	switch name {
	case "random":
		return RandomSeeded(), nil
	case "bulk":
		return RandomBulk(), nil
	case "progression":
		return ArithmeticProgression(seed), nil
	}
	return nil, fmt.Errorf("unknown generator %q (want random, bulk or progression)", name)
}
