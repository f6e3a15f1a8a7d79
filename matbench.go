package matbench

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ieee0824/matbench-go/internal/mathutil"
	"github.com/ieee0824/matbench-go/kernel"
	"github.com/ieee0824/matbench-go/matrix"
	"github.com/ieee0824/matbench-go/verify"
)

// Seeds used for A and B under the arithmetic-progression generator.
const (
	SeedA = 20.0
	SeedB = 5.0
)

// ErrCrossCheck is returned when a kernel disagrees with the naive kernel.
var ErrCrossCheck = errors.New("cross-check failed")

// Report is the outcome of one Run.
type Report struct {
	N         int
	Generator string
	Kernel    string
	Verifier  string
	Label     string  // what Value is, e.g. "C[512][512]"
	Value     float64 // verification scalar
	MaxRelErr float64 // vs naive; set only when cross-checking

	GenerateTime time.Duration
	MultiplyTime time.Duration
	VerifyTime   time.Duration
}

// GFLOPS returns the multiply rate counting 2n^3 floating-point operations.
func (r *Report) GFLOPS() float64 {
	secs := r.MultiplyTime.Seconds()
	if secs == 0 {
		return 0
	}
	n := float64(r.N)
	return 2 * n * n * n / secs / 1e9
}

// String renders the dimension and verification value in the style of the
// original benchmark scripts.
func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "matmul for array of dimension %d\n", r.N)
	if r.Verifier == "frobenius" {
		fmt.Fprintf(&sb, "C has Frobenius norm: %g\n", r.Value)
	} else {
		fmt.Fprintf(&sb, "%s=%g\n", r.Label, r.Value)
	}
	return sb.String()
}

// config holds the settings Run applies.
type config struct {
	modeA, modeB matrix.Mode
	strategy     kernel.Strategy
	verifierName string
	logger       zerolog.Logger
	crossCheck   bool
}

// Option configures Run.
type Option func(*config)

// WithMode fills both A and B with mode. For the arithmetic progression the
// same seed is then used for both; see WithModes for distinct seeds.
func WithMode(mode matrix.Mode) Option {
	return func(c *config) {
		c.modeA, c.modeB = mode, mode
	}
}

// WithModes sets the generators for A and B separately.
func WithModes(a, b matrix.Mode) Option {
	return func(c *config) {
		c.modeA, c.modeB = a, b
	}
}

// WithStrategy selects the multiplication kernel.
func WithStrategy(s kernel.Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}

// WithVerifier selects the reduction by name: "element" or "frobenius".
func WithVerifier(name string) Option {
	return func(c *config) {
		c.verifierName = name
	}
}

// WithLogger sets the logger for phase timings.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithCrossCheck re-runs the naive kernel and fails the run when the chosen
// kernel deviates by more than the mode's tolerance.
func WithCrossCheck(enabled bool) Option {
	return func(c *config) {
		c.crossCheck = enabled
	}
}

func defaultConfig() config {
	return config{
		modeA:        matrix.ArithmeticProgression(SeedA),
		modeB:        matrix.ArithmeticProgression(SeedB),
		strategy:     kernel.Naive{},
		verifierName: "frobenius",
		logger:       zerolog.Nop(),
	}
}

// Run generates A and B, multiplies them and reduces C to a single value.
// Any failure aborts the run; no partial report is returned.
func Run(n int, opts ...Option) (*Report, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.modeA == nil || cfg.modeB == nil {
		return nil, errors.New("no generator mode")
	}
	if cfg.strategy == nil {
		return nil, errors.New("no kernel strategy")
	}
	verifier, err := verify.Lookup(cfg.verifierName)
	if err != nil {
		return nil, err
	}
	generator := cfg.modeA.Name()
	if b := cfg.modeB.Name(); b != generator {
		generator += "/" + b
	}
	lo := max(matrix.MinDimension(cfg.modeA), matrix.MinDimension(cfg.modeB))
	if n < lo {
		return nil, fmt.Errorf("%w: n=%d, %s generator needs n >= %d", matrix.ErrInvalidDimension, n, generator, lo)
	}

	log := cfg.logger.With().Int("n", n).Str("kernel", cfg.strategy.Name()).Logger()
	rep := &Report{
		N:         n,
		Generator: generator,
		Kernel:    cfg.strategy.Name(),
		Verifier:  cfg.verifierName,
		Label:     verify.Label(cfg.verifierName, n),
	}

	start := time.Now()
	a, err := matrix.Generate(n, cfg.modeA)
	if err != nil {
		return nil, fmt.Errorf("generate A: %w", err)
	}
	b, err := matrix.Generate(n, cfg.modeB)
	if err != nil {
		return nil, fmt.Errorf("generate B: %w", err)
	}
	rep.GenerateTime = time.Since(start)
	log.Debug().Str("generator", rep.Generator).Dur("elapsed", rep.GenerateTime).Msg("init complete")

	start = time.Now()
	c, err := cfg.strategy.Multiply(a, b)
	if err != nil {
		return nil, fmt.Errorf("multiply: %w", err)
	}
	rep.MultiplyTime = time.Since(start)
	log.Debug().Dur("elapsed", rep.MultiplyTime).Float64("gflops", rep.GFLOPS()).Msg("multiply complete")

	if cfg.crossCheck {
		if err := crossCheck(rep, cfg, a, b, c); err != nil {
			return nil, err
		}
		log.Debug().Float64("max_rel_err", rep.MaxRelErr).Msg("cross-check passed")
	}

	start = time.Now()
	rep.Value = verifier(c)
	rep.VerifyTime = time.Since(start)
	log.Debug().Str("verifier", rep.Verifier).Float64("value", rep.Value).Dur("elapsed", rep.VerifyTime).Msg("verify complete")

	return rep, nil
}

// crossCheck compares c against the naive product of a and b.
func crossCheck(rep *Report, cfg config, a, b, c *matrix.Matrix) error {
	want, err := kernel.Multiply(a, b)
	if err != nil {
		return fmt.Errorf("naive reference: %w", err)
	}
	tol := 1e-6
	_, exactA := cfg.modeA.(matrix.Progression)
	_, exactB := cfg.modeB.(matrix.Progression)
	if exactA && exactB {
		tol = 1e-9
	}
	rep.MaxRelErr = mathutil.MaxRelErr(c.Data, want.Data)
	if !(rep.MaxRelErr <= tol) {
		return fmt.Errorf("%w: %s max relative error %g exceeds %g", ErrCrossCheck, cfg.strategy.Name(), rep.MaxRelErr, tol)
	}
	return nil
}
