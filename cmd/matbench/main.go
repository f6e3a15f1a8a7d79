package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	matbench "github.com/ieee0824/matbench-go"
	"github.com/ieee0824/matbench-go/kernel"
	"github.com/ieee0824/matbench-go/matrix"
)

const defaultN = 1024

var errArgumentParse = errors.New("dimension argument is not an integer")

func main() {
	kernelName := flag.String("kernel", "naive", fmt.Sprintf("multiplication kernel %v", kernel.Names()))
	genName := flag.String("gen", "progression", "matrix generator: random, bulk or progression")
	verifier := flag.String("verify", "frobenius", "verification value: element or frobenius")
	seedA := flag.Float64("seed-a", matbench.SeedA, "progression seed for A")
	seedB := flag.Float64("seed-b", matbench.SeedB, "progression seed for B")
	block := flag.Int("block", kernel.DefaultBlockSize, "tile edge for the blocked kernel")
	workers := flag.Int("workers", 0, "goroutines for the parallel kernel (0=GOMAXPROCS)")
	check := flag.Bool("check", false, "compare the result against the naive kernel")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: matbench [options] [n]")
		fmt.Fprintf(os.Stderr, "  Multiplies two n x n matrices (default n=%d) and prints a verification value.\n", defaultN)
		fmt.Fprintln(os.Stderr, "  Extra positional arguments are ignored.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	n, err := parseDim(flag.Args())
	if err != nil {
		fail(logger, err)
	}
	if flag.NArg() > 1 {
		logger.Debug().Strs("args", flag.Args()[1:]).Msg("ignoring other parameters")
	}

	modeA, err := matrix.ParseMode(*genName, *seedA)
	if err != nil {
		fail(logger, err)
	}
	modeB, err := matrix.ParseMode(*genName, *seedB)
	if err != nil {
		fail(logger, err)
	}
	strategy, err := newStrategy(*kernelName, *block, *workers)
	if err != nil {
		fail(logger, err)
	}

	rep, err := matbench.Run(n,
		matbench.WithModes(modeA, modeB),
		matbench.WithStrategy(strategy),
		matbench.WithVerifier(*verifier),
		matbench.WithCrossCheck(*check),
		matbench.WithLogger(logger),
	)
	if err != nil {
		fail(logger, err)
	}

	fmt.Print(rep.String())

	logger.Info().
		Str("kernel", rep.Kernel).
		Dur("multiply", rep.MultiplyTime).
		Float64("gflops", rep.GFLOPS()).
		Msg("done")
}

// parseDim reads n from the first positional argument, defaulting to defaultN.
func parseDim(args []string) (int, error) {
	if len(args) == 0 {
		return defaultN, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errArgumentParse, args[0])
	}
	if err := matrix.CheckDimension(n); err != nil {
		return 0, err
	}
	return n, nil
}

// newStrategy looks up name and applies the kernel-specific flags.
func newStrategy(name string, block, workers int) (kernel.Strategy, error) {
	s, err := kernel.Lookup(name)
	if err != nil {
		return nil, err
	}
	switch s.(type) {
	case kernel.Blocked:
		return kernel.Blocked{Size: block}, nil
	case kernel.Parallel:
		return kernel.Parallel{Workers: workers}, nil
	}
	return s, nil
}

func fail(logger zerolog.Logger, err error) {
	logger.Error().Err(err).Msg("matbench failed")
	os.Exit(1)
}
