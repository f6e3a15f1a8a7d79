package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ieee0824/matbench-go/energy"
)

func main() {
	verbose := flag.Bool("v", false, "verbose output")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: gpuenergy [options] POWER_LOG")
		fmt.Fprintln(os.Stderr, "  Integrates a GPU power log (date time watts per line) into joules.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	f, err := os.Open(path)
	if err != nil {
		logger.Error().Err(err).Msg("open power log")
		os.Exit(1)
	}
	defer f.Close()

	res, err := energy.Integrate(f)
	if err != nil {
		logger.Error().Err(err).Str("file", path).Msg("integrate power log")
		os.Exit(1)
	}
	logger.Debug().Float64("seconds", res.Seconds).Float64("mean_watts", res.MeanWatts()).Msg("integrated")

	fmt.Printf("Read %d pairs of points.\nTotal energy = %f Joules\n", res.Pairs, res.Joules)
}
