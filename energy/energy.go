// Package energy integrates a GPU power log into energy with the trapezium
// rule.
//
// Each log line is
//
//	YYYY/MM/DD hh:mm:ss.sss <watts> [ignored fields...]
//
// as produced by nvidia-smi's timestamp,power.draw query once commas are
// stripped. A leading header line that does not parse is skipped.
package energy

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrNoSamples is returned when the log holds fewer than one sample.
	ErrNoSamples = errors.New("no power samples")
	// ErrMalformed is returned for a data line that does not parse.
	ErrMalformed = errors.New("malformed sample")
)

// Sample is one power reading.
type Sample struct {
	Date    string  // YYYY/MM/DD
	Seconds float64 // seconds since midnight
	Watts   float64
}

// Result is the integral over a log.
type Result struct {
	Pairs   int     // trapezia summed
	Seconds float64 // time spanned
	Joules  float64
}

// ParseSample parses a single log line.
func ParseSample(line string) (Sample, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Sample{}, fmt.Errorf("%w: want date, time and power in %q", ErrMalformed, line)
	}
	secs, err := parseClock(fields[1])
	if err != nil {
		return Sample{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	watts, err := strconv.ParseFloat(strings.TrimSuffix(fields[2], "W"), 64)
	if err != nil {
		return Sample{}, fmt.Errorf("%w: power %q: %v", ErrMalformed, fields[2], err)
	}
	return Sample{Date: fields[0], Seconds: secs, Watts: watts}, nil
}

// parseClock converts hh:mm:ss.sss to seconds since midnight.
func parseClock(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("time %q: want hh:mm:ss", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("hour %q: %w", parts[0], err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("minute %q: %w", parts[1], err)
	}
	sec, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, fmt.Errorf("second %q: %w", parts[2], err)
	}
	return float64(h)*3600 + float64(m)*60 + sec, nil
}

// Integrate reads samples from r and sums the trapezium between each
// consecutive pair. The log must stay within one date and time must not go
// backwards.
func Integrate(r io.Reader) (*Result, error) {
	scanner := bufio.NewScanner(r)
	var (
		res     Result
		prev    Sample
		started bool
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		s, err := ParseSample(line)
		if err != nil {
			if !started && lineNo == 1 {
				continue // header
			}
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if !started {
			prev, started = s, true
			continue
		}
		if s.Date != prev.Date {
			return nil, fmt.Errorf("line %d: date changed from %s to %s", lineNo, prev.Date, s.Date)
		}
		dt := s.Seconds - prev.Seconds
		if dt < 0 {
			return nil, fmt.Errorf("line %d: time went backwards by %gs", lineNo, -dt)
		}
		res.Joules += dt * 0.5 * (prev.Watts + s.Watts)
		res.Seconds += dt
		res.Pairs++
		prev = s
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read power log: %w", err)
	}
	if !started {
		return nil, ErrNoSamples
	}
	return &res, nil
}

// MeanWatts returns the average power over the integrated span.
func (r *Result) MeanWatts() float64 {
	if r.Seconds == 0 {
		return 0
	}
	return r.Joules / r.Seconds
}
