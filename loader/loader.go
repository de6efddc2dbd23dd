// Package loader reads the small text files the visualizers bulk-load.
//
// Two formats are supported:
//
//	values:  whitespace/newline separated integers      "5 3 8\n1 4"
//	triples: one "from to weight" edge per line         "0 1 4"
//
// Malformed tokens, out-of-range tokens and invalid lines are skipped
// silently. Only I/O failures are reported, as ErrFileIO.
package loader

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrFileIO marks a file that could not be opened or read.
	ErrFileIO = errors.New("loader: file unreadable")

	// ErrMalformed marks user input that is not a decimal integer.
	ErrMalformed = errors.New("loader: malformed integer")
)

// Triple is one weighted edge line.
type Triple struct {
	From   int
	To     int
	Weight int
}

// Open opens path for reading, marking failures with ErrFileIO.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "loader: open %q", path), ErrFileIO)
	}

	return f, nil
}

// ReadValues returns every integer token of r in order.
func ReadValues(r io.Reader) ([]int, error) {
	var out []int
	err := eachLine(r, func(line string) {
		for _, tok := range strings.Fields(line) {
			if v, err := strconv.Atoi(tok); err == nil {
				out = append(out, v)
			}
		}
	})
	if err != nil {
		return out, errors.Mark(errors.Wrap(err, "loader: read values"), ErrFileIO)
	}

	return out, nil
}

// eachLine feeds every line of r to fn. Lines have no length cap, so an
// oversized line is parsed (and usually skipped) rather than failing the read.
func eachLine(r io.Reader, fn func(line string)) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			fn(line)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// ReadTriples returns every valid "from to weight" line of r in order.
// A line is valid when it holds exactly three non-negative integers,
// from != to and weight > 0.
func ReadTriples(r io.Reader) ([]Triple, error) {
	var out []Triple
	err := eachLine(r, func(line string) {
		if t, ok := parseTriple(line); ok {
			out = append(out, t)
		}
	})
	if err != nil {
		return out, errors.Mark(errors.Wrap(err, "loader: read triples"), ErrFileIO)
	}

	return out, nil
}

func parseTriple(line string) (Triple, bool) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Triple{}, false
	}
	var nums [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return Triple{}, false
		}
		nums[i] = v
	}
	t := Triple{From: nums[0], To: nums[1], Weight: nums[2]}
	if t.From == t.To || t.Weight <= 0 {
		return Triple{}, false
	}

	return t, true
}

// ParseInt parses one user-typed integer, ignoring surrounding blanks.
func ParseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Mark(errors.Wrapf(err, "loader: parse %q", s), ErrMalformed)
	}

	return v, nil
}
