package jam

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// LoadFile reads a puzzle definition from path.
func LoadFile(path string) (State, error) {
	f, err := os.Open(path)
	if err != nil {
		return State{}, fmt.Errorf("jam: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load reads a puzzle definition: a "rows cols numCars" header followed by
// numCars lines of "id startRow startCol endRow endCol". Blank lines are
// ignored. Syntax problems are reported as *InputError wrapping
// ErrMalformedInput; structural problems come from New.
func Load(r io.Reader) (State, error) {
	sc := bufio.NewScanner(r)
	line := 0
	next := func() ([]string, bool) {
		for sc.Scan() {
			line++
			if fields := strings.Fields(sc.Text()); len(fields) > 0 {
				return fields, true
			}
		}
		return nil, false
	}

	header, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return State{}, fmt.Errorf("jam: read: %w", err)
		}
		return State{}, &InputError{Line: line, Err: fmt.Errorf("%w: missing header", ErrMalformedInput)}
	}
	dims, err := ints(header, 3)
	if err != nil {
		return State{}, &InputError{Line: line, Err: fmt.Errorf("header: %w", err)}
	}
	rows, cols, numCars := dims[0], dims[1], dims[2]
	if numCars < 0 {
		return State{}, &InputError{Line: line, Err: fmt.Errorf("%w: negative car count %d", ErrMalformedInput, numCars)}
	}
	if err := checkSize(rows, cols); err != nil {
		return State{}, &InputError{Line: line, Err: err}
	}

	cars := make([]Car, 0, min(numCars, 64))
	for len(cars) < numCars {
		fields, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return State{}, fmt.Errorf("jam: read: %w", err)
			}
			return State{}, &InputError{Line: line, Err: fmt.Errorf("%w: expected %d cars, found %d",
				ErrMalformedInput, numCars, len(cars))}
		}
		car, err := parseCar(fields)
		if err != nil {
			return State{}, &InputError{Line: line, Err: err}
		}
		cars = append(cars, car)
	}
	if _, extra := next(); extra {
		return State{}, &InputError{Line: line, Err: fmt.Errorf("%w: more than %d cars", ErrMalformedInput, numCars)}
	}
	if err := sc.Err(); err != nil {
		return State{}, fmt.Errorf("jam: read: %w", err)
	}

	return New(rows, cols, cars)
}

func parseCar(fields []string) (Car, error) {
	if len(fields) != 5 {
		return Car{}, fmt.Errorf("%w: car line needs 5 fields, got %d", ErrMalformedInput, len(fields))
	}
	id, size := utf8.DecodeRuneInString(fields[0])
	if size != len(fields[0]) || id == utf8.RuneError {
		return Car{}, fmt.Errorf("%w: car id %q must be a single character", ErrMalformedInput, fields[0])
	}
	n, err := ints(fields[1:], 4)
	if err != nil {
		return Car{}, err
	}
	return Car{ID: id, StartRow: n[0], StartCol: n[1], EndRow: n[2], EndCol: n[3]}, nil
}

func ints(fields []string, want int) ([]int, error) {
	if len(fields) != want {
		return nil, fmt.Errorf("%w: want %d numbers, got %d", ErrMalformedInput, want, len(fields))
	}
	out := make([]int, want)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, f)
		}
		out[i] = v
	}
	return out, nil
}
