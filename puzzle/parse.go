package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/waterways/gridgraph"
)

// Parse reads a level input from r.
func Parse(r io.Reader) (*Puzzle, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), " \t\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("puzzle: read: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	n, err := count(lines, 0, "map size")
	if err != nil {
		return nil, err
	}
	if len(lines) < n+2 {
		return nil, fmt.Errorf("%w: want %d map rows and a query count, have %d lines", ErrMalformed, n, len(lines)-1)
	}
	g, err := gridgraph.FromStrings(lines[1 : n+1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	q, err := count(lines, n+1, "query count")
	if err != nil {
		return nil, err
	}
	queries := lines[n+2:]
	if len(queries) != q {
		return nil, fmt.Errorf("%w: query count %d, found %d query lines", ErrMalformed, q, len(queries))
	}

	return &Puzzle{Grid: g, Queries: queries}, nil
}

// ReadFile parses the level input at path.
func ReadFile(path string) (*Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// count parses a non-negative integer header at lines[i].
func count(lines []string, i int, what string) (int, error) {
	if i >= len(lines) {
		return 0, fmt.Errorf("%w: missing %s", ErrMalformed, what)
	}
	v, err := strconv.Atoi(strings.TrimSpace(lines[i]))
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: bad %s %q on line %d", ErrMalformed, what, lines[i], i+1)
	}

	return v, nil
}

// positions parses whitespace-separated "x,y" tokens.
func positions(line string) ([]gridgraph.Position, error) {
	fields := strings.Fields(line)
	out := make([]gridgraph.Position, 0, len(fields))
	for _, f := range fields {
		p, err := gridgraph.ParsePosition(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadQuery, err)
		}
		out = append(out, p)
	}

	return out, nil
}
