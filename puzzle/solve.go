package puzzle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/waterways/geometry"
	"github.com/katalvlaran/waterways/gridgraph"
	"github.com/katalvlaran/waterways/search"
)

// Solve answers every query of p under mode. The returned error covers
// whole-batch failures only (unknown mode); per-query failures are
// recorded in Result.Err.
func Solve(p *Puzzle, mode Mode, opts ...search.Option) ([]Result, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	results := make([]Result, len(p.Queries))
	for i, q := range p.Queries {
		out, err := Answer(p.Grid, mode, q, opts...)
		results[i] = Result{Index: i, Query: q, Output: out, Err: err}
	}

	return results, nil
}

// Answer renders the result of a single query line.
func Answer(g *gridgraph.Grid, mode Mode, query string, opts ...search.Option) (string, error) {
	ps, err := positions(query)
	if err != nil {
		return "", err
	}

	switch mode {
	case ModeRoute:
		if len(ps) != 2 {
			return "", fmt.Errorf("%w: route wants 2 positions, got %d", ErrBadQuery, len(ps))
		}
		path, err := search.FindRoute(g, ps[0], ps[1], opts...)
		if err != nil {
			return "", err
		}
		return path.String(), nil

	case ModeSame:
		if len(ps) != 2 {
			return "", fmt.Errorf("%w: same wants 2 positions, got %d", ErrBadQuery, len(ps))
		}
		same, err := search.SameComponent(g, ps[0], ps[1], opts...)
		if err != nil {
			return "", err
		}
		if same {
			return Same, nil
		}
		return Different, nil

	case ModeValidate:
		if len(ps) == 0 {
			return "", fmt.Errorf("%w: validate wants a path", ErrBadQuery)
		}
		for _, pos := range ps {
			if !g.InBounds(pos) {
				return "", fmt.Errorf("%w: %s", gridgraph.ErrOutOfBounds, pos)
			}
		}
		return geometry.Validity(ps), nil

	case ModeTrace:
		if len(ps) != 1 {
			return "", fmt.Errorf("%w: trace wants 1 position, got %d", ErrBadQuery, len(ps))
		}
		ring, err := search.TraceBoundary(g, ps[0], opts...)
		if err != nil {
			return "", err
		}
		return search.Path(ring).String(), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

// WriteOutput writes one line per result, joined by newlines.
func WriteOutput(w io.Writer, results []Result) error {
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = r.Output
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))

	return err
}

// WriteFile writes results to path, creating parent directories.
func WriteFile(path string, results []Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteOutput(f, results); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// CasePaths returns the input and output file paths of one numbered case,
// laid out as <dir>/level<L>/level<L>_<name>.in|.out.
func CasePaths(inDir, outDir string, level int, name string) (in, out string) {
	base := fmt.Sprintf("level%d_%s", level, name)
	sub := fmt.Sprintf("level%d", level)

	return filepath.Join(inDir, sub, base+".in"), filepath.Join(outDir, sub, base+".out")
}
