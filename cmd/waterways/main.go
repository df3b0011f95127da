// Command waterways runs one puzzle level over its numbered input cases and
// writes an output file per case.
//
// Settings come from the environment (or a .env file):
//
//	WATERWAYS_INPUT_DIR   input root             (default "input")
//	WATERWAYS_OUTPUT_DIR  output root            (default "output")
//	WATERWAYS_MODE        route|same|validate|trace (default "route")
//	WATERWAYS_LEVEL       level number           (default 4)
//	WATERWAYS_CASES       comma-separated cases  (default "example,1,2,3,4,5")
//	WATERWAYS_MAX_STEPS   per-query expansion cap, 0 = none
//	LOG_LEVEL             zerolog level          (default "info")
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/waterways/gridgraph"
	"github.com/katalvlaran/waterways/puzzle"
	"github.com/katalvlaran/waterways/search"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	failed := 0
	for _, name := range cfg.Cases {
		if err := runCase(cfg, name, log.Logger); err != nil {
			log.Error().Err(err).Str("case", name).Msg("case failed")
			failed++
		}
	}
	if failed > 0 {
		log.Fatal().Int("failed", failed).Int("cases", len(cfg.Cases)).Msg("level incomplete")
	}
}

// runCase solves one input file and writes its output. Per-query errors are
// logged and leave an empty line; only I/O and parse errors fail the case.
func runCase(cfg Config, name string, logger zerolog.Logger) error {
	in, out := puzzle.CasePaths(cfg.InputDir, cfg.OutputDir, cfg.Level, name)
	clog := logger.With().Str("case", name).Str("mode", string(cfg.Mode)).Logger()

	p, err := puzzle.ReadFile(in)
	if err != nil {
		return err
	}
	clog.Info().
		Str("input", in).
		Int("width", p.Grid.Width).
		Int("height", p.Grid.Height).
		Int("queries", len(p.Queries)).
		Int("islands", len(p.Grid.Islands())).
		Msg("running")

	expanded := 0
	opts := []search.Option{
		search.WithMaxSteps(cfg.MaxSteps),
		search.WithOnExpand(func(gridgraph.Position, int) { expanded++ }),
	}
	results, err := puzzle.Solve(p, cfg.Mode, opts...)
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.Err != nil {
			clog.Warn().Err(r.Err).Int("query", r.Index).Str("line", r.Query).Msg("query failed")
			continue
		}
		clog.Debug().Int("query", r.Index).Str("line", r.Query).Int("bytes", len(r.Output)).Msg("answered")
	}

	if err := puzzle.WriteFile(out, results); err != nil {
		return err
	}
	clog.Info().Str("output", out).Int("expanded", expanded).Msg("done")

	return nil
}
