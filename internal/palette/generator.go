package palette

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/distinct/internal/colour"
)

// Config is a resolved, validated generation request. It is immutable
// once built; construct one with ConfigBuilder.
type Config struct {
	input      Input
	cvd        map[colour.Deficiency]float64
	background *colour.RGB
	metric     colour.Metric
	maxMemory  uint64
}

// ConfigBuilder accumulates generation options and validates them as a
// whole. All validation happens in Build, before any candidate or
// distance work starts.
type ConfigBuilder struct {
	input      Input
	cvd        map[string]float64
	background *colour.RGB
	metricName string
	maxMemory  uint64
}

// NewConfigBuilder returns a builder with the defaults: no CVD
// simulation, no background, the CIEDE2000 metric, the default
// candidate cap.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{}
}

// WithInput sets the candidate source.
func (b *ConfigBuilder) WithInput(in Input) *ConfigBuilder {
	b.input = in
	return b
}

// WithCVD sets the deficiencies to simulate, keyed by name with
// severity values in [0, 1].
func (b *ConfigBuilder) WithCVD(cvd map[string]float64) *ConfigBuilder {
	b.cvd = cvd
	return b
}

// WithBackground sets a colour the palette must stay distinguishable
// from. The background is never itself a candidate.
func (b *ConfigBuilder) WithBackground(c colour.RGB) *ConfigBuilder {
	b.background = &c
	return b
}

// WithMetric sets the difference metric by name. The empty string
// keeps the default, ciede2000.
func (b *ConfigBuilder) WithMetric(name string) *ConfigBuilder {
	b.metricName = name
	return b
}

// WithMaxMemory caps the distance matrix at the given number of bytes.
// Zero keeps the default candidate cap.
func (b *ConfigBuilder) WithMaxMemory(bytes uint64) *ConfigBuilder {
	b.maxMemory = bytes
	return b
}

// Build validates the accumulated options and returns the immutable
// Config.
func (b *ConfigBuilder) Build() (Config, error) {
	if b.input == nil {
		return Config{}, fmt.Errorf("%w: provide a colourspace range, colour list, hex list, palette name, or image", ErrMissingInput)
	}

	metric, err := colour.ParseMetric(b.metricName)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	var cvd map[colour.Deficiency]float64
	if len(b.cvd) > 0 {
		cvd = make(map[colour.Deficiency]float64, len(b.cvd))
		for name, severity := range b.cvd {
			def, err := colour.ParseDeficiency(name)
			if err != nil {
				return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
			}
			if severity < 0 || severity > 1 {
				return Config{}, fmt.Errorf("%w: %s severity %g (want [0, 1])", ErrInvalidParameter, name, severity)
			}
			cvd[def] = severity
		}
	}

	return Config{
		input:      b.input,
		cvd:        cvd,
		background: b.background,
		metric:     metric,
		maxMemory:  b.maxMemory,
	}, nil
}

// Generator runs the selection pipeline for one Config. It holds no
// state across calls; every call resolves candidates, computes
// distances, and selects from scratch.
type Generator struct {
	cfg Config
	log hclog.Logger
}

// NewGenerator creates a Generator for the given Config.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg, log: hclog.NewNullLogger()}
}

// SetLogger installs a logger for stage-level diagnostics.
func (g *Generator) SetLogger(log hclog.Logger) {
	if log != nil {
		g.log = log
	}
}

// Generate selects n colours maximising the minimum pairwise perceived
// difference, honouring the configured background.
func (g *Generator) Generate(n int) ([]colour.RGB, error) {
	return g.run(n, nil)
}

// Extend selects n additional colours for a palette that already
// contains the fixed colours. The fixed colours are treated as present
// for every distance decision but are never altered or re-selected;
// only the new colours are returned, in selection order.
func (g *Generator) Extend(fixed []colour.RGB, n int) ([]colour.RGB, error) {
	if len(fixed) == 0 {
		return nil, fmt.Errorf("%w: extend needs at least one fixed colour", ErrInvalidParameter)
	}
	return g.run(n, fixed)
}

// run drives the pipeline: resolve candidates, apply the memory
// budget, simulate CVD, compute distances, select. Any stage failure
// aborts the call; nothing is retried.
func (g *Generator) run(n int, fixed []colour.RGB) ([]colour.RGB, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: target count %d (want >= 1)", ErrInvalidParameter, n)
	}

	set, err := g.cfg.input.Resolve()
	if err != nil {
		return nil, err
	}
	g.log.Debug("candidates resolved", "origin", set.Origin, "count", len(set.Colours))

	if len(fixed) > 0 {
		set = dropFixed(set, fixed)
		g.log.Debug("fixed colours excluded from candidates", "remaining", len(set.Colours))
	}

	set, err = planBudget(set, g.cfg.maxMemory)
	if err != nil {
		return nil, err
	}
	g.log.Debug("memory budget applied", "effective", len(set.Colours))

	if n > len(set.Colours) {
		return nil, fmt.Errorf("%w: want %d colours from %d candidates", ErrInsufficientCandidates, n, len(set.Colours))
	}

	// Distances are computed between perceived colours: candidates,
	// fixed colours, and the background all pass through the same
	// simulation.
	perceived, err := g.perceive(set.Colours)
	if err != nil {
		return nil, err
	}

	matrix := buildMatrix(perceived, g.cfg.metric)
	g.log.Debug("distance matrix computed", "metric", string(g.cfg.metric), "cells", matrix.Len()*matrix.Len())

	virtual, err := g.virtualNeighbours(perceived, fixed)
	if err != nil {
		return nil, err
	}

	indices, err := greedySelect(matrix, n, virtual)
	if err != nil {
		return nil, err
	}

	out := make([]colour.RGB, len(indices))
	for i, idx := range indices {
		out[i] = set.Colours[idx]
	}
	g.log.Debug("palette selected", "count", len(out))
	return out, nil
}

// perceive applies the configured CVD simulations to each colour. The
// input slice is never mutated. With several deficiencies configured
// the simulations compose in deterministic (sorted) order.
func (g *Generator) perceive(colours []colour.RGB) ([]colour.RGB, error) {
	if len(g.cfg.cvd) == 0 {
		return colours, nil
	}

	out := make([]colour.RGB, len(colours))
	copy(out, colours)
	for _, def := range []colour.Deficiency{colour.Protan, colour.Deutan, colour.Tritan} {
		severity, ok := g.cfg.cvd[def]
		if !ok {
			continue
		}
		for i, c := range out {
			sim, err := colour.Simulate(c, def, severity)
			if err != nil {
				return nil, err
			}
			out[i] = sim
		}
	}
	return out, nil
}

// virtualNeighbours computes each candidate's minimum distance to the
// always-present colours: the configured background and any fixed
// palette members. Returns nil when there are none.
func (g *Generator) virtualNeighbours(perceived []colour.RGB, fixed []colour.RGB) ([]float64, error) {
	refs := make([]colour.RGB, 0, len(fixed)+1)
	if g.cfg.background != nil {
		refs = append(refs, *g.cfg.background)
	}
	refs = append(refs, fixed...)
	if len(refs) == 0 {
		return nil, nil
	}

	virtual := make([]float64, len(perceived))
	for i := range virtual {
		virtual[i] = math.Inf(1)
	}
	for _, ref := range refs {
		pref, err := g.perceive([]colour.RGB{ref})
		if err != nil {
			return nil, err
		}
		for i, d := range distancesTo(perceived, pref[0], g.cfg.metric) {
			if d < virtual[i] {
				virtual[i] = d
			}
		}
	}
	return virtual, nil
}

// dropFixed removes candidates equal to a fixed colour (by canonical
// hex value), so an extension can never re-select a fixed member.
func dropFixed(set CandidateSet, fixed []colour.RGB) CandidateSet {
	taken := make(map[string]bool, len(fixed))
	for _, c := range fixed {
		taken[c.Hex()] = true
	}

	kept := make([]colour.RGB, 0, len(set.Colours))
	for _, c := range set.Colours {
		if !taken[c.Hex()] {
			kept = append(kept, c)
		}
	}
	return CandidateSet{Colours: kept, Origin: set.Origin}
}
