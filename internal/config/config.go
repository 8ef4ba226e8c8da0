// Package config loads palette generation jobs from YAML files, so a
// generation can be kept in a file and reproduced exactly.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Job describes one generation request. Every field is optional in the
// file; command-line flags override whatever the file sets.
type Job struct {
	N           *int               `yaml:"n"`
	Colours     []string           `yaml:"colours"`
	HueRange    []float64          `yaml:"hue_range"`
	ChromaRange []float64          `yaml:"chroma_range"`
	LightRange  []float64          `yaml:"lightness_range"`
	Palette     string             `yaml:"palette"`
	Image       string             `yaml:"image"`
	Fixed       []string           `yaml:"fixed"`
	CVD         map[string]float64 `yaml:"cvd"`
	Background  string             `yaml:"background"`
	Metric      string             `yaml:"metric"`
	MaxMemory   uint64             `yaml:"max_memory"`
}

// Load reads and parses a job file.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path) // #nosec G304 - user-specified config path
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job file %s: %w", path, err)
	}

	if err := job.validateRanges(); err != nil {
		return nil, fmt.Errorf("job file %s: %w", path, err)
	}
	return &job, nil
}

// validateRanges checks that any colourspace range has exactly two
// values. Value-level validation (modes, severities, metrics) is left
// to the generation pipeline so files and flags fail identically.
func (j *Job) validateRanges() error {
	for name, r := range map[string][]float64{
		"hue_range":       j.HueRange,
		"chroma_range":    j.ChromaRange,
		"lightness_range": j.LightRange,
	} {
		if len(r) != 0 && len(r) != 2 {
			return fmt.Errorf("%s needs exactly two values, got %d", name, len(r))
		}
	}
	return nil
}
