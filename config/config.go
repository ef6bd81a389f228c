// Package config loads solver options from YAML.
//
// A file only overrides the keys it names; everything else keeps the value of
// the base options handed in (usually tsp.DefaultOptions). Unknown keys are
// rejected so typos never silently fall back to defaults. The merged result
// is validated with tsp.Options.Validate.
//
//	population_size: 200
//	generations: 2000
//	crossover_rate: 0.8
//	elite_size: 7
//	refine_every: 10
//	mutation:
//	  start: 0.5
//	  end: 0
//	selection: rank        # or tournament
//	tournament_size: 5
//	seed: 42
//	eps: 1e-12
//	workers: 4
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/evotsp/tsp"
)

// ErrDecode is returned (wrapped) for malformed YAML or unknown keys.
var ErrDecode = errors.New("config: cannot decode options")

// File mirrors the YAML document. Nil fields were absent from the input.
type File struct {
	PopulationSize *int      `yaml:"population_size,omitempty"`
	Generations    *int      `yaml:"generations,omitempty"`
	CrossoverRate  *float64  `yaml:"crossover_rate,omitempty"`
	EliteSize      *int      `yaml:"elite_size,omitempty"`
	RefineEvery    *int      `yaml:"refine_every,omitempty"`
	Mutation       *Mutation `yaml:"mutation,omitempty"`
	Selection      *string   `yaml:"selection,omitempty"`
	TournamentSize *int      `yaml:"tournament_size,omitempty"`
	Seed           *int64    `yaml:"seed,omitempty"`
	Eps            *float64  `yaml:"eps,omitempty"`
	Workers        *int      `yaml:"workers,omitempty"`
}

// Mutation is the mutation schedule block.
type Mutation struct {
	Start *float64 `yaml:"start,omitempty"`
	End   *float64 `yaml:"end,omitempty"`
}

// Apply overlays f on base and validates the result.
func (f File) Apply(base tsp.Options) (tsp.Options, error) {
	o := base
	setInt(&o.PopulationSize, f.PopulationSize)
	setInt(&o.Generations, f.Generations)
	setFloat(&o.CrossoverRate, f.CrossoverRate)
	setInt(&o.EliteSize, f.EliteSize)
	setInt(&o.RefineEvery, f.RefineEvery)
	if f.Mutation != nil {
		setFloat(&o.Mutation.Start, f.Mutation.Start)
		setFloat(&o.Mutation.End, f.Mutation.End)
	}
	if f.Selection != nil {
		kind, err := tsp.ParseSelection(*f.Selection)
		if err != nil {
			return base, fmt.Errorf("config: selection %q: %w", *f.Selection, err)
		}
		o.Selection = kind
	}
	setInt(&o.TournamentSize, f.TournamentSize)
	if f.Seed != nil {
		o.Seed = *f.Seed
	}
	setFloat(&o.Eps, f.Eps)
	setInt(&o.Workers, f.Workers)

	if err := o.Validate(); err != nil {
		return base, fmt.Errorf("config: %w", err)
	}

	return o, nil
}

// Decode reads one YAML document from r and overlays it on base.
// An empty document yields base (validated).
func Decode(r io.Reader, base tsp.Options) (tsp.Options, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return f.Apply(base)
}

// Load reads the YAML file at path and overlays it on base.
func Load(path string, base tsp.Options) (tsp.Options, error) {
	fh, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("config: %w", err)
	}
	defer fh.Close()

	o, err := Decode(fh, base)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}

	return o, nil
}

// FromOptions returns the fully populated File describing o. The Observer is
// not representable and is dropped.
func FromOptions(o tsp.Options) File {
	sel := o.Selection.String()

	return File{
		PopulationSize: &o.PopulationSize,
		Generations:    &o.Generations,
		CrossoverRate:  &o.CrossoverRate,
		EliteSize:      &o.EliteSize,
		RefineEvery:    &o.RefineEvery,
		Mutation:       &Mutation{Start: &o.Mutation.Start, End: &o.Mutation.End},
		Selection:      &sel,
		TournamentSize: &o.TournamentSize,
		Seed:           &o.Seed,
		Eps:            &o.Eps,
		Workers:        &o.Workers,
	}
}

// Encode writes o as YAML, in the layout Decode reads back.
func Encode(w io.Writer, o tsp.Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromOptions(o)); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return enc.Close()
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
