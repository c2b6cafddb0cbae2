// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/radar/laplacian"
	"github.com/katalvlaran/radar/linalg"
	"github.com/katalvlaran/radar/matrix"
	"github.com/katalvlaran/radar/radar"
)

// DefaultTop is the ranking length when a config does not set top.
const DefaultTop = 5

var (
	// ErrUnsupportedFormat is returned by Load for an unknown file extension.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrUnknownKey is returned when a TOML file carries keys Config does not define.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrMissingAttributes is returned when no attribute rows are given.
	ErrMissingAttributes = errors.New("config: attributes are required")

	// ErrMissingGraph is returned when neither adjacency nor edges are given.
	ErrMissingGraph = errors.New("config: adjacency or edges are required")

	// ErrAmbiguousGraph is returned when both adjacency and edges are given.
	ErrAmbiguousGraph = errors.New("config: adjacency and edges are mutually exclusive")
)

// Edge is one edge-list entry; a zero weight means 1.
type Edge struct {
	From   int     `yaml:"from" toml:"from" json:"from"`
	To     int     `yaml:"to" toml:"to" json:"to"`
	Weight float64 `yaml:"weight" toml:"weight" json:"weight,omitempty"`
}

// Config describes one detection run.
type Config struct {
	Alpha     float64 `yaml:"alpha" toml:"alpha"`
	Beta      float64 `yaml:"beta" toml:"beta"`
	Gamma     float64 `yaml:"gamma" toml:"gamma"`
	MaxIters  int     `yaml:"max_iters" toml:"max_iters"`
	Tolerance float64 `yaml:"tolerance" toml:"tolerance"`
	Top       int     `yaml:"top" toml:"top"`
	Backend   string  `yaml:"backend" toml:"backend"`

	Attributes [][]float64 `yaml:"attributes" toml:"attributes"`

	// Either Adjacency, or Edges (+ optional Nodes and Directed).
	Adjacency [][]float64 `yaml:"adjacency" toml:"adjacency"`
	Nodes     int         `yaml:"nodes" toml:"nodes"` // 0 → number of attribute rows
	Edges     []Edge      `yaml:"edges" toml:"edges"`
	Directed  bool        `yaml:"directed" toml:"directed"`
}

// DefaultConfig returns the solver defaults with no graph.
func DefaultConfig() Config {
	return Config{
		Alpha:     radar.DefaultAlpha,
		Beta:      radar.DefaultBeta,
		Gamma:     radar.DefaultGamma,
		MaxIters:  radar.DefaultMaxIters,
		Tolerance: radar.DefaultTolerance,
		Top:       DefaultTop,
		Backend:   linalg.NameNative,
	}
}

// Load reads path over DefaultConfig and validates the result.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(path, &cfg)
	case ".toml":
		err = decodeTOML(path, &cfg)
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func decodeYAML(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err = decoder.Decode(cfg); err != nil {
		return fmt.Errorf("config: YAML error in %s: %w", path, err)
	}

	return nil
}

func decodeTOML(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config: TOML error in %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}

	return nil
}

// Validate checks the graph description and the solver settings.
func (c Config) Validate() error {
	if len(c.Attributes) == 0 {
		return ErrMissingAttributes
	}
	hasMatrix, hasEdges := len(c.Adjacency) > 0, len(c.Edges) > 0 || c.Nodes > 0
	switch {
	case hasMatrix && hasEdges:
		return ErrAmbiguousGraph
	case !hasMatrix && !hasEdges:
		return ErrMissingGraph
	}
	if _, err := linalg.ByName(c.Backend); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	opts, err := c.Options()
	if err != nil {
		return err
	}

	return opts.Validate()
}

// Options converts the solver settings into radar.Options.
func (c Config) Options() (radar.Options, error) {
	backend, err := linalg.ByName(c.Backend)
	if err != nil {
		return radar.Options{}, fmt.Errorf("config: %w", err)
	}
	opts := radar.DefaultOptions()
	opts.Alpha, opts.Beta, opts.Gamma = c.Alpha, c.Beta, c.Gamma
	opts.MaxIters = c.MaxIters
	opts.Tolerance = c.Tolerance
	opts.Backend = backend

	return opts, nil
}

// Matrices builds the attribute matrix X and the adjacency matrix A.
func (c Config) Matrices() (X, A *matrix.Dense, err error) {
	if X, err = matrix.NewDenseFromRows(c.Attributes); err != nil {
		return nil, nil, fmt.Errorf("config: attributes: %w", err)
	}
	if len(c.Adjacency) > 0 {
		if A, err = matrix.NewDenseFromRows(c.Adjacency); err != nil {
			return nil, nil, fmt.Errorf("config: adjacency: %w", err)
		}
		return X, A, nil
	}

	n := c.Nodes
	if n == 0 {
		n = len(c.Attributes)
	}
	edges := make([]laplacian.Edge, len(c.Edges))
	for i, e := range c.Edges {
		edges[i] = laplacian.Edge{From: e.From, To: e.To, Weight: e.Weight}
	}
	var opts []laplacian.Option
	if c.Directed {
		opts = append(opts, laplacian.WithDirected())
	}
	if A, err = laplacian.FromEdges(n, edges, opts...); err != nil {
		return nil, nil, fmt.Errorf("config: edges: %w", err)
	}

	return X, A, nil
}
