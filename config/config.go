// Package config loads the YAML run configuration of the motifs tool.
//
//	datasets: [bio-DM-LC/bio-DM-LC.edges, rt-twitter-copen/rt-twitter-copen.mtx]
//	output_dir: outputs
//	ensemble:   {size: 100, min_viable: 50, seed_base: 0, workers: 8}
//	randomizer: {max_attempts: 10, pairing: sequential}
//	census:     {workers: 1}
//	cache:      {backend: dir, path: random_graphs}
//	timeout: 30m
//
// Zero values mean "use the default"; Validate fills them in.
package config

import (
	"bytes"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/calganaygun/networks-playground/builder"
	"github.com/calganaygun/networks-playground/cache"
)

// ErrInvalidConfig marks a configuration that fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full run configuration.
type Config struct {
	Datasets   []string         `yaml:"datasets"`
	OutputDir  string           `yaml:"output_dir"`
	Ensemble   EnsembleConfig   `yaml:"ensemble"`
	Randomizer RandomizerConfig `yaml:"randomizer"`
	Census     CensusConfig     `yaml:"census"`
	Cache      CacheConfig      `yaml:"cache"`
	// TimeoutStr bounds one dataset run, e.g. "30m". Empty means no limit.
	TimeoutStr string `yaml:"timeout"`

	timeout time.Duration
	pairing builder.Pairing
}

// EnsembleConfig sizes the null-model ensemble.
type EnsembleConfig struct {
	// Size is the number of random graphs (default 100).
	Size int `yaml:"size"`
	// MinViable is the fewest surviving members a run accepts (default Size/2).
	MinViable int `yaml:"min_viable"`
	// SeedBase offsets member seeds: member i uses SeedBase+i.
	SeedBase int64 `yaml:"seed_base"`
	// Workers bounds concurrent members (default NumCPU).
	Workers int `yaml:"workers"`
}

// RandomizerConfig tunes the degree-sequence randomizer.
type RandomizerConfig struct {
	MaxAttempts int    `yaml:"max_attempts"`
	Pairing     string `yaml:"pairing"`
}

// CensusConfig tunes the motif census.
type CensusConfig struct {
	// Workers per census call (default 1; ensemble members already run in
	// parallel).
	Workers int `yaml:"workers"`
}

// CacheConfig selects the random-graph cache.
type CacheConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// Defaults.
const (
	DefaultEnsembleSize = 100
	DefaultMaxAttempts  = 10
	DefaultOutputDir    = "outputs"
	DefaultCachePath    = "random_graphs"
)

// Default returns a validated configuration with every default applied.
func Default() *Config {
	c := &Config{}
	if err := c.Validate(); err != nil {
		panic(err)
	}
	return c
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "config: decode")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: read")
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	return c, nil
}

// Validate fills defaults and checks ranges.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}

	e := &c.Ensemble
	if e.Size == 0 {
		e.Size = DefaultEnsembleSize
	}
	if e.Size < 1 {
		return errors.Wrapf(ErrInvalidConfig, "ensemble.size %d < 1", e.Size)
	}
	if e.MinViable == 0 {
		e.MinViable = (e.Size + 1) / 2
	}
	if e.MinViable < 1 || e.MinViable > e.Size {
		return errors.Wrapf(ErrInvalidConfig, "ensemble.min_viable %d outside [1, %d]", e.MinViable, e.Size)
	}
	if e.Workers == 0 {
		e.Workers = runtime.NumCPU()
	}
	if e.Workers < 1 {
		return errors.Wrapf(ErrInvalidConfig, "ensemble.workers %d < 1", e.Workers)
	}

	if c.Randomizer.MaxAttempts == 0 {
		c.Randomizer.MaxAttempts = DefaultMaxAttempts
	}
	if c.Randomizer.MaxAttempts < 1 {
		return errors.Wrapf(ErrInvalidConfig, "randomizer.max_attempts %d < 1", c.Randomizer.MaxAttempts)
	}
	p, err := builder.ParsePairing(c.Randomizer.Pairing)
	if err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	c.pairing = p
	c.Randomizer.Pairing = p.String()

	if c.Census.Workers == 0 {
		c.Census.Workers = 1
	}
	if c.Census.Workers < 1 {
		return errors.Wrapf(ErrInvalidConfig, "census.workers %d < 1", c.Census.Workers)
	}

	switch c.Cache.Backend {
	case "":
		c.Cache.Backend = cache.BackendNone
	case cache.BackendNone, cache.BackendMemory, cache.BackendBadger:
	case cache.BackendDir:
		if c.Cache.Path == "" {
			c.Cache.Path = DefaultCachePath
		}
	default:
		return errors.Wrapf(ErrInvalidConfig, "cache.backend %q", c.Cache.Backend)
	}

	c.timeout = 0
	if c.TimeoutStr != "" {
		d, err := time.ParseDuration(c.TimeoutStr)
		if err != nil {
			return errors.Wrapf(ErrInvalidConfig, "timeout %q: %v", c.TimeoutStr, err)
		}
		if d <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "timeout %q must be positive", c.TimeoutStr)
		}
		c.timeout = d
	}

	return nil
}

// Timeout returns the parsed run timeout; zero means none.
func (c *Config) Timeout() time.Duration { return c.timeout }

// Pairing returns the parsed pairing policy.
func (c *Config) Pairing() builder.Pairing { return c.pairing }
