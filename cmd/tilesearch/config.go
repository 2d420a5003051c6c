package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tilestar/arena"
	"github.com/katalvlaran/tilestar/astar"
	"github.com/katalvlaran/tilestar/closedset"
	"github.com/katalvlaran/tilestar/hashset"
	"github.com/katalvlaran/tilestar/metrics"
	"github.com/katalvlaran/tilestar/openset"
	"github.com/katalvlaran/tilestar/puzzle"
)

// ErrBadConfig indicates a configuration value that cannot be used.
var ErrBadConfig = errors.New("tilesearch: invalid configuration")

// Config is the YAML configuration of the command.
//
//	search:
//	  open_set: heap          # hash | tree | heap
//	  closed_set: hash        # hash | tree
//	  heuristic: manhattan    # manhattan | misplaced
//	  hasher: xxhash          # oaat | xxhash
//	  block_size: 10000
//	  index_capacity: 1024
//	  max_nodes: 50000000     # 0 = unlimited
//	  max_expansions: 0       # 0 = unlimited
//	  statistics: true
//	log:
//	  level: info             # debug | info | warn | error
//	  format: text            # text | json
//	metrics:
//	  namespace: tilestar
//	  out: ""                 # Prometheus text file written after solve/bench
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// SearchConfig selects the solver implementation and its limits.
type SearchConfig struct {
	OpenSet       string `yaml:"open_set"`
	ClosedSet     string `yaml:"closed_set"`
	Heuristic     string `yaml:"heuristic"`
	Hasher        string `yaml:"hasher"`
	BlockSize     int    `yaml:"block_size"`
	IndexCapacity int    `yaml:"index_capacity"`
	MaxNodes      int    `yaml:"max_nodes"`
	MaxExpansions int    `yaml:"max_expansions"`
	Statistics    bool   `yaml:"statistics"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig configures the Prometheus export.
type MetricsConfig struct {
	Namespace string `yaml:"namespace"`
	Out       string `yaml:"out"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Search: SearchConfig{
			OpenSet:       openset.Hash.String(),
			ClosedSet:     closedset.Hash.String(),
			Heuristic:     puzzle.Manhattan.String(),
			Hasher:        "oaat",
			BlockSize:     arena.DefaultBlockSize,
			IndexCapacity: astar.DefaultIndexCapacity,
		},
		Log:     LogConfig{Level: "info", Format: "text"},
		Metrics: MetricsConfig{Namespace: "tilestar"},
	}
}

// LoadConfig reads path over the defaults. An empty path yields DefaultConfig.
// Unknown keys are rejected; an empty file keeps every default.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}

	return cfg, cfg.Validate()
}

// Validate checks every enumerated value and limit.
func (c Config) Validate() error {
	if _, err := c.Search.Options(nil); err != nil {
		return err
	}
	if _, err := puzzle.ParseHeuristic(c.Search.Heuristic); err != nil {
		return errors.Wrap(ErrBadConfig, err.Error())
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.Wrapf(ErrBadConfig, "log format %q", c.Log.Format)
	}
	if c.Metrics.Namespace == "" {
		return errors.Wrap(ErrBadConfig, "metrics namespace is empty")
	}

	return nil
}

// Options converts the search section into solver options. log may be nil.
func (s SearchConfig) Options(log *slog.Logger) ([]astar.Option, error) {
	ok, err := openset.ParseKind(s.OpenSet)
	if err != nil {
		return nil, errors.Wrap(ErrBadConfig, err.Error())
	}
	ck, err := closedset.ParseKind(s.ClosedSet)
	if err != nil {
		return nil, errors.Wrap(ErrBadConfig, err.Error())
	}
	var h hashset.Hasher
	switch strings.ToLower(s.Hasher) {
	case "oaat", "":
		h = hashset.OneAtATime
	case "xxhash":
		h = hashset.XXHash
	default:
		return nil, errors.Wrapf(ErrBadConfig, "hasher %q", s.Hasher)
	}
	switch {
	case s.BlockSize <= 0:
		return nil, errors.Wrapf(ErrBadConfig, "block_size %d", s.BlockSize)
	case s.IndexCapacity < 0:
		return nil, errors.Wrapf(ErrBadConfig, "index_capacity %d", s.IndexCapacity)
	case !capacityFits(s.IndexCapacity):
		return nil, errors.Wrapf(ErrBadConfig, "index_capacity %d exceeds the largest table", s.IndexCapacity)
	case s.MaxNodes < 0:
		return nil, errors.Wrapf(ErrBadConfig, "max_nodes %d", s.MaxNodes)
	case s.MaxExpansions < 0:
		return nil, errors.Wrapf(ErrBadConfig, "max_expansions %d", s.MaxExpansions)
	}

	opts := []astar.Option{
		astar.WithOpenSet(ok),
		astar.WithClosedSet(ck),
		astar.WithHasher(h),
		astar.WithBlockSize(s.BlockSize),
		astar.WithIndexCapacity(s.IndexCapacity),
		astar.WithMaxNodes(s.MaxNodes),
		astar.WithMaxExpansions(s.MaxExpansions),
	}
	if s.Statistics {
		opts = append(opts, astar.WithStatistics())
	}
	if log != nil {
		opts = append(opts, astar.WithLogger(log))
	}

	return opts, nil
}

func capacityFits(n int) bool {
	_, ok := hashset.Prime(n)

	return ok
}

// labels names the configured set implementations for metrics.
func (s SearchConfig) labels() metrics.Labels {
	ok, _ := openset.ParseKind(s.OpenSet)
	ck, _ := closedset.ParseKind(s.ClosedSet)

	return metrics.Labels{OpenSet: ok.String(), ClosedSet: ck.String()}
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, errors.Wrapf(ErrBadConfig, "log level %q", s)
	}

	return l, nil
}
