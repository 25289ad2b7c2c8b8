// Package config holds pinder's run settings: board size, movement model,
// random seed, default algorithm and logging. Values come from Default, are
// overridden by an optional YAML file, then by command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pinder/gridgraph"
	"github.com/katalvlaran/pinder/logging"
	"github.com/katalvlaran/pinder/session"
)

// Board size limits.
const (
	DefaultRows    = 16
	DefaultColumns = DefaultRows
	MinRows        = 5
	MinColumns     = MinRows
)

// Sentinel errors returned by Load and Validate.
var (
	// ErrBoardTooSmall indicates rows or columns below the minimum.
	ErrBoardTooSmall = errors.New("config: board too small")

	// ErrUnknownAlgorithm indicates an algorithm name ParseAlgorithm rejects.
	ErrUnknownAlgorithm = session.ErrUnknownAlgorithm

	// ErrUnknownLevel indicates a log level name ParseLevel rejects.
	ErrUnknownLevel = logging.ErrUnknownLevel
)

// Config is the full set of run settings.
type Config struct {
	Rows     int   `yaml:"rows"`
	Columns  int   `yaml:"columns"`
	Diagonal bool  `yaml:"diagonal"`
	Seed     int64 `yaml:"seed"` // 0 picks a time-based seed

	Algorithm string `yaml:"algorithm"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
	LogJSON  bool   `yaml:"log_json"`
}

// Default returns the built-in settings: a 16×16 four-connected board,
// A* as the default algorithm, info-level logging with no file.
func Default() Config {
	return Config{
		Rows:      DefaultRows,
		Columns:   DefaultColumns,
		Algorithm: session.AStar.String(),
		LogLevel:  logging.LevelInfo.String(),
	}
}

// Load reads the YAML file at path over Default. Unknown keys are rejected.
// The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := cfg.decode(data); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(c)
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks the board limits and that the algorithm and log level
// names are recognised. All problems are reported, joined.
func (c Config) Validate() error {
	var errs []error
	if c.Rows < MinRows || c.Columns < MinColumns {
		errs = append(errs, fmt.Errorf("%w: %dx%d, minimum is %dx%d",
			ErrBoardTooSmall, c.Rows, c.Columns, MinRows, MinColumns))
	}
	if _, err := session.ParseAlgorithm(c.Algorithm); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Connectivity maps Diagonal onto a gridgraph connectivity.
func (c Config) Connectivity() gridgraph.Connectivity {
	if c.Diagonal {
		return gridgraph.Conn8
	}
	return gridgraph.Conn4
}

// AlgorithmKind returns the parsed Algorithm, A* when the name is invalid.
func (c Config) AlgorithmKind() session.Algorithm {
	a, err := session.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return session.AStar
	}
	return a
}

// Logging converts the log settings to a logging.Config. An invalid level
// falls back to info; call Validate first to catch it.
func (c Config) Logging() logging.Config {
	lvl, _ := logging.ParseLevel(c.LogLevel)
	return logging.Config{Level: lvl, JSON: c.LogJSON, File: c.LogFile}
}

// NewBoard builds the empty board described by c.
func (c Config) NewBoard() (*gridgraph.Board, error) {
	return gridgraph.NewBoard(c.Rows, c.Columns, gridgraph.WithConnectivity(c.Connectivity()))
}
