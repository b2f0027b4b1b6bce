// Package config loads the settings of the zones commands from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     Server     `yaml:"server"`
	Log        Log        `yaml:"log"`
	Experiment Experiment `yaml:"experiment"`
}

type Server struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	Goroutines   int           `yaml:"goroutines"`
	MaxTurns     int           `yaml:"max_turns"`
}

type Log struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Matchup pairs two agents by name: a difficulty or "random".
type Matchup struct {
	Green string `yaml:"green"`
	Red   string `yaml:"red"`
}

type Experiment struct {
	Name       string    `yaml:"name"`
	Output     string    `yaml:"output"`
	Games      int       `yaml:"games"` // Per match up
	Seed       uint64    `yaml:"seed"`
	Goroutines int       `yaml:"goroutines"`
	MaxTurns   int       `yaml:"max_turns"`
	Evaluation string    `yaml:"evaluation"` // "zones" or "painted"
	Matchups   []Matchup `yaml:"matchups"`
}

func Default() Config {
	return Config{
		Server: Server{
			Addr:         ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			Goroutines:   1,
			MaxTurns:     500,
		},
		Log: Log{
			Level:  "info",
			Pretty: true,
		},
		Experiment: Experiment{
			Name:       "difficulty",
			Output:     "results",
			Games:      30,
			Seed:       1,
			Goroutines: 1,
			MaxTurns:   500,
			Evaluation: "zones",
			Matchups: []Matchup{
				{Green: "hard", Red: "easy"},
				{Green: "hard", Red: "medium"},
				{Green: "medium", Red: "easy"},
				{Green: "easy", Red: "random"},
			},
		},
	}
}

// Load reads the YAML file at path over the defaults. Keys missing from the
// file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

var (
	ErrNoMatchups = errors.New("experiment needs at least one matchup")
	ErrBadValue   = errors.New("value out of range")
)

func (c Config) Validate() error {
	if c.Server.Goroutines < 1 || c.Experiment.Goroutines < 1 {
		return fmt.Errorf("%w: goroutines must be positive", ErrBadValue)
	}
	if c.Server.MaxTurns < 1 || c.Experiment.MaxTurns < 1 {
		return fmt.Errorf("%w: max_turns must be positive", ErrBadValue)
	}
	if c.Experiment.Games < 1 {
		return fmt.Errorf("%w: games must be positive", ErrBadValue)
	}
	switch c.Experiment.Evaluation {
	case "zones", "painted":
	default:
		return fmt.Errorf("%w: unknown evaluation %q", ErrBadValue, c.Experiment.Evaluation)
	}
	if len(c.Experiment.Matchups) == 0 {
		return ErrNoMatchups
	}
	return nil
}
