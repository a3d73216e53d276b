package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

var ErrInvalid = errors.New("invalid configuration")

// Search tunes the MCTS player.
type Search struct {
	Simulations  int           `env:"SIMULATIONS"   envDefault:"1000"`
	Goroutines   int           `env:"GOROUTINES"` // 0 uses every CPU
	Exploration  float64       `env:"EXPLORATION"   envDefault:"1.4142135623730951"`
	Duration     time.Duration `env:"DURATION"`
	Cutoff       int           `env:"CUTOFF"        envDefault:"1000"`
	PlayoutGreed float64       `env:"PLAYOUT_GREED" envDefault:"0.7"`
	ArenaLimit   int           `env:"ARENA_LIMIT"   envDefault:"1048576"`
	Metrics      bool          `env:"METRICS"`
}

// DefaultSearch returns the search tuning used when no variable is set.
func DefaultSearch() Search {
	return Search{
		Simulations:  1000,
		Exploration:  math.Sqrt2,
		Cutoff:       1000,
		PlayoutGreed: 0.7,
		ArenaLimit:   1 << 20,
	}
}

// WithDefaults fills every zero field from DefaultSearch. A duration without a
// simulation count stays a time-only budget.
func (s Search) WithDefaults() Search {
	d := DefaultSearch()
	if s.Simulations == 0 && s.Duration == 0 {
		s.Simulations = d.Simulations
	}
	if s.Exploration == 0 {
		s.Exploration = d.Exploration
	}
	if s.Cutoff == 0 {
		s.Cutoff = d.Cutoff
	}
	if s.PlayoutGreed == 0 {
		s.PlayoutGreed = d.PlayoutGreed
	}
	if s.ArenaLimit == 0 {
		s.ArenaLimit = d.ArenaLimit
	}
	return s
}

// Config holds the match runner configuration.
type Config struct {
	LogLevel  string `env:"UR_LOG_LEVEL"  envDefault:"info"`
	Seed      uint64 `env:"UR_SEED"`
	PlayerOne string `env:"UR_PLAYER_ONE" envDefault:"mcts"`
	PlayerTwo string `env:"UR_PLAYER_TWO" envDefault:"smart"`
	Games     int    `env:"UR_GAMES"      envDefault:"1"`
	MaxTurns  int    `env:"UR_MAX_TURNS"  envDefault:"10000"`
	Search    Search `envPrefix:"UR_MCTS_"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// ParseConfig reads the environment, then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for dice and players, 0 picks one from the clock")
	fs.StringVar(&cfg.PlayerOne, "p1", cfg.PlayerOne, "first player: random, smart or mcts")
	fs.StringVar(&cfg.PlayerTwo, "p2", cfg.PlayerTwo, "second player: random, smart or mcts")
	fs.IntVar(&cfg.Games, "games", cfg.Games, "number of games to play")
	fs.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "turn limit per game")
	fs.IntVar(&cfg.Search.Simulations, "simulations", cfg.Search.Simulations, "MCTS playouts per move")
	fs.IntVar(&cfg.Search.Goroutines, "goroutines", cfg.Search.Goroutines, "MCTS worker goroutines, 0 uses every CPU")
	fs.Float64Var(&cfg.Search.Exploration, "exploration", cfg.Search.Exploration, "UCT exploration constant")
	fs.DurationVar(&cfg.Search.Duration, "duration", cfg.Search.Duration, "MCTS time budget per move")
	fs.IntVar(&cfg.Search.Cutoff, "cutoff", cfg.Search.Cutoff, "playout depth cap")
	fs.Float64Var(&cfg.Search.PlayoutGreed, "playout-greed", cfg.Search.PlayoutGreed, "chance a playout step follows the heuristic")
	fs.IntVar(&cfg.Search.ArenaLimit, "arena-limit", cfg.Search.ArenaLimit, "MCTS tree node limit per search")
	fs.BoolVar(&cfg.Search.Metrics, "metrics", cfg.Search.Metrics, "collect search metrics")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	if c.Games <= 0 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalid, c.Games)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("%w: max turns must be positive, got %d", ErrInvalid, c.MaxTurns)
	}
	return nil
}

// Level returns the zerolog level, info if the name is unknown.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
