package bootstrap

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/IlikeChooros/go-alphabeta/pkg/bench"
	"github.com/IlikeChooros/go-alphabeta/pkg/render"
)

// Prefix of the environment variables overriding the configuration
const EnvPrefix = "TTT"

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	ComputerFirst bool          `mapstructure:"COMPUTER_FIRST"`
	OpponentPiece string        `mapstructure:"OPPONENT_PIECE"`
	ThinkDelay    time.Duration `mapstructure:"THINK_DELAY"`
	Seed          int64         `mapstructure:"SEED"`
	LogFile       string        `mapstructure:"LOG_FILE"`
	LogLevel      string        `mapstructure:"LOG_LEVEL"`
	BenchGames    int           `mapstructure:"BENCH_GAMES"`
	BenchWorkers  int           `mapstructure:"BENCH_WORKERS"`
	BenchOpponent string        `mapstructure:"BENCH_OPPONENT"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("COMPUTER_FIRST", false)
	v.SetDefault("OPPONENT_PIECE", "x")
	v.SetDefault("THINK_DELAY", time.Second)
	v.SetDefault("SEED", 0)
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BENCH_GAMES", 1000)
	v.SetDefault("BENCH_WORKERS", 4)
	v.SetDefault("BENCH_OPPONENT", "random")
}

// Load the configuration, cfgPath may be empty to use only the defaults and
// the TTT_ environment variables. The file type follows its extension
// (.env, .yaml, .json, ...).
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	defaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := c.Piece(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := bench.NewPlayer(c.BenchOpponent, 1); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.ThinkDelay < 0 {
		return fmt.Errorf("%w: negative think delay %v", ErrInvalidConfig, c.ThinkDelay)
	}
	if c.BenchGames <= 0 || c.BenchWorkers <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, bench.ErrNoGames)
	}
	return nil
}

func (c *Config) Piece() (render.Piece, error) {
	return render.ParsePiece(c.OpponentPiece)
}

func (c *Config) Level() (zapcore.Level, error) {
	var level zapcore.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}
