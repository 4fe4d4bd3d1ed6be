package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrSameSymbols = errors.New("player symbols must differ")
	ErrBlankSymbol = errors.New("player symbol must not be blank")
)

type Config struct {
	LogLevel        string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	PlayerOneSymbol string        `yaml:"player-one-symbol" env:"PLAYER_ONE_SYMBOL" env-default:"X" validate:"required,len=1,printascii,excludesall=0x7C-"`
	PlayerTwoSymbol string        `yaml:"player-two-symbol" env:"PLAYER_TWO_SYMBOL" env-default:"O" validate:"required,len=1,printascii,excludesall=0x7C-"`
	AIDelay         time.Duration `yaml:"ai-delay" env:"AI_DELAY" env-default:"700ms" validate:"gte=0"`
	StyledOutput    bool          `yaml:"styled-output" env:"STYLED_OUTPUT" env-default:"false"`
	Tracing         bool          `yaml:"tracing" env:"TRACING" env-default:"false"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// MustLoad - loads the config file when it exists, otherwise the environment and defaults.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("could not stat config file: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if err := validate.Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if that.PlayerOneSymbol == " " || that.PlayerTwoSymbol == " " {
		return fmt.Errorf("invalid config: %w", ErrBlankSymbol)
	}

	if that.PlayerOneSymbol == that.PlayerTwoSymbol {
		return fmt.Errorf("invalid config: %w", ErrSameSymbols)
	}

	return nil
}

// Symbols - returns the two player symbols as runes.
func (that *Config) Symbols() (rune, rune) {
	one, _ := utf8.DecodeRuneInString(that.PlayerOneSymbol)
	two, _ := utf8.DecodeRuneInString(that.PlayerTwoSymbol)

	return one, two
}
