package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

var ErrInvalidBoard = apperror.ErrInvalidBoard

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Redis    Redis  `yaml:"redis"`
	Board    Board  `yaml:"board"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// Board - settings for newly created boards.
type Board struct {
	Width  int `yaml:"width" env:"BOARD_WIDTH" env-default:"7"`
	Height int `yaml:"height" env:"BOARD_HEIGHT" env-default:"6"`
	Streak int `yaml:"streak" env:"BOARD_STREAK" env-default:"4"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Board.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Board) Validate() error {
	if that.Width < 1 || that.Height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBoard, that.Width, that.Height)
	}

	if that.Streak < 2 {
		return fmt.Errorf("%w: streak %d", ErrInvalidBoard, that.Streak)
	}

	return nil
}
