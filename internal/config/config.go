package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string   `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile   string   `yaml:"log-file" env:"TICTACTOE_LOG_FILE"`
	BoardSize int      `yaml:"board-size" env:"TICTACTOE_BOARD_SIZE" env-default:"3"`
	WinCheck  string   `yaml:"win-check" env:"TICTACTOE_WIN_CHECK" env-default:"board-full"`
	Players   []Player `yaml:"players"`
	Redis     Redis    `yaml:"redis"`
}

type Player struct {
	Name string `yaml:"name"`
	Mark string `yaml:"mark"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"TICTACTOE_REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	Key     string `yaml:"key" env:"TICTACTOE_REDIS_KEY" env-default:"tictactoe:results"`
}

// DefaultPlayers are used when the config names none.
func DefaultPlayers() []Player {
	return []Player{
		{Name: "Player 1", Mark: "X"},
		{Name: "Player 2", Mark: "O"},
	}
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the file at path when it exists and applies environment
// overrides. Without a file only the environment and defaults are used.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); path != "" && statErr == nil {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if len(config.Players) == 0 {
		config.Players = DefaultPlayers()
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

var ErrAddrNotFound = errors.New("redis address string is empty")

// Validate reports settings that would make the redis storage unusable.
func (that *Redis) Validate() error {
	if that.Host == "" || that.Port == "" {
		return ErrAddrNotFound
	}

	return nil
}
