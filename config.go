package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/op/go-logging"
	"github.com/spf13/viper"
)

const (
	_defaultBaseURL         = "https://adventofcode.com"
	_defaultYear            = 2022
	_defaultRequestInterval = 2 * time.Second
	_defaultLogLevel        = "INFO"
	_defaultSessionFile     = "Session"
	_defaultCacheDir        = "inputs"
	_defaultDay15Row        = 2000000
	_defaultDay15Max        = 4000000
)

// Config holds everything the commands need, merged from defaults,
// the config file, AOC_* environment variables and flags.
type Config struct {
	Session         string        `mapstructure:"session"`
	SessionFile     string        `mapstructure:"session_file"`
	CacheDir        string        `mapstructure:"cache_dir"`
	BaseURL         string        `mapstructure:"base_url"`
	Year            int           `mapstructure:"year"`
	UserAgent       string        `mapstructure:"user_agent"`
	RequestInterval time.Duration `mapstructure:"request_interval"`
	LogLevel        string        `mapstructure:"log_level"`
	Day15           Day15Config   `mapstructure:"day15"`
}

type Day15Config struct {
	Row int `mapstructure:"row"`
	Max int `mapstructure:"max"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("session_file", _defaultSessionFile)
	v.SetDefault("cache_dir", _defaultCacheDir)
	v.SetDefault("base_url", _defaultBaseURL)
	v.SetDefault("year", _defaultYear)
	v.SetDefault("user_agent", "github.com/b97tsk/aoc2022")
	v.SetDefault("request_interval", _defaultRequestInterval)
	v.SetDefault("log_level", _defaultLogLevel)
	v.SetDefault("day15.row", _defaultDay15Row)
	v.SetDefault("day15.max", _defaultDay15Max)

	v.SetEnvPrefix("aoc")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// readConfigFile loads name, or aoc2022.yaml from the usual places when name
// is empty. A missing default file is not an error.
func readConfigFile(v *viper.Viper, name string) error {
	if name != "" {
		v.SetConfigFile(name)
		return v.ReadInConfig()
	}
	v.SetConfigName("aoc2022")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "aoc2022"))
	}
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

func loadConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.RequestInterval <= 0 {
		return fmt.Errorf("request_interval must be positive, got %v", cfg.RequestInterval)
	}
	if cfg.Day15.Max < 0 {
		return fmt.Errorf("day15.max must not be negative, got %v", cfg.Day15.Max)
	}
	if _, err := logging.LogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// sessionToken returns the configured session, falling back to the first
// line of the session file.
func (cfg *Config) sessionToken() (string, error) {
	if cfg.Session != "" {
		return cfg.Session, nil
	}
	if cfg.SessionFile == "" {
		return "", ErrNoSession
	}
	token, err := _loadSingleLine(cfg.SessionFile, 1024)
	if errors.Is(err, os.ErrNotExist) || err == nil && token == "" {
		return "", ErrNoSession
	}
	return token, err
}

// _loadSingleLine returns the first line of the named file with surrounding
// whitespace removed. Lines longer than max bytes are an error.
func _loadSingleLine(name string, max int) (string, error) {
	file, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer file.Close()

	r := bufio.NewReaderSize(file, max)
	line, err := r.ReadSlice('\n')
	switch {
	case err == bufio.ErrBufferFull:
		return "", fmt.Errorf("%v: first line longer than %v bytes", name, max)
	case err != nil && err != io.EOF:
		return "", err
	}
	return strings.TrimSpace(string(line)), nil
}
