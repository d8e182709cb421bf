package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates durable storage and presentation preferences.
type Config interface {
	BasePath() string
	Locale() string
}

// LoadConfig reads .mood.yaml from $MOOD_CONFIG_PATH or the working
// directory, with MOOD_* environment overrides.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.mood.db")
	v.SetDefault("locale", "en")
	v.SetConfigName(".mood") // .yaml is implicit
	v.SetEnvPrefix("MOOD")
	v.AutomaticEnv()

	if override := os.Getenv("MOOD_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	return &fileConfig{Path: path, Lang: v.GetString("locale")}, nil
}

type fileConfig struct {
	Path string `json:"path"`
	Lang string `json:"locale"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Locale() string {
	return f.Lang
}

// StaticConfig is a Config with fixed values.
type StaticConfig struct {
	Path string
	Lang string
}

func (s StaticConfig) BasePath() string { return s.Path }

func (s StaticConfig) Locale() string {
	if s.Lang == "" {
		return "en"
	}
	return s.Lang
}
