package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DefaultAPIBase = "https://api.spacexdata.com/v4/"
	configName     = "launchboard"
	envPrefix      = "LAUNCHBOARD"
)

var validate = validator.New()

type FetchConfig struct {
	UserAgent     string        `mapstructure:"user_agent" validate:"required"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Concurrent    bool          `mapstructure:"concurrent"`
	RespectRobots bool          `mapstructure:"respect_robots"`
}

type ServerConfig struct {
	Addr           string        `mapstructure:"addr" validate:"required"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
}

type Config struct {
	APIBase string       `mapstructure:"api_base" validate:"required,url"`
	LogFile string       `mapstructure:"log_file"`
	Fetch   FetchConfig  `mapstructure:"fetch"`
	Server  ServerConfig `mapstructure:"server"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_base", DefaultAPIBase)
	v.SetDefault("log_file", "launchboard.log")
	v.SetDefault("fetch.user_agent", "LaunchboardBot/1.0")
	v.SetDefault("fetch.timeout", 30*time.Second)
	v.SetDefault("fetch.concurrent", false)
	v.SetDefault("fetch.respect_robots", false)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.request_timeout", 30*time.Second)
}

// Load reads configuration from path when given, otherwise from
// launchboard.yaml in the working directory or ~/.config/launchboard.
// A missing file is not an error; defaults and LAUNCHBOARD_* environment
// variables still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config to struct: %w", err)
	}

	if !strings.HasSuffix(cfg.APIBase, "/") {
		cfg.APIBase += "/"
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
