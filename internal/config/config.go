package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the facade server configuration. Values come from an optional
// config.yaml and FACADE_* environment variables; env wins.
type Config struct {
	Address       string        `mapstructure:"address"`
	Model         string        `mapstructure:"model"`
	ModelName     string        `mapstructure:"model_name"`
	ModelOwner    string        `mapstructure:"model_owner"`
	ModelsPath    string        `mapstructure:"models_path"`
	TemplatesPath string        `mapstructure:"templates_path"`
	UpstreamURL   string        `mapstructure:"upstream_url"`
	UpstreamWait  time.Duration `mapstructure:"upstream_timeout"`
	TelemetryURL  string        `mapstructure:"telemetry_url"`
	Debug         bool          `mapstructure:"debug"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("address", ":8080")
	v.SetDefault("model", "gemma-2b-it")
	v.SetDefault("model_name", "Gemma-2B-IT")
	v.SetDefault("model_owner", "local")
	v.SetDefault("models_path", "")
	v.SetDefault("templates_path", "")
	v.SetDefault("upstream_url", "")
	v.SetDefault("upstream_timeout", 60*time.Second)
	v.SetDefault("telemetry_url", "")
	v.SetDefault("debug", false)

	// allow environment variables like FACADE_ADDRESS
	v.SetEnvPrefix("FACADE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// don't fail if config file is missing, allow env-only config
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
