// Package config provides Viper-based hierarchical configuration management
// together with .env loading for local development.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	OCR struct {
		TesseractPath string `mapstructure:"tesseract_path" yaml:"tesseract_path"`
		Languages     string `mapstructure:"languages" yaml:"languages"`
	} `mapstructure:"ocr" yaml:"ocr"`

	Output struct {
		Format    string `mapstructure:"format" yaml:"format"`
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"output" yaml:"output"`

	Banks struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"banks" yaml:"banks"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then a config.yaml from standard locations, then CEKOCR_*
// environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.cek-ocr")
	v.AddConfigPath(".cek-ocr")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CEKOCR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; defaults and environment apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("ocr.tesseract_path", "tesseract")
	v.SetDefault("ocr.languages", "tur+eng")
	v.SetDefault("output.format", "json")
	v.SetDefault("output.directory", ".")
	v.SetDefault("banks.file", "banks.yaml")
}

// ConfigureLoggingFromConfig applies the configured level and format to a
// fresh logrus logger and returns it.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
