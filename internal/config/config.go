package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/at-ishikawa/ktytools/internal/kaikki"
	"github.com/at-ishikawa/ktytools/internal/lang"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Tests  TestsConfig  `mapstructure:"tests"`
	Kaikki KaikkiConfig `mapstructure:"kaikki"`
	// Pairs maps a source language to its target languages.
	// The kty test suite pairs are used when it is empty.
	Pairs map[string][]string `mapstructure:"pairs" validate:"omitempty,dive,keys,lang,endkeys,min=1,dive,lang"`
}

type TestsConfig struct {
	FixturesDirectory string `mapstructure:"fixtures_directory" validate:"required"`
	RegistryPath      string `mapstructure:"registry_path" validate:"required"`
}

type KaikkiConfig struct {
	BaseURL   string        `mapstructure:"base_url" validate:"required,url"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`
	CacheSize int           `mapstructure:"cache_size" validate:"gte=0"`
}

// LanguagePairs returns the configured pair table.
func (cfg Config) LanguagePairs() (lang.Pairs, error) {
	if len(cfg.Pairs) == 0 {
		return lang.DefaultPairs(), nil
	}

	pairs := make(lang.Pairs, len(cfg.Pairs))
	for source, targets := range cfg.Pairs {
		sourceCode, err := lang.Parse(source)
		if err != nil {
			return nil, fmt.Errorf("pairs > %w", err)
		}
		for _, target := range targets {
			targetCode, err := lang.Parse(target)
			if err != nil {
				return nil, fmt.Errorf("pairs.%s > %w", source, err)
			}
			pairs[sourceCode] = append(pairs[sourceCode], targetCode)
		}
	}
	return pairs, nil
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ktytools")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("tests.fixtures_directory", filepath.Join("tests", "kaikki"))
	v.SetDefault("tests.registry_path", filepath.Join("tests", "registry.json"))
	v.SetDefault("kaikki.base_url", kaikki.DefaultBaseURL)
	v.SetDefault("kaikki.timeout", kaikki.DefaultTimeout)
	v.SetDefault("kaikki.cache_size", 256)

	// Environment variables may come from a .env file in the working directory
	_ = godotenv.Load()
	if err := v.BindEnv("kaikki.base_url", "KAIKKI_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind KAIKKI_BASE_URL environment variable: %w", err)
	}
	if err := v.BindEnv("kaikki.timeout", "KAIKKI_TIMEOUT"); err != nil {
		return nil, fmt.Errorf("failed to bind KAIKKI_TIMEOUT environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validator.Struct > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
