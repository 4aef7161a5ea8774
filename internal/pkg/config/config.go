package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gosimple/slug"
	"github.com/joho/godotenv"
)

// Config holds everything one report run needs.
type Config struct {
	ZipCode        string        `env:"ZIP_CODE" envDefault:"33829"`
	BaseURL        string        `env:"API_BASE_URL" envDefault:"https://api.corrently.io"`
	OutputFile     string        `env:"OUTPUT_FILE" envDefault:"energy_prices.xlsx"`
	ChartFile      string        `env:"CHART_FILE"` // derived from the zip code when empty.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	Timezone       string        `env:"TIMEZONE" envDefault:"Local"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"INFO"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.ZipCode == "" {
		errs = append(errs, errors.New("zip code is required"))
	}
	if c.BaseURL == "" {
		errs = append(errs, errors.New("api base url is required"))
	}
	if c.OutputFile == "" {
		errs = append(errs, errors.New("output file is required"))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err))
	}
	return errors.Join(errs...)
}

func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// ChartPath returns ChartFile, or a name derived from the zip code such as strompreise-33829.png.
func (c *Config) ChartPath() string {
	if c.ChartFile != "" {
		return c.ChartFile
	}
	return slug.Make("strompreise "+c.ZipCode) + ".png"
}

// SeriesLabel names the plotted series after the queried zip code.
func (c *Config) SeriesLabel() string {
	return "Lokal-Preis in " + c.ZipCode
}
