// Package models defines the runtime configuration of the report tool.
package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces environment overrides.
const EnvPrefix = "UNSTOP_"

// DatasetPaths locates the three cleaned CSV inputs.
type DatasetPaths struct {
	Hackathons  string `yaml:"hackathons" env:"HACKATHONS_CSV"`
	Jobs        string `yaml:"jobs" env:"JOBS_CSV"`
	Internships string `yaml:"internships" env:"INTERNSHIPS_CSV"`
}

// Config holds everything a report run needs. Values are layered: defaults,
// then the YAML file, then .env and UNSTOP_* variables, then CLI flags.
type Config struct {
	Datasets DatasetPaths `yaml:"datasets"`

	Output         string `yaml:"output" env:"OUTPUT"`
	Manifest       string `yaml:"manifest" env:"MANIFEST"`
	ManifestFormat string `yaml:"manifest_format" env:"MANIFEST_FORMAT"`

	Title      string   `yaml:"title" env:"TITLE"`
	Header     []string `yaml:"header" env:"HEADER" envSeparator:"|"`
	AssetsHost string   `yaml:"assets_host" env:"ASSETS_HOST"`

	WorkerCount      int      `yaml:"worker_count" env:"WORKERS"`
	TopN             int      `yaml:"top_n" env:"TOP_N"`
	TreemapCompanies int      `yaml:"treemap_companies" env:"TREEMAP_COMPANIES"`
	WordCloudWords   int      `yaml:"word_cloud_words" env:"WORD_CLOUD_WORDS"`
	CategoryExclude  []string `yaml:"category_exclude" env:"CATEGORY_EXCLUDE" envSeparator:","`
}

// DefaultConfig matches the layout of the original project files.
func DefaultConfig() *Config {
	return &Config{
		Datasets: DatasetPaths{
			Hackathons:  "Preprocessed_files/cleaned_hackathons.csv",
			Jobs:        "Preprocessed_files/cleaned_jobs.csv",
			Internships: "Preprocessed_files/cleaned_internship.csv",
		},
		Output:         "report/index.html",
		Manifest:       "report/summary.yaml",
		ManifestFormat: "yaml",
		Title:          "Unstop Market Trend Analytics",
		Header:         []string{"By Group 8 - BDA 2024", "BML Munjal University"},
		WorkerCount:    4,
	}
}

// LoadConfig builds a Config from defaults, the optional YAML file at path,
// the optional .env file at envFile and the process environment. Missing
// files are not an error; malformed ones are.
func LoadConfig(path, envFile string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if envFile != "" {
		// Load never overrides variables that are already set.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	return config, nil
}

// Validate reports settings no run can work with.
func (c *Config) Validate() error {
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	if c.WorkerCount < 0 {
		return fmt.Errorf("worker count must not be negative, got %d", c.WorkerCount)
	}
	if c.TopN < 0 {
		return fmt.Errorf("top_n must not be negative, got %d", c.TopN)
	}
	return nil
}
