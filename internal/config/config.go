package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Input struct {
		CSVPath          string `yaml:"csv_path"`
		IdentifierColumn string `yaml:"identifier_column"`
		URLColumn        string `yaml:"url_column"`
	} `yaml:"input"`

	Crawl struct {
		Concurrency    int     `yaml:"concurrency"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		Retries        int     `yaml:"retries"`
		PerHostRPS     float64 `yaml:"per_host_rps"`
		Burst          int     `yaml:"burst"`
		UserAgent      string  `yaml:"user_agent"`
	} `yaml:"crawl"`

	Cache struct {
		Enabled  bool `yaml:"enabled"`
		TTLHours int  `yaml:"ttl_hours"`
	} `yaml:"cache"`

	Output struct {
		Path string `yaml:"path"`
	} `yaml:"output"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.Crawl.TimeoutSeconds) * time.Second
}

func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLHours) * time.Hour
}
