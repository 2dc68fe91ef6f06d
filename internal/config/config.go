package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// APIEnvVar supplies the backend origin. It wins over the yaml value.
const APIEnvVar = "SHOPADMIN_API"

type Root struct {
	Env   string `yaml:"env"`
	Local Config `yaml:"local"`
	Dev   Config `yaml:"dev"`
	Prod  Config `yaml:"prod"`
}

type Config struct {
	Env string `yaml:"-"`

	Log struct {
		Level     string `yaml:"level"`
		Format    string `yaml:"format"`
		AddSource bool   `yaml:"add_source"`
	} `yaml:"log"`

	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`

	Backend struct {
		BaseURL              string `yaml:"base_url"`
		PageSize             int    `yaml:"page_size"`
		ShopProductsPageSize int    `yaml:"shop_products_page_size"`
	} `yaml:"backend"`

	HTTP struct {
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		MaxInFlight    int    `yaml:"max_in_flight"`
		ProxyURL       string `yaml:"proxy_url"`
	} `yaml:"http"`

	Retry struct {
		MaxAttempts     int `yaml:"max_attempts"`
		IntervalSeconds int `yaml:"interval_seconds"`
	} `yaml:"retry"`

	Export struct {
		OutputFile string `yaml:"output_file"`
		MaxPages   int    `yaml:"max_pages"`
		Workers    int    `yaml:"workers"`
	} `yaml:"export"`
}

// Load reads the yaml profile at path; an empty path means defaults only.
// A .env file in the working directory, if present, is loaded into the process env first.
func Load(path string) (*Config, error) {
	if err := loadDotenv(".env"); err != nil {
		return nil, err
	}

	var root Root
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, &root); err != nil {
			return nil, err
		}
	}

	env := strings.TrimSpace(strings.ToLower(root.Env))
	if env == "" {
		env = "local"
	}

	var p Config
	switch env {
	case "local":
		p = root.Local
	case "dev":
		p = root.Dev
	case "prod":
		p = root.Prod
	default:
		return nil, fmt.Errorf("unknown env=%q (expected local|dev|prod)", env)
	}
	p.Env = env

	if v := strings.TrimSpace(os.Getenv(APIEnvVar)); v != "" {
		p.Backend.BaseURL = v
	}

	applyDefaults(&p)
	return &p, nil
}

func loadDotenv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

func applyDefaults(p *Config) {
	p.Backend.BaseURL = strings.TrimRight(strings.TrimSpace(p.Backend.BaseURL), "/")
	if p.Backend.BaseURL == "" {
		p.Backend.BaseURL = "http://localhost:8080"
	}
	if p.Backend.PageSize <= 0 {
		p.Backend.PageSize = 9
	}
	if p.Backend.ShopProductsPageSize <= 0 {
		p.Backend.ShopProductsPageSize = 6
	}

	if p.Server.Host == "" {
		p.Server.Host = "0.0.0.0"
	}
	if p.Server.Port == 0 {
		p.Server.Port = 7891
	}

	if p.HTTP.TimeoutSeconds <= 0 {
		p.HTTP.TimeoutSeconds = 30
	}
	if p.HTTP.MaxInFlight < 0 {
		p.HTTP.MaxInFlight = 0
	}

	if p.Retry.MaxAttempts <= 0 {
		p.Retry.MaxAttempts = 5
	}
	if p.Retry.IntervalSeconds <= 0 {
		p.Retry.IntervalSeconds = 5
	}

	if p.Export.MaxPages <= 0 {
		p.Export.MaxPages = 500
	}
	if p.Export.Workers <= 0 {
		p.Export.Workers = 4
	}
	if p.Export.OutputFile == "" {
		p.Export.OutputFile = "./output/shops.json"
	}

	if p.Log.Level == "" {
		if p.Env == "prod" {
			p.Log.Level = "info"
		} else {
			p.Log.Level = "debug"
		}
	}
	if p.Log.Format == "" {
		if p.Env == "prod" {
			p.Log.Format = "json"
		} else {
			p.Log.Format = "text"
		}
	}
}
