package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort       = "3001"
	DefaultDifyAPIURL = "https://api.dify.ai/v1/chat-messages"
)

var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
}

type ServerConfig struct {
	Port        string `yaml:"port"`
	Environment string `yaml:"environment"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type DifyConfig struct {
	APIURL string `yaml:"api_url"`
	APIKey string `yaml:"api_key"`
}

// ModelConfig configures the OpenAI-compatible LLM used for session title
// generation. Titling is disabled when APIKey is empty.
type ModelConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Name    string `yaml:"name"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Dify     DifyConfig     `yaml:"dify"`
	Model    ModelConfig    `yaml:"model"`
	CORS     CORSConfig     `yaml:"cors"`
}

// Load reads configuration in ascending precedence: config.yaml, .env file,
// process environment. The database DSN is the only hard requirement.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	applyEnv(cfg)

	if cfg.Database.DSN == "" {
		return nil, errors.New("database dsn is required (set DATABASE_DSN)")
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.Environment == "" {
		cfg.Server.Environment = "development"
	}
	if cfg.Dify.APIURL == "" {
		slog.Warn("DIFY_API_URL not set, using default URL", "url", DefaultDifyAPIURL)
		cfg.Dify.APIURL = DefaultDifyAPIURL
	}
	if cfg.Dify.APIKey == "" {
		slog.Warn("DIFY_API_KEY not set, chat requests will fall back to the apology answer")
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = defaultAllowedOrigins
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	setEnv(&cfg.Server.Port, "PORT")
	setEnv(&cfg.Server.Environment, "APP_ENV")
	setEnv(&cfg.Database.DSN, "DATABASE_DSN")
	setEnv(&cfg.Dify.APIURL, "DIFY_API_URL")
	setEnv(&cfg.Dify.APIKey, "DIFY_API_KEY")
	setEnv(&cfg.Model.BaseURL, "MODEL_BASE_URL")
	setEnv(&cfg.Model.APIKey, "MODEL_API_KEY")
	setEnv(&cfg.Model.Name, "MODEL_NAME")

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORS.AllowedOrigins = origins
	}
}

func setEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
