package config

import (
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port"`
		Host         string        `yaml:"host"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
	} `yaml:"server"`

	Auth struct {
		APIKey       string   `yaml:"api_key"`
		APIKeyHeader string   `yaml:"api_key_header"`
		AllowedIPs   []string `yaml:"allowed_ips"`
	} `yaml:"auth"`

	RateLimit struct {
		Enabled           bool    `yaml:"enabled"`
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
	} `yaml:"rate_limit"`

	LLM struct {
		Provider    string        `yaml:"provider"`
		APIKey      string        `yaml:"api_key"`
		Model       string        `yaml:"model"`
		MaxTokens   int           `yaml:"max_tokens"`
		Temperature float32       `yaml:"temperature"`
		Timeout     time.Duration `yaml:"timeout"`
	} `yaml:"llm"`

	Apify struct {
		Token   string        `yaml:"token"`
		Actor   string        `yaml:"actor"`
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"apify"`

	Firecrawl struct {
		APIKey     string        `yaml:"api_key"`
		APIURL     string        `yaml:"api_url"`
		Timeout    time.Duration `yaml:"timeout"`
		MaxRetries int           `yaml:"max_retries"`
		Formats    []string      `yaml:"formats"`
	} `yaml:"firecrawl"`

	Redis struct {
		URL        string        `yaml:"url"`
		Password   string        `yaml:"password"`
		DB         int           `yaml:"db"`
		Timeout    time.Duration `yaml:"timeout"`
		ProfileKey string        `yaml:"profile_key"`
	} `yaml:"redis"`

	Logging struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Auth.APIKeyHeader = "X-API-Key"

	config.RateLimit.Enabled = true
	config.RateLimit.RequestsPerSecond = 5
	config.RateLimit.Burst = 10

	config.LLM.Provider = "claude"
	config.LLM.Model = "claude-3-7-sonnet-latest"
	config.LLM.MaxTokens = 8192
	config.LLM.Temperature = 0.1
	config.LLM.Timeout = 120 * time.Second

	config.Apify.Actor = "apimaestro~linkedin-job-detail"
	config.Apify.BaseURL = "https://api.apify.com/v2"
	config.Apify.Timeout = 60 * time.Second

	config.Firecrawl.APIURL = "https://api.firecrawl.dev"
	config.Firecrawl.Timeout = 60 * time.Second
	config.Firecrawl.MaxRetries = 3
	config.Firecrawl.Formats = []string{"markdown"}

	config.Redis.URL = "redis://localhost:6379"
	config.Redis.Timeout = 5 * time.Second
	config.Redis.ProfileKey = "profile:primary"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			yamlContent := expandEnvVars(string(data))
			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if apiKey := os.Getenv("API_KEY"); apiKey != "" {
		c.Auth.APIKey = apiKey
	}

	if header := os.Getenv("API_KEY_HEADER"); header != "" {
		c.Auth.APIKeyHeader = header
	}

	if allowedIPs := os.Getenv("ALLOWED_IPS"); allowedIPs != "" {
		var ips []string
		for _, ip := range strings.Split(allowedIPs, ",") {
			if trimmed := strings.TrimSpace(ip); trimmed != "" {
				ips = append(ips, trimmed)
			}
		}
		c.Auth.AllowedIPs = ips
	}

	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		c.LLM.APIKey = apiKey
	}

	// ANTHROPIC_API_KEY is also honored for compatibility with the SDK default
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" && c.LLM.APIKey == "" {
		c.LLM.APIKey = apiKey
	}

	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		c.LLM.Provider = provider
	}

	if model := os.Getenv("LLM_MODEL"); model != "" {
		c.LLM.Model = model
	}

	if timeout := os.Getenv("LLM_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.LLM.Timeout = d
		}
	}

	if token := os.Getenv("APIFY_TOKEN"); token != "" {
		c.Apify.Token = token
	}

	if actor := os.Getenv("APIFY_ACTOR"); actor != "" {
		c.Apify.Actor = actor
	}

	if baseURL := os.Getenv("APIFY_BASE_URL"); baseURL != "" {
		c.Apify.BaseURL = baseURL
	}

	if apiKey := os.Getenv("FIRECRAWL_API_KEY"); apiKey != "" {
		c.Firecrawl.APIKey = apiKey
	}

	if apiURL := os.Getenv("FIRECRAWL_API_URL"); apiURL != "" {
		c.Firecrawl.APIURL = apiURL
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if profileKey := os.Getenv("PROFILE_KEY"); profileKey != "" {
		c.Redis.ProfileKey = profileKey
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}
}
