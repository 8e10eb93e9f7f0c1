package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Gemini  GeminiConfig
	Fetcher FetcherConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Logger  LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DBConfig struct {
	// Path to the sqlite database file
	Path string
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	Timeout     time.Duration
	Temperature float64
}

type FetcherConfig struct {
	Timeout time.Duration
	// MinArticleLength is the minimum number of characters (after trimming)
	// an extracted article must have to be considered usable.
	MinArticleLength int
	// MaxArticleLength caps the text handed to the LLM, in runes.
	MaxArticleLength int
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type CacheConfig struct {
	// RecordTTL bounds how long a quiz record detail stays cached.
	// Records are immutable, so the TTL only limits memory usage.
	RecordTTL time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	setDefaults()

	// A missing config file is fine; defaults plus env cover everything.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		DB: DBConfig{
			Path: viper.GetString("db.path"),
		},
		Gemini: GeminiConfig{
			APIKey:      viper.GetString("gemini.api_key"),
			Model:       viper.GetString("gemini.model"),
			Timeout:     viper.GetDuration("gemini.timeout") * time.Second,
			Temperature: viper.GetFloat64("gemini.temperature"),
		},
		Fetcher: FetcherConfig{
			Timeout:          viper.GetDuration("fetcher.timeout") * time.Second,
			MinArticleLength: viper.GetInt("fetcher.min_article_length"),
			MaxArticleLength: viper.GetInt("fetcher.max_article_length"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Cache: CacheConfig{
			RecordTTL: viper.GetDuration("cache.record_ttl") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	// Override with environment variables if set
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		config.Gemini.APIKey = apiKey
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		config.Gemini.Model = model
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		config.DB.Path = dbPath
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = viper.GetInt("SERVER_PORT")
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.read_timeout", 120)
	viper.SetDefault("server.write_timeout", 120)
	viper.SetDefault("db.path", "./quiz_data.db")
	viper.SetDefault("gemini.model", "gemini-2.5-pro")
	viper.SetDefault("gemini.timeout", 90)
	viper.SetDefault("gemini.temperature", 0.3)
	viper.SetDefault("fetcher.timeout", 10)
	viper.SetDefault("fetcher.min_article_length", 200)
	viper.SetDefault("fetcher.max_article_length", 40000)
	viper.SetDefault("cache.record_ttl", 3600)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
}

// Validate fails fast on configuration the process cannot run without.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set")
	}
	if c.DB.Path == "" {
		return fmt.Errorf("db.path must not be empty")
	}
	return nil
}

// CacheEnabled reports whether the optional Redis record cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.Redis.Address != ""
}
