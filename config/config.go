package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// MongoDB. DATABASE_URL wins over the DB_USER/DB_PASS/DB_CLUSTER triple.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBUser      string `mapstructure:"DB_USER"`
	DBPass      string `mapstructure:"DB_PASS"`
	DBCluster   string `mapstructure:"DB_CLUSTER"`
	DBName      string `mapstructure:"DB_NAME"`
	Storage     string `mapstructure:"STORAGE"`

	// Tokens.
	AccessTokenSecret string        `mapstructure:"ACCESS_TOKEN_SECRET"`
	TokenTTL          time.Duration `mapstructure:"TOKEN_TTL"`

	// Redis role cache. Disabled when RedisAddr is empty.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Endpoint variants.
	ServiceListProjection string `mapstructure:"SERVICE_LIST_PROJECTION"`
	AdminPromotionGuard   bool   `mapstructure:"ADMIN_PROMOTION_GUARD"`
	// UserUpsertStripRole ignores a role sent to PUT /user/:email.
	UserUpsertStripRole bool `mapstructure:"USER_UPSERT_STRIP_ROLE"`
}

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"

	ProjectionName = "name"
	ProjectionFull = "full"
)

// LoadConfig reads .env, an optional config.yaml and the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_USER", "")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_CLUSTER", "")
	v.SetDefault("DB_NAME", "doctors_portal")
	v.SetDefault("STORAGE", StorageMongo)
	v.SetDefault("ACCESS_TOKEN_SECRET", "")
	v.SetDefault("TOKEN_TTL", "1h")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SERVICE_LIST_PROJECTION", ProjectionName)
	v.SetDefault("ADMIN_PROMOTION_GUARD", true)
	v.SetDefault("USER_UPSERT_STRIP_ROLE", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the values the server cannot start without.
func (c *Config) Validate() error {
	if c.AccessTokenSecret == "" {
		return errors.New("ACCESS_TOKEN_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	switch c.Storage {
	case StorageMongo, StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE %q", c.Storage)
	}
	switch c.ServiceListProjection {
	case ProjectionName, ProjectionFull:
	default:
		return fmt.Errorf("unknown SERVICE_LIST_PROJECTION %q", c.ServiceListProjection)
	}
	return nil
}

// MongoURI builds the connection string.
func (c *Config) MongoURI() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DBUser != "" && c.DBCluster != "" {
		return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
			url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPass), c.DBCluster)
	}
	return "mongodb://localhost:27017"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}
