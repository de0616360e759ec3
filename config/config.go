package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Telegram struct {
		Token string
	}
	DB struct {
		Host         string
		Port         string
		User         string
		Password     string
		DBName       string
		SSLMode      string
		MaxOpenConns int
		MaxIdleConns int
		ConnLifetime time.Duration
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	AI struct {
		APIKey  string
		BaseURL string
		Model   string
	}
	API struct {
		BaseURL string
	}
	Server struct {
		Port string
	}
	CooldownTime    time.Duration
	ShutdownTimeout time.Duration
}

// Load loads the configuration from a config file if one is found,
// falling back to environment variables otherwise.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("../config")

	v.SetDefault("ShutdownTimeout", 10*time.Second)
	v.SetDefault("CooldownTime", 2*time.Second)
	v.SetDefault("AI.Model", "deepseek/deepseek-chat")
	v.SetDefault("AI.BaseURL", "https://openrouter.ai/api/v1")
	v.SetDefault("API.BaseURL", "http://localhost:8000")
	v.SetDefault("Server.Port", "8000")
	v.SetDefault("Redis.Addr", "localhost:6379")
	v.SetDefault("DB.MaxOpenConns", 20)
	v.SetDefault("DB.MaxIdleConns", 10)
	v.SetDefault("DB.ConnLifetime", 5*time.Minute)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// no config file, build everything from environment variables
		cfg := &Config{}
		cfg.Telegram.Token = os.Getenv("TELEGRAM_TOKEN")
		cfg.DB.Host = getEnvOr("DB_HOST", "localhost")
		cfg.DB.Port = getEnvOr("DB_PORT", "5432")
		cfg.DB.User = getEnvOr("DB_USER", "postgres")
		cfg.DB.Password = getEnvOr("DB_PASSWORD", "postgres")
		cfg.DB.DBName = getEnvOr("DB_NAME", "fit_coach")
		cfg.DB.SSLMode = getEnvOr("DB_SSL_MODE", "disable")
		cfg.DB.MaxOpenConns = 20
		cfg.DB.MaxIdleConns = 10
		cfg.DB.ConnLifetime = 5 * time.Minute
		cfg.Redis.Addr = getEnvOr("REDIS_ADDR", "localhost:6379")
		cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
		cfg.AI.APIKey = os.Getenv("AI_API_KEY")
		cfg.AI.BaseURL = getEnvOr("AI_BASE_URL", "https://openrouter.ai/api/v1")
		cfg.AI.Model = getEnvOr("AI_MODEL", "deepseek/deepseek-chat")
		cfg.API.BaseURL = getEnvOr("API_BASE_URL", "http://localhost:8000")
		cfg.Server.Port = getEnvOr("SERVER_PORT", "8000")
		cfg.CooldownTime = 2 * time.Second
		cfg.ShutdownTimeout = 10 * time.Second
		return cfg, nil
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func getEnvOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
