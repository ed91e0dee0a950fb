package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Data sources for the job snapshot
const (
	DataSourceMock     = "mock"
	DataSourceFile     = "file"
	DataSourceDatabase = "database"
)

type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Database  DatabaseConfig
	Log       LogConfig
	Dev       DevConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string
	Host string
	Env  string
}

// DataConfig selects where the job and company snapshot is loaded from
type DataConfig struct {
	Source string
	File   string
}

type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

type LogConfig struct {
	Level  string
	Format string
}

type DevConfig struct {
	AutoMigrate bool
	SeedData    bool
}

type CORSConfig struct {
	Origins     []string
	Credentials bool
}

type RateLimitConfig struct {
	Requests int
	Window   int
}

var Cfg *Config

func Load() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "localhost"),
			Env:  getEnv("ENV", "development"),
		},
		Data: DataConfig{
			Source: strings.ToLower(getEnv("DATA_SOURCE", DataSourceMock)),
			File:   getEnv("DATA_FILE", "./data/jobs.yaml"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "sqlite"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", "password"),
			Name:       getEnv("DB_NAME", "jobboard"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			SQLitePath: getEnv("SQLITE_PATH", "./data/jobboard.db"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Dev: DevConfig{
			AutoMigrate: parseBool(getEnv("AUTO_MIGRATE", "true")),
			SeedData:    parseBool(getEnv("SEED_DATA", "true")),
		},
		CORS: CORSConfig{
			Origins:     strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080"), ","),
			Credentials: parseBool(getEnv("CORS_CREDENTIALS", "true")),
		},
		RateLimit: RateLimitConfig{
			Requests: parseInt(getEnv("RATE_LIMIT_REQUESTS", "100")),
			Window:   parseInt(getEnv("RATE_LIMIT_WINDOW", "60")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	Cfg = cfg
	return nil
}

// Validate checks the values that cannot fall back to a sane default
func (c *Config) Validate() error {
	switch c.Data.Source {
	case DataSourceMock, DataSourceDatabase:
	case DataSourceFile:
		if c.Data.File == "" {
			return fmt.Errorf("DATA_FILE is required when DATA_SOURCE=%s", DataSourceFile)
		}
	default:
		return fmt.Errorf("unsupported data source: %s", c.Data.Source)
	}

	if c.RateLimit.Requests < 0 || c.RateLimit.Window < 0 {
		return fmt.Errorf("rate limit values must not be negative")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}

func (c *Config) GetDSN() string {
	switch c.Database.Driver {
	case "postgres":
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Database.Host,
			c.Database.Port,
			c.Database.User,
			c.Database.Password,
			c.Database.Name,
			c.Database.SSLMode,
		)
	case "sqlite":
		return c.Database.SQLitePath
	default:
		return c.Database.SQLitePath
	}
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}
