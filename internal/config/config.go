package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	Env      string
	Port     int
	GinMode  string
	Database DatabaseConfig
	Log      LogConfig
}

type DatabaseConfig struct {
	Driver    string
	Path      string
	Host      string
	Port      int
	User      string
	Password  string
	Name      string
	LogLevel  string
	SeedUsers bool
}

type LogConfig struct {
	Level  string
	Format string
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// DSN builds the driver specific connection string.
func (d DatabaseConfig) DSN() string {
	switch d.Driver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.User, d.Password, d.Host, d.Port, d.Name)
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			d.Host, d.Port, d.User, d.Password, d.Name)
	default:
		return d.Path + "?_foreign_keys=on"
	}
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{
		Env:     v.GetString("ENV"),
		Port:    v.GetInt("PORT"),
		GinMode: v.GetString("GIN_MODE"),
		Database: DatabaseConfig{
			Driver:    strings.ToLower(v.GetString("DB_DRIVER")),
			Path:      v.GetString("DB_PATH"),
			Host:      v.GetString("DB_HOST"),
			Port:      v.GetInt("DB_PORT"),
			User:      v.GetString("DB_USER"),
			Password:  v.GetString("DB_PASSWORD"),
			Name:      v.GetString("DB_NAME"),
			LogLevel:  v.GetString("DB_LOG_LEVEL"),
			SeedUsers: v.GetBool("SEED_USERS"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	switch cfg.Database.Driver {
	case DriverSQLite:
	case DriverMySQL:
		if cfg.Database.Port == 0 {
			cfg.Database.Port = 3306
		}
	case DriverPostgres:
		if cfg.Database.Port == 0 {
			cfg.Database.Port = 5432
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_PATH", "app.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_USER", "taskuser")
	v.SetDefault("DB_PASSWORD", "taskpassword")
	v.SetDefault("DB_NAME", "assignments")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("SEED_USERS", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}
