// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configPath = pflag.String("config", "config.toml", "Path to the TOML config file")

	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDrivers   = []string{"sqlite", "postgres"}
	validHashers   = []string{"argon2id", "bcrypt"}
	validCaches    = []string{"none", "memory", "redis"}
	validJWTAlgs   = []string{"HS256", "HS384", "HS512"}
)

// ErrNoJWTSecret is returned when no signing secret has been configured.
// A secret is never compiled into the binary.
var ErrNoJWTSecret = errors.New("no jwt secret provided")

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Host     HostConfig     `mapstructure:"host"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Security SecurityConfig `mapstructure:"security"`
	Cache    CacheConfig    `mapstructure:"cache"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	LogLevel string `mapstructure:"log_level"`
}

type HostConfig struct {
	Port int      `mapstructure:"port"`
	CORS []string `mapstructure:"cors"`
}

type DatabaseConfig struct {
	Driver     string `mapstructure:"driver"`
	DSN        string `mapstructure:"dsn"`
	SeedStyles bool   `mapstructure:"seed_styles"`
}

type JWTConfig struct {
	Secret    string        `mapstructure:"secret"`
	Algorithm string        `mapstructure:"algorithm"`
	TTL       time.Duration `mapstructure:"ttl"`
}

type SecurityConfig struct {
	PasswordHasher string `mapstructure:"password_hasher"`
	BcryptCost     int    `mapstructure:"bcrypt_cost"`
	RateLimit      int    `mapstructure:"rate_limit"` // Requests per second per IP, 0 disables
}

type CacheConfig struct {
	Type          string        `mapstructure:"type"`
	TTL           time.Duration `mapstructure:"ttl"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
}

func genSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Setup prepares everything config-related so that the app can
// start working. Values are read from a .env file, the TOML config
// file and the environment, in increasing order of priority.
func Setup() (*Config, error) {
	pflag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file, %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(*configPath)

	if _, err := os.Stat(*configPath); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file, %w", err)
		}
	}

	c, err := Load(v)
	if errors.Is(err, ErrNoJWTSecret) {
		fmt.Println("WARNING: You haven't set a JWT secret. Please set JWT_SECRET as an environment variable or jwt.secret in the config file.\nRandom secret you can use:\n\n" + genSecret() + "\n")
	}

	return c, err
}

// Load binds environment variables and defaults onto v, then decodes
// and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	//
	// ENVS
	//
	v.BindEnv("app.name", "APP_NAME")
	v.BindEnv("app.log_level", "APP_LOG_LEVEL")

	v.BindEnv("host.port", "HOST_PORT")
	v.BindEnv("host.cors", "HOST_CORS")

	v.BindEnv("database.driver", "DATABASE_DRIVER")
	v.BindEnv("database.dsn", "DATABASE_DSN")
	v.BindEnv("database.seed_styles", "DATABASE_SEED_STYLES")

	v.BindEnv("jwt.secret", "JWT_SECRET")
	v.BindEnv("jwt.algorithm", "JWT_ALGORITHM")
	v.BindEnv("jwt.ttl", "JWT_TTL")

	v.BindEnv("security.password_hasher", "SECURITY_PASSWORD_HASHER")
	v.BindEnv("security.bcrypt_cost", "SECURITY_BCRYPT_COST")
	v.BindEnv("security.rate_limit", "SECURITY_RATE_LIMIT")

	v.BindEnv("cache.type", "CACHE_TYPE")
	v.BindEnv("cache.ttl", "CACHE_TTL")
	v.BindEnv("cache.redis_addr", "CACHE_REDIS_ADDR")
	v.BindEnv("cache.redis_password", "CACHE_REDIS_PASSWORD")
	v.BindEnv("cache.redis_db", "CACHE_REDIS_DB")

	//
	// Defaults
	//
	v.SetDefault("app.name", "Dance Partner Finder API")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.cors", []string{"http://localhost:5173"})

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "dance_app.db")
	v.SetDefault("database.seed_styles", false)

	v.SetDefault("jwt.algorithm", "HS256")
	v.SetDefault("jwt.ttl", 30*time.Minute)

	v.SetDefault("security.password_hasher", "argon2id")
	v.SetDefault("security.bcrypt_cost", 12)
	v.SetDefault("security.rate_limit", 20)

	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", 30*time.Second)
	v.SetDefault("cache.redis_addr", "localhost:6379")

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to decode config, %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) validate() error {
	if !slices.Contains(validLogLevels, c.App.LogLevel) {
		return errors.New("invalid log level provided")
	}

	if c.Host.Port <= 0 || c.Host.Port > 65535 {
		return errors.New("invalid port provided")
	}

	if !slices.Contains(validDrivers, c.Database.Driver) {
		return errors.New("invalid database driver provided")
	}

	if c.Database.DSN == "" {
		return errors.New("database dsn can't be empty")
	}

	if c.JWT.Secret == "" {
		return ErrNoJWTSecret
	}

	if !slices.Contains(validJWTAlgs, c.JWT.Algorithm) {
		return errors.New("invalid jwt algorithm provided, only HMAC algorithms are supported")
	}

	if c.JWT.TTL <= 0 {
		return errors.New("jwt.ttl must be bigger than 0")
	}

	if !slices.Contains(validHashers, c.Security.PasswordHasher) {
		return errors.New("invalid password hasher provided")
	}

	if c.Security.PasswordHasher == "bcrypt" && (c.Security.BcryptCost < 4 || c.Security.BcryptCost > 31) {
		return errors.New("security.bcrypt_cost must be between 4 and 31")
	}

	if c.Security.RateLimit < 0 {
		return errors.New("security.rate_limit can't be negative")
	}

	if !slices.Contains(validCaches, c.Cache.Type) {
		return errors.New("invalid cache type provided")
	}

	if c.Cache.Type != "none" && c.Cache.TTL <= 0 {
		return errors.New("cache.ttl must be bigger than 0")
	}

	if c.Cache.Type == "redis" && c.Cache.RedisAddr == "" {
		return errors.New("redis address can't be empty")
	}

	return nil
}
