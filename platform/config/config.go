// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Asset source identifiers accepted by ASSET_SOURCE.
const (
	AssetSourceFile  = "file"
	AssetSourceHTTP  = "http"
	AssetSourceMinIO = "minio"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
	GetStaticDir() string
}

// RateLimitConfig provides settings for the public API rate limiter.
type RateLimitConfig interface {
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// AssetConfig provides settings for the text asset store.
type AssetConfig interface {
	GetAssetSource() string
	GetAssetDir() string
	GetAssetBaseURL() string
	GetAssetTimeout() time.Duration
	GetCityListFile() string
	GetStationDirectoryFile() string
	GetAddressFileSuffix() string
}

// MinIOConfig provides settings for MinIO S3-compatible storage.
type MinIOConfig interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinioBucketAssets() string
	IsMinIOEnabled() bool
}

// SessionConfig provides settings for selection session storage.
type SessionConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetSessionTTL() time.Duration
}

// StationConfig provides settings for station resolution.
type StationConfig interface {
	GetStationFallbackFile() string
	GetPhoneRegion() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                  string
	HTTPAddr             string
	CORSAllowAll         bool
	CORSOrigins          []string
	CORSAllowCreds       bool
	StaticDir            string
	RateLimitRPS         float64
	RateLimitBurst       int
	AssetSource          string
	AssetDir             string
	AssetBaseURL         string
	AssetTimeout         time.Duration
	CityListFile         string
	StationDirectoryFile string
	AddressFileSuffix    string
	MinIOEndpoint        string
	MinIOAccessKey       string
	MinIOSecretKey       string
	MinIOUseSSL          bool
	MinioBucketAssets    string
	RedisURL             string
	RedisTLSInsecure     bool
	SessionTTL           time.Duration
	StationFallbackFile  string
	PhoneRegion          string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }
func (c *Config) GetStaticDir() string     { return c.StaticDir }

// RateLimitConfig implementation
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }

// AssetConfig implementation
func (c *Config) GetAssetSource() string          { return c.AssetSource }
func (c *Config) GetAssetDir() string             { return c.AssetDir }
func (c *Config) GetAssetBaseURL() string         { return c.AssetBaseURL }
func (c *Config) GetAssetTimeout() time.Duration  { return c.AssetTimeout }
func (c *Config) GetCityListFile() string         { return c.CityListFile }
func (c *Config) GetStationDirectoryFile() string { return c.StationDirectoryFile }
func (c *Config) GetAddressFileSuffix() string    { return c.AddressFileSuffix }

// MinIOConfig implementation
func (c *Config) GetMinIOEndpoint() string     { return c.MinIOEndpoint }
func (c *Config) GetMinIOAccessKey() string    { return c.MinIOAccessKey }
func (c *Config) GetMinIOSecretKey() string    { return c.MinIOSecretKey }
func (c *Config) GetMinIOUseSSL() bool         { return c.MinIOUseSSL }
func (c *Config) GetMinioBucketAssets() string { return c.MinioBucketAssets }
func (c *Config) IsMinIOEnabled() bool         { return c.MinIOEndpoint != "" }

// SessionConfig implementation
func (c *Config) GetRedisURL() string          { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool    { return c.RedisTLSInsecure }
func (c *Config) GetSessionTTL() time.Duration { return c.SessionTTL }

// StationConfig implementation
func (c *Config) GetStationFallbackFile() string { return c.StationFallbackFile }
func (c *Config) GetPhoneRegion() string         { return c.PhoneRegion }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                  getEnv("APP_ENV", "development"),
		HTTPAddr:             getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:         corsAllowAll,
		CORSOrigins:          corsOrigins,
		CORSAllowCreds:       strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		StaticDir:            getEnv("STATIC_DIR", ""),
		RateLimitRPS:         mustFloat(getEnv("RATE_LIMIT_RPS", "20")),
		RateLimitBurst:       mustInt(getEnv("RATE_LIMIT_BURST", "40")),
		AssetSource:          strings.ToLower(getEnv("ASSET_SOURCE", AssetSourceFile)),
		AssetDir:             getEnv("ASSET_DIR", "./assets"),
		AssetBaseURL:         strings.TrimRight(getEnv("ASSET_BASE_URL", ""), "/"),
		AssetTimeout:         mustDuration(getEnv("ASSET_TIMEOUT", "10s")),
		CityListFile:         getEnv("ASSET_CITY_LIST", "cityList.txt"),
		StationDirectoryFile: getEnv("ASSET_STATION_DIRECTORY", "VCStationPhoneNumbers.txt"),
		AddressFileSuffix:    getEnv("ASSET_ADDRESS_SUFFIX", "_Address.txt"),
		MinIOEndpoint:        getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:       getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:       getEnv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:          strings.EqualFold(getEnv("MINIO_USE_SSL", "false"), "true"),
		MinioBucketAssets:    getEnv("MINIO_BUCKET_ASSETS", "station-assets"),
		RedisURL:             getEnv("REDIS_URL", ""),
		RedisTLSInsecure:     strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		SessionTTL:           mustDuration(getEnv("SESSION_TTL", "30m")),
		StationFallbackFile:  getEnv("STATION_FALLBACK_FILE", ""),
		PhoneRegion:          strings.ToUpper(getEnv("PHONE_REGION", "US")),
	}

	switch cfg.AssetSource {
	case AssetSourceFile:
		if cfg.AssetDir == "" {
			return nil, fmt.Errorf("ASSET_DIR is required when ASSET_SOURCE is file")
		}
	case AssetSourceHTTP:
		if cfg.AssetBaseURL == "" {
			return nil, fmt.Errorf("ASSET_BASE_URL is required when ASSET_SOURCE is http")
		}
	case AssetSourceMinIO:
		if !cfg.IsMinIOEnabled() || cfg.MinioBucketAssets == "" {
			return nil, fmt.Errorf("MINIO_ENDPOINT and MINIO_BUCKET_ASSETS are required when ASSET_SOURCE is minio")
		}
	default:
		return nil, fmt.Errorf("unknown ASSET_SOURCE %q (expected file, http or minio)", cfg.AssetSource)
	}
	if cfg.AssetTimeout <= 0 {
		return nil, fmt.Errorf("ASSET_TIMEOUT must be a positive duration")
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be a positive duration")
	}
	// The router allows every origin when none are listed.
	if cfg.CORSAllowCreds && (cfg.CORSAllowAll || len(cfg.CORSOrigins) == 0) {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS requires an explicit CORS_ORIGINS list")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
