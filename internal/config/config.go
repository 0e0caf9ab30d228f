package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	Port                   string
	AllowOrigins           []string
	LogLevel               string
	LogFormat              string
	LogstashTCPAddr        string
	StoreDriver            string
	UserDestinationsFile   string
	DatabaseURL            string
	UnsplashAccessKey      string
	UnsplashAPIURL         string
	UnsplashTimeout        time.Duration
	ImageLookupConcurrency int
	StaticDir              string
	EnableSwagger          bool
	MinIOEndpoint          string
	MinIOAccessKey         string
	MinIOSecretKey         string
	MinIOUseSSL            bool
	MinIOBucketSnapshots   string
}

// SnapshotsEnabled reports whether user destination snapshots go to MinIO.
func (c Config) SnapshotsEnabled() bool {
	return c.MinIOEndpoint != ""
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}
	cfg, err := FromEnv()
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() (Config, error) {
	timeout := 5 * time.Second
	if v, err := time.ParseDuration(getenv("UNSPLASH_TIMEOUT", "5s")); err == nil && v > 0 {
		timeout = v
	}

	concurrency := 4
	if v, err := strconv.Atoi(getenv("IMAGE_LOOKUP_CONCURRENCY", "4")); err == nil && v > 0 {
		concurrency = v
	}

	driver := strings.ToLower(strings.TrimSpace(getenv("STORE_DRIVER", StoreDriverFile)))
	switch driver {
	case StoreDriverFile, StoreDriverPostgres:
	default:
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q", driver)
	}

	cfg := Config{
		Port:                   getenv("PORT", "3001"),
		AllowOrigins:           splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogLevel:               getenv("LOG_LEVEL", "info"),
		LogFormat:              getenv("LOG_FORMAT", "json"),
		LogstashTCPAddr:        getenv("LOGSTASH_TCP_ADDR", ""),
		StoreDriver:            driver,
		UserDestinationsFile:   getenv("USER_DESTINATIONS_FILE", "user-destinations.json"),
		DatabaseURL:            getenv("DATABASE_URL", ""),
		UnsplashAccessKey:      getenv("UNSPLASH_ACCESS_KEY", ""),
		UnsplashAPIURL:         getenv("UNSPLASH_API_URL", "https://api.unsplash.com"),
		UnsplashTimeout:        timeout,
		ImageLookupConcurrency: concurrency,
		StaticDir:              getenv("STATIC_DIR", "dist"),
		EnableSwagger:          getenv("ENABLE_SWAGGER", "true") == "true",
		MinIOEndpoint:          getenv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:         getenv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:         getenv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:            getenv("MINIO_USE_SSL", "false") == "true",
		MinIOBucketSnapshots:   getenv("MINIO_BUCKET_SNAPSHOTS", "travel-diary-snapshots"),
	}

	if cfg.StoreDriver == StoreDriverPostgres {
		v, err := require("DATABASE_URL")
		if err != nil {
			return Config{}, err
		}
		cfg.DatabaseURL = v
	}
	if cfg.SnapshotsEnabled() {
		for _, key := range []string{"MINIO_ACCESS_KEY", "MINIO_SECRET_KEY"} {
			if _, err := require(key); err != nil {
				return Config{}, err
			}
		}
	}
	return cfg, nil
}

// ClientConfig configures the command line client.
type ClientConfig struct {
	APIBaseURL string
	Timeout    time.Duration
	LogLevel   string
}

// LoadClient reads the client settings. A missing .env file is not reported.
func LoadClient() ClientConfig {
	_ = godotenv.Load()
	return ClientFromEnv()
}

func ClientFromEnv() ClientConfig {
	timeout := 10 * time.Second
	if v, err := time.ParseDuration(getenv("API_TIMEOUT", "10s")); err == nil && v > 0 {
		timeout = v
	}
	return ClientConfig{
		APIBaseURL: strings.TrimRight(getenv("API_BASE_URL", "http://localhost:3001"), "/"),
		Timeout:    timeout,
		LogLevel:   getenv("LOG_LEVEL", "info"),
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func require(k string) (string, error) {
	v := os.Getenv(k)
	if v == "" {
		return "", fmt.Errorf("missing env: %s", k)
	}
	return v, nil
}
