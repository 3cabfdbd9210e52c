package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/grachmannico95/codes-bot/internal/domain"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Worker   WorkerConfig
	Logging  LoggingConfig
	EventBus EventBusConfig
	Catalog  CatalogConfig
	Upload   UploadConfig
	Codes    CodesConfig
	Batch    BatchConfig
	Result   ResultConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
}

type WorkerConfig struct {
	PoolSize   int
	MaxRetries int
}

type LoggingConfig struct {
	Level string
}

type EventBusConfig struct {
	ChannelBufferSize int
}

type CatalogConfig struct {
	FilePath      string
	CacheTTL      time.Duration
	CacheStrategy string
	ArticleColumn string
	BarcodeColumn string
	ScanPolicy    domain.ScanPolicy
}

type UploadConfig struct {
	TempDir           string
	AllowedExtensions []string
	MaxSize           string
}

type CodesConfig struct {
	Column     string
	ScanPolicy domain.ScanPolicy
}

type BatchConfig struct {
	Timeout time.Duration
}

type ResultConfig struct {
	Format domain.ResultFormat
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Worker: WorkerConfig{
			PoolSize:   getIntEnv("WORKER_POOL_SIZE", 10),
			MaxRetries: getIntEnv("MAX_RETRIES", 5),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		EventBus: EventBusConfig{
			ChannelBufferSize: getIntEnv("EVENT_CHANNEL_BUFFER_SIZE", 1000),
		},
		Catalog: CatalogConfig{
			FilePath:      getEnv("CATALOG_FILE_PATH", "catalog.xlsx"),
			CacheTTL:      time.Duration(getIntEnv("CATALOG_CACHE_TTL", 28800)) * time.Second,
			CacheStrategy: getEnv("CACHE_STRATEGY", "memory"),
			ArticleColumn: getEnv("CATALOG_ARTICLE_COLUMN", "A"),
			BarcodeColumn: getEnv("CATALOG_BARCODE_COLUMN", "F"),
			ScanPolicy:    getPolicyEnv("CATALOG_SCAN_POLICY", domain.ScanPolicySkipEmpty),
		},
		Upload: UploadConfig{
			TempDir:           getEnv("TEMP_DIR", os.TempDir()),
			AllowedExtensions: getListEnv("ALLOWED_EXTENSIONS", []string{".xlsx", ".xls"}),
			MaxSize:           getEnv("MAX_UPLOAD_SIZE", "20M"),
		},
		Codes: CodesConfig{
			Column:     getEnv("SOURCE_CODE_COLUMN", "B"),
			ScanPolicy: getPolicyEnv("CODES_SCAN_POLICY", domain.ScanPolicySkipEmpty),
		},
		Batch: BatchConfig{
			Timeout: getDurationEnv("BATCH_TIMEOUT", 3*time.Second),
		},
		Result: ResultConfig{
			Format: domain.ResultFormat(getEnv("RESULT_FORMAT", string(domain.ResultFormatText))),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getListEnv(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}

	return values
}

func getPolicyEnv(key string, defaultValue domain.ScanPolicy) domain.ScanPolicy {
	policy := domain.ScanPolicy(os.Getenv(key))
	if policy == "" {
		return defaultValue
	}
	if !policy.Valid() {
		log.Printf("Invalid scan policy for %s: %s, using default: %s", key, policy, defaultValue)
		return defaultValue
	}
	return policy
}
