package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	PublicURL  string
}

// JWTKeys holds the on-disk locations of the two RSA key pairs. Access and
// refresh tokens are signed with independent keys.
type JWTKeys struct {
	AccessPrivateKeyPath  string
	AccessPublicKeyPath   string
	RefreshPrivateKeyPath string
	RefreshPublicKeyPath  string
}

type Config struct {
	ServerPort           int
	DB                   DB
	MinIO                MinIO
	JWTKeys              JWTKeys
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
	RequestTimeout       time.Duration
	MaxUploadSize        int64
	MaxImportRows        int
	LogLevel             string
	LogFormat            string
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 10 * 1024 * 1024
	}
	return size
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "eventhub"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "event-images"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		PublicURL:  getEnv("MINIO_PUBLIC_URL", "http://localhost:9000"),
	}
}

func LoadJWTKeys() JWTKeys {
	return JWTKeys{
		AccessPrivateKeyPath:  getEnv("JWT_ACCESS_PRIVATE_KEY", "keys/access.pem"),
		AccessPublicKeyPath:   getEnv("JWT_ACCESS_PUBLIC_KEY", "keys/access.pub.pem"),
		RefreshPrivateKeyPath: getEnv("JWT_REFRESH_PRIVATE_KEY", "keys/refresh.pem"),
		RefreshPublicKeyPath:  getEnv("JWT_REFRESH_PUBLIC_KEY", "keys/refresh.pub.pem"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:           getEnvAsInt("SERVER_PORT", 8080),
		DB:                   LoadDB(),
		MinIO:                LoadMinIO(),
		JWTKeys:              LoadJWTKeys(),
		AccessTokenDuration:  parseDuration(getEnv("ACCESS_TOKEN_DURATION", "1h"), time.Hour),
		RefreshTokenDuration: parseDuration(getEnv("REFRESH_TOKEN_DURATION", "12h"), 12*time.Hour),
		RequestTimeout:       parseDuration(getEnv("REQUEST_TIMEOUT", "30s"), 30*time.Second),
		MaxUploadSize:        parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
		MaxImportRows:        getEnvAsInt("MAX_IMPORT_ROWS", 1000),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "json"),
	}
}
