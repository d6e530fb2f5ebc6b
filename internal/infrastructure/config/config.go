package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type TracingConfig struct {
	Endpoint string
	Insecure bool
}

type Config struct {
	GRPCPort    int
	HTTPPort    int
	DB          DatabaseConfig
	Kafka       KafkaConfig
	Tracing     TracingConfig
	LogLevel    string
	LogFormat   string
	ServiceName string
}

func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
}

func Load() Config {
	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9094),
		HTTPPort: getEnvInt("HTTP_PORT", 8094),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "givebridge"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "givebridge_pledge"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   getEnv("KAFKA_TOPIC", "crm.pledge.events"),
		},
		Tracing: TracingConfig{
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure: getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", true),
		},
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		ServiceName: "pledge-service",
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
