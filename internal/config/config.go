package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyUUID    = key("uuid")
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service    Service
	Postgres   ReadEnvDB
	Logger     Logger
	Platform   Platform
	Centrifuge Centrifuge
	Kafka      Kafka
	Metrics    Metrics
	Redis      Redis
	Storage    Storage
	Feed       Feed
}

type Service struct {
	Port string `env:"CHAT_SERVICE_PORT" env-default:"8080"`
	Name string `env:"CHAT_SERVICE_NAME" env-default:"team-chat-service"`
}

type ReadEnvDB struct {
	User     string `env:"CHAT_SERVICE_POSTGRES_USER"`
	Password string `env:"CHAT_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"CHAT_SERVICE_POSTGRES_DB"`
	Host     string `env:"CHAT_SERVICE_POSTGRES_HOST"`
	Port     string `env:"CHAT_SERVICE_POSTGRES_PORT"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Centrifuge struct {
	BaseURL   string        `env:"CENTRIFUGO_BASE_URL"`
	APIKey    string        `env:"CENTRIFUGO_API_KEY"`
	JWTSecret string        `env:"CENTRIFUGO_JWT_SECRET"`
	Timeout   time.Duration `env:"CENTRIFUGO_TIMEOUT" env-default:"5s"`
}

type Kafka struct {
	Host      string `env:"KAFKA_HOST"`
	Port      string `env:"KAFKA_PORT"`
	UserTopic string `env:"USER_UPDATE_TOPIC" env-default:"user-updates"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Redis struct {
	Addr     string `env:"CHAT_SERVICE_REDIS_ADDR" env-default:"localhost:6379"`
	Password string `env:"CHAT_SERVICE_REDIS_PASSWORD"`
	DB       int    `env:"CHAT_SERVICE_REDIS_DB" env-default:"0"`
}

type Storage struct {
	Endpoint   string        `env:"MINIO_ENDPOINT"`
	AccessKey  string        `env:"MINIO_ACCESS_KEY"`
	SecretKey  string        `env:"MINIO_SECRET_KEY"`
	Bucket     string        `env:"MINIO_BUCKET" env-default:"chat-attachments"`
	UseSSL     bool          `env:"MINIO_USE_SSL" env-default:"false"`
	PresignTTL time.Duration `env:"MINIO_PRESIGN_TTL" env-default:"1h"`
}

type Feed struct {
	PageSize          uint64 `env:"FEED_PAGE_SIZE" env-default:"20"`
	MaxPageSize       uint64 `env:"FEED_MAX_PAGE_SIZE" env-default:"100"`
	EnrichConcurrency int    `env:"FEED_ENRICH_CONCURRENCY" env-default:"8"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %s", err)
	}

	return cfg
}
