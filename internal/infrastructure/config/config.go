package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Env        string
	Store      string
	HTTPServer HTTPServer
	Database   Database
	CORS       CORS
	Prometheus Prometheus
	Kafka      Kafka
	Tracing    Tracing
}

type HTTPServer struct {
	Address           string
	Port              int
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

type Database struct {
	Username    string
	Password    string
	Host        string
	Port        string
	DbName      string
	SSLMode     string
	MaxConns    int32
	AutoMigrate bool
}

type CORS struct {
	AllowedOrigins []string
}

type Prometheus struct {
	Address string
	Port    int
}

type Kafka struct {
	Brokers        []string
	Topic          string
	RequiredAcks   string
	PublishTimeout time.Duration
}

type Tracing struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
	SampleRatio float64
}

var devOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
	"https://localhost:3000",
	"https://localhost:5173",
	"https://127.0.0.1:3000",
	"https://127.0.0.1:5173",
}

func (d Database) DSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(d.Username),
		url.QueryEscape(d.Password),
		d.Host,
		d.Port,
		d.DbName,
		d.SSLMode)
}

// MigrateURL is the DSN in the scheme golang-migrate's pgx/v5 driver registers.
func (d Database) MigrateURL() string {
	return "pgx5" + strings.TrimPrefix(d.DSN(), "postgresql")
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Printf("Error loading config: %s", err)
		os.Exit(1)
	}
	return cfg
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("http_server.port", "HTTP_SERVER_PORT", "PORT")
	_ = v.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS", "CORS_ORIGIN")

	v.SetDefault("env", "dev")
	v.SetDefault("store", StorePostgres)

	v.SetDefault("http_server.address", "0.0.0.0")
	v.SetDefault("http_server.port", 3001)
	v.SetDefault("http_server.read_header_timeout", 10*time.Second)
	v.SetDefault("http_server.shutdown_timeout", 30*time.Second)

	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "admin")
	v.SetDefault("database.host", "blog-db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.db_name", "blog")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("cors.allowed_origins", []string{})

	v.SetDefault("prometheus.address", "0.0.0.0")
	v.SetDefault("prometheus.port", 9103)

	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "blog.events")
	v.SetDefault("kafka.required_acks", "one")
	v.SetDefault("kafka.publish_timeout", 5*time.Second)

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "otel-collector:4318")
	v.SetDefault("tracing.service_name", "blog-service")
	v.SetDefault("tracing.sample_ratio", 1.0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		Env:   v.GetString("env"),
		Store: v.GetString("store"),
		HTTPServer: HTTPServer{
			Address:           v.GetString("http_server.address"),
			Port:              v.GetInt("http_server.port"),
			ReadHeaderTimeout: v.GetDuration("http_server.read_header_timeout"),
			ShutdownTimeout:   v.GetDuration("http_server.shutdown_timeout"),
		},
		Database: Database{
			Username:    v.GetString("database.username"),
			Password:    v.GetString("database.password"),
			Host:        v.GetString("database.host"),
			Port:        v.GetString("database.port"),
			DbName:      v.GetString("database.db_name"),
			SSLMode:     v.GetString("database.ssl_mode"),
			MaxConns:    v.GetInt32("database.max_conns"),
			AutoMigrate: v.GetBool("database.auto_migrate"),
		},
		Prometheus: Prometheus{
			Address: v.GetString("prometheus.address"),
			Port:    v.GetInt("prometheus.port"),
		},
		Kafka: Kafka{
			Brokers:        splitList(v.GetStringSlice("kafka.brokers")),
			Topic:          v.GetString("kafka.topic"),
			RequiredAcks:   v.GetString("kafka.required_acks"),
			PublishTimeout: v.GetDuration("kafka.publish_timeout"),
		},
		Tracing: Tracing{
			Enabled:     v.GetBool("tracing.enabled"),
			Endpoint:    v.GetString("tracing.endpoint"),
			ServiceName: v.GetString("tracing.service_name"),
			SampleRatio: v.GetFloat64("tracing.sample_ratio"),
		},
	}

	cfg.CORS = CORS{AllowedOrigins: allowedOrigins(cfg.Env, splitList(v.GetStringSlice("cors.allowed_origins")))}

	if cfg.Store != StorePostgres && cfg.Store != StoreMemory {
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "prod"
}

func allowedOrigins(env string, configured []string) []string {
	if env == "prod" {
		return configured
	}
	origins := make([]string, 0, len(devOrigins)+len(configured))
	origins = append(origins, devOrigins...)
	return append(origins, configured...)
}

// splitList flattens comma separated entries, which is how lists arrive from the environment.
func splitList(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}
