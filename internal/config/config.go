package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	S3        S3Config
	Import    ImportConfig
	Reconcile ReconcileConfig
	Notify    NotifyConfig
	Log       LogConfig
	CORS      CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds settings for archiving raw menu uploads.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// ImportConfig holds commit threshold and background worker settings.
type ImportConfig struct {
	SyncThreshold    int `mapstructure:"sync_threshold"`
	PollIntervalSecs int `mapstructure:"poll_interval_secs"`
	Concurrency      int `mapstructure:"concurrency"`
}

// ReconcileConfig holds reconciler tuning.
type ReconcileConfig struct {
	SimilarityThreshold float64 `mapstructure:"similarity_threshold"`
}

// NotifyConfig selects the import notification provider.
type NotifyConfig struct {
	Provider string `mapstructure:"provider"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the MENUFLOW_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MENUFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "menuflow")
	v.SetDefault("db.password", "menuflow_secret")
	v.SetDefault("db.name", "menuflow_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "menuflow-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 20)

	// Import defaults
	v.SetDefault("import.sync_threshold", 25)
	v.SetDefault("import.poll_interval_secs", 5)
	v.SetDefault("import.concurrency", 3)

	// Reconcile defaults
	v.SetDefault("reconcile.similarity_threshold", 0.80)

	// Notify defaults
	v.SetDefault("notify.provider", "log")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "MENUFLOW_SERVER_PORT",
		"server.read_timeout":            "MENUFLOW_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "MENUFLOW_SERVER_WRITE_TIMEOUT",
		"server.environment":             "MENUFLOW_SERVER_ENVIRONMENT",
		"db.host":                        "MENUFLOW_DB_HOST",
		"db.port":                        "MENUFLOW_DB_PORT",
		"db.user":                        "MENUFLOW_DB_USER",
		"db.password":                    "MENUFLOW_DB_PASSWORD",
		"db.name":                        "MENUFLOW_DB_NAME",
		"db.sslmode":                     "MENUFLOW_DB_SSLMODE",
		"db.max_open":                    "MENUFLOW_DB_MAX_OPEN",
		"db.max_idle":                    "MENUFLOW_DB_MAX_IDLE",
		"s3.region":                      "MENUFLOW_S3_REGION",
		"s3.bucket":                      "MENUFLOW_S3_BUCKET",
		"s3.endpoint":                    "MENUFLOW_S3_ENDPOINT",
		"s3.access_key":                  "MENUFLOW_S3_ACCESS_KEY",
		"s3.secret_key":                  "MENUFLOW_S3_SECRET_KEY",
		"s3.max_file_size_mb":            "MENUFLOW_S3_MAX_FILE_SIZE_MB",
		"import.sync_threshold":          "MENUFLOW_IMPORT_SYNC_THRESHOLD",
		"import.poll_interval_secs":      "MENUFLOW_IMPORT_POLL_INTERVAL_SECS",
		"import.concurrency":             "MENUFLOW_IMPORT_CONCURRENCY",
		"reconcile.similarity_threshold": "MENUFLOW_RECONCILE_SIMILARITY_THRESHOLD",
		"notify.provider":                "MENUFLOW_NOTIFY_PROVIDER",
		"log.level":                      "MENUFLOW_LOG_LEVEL",
		"log.format":                     "MENUFLOW_LOG_FORMAT",
		"cors.allowed_origins":           "MENUFLOW_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if MENUFLOW_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("MENUFLOW_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
	}
	cfg.Import = ImportConfig{
		SyncThreshold:    v.GetInt("import.sync_threshold"),
		PollIntervalSecs: v.GetInt("import.poll_interval_secs"),
		Concurrency:      v.GetInt("import.concurrency"),
	}
	cfg.Reconcile = ReconcileConfig{
		SimilarityThreshold: v.GetFloat64("reconcile.similarity_threshold"),
	}
	cfg.Notify = NotifyConfig{
		Provider: v.GetString("notify.provider"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	return cfg, nil
}
