package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	RabbitMQ RabbitMQConfig
	CRM      CRMConfig
}

type ServerConfig struct {
	Port               string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// RabbitMQConfig: URL vazia desliga o broker e os eventos são tratados em processo.
type RabbitMQConfig struct {
	URL string
}

type CRMConfig struct {
	PageSize         int
	WarningThreshold float64
	SweepInterval    time.Duration
	SeedData         bool
}

func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Port:               v.GetString("SERVER_PORT"),
			CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			ShutdownTimeout:    v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		RabbitMQ: RabbitMQConfig{
			URL: v.GetString("RABBITMQ_URL"),
		},
		CRM: CRMConfig{
			PageSize:         v.GetInt("CRM_PAGE_SIZE"),
			WarningThreshold: v.GetFloat64("CRM_WARNING_THRESHOLD"),
			SweepInterval:    v.GetDuration("CRM_SWEEP_INTERVAL"),
			SeedData:         v.GetBool("CRM_SEED_DATA"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("CRM_PAGE_SIZE", 10)
	v.SetDefault("CRM_WARNING_THRESHOLD", 0.25)
	v.SetDefault("CRM_SWEEP_INTERVAL", "1m")
	v.SetDefault("CRM_SEED_DATA", true)
}

// .env é opcional; variáveis do ambiente continuam valendo.
func loadEnvFile() {
	for _, path := range []string{".env", "../.env", "../../.env"} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if cfg.CRM.PageSize <= 0 {
		return fmt.Errorf("CRM_PAGE_SIZE must be positive, got %d", cfg.CRM.PageSize)
	}
	if cfg.CRM.WarningThreshold <= 0 || cfg.CRM.WarningThreshold >= 1 {
		return fmt.Errorf("CRM_WARNING_THRESHOLD must be between 0 and 1, got %v", cfg.CRM.WarningThreshold)
	}
	if cfg.CRM.SweepInterval <= 0 {
		return fmt.Errorf("CRM_SWEEP_INTERVAL must be positive")
	}
	return nil
}
