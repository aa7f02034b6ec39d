package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type RaffleConfig struct {
	Env           string `yaml:"env"`
	HTTPServer    `yaml:"http_server"`
	MetricsServer `yaml:"metrics_server"`
	RaffleDB      `yaml:"raffle_db"`
	LogConfig     `yaml:"log_config"`
	KafkaService  `yaml:"kafka-service"`
	Auth          `yaml:"auth"`
	Notifier      `yaml:"notifier"`
	RateLimits    `yaml:"rate_limits"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type MetricsServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type RaffleDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host          string `yaml:"host"`
	Port          string `yaml:"port"`
	PurchaseTopic string `yaml:"purchase_topic"`
	RaffleTopic   string `yaml:"raffle_topic"`
}

type Auth struct {
	JWTSecret string        `yaml:"jwt_secret" env:"RAFFLE_JWT_SECRET"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

type Notifier struct {
	CallbackURL string `yaml:"callback_url"`
}

type RateLimits struct {
	PurchasePerMinute int `yaml:"purchase_per_minute"`
	LookupPerMinute   int `yaml:"lookup_per_minute"`
}

func MustLoad() *RaffleConfig {

	// Processing env config variable and file
	configPath := os.Getenv("RAFFLE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("RAFFLE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg RaffleConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	if cfg.RateLimits.PurchasePerMinute <= 0 {
		cfg.RateLimits.PurchasePerMinute = 8
	}
	if cfg.RateLimits.LookupPerMinute <= 0 {
		cfg.RateLimits.LookupPerMinute = 20
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = 12 * time.Hour
	}

	return &cfg
}
