package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // минуты
	} `yaml:"jwt"`

	// Razorpay заполняется ТОЛЬКО из переменных окружения.
	// KeySecret - серверный секрет для HMAC, не логируется и не сериализуется.
	Razorpay struct {
		KeyID     string `yaml:"-"`
		KeySecret string `yaml:"-"`
	} `yaml:"-"`

	Payments struct {
		Currency     string `yaml:"currency"`       // по умолчанию INR
		VerifyLockMS int    `yaml:"verify_lock_ms"` // TTL пер-аккаунтной блокировки
	} `yaml:"payments"`
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
	} else {
		// Режим теста/контейнера: конфигурация из переменных окружения
		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.JWT.TTL = 60
		cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	}

	applyDefaults(&cfg)

	// Секреты провайдера всегда берутся из окружения
	cfg.Razorpay.KeyID = os.Getenv("RAZORPAY_KEY_ID")
	cfg.Razorpay.KeySecret = os.Getenv("RAZORPAY_KEY_SECRET")

	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Payments.Currency == "" {
		cfg.Payments.Currency = "INR"
	}
	if cfg.Payments.VerifyLockMS == 0 {
		cfg.Payments.VerifyLockMS = 10000
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
