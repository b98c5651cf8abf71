package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type ShopAdsConfig struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	ShopAdsDB  `yaml:"shopads_db"`
	Redis      `yaml:"redis"`
	Kafka      `yaml:"kafka"`
	Razorpay   `yaml:"razorpay"`
	Ads        `yaml:"ads"`
	Sellers    `yaml:"sellers"`
	LogConfig  `yaml:"log_config"`
}

type HTTPServer struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8084"`
}

type ShopAdsDB struct {
	Dsn            string `yaml:"dsn" env:"SHOPADS_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path" env:"SHOPADS_MIGRATIONS_PATH"`
}

type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
}

type Kafka struct {
	Host string `yaml:"host" env:"KAFKA_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"KAFKA_PORT" env-default:"9092"`
}

type Razorpay struct {
	KeyID         string `yaml:"key_id" env:"RAZORPAY_KEY_ID"`
	KeySecret     string `yaml:"key_secret" env:"RAZORPAY_KEY_SECRET"`
	WebhookSecret string `yaml:"webhook_secret" env:"RAZORPAY_WEBHOOK_SECRET"`
}

type Ads struct {
	// MaxActiveAds is the hard per-day cap on the carousel.
	MaxActiveAds int     `yaml:"max_active_ads" env:"MAX_ACTIVE_ADS" env-default:"10"`
	PricePerDay  float64 `yaml:"price_per_day" env:"AD_PRICE_PER_DAY" env-default:"100"`
	Currency     string  `yaml:"currency" env:"AD_CURRENCY" env-default:"INR"`
}

type Sellers struct {
	Host string `yaml:"host" env:"SELLER_SERVICE_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"SELLER_SERVICE_PORT" env-default:"8081"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"json"`
}

func MustLoad() *ShopAdsConfig {
	configPath := os.Getenv("SHOPADS_CONFIG_PATH")

	var cfg ShopAdsConfig
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			log.Fatalf("failed to find config file: %v\n", err)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("failed to read config file: %v", err)
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to read config from env: %v", err)
	}

	return &cfg
}

func (c *ShopAdsConfig) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}
