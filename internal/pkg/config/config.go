package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo      MongoConfig
	Redis      RedisConfig
	Prediction PredictionConfig
	SMS        SMSConfig

	ReminderWorkers int `env:"REMINDER_WORKERS, default=4"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=afya_kuu"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type PredictionConfig struct {
	URL            string `env:"PREDICTION_URL,             default=http://localhost:5001"`
	TimeoutSeconds int    `env:"PREDICTION_TIMEOUT_SECONDS, default=10"`
}

type SMSConfig struct {
	APIKey   string `env:"SMS_API_KEY,   default=demo_key"`
	Username string `env:"SMS_USERNAME,  default=sandbox"`
	SenderID string `env:"SMS_SENDER_ID, default=AFYA_KUU"`
	BaseURL  string `env:"SMS_BASE_URL,  default=https://api.sandbox.africastalking.com/version1/messaging"`
	DemoMode bool   `env:"SMS_DEMO_MODE, default=true"`
}

// IsProduction reports whether the service runs with production settings
// (Secure cookies, JSON logs).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
