package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"hotel"`

	// Empty disables the broker; the service then logs instead of publishing.
	RabbitURL string `envconfig:"RABBITMQ_URL" default:""`

	MinimumDeposit        float64  `envconfig:"MINIMUM_DEPOSIT" default:"2000"`
	OnlinePaymentMethods  []string `envconfig:"ONLINE_PAYMENT_METHODS" default:"GCash,PayMaya,Credit Card"`
	VerificationCooldown  int      `envconfig:"VERIFICATION_COOLDOWN_SECONDS" default:"60"`
	VerificationExpiryMin int      `envconfig:"VERIFICATION_EXPIRY_MINUTES" default:"10"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env config: %w", err)
	}
	return cfg, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func NewLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
	return logger
}
