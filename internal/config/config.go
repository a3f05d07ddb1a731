package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	BankBaseURL    string
	BankTimeout    time.Duration
	KafkaBrokers   string
	APIKeys        string
	JaegerEndpoint string
}

func Load() *Config {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	bankBaseURL := os.Getenv("BANK_BASE_URL")
	if bankBaseURL == "" {
		bankBaseURL = "http://localhost:8080"
	}

	bankTimeout := 10 * time.Second
	if v := os.Getenv("BANK_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			bankTimeout = time.Duration(secs) * time.Second
		}
	}

	return &Config{
		Port:           port,
		BankBaseURL:    bankBaseURL,
		BankTimeout:    bankTimeout,
		KafkaBrokers:   os.Getenv("KAFKA_BROKERS"),
		APIKeys:        os.Getenv("API_KEYS"),
		JaegerEndpoint: os.Getenv("JAEGER_ENDPOINT"),
	}
}
