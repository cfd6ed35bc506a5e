package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Twilio   TwilioConfig
	RabbitMQ RabbitMQConfig
	Mail     MailConfig
}

type ServerConfig struct {
	Address string
	// BaseURL is the public URL of this app, used to build the status
	// callback passed to the telephony provider.
	BaseURL string
}

type DatabaseConfig struct {
	URL string
}

type TwilioConfig struct {
	AccountSID string
	APIKey     string
	APISecret  string
	BaseURL    string
}

type RabbitMQConfig struct {
	// Empty URL disables the call-event queue entirely.
	URL string
}

type MailConfig struct {
	// Empty Host disables welcome emails.
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func LoadAll() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Address: getEnv("SERVER_ADDRESS", ":8080"),
			BaseURL: mustEnv("APP_BASE_URL"),
		},
		Database: DatabaseConfig{
			URL: mustEnv("DATABASE_URL"),
		},
		Twilio: TwilioConfig{
			AccountSID: mustEnv("TWILIO_ACCOUNT_SID"),
			APIKey:     mustEnv("TWILIO_API_KEY"),
			APISecret:  mustEnv("TWILIO_API_SECRET"),
			BaseURL:    getEnv("TWILIO_BASE_URL", "https://api.twilio.com"),
		},
		RabbitMQ: RabbitMQConfig{
			URL: os.Getenv("RABBITMQ_URL"),
		},
		Mail: MailConfig{
			Host:     os.Getenv("MAIL_HOST"),
			Port:     getEnvInt("MAIL_PORT", 587),
			User:     os.Getenv("MAIL_USER"),
			Password: os.Getenv("MAIL_PASS"),
			From:     getEnv("MAIL_FROM", "no-reply@liguecrm.com"),
		},
	}

	return cfg, nil
}

func mustEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("missing required env var: %s", key))
	}
	return val
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Sprintf("invalid int for env %s: %s", key, v))
	}
	return i
}
