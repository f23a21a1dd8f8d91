// Package whatsapp is the public surface of the SDK: configuration, the Bot
// transport client, inbound message decoding and the webhook server.
package whatsapp

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL    = "https://graph.facebook.com"
	defaultAPIVersion = "v17.0"
)

// Config carries the credentials and options for the WhatsApp Cloud API. It
// is constructed once at startup and passed into NewBot; the SDK keeps no
// ambient global state.
type Config struct {
	AccessToken   string
	PhoneNumberID string
	APIVersion    string
	VerifyToken   string
	BaseURL       string
}

// ConfigFromEnv materializes a Config from environment variables, optionally
// loading the provided .env file first.
func ConfigFromEnv(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from the
		// environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		AccessToken:   os.Getenv("CLOUD_API_ACCESS_TOKEN"),
		PhoneNumberID: os.Getenv("WA_PHONE_NUMBER_ID"),
		APIVersion:    getenvWithDefault("WA_VERSION", defaultAPIVersion),
		VerifyToken:   os.Getenv("WA_VERIFY_TOKEN"),
		BaseURL:       getenvWithDefault("WA_BASE_URL", defaultBaseURL),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures the fields required for sending are populated and fills
// defaults for the optional ones. The verify token is only needed by the
// webhook server and is checked there.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	switch {
	case c.AccessToken == "":
		return errors.New("CLOUD_API_ACCESS_TOKEN must be provided")
	case c.PhoneNumberID == "":
		return errors.New("WA_PHONE_NUMBER_ID must be provided")
	}

	if c.APIVersion == "" {
		c.APIVersion = defaultAPIVersion
	}
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
