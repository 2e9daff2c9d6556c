// Package config loads the process configuration from the environment,
// after merging an optional .env file.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Mail providers accepted in MAIL_PROVIDER
const (
	MailPostmark = "postmark"
	MailSendGrid = "sendgrid"
	MailLog      = "log"
)

// Config is the whole runtime configuration
type Config struct {
	Port           string        `env:"PORT,default=8000"`
	MongoURI       string        `env:"MONGODB_URI,default=mongodb://localhost:27017"`
	MongoDatabase  string        `env:"MONGODB_DATABASE,default=fooddelivery"`
	JWTSecret      string        `env:"JWT_SECRET"`
	TokenTTL       time.Duration `env:"TOKEN_TTL,default=24h"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,default=5s"`
	LogLevel       string        `env:"LOG_LEVEL,default=info"`

	MailProvider     string `env:"MAIL_PROVIDER,default=log"`
	EmailSender      string `env:"EMAIL_SENDER"`
	PostmarkAPIToken string `env:"POSTMARK_API_TOKEN"`
	SendGridAPIKey   string `env:"SENDGRID_API_KEY"`
}

// Load reads .env files if present, then the environment. A missing .env is
// not an error.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decoding environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that have no usable default
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	switch c.MailProvider {
	case MailPostmark:
		if c.PostmarkAPIToken == "" {
			return errors.New("POSTMARK_API_TOKEN is not set")
		}
	case MailSendGrid:
		if c.SendGridAPIKey == "" {
			return errors.New("SENDGRID_API_KEY is not set")
		}
	case MailLog:
	default:
		return fmt.Errorf("unknown MAIL_PROVIDER %q", c.MailProvider)
	}
	if c.MailProvider != MailLog && c.EmailSender == "" {
		return errors.New("EMAIL_SENDER is not set")
	}
	return nil
}
