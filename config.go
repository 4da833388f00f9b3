package auth

import (
	"os"

	validation "github.com/go-ozzo/ozzo-validation"
)

// EnvConfig sources the auth configuration from the process environment.
// SESSION_SECRET is the session signing key and is required; GO_ENV toggles
// production mode, which only affects the Secure cookie attribute.
type EnvConfig struct {
	SigningKey      string
	Environment     string
	SessionDuration int // hours
}

var _ Config = (*EnvConfig)(nil)

// NewConfigFromEnv loads and validates the environment configuration. A
// missing signing key is a fatal startup error, not something to recover
// from at request time.
func NewConfigFromEnv() (*EnvConfig, error) {
	cfg := &EnvConfig{
		SigningKey:  os.Getenv("SESSION_SECRET"),
		Environment: os.Getenv("GO_ENV"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate will run validation rules
func (c *EnvConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(
			&c.SigningKey,
			validation.Required.Error(ErrMissingSigningKey.Error()),
		),
		validation.Field(
			&c.SessionDuration,
			validation.Min(0),
		),
	)
}

func (c *EnvConfig) GetSigningKey() string {
	return c.SigningKey
}

func (c *EnvConfig) GetSessionDuration() int {
	return c.SessionDuration
}

func (c *EnvConfig) IsProduction() bool {
	return c.Environment == "production"
}
