package jwtmw

import (
	"time"

	"mf_backend/internal/platform/config"
)

// EnvKeyJWTSecret is the environment variable holding the signing secret.
const EnvKeyJWTSecret = "JWT_SECRET"

// Config holds token settings.
type Config struct {
	Secret     string        `env:"JWT_SECRET,required,notEmpty"`
	Expiration time.Duration `env:"JWT_EXPIRATION" envDefault:"168h"`
}

// LoadConfig reads token settings from the environment.
// It fails when JWT_SECRET is unset or empty.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
