package vidnavigator

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config captures client construction settings from the environment.
// Variables carry the prefix VIDNAVIGATOR_, e.g. VIDNAVIGATOR_API_KEY,
// VIDNAVIGATOR_BASE_URL, VIDNAVIGATOR_TIMEOUT.
type Config struct {
	APIKey     string        `envconfig:"API_KEY"`
	BaseURL    string        `envconfig:"BASE_URL" default:"https://api.vidnavigator.com/v1"`
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"30s"`
	MaxRetries int           `envconfig:"MAX_RETRIES" default:"3"`
	Debug      bool          `envconfig:"DEBUG" default:"false"`
}

// LoadConfig populates Config from environment variables (prefix
// VIDNAVIGATOR_). Unset variables keep their defaults.
func LoadConfig() (Config, error) {
	var c Config
	if err := envconfig.Process("VIDNAVIGATOR", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
