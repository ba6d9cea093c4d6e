package signals

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries environment-driven defaults for new signals, applied with
// WithConfig.
type Config struct {
	// DisableValidation turns off the registration-time signature check.
	// Disabling trades early mismatch detection for speed; keep it enabled
	// outside hot registration paths.
	DisableValidation bool `env:"SIGNALS_DISABLE_VALIDATION" envDefault:"false"`
}

var loadDotEnvOnce sync.Once

// LoadConfig parses Config from environment variables. A .env file in the
// working directory is loaded once per process if present.
//
// Example:
//
//	cfg, err := signals.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sig := signals.New([]string{"name", "value"}, signals.WithConfig(cfg))
func LoadConfig() (Config, error) {
	loadDotEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse signals config: %w", err)
	}
	return cfg, nil
}
