package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	APIPort     string `env:"API_PORT" envDefault:"8080"`
	MetricsPort string `env:"METRICS_PORT" envDefault:"9090"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	ModelBackend  string `env:"MODEL_BACKEND" envDefault:"artifact"`
	ModelDir      string `env:"MODEL_DIR" envDefault:"./models"`
	ModelArtifact string `env:"MODEL_ARTIFACT" envDefault:"laptop_price_model.yaml"`

	ModelRemoteURL           string        `env:"MODEL_REMOTE_URL" envDefault:"http://localhost:8501"`
	ModelRemoteTimeout       time.Duration `env:"MODEL_REMOTE_TIMEOUT" envDefault:"5s"`
	ModelBreakerEnabled      bool          `env:"MODEL_BREAKER_ENABLED" envDefault:"true"`
	ModelBreakerMinRequests  uint32        `env:"MODEL_BREAKER_MIN_REQUESTS" envDefault:"10"`
	ModelBreakerFailureRatio float64       `env:"MODEL_BREAKER_FAILURE_RATIO" envDefault:"0.5"`
	ModelBreakerOpenTimeout  time.Duration `env:"MODEL_BREAKER_OPEN_TIMEOUT" envDefault:"30s"`

	EncoderStrict bool `env:"ENCODER_STRICT" envDefault:"true"`

	SessionSecret        string `env:"SESSION_SECRET"`
	SessionMaxAgeSeconds int    `env:"SESSION_MAX_AGE_SECONDS" envDefault:"3600"`
	SessionSecureCookie  bool   `env:"SESSION_SECURE_COOKIE" envDefault:"false"`

	DisplayCurrencySymbol string `env:"DISPLAY_CURRENCY_SYMBOL" envDefault:"₹"`

	APIRateLimitRPS   float64 `env:"API_RATE_LIMIT_RPS" envDefault:"0"`
	APIRateLimitBurst int     `env:"API_RATE_LIMIT_BURST" envDefault:"10"`

	APIMaxInFlight int           `env:"API_MAX_IN_FLIGHT" envDefault:"0"`
	APIQueueWait   time.Duration `env:"API_QUEUE_WAIT" envDefault:"100ms"`

	BatchMaxRows     int   `env:"BATCH_MAX_ROWS" envDefault:"1000"`
	BatchMaxUploadMB int64 `env:"BATCH_MAX_UPLOAD_MB" envDefault:"8"`
}

const (
	BackendArtifact = "artifact"
	BackendRemote   = "remote"
)

// Load reads the environment. Malformed values are reported instead of
// silently replaced by defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.ModelBackend {
	case BackendArtifact, BackendRemote:
	default:
		return Config{}, fmt.Errorf("unsupported MODEL_BACKEND %q", cfg.ModelBackend)
	}
	return cfg, nil
}
