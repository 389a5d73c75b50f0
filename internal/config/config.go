package config

import "github.com/caarlos0/env/v10"

// Config centralizes server, database and assessment-engine settings.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	JWTSecret string `env:"JWT_SECRET" envDefault:"transformation-portal-staging-signing-key-2026"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"portal_user"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"portal_password"`
	DBName     string `env:"DB_NAME" envDefault:"transformation_portal"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// Adaptive assessment tunables.
	PrecisionThreshold   float64 `env:"ASSESSMENT_PRECISION_THRESHOLD" envDefault:"0.3"`
	MinItemsPerDimension int     `env:"ASSESSMENT_MIN_ITEMS" envDefault:"5"`
	MaxItemsPerDimension int     `env:"ASSESSMENT_MAX_ITEMS" envDefault:"10"`
	ThetaBound           float64 `env:"ASSESSMENT_THETA_BOUND" envDefault:"4"`
	ConvergenceTolerance float64 `env:"ASSESSMENT_CONVERGENCE_TOLERANCE" envDefault:"0.001"`
	MaxIterations        int     `env:"ASSESSMENT_MAX_ITERATIONS" envDefault:"20"`

	// Plan draft generation.
	MockPlanGenerator bool   `env:"MOCK_PLAN_GENERATOR" envDefault:"false"`
	AnthropicModel    string `env:"ANTHROPIC_MODEL" envDefault:"claude-opus-4-5-20251101"`

	// Learning content directory.
	ContentDir string `env:"CONTENT_DIR" envDefault:"content"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
