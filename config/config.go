package config

import (
	"fmt"
	"os"
	"time"
)

// LoadFailurePolicy controls what the profile screen shows when the initial
// record fetch fails.
type LoadFailurePolicy string

const (
	// LoadFailureBlank shows an empty profile and no notice.
	LoadFailureBlank LoadFailurePolicy = "blank"
	// LoadFailureStrict shows an error notice and reports the failure.
	LoadFailureStrict LoadFailurePolicy = "strict"
)

type Config struct {
	Region        string
	UsersTable    string
	AccountsTable string
	SessionsTable string
	EmailIndex    string

	ImageBucket   string
	PublicBaseURL string

	JWTSecret  string
	JWTIssuer  string
	SessionTTL time.Duration

	LoadFailurePolicy     LoadFailurePolicy
	DistinguishAuthOutage bool

	LogLevel  string
	LogFormat string
}

func Load() (*Config, error) {
	cfg := &Config{
		Region:                getEnv("AWS_REGION", ""),
		UsersTable:            getEnv("USERS_TABLE", "Users"),
		AccountsTable:         getEnv("ACCOUNTS_TABLE", "Accounts"),
		SessionsTable:         getEnv("SESSIONS_TABLE", "Sessions"),
		EmailIndex:            getEnv("ACCOUNTS_EMAIL_INDEX", "Email-index"),
		ImageBucket:           getEnv("IMAGE_BUCKET", "les-images-de-profil"),
		PublicBaseURL:         getEnv("IMAGE_PUBLIC_BASE_URL", ""),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		JWTIssuer:             getEnv("JWT_ISSUER", "profile-screen-service"),
		LoadFailurePolicy:     LoadFailurePolicy(getEnv("LOAD_FAILURE_POLICY", string(LoadFailureBlank))),
		DistinguishAuthOutage: getEnvBool("DISTINGUISH_AUTH_OUTAGE", false),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "json"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required env: JWT_SECRET")
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "720h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = ttl

	switch cfg.LoadFailurePolicy {
	case LoadFailureBlank, LoadFailureStrict:
	default:
		return nil, fmt.Errorf("invalid LOAD_FAILURE_POLICY %q: must be 'blank' or 'strict'", cfg.LoadFailurePolicy)
	}

	return cfg, nil
}

func getEnv(k, d string) string {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v == "true"
}
