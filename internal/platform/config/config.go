package config

import (
	"os"
	"strconv"
)

// Server captures process level configuration.
type Server struct {
	Addr          string
	Environment   string
	LogLevel      string
	DatabaseURL   string
	JWTSigningKey string
	AuditBuffer   int
	SeedDemo      bool
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("SKILLPASS_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	env := os.Getenv("SKILLPASS_ENV")
	if env == "" {
		env = "development"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	auditBuffer := 256
	if raw := os.Getenv("AUDIT_BUFFER"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			auditBuffer = n
		}
	}

	return Server{
		Addr:          addr,
		Environment:   env,
		LogLevel:      os.Getenv("LOG_LEVEL"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSigningKey: jwtSigningKey,
		AuditBuffer:   auditBuffer,
		SeedDemo:      os.Getenv("SEED_DEMO") == "true",
	}
}
