package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	DBConnString    string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
	Remote          *Remote
}

// Remote carries the storefront backend credentials. A nil Remote on
// Config means the service runs in local-only mode; the decision is made
// once at startup and passed down, never re-checked from the environment.
type Remote struct {
	Domain      string
	AccessToken string
	APIVersion  string
}

// Endpoint is the GraphQL endpoint derived from the store domain.
func (r Remote) Endpoint() string {
	return "https://" + r.Domain + "/api/" + r.APIVersion + "/graphql.json"
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		DBConnString:    os.Getenv("DB_DSN"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		AllowedOrigins:  splitOrigins(envOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		Remote:          remoteFromEnv(),
	}
}

// remoteFromEnv returns nil unless both credentials are present and the
// domain looks like a real storefront domain. Placeholder values from a
// template env file count as absent.
func remoteFromEnv() *Remote {
	domain := os.Getenv("STOREFRONT_DOMAIN")
	token := os.Getenv("STOREFRONT_ACCESS_TOKEN")
	if domain == "" || token == "" {
		return nil
	}
	if strings.Contains(domain, "your-store") || !strings.Contains(domain, ".myshopify.com") {
		return nil
	}
	return &Remote{
		Domain:      domain,
		AccessToken: token,
		APIVersion:  envOrDefault("STOREFRONT_API_VERSION", "2024-10"),
	}
}

func splitOrigins(v string) []string {
	parts := strings.Split(v, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
