package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultPort = "8080"

// Config carries everything the server needs at startup. It is built once
// in main and handed to components explicitly; nothing reads ambient
// environment state after Load returns.
type Config struct {
	Port     string
	Env      string
	LogLevel string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	DBMaxOpenConns        int
	DBMaxIdleConns        int
	DBConnMaxLifetimeSecs int
	DBConnMaxIdleTimeSecs int

	// Shared secret compared against the api-key header on login.
	APIKey string

	// HS256 signing secret for session tokens.
	JWTSecret            string
	TokenLifespanMinutes int

	CORSAllowedOrigins []string
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	godotenv.Load()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = defaultPort
	}

	return &Config{
		Port:     port,
		Env:      strings.TrimSpace(os.Getenv("GO_ENV")),
		LogLevel: strings.TrimSpace(os.Getenv("LOG_LEVEL")),

		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBName:     os.Getenv("DB_NAME"),

		DBMaxOpenConns:        intFromEnv("DB_MAX_OPEN_CONNS", 50),
		DBMaxIdleConns:        intFromEnv("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxLifetimeSecs: intFromEnv("DB_CONN_MAX_LIFETIME_SECONDS", 300),
		DBConnMaxIdleTimeSecs: intFromEnv("DB_CONN_MAX_IDLE_TIME_SECONDS", 60),

		APIKey:               os.Getenv("API_KEY"),
		JWTSecret:            os.Getenv("API_SECRET"),
		TokenLifespanMinutes: intFromEnv("TOKEN_MINUTE_LIFESPAN", 30),

		CORSAllowedOrigins: splitAndTrim(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func intFromEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func splitAndTrim(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
