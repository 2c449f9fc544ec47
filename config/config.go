package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

type Config struct {
	Port        string
	CORSOrigins []string
	DBDriver    string
	LogDir      string
	LogLevel    string

	// ReservationEditOccupiesRoom flips the destination room to occupied when
	// a reservation edit changes rooms.
	ReservationEditOccupiesRoom bool
}

// Load reads the process environment. Call godotenv.Load first to pick up a .env file.
func Load() *Config {
	return &Config{
		Port:                        EnvOrDefault("PORT", "8080"),
		CORSOrigins:                 parseCorsOrigins(os.Getenv("CORS_ORIGINS")),
		DBDriver:                    strings.ToLower(EnvOrDefault("DB_DRIVER", DriverMySQL)),
		LogDir:                      EnvOrDefault("LOG_DIR", "logs"),
		LogLevel:                    EnvOrDefault("LOG_LEVEL", "info"),
		ReservationEditOccupiesRoom: envBool("RESERVATION_EDIT_OCCUPIES_ROOM", false),
	}
}

func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envBool(key string, def bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return b
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
