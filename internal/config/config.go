package config

import (
	"os"
	"strconv"
)

type Config struct {
	Library LibraryConfig
	Web     WebConfig
}

type LibraryConfig struct {
	MediaDir string // root directory scanned for media files
	DBPath   string // SQLite database file (default gallery.db)
}

type WebConfig struct {
	Port           int    // defaults to 8080
	AllowedOrigins string // comma-separated origins for CORS (default *)
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envStr reads an environment variable, falling back to a default when unset.
func envStr(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

func Load() *Config {
	return &Config{
		Library: LibraryConfig{
			MediaDir: os.Getenv("GALLERY_MEDIA_DIR"),
			DBPath:   envStr("GALLERY_DB_PATH", "gallery.db"),
		},
		Web: WebConfig{
			Port:           envInt("GALLERY_WEB_PORT", 8080),
			AllowedOrigins: envStr("GALLERY_WEB_ALLOWED_ORIGINS", "*"),
		},
	}
}
