package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/variantform/variantform/internal/layout"
	"github.com/variantform/variantform/validator"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Project is the default project directory when a tool call omits one.
	Project string

	// Expansion depth for glob surfaces.
	MaxDepth int

	// Diff tool default.
	DiffPatch bool

	// Validate tool defaults.
	StaleKeys     validator.StaleKeyMode
	ValidateLimit int
	MaxLimit      int

	// MaxInlineSize bounds preview content in bytes.
	MaxInlineSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from VARIANTFORM_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		Project:       envString("VARIANTFORM_PROJECT", "."),
		MaxDepth:      envInt("VARIANTFORM_MAX_DEPTH", layout.MaxScanDepth),
		DiffPatch:     envBool("VARIANTFORM_DIFF_PATCH", false),
		StaleKeys:     envStaleKeys("VARIANTFORM_STALE_KEYS", validator.StaleKeysRecursive),
		ValidateLimit: envInt("VARIANTFORM_VALIDATE_LIMIT", 100),
		MaxLimit:      envInt("VARIANTFORM_MAX_LIMIT", 1000),
		MaxInlineSize: int64(envInt("VARIANTFORM_MAX_INLINE_SIZE", 1<<20)),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envStaleKeys(key string, fallback validator.StaleKeyMode) validator.StaleKeyMode {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	mode, err := validator.ParseStaleKeyMode(v)
	if err != nil {
		slog.Warn("invalid stale key mode env var, using default", "key", key, "value", v, "default", fallback.String())
		return fallback
	}
	return mode
}
