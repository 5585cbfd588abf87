package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dinerozz/screen-time-backend/internal/engine"
	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port    string
	BaseURL string
}

type StoreConfig struct {
	// Path is the application-owned event store (SQLite).
	Path string
	// KnowledgePath is the macOS Screen Time database used as an import
	// source, opened read-only.
	KnowledgePath string
}

type AuthConfig struct {
	JWTSecret string
	// AdminPasswordHash is a bcrypt hash of the admin password.
	AdminPasswordHash string
}

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Auth   AuthConfig
	Engine engine.Config
	// DisplayNames are operator overrides layered over the built-in table.
	DisplayNames map[string]string
	Location     *time.Location
	Env          string
}

func LoadConfig() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "Asia/Shanghai"))
	if err != nil {
		log.Fatalf("❌ Invalid TIMEZONE: %v", err)
	}

	engineCfg, err := loadEngineConfig()
	if err != nil {
		log.Fatalf("❌ Invalid engine configuration: %v", err)
	}

	displayNames, err := parseKeyValueList(getEnv("DISPLAY_NAME_OVERRIDES", ""), "=")
	if err != nil {
		log.Fatalf("❌ Invalid DISPLAY_NAME_OVERRIDES: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			BaseURL: getEnv("BASE_URL", "http://localhost:8080"),
		},
		Store: StoreConfig{
			Path:          getEnv("DB_PATH", "screentime.db"),
			KnowledgePath: getEnv("KNOWLEDGE_DB_PATH", defaultKnowledgePath()),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET", "SECRET"),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Engine:       engineCfg,
		DisplayNames: displayNames,
		Location:     loc,
		Env:          getEnv("ENV", "prod"),
	}
}

func loadEngineConfig() (engine.Config, error) {
	cfg := engine.DefaultConfig()

	var err error
	if cfg.DefaultGapTolerance, err = getEnvMinutes("GAP_TOLERANCE_MIN", cfg.DefaultGapTolerance); err != nil {
		return cfg, err
	}
	if cfg.MinAppUsage, err = getEnvMinutes("MIN_APP_USAGE_MIN", cfg.MinAppUsage); err != nil {
		return cfg, err
	}
	if cfg.MinIdleWindow, err = getEnvMinutes("MIN_IDLE_WINDOW_MIN", cfg.MinIdleWindow); err != nil {
		return cfg, err
	}
	if cfg.WindowPadding, err = getEnvMinutes("WINDOW_PADDING_MIN", cfg.WindowPadding); err != nil {
		return cfg, err
	}

	overrides, err := ParseToleranceOverrides(getEnv("GAP_TOLERANCE_OVERRIDES", "com.electron.lark.iron:10"))
	if err != nil {
		return cfg, err
	}
	cfg.GapToleranceOverrides = overrides

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ParseToleranceOverrides parses a "app:minutes,app:minutes" list, e.g.
// "com.electron.lark.iron:10" giving meeting apps a 10 minute gap tolerance.
func ParseToleranceOverrides(value string) (map[string]time.Duration, error) {
	pairs, err := parseKeyValueList(value, ":")
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]time.Duration, len(pairs))
	for appID, minutes := range pairs {
		parsed, err := strconv.ParseFloat(minutes, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid tolerance for %s: %q", appID, minutes)
		}
		overrides[appID] = time.Duration(parsed * float64(time.Minute))
	}
	return overrides, nil
}

func parseKeyValueList(value, sep string) (map[string]string, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	result := make(map[string]string)
	for _, pair := range strings.Split(value, ",") {
		key, val, found := strings.Cut(strings.TrimSpace(pair), sep)
		if !found || key == "" || val == "" {
			return nil, fmt.Errorf("malformed entry %q, expected key%svalue", pair, sep)
		}
		result[key] = val
	}
	return result, nil
}

func defaultKnowledgePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/Library/Application Support/Knowledge/knowledgeC.db"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvMinutes(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	minutes, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number of minutes, got %q", key, value)
	}
	return time.Duration(minutes * float64(time.Minute)), nil
}
