package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dgallion1/edgarparse/internal/parser"
	"github.com/dgallion1/edgarparse/internal/schema"
)

type Config struct {
	Port string

	// Auth; empty disables bearer checks on /api.
	APIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration

	// Deadline for one synchronous parse request.
	ParseTimeout time.Duration

	// Parser policies
	OwnershipPolicy      string
	ThirteenFPolicy      string
	XBRLRejectUnresolved bool

	LogLevel string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("EDGARPARSE_API_KEY"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		JobTTL:       envDuration("JOB_TTL", 1*time.Hour),
		ParseTimeout: envDuration("PARSE_TIMEOUT", 30*time.Second),

		OwnershipPolicy:      envOr("OWNERSHIP_POLICY", "strict"),
		ThirteenFPolicy:      envOr("THIRTEENF_POLICY", "strict"),
		XBRLRejectUnresolved: envBool("XBRL_REJECT_UNRESOLVED", false),

		LogLevel: envOr("LOG_LEVEL", "info"),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.ParseTimeout <= 0 {
		cfg.ParseTimeout = 30 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	_, _, err := c.Resolve()
	return err
}

// Resolve returns the parser options and log level the settings describe.
func (c Config) Resolve() (parser.Options, slog.Level, error) {
	opts, err := c.ParserOptions()
	if err != nil {
		return parser.Options{}, slog.LevelInfo, err
	}
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return parser.Options{}, slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return opts, level, nil
}

// ParserOptions converts the policy settings into parser options.
func (c Config) ParserOptions() (parser.Options, error) {
	own, err := schema.ParsePolicy(c.OwnershipPolicy)
	if err != nil {
		return parser.Options{}, fmt.Errorf("OWNERSHIP_POLICY: %w", err)
	}
	tf, err := schema.ParsePolicy(c.ThirteenFPolicy)
	if err != nil {
		return parser.Options{}, fmt.Errorf("THIRTEENF_POLICY: %w", err)
	}
	return parser.Options{
		OwnershipPolicy:          own,
		ThirteenFPolicy:          tf,
		RejectUnresolvedContexts: c.XBRLRejectUnresolved,
	}, nil
}

// ParseLevel maps debug, info, warn or error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
