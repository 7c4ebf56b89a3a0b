package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/106-/wows-chat-viewer/internal/replay"
	"github.com/106-/wows-chat-viewer/internal/service/session"
)

// Config aggregates every setting the service reads.
type Config struct {
	Server  ServerConfig
	Unpack  UnpackConfig
	Session SessionConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	unpack, err := loadUnpackConfig()
	if err != nil {
		return nil, err
	}

	sess, err := loadSessionConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Unpack: unpack, Session: sess}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// UnpackConfig describes the external replay-unpack collaborator and
// the upload size cap.
type UnpackConfig struct {
	Bin            string
	Timeout        time.Duration
	MaxUploadBytes int64
}

const defaultMaxUploadBytes = 64 << 20

func loadUnpackConfig() (UnpackConfig, error) {
	timeout := replay.DefaultTimeout
	if override, err := parseOptionalIntEnv("UNPACK_TIMEOUT"); err != nil {
		return UnpackConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return UnpackConfig{}, fmt.Errorf("UNPACK_TIMEOUT must be positive, got %d", *override)
		}
		timeout = time.Duration(*override) * time.Second
	}

	maxUpload := int64(defaultMaxUploadBytes)
	if override, err := parseOptionalInt64Env("MAX_UPLOAD_BYTES"); err != nil {
		return UnpackConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return UnpackConfig{}, fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", *override)
		}
		maxUpload = *override
	}

	return UnpackConfig{
		Bin:            getEnvOrDefault("UNPACK_BIN", replay.DefaultBin),
		Timeout:        timeout,
		MaxUploadBytes: maxUpload,
	}, nil
}

// SessionConfig bounds the in-memory session store.
type SessionConfig struct {
	MaxSessions int
}

func loadSessionConfig() (SessionConfig, error) {
	limit := session.DefaultLimit
	if override, err := parseOptionalIntEnv("MAX_SESSIONS"); err != nil {
		return SessionConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return SessionConfig{}, fmt.Errorf("MAX_SESSIONS must be positive, got %d", *override)
		}
		limit = *override
	}
	return SessionConfig{MaxSessions: limit}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalInt64Env(key string) (*int64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
