package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	forumservice "github.com/qnaboard/backend/internal/service/forum"
)

// Config aggregates all service configuration.
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Forum  ForumConfig
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

// StoreConfig describes the data store backend. An empty DatabaseURL
// selects the in-memory store.
type StoreConfig struct {
	DatabaseURL string
	Timeout     time.Duration
}

// ForumConfig describes board behavior. PageSize is fixed for the
// lifetime of every session and is never client-configurable.
type ForumConfig struct {
	PageSize int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	storeCfg, err := loadStoreConfig()
	if err != nil {
		return nil, err
	}

	forum, err := loadForumConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Store: storeCfg, Forum: forum}, nil
}

// loadServerConfig parses the listen address.
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

func loadStoreConfig() (StoreConfig, error) {
	timeoutSeconds := 5
	if override, err := parseOptionalIntEnv("STORE_TIMEOUT"); err != nil {
		return StoreConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return StoreConfig{}, fmt.Errorf("STORE_TIMEOUT must be at least 1 second, got %d", *override)
		}
		timeoutSeconds = *override
	}

	return StoreConfig{
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Timeout:     time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

func loadForumConfig() (ForumConfig, error) {
	pageSize := forumservice.DefaultPageSize
	if override, err := parseOptionalIntEnv("PAGE_SIZE"); err != nil {
		return ForumConfig{}, err
	} else if override != nil {
		if *override < 1 {
			pageSize = 1
		} else {
			pageSize = *override
		}
	}

	return ForumConfig{PageSize: pageSize}, nil
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
