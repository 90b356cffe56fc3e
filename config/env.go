package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/busworks/busbar/core"
)

// Environment variables read by FromEnv.
const (
	EnvName           = "BUSBAR_NAME"
	EnvAllowUnhandled = "BUSBAR_ALLOW_UNHANDLED"
	EnvMaxListeners   = "BUSBAR_MAX_LISTENERS"
	EnvLeakThreshold  = "BUSBAR_LEAK_THRESHOLD"
)

// FromEnv builds a Config from environment variables, starting from the
// built-in defaults. A .env file in the working directory is loaded first
// when present; missing variables keep their defaults.
func FromEnv() (core.Config, error) {
	_ = godotenv.Load()

	cfg := core.DefaultConfig()
	cfg.Name = getEnv(EnvName, cfg.Name)

	var err error
	cfg.AllowUnhandledEvents, err = getEnvBool(EnvAllowUnhandled, cfg.AllowUnhandledEvents)
	if err != nil {
		return core.Config{}, err
	}
	cfg.MaxListeners, err = getEnvInt(EnvMaxListeners, cfg.MaxListeners)
	if err != nil {
		return core.Config{}, err
	}
	cfg.PotentialMemoryLeakWarningThreshold, err = getEnvInt(EnvLeakThreshold, cfg.PotentialMemoryLeakWarningThreshold)
	if err != nil {
		return core.Config{}, err
	}
	return cfg, nil
}

// LoadEnv reads the environment and stores the result as the process-wide
// defaults.
func LoadEnv() error {
	cfg, err := FromEnv()
	if err != nil {
		return err
	}
	SetDefault(cfg)
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("busbar/config: parse %s=%q: %w", key, v, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("busbar/config: parse %s=%q: %w", key, v, err)
	}
	return b, nil
}
