package app

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // hcl file or directory, optional
	Lemma      string // when set, inputs become konsep drafts of this lemma
	Strict     bool

	LogFormat   string
	LogLevel    string
	ServePort   int // 0 runs once over the input
	WorkerCount int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ServePort < 0 || cfg.ServePort > 65535 {
		return nil, fmt.Errorf("serve port %d is out of range", cfg.ServePort)
	}
	if cfg.WorkerCount < 0 {
		return nil, fmt.Errorf("worker count %d cannot be negative", cfg.WorkerCount)
	}
	if cfg.Lemma != "" && strings.TrimSpace(cfg.Lemma) == "" {
		return nil, errors.New("lemma cannot be blank")
	}
	cfg.Lemma = strings.TrimSpace(cfg.Lemma)
	return &cfg, nil
}
