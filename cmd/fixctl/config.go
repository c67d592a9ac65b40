package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/tradewire/go-fix/auth"
	"github.com/tradewire/go-fix/logger"
)

// fileConfig mirrors the fixctl TOML configuration file.
type fileConfig struct {
	Host          string `toml:"host"`
	Port          int    `toml:"port"`
	Key           string `toml:"key"`
	Passphrase    string `toml:"passphrase"`
	Secret        string `toml:"secret"`
	BeginString   string `toml:"begin_string"`
	TargetCompID  string `toml:"target_comp_id"`
	Heartbeat     string `toml:"heartbeat"`
	LogLevel      string `toml:"log_level"`
	Dictionary    string `toml:"dictionary"`
}

// clientConfig is the resolved fixctl configuration.
type clientConfig struct {
	host           string
	port           int
	creds          auth.Credentials
	beginString    string
	targetCompID   string
	heartbeat      time.Duration
	logLevel       logger.Level
	dictionaryPath string
}

func loadClientConfig(path string) (clientConfig, error) {
	cfg := clientConfig{
		port:      4198,
		heartbeat: 30 * time.Second,
		logLevel:  logger.InfoLevel,
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return clientConfig{}, fmt.Errorf("load fixctl config: %w", err)
	}

	cfg.host = strings.TrimSpace(raw.Host)
	if cfg.host == "" {
		return clientConfig{}, errors.New("host is required")
	}

	if meta.IsDefined("port") {
		cfg.port = raw.Port
	}

	cfg.creds = auth.Credentials{
		Key:        strings.TrimSpace(raw.Key),
		Passphrase: raw.Passphrase,
		Secret:     strings.TrimSpace(raw.Secret),
	}
	if cfg.creds.Key == "" || cfg.creds.Passphrase == "" || cfg.creds.Secret == "" {
		return clientConfig{}, errors.New("key, passphrase and secret are required")
	}

	cfg.beginString = strings.TrimSpace(raw.BeginString)
	cfg.targetCompID = strings.TrimSpace(raw.TargetCompID)

	if meta.IsDefined("heartbeat") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Heartbeat))
		if err != nil {
			return clientConfig{}, fmt.Errorf("parse heartbeat: %w", err)
		}
		cfg.heartbeat = d
	}

	if meta.IsDefined("log_level") {
		level, err := parseLogLevel(raw.LogLevel)
		if err != nil {
			return clientConfig{}, err
		}
		cfg.logLevel = level
	}

	cfg.dictionaryPath = strings.TrimSpace(raw.Dictionary)

	return cfg, nil
}

func parseLogLevel(s string) (logger.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return logger.DebugLevel, nil
	case "", "info":
		return logger.InfoLevel, nil
	case "warn":
		return logger.WarnLevel, nil
	case "error":
		return logger.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
