package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Link encodings the CLI can emit.
const (
	formatBlob   = "blob"
	formatLegacy = "legacy"
)

const defaultShareURL = "http://localhost:3000/"

// config holds the non-edit settings. Each key can come from a flag, a
// LEANGAINS_* environment variable, or a .env file, in that order.
type config struct {
	ShareURL string
	Format   string
	JSON     bool
	Data     string
}

// configKeys maps viper keys to the flags that override them.
var configKeys = map[string]string{
	"share_url": "share-url",
	"format":    "format",
	"json":      "json",
	"data":      "data",
}

// loadConfig reads .env (a missing file is fine), then resolves every key
// through viper. Only flags registered on flags are bound.
func loadConfig(flags *pflag.FlagSet, envFiles ...string) (config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, fmt.Errorf("load env file: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("LEANGAINS")
	v.AutomaticEnv()
	v.SetDefault("share_url", defaultShareURL)
	v.SetDefault("format", formatBlob)
	v.SetDefault("json", false)
	v.SetDefault("data", "")

	for key, flag := range configKeys {
		f := flags.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return config{}, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	cfg := config{
		ShareURL: strings.TrimSpace(v.GetString("share_url")),
		Format:   strings.ToLower(strings.TrimSpace(v.GetString("format"))),
		JSON:     v.GetBool("json"),
		Data:     strings.TrimSpace(v.GetString("data")),
	}
	if cfg.Format != formatBlob && cfg.Format != formatLegacy {
		return config{}, fmt.Errorf("format must be %q or %q, got %q", formatBlob, formatLegacy, cfg.Format)
	}
	if cfg.ShareURL == "" {
		cfg.ShareURL = defaultShareURL
	}
	return cfg, nil
}

// encodeFor encodes s in the configured link format.
func (c config) encodeFor(s appState) string {
	if c.Format == formatLegacy {
		return encodeLegacyState(s)
	}
	return encodeState(s)
}
