package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/factflip/backend/internal/srs"
)

// EnvPrefix prefixes every environment variable read by Load, e.g.
// FACTFLIP_SERVER_ADDRESS or FACTFLIP_DB_PATH.
const EnvPrefix = "FACTFLIP_"

type Config struct {
	Server  ServerConfig `koanf:"server"`
	DB      DBConfig     `koanf:"db"`
	Decks   DecksConfig  `koanf:"decks"`
	Upload  UploadConfig `koanf:"upload"`
	SRS     SRSConfig    `koanf:"srs"`
	Log     LogConfig    `koanf:"log"`
	Workers int          `koanf:"workers" validate:"min=1,max=64"`
}

type ServerConfig struct {
	Address         string        `koanf:"address" validate:"required"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

type DBConfig struct {
	Path string `koanf:"path" validate:"required"`
}

type DecksConfig struct {
	Dir    string `koanf:"dir"`    // imported at start-up when set
	Sample string `koanf:"sample"` // file behind /load_sample
	GitURL string `koanf:"git_url" validate:"omitempty,url"`
}

type UploadConfig struct {
	MaxBytes      int64 `koanf:"max_bytes" validate:"min=1"`
	RatePerMinute int   `koanf:"rate_per_minute" validate:"min=0"` // 0 disables the limit
}

type SRSConfig struct {
	PenalizeFailures bool `koanf:"penalize_failures"`
	MaxInterval      int  `koanf:"max_interval" validate:"min=0"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"addr":              "server.address",
	"shutdown-timeout":  "server.shutdown_timeout",
	"db":                "db.path",
	"decks-dir":         "decks.dir",
	"sample":            "decks.sample",
	"git-url":           "decks.git_url",
	"max-upload-bytes":  "upload.max_bytes",
	"upload-rate":       "upload.rate_per_minute",
	"penalize-failures": "srs.penalize_failures",
	"max-interval":      "srs.max_interval",
	"log-level":         "log.level",
	"workers":           "workers",
}

// RegisterFlags adds the server flags to fs. Their defaults are the
// configuration defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("addr", ":8080", "HTTP listen address")
	fs.Duration("shutdown-timeout", 10*time.Second, "graceful shutdown timeout")
	fs.String("db", "factflip.db", "SQLite database file")
	fs.String("decks-dir", "", "directory of deck files imported at start-up")
	fs.String("sample", "decks/Sample_Facts.json", "sample deck file")
	fs.String("git-url", "", "git repository of deck files")
	fs.Int64("max-upload-bytes", 2<<20, "maximum deck upload size")
	fs.Int("upload-rate", 10, "uploads allowed per client per minute, 0 for no limit")
	fs.Bool("penalize-failures", false, "lower the ease factor on failed reviews")
	fs.Int("max-interval", 0, "cap on review intervals in days, 0 for no cap")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.Int("workers", 4, "parallel deck parsers")
}

// Load builds the configuration from, in increasing precedence: flag
// defaults, the YAML file at path (if any), the environment (after .env),
// and flags set on the command line.
func Load(fs *pflag.FlagSet, path string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, "failed to read environment")
	}

	if fs != nil {
		if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(fs, f)
		}), nil); err != nil {
			return nil, errors.Wrap(err, "failed to read flags")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}

// envKey turns FACTFLIP_SERVER_SHUTDOWN_TIMEOUT into server.shutdown_timeout.
// Variables that match no key are dropped.
func envKey(name string) string {
	name = strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	for _, key := range flagKeys {
		if strings.ReplaceAll(key, ".", "_") == name {
			return key
		}
	}
	return ""
}

// Params returns the scheduler tunables.
func (c *Config) Params() *srs.Params {
	p := srs.DefaultParams()
	p.PenalizeFailures = c.SRS.PenalizeFailures
	p.MaxInterval = c.SRS.MaxInterval
	return p
}

// NewLogger returns the JSON logger at the configured level.
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
