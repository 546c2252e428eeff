package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "MINES"

type Config struct {
	Mode          string        `mapstructure:"mode"`
	Addr          string        `mapstructure:"addr"`
	StaticDir     string        `mapstructure:"static"`
	PresetsFile   string        `mapstructure:"presets"`
	LogFile       string        `mapstructure:"log_file"`
	LogMaxSize    int           `mapstructure:"log_max_size"`
	LogMaxBackups int           `mapstructure:"log_max_backups"`
	LogMaxAge     int           `mapstructure:"log_max_age"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	Seed          uint64        `mapstructure:"seed"`
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":            c.Mode,
		"addr":            c.Addr,
		"static":          c.StaticDir,
		"presets":         c.PresetsFile,
		"log_file":        c.LogFile,
		"log_max_size":    c.LogMaxSize,
		"log_max_backups": c.LogMaxBackups,
		"log_max_age":     c.LogMaxAge,
		"session_ttl":     c.SessionTTL.String(),
		"sweep_interval":  c.SweepInterval.String(),
		"seed":            c.Seed,
	}
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.LogMaxSize < 0 || c.LogMaxBackups < 0 || c.LogMaxAge < 0 {
		return errors.New("log rotation limits must not be negative")
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("session_ttl must not be negative, got %s", c.SessionTTL)
	}
	if c.SessionTTL > 0 && c.SweepInterval <= 0 {
		return fmt.Errorf("sweep_interval must be positive, got %s", c.SweepInterval)
	}
	return nil
}

// New returns a viper instance with defaults set and MINES_* environment
// variables bound.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("mode", "production")
	v.SetDefault("addr", ":8080")
	v.SetDefault("static", "")
	v.SetDefault("presets", "")
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size", 10)
	v.SetDefault("log_max_backups", 3)
	v.SetDefault("log_max_age", 28)
	v.SetDefault("session_ttl", time.Hour)
	v.SetDefault("sweep_interval", time.Minute)
	v.SetDefault("seed", 0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags maps command line flags onto config keys. Flags spelled with
// dashes bind to the underscored key.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if key == "config" {
			return
		}
		if e := v.BindPFlag(key, f); e != nil && err == nil {
			err = e
		}
	})
	return err
}

// Load reads the optional config file at path and decodes the result.
// Precedence is flags, then environment, then file, then defaults.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}
	if v.GetBool("development") {
		v.Set("mode", "development")
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
