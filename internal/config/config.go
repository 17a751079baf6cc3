package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hdastar/hda"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Sentinel errors surfaced as exit code 2 ("bad numeric argument") by
// cmd/hdastar, per spec.md §6.
var (
	ErrInvalidWorkers = errors.New("config: workers must be positive")
	ErrInvalidVariant = errors.New("config: variant must be \"mp\" or \"sm\"")
)

// Config is the fully resolved set of run parameters, independent of how
// they were supplied (flag, HDASTAR_* env var, or config file).
type Config struct {
	Workers           int
	Variant           string
	RequirePathExists bool
	DBPath            string
	Metrics           bool
	Trace             bool
}

// Resolve layers flags over environment variables over an optional
// config file (lowest to highest precedence: file, env, flag — viper's
// default), returning the effective Config.
func Resolve(v *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	v.SetEnvPrefix("HDASTAR")
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("config: bind flags: %w", err)
	}

	if cf := v.GetString("config"); cf != "" {
		v.SetConfigFile(cf)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read config file %s: %w", cf, err)
		}
	}

	cfg := Config{
		Workers:           v.GetInt("workers"),
		Variant:           v.GetString("variant"),
		RequirePathExists: v.GetBool("require-path-exists"),
		DBPath:            v.GetString("db"),
		Metrics:           v.GetBool("metrics"),
		Trace:             v.GetBool("trace"),
	}

	if cfg.Workers <= 0 {
		return Config{}, ErrInvalidWorkers
	}
	switch cfg.Variant {
	case "mp", "sm":
	default:
		return Config{}, ErrInvalidVariant
	}

	return cfg, nil
}

// HDAVariant maps the resolved string variant to hda.Variant.
func (c Config) HDAVariant() hda.Variant {
	if c.Variant == "sm" {
		return hda.VariantSharedMemory
	}
	return hda.VariantMessagePassing
}
