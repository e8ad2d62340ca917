package qecc

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Workers           int
	SchedulingTimeout time.Duration
	Trials            int
	ErrorRate         float64
	Seed              uint64
	Format            string
}

func NewConfig() *Config {
	return &Config{
		Workers:           4,
		SchedulingTimeout: 10 * time.Second,
		Trials:            1000,
		ErrorRate:         0.05,
		Seed:              1,
		Format:            "text",
	}
}

const (
	keyWorkers           = "workers"
	keySchedulingTimeout = "scheduling-timeout"
	keyTrials            = "trials"
	keyErrorRate         = "error-rate"
	keySeed              = "seed"
	keyFormat            = "format"
)

/*
LoadConfig layers configuration from lowest to highest precedence: the
defaults of NewConfig, the file at path (skipped when empty), QECC_*
environment variables, then any flag in flags that was set explicitly.
*/
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	defaults := NewConfig()

	v := viper.New()
	v.SetDefault(keyWorkers, defaults.Workers)
	v.SetDefault(keySchedulingTimeout, defaults.SchedulingTimeout)
	v.SetDefault(keyTrials, defaults.Trials)
	v.SetDefault(keyErrorRate, defaults.ErrorRate)
	v.SetDefault(keySeed, defaults.Seed)
	v.SetDefault(keyFormat, defaults.Format)

	v.SetEnvPrefix("QECC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if flags != nil {
		for _, key := range []string{
			keyWorkers, keySchedulingTimeout, keyTrials, keyErrorRate, keySeed, keyFormat,
		} {
			if flag := flags.Lookup(key); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, err
				}
			}
		}
	}

	cfg := &Config{
		Workers:           v.GetInt(keyWorkers),
		SchedulingTimeout: v.GetDuration(keySchedulingTimeout),
		Trials:            v.GetInt(keyTrials),
		ErrorRate:         v.GetFloat64(keyErrorRate),
		Seed:              v.GetUint64(keySeed),
		Format:            v.GetString(keyFormat),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidInput, c.Workers)
	case c.Trials < 0:
		return fmt.Errorf("%w: trials must not be negative, got %d", ErrInvalidInput, c.Trials)
	case c.ErrorRate < 0 || c.ErrorRate > 1:
		return fmt.Errorf("%w: error rate must be within [0, 1], got %v", ErrInvalidInput, c.ErrorRate)
	}

	switch c.Format {
	case "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("%w: unknown format %q", ErrInvalidInput, c.Format)
}
