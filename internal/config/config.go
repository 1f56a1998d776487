// Package config is for toolkit wide settings that are unmarshalled from
// Viper. The tools take positional arguments only, so settings come from
// PIZZACHILI_* environment variables or a file named by PIZZACHILI_CONFIG.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PIZZACHILI"

// Profiling modes accepted by the profile setting.
const (
	ProfileOff   = ""
	ProfileCPU   = "cpu"
	ProfileMem   = "mem"
	ProfileBlock = "block"
)

// Config is the root-level settings struct.
type Config struct {
	// seed for the pattern sampler; 0 seeds from the clock
	Seed int64 `mapstructure:"seed"`

	// only warnings and errors are logged
	Quiet bool `mapstructure:"quiet"`

	// logrus level name: debug, info, warn, error
	LogLevel string `mapstructure:"log-level"`

	// show a per-pattern progress bar while verifying
	Progress bool `mapstructure:"progress"`

	// profile the verifier: cpu, mem or block
	Profile string `mapstructure:"profile"`

	// where profiles are written
	ProfileDir string `mapstructure:"profile-dir"`

	// name of the script generator's driver script
	Driver string `mapstructure:"driver"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("seed", 0)
	v.SetDefault("quiet", false)
	v.SetDefault("log-level", "info")
	v.SetDefault("progress", false)
	v.SetDefault("profile", ProfileOff)
	v.SetDefault("profile-dir", ".")
	v.SetDefault("driver", "exec_all.sh")
}

// Load builds a Config from defaults, the optional config file and the
// environment (highest precedence).
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	defaults(v)

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unable to decode into struct: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Profile {
	case ProfileOff, ProfileCPU, ProfileMem, ProfileBlock:
	default:
		return fmt.Errorf("config: invalid profile %q (want cpu, mem or block)", c.Profile)
	}
	if strings.TrimSpace(c.Driver) == "" {
		return fmt.Errorf("config: driver script name is empty")
	}
	return nil
}
