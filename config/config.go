package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug              = "debug"
	ConfigDataPath           = "data-path"
	ConfigWeightsPath        = "weights-path"
	ConfigDefaultDepth       = "default-depth"
	ConfigThreads            = "threads"
	ConfigMobilityMode       = "mobility-mode"
	ConfigCPUProfile         = "cpu-profile"
	ConfigRandomOpeningPlies = "random-opening-plies"
)

const (
	envPrefix      = "REVERSI"
	configFileName = "reversi"
	configFileType = "yaml"
)

var ErrBadSetting = errors.New("bad setting")

// Config wraps a viper instance. Settings come from (lowest to highest
// precedence) defaults, an optional reversi.yaml in the data path, REVERSI_*
// environment variables, and command-line flags.
type Config struct {
	*viper.Viper
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigDataPath, "./data")
	v.SetDefault(ConfigWeightsPath, "")
	v.SetDefault(ConfigDefaultDepth, 3)
	v.SetDefault(ConfigThreads, 0)
	v.SetDefault(ConfigMobilityMode, "legacy")
	v.SetDefault(ConfigCPUProfile, "")
	v.SetDefault(ConfigRandomOpeningPlies, 0)
}

// DefaultConfig returns a config holding only the built-in defaults. It does
// not look at the environment, the filesystem or flags.
func DefaultConfig() Config {
	v := viper.New()
	setDefaults(v)
	return Config{v}
}

// Load reads settings from the environment, an optional config file, and
// the passed-in command-line arguments. Commands pass their own flags in
// extra; after Load those flag sets hold the parsed values. Unknown flags
// are an error.
func (c *Config) Load(args []string, extra ...*pflag.FlagSet) error {
	if c.Viper == nil {
		c.Viper = viper.New()
	}
	setDefaults(c.Viper)

	fs := pflag.NewFlagSet("reversi", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigDataPath, "./data", "directory holding reversi.yaml and weight files")
	fs.String(ConfigWeightsPath, "", "weight table file; empty uses the built-in table")
	fs.Int(ConfigDefaultDepth, 3, "search depth in plies when none is given")
	fs.Int(ConfigThreads, 0, "maximum root branches searched at once; 0 means one per move")
	fs.String(ConfigMobilityMode, "legacy", "mobility term: legacy or symmetric")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	fs.Int(ConfigRandomOpeningPlies, 0, "random plies played before self-play games")
	for _, e := range extra {
		fs.AddFlagSet(e)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix(envPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	c.SetConfigName(configFileName)
	c.SetConfigType(configFileType)
	c.AddConfigPath(c.GetString(ConfigDataPath))
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
		log.Debug().Msg("no config file found; using flags and environment")
	}
	return c.Validate()
}

// Validate checks settings that have a fixed set of legal values.
func (c *Config) Validate() error {
	switch c.GetString(ConfigMobilityMode) {
	case "legacy", "symmetric":
	default:
		return fmt.Errorf("%w: %s=%q", ErrBadSetting, ConfigMobilityMode,
			c.GetString(ConfigMobilityMode))
	}
	if c.GetInt(ConfigDefaultDepth) < 1 {
		return fmt.Errorf("%w: %s must be positive", ErrBadSetting, ConfigDefaultDepth)
	}
	if c.GetInt(ConfigThreads) < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrBadSetting, ConfigThreads)
	}
	return nil
}

// AdjustRelativePaths makes path settings absolute with respect to basepath,
// typically the directory the executable lives in.
func (c *Config) AdjustRelativePaths(basepath string) {
	for _, key := range []string{ConfigDataPath, ConfigWeightsPath} {
		p := c.GetString(key)
		if p == "" || filepath.IsAbs(p) {
			continue
		}
		c.Set(key, filepath.Join(basepath, p))
	}
}

// SanitizedSettings is AllSettings, for logging. Nothing here is secret yet.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}

// Write persists the current settings to reversi.yaml in the data path.
func (c *Config) Write() error {
	dir := c.GetString(ConfigDataPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return c.WriteConfigAs(filepath.Join(dir, configFileName+"."+configFileType))
}
