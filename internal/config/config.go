package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load, e.g. DAILYLOG_PATH
const EnvPrefix = "DAILYLOG"

// Config holds the resolved application configuration
type Config struct {
	Path    string // directory holding the daily notes
	Out     string // report output file, "-" for stdout
	Log     string // log level name
	Section string // heading of the log section
	Ext     string // daily note file extension
	Format  string // report format name
	Period  string // default period name, e.g. "thisweek"
	Strict  bool   // propagate aggregation errors instead of returning an empty report

	// ConfigFile is the file values were read from, empty if none
	ConfigFile string
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Path:    ".",
		Out:     "daily-log-data.md",
		Log:     "warning",
		Section: "## Log",
		Ext:     ".md",
		Format:  "markdown",
	}
}

// Load loads configuration with priority: CLI flags > env vars > config file > default.
// Only flags that were explicitly set override lower layers. configFile may be empty
// to use the default location; a missing default file is not an error.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault("path", defaults.Path)
	v.SetDefault("out", defaults.Out)
	v.SetDefault("log", defaults.Log)
	v.SetDefault("section", defaults.Section)
	v.SetDefault("ext", defaults.Ext)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("period", defaults.Period)
	v.SetDefault("strict", defaults.Strict)

	explicit := configFile != ""
	if !explicit {
		if p, err := DefaultConfigPath(); err == nil {
			configFile = p
		}
	}

	var used string
	if configFile != "" {
		v.SetConfigFile(expandPath(configFile))
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if explicit || !(errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
				return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
			}
		} else {
			used = v.ConfigFileUsed()
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{"path", "out", "log", "section", "ext", "format", "period", "strict"} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	return &Config{
		Path:       expandPath(v.GetString("path")),
		Out:        expandPath(v.GetString("out")),
		Log:        v.GetString("log"),
		Section:    v.GetString("section"),
		Ext:        v.GetString("ext"),
		Format:     v.GetString("format"),
		Period:     v.GetString("period"),
		Strict:     v.GetBool("strict"),
		ConfigFile: used,
	}, nil
}

// DefaultConfigPath returns the path to the configuration file
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "dailylog", "config.yaml"), nil
}

// ValidateNotesDir checks that dir exists and is a directory
func ValidateNotesDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("path %q does not exist", dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("path %q is a file, not a directory", dir)
	}
	return nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
