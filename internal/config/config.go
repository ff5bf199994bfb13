package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agentx-labs/skillpack/internal/branding"
	"github.com/agentx-labs/skillpack/internal/logger"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config keys.
const (
	KeyOutputDir = "output_dir"
	KeyExclude   = "exclude"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// Keys lists every config key. Each can be set from the environment as
// branding.EnvVar(key), e.g. SKILLPACK_OUTPUT_DIR.
var Keys = []string{KeyOutputDir, KeyExclude, KeyLogLevel, KeyLogFormat}

// Dir returns the path to the config directory (~/.skillpack/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.skillpack/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file at path and from the
// environment. When path is empty the default FilePath is used, and a missing
// default file is not an error. An explicit path must exist, and a file that
// cannot be parsed is always an error.
func Load(path string) error {
	explicit := path != ""
	if !explicit {
		path = FilePath()
	}

	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)
	for _, key := range Keys {
		if err := viper.BindEnv(key, branding.EnvVar(key)); err != nil {
			return fmt.Errorf("binding env for %s: %w", key, err)
		}
	}
	viper.SetDefault(KeyLogLevel, logger.DefaultLevel)
	viper.SetDefault(KeyLogFormat, logger.DefaultFormat)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !explicit && (errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return nil
}

// OutputDir returns the configured default output directory, if any.
func OutputDir() string {
	return viper.GetString(KeyOutputDir)
}

// Exclude returns the configured extra exclude patterns.
func Exclude() []string {
	return viper.GetStringSlice(KeyExclude)
}

// LogLevel returns the configured log level.
func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

// LogFormat returns the configured log format ("fmt" or "json").
func LogFormat() string {
	return viper.GetString(KeyLogFormat)
}
