package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/cardata/cardb/cars"
	"github.com/cardata/cardb/internal/logger"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const configFilename = "config.yaml"

// SetupConfig loads file-based configuration and initializes the logger.
// Every key has a default, so a missing config.yaml is not an error; the
// defaults are written out so the paths are visible and editable.
func SetupConfig() *cars.Config {
	viper.SetDefault("source_dir", "./us_car_models_data_master")
	viper.SetDefault("dbfile", "cars.db")
	viper.SetDefault("log_format", "pretty") // pretty, json, or text
	viper.SetDefault("log_level", "info")    // debug, info, warn, error

	viper.SetConfigFile(configFilename)
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()

	createDefaultConfigFile := false

	if err != nil {
		if strings.Contains(err.Error(), "no such file or directory") {
			createDefaultConfigFile = true
		} else {
			slog.Error("failed to read config", "error", err)
			os.Exit(1)
		}
	}

	// Initialize logger with configured format and level
	logger.InitLogger(
		logger.ParseLogFormat(viper.GetString("log_format")),
		logger.ParseLogLevel(viper.GetString("log_level")),
	)

	config := &cars.Config{
		SourceDir:    viper.GetString("source_dir"),
		DatabaseFile: viper.GetString("dbfile"),
		LogFormat:    viper.GetString("log_format"),
		LogLevel:     viper.GetString("log_level"),
	}

	if createDefaultConfigFile {
		slog.Info("config not found, writing defaults", "file", configFilename)
		conf, err := os.Create(configFilename)
		if err != nil {
			slog.Error("failed to create config file", "error", err)
			os.Exit(1)
		}
		defer conf.Close()

		if err := yaml.NewEncoder(conf).Encode(config); err != nil {
			slog.Error("failed to write config file", "error", err)
			os.Exit(1)
		}
	}

	return config
}
