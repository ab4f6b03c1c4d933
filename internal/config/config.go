// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"os"

	"github.com/pvtools/loan-pv/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for loan-pv.
type Configuration struct {
	Logging  LoggingConfig      `yaml:"logging,omitempty"`
	Output   OutputConfig       `yaml:"output,omitempty"`
	Defaults CalculationDefault `yaml:"defaults,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// CalculationDefault holds defaults applied when the user does not supply a
// value.
type CalculationDefault struct {
	PeriodsPerYear int `yaml:"periodsPerYear,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file at the default path is not an error;
// the built-in defaults apply. An explicitly provided path must exist.
func LoadConfiguration(configPath string) (*Configuration, error) {
	if configPath == constants.DefaultConfigFile {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return defaultConfiguration(), nil
		}
	}

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

func defaultConfiguration() *Configuration {
	conf := &Configuration{}
	conf.applyDefaults()
	return conf
}

func (conf *Configuration) applyDefaults() {
	if conf.Defaults.PeriodsPerYear == 0 {
		conf.Defaults.PeriodsPerYear = constants.DefaultPeriodsPerYear
	}
}

// ValidateConfiguration checks the loaded configuration for values that
// cannot be used and returns warnings for each.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	valid := false
	for _, freq := range constants.ValidFrequencies {
		if conf.Defaults.PeriodsPerYear == freq {
			valid = true
			break
		}
	}
	if !valid {
		warnings = append(warnings, fmt.Sprintf(
			"defaults.periodsPerYear %d is not one of %v; falling back to %d",
			conf.Defaults.PeriodsPerYear, constants.ValidFrequencies, constants.DefaultPeriodsPerYear))
		conf.Defaults.PeriodsPerYear = constants.DefaultPeriodsPerYear
	}

	return warnings
}
