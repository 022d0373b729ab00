package main

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/mordilloSan/sloman-logger/logger"
)

var (
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")
)

// envConfig holds the defaults of the root command flags.
type envConfig struct {
	LogLevel   string `env:"SLOMAN_LOG_LEVEL" envDefault:"INFO"`
	OutputFile string `env:"SLOMAN_OUTPUT_FILE"`
}

func loadEnvConfig() (*envConfig, error) {
	var envVars envConfig
	if err := env.Parse(&envVars); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}

	if err := validateEnvironmentVariables(&envVars); err != nil {
		return nil, err
	}
	return &envVars, nil
}

func validateEnvironmentVariables(envVars *envConfig) error {
	if _, err := logger.ParseLevel(envVars.LogLevel); err != nil {
		return fmt.Errorf("%w: SLOMAN_LOG_LEVEL: %s", ErrEnvVariablesNotValid, err.Error())
	}
	return nil
}
