package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv names the environment variable that relocates the catr home directory.
const HomeEnv = "CATR_HOME"

// Home returns the catr home directory
// Priority order:
//  1. CATR_HOME environment variable (if set)
//  2. .catr in the current working directory
//
// The directory is not created; catr only reads from it.
func Home() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	return filepath.Join(cwd, ".catr"), nil
}

// DefaultPath returns the config file used when --config is not given.
func DefaultPath() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.yaml"), nil
}
