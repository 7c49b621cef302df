package util

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const EnvironmentPrefix = "STATIONBOARD_"

type MissingEnvironmentKey string

func (k MissingEnvironmentKey) Error() string {
	return fmt.Sprintf("%s environment variable not set", string(k))
}

func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		pair := strings.SplitN(variable, "=", 2)
		if len(pair) != 2 {
			continue
		}

		environmentVariables[pair[0]] = pair[1]
	}

	return environmentVariables
}

// GetSecret reads key from the environment, falling back to the contents of the
// file named by key+"_FILE".
func GetSecret(env map[string]string, key string) (string, error) {
	value := env[key]
	path := env[key+"_FILE"]

	if value == "" && path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		value = string(content)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", MissingEnvironmentKey(key)
	}

	return value, nil
}

func GetEnvironmentDuration(env map[string]string, key string, fallback time.Duration) (time.Duration, error) {
	if env[key] == "" {
		return fallback, nil
	}

	duration, err := time.ParseDuration(env[key])
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}

	return duration, nil
}

func GetEnvironmentInt(env map[string]string, key string, fallback int) (int, error) {
	if env[key] == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(env[key])
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}

	return n, nil
}
