package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type envValue interface {
	string | int | bool | float64 | time.Duration
}

// GetEnv reads an environment variable, falling back to defaultValue when it is unset or empty. A value that
// cannot be parsed into T is a configuration error and stops the process.
func GetEnv[T envValue](name string, defaultValue T) T {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return defaultValue
	}
	value, err := parseEnv[T](raw)
	if err != nil {
		log.Fatalf("Environment variable %s is not valid: %s", name, err)
	}
	return value
}

func GetRequiredEnv[T envValue](name string) T {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		log.Fatalf("%s environment variable is required", name)
	}
	value, err := parseEnv[T](raw)
	if err != nil {
		log.Fatalf("Environment variable %s is not valid: %s", name, err)
	}
	return value
}

func parseEnv[T envValue](raw string) (T, error) {
	var out T
	var parsed any
	var err error

	switch any(out).(type) {
	case time.Duration:
		parsed, err = time.ParseDuration(raw)
	case int:
		parsed, err = strconv.Atoi(raw)
	case bool:
		parsed, err = strconv.ParseBool(raw)
	case float64:
		parsed, err = strconv.ParseFloat(raw, 64)
	case string:
		parsed = raw
	default:
		return out, fmt.Errorf("unsupported type %T", out)
	}
	if err != nil {
		return out, fmt.Errorf("'%s' cannot be read as %T: %w", raw, out, err)
	}
	return parsed.(T), nil
}
