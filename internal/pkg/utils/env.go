package utils

import (
	"log"
	"os"
	"strconv"
)

// Env readers fall back to the given default when the variable is unset or
// unparsable; a parse failure is logged so a typo in deployment config is
// visible at startup.

func GetEnvString(key, fallback string) string {
	if value, found := os.LookupEnv(key); found {
		return value
	}
	return fallback
}

func GetEnvInt(key string, fallback int) int {
	value, found := os.LookupEnv(key)
	if !found {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error parsing %s: %v, will use default value", key, err)
		return fallback
	}
	return parsed
}

func GetEnvBool(key string, fallback bool) bool {
	value, found := os.LookupEnv(key)
	if !found {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error parsing %s: %v, will use default value", key, err)
		return fallback
	}
	return parsed
}
