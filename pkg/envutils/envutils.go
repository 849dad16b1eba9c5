package envutils

import (
	"log"
	"os"
)

// Env reads the variable or falls back to defaultValue, logging which one won.
func Env(name, defaultValue string) string {
	if value := os.Getenv(name); value != "" {
		log.Printf("[%s]: %s", name, value)
		return value
	}
	log.Printf("[%s_DEFAULT]: %s", name, defaultValue)
	return defaultValue
}
