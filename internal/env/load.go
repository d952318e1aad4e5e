// Package env loads optional overrides from a .env file in the working
// directory, e.g. MAZERUN_CONFIG to point at an alternate tuning file.
package env

import (
	"os"

	"github.com/joho/godotenv"
)

// Load reads the given file (e.g. ".env") and sets environment variables
// for each KEY=VALUE line. The file may be missing; that is not an error.
func Load(path string) error {
	if err := godotenv.Load(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

// Get returns the value of key, or fallback when the variable is unset or
// empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
