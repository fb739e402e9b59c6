package env

import (
	"github.com/joho/godotenv"
	"log"
	"os"
)

// LoadEnv loads variables from the given .env files, or ./.env when none are
// given. Missing files are not an error; the process environment is used as is.
func LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file found, assuming environment variables are set directly.")
	}
}

// MustGetEnv returns the value of key or exits when it is unset.
func MustGetEnv(key string) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("Environment variable %s not set", key)
	}
	return val
}
