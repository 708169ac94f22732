// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"fmt"
	"os"
	"slices"

	"github.com/joho/godotenv"
)

var envLoaded = false

// LoadEnvFile loads the dotenv file named by --env-file into the process
// environment. Variables already exported keep their value.
func LoadEnvFile() {
	if envLoaded {
		return
	}
	envLoaded = true

	args := os.Args[1:]
	for i, arg := range args {
		if arg != "--env-file" || i+1 >= len(args) {
			continue
		}
		envFile := args[i+1]
		fmt.Printf("Loading environment variables from file: %s\n", envFile)
		if err := godotenv.Load(envFile); err != nil {
			fmt.Printf("Failed to load env file: %s\n", err)
		}
		return
	}
}

func GetEnv(key string, defaultValue ...string) string {
	LoadEnvFile()
	if v := os.Getenv(key); v != "" {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

func HasFlag(name string) bool {
	return slices.Contains(os.Args[1:], name)
}
