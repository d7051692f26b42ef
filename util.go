package main

import (
	"os"
)

const CONFIG_ENV = "TRANSIT_CONFIG"
const DEFAULT_CONFIG = "./config.yaml"

// Picks the config file from the flag, then the environment, then the default.
func ResolveConfigPath(flag_value string) string {
	if flag_value != "" {
		return flag_value
	}
	if path := os.Getenv(CONFIG_ENV); path != "" {
		return path
	}
	return DEFAULT_CONFIG
}
