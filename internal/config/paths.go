package config

import (
	"os"
	"path/filepath"
)

// Environment variables that locate the todo files.
const (
	EnvHome   = "TODO_PATH"
	EnvConfig = "TODO_CONFIG"
)

// Home returns the directory holding config.jsonc and .env.
// Lookup order: $TODO_PATH, $XDG_CONFIG_HOME/todo, ~/.todo.
func Home() string {
	if v := os.Getenv(EnvHome); v != "" {
		return v
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "todo")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".todo"
	}
	return filepath.Join(home, ".todo")
}

// ConfigPath returns $TODO_CONFIG when set, otherwise config.jsonc in Home.
func ConfigPath() string {
	if v := os.Getenv(EnvConfig); v != "" {
		return v
	}
	return filepath.Join(Home(), "config.jsonc")
}

// DotenvPath returns the .env file in Home. It is read before the config,
// so it can set TODO_CONFIG but not TODO_PATH.
func DotenvPath() string {
	return filepath.Join(Home(), ".env")
}
