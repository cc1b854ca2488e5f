package config

import (
	"os"
	"path/filepath"
)

const defaultRuntimePath = ".deptdir"

// GetRuntimePath reads DEPT_RUNTIME_PATH directly. It is used before the .env
// file in the runtime directory has been loaded.
func GetRuntimePath() string {
	return resolveRuntimePath(os.Getenv("DEPT_RUNTIME_PATH"))
}

// relative paths live under the user's home
func resolveRuntimePath(path string) string {
	if path == "" {
		path = defaultRuntimePath
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
