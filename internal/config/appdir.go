package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	AppName            = "WordWise"
	DictionaryFileName = "dictionary.json"
)

// DefaultAppDir returns the per-user data directory of the application.
func DefaultAppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return appDir(runtime.GOOS, home, os.Getenv("APPDATA"))
}

func appDir(goos, home, appData string) string {
	switch goos {
	case "windows":
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, AppName)
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", AppName)
	case "linux":
		return filepath.Join(home, ".local", "share", AppName)
	default:
		return filepath.Join(home, "."+AppName)
	}
}
