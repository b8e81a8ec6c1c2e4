package database

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
)

// GetAppDataPath returns where appName keeps its data:
//
//	linux    $XDG_DATA_HOME/appName, or ~/.local/share/appName
//	darwin   ~/Library/Application Support/appName
//	windows  %APPDATA%\appName
func GetAppDataPath(appName string) (string, error) {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName), nil
		}
	}
	if runtime.GOOS == "linux" {
		if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
			return filepath.Join(dataHome, appName), nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WithStack(err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", appName), nil
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", appName), nil
	default:
		return filepath.Join(home, ".local", "share", appName), nil
	}
}
