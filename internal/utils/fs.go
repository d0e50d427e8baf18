package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// FileExists simply checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates directory if it doesn't exist
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0755)
}

// SaveTOMLFile encodes data next to filePath and renames it into place,
// so a crash never leaves a half written config behind.
func SaveTOMLFile(data any, filePath string) error {
	tmp, err := os.CreateTemp(filepath.Dir(filePath), ".wordcheck-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", filePath, err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode %s: %w", filePath, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filePath)
}

// GetAbsolutePath returns the absolute path of a file
func GetAbsolutePath(configPath string) string {
	if configPath == "" {
		return "unknown"
	}
	if !filepath.IsAbs(configPath) {
		if absPath, err := filepath.Abs(configPath); err == nil {
			return absPath
		}
	}
	return configPath
}

// GetExecutableDir returns the directory of the current executable
func GetExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(execPath), nil
}

// ConfigDirCandidates lists the places wordcheck keeps its config, preferred first.
func ConfigDirCandidates(homeDir string) []string {
	var dirs []string
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			dirs = append(dirs, filepath.Join(appData, "wordcheck"))
		}
		dirs = append(dirs, filepath.Join(homeDir, "AppData", "Roaming", "wordcheck"))
	case "darwin":
		dirs = append(dirs,
			filepath.Join(homeDir, ".config", "wordcheck"),
			filepath.Join(homeDir, "Library", "Application Support", "wordcheck"),
		)
	default:
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			dirs = append(dirs, filepath.Join(configHome, "wordcheck"))
		}
		dirs = append(dirs, filepath.Join(homeDir, ".config", "wordcheck"))
	}
	return dirs
}

// ResolveConfigDir returns the first config candidate that can be created and
// written, falling back to the executable's directory.
func ResolveConfigDir() (string, error) {
	if homeDir, err := os.UserHomeDir(); err == nil {
		if dir, ok := FirstWritableDir(ConfigDirCandidates(homeDir)...); ok {
			return dir, nil
		}
	} else {
		log.Errorf("Failed to get home directory: %v", err)
	}

	execDir, err := GetExecutableDir()
	if err != nil {
		return "", fmt.Errorf("no usable config directory: %w", err)
	}
	return execDir, nil
}

// FirstWritableDir creates each dir in turn and returns the first one that
// accepts a write.
func FirstWritableDir(dirs ...string) (string, bool) {
	for _, dir := range dirs {
		if err := EnsureDir(dir); err != nil {
			log.Debugf("Cannot create directory %s: %v", dir, err)
			continue
		}
		if isWritable(dir) {
			return dir, true
		}
	}
	return "", false
}

func isWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".write_test*")
	if err != nil {
		log.Debugf("Cannot write to directory %s: %v", dir, err)
		return false
	}
	f.Close()
	os.Remove(f.Name())
	return true
}
