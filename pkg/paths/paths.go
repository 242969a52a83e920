package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for relaygen
	EnvConfigDir = "RELAYGEN_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for relaygen
	EnvStateDir = "RELAYGEN_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for relaygen-specific files
	AppDirName = "relaygen"

	// ConfigFileBase is the base name of configuration files, without extension
	ConfigFileBase = "config"

	// LocalConfigBase is the base name of a project-local configuration file
	LocalConfigBase = "relaygen"

	// LogFileName is the name of the log file
	LogFileName = "relaygen.log"
)

// ConfigExtensions lists the configuration file extensions in lookup order
var ConfigExtensions = []string{".toml", ".yaml", ".yml"}

// ConfigDir returns the user configuration directory
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the state directory holding the log file
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	if base := os.Getenv("XDG_STATE_HOME"); base != "" {
		return filepath.Join(base, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the full path of the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// UserConfigPath returns the default path `config init` writes to
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), ConfigFileBase+".toml")
}

// ConfigCandidates returns the configuration files consulted when no
// explicit --config is given, lowest priority first.
func ConfigCandidates(workDir string) []string {
	var out []string
	for _, ext := range ConfigExtensions {
		out = append(out, filepath.Join(ConfigDir(), ConfigFileBase+ext))
	}
	for _, ext := range ConfigExtensions {
		out = append(out, filepath.Join(workDir, LocalConfigBase+ext))
	}
	return out
}
