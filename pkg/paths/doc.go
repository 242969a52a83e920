// Package paths provides centralized path handling for relaygen.
//
// It follows the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/relaygen (user configuration)
//   - State: $XDG_STATE_HOME/relaygen (log file)
//
// # Environment Variables
//
//   - RELAYGEN_CONFIG_DIR: Override the config directory
//   - RELAYGEN_STATE_DIR: Override the state directory
package paths
