// Package config handles configuration management for relaygen.
// It layers the embedded defaults, an optional user file (TOML or YAML)
// and RELAYGEN_ environment variables, and resolves relay types, device
// families and region sets from the result.
package config
