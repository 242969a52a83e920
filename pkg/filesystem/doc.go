// Package filesystem provides the afero-backed file operations relaygen
// needs: picking the OS or an in-memory filesystem, deep-copying template
// trees and selecting template files by pattern.
package filesystem
