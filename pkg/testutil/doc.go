// Package testutil provides utilities for testing relaygen components.
//
// Key components:
//   - FileTree: declarative template trees written into an afero filesystem
//   - Snapshot: the files of a directory as a path -> content map
//   - MemorySource: an in-memory workbook source
//
// All test data should be defined inline, not in external files.
package testutil
