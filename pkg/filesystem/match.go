package filesystem

import (
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
)

// ValidatePatterns rejects malformed doublestar patterns
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return errors.Newf(errors.ErrInvalidPattern, "invalid pattern %q", p)
		}
	}
	return nil
}

// MatchName reports whether a file name matches pattern, ignoring case
func MatchName(pattern, name string) bool {
	ok, err := doublestar.Match(strings.ToLower(pattern), strings.ToLower(name))
	return err == nil && ok
}

// ListFiles returns the names of regular files directly inside dir whose
// name matches pattern case-insensitively, in name order.
func ListFiles(fs afero.Fs, dir, pattern string) ([]string, error) {
	if err := ValidatePatterns([]string{pattern}); err != nil {
		return nil, err
	}

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateRead, "cannot list %s", dir)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Mode().IsRegular() {
			continue
		}
		if MatchName(pattern, entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
