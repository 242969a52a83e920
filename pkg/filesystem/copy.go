package filesystem

import (
	"io"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
	"github.com/marioIncandeza/relay-settings/pkg/logging"
)

// CopyDir deep-copies the tree at src into dst. Paths relative to src that
// match one of the skip patterns (doublestar syntax) are not copied; a
// matching directory is skipped with all of its contents.
func CopyDir(fs afero.Fs, src, dst string, skip []string) error {
	if err := ValidatePatterns(skip); err != nil {
		return err
	}

	info, err := fs.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrTemplateCopy, "cannot read template %s", src)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrTemplateCopy, "template %s is not a directory", src)
	}

	logger := logging.GetLogger("filesystem")
	return afero.Walk(fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrTemplateCopy, "cannot walk %s", path)
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrTemplateCopy, "cannot relativize %s", path)
		}
		if rel != "." && skipped(filepath.ToSlash(rel), skip) {
			logger.Trace().Str("path", rel).Msg("Skipping template entry")
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		target := filepath.Join(dst, rel)
		switch {
		case info.IsDir():
			if err := fs.MkdirAll(target, info.Mode().Perm()|0700); err != nil {
				return errors.Wrapf(err, errors.ErrTemplateCopy, "cannot create %s", target)
			}
		case info.Mode().IsRegular():
			if err := copyFile(fs, path, target, info.Mode().Perm()); err != nil {
				return err
			}
		default:
			logger.Debug().Str("path", path).Str("mode", info.Mode().String()).Msg("Skipping non-regular template entry")
		}
		return nil
	})
}

// ReplaceDir removes dst if it exists and replaces it with a fresh copy of src
func ReplaceDir(fs afero.Fs, src, dst string, skip []string) error {
	if err := fs.RemoveAll(dst); err != nil {
		return errors.Wrapf(err, errors.ErrTemplateCopy, "cannot remove %s", dst)
	}
	return CopyDir(fs, src, dst, skip)
}

func copyFile(fs afero.Fs, src, dst string, perm os.FileMode) error {
	in, err := fs.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrTemplateCopy, "cannot open %s", src)
	}
	defer func() { _ = in.Close() }()

	out, err := fs.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return errors.Wrapf(err, errors.ErrTemplateCopy, "cannot create %s", dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return errors.Wrapf(err, errors.ErrTemplateCopy, "cannot copy %s", src)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrTemplateCopy, "cannot close %s", dst)
	}
	return nil
}

func skipped(rel string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}
