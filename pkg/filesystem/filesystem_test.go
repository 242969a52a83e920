package filesystem

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
)

func seedTemplate(t *testing.T, fs afero.Fs) {
	t.Helper()
	files := map[string]string{
		"/tpl/SET_1.TXT":      "VPU,\"0.00\"\x1c\r\n",
		"/tpl/SET_D1.txt":     "FOO,bar\n",
		"/tpl/Misc/Cfg.txt":   "[INFO]\nRELAYTYPE=351S\n",
		"/tpl/.git/HEAD":      "ref: main\n",
		"/tpl/notes.md":       "readme\n",
		"/tpl/Misc/~$tmp.txt": "lock\n",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
}

func TestCopyDir(t *testing.T) {
	fs := NewMemory()
	seedTemplate(t, fs)

	require.NoError(t, CopyDir(fs, "/tpl", "/out/R1", nil))

	data, err := afero.ReadFile(fs, "/out/R1/SET_1.TXT")
	require.NoError(t, err)
	assert.Equal(t, "VPU,\"0.00\"\x1c\r\n", string(data))

	assert.True(t, Exists(fs, "/out/R1/Misc/Cfg.txt"))
	assert.True(t, Exists(fs, "/out/R1/.git/HEAD"))
	assert.True(t, IsDir(fs, "/out/R1/Misc"))
}

func TestCopyDirSkipPatterns(t *testing.T) {
	fs := NewMemory()
	seedTemplate(t, fs)

	require.NoError(t, CopyDir(fs, "/tpl", "/out/R1", []string{".git", "**/~$*"}))

	assert.False(t, Exists(fs, "/out/R1/.git"))
	assert.False(t, Exists(fs, "/out/R1/Misc/~$tmp.txt"))
	assert.True(t, Exists(fs, "/out/R1/Misc/Cfg.txt"))
	assert.True(t, Exists(fs, "/out/R1/notes.md"))
}

func TestCopyDirErrors(t *testing.T) {
	fs := NewMemory()

	err := CopyDir(fs, "/missing", "/out", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateCopy))

	require.NoError(t, afero.WriteFile(fs, "/file.txt", []byte("x"), 0644))
	err = CopyDir(fs, "/file.txt", "/out", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateCopy))

	err = CopyDir(fs, "/", "/out", []string{"[a-"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPattern))
}

func TestReplaceDir(t *testing.T) {
	fs := NewMemory()
	seedTemplate(t, fs)
	require.NoError(t, afero.WriteFile(fs, "/out/R1/stale.txt", []byte("old"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/out/R1/SET_1.TXT", []byte("edited"), 0644))

	require.NoError(t, ReplaceDir(fs, "/tpl", "/out/R1", nil))

	assert.False(t, Exists(fs, "/out/R1/stale.txt"))
	data, err := afero.ReadFile(fs, "/out/R1/SET_1.TXT")
	require.NoError(t, err)
	assert.Equal(t, "VPU,\"0.00\"\x1c\r\n", string(data))
}

func TestListFiles(t *testing.T) {
	fs := NewMemory()
	seedTemplate(t, fs)

	names, err := ListFiles(fs, "/tpl", "*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"SET_1.TXT", "SET_D1.txt"}, names)

	names, err = ListFiles(fs, "/tpl", "SET_D*.TXT")
	require.NoError(t, err)
	assert.Equal(t, []string{"SET_D1.txt"}, names)

	_, err = ListFiles(fs, "/nowhere", "*.txt")
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateRead))
}

func TestMatchName(t *testing.T) {
	assert.True(t, MatchName("*.txt", "SET_1.TXT"))
	assert.True(t, MatchName("*.TXT", "set_1.txt"))
	assert.False(t, MatchName("*.txt", "SET_1.TXT.bak"))
}
