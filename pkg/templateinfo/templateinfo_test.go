package templateinfo

import (
	"bufio"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
	"github.com/marioIncandeza/relay-settings/pkg/testutil"
)

func TestParse(t *testing.T) {
	data := []byte("[GENERAL]\r\nA=1\r\n[INFO]\r\nRELAYTYPE = 351S\r\nFID=SEL-351S-7-R514\r\nnot a pair\r\nEMPTY=\r\n[OTHER]\r\nB=2\r\n[INFO]\r\nPARTNO=0351S\r\n")

	got, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, Info{
		"RELAYTYPE": "351S",
		"FID":       "SEL-351S-7-R514",
		"EMPTY":     "",
		"PARTNO":    "0351S",
	}, got)
	assert.Equal(t, []string{"EMPTY", "FID", "PARTNO", "RELAYTYPE"}, got.Keys())
}

func TestParseValueWithEquals(t *testing.T) {
	got, err := Parse([]byte("[INFO]\nEXPR=A=B\n"))
	require.NoError(t, err)
	assert.Equal(t, "A=B", got["EXPR"])
}

func TestRead(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteTree(t, fs, "/tpl", testutil.FileTree{
		"Misc": testutil.FileTree{"Cfg.txt": "[INFO]\nRELAYTYPE=487E\n"},
	})

	got, err := Read(fs, "/tpl")
	require.NoError(t, err)
	assert.Equal(t, Info{"RELAYTYPE": "487E"}, got)
}

func TestReadMissingFile(t *testing.T) {
	got, err := Read(afero.NewMemMapFs(), "/tpl")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadOverlongLine(t *testing.T) {
	fs := testutil.NewTestFS()
	long := "NOTE=" + strings.Repeat("x", bufio.MaxScanTokenSize)
	testutil.WriteTree(t, fs, "/tpl", testutil.FileTree{
		"Misc": testutil.FileTree{"Cfg.txt": "[INFO]\n" + long + "\nRELAYTYPE=487E\n"},
	})

	_, err := Read(fs, "/tpl")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateRead))
}
