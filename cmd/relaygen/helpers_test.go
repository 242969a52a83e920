package relaygen

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sep = "\x1c"

type fixture struct {
	dir      string
	workbook string
	template string
	output   string
}

// isolate keeps config discovery and the log file inside the test dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("RELAYGEN_CONFIG_DIR", filepath.Join(dir, "config"))
	t.Setenv("RELAYGEN_STATE_DIR", filepath.Join(dir, "state"))
	t.Setenv("NO_COLOR", "1")
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// newFixture lays out a csv workbook for the feeder relay type and a
// small 351S template
func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := isolate(t)
	f := fixture{
		dir:      dir,
		workbook: filepath.Join(dir, "workbook"),
		template: filepath.Join(dir, "tpl"),
		output:   filepath.Join(dir, "out"),
	}

	writeFile(t, filepath.Join(f.workbook, "class_351S.csv"),
		"ID,Settings Class,Logic Class,IP\n"+
			"R1,A,L1,10.0.0.1\n"+
			",A,L1,10.0.0.9\n"+
			"R2,B,L2,10.0.0.2\n")
	writeFile(t, filepath.Join(f.workbook, "settings_351S.csv"),
		"Element,Value,Comment,Unit,Notes,Class,Logic,Float,Group\n"+
			"VPU,27.5,Pickup V,,,,,TRUE,1\n"+
			"CTR,120,CT ratio,,,A,,,1\n"+
			"PTR,200,PT ratio,,,B,,,1\n")

	writeFile(t, filepath.Join(f.template, "SET_1.txt"),
		"VPU,\"0.00\""+sep+"\nCTR,\"1\""+sep+"\nPTR,\"1\""+sep+"\n")
	writeFile(t, filepath.Join(f.template, "SET_D1.txt"),
		"RID,\"\""+sep+"\nFOO,bar\n")
	writeFile(t, filepath.Join(f.template, "SET_L1.txt"),
		"CTR,\"1\""+sep+"\n")
	writeFile(t, filepath.Join(f.template, "Misc", "Cfg.txt"),
		"[INFO]\nRELAYTYPE=351S\nVERSION=3\n")
	return f
}

func (f fixture) generateArgs(extra ...string) []string {
	args := []string{
		"generate",
		"--relay", "feeder",
		"--workbook", f.workbook,
		"--template", f.template,
		"--output", f.output,
		"--format", "text",
	}
	return append(args, extra...)
}

// execute runs the root command and returns everything written to stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
