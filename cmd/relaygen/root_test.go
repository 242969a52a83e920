package relaygen

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
)

func TestRootCmd_Structure(t *testing.T) {
	cmd := NewRootCmd()

	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"generate", "wordbits", "relays", "families", "regions", "template", "config", "topics", "version", "completion"} {
		assert.True(t, names[want], "missing command %s", want)
	}

	for _, flag := range []string{"verbose", "config", "format"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestRelays(t *testing.T) {
	isolate(t)

	out, err := execute(t, "relays", "--format", "json")
	require.NoError(t, err)

	var view struct {
		Items []struct {
			Key      string `json:"key"`
			Family   string `json:"family"`
			Identity string `json:"identity"`
		} `json:"relay_types"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))

	byKey := map[string]string{}
	for _, rt := range view.Items {
		byKey[rt.Key] = rt.Family
	}
	assert.Equal(t, "standard", byKey["feeder"])
	assert.Equal(t, "series_400", byKey["xfmr_487E"])
	assert.Equal(t, "series_400", byKey["line_411L"])
}

func TestFamilies_Text(t *testing.T) {
	isolate(t)

	out, err := execute(t, "families", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "standard")
	assert.Contains(t, out, "series_400")
	assert.Contains(t, out, "legacy")
	assert.Contains(t, out, "FS (0x1C)")
}

func TestRegions(t *testing.T) {
	isolate(t)

	t.Run("known relay type", func(t *testing.T) {
		out, err := execute(t, "regions", "feeder", "--format", "json")
		require.NoError(t, err)

		var view struct {
			RelayType string `json:"relay_type"`
			Items     []struct {
				Label string `json:"label"`
				Group string `json:"group"`
			} `json:"regions"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &view))
		assert.Equal(t, "feeder", view.RelayType)
		require.NotEmpty(t, view.Items)
		assert.Equal(t, "Group 1", view.Items[0].Label)
		assert.Equal(t, "1", view.Items[0].Group)
	})

	t.Run("relay type without regions", func(t *testing.T) {
		out, err := execute(t, "regions", "bus_587Z", "--format", "text")
		require.NoError(t, err)
		assert.Contains(t, out, "bus_587Z has no regions")
	})

	t.Run("unknown relay type", func(t *testing.T) {
		_, err := execute(t, "regions", "nope")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownRelay))
	})
}

func TestTemplateInfo(t *testing.T) {
	f := newFixture(t)

	out, err := execute(t, "template", "info", f.template, "--format", "json")
	require.NoError(t, err)

	var view struct {
		Info map[string]string `json:"info"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "351S", view.Info["RELAYTYPE"])
	assert.Equal(t, "3", view.Info["VERSION"])

	_, err = execute(t, "template", "info", filepath.Join(f.dir, "missing"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestConfigInitAndShow(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config", "config.toml")

	out, err := execute(t, "config", "init", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "config.toml")
	assert.FileExists(t, path)

	_, err = execute(t, "config", "init")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)

	writeFile(t, path, "[generate]\njobs = 3\n")
	out, err = execute(t, "config", "show", "--format", "json")
	require.NoError(t, err)

	var view struct {
		Sources []string `json:"sources"`
		Config  struct {
			Generate struct {
				Jobs int `json:"jobs"`
			} `json:"generate"`
		} `json:"config"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, []string{path}, view.Sources)
	assert.Equal(t, 3, view.Config.Generate.Jobs)
}

func TestConfigShow_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("RELAYGEN_GENERATE__JOBS", "6")

	out, err := execute(t, "config", "show", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "# sources: embedded defaults")
	assert.Contains(t, out, "jobs = 6")
}

func TestVersion(t *testing.T) {
	isolate(t)

	out, err := execute(t, "version", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "relaygen version")
}

func TestTopics(t *testing.T) {
	isolate(t)

	out, err := execute(t, "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "workbook")
	assert.Contains(t, out, "families")

	out, err = execute(t, "help", "families")
	require.NoError(t, err)
	assert.Contains(t, out, "series_400")
	assert.NotContains(t, out, "****")
	assert.Contains(t, out, "<FS>COMMENT")
}

func TestCompletion(t *testing.T) {
	isolate(t)

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := execute(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "relaygen")
		})
	}

	_, err := execute(t, "completion", "tcsh")
	require.Error(t, err)
}

func TestRoot_NoCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, out, "generate")
}
