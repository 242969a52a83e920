package generate

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
	"github.com/marioIncandeza/relay-settings/pkg/filesystem"
	"github.com/marioIncandeza/relay-settings/pkg/testutil"
	"github.com/marioIncandeza/relay-settings/pkg/types"
	"github.com/marioIncandeza/relay-settings/pkg/wordbits"
	"github.com/marioIncandeza/relay-settings/pkg/workbook"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	N = testutil.N
	S = testutil.S
	F = testutil.F
	B = testutil.B
)

var standard = types.Family{
	Name:           "standard",
	ClearValue:     `"NA"`,
	ClearGroups:    []string{"D1"},
	FieldSeparator: types.QuickSetSeparator,
	Encoding:       "ascii",
}

var feeder = types.RelayType{Key: "feeder", Family: "standard", Identity: "RID"}

func vpuSource() *testutil.MemorySource {
	return &testutil.MemorySource{
		Class: [][]types.Cell{
			testutil.ClassHeader(),
			{S("R1"), S("A"), S("L1"), S("10.0.0.1")},
		},
		Settings: [][]types.Cell{
			testutil.SettingsHeader(),
			testutil.SettingRow("VPU", F(27.5), "Pickup V", N, N, B(true), S("1")),
		},
	}
}

func newRequest(t *testing.T, src workbook.Source) Request {
	t.Helper()
	fs := testutil.NewTestFS()
	testutil.WriteTree(t, fs, "/tpl", testutil.FileTree{
		"SET_1.txt":  "VPU,\"0.00\"\x1c\n",
		"SET_D1.txt": "RID,\"\"\x1c\nFOO,bar\n",
		"SET_D2.txt": "FOO,bar\n",
		"Misc": testutil.FileTree{
			"Cfg.txt": "[INFO]\nRELAYTYPE=351S\n",
		},
	})
	return Request{
		FS:          fs,
		Source:      src,
		RelayType:   feeder,
		Family:      standard,
		TemplateDir: "/tpl",
		OutputDir:   "/out",
		WordBits:    wordbits.DefaultOptions(),
	}
}

func TestRunEndToEnd(t *testing.T) {
	tests := []struct {
		name     string
		comments bool
		want     string
	}{
		{"with comments", true, "VPU,\"27.50\"\x1cPickup V\n"},
		{"without comments", false, "VPU,\"27.50\"\x1c\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(t, vpuSource())
			req.WordBits.IncludeComments = tt.comments

			report, err := Run(context.Background(), req)
			require.NoError(t, err)

			assert.Equal(t, tt.want, testutil.ReadFile(t, req.FS, "/out/R1/SET_1.txt"))
			assert.Equal(t, "FOO,bar\n", testutil.ReadFile(t, req.FS, "/out/R1/SET_D2.txt"))
			assert.Equal(t, "[INFO]\nRELAYTYPE=351S\n", testutil.ReadFile(t, req.FS, "/out/R1/Misc/Cfg.txt"))

			require.Len(t, report.Relays, 1)
			assert.Equal(t, "R1", report.Relays[0].ID)
			assert.Equal(t, 4, report.Relays[0].WordBits)
		})
	}
}

func TestRunClearsD1(t *testing.T) {
	req := newRequest(t, vpuSource())
	req.WordBits.IncludeComments = false

	_, err := Run(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "RID,\"R1\"\x1c\nFOO,\"NA\"\x1c\n", testutil.ReadFile(t, req.FS, "/out/R1/SET_D1.txt"))
}

func TestRunSkipsNullIdentifiers(t *testing.T) {
	src := vpuSource()
	src.Class = append(src.Class,
		[]types.Cell{N, S("A"), S("L1"), S("10.0.0.9")},
		[]types.Cell{F(101), S("B")},
	)
	req := newRequest(t, src)

	report, err := Run(context.Background(), req)
	require.NoError(t, err)

	entries, err := filesystemNames(req)
	require.NoError(t, err)
	assert.Equal(t, []string{"101", "R1"}, entries)
	assert.Len(t, report.Relays, 2)
	assert.False(t, filesystem.Exists(req.FS, "/out/ID"))
}

func filesystemNames(req Request) ([]string, error) {
	f, err := req.FS.Open(req.OutputDir)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, err
	}
	sortStrings(names)
	return names, nil
}

func TestRunReplacesExistingDirectory(t *testing.T) {
	req := newRequest(t, vpuSource())
	testutil.WriteTree(t, req.FS, "/out/R1", testutil.FileTree{
		"stale.txt": "old",
		"SET_1.txt": "VPU,\"99.00\"\x1c\n",
	})

	_, err := Run(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, filesystem.Exists(req.FS, "/out/R1/stale.txt"))
	assert.Equal(t, "VPU,\"27.50\"\x1cPickup V\n", testutil.ReadFile(t, req.FS, "/out/R1/SET_1.txt"))
}

func TestRunSchemaErrorCreatesNothing(t *testing.T) {
	src := vpuSource()
	src.Settings[0] = []types.Cell{S("Element"), S("Value"), S("Comment")}
	req := newRequest(t, src)

	_, err := Run(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSchema))
	assert.False(t, filesystem.Exists(req.FS, "/out"))
}

func TestRunExclusions(t *testing.T) {
	req := newRequest(t, vpuSource())
	req.Excluded = []string{"1", "D1"}

	_, err := Run(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "VPU,\"0.00\"\x1c\n", testutil.ReadFile(t, req.FS, "/out/R1/SET_1.txt"))
	assert.Equal(t, "RID,\"\"\x1c\nFOO,bar\n", testutil.ReadFile(t, req.FS, "/out/R1/SET_D1.txt"))
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	src := vpuSource()
	src.Class = [][]types.Cell{
		testutil.ClassHeader(),
		{S("R1"), S("A"), N},
		{S("R2"), S("BAD"), N},
		{S("R3"), S("A"), N},
	}
	src.Settings = append(src.Settings,
		testutil.SettingRow("VPU", S("1"), "Pickup µV", S("BAD"), N, N, N))
	req := newRequest(t, src)

	report, err := Run(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEncoding))
	assert.Equal(t, "R2", errors.GetErrorDetails(err)["relay"])

	require.Len(t, report.Relays, 1)
	assert.Equal(t, "R1", report.Relays[0].ID)
	assert.True(t, filesystem.Exists(req.FS, "/out/R1/SET_1.txt"))
	assert.True(t, filesystem.Exists(req.FS, "/out/R2"))
	assert.False(t, filesystem.Exists(req.FS, "/out/R3"))
}

func TestRunRejectsPathLikeIdentifiers(t *testing.T) {
	for _, id := range []string{".", "..", "a/b", `a\b`} {
		t.Run(id, func(t *testing.T) {
			src := vpuSource()
			src.Class = append(src.Class, []types.Cell{S(id), S("A"), N})
			req := newRequest(t, src)

			report, err := Run(context.Background(), req)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			assert.Equal(t, id, errors.GetErrorDetails(err)["relay"])

			require.Len(t, report.Relays, 1)
			assert.Equal(t, "VPU,\"27.50\"\x1cPickup V\n", testutil.ReadFile(t, req.FS, "/out/R1/SET_1.txt"))
			assert.False(t, filesystem.Exists(req.FS, "/out/SET_1.txt"))
			assert.True(t, filesystem.Exists(req.FS, "/tpl/SET_1.txt"))
		})
	}
}

func TestRunParentIdentifierLeavesTemplate(t *testing.T) {
	src := vpuSource()
	src.Class = [][]types.Cell{testutil.ClassHeader(), {S(".."), S("A"), N}}
	req := newRequest(t, src)
	req.OutputDir = "/tpl/out"

	_, err := Run(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Equal(t, "VPU,\"0.00\"\x1c\n", testutil.ReadFile(t, req.FS, "/tpl/SET_1.txt"))
}

func TestRunMissingTemplate(t *testing.T) {
	req := newRequest(t, vpuSource())
	req.TemplateDir = "/nope"

	_, err := Run(context.Background(), req)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateCopy))
}

func TestRunCancelled(t *testing.T) {
	req := newRequest(t, vpuSource())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Run(ctx, req)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Relays)
	assert.False(t, filesystem.Exists(req.FS, "/out/R1"))
}

func TestRunReport(t *testing.T) {
	req := newRequest(t, vpuSource())
	req.Excluded = []string{"D2"}

	report, err := Run(context.Background(), req)
	require.NoError(t, err)

	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err)
	assert.Equal(t, "feeder", report.RelayType)
	assert.Equal(t, "standard", report.Family)
	assert.Equal(t, 1, report.Jobs)
	assert.Equal(t, []string{"D2"}, report.Excluded)
	assert.Positive(t, report.Duration)

	matched, cleared, _ := report.Totals()
	assert.Equal(t, 2, matched)
	assert.Equal(t, 1, cleared)
	assert.Positive(t, report.Bytes())
}

func manyRelays(n int) *testutil.MemorySource {
	src := vpuSource()
	src.Class = [][]types.Cell{testutil.ClassHeader()}
	for i := 0; i < n; i++ {
		src.Class = append(src.Class, []types.Cell{S(fmt.Sprintf("R%02d", i)), S("A"), S("L1"), S("10.0.0.1")})
	}
	return src
}

func TestRunParallelMatchesSequential(t *testing.T) {
	seq := newRequest(t, manyRelays(12))
	_, err := Run(context.Background(), seq)
	require.NoError(t, err)

	par := newRequest(t, manyRelays(12))
	par.Jobs = 4
	report, err := Run(context.Background(), par)
	require.NoError(t, err)

	assert.Equal(t, 4, report.Jobs)
	require.Len(t, report.Relays, 12)
	for i, r := range report.Relays {
		assert.Equal(t, fmt.Sprintf("R%02d", i), r.ID)
	}
	assert.Equal(t, testutil.Snapshot(t, seq.FS, "/out"), testutil.Snapshot(t, par.FS, "/out"))
}

func TestRunParallelFailure(t *testing.T) {
	src := manyRelays(6)
	src.Class = append(src.Class, []types.Cell{S("RBAD"), S("BAD"), N})
	src.Settings = append(src.Settings,
		testutil.SettingRow("VPU", S("1"), "Pickup µV", S("BAD"), N, N, N))
	req := newRequest(t, src)
	req.Jobs = 3

	report, err := Run(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEncoding))
	for _, r := range report.Relays {
		assert.NotEqual(t, "RBAD", r.ID)
	}
}

func TestRunParallelDuplicateIDsRunSequentially(t *testing.T) {
	src := vpuSource()
	src.Class = append(src.Class, []types.Cell{S("R1"), S("B"), N})
	req := newRequest(t, src)
	req.Jobs = 4

	report, err := Run(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, report.Relays, 2)
	assert.Equal(t, "VPU,\"27.50\"\x1cPickup V\n", testutil.ReadFile(t, req.FS, "/out/R1/SET_1.txt"))
}

func TestRunSourceError(t *testing.T) {
	src := vpuSource()
	src.Err = errors.New(errors.ErrWorkbookTable, "table missing")
	req := newRequest(t, src)

	_, err := Run(context.Background(), req)
	assert.True(t, errors.IsErrorCode(err, errors.ErrWorkbookTable))
}
