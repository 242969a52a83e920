package workbook

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
	"github.com/marioIncandeza/relay-settings/pkg/logging"
	"github.com/marioIncandeza/relay-settings/pkg/types"
)

// Kind names a workbook source implementation
type Kind string

const (
	KindAuto   Kind = ""
	KindXLSX   Kind = "xlsx"
	KindCSV    Kind = "csv"
	KindSQLite Kind = "sqlite"
)

// Kinds lists the selectable source kinds
var Kinds = []Kind{KindXLSX, KindCSV, KindSQLite}

// TableRef locates the two tables of one relay type
type TableRef struct {
	Sheet         string
	ClassTable    string
	SettingsTable string
}

// Source exposes the class and settings tables as rows of cells. The
// first row of each table is its header.
type Source interface {
	Tables(ctx context.Context, ref TableRef) (class, settings [][]types.Cell, err error)
	Close() error
}

// ParseKind validates a kind name
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindAuto, KindXLSX, KindCSV, KindSQLite:
		return k, nil
	}
	return KindAuto, errors.Newf(errors.ErrUnknownSource, "unknown workbook source %q", s).
		WithDetail("known", Kinds)
}

// DetectKind picks a source kind from the path: directories are csv,
// .db/.sqlite files are sqlite, everything else is xlsx.
func DetectKind(path string) Kind {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return KindCSV
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite
	case ".csv":
		return KindCSV
	default:
		return KindXLSX
	}
}

// Open opens the workbook at path with the given kind. KindAuto detects
// the kind from the path.
func Open(kind Kind, path string) (Source, error) {
	if kind == KindAuto {
		kind = DetectKind(path)
	}
	logger := logging.GetLogger("workbook")
	logger.Debug().Str("kind", string(kind)).Str("path", path).Msg("Opening workbook")

	var (
		src Source
		err error
	)
	switch kind {
	case KindXLSX:
		src, err = OpenXLSX(path)
	case KindCSV:
		dir := path
		if info, statErr := os.Stat(path); statErr == nil && !info.IsDir() {
			dir = filepath.Dir(path)
		}
		src, err = OpenCSV(dir, "")
	case KindSQLite:
		src, err = OpenSQLite(path)
	default:
		return nil, errors.Newf(errors.ErrUnknownSource, "unknown workbook source %q", kind)
	}
	if err != nil {
		return nil, err
	}
	return src, nil
}

// Load reads both tables of ref and ingests them. The settings table is
// parsed first so a schema error surfaces before anything else happens.
func Load(ctx context.Context, src Source, ref TableRef) ([]types.Relay, *types.SettingsTable, error) {
	classRows, settingsRows, err := src.Tables(ctx, ref)
	if err != nil {
		return nil, nil, err
	}
	settings, err := ParseSettingsTable(settingsRows)
	if err != nil {
		return nil, nil, err
	}
	return ParseClassTable(classRows), settings, nil
}
