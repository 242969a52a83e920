package workbook

import (
	"context"
	"database/sql"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
	"github.com/marioIncandeza/relay-settings/pkg/logging"
	"github.com/marioIncandeza/relay-settings/pkg/types"
)

// SQLite reads tables from a database holding one table per workbook table.
// Column names form the header row and rows come back in rowid order.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens an existing sqlite database
func OpenSQLite(path string) (*SQLite, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrWorkbookOpen, "cannot open database %s", path)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrWorkbookOpen, "cannot open database %s", path)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, errors.ErrWorkbookOpen, "cannot open database %s", path)
	}
	return &SQLite{db: db}, nil
}

// NewSQLite wraps an open database handle
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

// Tables reads the class and settings tables. The sheet name is not used.
func (s *SQLite) Tables(ctx context.Context, ref TableRef) ([][]types.Cell, [][]types.Cell, error) {
	class, err := s.readTable(ctx, ref.ClassTable)
	if err != nil {
		return nil, nil, err
	}
	settings, err := s.readTable(ctx, ref.SettingsTable)
	if err != nil {
		return nil, nil, err
	}
	return class, settings, nil
}

func (s *SQLite) readTable(ctx context.Context, name string) ([][]types.Cell, error) {
	query := "SELECT * FROM " + quoteIdent(name) + " ORDER BY rowid"
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrWorkbookTable, "cannot read table %q", name)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrWorkbookTable, "cannot read columns of %q", name)
	}
	header := make([]types.Cell, len(cols))
	for i, col := range cols {
		header[i] = types.Text(col)
	}
	out := [][]types.Cell{header}

	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Wrapf(err, errors.ErrWorkbookTable, "cannot scan table %q", name)
		}
		row := make([]types.Cell, len(cols))
		for i, v := range values {
			row[i] = cellFromSQL(v)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrWorkbookTable, "cannot read table %q", name)
	}
	logger := logging.GetLogger("workbook")
	logger.Debug().Str("table", name).Int("rows", len(out)).Msg("Read table")
	return out, nil
}

func cellFromSQL(v any) types.Cell {
	switch x := v.(type) {
	case nil:
		return types.Null()
	case int64:
		return types.Float(float64(x))
	case float64:
		return types.Float(x)
	case bool:
		return types.Boolean(x)
	case []byte:
		return types.Text(string(x))
	case string:
		return types.Text(x)
	default:
		return types.Null()
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Close closes the database
func (s *SQLite) Close() error {
	return s.db.Close()
}
