package workbook

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
	"github.com/marioIncandeza/relay-settings/pkg/logging"
	"github.com/marioIncandeza/relay-settings/pkg/textenc"
	"github.com/marioIncandeza/relay-settings/pkg/types"
)

// CSV reads tables exported as <table>.csv files in one directory
type CSV struct {
	dir   string
	codec textenc.Codec
}

// OpenCSV opens a directory of table exports. encoding names the text
// encoding of the files; empty means utf-8.
func OpenCSV(dir, encoding string) (*CSV, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrWorkbookOpen, "cannot open csv directory %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrWorkbookOpen, "%s is not a directory", dir)
	}
	if encoding == "" {
		encoding = textenc.UTF8
	}
	codec, err := textenc.Lookup(encoding)
	if err != nil {
		return nil, err
	}
	return &CSV{dir: dir, codec: codec}, nil
}

// Tables reads <class_table>.csv and <settings_table>.csv. The sheet name
// is not used.
func (c *CSV) Tables(ctx context.Context, ref TableRef) ([][]types.Cell, [][]types.Cell, error) {
	class, err := c.readTable(ctx, ref.ClassTable)
	if err != nil {
		return nil, nil, err
	}
	settings, err := c.readTable(ctx, ref.SettingsTable)
	if err != nil {
		return nil, nil, err
	}
	return class, settings, nil
}

func (c *CSV) readTable(ctx context.Context, name string) ([][]types.Cell, error) {
	path := filepath.Join(c.dir, name+".csv")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrWorkbookTable, "cannot read table %q", name).
			WithDetail("path", path)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	text, err := c.codec.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrWorkbookTable, "cannot decode table %q", name)
	}

	r := csv.NewReader(bytes.NewReader([]byte(text)))
	r.FieldsPerRecord = -1

	var rows [][]types.Cell
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrWorkbookTable, "cannot parse table %q", name)
		}
		row := make([]types.Cell, len(record))
		for i, field := range record {
			row[i] = ParseScalar(field)
		}
		rows = append(rows, row)
	}
	logger := logging.GetLogger("workbook")
	logger.Debug().Str("table", name).Int("rows", len(rows)).Msg("Read table")
	return rows, nil
}

// Close is a no-op
func (c *CSV) Close() error { return nil }
