package workbook

import (
	"context"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
	"github.com/marioIncandeza/relay-settings/pkg/logging"
	"github.com/marioIncandeza/relay-settings/pkg/types"
)

// XLSX reads named Excel tables from a workbook file
type XLSX struct {
	path string
	file *excelize.File
}

// OpenXLSX opens an .xlsx/.xlsm workbook
func OpenXLSX(path string) (*XLSX, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrWorkbookOpen, "cannot open workbook %s", path)
	}
	return &XLSX{path: path, file: f}, nil
}

// Tables reads the class and settings tables from ref.Sheet
func (x *XLSX) Tables(ctx context.Context, ref TableRef) ([][]types.Cell, [][]types.Cell, error) {
	tables, err := x.file.GetTables(ref.Sheet)
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrWorkbookTable, "cannot list tables on sheet %q", ref.Sheet)
	}

	class, err := x.readTable(ctx, ref.Sheet, tables, ref.ClassTable)
	if err != nil {
		return nil, nil, err
	}
	settings, err := x.readTable(ctx, ref.Sheet, tables, ref.SettingsTable)
	if err != nil {
		return nil, nil, err
	}
	return class, settings, nil
}

func (x *XLSX) readTable(ctx context.Context, sheet string, tables []excelize.Table, name string) ([][]types.Cell, error) {
	var rangeRef string
	var names []string
	for _, t := range tables {
		names = append(names, t.Name)
		if strings.EqualFold(t.Name, name) {
			rangeRef = t.Range
		}
	}
	if rangeRef == "" {
		return nil, errors.Newf(errors.ErrWorkbookTable, "table %q not found on sheet %q", name, sheet).
			WithDetail("tables", names)
	}

	c1, r1, c2, r2, err := parseRange(rangeRef)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrWorkbookTable, "table %q has invalid range %q", name, rangeRef)
	}

	rows := make([][]types.Cell, 0, r2-r1+1)
	for r := r1; r <= r2; r++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row := make([]types.Cell, 0, c2-c1+1)
		for c := c1; c <= c2; c++ {
			cell, err := x.readCell(sheet, c, r)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrWorkbookTable, "cannot read table %q", name)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	logger := logging.GetLogger("workbook")
	logger.Debug().Str("table", name).Str("range", rangeRef).Int("rows", len(rows)).Msg("Read table")
	return rows, nil
}

func (x *XLSX) readCell(sheet string, col, row int) (types.Cell, error) {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return types.Null(), err
	}
	kind, err := x.file.GetCellType(sheet, ref)
	if err != nil {
		return types.Null(), err
	}
	raw, err := x.file.GetCellValue(sheet, ref, excelize.Options{RawCellValue: true})
	if err != nil {
		return types.Null(), err
	}
	return cellFromExcel(kind, raw), nil
}

// cellFromExcel maps a stored cell to the scalar model: strings stay
// strings, booleans come back as 0/1, and untyped or numeric cells are
// numbers when they parse as one.
func cellFromExcel(kind excelize.CellType, raw string) types.Cell {
	switch kind {
	case excelize.CellTypeBool:
		return types.Boolean(raw == "1" || strings.EqualFold(raw, "TRUE"))
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula, excelize.CellTypeError:
		if raw == "" {
			return types.Null()
		}
		return types.Text(raw)
	}
	if raw == "" {
		return types.Null()
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return types.Float(f)
	}
	return types.Text(raw)
}

func parseRange(ref string) (c1, r1, c2, r2 int, err error) {
	from, to, ok := strings.Cut(ref, ":")
	if !ok {
		to = from
	}
	if c1, r1, err = excelize.CellNameToCoordinates(from); err != nil {
		return
	}
	if c2, r2, err = excelize.CellNameToCoordinates(to); err != nil {
		return
	}
	if c2 < c1 {
		c1, c2 = c2, c1
	}
	if r2 < r1 {
		r1, r2 = r2, r1
	}
	return
}

// Close releases the workbook
func (x *XLSX) Close() error {
	return x.file.Close()
}
