package workbook

import (
	"strconv"
	"strings"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
	"github.com/marioIncandeza/relay-settings/pkg/logging"
	"github.com/marioIncandeza/relay-settings/pkg/types"
)

// ParseClassTable turns class table rows into relays. The header row is
// dropped first, then rows without an identifier are skipped.
func ParseClassTable(rows [][]types.Cell) []types.Relay {
	if len(rows) == 0 {
		return nil
	}
	var relays []types.Relay
	for i, row := range rows[1:] {
		relay, ok := types.RelayFromRow(row)
		if !ok {
			logger := logging.GetLogger("workbook")
			logger.Trace().Int("row", i+1).Msg("Skipping class row without identifier")
			continue
		}
		relays = append(relays, relay)
	}
	return relays
}

// ParseSettingsTable turns settings table rows into settings. The header
// row must name a Float column; it is located by name, never by position.
func ParseSettingsTable(rows [][]types.Cell) (*types.SettingsTable, error) {
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrSchema, "settings table is empty")
	}

	floatCol := -1
	for i, cell := range rows[0] {
		if cell.Kind == types.CellString && cell.Str == types.FloatHeader {
			floatCol = i
			break
		}
	}
	if floatCol < 0 {
		return nil, errors.Newf(errors.ErrSchema, "settings table has no %q column", types.FloatHeader).
			WithDetail("header", headerNames(rows[0]))
	}

	table := &types.SettingsTable{FloatColumn: floatCol}
	for _, row := range rows[1:] {
		table.Rows = append(table.Rows, types.SettingFromRow(row, floatCol))
	}
	return table, nil
}

func headerNames(row []types.Cell) []string {
	names := make([]string, len(row))
	for i, c := range row {
		names[i] = c.String()
	}
	return names
}

// ParseScalar infers a cell from text: empty is null, TRUE/FALSE are
// booleans, anything strconv reads as a number is a float.
func ParseScalar(s string) types.Cell {
	if s == "" {
		return types.Null()
	}
	switch strings.ToUpper(s) {
	case "TRUE":
		return types.Boolean(true)
	case "FALSE":
		return types.Boolean(false)
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && looksNumeric(s) {
		return types.Float(f)
	}
	return types.Text(s)
}

// looksNumeric rejects the spellings ParseFloat accepts that a
// spreadsheet would keep as text (inf, nan, hex floats, underscores).
func looksNumeric(s string) bool {
	s = strings.TrimSpace(s)
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == '-', r == '+', r == 'e', r == 'E':
		default:
			return false
		}
	}
	return true
}
