package testutil

import (
	"context"
	"sync"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
	"github.com/marioIncandeza/relay-settings/pkg/types"
	"github.com/marioIncandeza/relay-settings/pkg/workbook"
)

// Cell shorthands for building table rows
var (
	N = types.Null()
	S = types.Text
	F = types.Float
	B = types.Boolean
)

// SettingsHeader is a settings table header with every positional column
// named and the Float flag in column 7
func SettingsHeader() []types.Cell {
	return []types.Cell{
		S("Element"), S("Value"), S("Comment"), S("Range"), S("Units"),
		S("Class"), S("Logic"), S("Float"), S("Group"),
	}
}

// SettingRow builds a settings row in SettingsHeader layout
func SettingRow(element string, value types.Cell, comment string, class, logic, float, group types.Cell) []types.Cell {
	return []types.Cell{S(element), value, S(comment), N, N, class, logic, float, group}
}

// ClassHeader is a class table header
func ClassHeader() []types.Cell {
	return []types.Cell{S("ID"), S("Class"), S("Logic"), S("IP")}
}

// MemorySource is a workbook source serving fixed tables
type MemorySource struct {
	Class    [][]types.Cell
	Settings [][]types.Cell

	// Err is returned by Tables when set
	Err error

	mu     sync.Mutex
	calls  int
	closed bool
}

// Tables returns the fixed tables
func (m *MemorySource) Tables(ctx context.Context, ref workbook.TableRef) ([][]types.Cell, [][]types.Cell, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.Err != nil {
		return nil, nil, m.Err
	}
	if m.closed {
		return nil, nil, errors.New(errors.ErrWorkbookOpen, "source closed")
	}
	return m.Class, m.Settings, nil
}

// Close marks the source closed
func (m *MemorySource) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Calls returns how many times Tables was called
func (m *MemorySource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

var _ workbook.Source = (*MemorySource)(nil)
