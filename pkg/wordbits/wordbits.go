// Package wordbits derives the substitution records of one relay from the
// shared settings table.
package wordbits

import (
	"math"
	"strconv"

	"github.com/marioIncandeza/relay-settings/pkg/types"
)

// Options controls which identity bits are emitted and whether comments
// are carried
type Options struct {
	// Identity is the element name of the identity bit: RID, MID or DID.
	// Empty means RID.
	Identity string

	IncludeIP         bool
	IncludePMUStation bool
	IncludeComments   bool
}

// DefaultOptions returns the options used when nothing is overridden
func DefaultOptions() Options {
	return Options{
		Identity:          types.IdentityRelay,
		IncludeIP:         true,
		IncludePMUStation: true,
		IncludeComments:   true,
	}
}

// Extract returns the word bits of relay: the identity bits first, then
// every applicable settings row in table order.
func Extract(relay types.Relay, table *types.SettingsTable, opts Options) []types.WordBit {
	identity := opts.Identity
	if identity == "" {
		identity = types.IdentityRelay
	}

	bits := []types.WordBit{{
		Element: identity,
		Value:   relay.ID,
		Group:   types.Null(),
		Comment: comment(opts, types.IdentityComment(identity)),
	}}

	if relay.HasIP && opts.IncludeIP {
		bits = append(bits, types.WordBit{
			Element: types.ElementIPAddress,
			Value:   relay.IPAddress,
			Group:   types.Null(),
			Comment: comment(opts, "IP Address"),
		})
	}

	if opts.IncludePMUStation {
		bits = append(bits, types.WordBit{
			Element: types.ElementPMUStation,
			Value:   relay.ID,
			Group:   types.Null(),
			Comment: comment(opts, "Phasor ID"),
		})
	}

	if table == nil {
		return bits
	}

	logicClass := ""
	if !relay.LogicClass.IsNull() {
		logicClass = types.StripQualifier(relay.LogicClass.String())
	}

	for _, row := range table.Rows {
		if row.Element.IsNull() || !Applies(row, relay, logicClass) {
			continue
		}
		bits = append(bits, types.WordBit{
			Element: row.Element.String(),
			Value:   FormatValue(row.Value, row.Float),
			Group:   row.Group,
			Comment: comment(opts, row.Comment.String()),
		})
	}
	return bits
}

// Applies reports whether a settings row targets the relay. logicClass is
// the relay's logic class with its qualifier stripped, or empty when the
// relay has none.
func Applies(row types.Setting, relay types.Relay, logicClass string) bool {
	if row.ClassFilter.IsNull() && row.LogicFilter.IsNull() {
		return true
	}
	if row.ClassFilter.Equal(relay.SettingsClass) {
		return true
	}
	if relay.LogicClass.IsNull() {
		return false
	}
	_, ok := row.LogicTokens()[logicClass]
	return ok
}

// FormatValue applies the numeric rules: a float with a truthy Float flag
// renders with two decimals, a float without it is truncated toward zero,
// and every other cell passes through.
func FormatValue(value, floatFlag types.Cell) types.Cell {
	if value.Kind != types.CellFloat {
		return value
	}
	if floatFlag.Truthy() {
		return types.Text(strconv.FormatFloat(value.Num, 'f', 2, 64))
	}
	if math.IsInf(value.Num, 0) || math.IsNaN(value.Num) {
		return types.Text(strconv.FormatFloat(value.Num, 'f', -1, 64))
	}
	// adding zero folds -0 into 0
	return types.Text(strconv.FormatFloat(math.Trunc(value.Num)+0, 'f', 0, 64))
}

// Lookup indexes bits by element name. On duplicates the last bit wins.
func Lookup(bits []types.WordBit) map[string]types.WordBit {
	out := make(map[string]types.WordBit, len(bits))
	for _, b := range bits {
		out[b.Element] = b
	}
	return out
}

func comment(opts Options, text string) string {
	if !opts.IncludeComments {
		return ""
	}
	return text
}
