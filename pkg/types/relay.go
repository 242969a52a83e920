package types

// Column positions of the relay class table
const (
	ClassColID            = 0
	ClassColSettingsClass = 1
	ClassColLogicClass    = 2
	ClassColIPAddress     = 3
)

// Relay is one row of the class table translated into named fields
type Relay struct {
	ID            Cell `json:"id" yaml:"id"`
	SettingsClass Cell `json:"settings_class" yaml:"settings_class"`
	LogicClass    Cell `json:"logic_class" yaml:"logic_class"`
	IPAddress     Cell `json:"ip_address" yaml:"ip_address"`

	// HasIP is false when the source row was too short to carry an IP column
	HasIP bool `json:"has_ip" yaml:"has_ip"`
}

// Name returns the identifier as used for the output directory
func (r Relay) Name() string {
	return r.ID.String()
}

// RelayFromRow translates a positional class-table row. It reports false
// for rows without an identifier.
func RelayFromRow(row []Cell) (Relay, bool) {
	id := cellAt(row, ClassColID)
	if id.IsNull() {
		return Relay{}, false
	}
	return Relay{
		ID:            id,
		SettingsClass: cellAt(row, ClassColSettingsClass),
		LogicClass:    cellAt(row, ClassColLogicClass),
		IPAddress:     cellAt(row, ClassColIPAddress),
		HasIP:         len(row) > ClassColIPAddress,
	}, true
}

func cellAt(row []Cell, i int) Cell {
	if i < 0 || i >= len(row) {
		return Null()
	}
	return row[i]
}
