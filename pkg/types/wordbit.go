package types

// Identity element names written as the first word bit of every relay
const (
	IdentityRelay  = "RID"
	IdentityMeter  = "MID"
	IdentityDevice = "DID"
)

// Reserved element names emitted ahead of the settings rows
const (
	ElementIPAddress  = "IPADDR"
	ElementPMUStation = "PMSTN"
)

// WordBit is a single element/value substitution for the template files.
// A null Group applies the substitution to every file.
type WordBit struct {
	Element string `json:"element" yaml:"element"`
	Value   Cell   `json:"value" yaml:"value"`
	Group   Cell   `json:"group" yaml:"group"`
	Comment string `json:"comment" yaml:"comment"`
}

// AppliesTo reports whether the bit may substitute lines of a file in the
// given group
func (w WordBit) AppliesTo(group FileGroup) bool {
	if w.Group.IsNull() {
		return true
	}
	return group.Known && w.Group.String() == group.Name
}

// IdentityComment returns the fixed label for an identity element name
func IdentityComment(element string) string {
	switch element {
	case IdentityMeter:
		return "Meter ID"
	case IdentityDevice:
		return "Device ID"
	default:
		return "Relay ID"
	}
}

// ValidIdentity reports whether name is one of RID, MID or DID
func ValidIdentity(name string) bool {
	switch name {
	case IdentityRelay, IdentityMeter, IdentityDevice:
		return true
	}
	return false
}
