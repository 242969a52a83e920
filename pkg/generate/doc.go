// Package generate runs a relay settings batch: it reads the workbook
// tables, and for every relay replaces <output>/<relay id> with a fresh
// copy of the template, extracts the relay's word bits and rewrites the
// copy.
//
// Relays run one at a time by default. With Jobs > 1 they fan out over an
// errgroup; each relay still copies before it rewrites, relay directories
// are disjoint, and the first failure stops new relays from starting.
package generate
