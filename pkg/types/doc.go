// Package types defines the data shared by the extractor, the rewriter and
// the batch driver: workbook cells, relay and setting rows translated from
// their table positions, word bits, file groups and device families.
package types
