// Package workbook reads the class and settings tables a relay batch is
// generated from. Sources expose both tables as ordered rows of cells;
// ingestion turns those rows into named relay and setting records.
//
// Three sources exist:
//
//   - xlsx: named Excel tables on a worksheet
//   - csv: a directory of <table>.csv files
//   - sqlite: a database with one table per workbook table
package workbook
