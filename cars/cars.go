// Package cars holds the domain types for the yearly car-model merger.
package cars

// FirstYear and LastYear bound the model years scanned for <year>.csv files.
const (
	FirstYear = 1992
	LastYear  = 2026
)

// TableName is the destination table for the combined data.
const TableName = "all_cars"

// YearColumn is the column forced to the source file's model year on every
// row, overriding any value the CSV itself carried.
const YearColumn = "year"
