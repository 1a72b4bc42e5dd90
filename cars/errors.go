package cars

import "errors"

// Sentinel errors for the merge pipeline
var (
	ErrNoDataFound = errors.New("no CSV files found for the specified range")
)
