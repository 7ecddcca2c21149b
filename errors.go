package linechart

import "errors"

// Errors returned by Chart mutations. A mutation that returns one of these
// has left the chart exactly as it was before the call.
var (
	// ErrEmptyData is returned when AddData receives nil data.
	ErrEmptyData = errors.New("linechart: empty data")

	// ErrInvalidEntry is returned when an entry lacks two finite numeric components.
	ErrInvalidEntry = errors.New("linechart: invalid entry")

	// ErrInvalidIndex is returned when a series index is outside [0, SeriesCount()].
	ErrInvalidIndex = errors.New("linechart: invalid series index")
)
