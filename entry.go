package linechart

import (
	"encoding/json"
	"math"
	"strconv"
)

// Entry is one raw data entry as handed to the chart: at least an x and a
// y component. Components past the second are ignored. A NaN component
// marks a value that was not numeric on input.
type Entry []float64

// NewEntry builds an Entry from loosely typed values, as decoded from
// JSON or read from a HUD script. Go numeric types and json.Number are
// converted; anything else becomes NaN, which the chart rejects.
func NewEntry(values ...any) Entry {
	e := make(Entry, len(values))
	for i, v := range values {
		e[i] = toFloat(v)
	}
	return e
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case json.Number:
		f, err := strconv.ParseFloat(string(n), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// Valid reports whether e has two finite numeric components.
func (e Entry) Valid() bool {
	return len(e) >= 2 && isFinite(e[0]) && isFinite(e[1])
}

// Point returns the first two components of e.
// The result is meaningless unless e is Valid.
func (e Entry) Point() Point {
	return Point{X: e[0], Y: e[1]}
}

// Point is a validated data point held by a series.
type Point struct {
	X, Y float64
}

// Series is one line of the chart. Insertion order is draw order.
type Series []Point

// Clone returns a copy of s that shares no memory with it.
func (s Series) Clone() Series {
	if s == nil {
		return nil
	}
	out := make(Series, len(s))
	copy(out, s)
	return out
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
