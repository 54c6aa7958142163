package shortest

import "strconv"

// UnreachableValue is the numeric stand-in for an unreachable target in
// plain-text output.
const UnreachableValue int64 = -1

// Cost is the outcome of one query: a minimal path cost, or unreachable.
// The zero value is Unreachable.
type Cost struct {
	Value     int64 // Minimal cost; meaningful only when Reachable
	Reachable bool
}

// Unreachable is returned when no directed path exists.
var Unreachable = Cost{}

// Reached returns a reachable Cost with value v.
func Reached(v int64) Cost { return Cost{Value: v, Reachable: true} }

// Int64 returns the cost, or UnreachableValue when unreachable.
func (c Cost) Int64() int64 {
	if !c.Reachable {
		return UnreachableValue
	}
	return c.Value
}

// String returns the decimal cost, or "-1" when unreachable.
func (c Cost) String() string {
	return strconv.FormatInt(c.Int64(), 10)
}

// Format returns the decimal cost, or unreachable when no path exists.
func (c Cost) Format(unreachable string) string {
	if !c.Reachable {
		return unreachable
	}
	return strconv.FormatInt(c.Value, 10)
}
