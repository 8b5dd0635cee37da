package postgresql

import "time"

// storedTime is t as a timestamptz column returns it: UTC with microsecond
// precision.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
