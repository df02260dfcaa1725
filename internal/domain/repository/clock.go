package repository

import "time"

// Now returns the current UTC time at millisecond precision, the resolution
// a BSON datetime keeps. Entities stamped with it compare equal after a round trip.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
