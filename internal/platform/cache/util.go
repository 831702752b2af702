package cache

import "time"

// TimeUntilNextMidnight returns how long until the next midnight in loc, as
// seen from now.
func TimeUntilNextMidnight(now time.Time, loc *time.Location) time.Duration {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc)
	return next.Sub(local)
}
