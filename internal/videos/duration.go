// Package videos holds the pure filtering and projection step between
// the raw API records and the persisted feed.
package videos

import (
	"time"

	"github.com/sosodev/duration"
)

// DurationSeconds converts an ISO-8601 duration such as "PT1H5M3S" into
// total whole seconds. A string that does not parse yields 0, which the
// filter then treats as "no duration". Never fails.
func DurationSeconds(iso string) int {
	d, err := duration.Parse(iso)
	if err != nil {
		return 0
	}

	seconds := int(d.ToTimeDuration() / time.Second)
	if seconds < 0 {
		return 0
	}
	return seconds
}
