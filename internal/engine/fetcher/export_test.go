package fetcher

import "time"

// SetClock replaces the clock used for manifest timestamps.
func (f *Fetcher) SetClock(now func() time.Time) {
	f.now = now
}
