package format

import "time"

const (
	filetimeOffset = 116444736000000000 // FILETIME epoch (1601) to Unix epoch in 100ns units
	filetimeUnit   = 100                // FILETIME ticks are 100ns
)

// FiletimeToTime converts a Windows FILETIME value to time.Time. Values
// before the Unix epoch clamp to it.
func FiletimeToTime(v uint64) time.Time {
	if v <= filetimeOffset {
		return time.Unix(0, 0).UTC()
	}
	return time.Unix(0, int64(v-filetimeOffset)*filetimeUnit).UTC()
}

// TimeToFiletime converts t to a Windows FILETIME value.
func TimeToFiletime(t time.Time) uint64 {
	ns := t.UnixNano()
	if ns < 0 {
		ns = 0
	}
	return uint64(ns)/filetimeUnit + filetimeOffset
}
