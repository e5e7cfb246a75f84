package format

import (
	"time"
)

const (
	// FiletimeEpochOffset is the distance between the FILETIME epoch
	// (1601-01-01) and the Unix epoch in 100ns ticks.
	FiletimeEpochOffset = 116444736000000000
	ticksPerMicro       = 10
)

// FiletimeToUnixMicros converts FILETIME ticks to microseconds since the Unix
// epoch. Sub-microsecond ticks are truncated toward zero, never rounded.
func FiletimeToUnixMicros(ft uint64) int64 {
	if ft >= FiletimeEpochOffset {
		return int64((ft - FiletimeEpochOffset) / ticksPerMicro)
	}
	return -int64((FiletimeEpochOffset - ft) / ticksPerMicro)
}

// UnixMicrosToFiletime is the inverse of FiletimeToUnixMicros.
func UnixMicrosToFiletime(us int64) uint64 {
	return uint64(us*ticksPerMicro + FiletimeEpochOffset)
}

// FiletimeToTime converts FILETIME ticks to a UTC time.Time at microsecond precision.
func FiletimeToTime(ft uint64) time.Time {
	return time.UnixMicro(FiletimeToUnixMicros(ft)).UTC()
}

// TimeToFiletime converts t to FILETIME ticks, dropping sub-microsecond precision.
func TimeToFiletime(t time.Time) uint64 {
	return UnixMicrosToFiletime(t.UnixMicro())
}
