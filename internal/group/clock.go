package group

import "time"

// Clock supplies the time stamped on a resolved group.
type Clock interface {
	// Now returns milliseconds since the Unix epoch.
	Now() int64
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() int64 {
	return time.Now().UnixMilli()
}

// FixedClock always returns the same reading.
type FixedClock int64

func (c FixedClock) Now() int64 {
	return int64(c)
}
