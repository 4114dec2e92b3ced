package clock

import (
	"fmt"
	"time"
)

// WallTime is a time of day truncated to the minute.
type WallTime struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// At converts t, with the signed whole-hour UTC offset applied, to a WallTime.
func At(t time.Time, utcOffsetHours int) WallTime {
	local := t.UTC().Add(time.Duration(utcOffsetHours) * time.Hour)
	return WallTime{Hour: local.Hour(), Minute: local.Minute()}
}

// Hour12 returns the hour on a 12-hour dial as the scripts computed it: 13-23 become 1-11,
// while 0 and 12 are left alone.
func (w WallTime) Hour12() int {
	if w.Hour > 12 {
		return w.Hour - 12
	}
	return w.Hour
}

// String formats the time as HH:MM.
func (w WallTime) String() string {
	return fmt.Sprintf("%02d:%02d", w.Hour, w.Minute)
}
