package hal

import (
	"sync"
	"time"
)

// softRTC is a wall clock kept in software: a base time plus the monotonic time elapsed since it
// was last set. Boards without a battery-backed RTC start from the host/TinyGo epoch until the
// first network sync.
type softRTC struct {
	mu   sync.Mutex
	base time.Time
	at   time.Time
}

func newSoftRTC() *softRTC {
	now := time.Now()
	return &softRTC{base: now.UTC(), at: now}
}

func (r *softRTC) Now() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.base.Add(time.Since(r.at)).UTC()
}

func (r *softRTC) Set(t time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.base = t.UTC()
	r.at = time.Now()
}
