package hal

import "time"

// nullNetwork is used on boards without a usable network stack. Every call fails, which the
// time source treats as a failed sync.
type nullNetwork struct{}

func (nullNetwork) Connect() error { return ErrNotImplemented }

func (nullNetwork) Time() (time.Time, error) {
	return time.Time{}, ErrNotImplemented
}
