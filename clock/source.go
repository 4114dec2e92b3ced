package clock

import (
	"errors"
	"fmt"
	"time"

	"presto/hal"
	"presto/internal/logger"
)

// DefaultRefresh is how often both scenes go back to the network for the time.
const DefaultRefresh = 60 * time.Second

// SourceConfig configures a Source.
type SourceConfig struct {
	// UTCOffset is applied to network time, in signed whole hours.
	UTCOffset int
	// Refresh bounds how often the network is queried. Zero means DefaultRefresh.
	Refresh time.Duration
}

// Source answers the current wall-clock minute. It disciplines the RTC from the network at most
// once per refresh interval and never lets a failed sync reach the caller.
type Source struct {
	net hal.Network
	rtc hal.RTC
	clk Clock
	log *logger.Logger
	cfg SourceConfig

	attempted   bool
	lastAttempt time.Time

	known     WallTime
	haveKnown bool
	synced    bool

	fails int
}

// NewSource builds a time source. net may be nil, in which case every sync fails.
func NewSource(net hal.Network, rtc hal.RTC, clk Clock, log *logger.Logger, cfg SourceConfig) *Source {
	if cfg.Refresh <= 0 {
		cfg.Refresh = DefaultRefresh
	}
	if clk == nil {
		clk = System{}
	}
	return &Source{net: net, rtc: rtc, clk: clk, log: log, cfg: cfg}
}

var errNoNetwork = errors.New("clock: no network")

// Sync makes one attempt to set the RTC from network time and resets the refresh timer.
func (s *Source) Sync() error {
	s.attempted = true
	s.lastAttempt = s.clk.Now()

	if s.net == nil {
		return errNoNetwork
	}
	t, err := s.net.Time()
	if err != nil {
		return fmt.Errorf("clock: network time: %w", err)
	}
	if s.rtc != nil {
		s.rtc.Set(t)
	}
	s.synced = true
	return nil
}

// Due reports whether the refresh interval has elapsed since the last sync attempt.
func (s *Source) Due() bool {
	if !s.attempted {
		return true
	}
	return s.clk.Now().Sub(s.lastAttempt) >= s.cfg.Refresh
}

// Current returns the wall-clock minute. When a refresh is due it syncs first; if that sync
// fails the minute from the last successful sync is returned unchanged. Between refreshes the
// cached minute is returned. Until a sync has succeeded the RTC is read on every call.
func (s *Source) Current() WallTime {
	if s.Due() {
		if err := s.Sync(); err != nil {
			s.fails++
			s.log.Printf("Unable to contact NTP server: %v", err)
			if s.synced && s.haveKnown {
				return s.known
			}
		}
		return s.read()
	}
	if s.synced && s.haveKnown {
		return s.known
	}
	return s.read()
}

// Failures counts sync attempts that failed since the source was created.
func (s *Source) Failures() int { return s.fails }

func (s *Source) read() WallTime {
	now := s.clk.Now()
	if s.rtc != nil {
		now = s.rtc.Now()
	}
	s.known = At(now, s.cfg.UTCOffset)
	s.haveKnown = true
	return s.known
}
