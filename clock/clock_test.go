package clock

import (
	"errors"
	"strings"
	"testing"
	"time"

	"presto/internal/logger"
)

type fakeNetwork struct {
	now   func() time.Time
	err   error
	calls int
}

func (n *fakeNetwork) Connect() error { return nil }

func (n *fakeNetwork) Time() (time.Time, error) {
	n.calls++
	if n.err != nil {
		return time.Time{}, n.err
	}
	return n.now(), nil
}

// fakeRTC reads back whatever was last set, like a board RTC that is not ticking in the test.
type fakeRTC struct {
	t time.Time
}

func (r *fakeRTC) Now() time.Time  { return r.t }
func (r *fakeRTC) Set(t time.Time) { r.t = t }

// tickingRTC runs off a clock from whatever it was last set to.
type tickingRTC struct {
	clk  Clock
	base time.Time
	at   time.Time
}

func (r *tickingRTC) Now() time.Time { return r.base.Add(r.clk.Now().Sub(r.at)) }
func (r *tickingRTC) Set(t time.Time) {
	r.base = t
	r.at = r.clk.Now()
}

type lines struct {
	got []string
}

func (l *lines) WriteLineString(s string) { l.got = append(l.got, s) }
func (l *lines) WriteLineBytes(b []byte)  { l.got = append(l.got, string(b)) }

func TestWallTimeOffsetAndFormat(t *testing.T) {
	base := time.Date(2026, 10, 19, 23, 30, 59, 0, time.UTC)
	cases := []struct {
		offset int
		want   string
	}{
		{0, "23:30"},
		{1, "00:30"},
		{-5, "18:30"},
		{14, "13:30"},
	}
	for _, tc := range cases {
		if got := At(base, tc.offset).String(); got != tc.want {
			t.Fatalf("offset %d: expected %s, got %s", tc.offset, tc.want, got)
		}
	}
}

func TestHour12(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 11: 11, 12: 12, 13: 1, 23: 11}
	for in, want := range cases {
		if got := (WallTime{Hour: in}).Hour12(); got != want {
			t.Fatalf("Hour12(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestManualClock(t *testing.T) {
	start := time.Unix(1000, 0)
	m := NewManual(start)
	m.Sleep(90 * time.Second)
	if got := m.Now().Sub(start); got != 90*time.Second {
		t.Fatalf("expected 90s elapsed, got %v", got)
	}
}

func TestSourceRefreshesAtMostOncePerInterval(t *testing.T) {
	clk := NewManual(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))
	network := &fakeNetwork{now: clk.Now}
	rtc := &fakeRTC{}
	src := NewSource(network, rtc, clk, nil, SourceConfig{UTCOffset: 1})

	if got := src.Current().String(); got != "10:00" {
		t.Fatalf("expected 10:00, got %s", got)
	}
	if network.calls != 1 {
		t.Fatalf("expected startup sync, got %d calls", network.calls)
	}

	clk.Advance(30 * time.Second)
	if got := src.Current().String(); got != "10:00" {
		t.Fatalf("expected cached 10:00, got %s", got)
	}
	if network.calls != 1 {
		t.Fatalf("expected no sync inside the interval, got %d calls", network.calls)
	}

	clk.Advance(45 * time.Second)
	if got := src.Current().String(); got != "10:01" {
		t.Fatalf("expected 10:01 after refresh, got %s", got)
	}
	if network.calls != 2 {
		t.Fatalf("expected second sync, got %d calls", network.calls)
	}
}

func TestSourceFailedSyncKeepsPreviousTime(t *testing.T) {
	clk := NewManual(time.Date(2026, 10, 19, 14, 5, 0, 0, time.UTC))
	network := &fakeNetwork{now: clk.Now}
	out := &lines{}
	src := NewSource(network, &fakeRTC{}, clk, logger.New(out, "clock"), SourceConfig{})

	first := src.Current()
	if first.String() != "14:05" {
		t.Fatalf("expected 14:05, got %s", first)
	}

	network.err = errors.New("ETIMEDOUT")
	clk.Advance(2 * time.Minute)
	if got := src.Current(); got != first {
		t.Fatalf("failed sync must keep %s, got %s", first, got)
	}
	if src.Failures() != 1 {
		t.Fatalf("expected 1 failure, got %d", src.Failures())
	}
	if len(out.got) != 1 || !strings.Contains(out.got[0], "Unable to contact NTP server") {
		t.Fatalf("expected failure log line, got %q", out.got)
	}

	network.err = nil
	clk.Advance(time.Minute)
	if got := src.Current().String(); got != "14:08" {
		t.Fatalf("expected recovery to 14:08, got %s", got)
	}
}

func TestSourceFirstSyncFailureFallsBackToRTC(t *testing.T) {
	clk := NewManual(time.Unix(0, 0))
	rtc := &fakeRTC{t: time.Date(2026, 1, 1, 7, 42, 0, 0, time.UTC)}
	src := NewSource(&fakeNetwork{err: errors.New("down")}, rtc, clk, nil, SourceConfig{})

	if got := src.Current().String(); got != "07:42" {
		t.Fatalf("expected RTC fallback 07:42, got %s", got)
	}
}

func TestSourceWithoutNetwork(t *testing.T) {
	clk := NewManual(time.Date(2026, 1, 1, 3, 0, 0, 0, time.UTC))
	src := NewSource(nil, nil, clk, nil, SourceConfig{})
	if err := src.Sync(); err == nil {
		t.Fatal("expected sync error without network")
	}
	if got := src.Current().String(); got != "03:00" {
		t.Fatalf("expected clock fallback 03:00, got %s", got)
	}
}

func TestSourceNeverSyncedFollowsRTC(t *testing.T) {
	clk := NewManual(time.Unix(0, 0))
	rtc := &tickingRTC{clk: clk, base: time.Date(2026, 1, 1, 7, 42, 0, 0, time.UTC), at: clk.Now()}
	network := &fakeNetwork{err: errors.New("down")}
	src := NewSource(network, rtc, clk, nil, SourceConfig{})

	if got := src.Current().String(); got != "07:42" {
		t.Fatalf("expected 07:42 at boot, got %s", got)
	}
	clk.Advance(30 * time.Minute)
	if got := src.Current().String(); got != "08:12" {
		t.Fatalf("expected RTC time 08:12 after failed syncs, got %s", got)
	}
	clk.Advance(20 * time.Second)
	if got := src.Current().String(); got != "08:12" {
		t.Fatalf("expected 08:12 between refreshes, got %s", got)
	}
	clk.Advance(time.Minute)
	if got := src.Current().String(); got != "08:13" {
		t.Fatalf("expected 08:13, got %s", got)
	}
	if network.calls != 3 || src.Failures() != 3 {
		t.Fatalf("expected 3 failed syncs, got %d calls %d failures", network.calls, src.Failures())
	}

	network.err = nil
	network.now = func() time.Time { return time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC) }
	clk.Advance(time.Minute)
	if got := src.Current().String(); got != "09:00" {
		t.Fatalf("expected synced 09:00, got %s", got)
	}
	network.err = errors.New("down again")
	clk.Advance(5 * time.Minute)
	if got := src.Current().String(); got != "09:00" {
		t.Fatalf("failed sync after success must keep 09:00, got %s", got)
	}
}
