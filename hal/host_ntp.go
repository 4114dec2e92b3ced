//go:build !tinygo

package hal

import (
	"fmt"
	"time"

	"github.com/beevik/ntp"
)

// DefaultNTPServer is the public NTP pool.
const DefaultNTPServer = "pool.ntp.org"

const ntpTimeout = 5 * time.Second

// ntpNetwork answers network time from an NTP server. The host is assumed to be online already,
// so Connect only checks that a server is configured.
type ntpNetwork struct {
	server  string
	timeout time.Duration
}

func newNTPNetwork(server string) *ntpNetwork {
	if server == "" {
		server = DefaultNTPServer
	}
	return &ntpNetwork{server: server, timeout: ntpTimeout}
}

func (n *ntpNetwork) Connect() error {
	if n.server == "" {
		return fmt.Errorf("ntp: no server configured")
	}
	return nil
}

func (n *ntpNetwork) Time() (time.Time, error) {
	resp, err := ntp.QueryWithOptions(n.server, ntp.QueryOptions{Timeout: n.timeout})
	if err != nil {
		return time.Time{}, fmt.Errorf("ntp: query %s: %w", n.server, err)
	}
	if err := resp.Validate(); err != nil {
		return time.Time{}, fmt.Errorf("ntp: response from %s: %w", n.server, err)
	}
	return time.Now().Add(resp.ClockOffset).UTC(), nil
}
