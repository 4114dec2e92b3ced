package app

import "fmt"

// Program names accepted by Config.Program.
const (
	ProgramAquarium  = "aquarium"
	ProgramWordClock = "wordclock"
)

type Config struct {
	// Program selects the scene.
	Program string
	// UTCOffset is the local time zone, in signed whole hours.
	UTCOffset int
	// ShowTime draws the clock over the aquarium. The word clock always needs the time.
	ShowTime bool
	// Boring draws the word clock in white only.
	Boring bool
	// Seed feeds the fish simulation. Zero seeds from the clock.
	Seed int64
}

// DefaultConfig is what the board runs when nothing else is configured.
func DefaultConfig() Config {
	return Config{
		Program:   ProgramAquarium,
		UTCOffset: 1,
		ShowTime:  true,
	}
}

func (c Config) validate() error {
	switch c.Program {
	case ProgramAquarium, ProgramWordClock:
	default:
		return fmt.Errorf("app: unknown program %q", c.Program)
	}
	if c.UTCOffset < -12 || c.UTCOffset > 14 {
		return fmt.Errorf("app: utc offset %d out of range", c.UTCOffset)
	}
	return nil
}

// needsTime reports whether the program reads the wall clock.
func (c Config) needsTime() bool {
	return c.Program == ProgramWordClock || c.ShowTime
}
