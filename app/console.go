package app

import (
	"presto/gfx"
	"presto/internal/buildinfo"
	"presto/internal/logger"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

// console echoes boot progress to the log and to a terminal on the panel. The scene draws over
// it once it starts.
type console struct {
	log  *logger.Logger
	surf *gfx.Surface
	term *tinyterm.Terminal
}

func newConsole(s *gfx.Surface, log *logger.Logger) *console {
	c := &console{log: log, surf: s}
	if s == nil {
		return c
	}
	s.SetLayer(0)
	s.SetPen(gfx.Transparent)
	s.Clear()

	c.term = tinyterm.NewTerminal(s)
	c.term.Configure(&tinyterm.Config{
		Font:       &proggy.TinySZ8pt7b,
		FontHeight: 10,
		FontOffset: 6,
	})
	c.Println(buildinfo.Banner())
	return c
}

func (c *console) Println(msg string) {
	c.log.Println(msg)
	if c.term == nil {
		return
	}
	c.surf.SetLayer(0)
	c.term.Write([]byte(msg + "\r\n"))
	_ = c.surf.Update()
}
