package engine

import (
	"strconv"

	"github.com/lixenwraith/frogger/terminal"
)

// fpsUndefined is shown while no frame has completed
const fpsUndefined = "n/a"

// renderDebugPanel prints the four timing lines of the debug overlay
func renderDebugPanel(c terminal.Console, s FrameStats) {
	fps := fpsUndefined
	if v, ok := s.FPS(); ok {
		fps = formatFloat(v)
	}

	c.Println(" Target(ms)      : " + formatFloat(millis(s.Target)))
	c.Println(" Computation(ms) : " + formatFloat(millis(s.Computation)))
	c.Println(" Elapsed(ms)     : " + formatFloat(millis(s.Elapsed)))
	c.Println(" FPS             : " + fps)
}

// formatFloat prints with six significant digits, shortest form
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
