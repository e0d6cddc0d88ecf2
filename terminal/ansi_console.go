package terminal

import (
	"bufio"
	"sync"
)

// ANSIConsole renders with direct ANSI sequences over a raw-mode terminal.
// Text lines are written at the text cursor after GotoTop, cells via absolute positioning.
type ANSIConsole struct {
	backend Backend
	writer  *bufio.Writer

	textRow int
	err     error // first read error since last Flush

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewANSIConsole creates a console over the process stdin/stdout
func NewANSIConsole() *ANSIConsole {
	return newANSIConsole(newBackend())
}

func newANSIConsole(b Backend) *ANSIConsole {
	return &ANSIConsole{
		backend: b,
		writer:  bufio.NewWriterSize(backendWriter{b: b}, 4096),
	}
}

// Init enters raw mode and the alternate screen
func (c *ANSIConsole) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := c.backend.Init(); err != nil {
		return &InitError{Backend: "ansi", Err: err}
	}

	c.writer.Write(csiAltScreenEnter)
	c.writer.Write(csiAutoWrapOff)
	c.writer.Write(csiClear)
	if err := c.writer.Flush(); err != nil {
		c.backend.Fini()
		return &InitError{Backend: "ansi", Err: err}
	}

	c.initialized = true
	return nil
}

// Fini shows the cursor, leaves the alternate screen and restores termios
func (c *ANSIConsole) Fini() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.finalized {
		return
	}

	c.writer.Write(csiCursorShow)
	c.writer.Write(csiAltScreenExit)
	// Re-enable Auto-Wrap after exiting alt screen so the main buffer has wrap enabled
	c.writer.Write(csiAutoWrapOn)
	c.writer.Write(csiSGR0)
	c.writer.Flush()

	c.backend.Fini()
	c.finalized = true
}

func (c *ANSIConsole) HideCursor() {
	c.writer.Write(csiCursorHide)
}

func (c *ANSIConsole) ShowCursor() {
	c.writer.Write(csiCursorShow)
}

func (c *ANSIConsole) Clear() {
	c.writer.Write(csiClear)
	c.textRow = 0
}

func (c *ANSIConsole) GotoTop() {
	c.writer.Write(csiHome)
	c.textRow = 0
}

// RenderCharacter draws ch at (x, y). Negative coordinates are not addressable and are skipped
func (c *ANSIConsole) RenderCharacter(ch rune, x, y int) {
	if x < 0 || y < 0 {
		return
	}
	writeCursorPos(c.writer, x, y)
	c.writer.WriteRune(ch)
}

func (c *ANSIConsole) Println(text string) {
	writeCursorPos(c.writer, 0, c.textRow)
	c.writer.WriteString(text)
	c.writer.Write(csiEraseLine)
	c.textRow++
}

func (c *ANSIConsole) Flush() error {
	if c.err != nil {
		err := c.err
		c.err = nil
		return &RenderError{Op: "read", Err: err}
	}
	if err := c.writer.Flush(); err != nil {
		return &RenderError{Op: "flush", Err: err}
	}
	return nil
}

// ReadKey reads pending input and returns the last key in it.
// Read failures are held and reported by the next Flush
func (c *ANSIConsole) ReadKey(blocking bool) Key {
	data, err := c.backend.Read(blocking)
	if err != nil {
		if c.err == nil {
			c.err = err
		}
		return KeyNone
	}
	if len(data) == 0 {
		return KeyNone
	}
	return latestKey(data)
}
