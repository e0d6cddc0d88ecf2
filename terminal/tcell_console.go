package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// keyQueueSize bounds keys buffered between frames; oldest are dropped first
const keyQueueSize = 64

// TcellConsole renders through a tcell screen.
// A single goroutine pumps screen events into a buffered key channel so ReadKey never blocks
type TcellConsole struct {
	screen tcell.Screen
	keys   chan Key
	doneCh chan struct{}

	textRow int

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewTcellConsole creates a console on the controlling terminal
func NewTcellConsole() (*TcellConsole, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, &InitError{Backend: "tcell", Err: err}
	}
	return NewTcellConsoleWithScreen(screen), nil
}

// NewTcellConsoleWithScreen wraps an existing, uninitialized screen (simulation screens in tests)
func NewTcellConsoleWithScreen(screen tcell.Screen) *TcellConsole {
	return &TcellConsole{
		screen: screen,
		keys:   make(chan Key, keyQueueSize),
		doneCh: make(chan struct{}),
	}
}

// Screen returns the underlying tcell screen
func (c *TcellConsole) Screen() tcell.Screen {
	return c.screen
}

func (c *TcellConsole) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := c.screen.Init(); err != nil {
		return &InitError{Backend: "tcell", Err: err}
	}
	c.screen.Clear()

	go c.pump()

	c.initialized = true
	return nil
}

// pump forwards key events until the screen is finalized
func (c *TcellConsole) pump() {
	defer close(c.doneCh)

	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return
		}

		key, ok := keyFromEvent(ev)
		if !ok {
			continue
		}

		select {
		case c.keys <- key:
		default:
			// Drain oldest and replace so the latest key is pending
			select {
			case <-c.keys:
			default:
			}
			select {
			case c.keys <- key:
			default:
			}
		}
	}
}

func keyFromEvent(ev tcell.Event) (Key, bool) {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return KeyNone, false
	}

	switch kev.Key() {
	case tcell.KeyRune:
		// Some terminals report Ctrl+letter as a rune with the Ctrl modifier
		if kev.Modifiers()&tcell.ModCtrl != 0 && (kev.Rune() == 'c' || kev.Rune() == 'C') {
			return KeyInterrupt, true
		}
		return Key(kev.Rune()), true
	case tcell.KeyCtrlC:
		return KeyInterrupt, true
	case tcell.KeyEscape:
		return KeyEscape, true
	}
	return KeyNone, false
}

// Fini restores the terminal and waits for the event pump to exit
func (c *TcellConsole) Fini() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.finalized {
		return
	}

	c.screen.Fini()
	<-c.doneCh
	c.finalized = true
}

func (c *TcellConsole) HideCursor() {
	c.screen.HideCursor()
}

func (c *TcellConsole) ShowCursor() {
	c.screen.ShowCursor(0, c.textRow)
}

func (c *TcellConsole) Clear() {
	c.screen.Clear()
	c.textRow = 0
}

func (c *TcellConsole) GotoTop() {
	c.textRow = 0
}

func (c *TcellConsole) RenderCharacter(ch rune, x, y int) {
	c.screen.SetContent(x, y, ch, nil, tcell.StyleDefault)
}

func (c *TcellConsole) Println(text string) {
	width, _ := c.screen.Size()
	x := 0
	for _, r := range text {
		c.screen.SetContent(x, c.textRow, r, nil, tcell.StyleDefault)
		x++
	}
	for ; x < width; x++ {
		c.screen.SetContent(x, c.textRow, ' ', nil, tcell.StyleDefault)
	}
	c.textRow++
}

func (c *TcellConsole) Flush() error {
	c.mu.Lock()
	initialized, finalized := c.initialized, c.finalized
	c.mu.Unlock()

	if !initialized {
		return nil
	}
	if finalized {
		return &RenderError{Op: "flush", Err: errScreenClosed}
	}
	c.screen.Show()
	return nil
}

// ReadKey drains queued keys and returns the latest; an interrupt anywhere in the queue wins
func (c *TcellConsole) ReadKey(blocking bool) Key {
	latest := KeyNone

	if blocking {
		latest = <-c.keys
		if latest == KeyInterrupt {
			return latest
		}
	}

	for {
		select {
		case k := <-c.keys:
			if k == KeyInterrupt {
				return k
			}
			latest = k
		default:
			return latest
		}
	}
}
