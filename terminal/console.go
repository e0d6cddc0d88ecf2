package terminal

// Console is the terminal capability the game loop renders through.
// Implementations are driven from a single goroutine.
type Console interface {
	// Init prepares the terminal for character-grid output. Idempotent
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	HideCursor()
	ShowCursor()

	// Clear wipes all rendered content and homes the text cursor
	Clear()

	// GotoTop moves the text cursor to the top-left so the next Println overwrites in place
	GotoTop()

	// RenderCharacter writes a single character at grid cell (x, y)
	RenderCharacter(ch rune, x, y int)

	// Println writes a text line at the text cursor, erases the rest of the row,
	// and advances the text cursor one row
	Println(text string)

	// Flush pushes buffered output to the terminal. Returns the first I/O error
	// seen since the previous flush as a *RenderError
	Flush() error

	// ReadKey returns the most recently pressed key, or KeyNone.
	// With blocking false it never waits for input
	ReadKey(blocking bool) Key
}
