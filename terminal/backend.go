package terminal

// Backend abstracts platform-specific terminal operations for ANSIConsole
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Write writes raw bytes to the terminal output
	Write(p []byte) error

	// Read returns whatever input is pending. With blocking false it returns
	// immediately with nil data when nothing is available
	Read(blocking bool) ([]byte, error)
}

// backendWriter adapts Backend to io.Writer for buffered output
type backendWriter struct {
	b Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	if err := w.b.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
