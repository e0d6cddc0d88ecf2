package terminal

import (
	"strings"
)

// OpKind identifies a recorded console call
type OpKind int

const (
	OpInit OpKind = iota
	OpFini
	OpHideCursor
	OpShowCursor
	OpClear
	OpGotoTop
	OpRender
	OpPrintln
	OpFlush
	OpReadKey
)

// Op is one recorded console call
type Op struct {
	Kind OpKind
	X, Y int
	Ch   rune
	Text string
	Key  Key
}

type cellPos struct {
	x, y int
}

// Recorder is an in-memory Console. It keeps a character grid, an ordered log
// of calls, and a scripted key queue. Intended for tests
type Recorder struct {
	Ops []Op

	Initialized   bool
	Finalized     bool
	CursorVisible bool
	Clears        int
	Flushes       int

	// InitErr and FlushErr are returned by Init and Flush when set
	InitErr  error
	FlushErr error

	grid    map[cellPos]rune
	textRow int
	keys    []Key
}

// NewRecorder creates an empty recorder with a visible cursor
func NewRecorder() *Recorder {
	return &Recorder{
		grid:          make(map[cellPos]rune),
		CursorVisible: true,
	}
}

// PushKeys queues keys returned by successive ReadKey calls, one per call
func (r *Recorder) PushKeys(keys ...Key) {
	r.keys = append(r.keys, keys...)
}

// At returns the character at (x, y), or 0 if the cell was never written or was cleared
func (r *Recorder) At(x, y int) rune {
	return r.grid[cellPos{x, y}]
}

// Line returns row y from column 0 with unwritten cells as spaces and trailing spaces trimmed
func (r *Recorder) Line(y int) string {
	maxX := -1
	for p := range r.grid {
		if p.y == y && p.x > maxX {
			maxX = p.x
		}
	}
	if maxX < 0 {
		return ""
	}

	var sb strings.Builder
	for x := 0; x <= maxX; x++ {
		ch, ok := r.grid[cellPos{x, y}]
		if !ok || ch == 0 {
			ch = ' '
		}
		sb.WriteRune(ch)
	}
	return strings.TrimRight(sb.String(), " ")
}

// Renders returns the RenderCharacter calls in order
func (r *Recorder) Renders() []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == OpRender {
			out = append(out, op)
		}
	}
	return out
}

// ResetOps drops the call log, keeping the grid
func (r *Recorder) ResetOps() {
	r.Ops = r.Ops[:0]
}

func (r *Recorder) Init() error {
	r.Ops = append(r.Ops, Op{Kind: OpInit})
	if r.InitErr != nil {
		return &InitError{Backend: "recorder", Err: r.InitErr}
	}
	r.Initialized = true
	return nil
}

func (r *Recorder) Fini() {
	r.Ops = append(r.Ops, Op{Kind: OpFini})
	if !r.Initialized || r.Finalized {
		return
	}
	r.CursorVisible = true
	r.Finalized = true
}

func (r *Recorder) HideCursor() {
	r.Ops = append(r.Ops, Op{Kind: OpHideCursor})
	r.CursorVisible = false
}

func (r *Recorder) ShowCursor() {
	r.Ops = append(r.Ops, Op{Kind: OpShowCursor})
	r.CursorVisible = true
}

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear})
	clear(r.grid)
	r.textRow = 0
	r.Clears++
}

func (r *Recorder) GotoTop() {
	r.Ops = append(r.Ops, Op{Kind: OpGotoTop})
	r.textRow = 0
}

func (r *Recorder) RenderCharacter(ch rune, x, y int) {
	r.Ops = append(r.Ops, Op{Kind: OpRender, X: x, Y: y, Ch: ch})
	r.grid[cellPos{x, y}] = ch
}

func (r *Recorder) Println(text string) {
	r.Ops = append(r.Ops, Op{Kind: OpPrintln, Y: r.textRow, Text: text})

	// Erase to end of line first
	for p := range r.grid {
		if p.y == r.textRow {
			delete(r.grid, p)
		}
	}
	x := 0
	for _, ch := range text {
		r.grid[cellPos{x, r.textRow}] = ch
		x++
	}
	r.textRow++
}

func (r *Recorder) Flush() error {
	r.Ops = append(r.Ops, Op{Kind: OpFlush})
	r.Flushes++
	if r.FlushErr != nil {
		return &RenderError{Op: "flush", Err: r.FlushErr}
	}
	return nil
}

// ReadKey pops the next scripted key, or returns KeyNone when the queue is empty
func (r *Recorder) ReadKey(blocking bool) Key {
	k := KeyNone
	if len(r.keys) > 0 {
		k = r.keys[0]
		r.keys = r.keys[1:]
	}
	r.Ops = append(r.Ops, Op{Kind: OpReadKey, Key: k})
	return k
}
