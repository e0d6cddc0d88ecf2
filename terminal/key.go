package terminal

import "unicode/utf8"

// Key is a single-character input code
type Key rune

const (
	// KeyNone is returned when no key was pressed since the last read
	KeyNone Key = -1

	// KeyInterrupt is Ctrl+C; raw mode delivers it as input instead of SIGINT
	KeyInterrupt Key = 0x03

	// KeyEscape is a lone ESC byte
	KeyEscape Key = 0x1b
)

// String returns a printable form for logs
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyInterrupt:
		return "ctrl+c"
	case KeyEscape:
		return "esc"
	}
	if k < 0x20 || k == 0x7f {
		return "ctrl"
	}
	return string(rune(k))
}

// latestKey decodes a raw input chunk and returns the last key in it.
// CSI/SS3 escape sequences (arrows, function keys) are skipped.
// An interrupt anywhere in the chunk wins so a quit request is never lost.
func latestKey(data []byte) Key {
	last := KeyNone
	for i := 0; i < len(data); {
		b := data[i]

		if b == 0x1b {
			// Lone ESC at end of chunk
			if i+1 >= len(data) {
				last = KeyEscape
				break
			}
			next := data[i+1]
			if next == '[' || next == 'O' {
				// Skip parameters until the final byte (0x40-0x7E)
				j := i + 2
				for j < len(data) && (data[j] < 0x40 || data[j] > 0x7e) {
					j++
				}
				i = j + 1
				continue
			}
			// Alt+key arrives as ESC followed by the key; treat as the key
			i++
			continue
		}

		if b == byte(KeyInterrupt) {
			return KeyInterrupt
		}

		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			i++
			continue
		}
		last = Key(r)
		i += size
	}
	return last
}
