package terminal

import "testing"

func TestLatestKey(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Key
	}{
		{"empty", nil, KeyNone},
		{"single rune", []byte("w"), 'w'},
		{"last of several", []byte("wwd"), 'd'},
		{"interrupt wins over later keys", []byte("a\x03d"), KeyInterrupt},
		{"arrow sequence skipped", []byte("s\x1b[A"), 's'},
		{"only arrow", []byte("\x1b[B"), KeyNone},
		{"ss3 sequence skipped", []byte("\x1bOPa"), 'a'},
		{"lone escape", []byte("\x1b"), KeyEscape},
		{"alt prefix dropped", []byte("\x1bx"), 'x'},
		{"utf8 rune", []byte("é"), 'é'},
		{"invalid byte skipped", []byte{'a', 0xff}, 'a'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := latestKey(tt.data); got != tt.want {
				t.Errorf("latestKey(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	if KeyNone.String() != "none" {
		t.Errorf("KeyNone.String() = %q", KeyNone.String())
	}
	if Key('w').String() != "w" {
		t.Errorf("Key('w').String() = %q", Key('w').String())
	}
	if KeyInterrupt.String() != "ctrl+c" {
		t.Errorf("KeyInterrupt.String() = %q", KeyInterrupt.String())
	}
}
