// Package terminal provides the console capability consumed by the game loop.
//
// Features:
//   - Character-cell rendering and line-oriented text output
//   - Non-blocking single key reads
//   - Cursor hide/show, home, full clear
//   - Clean terminal restoration on exit/panic
//
// Two real backends are provided: TcellConsole (tcell screen) and ANSIConsole
// (raw mode with direct ANSI sequences). Recorder is an in-memory console for tests.
package terminal
