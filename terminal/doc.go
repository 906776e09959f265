// Package terminal provides direct ANSI terminal control for frame output.
//
// Features:
//   - Double-buffered output with cell-level diffing
//   - Cursor-movement coalescing for adjacent changed cells
//   - Alternate screen and cursor visibility management
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: Linux, macOS, BSDs with xterm-compatible
// terminals. Hosts that already own the terminal through tcell can use
// Blit instead of the raw renderer.
package terminal
