// Package terminal is the character-grid surface the game draws on.
//
// It wraps a tcell screen with the handful of operations the game needs:
// cursor placement, glyph drawing, clearing, refresh, and a non-blocking
// key poll. tcell delivers events through a blocking PollEvent, so a pump
// goroutine forwards them into a buffered channel; the game loop only ever
// drains that channel and never waits on input.
//
// Fini is idempotent so a deferred teardown and the crash handler can both
// call it.
package terminal
