// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Startup
	OpConfigLoad Op = "load config"

	// Console menu
	OpReadCommand Op = "read menu command"
	OpReadSong    Op = "read song"

	// Playlist operations
	OpPlay      Op = "play song"
	OpSongAdd   Op = "add song"
	OpSongErase Op = "erase song"
	OpSongMove  Op = "move song"
	OpUndo      Op = "undo"
	OpRedo      Op = "redo"

	// Terminal view
	OpViewRun Op = "run playlist view"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Error pairs an operation with the error that made it fail. Its message is
// the Format output, and errors.Is/As see through it.
type Error struct {
	Op  Op
	Err error
}

// Wrap returns err annotated with op, or nil if err is nil.
func Wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

func (e *Error) Error() string {
	return Format(e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
