package shell

import "errors"

var (
	// ErrUnknownCommand is wrapped by a SyntaxError for a command outside the grammar
	ErrUnknownCommand = errors.New("unknown command")
	// ErrArgCount is wrapped by a SyntaxError for a known command with the wrong number of arguments
	ErrArgCount = errors.New("wrong argument count")
)

// SyntaxError is returned by validation; it never reaches the tree
type SyntaxError struct {
	Command string
	Err     error
	msg     string
}

func (e *SyntaxError) Error() string {
	return e.msg
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
