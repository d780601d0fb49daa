package filesystem

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when cd or rm names no child of the current node
	ErrNotFound = errors.New("no such file or directory")
	// ErrInvalidLocation is returned when touch or mkdir target a file
	ErrInvalidLocation = errors.New("cannot create entries inside a file")
	// ErrNotADirectory is returned by cd onto a file when file traversal is disabled
	ErrNotADirectory = errors.New("not a directory")
	// ErrAlreadyExists is returned when a sibling already has the name and duplicates are disabled
	ErrAlreadyExists = errors.New("file exists")
)

// OpError records a failed tree operation and the name it was applied to
type OpError struct {
	Op   string
	Name string
	Err  error
}

func (e *OpError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Name, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
