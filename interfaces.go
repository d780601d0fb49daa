// Package webshell contains the core domain types and interfaces for an
// in-process virtual file system driven by a shell-style command interpreter.
package webshell

// Console is the surface an interpreter session exposes to its presentation
// and input-wiring layers.
//
// Implementations are not required to be safe for concurrent use; callers
// must serialize access to a single Console.
type Console interface {
	// Submit records, parses, validates and executes one raw input line
	Submit(raw string) Result

	// HistoryPrevious recalls the previous command, if any
	HistoryPrevious() (string, bool)

	// HistoryNext recalls the next command, if any
	HistoryNext() (string, bool)

	// Cwd returns the current working directory path
	Cwd() string
}
