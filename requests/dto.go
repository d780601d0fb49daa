package requests

import "github.com/brettbedarf/webshell"

// SubmitRequestDTO is the JSON body of a submit call
type SubmitRequestDTO struct {
	Input *string `json:"input"` // raw console line; required, may be ""
}

// SessionDTO describes a newly created session
type SessionDTO struct {
	ID     string `json:"id"`
	Cwd    string `json:"cwd"`
	Banner string `json:"banner"`
}

// ResultDTO is the JSON representation of [webshell.Result] plus the cwd after
// the command ran, so a console can refresh its prompt
type ResultDTO struct {
	Kind webshell.ResultKind `json:"kind"`
	Text string              `json:"text,omitempty"`
	Cwd  string              `json:"cwd"`
}

// HistoryDTO is the reply of a history recall; OK is false at either end
type HistoryDTO struct {
	Command string `json:"command"`
	OK      bool   `json:"ok"`
}

// ErrorDTO is returned with every non-2xx reply
type ErrorDTO struct {
	Error string `json:"error"`
}
