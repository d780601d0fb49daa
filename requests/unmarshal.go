package requests

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/brettbedarf/webshell"
)

var (
	// ErrMalformedRequest wraps JSON decode failures
	ErrMalformedRequest = errors.New("failed to unmarshal submit request")
	// ErrMissingInput is returned when a submit body has no "input" field
	ErrMissingInput = errors.New(`missing required field "input"`)
)

// UnmarshalSubmitRequest decodes a submit body and returns the raw input line
func UnmarshalSubmitRequest(data []byte) (string, error) {
	var dto SubmitRequestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}
	if dto.Input == nil {
		return "", ErrMissingInput
	}
	return *dto.Input, nil
}

// NewResultDTO converts a core result for the wire
func NewResultDTO(res webshell.Result, cwd string) ResultDTO {
	return ResultDTO{Kind: res.Kind, Text: res.Text, Cwd: cwd}
}

// NewHistoryDTO converts a recall reply for the wire
func NewHistoryDTO(cmd string, ok bool) HistoryDTO {
	return HistoryDTO{Command: cmd, OK: ok}
}
