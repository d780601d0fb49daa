package webshell

import "fmt"

// ResultKind classifies the outcome of a submitted command for the presentation layer
type ResultKind int

const (
	// Rendered is a success with text to display
	Rendered ResultKind = iota
	// Echoed is a success with nothing to display beyond the echoed input
	Echoed
	// Failed carries a human-readable error message
	Failed
	// ResetDisplay asks the presentation layer to reset to the banner
	ResetDisplay
)

var resultKindNames = [...]string{
	Rendered:     "rendered",
	Echoed:       "echoed",
	Failed:       "failed",
	ResetDisplay: "reset",
}

func (k ResultKind) String() string {
	if k < 0 || int(k) >= len(resultKindNames) {
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
	return resultKindNames[k]
}

// MarshalText lets ResultKind serialize as its name in JSON and YAML
func (k ResultKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(resultKindNames) {
		return nil, fmt.Errorf("unknown result kind: %d", int(k))
	}
	return []byte(resultKindNames[k]), nil
}

func (k *ResultKind) UnmarshalText(b []byte) error {
	for i, name := range resultKindNames {
		if name == string(b) {
			*k = ResultKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown result kind: %q", b)
}

// Result is what the core hands to the presentation layer for one submitted command.
// Text is the output for Rendered, the message for Failed and the banner for
// ResetDisplay; it is empty for Echoed.
type Result struct {
	Kind ResultKind `json:"kind"`
	Text string     `json:"text,omitempty"`
}

func NewRendered(text string) Result {
	return Result{Kind: Rendered, Text: text}
}

func NewEchoed() Result {
	return Result{Kind: Echoed}
}

func NewFailed(msg string) Result {
	return Result{Kind: Failed, Text: msg}
}

func NewResetDisplay(banner string) Result {
	return Result{Kind: ResetDisplay, Text: banner}
}

// OK reports whether the command succeeded
func (r Result) OK() bool {
	return r.Kind != Failed
}
