package protocol

import (
	"errors"
	"strings"
)

// Event is a user interaction reported by the client: which node, which
// event type, and the input value when relevant.
type Event struct {
	NodeID string `json:"nodeId"`
	Type   string `json:"type"`
	Value  string `json:"value,omitempty"`
}

// Event validation errors.
var (
	ErrEventNoNode   = errors.New("protocol: event missing nodeId")
	ErrEventNoType   = errors.New("protocol: event missing type")
	ErrEventBadType  = errors.New("protocol: event type not allowed")
	ErrEventTooLarge = errors.New("protocol: event value too large")
)

// MaxEventValue bounds the value carried by one event.
const MaxEventValue = 64 << 10

// allowedEvents is the set of event types accepted off the wire. Anything
// else is rejected rather than dispatched into handler code.
var allowedEvents = map[string]bool{
	"click": true, "dblclick": true,
	"mousedown": true, "mouseup": true, "mouseenter": true, "mouseleave": true,
	"keydown": true, "keyup": true,
	"input": true, "submit": true, "focus": true, "blur": true,
	"scroll": true, "toggle": true,
}

// Validate checks an event received from a client.
func (e Event) Validate() error {
	switch {
	case e.NodeID == "":
		return ErrEventNoNode
	case e.Type == "":
		return ErrEventNoType
	case !allowedEvents[strings.ToLower(e.Type)]:
		return ErrEventBadType
	case len(e.Value) > MaxEventValue:
		return ErrEventTooLarge
	}
	return nil
}
