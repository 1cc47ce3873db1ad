package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// FrameKind identifies the type of frame.
type FrameKind string

const (
	FrameHello FrameKind = "hello" // Server → client, session setup
	FramePatch FrameKind = "patch" // Server → client, host mutations
	FrameEvent FrameKind = "event" // Client → server, user interaction
	FrameError FrameKind = "error" // Server → client, terminal error
)

// MaxFrameSize bounds one encoded frame. Oversized frames from clients
// are rejected before decoding the payload.
const MaxFrameSize = 1 << 20

// Frame is the wire envelope. Exactly one payload field is set,
// matching Kind.
type Frame struct {
	Kind FrameKind `json:"kind"`

	Hello   *Hello  `json:"hello,omitempty"`
	Patches []Patch `json:"patches,omitempty"`
	Event   *Event  `json:"event,omitempty"`
	Error   *Error  `json:"error,omitempty"`
}

// Hello is the first frame of every session. RootID names the host node
// the client should treat as the mount point.
type Hello struct {
	SessionID string `json:"sessionId"`
	RootID    string `json:"rootId"`
	Version   int    `json:"version"`
}

// Error carries a terminal session error.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Version is the current protocol version, negotiated via Hello.
const Version = 1

// Decoding errors.
var (
	ErrFrameTooLarge = errors.New("protocol: frame exceeds MaxFrameSize")
	ErrUnknownKind   = errors.New("protocol: unknown frame kind")
	ErrEmptyPayload  = errors.New("protocol: frame payload missing")
)

// Encode serializes a frame to JSON.
func Encode(f Frame) ([]byte, error) {
	return json.Marshal(f)
}

// Decode parses and validates one frame. The payload field matching the
// kind must be present.
func Decode(data []byte) (Frame, error) {
	if len(data) > MaxFrameSize {
		return Frame{}, ErrFrameTooLarge
	}
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("protocol: decode frame: %w", err)
	}
	switch f.Kind {
	case FrameHello:
		if f.Hello == nil {
			return Frame{}, ErrEmptyPayload
		}
	case FramePatch:
		if f.Patches == nil {
			return Frame{}, ErrEmptyPayload
		}
	case FrameEvent:
		if f.Event == nil {
			return Frame{}, ErrEmptyPayload
		}
	case FrameError:
		if f.Error == nil {
			return Frame{}, ErrEmptyPayload
		}
	default:
		return Frame{}, fmt.Errorf("%w: %q", ErrUnknownKind, f.Kind)
	}
	return f, nil
}

// HelloFrame builds a hello frame.
func HelloFrame(sessionID, rootID string) Frame {
	return Frame{Kind: FrameHello, Hello: &Hello{
		SessionID: sessionID,
		RootID:    rootID,
		Version:   Version,
	}}
}

// PatchFrame builds a patch frame.
func PatchFrame(patches []Patch) Frame {
	return Frame{Kind: FramePatch, Patches: patches}
}

// EventFrame builds an event frame.
func EventFrame(e Event) Frame {
	return Frame{Kind: FrameEvent, Event: &e}
}

// ErrorFrame builds an error frame.
func ErrorFrame(code, message string) Frame {
	return Frame{Kind: FrameError, Error: &Error{Code: code, Message: message}}
}
