package protocol

import (
	"encoding/json"
	"fmt"
)

// FrameType is the type of WebSocket frame.
type FrameType uint8

const (
	FrameInit      FrameType = 0x01 // Server -> client: full initial tree
	FrameMutations FrameType = 0x02 // Server -> client: mutation batch
	FrameEvent     FrameType = 0x03 // Client -> server: UI event
	FramePing      FrameType = 0x04 // Liveness probe
	FramePong      FrameType = 0x05 // Liveness reply
)

// String returns the string representation of the FrameType.
func (t FrameType) String() string {
	switch t {
	case FrameInit:
		return "Init"
	case FrameMutations:
		return "Mutations"
	case FrameEvent:
		return "Event"
	case FramePing:
		return "Ping"
	case FramePong:
		return "Pong"
	default:
		return "Unknown"
	}
}

// Event is a UI event reported by the client.
type Event struct {
	// Name is the event name ("click", "input", ...).
	Name string `json:"name"`

	// Target is the ID of the host node the event fired on.
	Target string `json:"target,omitempty"`

	// Value carries the event payload (input text, etc.).
	Value string `json:"value,omitempty"`
}

// Frame is one message on the WebSocket channel. An Init frame names the
// root node and carries the mount journal; the client replays it to build
// the initial tree, keeping node identities aligned with the server.
type Frame struct {
	Type      FrameType  `json:"t"`
	Seq       uint64     `json:"seq,omitempty"`
	Root      string     `json:"root,omitempty"`
	Mutations []Mutation `json:"muts,omitempty"`
	Event     *Event     `json:"event,omitempty"`
}

// EncodeFrame serializes a frame for the wire.
func EncodeFrame(f *Frame) ([]byte, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("protocol: encode frame: %w", err)
	}
	return data, nil
}

// DecodeFrame deserializes a frame from the wire.
func DecodeFrame(data []byte) (*Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("protocol: decode frame: %w", err)
	}
	if f.Type < FrameInit || f.Type > FramePong {
		return nil, fmt.Errorf("protocol: unknown frame type 0x%02x", uint8(f.Type))
	}
	return &f, nil
}
