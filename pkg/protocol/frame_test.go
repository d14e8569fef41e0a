package protocol

import (
	"strings"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	f := &Frame{
		Type: FrameMutations,
		Seq:  7,
		Mutations: []Mutation{
			{Op: MutationAppend, Node: "n2", Parent: "n1", Kind: "text", Value: "hi"},
			{Op: MutationSetText, Node: "n2", Value: "bye"},
		},
	}

	data, err := EncodeFrame(f)
	if err != nil {
		t.Fatalf("EncodeFrame: %v", err)
	}

	got, err := DecodeFrame(data)
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	if got.Type != FrameMutations || got.Seq != 7 {
		t.Errorf("header = (%v, %d), want (Mutations, 7)", got.Type, got.Seq)
	}
	if len(got.Mutations) != 2 {
		t.Fatalf("mutations = %d, want 2", len(got.Mutations))
	}
	if got.Mutations[0] != f.Mutations[0] || got.Mutations[1] != f.Mutations[1] {
		t.Errorf("mutations = %+v, want %+v", got.Mutations, f.Mutations)
	}
}

func TestDecodeEventFrame(t *testing.T) {
	raw := `{"t":3,"event":{"name":"click","target":"n4"}}`

	f, err := DecodeFrame([]byte(raw))
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	if f.Type != FrameEvent {
		t.Errorf("type = %v, want Event", f.Type)
	}
	if f.Event == nil || f.Event.Name != "click" || f.Event.Target != "n4" {
		t.Errorf("event = %+v, want click on n4", f.Event)
	}
}

func TestDecodeRejectsUnknownType(t *testing.T) {
	_, err := DecodeFrame([]byte(`{"t":99}`))
	if err == nil {
		t.Fatal("expected error for unknown frame type")
	}
	if !strings.Contains(err.Error(), "unknown frame type") {
		t.Errorf("error = %v, want unknown frame type", err)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := DecodeFrame([]byte("not json")); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestFrameTypeString(t *testing.T) {
	cases := map[FrameType]string{
		FrameInit:      "Init",
		FrameMutations: "Mutations",
		FrameEvent:     "Event",
		FramePing:      "Ping",
		FramePong:      "Pong",
		FrameType(0):   "Unknown",
	}
	for ft, want := range cases {
		if got := ft.String(); got != want {
			t.Errorf("FrameType(%d).String() = %q, want %q", ft, got, want)
		}
	}
}

func TestMutationOpString(t *testing.T) {
	cases := map[MutationOp]string{
		MutationInsert:  "Insert",
		MutationAppend:  "Append",
		MutationRemove:  "Remove",
		MutationSetText: "SetText",
		MutationOp(0):   "Unknown",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("MutationOp(%d).String() = %q, want %q", op, got, want)
		}
	}
}
