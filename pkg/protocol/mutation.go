package protocol

// MutationOp is the type of host-tree mutation.
type MutationOp uint8

const (
	MutationInsert  MutationOp = 0x01 // Insert node before a sibling
	MutationAppend  MutationOp = 0x02 // Append node as last child
	MutationRemove  MutationOp = 0x03 // Remove node
	MutationSetText MutationOp = 0x04 // Update text content in place
)

// String returns the string representation of the MutationOp.
func (op MutationOp) String() string {
	switch op {
	case MutationInsert:
		return "Insert"
	case MutationAppend:
		return "Append"
	case MutationRemove:
		return "Remove"
	case MutationSetText:
		return "SetText"
	default:
		return "Unknown"
	}
}

// Mutation is a single host-tree operation to replay on the client.
type Mutation struct {
	Op     MutationOp `json:"op"`
	Node   string     `json:"node"`             // Target node ID
	Parent string     `json:"parent,omitempty"` // Parent node ID (Insert/Append)
	Ref    string     `json:"ref,omitempty"`    // Sibling anchor ID (Insert)
	Kind   string     `json:"kind,omitempty"`   // Node kind for creations ("text", "element")
	Tag    string     `json:"tag,omitempty"`    // Element tag for creations
	Value  string     `json:"value,omitempty"`  // Text content
}
