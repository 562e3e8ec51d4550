package vdom

// PatchOp is the type of patch operation.
type PatchOp uint8

const (
	PatchSetText     PatchOp = 0x01 // Update text content
	PatchSetAttr     PatchOp = 0x02 // Set/update attribute
	PatchRemoveAttr  PatchOp = 0x03 // Remove attribute
	PatchInsertNode  PatchOp = 0x04 // Insert new node
	PatchRemoveNode  PatchOp = 0x05 // Remove node
	PatchMoveNode    PatchOp = 0x06 // Move node to new position
	PatchReplaceNode PatchOp = 0x07 // Replace node entirely
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchSetText:
		return "SetText"
	case PatchSetAttr:
		return "SetAttr"
	case PatchRemoveAttr:
		return "RemoveAttr"
	case PatchInsertNode:
		return "InsertNode"
	case PatchRemoveNode:
		return "RemoveNode"
	case PatchMoveNode:
		return "MoveNode"
	case PatchReplaceNode:
		return "ReplaceNode"
	default:
		return "Unknown"
	}
}

// MarshalText lets patches encode their op by name.
func (op PatchOp) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// Patch represents a single DOM operation to apply.
type Patch struct {
	Op       PatchOp `json:"op"`                 // Operation type
	HID      string  `json:"hid,omitempty"`      // Target element's hydration ID
	Key      string  `json:"key,omitempty"`      // Attribute key (for SetAttr/RemoveAttr)
	Value    string  `json:"value,omitempty"`    // New value
	Node     *VNode  `json:"-"`                  // For InsertNode/ReplaceNode
	Index    int     `json:"index"`              // Insert/move position
	ParentID string  `json:"parentId,omitempty"` // Parent for InsertNode/MoveNode
}
