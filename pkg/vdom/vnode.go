package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <li>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "li")
	Props    Props     // Attributes
	Children []*VNode  // Child nodes
	Key      Key       // Reconciliation key
	Text     string    // For KindText
	Comp     Component // For KindComponent
	HID      string    // Hydration ID (assigned before diffing)
}

// Props holds attributes.
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}


// NodeKey returns the reconciliation key of a node.
// The Key field wins; otherwise a string or numeric "key" prop is used.
func NodeKey(node *VNode) Key {
	if node == nil {
		return NoKey
	}
	if !node.Key.IsZero() {
		return node.Key
	}
	if node.Props == nil {
		return NoKey
	}
	return KeyOf(node.Props["key"])
}
