package vdom

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// El creates an element node.
// Arguments can be: nil, Attr, []Attr, Key, *VNode, []*VNode, Component, string.
func El(tag string, args ...any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}
	for _, arg := range args {
		node.apply(arg)
	}
	return node
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0),
	}
	for _, child := range children {
		node.apply(child)
	}
	return node
}

// Keyed sets the reconciliation key on a node and returns it.
// k may be a Key, a string or a number.
func Keyed(k any, node *VNode) *VNode {
	node.Key = KeyOf(k)
	return node
}

// A creates an attribute.
func A(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

func (node *VNode) apply(arg any) {
	switch v := arg.(type) {
	case nil:
	case Attr:
		if v.Key == "key" {
			node.Key = KeyOf(v.Value)
			return
		}
		if v.Key != "" {
			if node.Props == nil {
				node.Props = make(Props)
			}
			node.Props[v.Key] = v.Value
		}
	case []Attr:
		for _, a := range v {
			node.apply(a)
		}
	case Key:
		node.Key = v
	case *VNode:
		if v != nil {
			node.Children = append(node.Children, v)
		}
	case []*VNode:
		for _, c := range v {
			if c != nil {
				node.Children = append(node.Children, c)
			}
		}
	case string:
		node.Children = append(node.Children, Text(v))
	case Component:
		node.Children = append(node.Children, &VNode{
			Kind: KindComponent,
			Comp: v,
		})
	}
}

// Range maps a slice to child nodes, skipping nil results.
func Range[T any](items []T, fn func(index int, item T) *VNode) []*VNode {
	nodes := make([]*VNode, 0, len(items))
	for i, item := range items {
		if n := fn(i, item); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}
