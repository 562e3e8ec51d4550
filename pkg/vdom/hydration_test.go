package vdom

import "testing"

func TestHIDGenerator(t *testing.T) {
	t.Run("sequential generation", func(t *testing.T) {
		gen := NewHIDGenerator()
		h1 := gen.Next()
		h2 := gen.Next()
		h3 := gen.Next()

		if h1 != "h1" {
			t.Errorf("First HID = %v, want h1", h1)
		}
		if h2 != "h2" {
			t.Errorf("Second HID = %v, want h2", h2)
		}
		if h3 != "h3" {
			t.Errorf("Third HID = %v, want h3", h3)
		}
	})

	t.Run("reset", func(t *testing.T) {
		gen := NewHIDGenerator()
		gen.Next()
		gen.Next()
		gen.Reset()

		if h1 := gen.Next(); h1 != "h1" {
			t.Errorf("After reset, Next() = %v, want h1", h1)
		}
	})
}

func TestAssignHIDs(t *testing.T) {
	t.Run("depth first", func(t *testing.T) {
		tree := El("ul",
			El("li", "a"),
			El("li", "b"),
		)

		AssignHIDs(tree, NewHIDGenerator())

		want := map[*VNode]string{
			tree:                         "h1",
			tree.Children[0]:             "h2",
			tree.Children[0].Children[0]: "h3",
			tree.Children[1]:             "h4",
			tree.Children[1].Children[0]: "h5",
		}
		for node, hid := range want {
			if node.HID != hid {
				t.Errorf("%s %q HID = %q, want %q", node.Kind, node.Tag+node.Text, node.HID, hid)
			}
		}
	})

	t.Run("fragments are skipped", func(t *testing.T) {
		tree := Fragment(El("li"), El("li"))

		AssignHIDs(tree, NewHIDGenerator())

		if tree.HID != "" {
			t.Errorf("fragment HID = %q, want empty", tree.HID)
		}
		if tree.Children[0].HID != "h1" || tree.Children[1].HID != "h2" {
			t.Errorf("children HIDs = %q, %q", tree.Children[0].HID, tree.Children[1].HID)
		}
	})

	t.Run("existing HIDs kept", func(t *testing.T) {
		tree := El("ul", El("li"))
		tree.HID = "root"

		AssignHIDs(tree, NewHIDGenerator())

		if tree.HID != "root" {
			t.Errorf("HID = %q, want root", tree.HID)
		}
		if tree.Children[0].HID != "h1" {
			t.Errorf("child HID = %q, want h1", tree.Children[0].HID)
		}
	})

	t.Run("nil root", func(t *testing.T) {
		AssignHIDs(nil, NewHIDGenerator())
	})
}
