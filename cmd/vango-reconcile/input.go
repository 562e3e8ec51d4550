package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/vango-dev/reconcile/internal/errors"
	"github.com/vango-dev/reconcile/pkg/vdom"
)

// nodeDoc is the JSON form of a node in a child list.
type nodeDoc struct {
	Key      any            `json:"key,omitempty"`
	Tag      string         `json:"tag,omitempty"`
	Text     string         `json:"text,omitempty"`
	Props    map[string]any `json:"props,omitempty"`
	Children []nodeDoc      `json:"children,omitempty"`
}

// docKey is the key function for node documents.
func docKey(d nodeDoc) vdom.Key {
	return vdom.KeyOf(d.Key)
}

// toVNode converts a document to a VNode. A document with a tag is an
// element; one without is a text node.
func (d nodeDoc) toVNode() *vdom.VNode {
	if d.Tag == "" {
		n := vdom.Text(d.Text)
		n.Key = docKey(d)
		return n
	}

	n := vdom.El(d.Tag)
	n.Key = docKey(d)
	for k, v := range d.Props {
		n.Props[k] = v
	}
	if d.Text != "" {
		n.Children = append(n.Children, vdom.Text(d.Text))
	}
	for _, c := range d.Children {
		n.Children = append(n.Children, c.toVNode())
	}
	return n
}

// fromVNode converts a VNode back to its document form.
func fromVNode(n *vdom.VNode) *nodeDoc {
	if n == nil {
		return nil
	}
	d := &nodeDoc{Key: n.Key.Value(), Tag: n.Tag}
	if n.Kind == vdom.KindText {
		d.Text = n.Text
		return d
	}
	if len(n.Props) > 0 {
		d.Props = make(map[string]any, len(n.Props))
		for k, v := range n.Props {
			d.Props[k] = v
		}
	}
	for _, c := range n.Children {
		d.Children = append(d.Children, *fromVNode(c))
	}
	return d
}

// readSource returns the bytes of path, or of stdin when path is "-".
func readSource(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// decodeStrict decodes exactly one JSON value, keeping numbers as
// json.Number so integral keys stay exact. Trailing data is an error.
func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("unexpected data after JSON value at offset %d", dec.InputOffset())
	}
	return nil
}

// readNodes reads a JSON array of node documents.
func readNodes(path string, stdin io.Reader) ([]nodeDoc, error) {
	data, err := readSource(path, stdin)
	if err != nil {
		return nil, errors.New("E030").Wrap(err)
	}
	var nodes []nodeDoc
	if err := decodeStrict(data, &nodes); err != nil {
		return nil, errors.New("E030").
			WithDetail(path + " must contain a JSON array of nodes").
			Wrap(err)
	}
	return nodes, nil
}

// readObject reads a JSON object. A JSON null yields a nil map.
func readObject(path string, stdin io.Reader) (map[string]any, error) {
	data, err := readSource(path, stdin)
	if err != nil {
		return nil, errors.New("E030").Wrap(err)
	}
	var obj map[string]any
	if err := decodeStrict(data, &obj); err != nil {
		return nil, errors.New("E030").
			WithDetail(path + " must contain a JSON object").
			Wrap(err)
	}
	return obj, nil
}
