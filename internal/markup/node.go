// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package markup

import (
	"strings"
)

// RootKey is the key of the synthetic node Parse returns.
const RootKey = "Main"

// Value is the content of a Node: either a Leaf or an Interior, never both.
type Value interface {
	isValue()
}

// Leaf is raw text.
type Leaf string

// Interior is an ordered list of child nodes.
type Interior []*Node

func (Leaf) isValue()     {}
func (Interior) isValue() {}

// Node is one tag span of a parsed document. A node owns its children.
type Node struct {
	key   string
	value Value
}

// NewNode returns an unresolved leaf node holding text.
func NewNode(key, text string) *Node {
	return &Node{key: key, value: Leaf(text)}
}

// NewInterior returns a node holding the given children.
func NewInterior(key string, children ...*Node) *Node {
	return &Node{key: key, value: Interior(children)}
}

// Parse resolves doc into a tree rooted at a node keyed RootKey. Line breaks
// between adjacent tags are removed first so they do not turn into text.
func Parse(doc string) *Node {
	doc = strings.ReplaceAll(doc, ">\r\n<", "><")
	doc = strings.ReplaceAll(doc, ">\n<", "><")
	return NewNode(RootKey, doc).Resolve()
}

// Key returns the tag name the node was built from.
func (n *Node) Key() string { return n.key }

// Value returns the node content.
func (n *Node) Value() Value { return n.value }

// IsLeaf reports whether the node holds raw text.
func (n *Node) IsLeaf() bool {
	_, ok := n.value.(Leaf)
	return ok
}

// Text returns a leaf's text, or "" for an interior node.
func (n *Node) Text() string {
	if leaf, ok := n.value.(Leaf); ok {
		return string(leaf)
	}
	return ""
}

// Children returns an interior node's children, or nil for a leaf.
func (n *Node) Children() []*Node {
	if children, ok := n.value.(Interior); ok {
		return children
	}
	return nil
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.Children())
}

// Lookup returns the text of the first child whose key matches key
// case-insensitively, and whether such a child exists.
func (n *Node) Lookup(key string) (string, bool) {
	for _, child := range n.Children() {
		if strings.EqualFold(child.key, key) {
			return child.Text(), true
		}
	}
	return "", false
}

// Get is Lookup without the presence flag.
func (n *Node) Get(key string) string {
	text, _ := n.Lookup(key)
	return text
}

// ChildrenNamed returns, in document order, the children whose key matches key
// case-insensitively.
func (n *Node) ChildrenNamed(key string) []*Node {
	var out []*Node
	for _, child := range n.Children() {
		if strings.EqualFold(child.key, key) {
			out = append(out, child)
		}
	}
	return out
}

// Resolve parses a leaf's text into child nodes, depth-first. A leaf whose
// text contains no complete tag span stays a leaf; resolving an interior node
// is a no-op.
func (n *Node) Resolve() *Node {
	leaf, ok := n.value.(Leaf)
	if !ok {
		return n
	}

	text := string(leaf)
	var out Interior
	for text != "" {
		_, tag, inner, trail := ExtractNext(text)
		if tag == "" {
			break
		}

		child := NewNode(tag, inner)
		child.Resolve()
		out = append(out, child)
		text = trail
	}

	if len(out) > 0 {
		n.value = out
	}
	return n
}

// Outline is an exported, comparable snapshot of a tree, used for dumps.
type Outline struct {
	Key      string
	Text     string    `json:",omitempty"`
	Children []Outline `json:",omitempty"`
}

// Outline returns a snapshot of the subtree rooted at n.
func (n *Node) Outline() Outline {
	o := Outline{Key: n.key, Text: n.Text()}
	for _, child := range n.Children() {
		o.Children = append(o.Children, child.Outline())
	}
	return o
}
