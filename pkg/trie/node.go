package trie

import (
	"strings"
)

// Node is a single character in the prefix tree.
// A node becomes terminal through SetWord; it can be terminal and still have children.
type Node struct {
	char     byte
	children []*Node
	parent   *Node // not owned, only used by Path
	word     string
	terminal bool
}

func newNode(c byte, parent *Node) *Node {
	return &Node{
		char:   c,
		parent: parent,
	}
}

// FindChild returns the child holding c, or nil.
func (n *Node) FindChild(c byte) *Node {
	for _, child := range n.children {
		if child.char == c {
			return child
		}
	}
	return nil
}

// addChild appends a new child for c. Callers check FindChild first.
func (n *Node) addChild(c byte) *Node {
	child := newNode(c, n)
	n.children = append(n.children, child)
	return child
}

// Children returns the children in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// Char returns the character held by this node. The root holds 0.
func (n *Node) Char() byte {
	return n.char
}

// SetChar replaces the character held by this node.
func (n *Node) SetChar(c byte) {
	n.char = c
}

// Parent returns the node one level up, nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Word returns the word ending at this node, if any.
func (n *Node) Word() (string, bool) {
	return n.word, n.terminal
}

// SetWord marks the node as the end of word.
func (n *Node) SetWord(word string) {
	n.word = word
	n.terminal = true
}

// IsTerminal reports whether a word ends at this node.
func (n *Node) IsTerminal() bool {
	return n.terminal
}

// Path walks the parent pointers up to the root and returns the characters
// on the way, root first. Debugging only.
// The root contributes nothing and there are no separators, so the path of a
// terminal node equals its word.
func (n *Node) Path() string {
	var chars []byte
	for looking := n; looking != nil && looking.parent != nil; looking = looking.parent {
		chars = append(chars, looking.char)
	}
	for i, j := 0, len(chars)-1; i < j; i, j = i+1, j-1 {
		chars[i], chars[j] = chars[j], chars[i]
	}
	return string(chars)
}

// String renders the node and its subtree, one line per node.
func (n *Node) String() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	b.WriteString("Node ")
	b.WriteString(n.label())
	if len(n.children) == 0 {
		b.WriteString(" has no children.")
	} else {
		b.WriteString(" has children:")
		for _, child := range n.children {
			b.WriteByte(' ')
			b.WriteString(child.label())
		}
	}
	if n.terminal {
		b.WriteString(" and gives word: ")
		b.WriteString(n.word)
	}
	b.WriteByte('\n')
	for _, child := range n.children {
		child.render(b)
	}
}

func (n *Node) label() string {
	if n.parent == nil {
		return "*"
	}
	return string(n.char)
}
