// Package model defines the data structures for fix template mining.
package model

import "strings"

// LabelSeparator splits a node label into its type tag and its value.
const LabelSeparator = "::"

// NoParent marks a root node in a Tree.
const NoParent = -1

// Type tags with a meaning for the miner.
const (
	TypeMethodDeclaration = "MethodDeclaration"
	TypeInfixExpression   = "InfixExpression"
	TypePrefixExpression  = "PrefixExpression"
	TypePostfixExpression = "PostfixExpression"
	// TypePostExpression is a legacy postfix tag. Only DELETE, UPDATE and REPLACE
	// catalog selection recognises it.
	TypePostExpression = "PostExpression"
)

// Family is the operator family a type tag belongs to.
type Family int

const (
	// FamilyNone is any non-operator node.
	FamilyNone Family = iota
	// FamilyInfix is a binary operator expression.
	FamilyInfix
	// FamilyPrefix is a unary prefix operator expression.
	FamilyPrefix
	// FamilyPostfix is a postfix increment/decrement.
	FamilyPostfix
	// FamilyPostfixAlias is the legacy PostExpression tag.
	FamilyPostfixAlias
)

func (f Family) String() string {
	switch f {
	case FamilyInfix:
		return "infix"
	case FamilyPrefix:
		return "prefix"
	case FamilyPostfix:
		return "postfix"
	case FamilyPostfixAlias:
		return "postfix-alias"
	default:
		return "none"
	}
}

// FamilyOf decodes the operator family of a type tag.
func FamilyOf(nodeType string) Family {
	switch nodeType {
	case TypeInfixExpression:
		return FamilyInfix
	case TypePrefixExpression:
		return FamilyPrefix
	case TypePostfixExpression:
		return FamilyPostfix
	case TypePostExpression:
		return FamilyPostfixAlias
	default:
		return FamilyNone
	}
}

// TypeOf returns the type tag of a label, the part before "::".
func TypeOf(label string) string {
	nodeType, _, _ := strings.Cut(label, LabelSeparator)
	return nodeType
}

// MakeLabel joins a type tag and a value into a label.
func MakeLabel(nodeType, value string) string {
	if value == "" {
		return nodeType
	}

	return nodeType + LabelSeparator + value
}

// Node is a structural tree node. Nodes are values owned by a Tree arena;
// Parent is an index into that arena, never an owning pointer.
type Node struct {
	ID     int    `yaml:"-"`
	Type   string `yaml:"type"`
	Label  string `yaml:"label"`
	Value  string `yaml:"value,omitempty"`
	Parent int    `yaml:"-"`
	Start  int    `yaml:"start"`
	Name   string `yaml:"name,omitempty"` // declared identifier, set on declarations
}

// Family returns the operator family of the node's type tag.
func (n Node) Family() Family {
	return FamilyOf(n.Type)
}

// WithLabel returns a copy of n carrying label and value. The type tag is
// re-derived from the new label.
func (n Node) WithLabel(label, value string) Node {
	n.Label = label
	n.Value = value
	n.Type = TypeOf(label)

	return n
}

// IsRoot reports whether n has no parent.
func (n Node) IsRoot() bool {
	return n.Parent == NoParent
}

// Tree is an arena of nodes. Nodes[i].ID == i and Nodes[0] is the root.
type Tree struct {
	Path  Path
	Nodes []Node
}

// NewTree creates an empty tree for the given source path.
func NewTree(path Path) *Tree {
	return &Tree{Path: path}
}

// Add appends a node under parent and returns its id.
func (t *Tree) Add(parent int, label, value string, start int) int {
	id := len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{
		ID:     id,
		Type:   TypeOf(label),
		Label:  label,
		Value:  value,
		Parent: parent,
		Start:  start,
	})

	return id
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}

	return len(t.Nodes)
}

// Node returns the node with the given id.
func (t *Tree) Node(id int) (Node, bool) {
	if t == nil || id < 0 || id >= len(t.Nodes) {
		return Node{}, false
	}

	return t.Nodes[id], true
}

// Parent returns the parent of n inside t.
func (t *Tree) Parent(n Node) (Node, bool) {
	if n.IsRoot() {
		return Node{}, false
	}

	return t.Node(n.Parent)
}

// Ancestors returns up to limit ancestors of n, nearest first. A limit <= 0
// walks up to the root.
func (t *Tree) Ancestors(n Node, limit int) []Node {
	var ancestors []Node

	for cur, ok := t.Parent(n); ok; cur, ok = t.Parent(cur) {
		ancestors = append(ancestors, cur)
		if limit > 0 && len(ancestors) == limit {
			break
		}
	}

	return ancestors
}

// Children returns the ids of n's children in source order.
func (t *Tree) Children(id int) []int {
	var children []int

	for _, node := range t.Nodes {
		if node.Parent == id && node.ID != id {
			children = append(children, node.ID)
		}
	}

	return children
}

// Depth returns the number of ancestors of n.
func (t *Tree) Depth(n Node) int {
	depth := 0
	for cur, ok := t.Parent(n); ok; cur, ok = t.Parent(cur) {
		depth++
	}

	return depth
}
