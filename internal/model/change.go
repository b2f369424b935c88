package model

import "fmt"

// ChangeKind is the kind of a structural edit.
type ChangeKind int

const (
	// Insert adds Node under Location.
	Insert ChangeKind = iota + 1
	// Delete removes Node from Location.
	Delete
	// Update rewrites the Location node into Node.
	Update
	// Replace swaps the Location node for Node.
	Replace
)

func (k ChangeKind) String() string {
	switch k {
	case Insert:
		return "INSERT"
	case Delete:
		return "DELETE"
	case Update:
		return "UPDATE"
	case Replace:
		return "REPLACE"
	default:
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
}

// Valid reports whether k is one of the four known kinds.
func (k ChangeKind) Valid() bool {
	return k >= Insert && k <= Replace
}

// ParseChangeKind decodes the String form of a ChangeKind.
func ParseChangeKind(s string) (ChangeKind, error) {
	switch s {
	case "INSERT":
		return Insert, nil
	case "DELETE":
		return Delete, nil
	case "UPDATE":
		return Update, nil
	case "REPLACE":
		return Replace, nil
	}

	return 0, fmt.Errorf("unknown change kind %q", s)
}

// MarshalYAML implements yaml.Marshaler.
func (k ChangeKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *ChangeKind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	parsed, err := ParseChangeKind(s)
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}

// DedupKey identifies a change in the pool independently of its id.
type DedupKey struct {
	Kind          ChangeKind
	NodeLabel     string
	LocationLabel string
}

func (k DedupKey) String() string {
	return k.Kind.String() + "|" + k.NodeLabel + "|" + k.LocationLabel
}

// Change is one structural edit: Node is the subject, Location its position.
//
// BaseID is the id assigned by the converter; ID is BaseID plus the
// enclosing method scope once the generator has seen the change.
type Change struct {
	ID       string     `yaml:"id"`
	BaseID   string     `yaml:"-"`
	Kind     ChangeKind `yaml:"kind"`
	Node     Node       `yaml:"node"`
	Location Node       `yaml:"location"`
	Tree     *Tree      `yaml:"-"` // tree Node lives in
}

// NewChange builds a change whose id is still the converter id.
func NewChange(id string, kind ChangeKind, node, location Node, tree *Tree) *Change {
	return &Change{
		ID:       id,
		BaseID:   id,
		Kind:     kind,
		Node:     node,
		Location: location,
		Tree:     tree,
	}
}

// DedupKey returns the pool identity of c.
func (c Change) DedupKey() DedupKey {
	return DedupKey{
		Kind:          c.Kind,
		NodeLabel:     c.Node.Label,
		LocationLabel: c.Location.Label,
	}
}

// WithKind returns a copy of c with a different kind.
func (c Change) WithKind(kind ChangeKind) Change {
	c.Kind = kind
	return c
}

// WithNode returns a copy of c with a different subject node.
func (c Change) WithNode(node Node) Change {
	c.Node = node
	return c
}

// WithLocation returns a copy of c with a different location node.
func (c Change) WithLocation(location Node) Change {
	c.Location = location
	return c
}

func (c Change) String() string {
	return fmt.Sprintf("%s %s @ %s (%s)", c.Kind, c.Node.Label, c.Location.Label, c.ID)
}
