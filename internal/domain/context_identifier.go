package domain

import (
	m "fixpool.dev/pkg/fixpool/internal/model"
)

// DefaultContextDepth is how many ancestors of an edit location form its context.
const DefaultContextDepth = 3

// ContextIdentifier computes the structural context of edit operations. One
// identifier serves the ops of a single change.
type ContextIdentifier interface {
	Context(op m.EditOp) m.Context
}

type ancestorKey struct {
	tree *m.Tree
	node int
}

// ancestorIdentifier fingerprints an op by its action and the type tags of
// its location and that location's ancestors.
type ancestorIdentifier struct {
	depth int
	seen  map[ancestorKey][]string
}

// NewContextIdentifier creates an identifier looking depth levels up from an
// edit's location. A depth <= 0 uses DefaultContextDepth.
func NewContextIdentifier(depth int) ContextIdentifier {
	if depth <= 0 {
		depth = DefaultContextDepth
	}

	return &ancestorIdentifier{
		depth: depth,
		seen:  make(map[ancestorKey][]string),
	}
}

func (ai *ancestorIdentifier) Context(op m.EditOp) m.Context {
	return m.NewContext(op.Action, ai.chain(op))
}

func (ai *ancestorIdentifier) chain(op m.EditOp) []string {
	if op.Tree == nil {
		return nil
	}

	key := ancestorKey{tree: op.Tree, node: op.Node.ID}
	if tags, ok := ai.seen[key]; ok {
		return tags
	}

	var tags []string

	for _, ancestor := range op.Tree.Ancestors(op.Node, ai.depth) {
		tags = append(tags, ancestor.Type)
	}

	ai.seen[key] = tags

	return tags
}
