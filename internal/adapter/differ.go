package adapter

import (
	"context"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	m "fixpool.dev/pkg/fixpool/internal/model"
)

// Differ computes and normalizes edit scripts between two trees.
type Differ interface {
	// Diff returns the edit operations turning before into after.
	Diff(ctx context.Context, before, after *m.Tree) (m.EditScript, error)

	// Filter drops operations already implied by an operation on an ancestor.
	Filter(script m.EditScript) m.EditScript

	// Combine groups a delete and an insert at the same slot into one replacement.
	Combine(script m.EditScript) m.EditScript
}

// SequenceDiffer aligns the pre-order node sequences of both trees with
// difflib's SequenceMatcher. Nodes are compared by depth and label.
type SequenceDiffer struct{}

// NewSequenceDiffer constructs a SequenceDiffer.
func NewSequenceDiffer() *SequenceDiffer {
	return &SequenceDiffer{}
}

// treeIndex holds the per-node facts the differ needs.
type treeIndex struct {
	tree  *m.Tree
	depth []int
	slot  []int
	keys  []string
}

func indexTree(tree *m.Tree) treeIndex {
	idx := treeIndex{
		tree:  tree,
		depth: make([]int, tree.Len()),
		slot:  make([]int, tree.Len()),
		keys:  make([]string, tree.Len()),
	}

	children := make(map[int]int)

	// Arena order is pre-order, so parents are always indexed first.
	for i, node := range tree.Nodes {
		if !node.IsRoot() {
			idx.depth[i] = idx.depth[node.Parent] + 1
		}

		idx.slot[i] = children[node.Parent]
		children[node.Parent]++
		idx.keys[i] = fmt.Sprintf("%d|%s", idx.depth[i], node.Label)
	}

	return idx
}

func (idx treeIndex) location(node m.Node) m.Node {
	if parent, ok := idx.tree.Parent(node); ok {
		return parent
	}

	return m.Node{ID: m.NoParent, Parent: m.NoParent}
}

func (idx treeIndex) op(action m.EditAction, id int) m.EditOp {
	node := idx.tree.Nodes[id]

	return m.EditOp{
		Action:   action,
		Node:     node,
		Location: idx.location(node),
		Tree:     idx.tree,
		Slot:     idx.slot[id],
	}
}

// Diff implements Differ.
func (d *SequenceDiffer) Diff(ctx context.Context, before, after *m.Tree) (m.EditScript, error) {
	if before == nil || after == nil {
		return m.EditScript{}, fmt.Errorf("diff requires two trees")
	}

	if err := ctx.Err(); err != nil {
		return m.EditScript{}, err
	}

	src := indexTree(before)
	dst := indexTree(after)

	script := m.EditScript{Before: before, After: after}
	matcher := difflib.NewMatcherWithJunk(src.keys, dst.keys, false, nil)

	for _, code := range matcher.GetOpCodes() {
		switch code.Tag {
		case 'e':
			continue
		case 'd':
			script.Ops = append(script.Ops, deletes(src, code.I1, code.I2)...)
		case 'i':
			script.Ops = append(script.Ops, inserts(dst, code.J1, code.J2)...)
		case 'r':
			script.Ops = append(script.Ops, replaceRun(src, dst, code)...)
		}
	}

	return script, nil
}

func deletes(src treeIndex, from, to int) []m.EditOp {
	ops := make([]m.EditOp, 0, to-from)
	for i := from; i < to; i++ {
		ops = append(ops, src.op(m.ActionDelete, i))
	}

	return ops
}

func inserts(dst treeIndex, from, to int) []m.EditOp {
	ops := make([]m.EditOp, 0, to-from)
	for j := from; j < to; j++ {
		ops = append(ops, dst.op(m.ActionInsert, j))
	}

	return ops
}

// replaceRun pairs nodes of a replaced run. Pairs at the same depth with the
// same type tag are updates; anything else is deleted and inserted.
func replaceRun(src, dst treeIndex, code difflib.OpCode) []m.EditOp {
	var ops []m.EditOp

	paired := min(code.I2-code.I1, code.J2-code.J1)
	for k := 0; k < paired; k++ {
		i, j := code.I1+k, code.J1+k
		a, b := src.tree.Nodes[i], dst.tree.Nodes[j]

		if a.Type == b.Type && src.depth[i] == dst.depth[j] {
			op := src.op(m.ActionUpdate, i)
			op.Target = b
			ops = append(ops, op)

			continue
		}

		ops = append(ops, src.op(m.ActionDelete, i), dst.op(m.ActionInsert, j))
	}

	ops = append(ops, deletes(src, code.I1+paired, code.I2)...)
	ops = append(ops, inserts(dst, code.J1+paired, code.J2)...)

	return ops
}

type opKey struct {
	action m.EditAction
	tree   *m.Tree
	node   int
}

// Filter implements Differ. Inserts and deletes below an inserted or deleted
// ancestor are dropped, keeping only subtree roots.
func (d *SequenceDiffer) Filter(script m.EditScript) m.EditScript {
	touched := make(map[opKey]struct{}, len(script.Ops))
	for _, op := range script.Ops {
		touched[opKey{action: op.Action, tree: op.Tree, node: op.Node.ID}] = struct{}{}
	}

	filtered := script
	filtered.Ops = make([]m.EditOp, 0, len(script.Ops))

	for _, op := range script.Ops {
		if op.Action == m.ActionInsert || op.Action == m.ActionDelete {
			if coveredByAncestor(op, touched) {
				continue
			}
		}

		filtered.Ops = append(filtered.Ops, op)
	}

	return filtered
}

func coveredByAncestor(op m.EditOp, touched map[opKey]struct{}) bool {
	if op.Tree == nil {
		return false
	}

	for _, ancestor := range op.Tree.Ancestors(op.Node, 0) {
		if _, ok := touched[opKey{action: op.Action, tree: op.Tree, node: ancestor.ID}]; ok {
			return true
		}
	}

	return false
}

// Combine implements Differ. A delete and an insert whose locations share a
// label and whose slots agree receive the same group number.
func (d *SequenceDiffer) Combine(script m.EditScript) m.EditScript {
	combined := script
	combined.Ops = append([]m.EditOp(nil), script.Ops...)

	group := 0

	for i := range combined.Ops {
		del := &combined.Ops[i]
		if del.Action != m.ActionDelete || del.Group != 0 {
			continue
		}

		for j := range combined.Ops {
			ins := &combined.Ops[j]
			if ins.Action != m.ActionInsert || ins.Group != 0 {
				continue
			}

			if ins.Location.Label == del.Location.Label && ins.Slot == del.Slot {
				group++
				del.Group = group
				ins.Group = group

				break
			}
		}
	}

	return combined
}
