package model

// EditAction is a low-level tree diff primitive.
type EditAction int

const (
	// ActionInsert inserts a node of the after tree.
	ActionInsert EditAction = iota + 1
	// ActionDelete deletes a node of the before tree.
	ActionDelete
	// ActionUpdate relabels a before node into an after node.
	ActionUpdate
	// ActionMove moves a node to another parent.
	ActionMove
)

func (a EditAction) String() string {
	switch a {
	case ActionInsert:
		return "insert"
	case ActionDelete:
		return "delete"
	case ActionUpdate:
		return "update"
	case ActionMove:
		return "move"
	default:
		return "unknown"
	}
}

// EditOp is one operation of an edit script.
//
// Node lives in Tree. Location is Node's parent in Tree, Slot is Node's index
// among Location's children. For updates, Target is the after version of Node.
type EditOp struct {
	Action   EditAction
	Node     Node
	Location Node
	Tree     *Tree
	Slot     int
	Target   Node
	Group    int // ops sharing a non-zero Group form one change
}

// EditScript is the ordered output of a tree diff.
type EditScript struct {
	Before *Tree
	After  *Tree
	Ops    []EditOp
}

// ScriptEntry is a change together with the ops that produced it.
type ScriptEntry struct {
	Change *Change
	Ops    []EditOp
}

// Script is the ordered grouping of edit ops into changes.
type Script struct {
	Entries []ScriptEntry
}

// Add appends a change with its ops.
func (s *Script) Add(change *Change, ops ...EditOp) {
	s.Entries = append(s.Entries, ScriptEntry{Change: change, Ops: ops})
}

// Len returns the number of changes.
func (s Script) Len() int {
	return len(s.Entries)
}
