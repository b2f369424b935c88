package adapter

import (
	"fmt"
	"log/slog"

	m "fixpool.dev/pkg/fixpool/internal/model"
)

// Converter groups edit operations into changes.
type Converter interface {
	// ToScript turns an edit script into changes whose ids start with idSeed.
	ToScript(idSeed string, script m.EditScript) (m.Script, error)
}

// EditConverter maps single ops to INSERT, DELETE and UPDATE changes and
// grouped delete/insert pairs to REPLACE changes.
type EditConverter struct{}

// NewEditConverter constructs an EditConverter.
func NewEditConverter() *EditConverter {
	return &EditConverter{}
}

// ToScript implements Converter.
func (c *EditConverter) ToScript(idSeed string, script m.EditScript) (m.Script, error) {
	var (
		result m.Script
		groups = make(map[int][]m.EditOp)
		order  []int
	)

	nextID := func() string {
		return fmt.Sprintf("%s.%d", idSeed, result.Len())
	}

	for _, op := range script.Ops {
		if op.Group != 0 {
			if _, ok := groups[op.Group]; !ok {
				order = append(order, op.Group)
			}

			groups[op.Group] = append(groups[op.Group], op)

			continue
		}

		switch op.Action {
		case m.ActionInsert:
			result.Add(m.NewChange(nextID(), m.Insert, op.Node, op.Location, op.Tree), op)
		case m.ActionDelete:
			result.Add(m.NewChange(nextID(), m.Delete, op.Node, op.Location, op.Tree), op)
		case m.ActionUpdate:
			result.Add(m.NewChange(nextID(), m.Update, op.Target, op.Node, script.After), op)
		case m.ActionMove:
			slog.Debug("skipping move operation", "node", op.Node.Label)
		default:
			return m.Script{}, fmt.Errorf("unknown edit action %d", int(op.Action))
		}
	}

	for _, group := range order {
		change, err := replacement(nextID(), groups[group])
		if err != nil {
			return m.Script{}, err
		}

		result.Add(change, groups[group]...)
	}

	return result, nil
}

// replacement builds a REPLACE change from a delete/insert group.
func replacement(id string, ops []m.EditOp) (*m.Change, error) {
	var (
		deleted, inserted *m.EditOp
	)

	for i := range ops {
		switch ops[i].Action {
		case m.ActionDelete:
			deleted = &ops[i]
		case m.ActionInsert:
			inserted = &ops[i]
		}
	}

	if deleted == nil || inserted == nil {
		return nil, fmt.Errorf("replace group %s needs one delete and one insert, got %d ops", id, len(ops))
	}

	return m.NewChange(id, m.Replace, inserted.Node, deleted.Node, inserted.Tree), nil
}
