package model

import "strings"

// AncestorSeparator joins type tags in Context.Ancestors.
const AncestorSeparator = "/"

// Context is the structural fingerprint used as the pool key. Two edits with
// equal contexts are interchangeable fix locations.
type Context struct {
	Action    string `yaml:"action"`
	Ancestors string `yaml:"ancestors"`
}

// NewContext builds a context from an action and ancestor tags, nearest first.
func NewContext(action EditAction, ancestors []string) Context {
	return Context{
		Action:    action.String(),
		Ancestors: strings.Join(ancestors, AncestorSeparator),
	}
}

func (c Context) String() string {
	if c.Ancestors == "" {
		return c.Action
	}

	return c.Action + "@" + c.Ancestors
}
