package domain

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	m "fixpool.dev/pkg/fixpool/internal/model"
)

// Listener is notified of every change the generator stores in the pool.
type Listener interface {
	ChangeAdded(ctx m.Context, change m.Change, origin m.Origin)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(ctx m.Context, change m.Change, origin m.Origin)

// ChangeAdded implements Listener.
func (f ListenerFunc) ChangeAdded(ctx m.Context, change m.Change, origin m.Origin) {
	f(ctx, change, origin)
}

// CollectStats counts what a Collect call did.
type CollectStats struct {
	Changes  int
	Ops      int
	Added    int
	Observed int
	Variants int
	Reverses int
}

// Merge adds other into s.
func (s *CollectStats) Merge(other CollectStats) {
	s.Changes += other.Changes
	s.Ops += other.Ops
	s.Added += other.Added
	s.Observed += other.Observed
	s.Variants += other.Variants
	s.Reverses += other.Reverses
}

// Generator turns scripts into pool entries, expanding each observed change
// with its natural reverse and its operator variants.
type Generator struct {
	pool     *Pool
	listener Listener
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithListener registers a listener for stored changes.
func WithListener(listener Listener) GeneratorOption {
	return func(g *Generator) {
		g.listener = listener
	}
}

// NewGenerator creates a generator filling pool.
func NewGenerator(pool *Pool, options ...GeneratorOption) *Generator {
	g := &Generator{pool: pool}
	for _, option := range options {
		option(g)
	}

	return g
}

// Pool returns the pool being filled.
func (g *Generator) Pool() *Pool {
	return g.pool
}

// Collect mines every change of script into the pool. A change with an
// unknown kind is a broken upstream contract and panics.
func (g *Generator) Collect(script m.Script) CollectStats {
	var stats CollectStats

	for _, entry := range script.Entries {
		c := entry.Change
		if c == nil {
			continue
		}

		if !c.Kind.Valid() {
			panic(fmt.Sprintf("change %q has unknown kind %s", c.ID, c.Kind))
		}

		stats.Changes++

		identifier := g.pool.Identifier()
		for _, op := range entry.Ops {
			stats.Ops++
			g.collectOp(identifier.Context(op), c, &stats)
		}
	}

	return stats
}

func (g *Generator) collectOp(ctx m.Context, c *m.Change, stats *CollectStats) {
	UpdateMethodScope(c)

	locationType := c.Location.Type

	var (
		reverse  *m.Change
		variants int
	)

	switch c.Kind {
	case m.Insert:
		rev := c.WithKind(m.Delete)
		reverse = &rev
		variants = g.addNodeVariants(ctx, *c, m.Delete, SelectCatalog(m.Insert, c.Node.Type), locationType)
	case m.Delete:
		rev := c.WithKind(m.Insert)
		reverse = &rev
		variants = g.addNodeVariants(ctx, *c, m.Insert, SelectCatalog(m.Delete, c.Node.Type), locationType)
	case m.Update, m.Replace:
		// REPLACE variants are pooled as UPDATE.
		variants = g.addLocationVariants(ctx, *c, SelectCatalog(c.Kind, locationType), locationType)
	default:
		panic(fmt.Sprintf("change %q has unknown kind %s", c.ID, c.Kind))
	}

	stats.Variants += variants
	stats.Added += variants

	if reverse != nil && g.add(ctx, *reverse, m.OriginReverse) {
		stats.Reverses++
		stats.Added++
	}

	if g.add(ctx, *c, m.OriginObserved) {
		stats.Observed++
		stats.Added++
	}
}

// addNodeVariants pools one kind-typed clone of c per catalog token, with the
// node relabelled to locationType::token.
func (g *Generator) addNodeVariants(ctx m.Context, c m.Change, kind m.ChangeKind, catalog Catalog, locationType string) int {
	added := 0

	for _, token := range catalog {
		node := c.Node.WithLabel(locationType+m.LabelSeparator+token, token)
		if g.add(ctx, c.WithKind(kind).WithNode(node), m.OriginVariant) {
			added++
		}
	}

	return added
}

// addLocationVariants pools one UPDATE clone of c per catalog token, with the
// location relabelled to locationType::token.
func (g *Generator) addLocationVariants(ctx m.Context, c m.Change, catalog Catalog, locationType string) int {
	added := 0

	for _, token := range catalog {
		location := c.Location.WithLabel(locationType+m.LabelSeparator+token, token)
		if g.add(ctx, c.WithKind(m.Update).WithLocation(location), m.OriginVariant) {
			added++
		}
	}

	return added
}

func (g *Generator) add(ctx m.Context, change m.Change, origin m.Origin) bool {
	change.Tree = nil

	if !g.pool.Add(ctx, change) {
		return false
	}

	slog.Debug("added change",
		"origin", origin,
		"kind", change.Kind,
		"node", change.Node.Label,
		"location", change.Location.Label,
		"context", ctx.String(),
	)

	if g.listener != nil {
		g.listener.ChangeAdded(ctx, change, origin)
	}

	return true
}

// EnclosingMethod returns the nearest method declaration above c's node.
func EnclosingMethod(c *m.Change) (m.Node, bool) {
	if c.Tree == nil {
		return m.Node{}, false
	}

	for _, ancestor := range c.Tree.Ancestors(c.Node, 0) {
		if ancestor.Type == m.TypeMethodDeclaration {
			return ancestor, true
		}
	}

	return m.Node{}, false
}

// UpdateMethodScope sets c.ID to "<base>:<method>:<start>", or "<base>:" when
// c's node is not inside a method. It always starts from BaseID, so repeated
// calls for the same change are idempotent.
func UpdateMethodScope(c *m.Change) {
	if c.BaseID == "" {
		c.BaseID = c.ID
	}

	var sb strings.Builder

	sb.WriteString(c.BaseID)
	sb.WriteString(":")

	if method, ok := EnclosingMethod(c); ok {
		sb.WriteString(method.Name)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(method.Start))
	}

	c.ID = sb.String()
}
