package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixpool.dev/pkg/fixpool/internal/domain"
	m "fixpool.dev/pkg/fixpool/internal/model"
)

type scenario struct {
	tree      *m.Tree
	method    m.Node
	statement m.Node
	postfix   m.Node
	field     m.Node
	infix     m.Node
}

// newScenario builds
//
//	CompilationUnit
//	  MethodDeclaration::foo (start 120)
//	    Block
//	      Statement::s1
//	        PostfixExpression::++
//	  FieldDeclaration
//	    InfixExpression::==
func newScenario() scenario {
	tree := m.NewTree("Foo.java")
	root := tree.Add(m.NoParent, "CompilationUnit", "", 0)
	method := tree.Add(root, "MethodDeclaration::foo", "foo", 120)
	tree.Nodes[method].Name = "foo"
	block := tree.Add(method, "Block", "", 140)
	statement := tree.Add(block, "Statement::s1", "s1", 142)
	postfix := tree.Add(statement, "PostfixExpression::++", "++", 143)
	field := tree.Add(root, "FieldDeclaration", "", 300)
	infix := tree.Add(field, "InfixExpression::==", "==", 310)

	return scenario{
		tree:      tree,
		method:    tree.Nodes[method],
		statement: tree.Nodes[statement],
		postfix:   tree.Nodes[postfix],
		field:     tree.Nodes[field],
		infix:     tree.Nodes[infix],
	}
}

// singleScript wraps one change and one op on its node.
func singleScript(c *m.Change, action m.EditAction) m.Script {
	var script m.Script
	script.Add(c, m.EditOp{Action: action, Node: c.Node, Location: c.Location, Tree: c.Tree})

	return script
}

func keysOf(changes []m.Change) []m.DedupKey {
	keys := make([]m.DedupKey, 0, len(changes))
	for _, c := range changes {
		keys = append(keys, c.DedupKey())
	}

	return keys
}

func TestGenerator_PostfixInsertEndToEnd(t *testing.T) {
	s := newScenario()
	pool := domain.NewPool()
	generator := domain.NewGenerator(pool)

	c := m.NewChange("1.0", m.Insert, s.postfix, s.statement, s.tree)
	stats := generator.Collect(singleScript(c, m.ActionInsert))

	ctx := m.Context{Action: "insert", Ancestors: "Statement/Block/MethodDeclaration"}
	require.Equal(t, []m.Context{ctx}, pool.Contexts())

	changes := pool.Changes(ctx)
	assert.Equal(t, []m.DedupKey{
		{Kind: m.Delete, NodeLabel: "Statement::++", LocationLabel: "Statement::s1"},
		{Kind: m.Delete, NodeLabel: "Statement::--", LocationLabel: "Statement::s1"},
		{Kind: m.Delete, NodeLabel: "PostfixExpression::++", LocationLabel: "Statement::s1"},
		{Kind: m.Insert, NodeLabel: "PostfixExpression::++", LocationLabel: "Statement::s1"},
	}, keysOf(changes))

	for _, change := range changes {
		assert.Equal(t, "1.0:foo:120", change.ID)
	}

	assert.Equal(t, domain.CollectStats{Changes: 1, Ops: 1, Added: 4, Observed: 1, Variants: 2, Reverses: 1}, stats)
	assert.Equal(t, "PostfixExpression::++", s.postfix.Label, "variants never touch the original node")
}

func TestGenerator_InfixInsertProducesFifteenVariants(t *testing.T) {
	s := newScenario()
	pool := domain.NewPool()
	generator := domain.NewGenerator(pool)

	c := m.NewChange("2.0", m.Insert, s.infix, s.field, s.tree)
	stats := generator.Collect(singleScript(c, m.ActionInsert))

	assert.Equal(t, 15, stats.Variants)
	assert.Equal(t, 17, pool.Len())

	ctx := pool.Contexts()[0]
	changes := pool.Changes(ctx)

	for i, token := range domain.InfixOperators() {
		assert.Equal(t, m.Delete, changes[i].Kind)
		assert.Equal(t, "FieldDeclaration::"+token, changes[i].Node.Label)
		assert.Equal(t, "FieldDeclaration", changes[i].Location.Label)
	}
}

func TestGenerator_ReverseOfDelete(t *testing.T) {
	s := newScenario()
	pool := domain.NewPool()
	generator := domain.NewGenerator(pool)

	c := m.NewChange("3.0", m.Delete, s.statement, m.Node{Label: "Block", Type: "Block"}, s.tree)
	stats := generator.Collect(singleScript(c, m.ActionDelete))

	assert.Equal(t, 1, stats.Reverses)
	assert.Equal(t, []m.DedupKey{
		{Kind: m.Insert, NodeLabel: "Statement::s1", LocationLabel: "Block"},
		{Kind: m.Delete, NodeLabel: "Statement::s1", LocationLabel: "Block"},
	}, keysOf(pool.Changes(pool.Contexts()[0])))
}

func TestGenerator_DeleteOfPostfixHasNoVariants(t *testing.T) {
	s := newScenario()
	pool := domain.NewPool()
	generator := domain.NewGenerator(pool)

	c := m.NewChange("4.0", m.Delete, s.postfix, s.statement, s.tree)
	stats := generator.Collect(singleScript(c, m.ActionDelete))

	assert.Equal(t, 0, stats.Variants)
	assert.Equal(t, 2, pool.Len())
}

func TestGenerator_DeleteOfLegacyPostfixTagHasVariants(t *testing.T) {
	s := newScenario()
	pool := domain.NewPool()
	generator := domain.NewGenerator(pool)

	legacy := s.postfix.WithLabel("PostExpression::++", "++")
	c := m.NewChange("4.1", m.Delete, legacy, s.statement, s.tree)
	stats := generator.Collect(singleScript(c, m.ActionDelete))

	assert.Equal(t, 2, stats.Variants)

	changes := pool.Changes(pool.Contexts()[0])
	require.Len(t, changes, 4)
	assert.Equal(t, m.DedupKey{Kind: m.Insert, NodeLabel: "Statement::++", LocationLabel: "Statement::s1"}, changes[0].DedupKey())
	assert.Equal(t, m.DedupKey{Kind: m.Insert, NodeLabel: "Statement::--", LocationLabel: "Statement::s1"}, changes[1].DedupKey())
}

func TestGenerator_ReplacePoolsUpdateVariants(t *testing.T) {
	s := newScenario()
	pool := domain.NewPool()
	generator := domain.NewGenerator(pool)

	node := m.Node{ID: s.infix.ID, Parent: s.infix.Parent, Label: "MethodInvocation::equals", Type: "MethodInvocation"}
	c := m.NewChange("5.0", m.Replace, node, s.infix, s.tree)
	stats := generator.Collect(singleScript(c, m.ActionDelete))

	assert.Equal(t, 15, stats.Variants)
	assert.Equal(t, 1, stats.Observed)
	assert.Equal(t, 0, stats.Reverses)

	changes := pool.Changes(pool.Contexts()[0])
	require.Len(t, changes, 16)

	for i, token := range domain.InfixOperators() {
		assert.Equal(t, m.Update, changes[i].Kind)
		assert.Equal(t, "MethodInvocation::equals", changes[i].Node.Label)
		assert.Equal(t, "InfixExpression::"+token, changes[i].Location.Label)
	}

	assert.Equal(t, m.Replace, changes[15].Kind)
	assert.Equal(t, "5.0:", changes[15].ID, "no method encloses the field initializer")
}

func TestGenerator_UpdateVariantMatchingOriginalIsDeduplicated(t *testing.T) {
	s := newScenario()
	pool := domain.NewPool()
	generator := domain.NewGenerator(pool)

	after := s.infix.WithLabel("InfixExpression::!=", "!=")
	c := m.NewChange("6.0", m.Update, after, s.infix, s.tree)
	stats := generator.Collect(singleScript(c, m.ActionUpdate))

	assert.Equal(t, 15, stats.Variants)
	assert.Equal(t, 0, stats.Observed, "the == variant already holds the original key")
	assert.Equal(t, 15, pool.Len())
}

func TestGenerator_UpdateOfPostfixLocationHasNoVariants(t *testing.T) {
	s := newScenario()
	pool := domain.NewPool()
	generator := domain.NewGenerator(pool)

	after := s.postfix.WithLabel("PostfixExpression::--", "--")
	c := m.NewChange("6.1", m.Update, after, s.postfix, s.tree)
	stats := generator.Collect(singleScript(c, m.ActionUpdate))

	assert.Equal(t, 0, stats.Variants)
	assert.Equal(t, 1, pool.Len())
}

func TestGenerator_NonOperatorPassThrough(t *testing.T) {
	s := newScenario()
	pool := domain.NewPool()
	generator := domain.NewGenerator(pool)

	name := m.Node{ID: s.statement.ID, Parent: s.statement.Parent, Label: "SimpleName::total", Type: "SimpleName"}
	c := m.NewChange("7.0", m.Insert, name, m.Node{Label: "Block", Type: "Block"}, s.tree)
	stats := generator.Collect(singleScript(c, m.ActionInsert))

	assert.Equal(t, 0, stats.Variants)
	assert.Equal(t, 1, stats.Reverses)
	assert.Equal(t, 1, stats.Observed)
	assert.Equal(t, 2, pool.Len())
}

func TestGenerator_DedupAcrossPairs(t *testing.T) {
	s := newScenario()
	pool := domain.NewPool()
	generator := domain.NewGenerator(pool)

	first := generator.Collect(singleScript(m.NewChange("1.0", m.Insert, s.postfix, s.statement, s.tree), m.ActionInsert))
	second := generator.Collect(singleScript(m.NewChange("2.0", m.Insert, s.postfix, s.statement, s.tree), m.ActionInsert))

	assert.Equal(t, 4, first.Added)
	assert.Equal(t, 0, second.Added)
	assert.Equal(t, 4, pool.Len())
}

func TestGenerator_MultipleOpsRewriteIDOnce(t *testing.T) {
	s := newScenario()
	pool := domain.NewPool(domain.WithDedupIndex(domain.NewContextDedup()))
	generator := domain.NewGenerator(pool)

	c := m.NewChange("8.0", m.Insert, s.postfix, s.statement, s.tree)

	var script m.Script
	script.Add(c,
		m.EditOp{Action: m.ActionInsert, Node: s.postfix, Tree: s.tree},
		m.EditOp{Action: m.ActionInsert, Node: s.statement, Tree: s.tree},
	)

	stats := generator.Collect(script)

	assert.Equal(t, 2, stats.Ops)
	assert.Equal(t, "8.0:foo:120", c.ID)
	assert.Len(t, pool.Contexts(), 2)
	assert.Equal(t, 8, pool.Len())
}

func TestGenerator_ListenerSeesEveryInsertion(t *testing.T) {
	s := newScenario()
	pool := domain.NewPool()

	origins := map[m.Origin]int{}
	generator := domain.NewGenerator(pool, domain.WithListener(domain.ListenerFunc(func(_ m.Context, _ m.Change, origin m.Origin) {
		origins[origin]++
	})))

	generator.Collect(singleScript(m.NewChange("1.0", m.Insert, s.postfix, s.statement, s.tree), m.ActionInsert))

	assert.Equal(t, map[m.Origin]int{m.OriginVariant: 2, m.OriginReverse: 1, m.OriginObserved: 1}, origins)
	assert.Same(t, pool, generator.Pool())
}

func TestGenerator_PooledChangesAreDetachedFromTree(t *testing.T) {
	s := newScenario()
	pool := domain.NewPool()

	var notified []m.Change

	generator := domain.NewGenerator(pool, domain.WithListener(domain.ListenerFunc(func(_ m.Context, change m.Change, _ m.Origin) {
		notified = append(notified, change)
	})))

	c := m.NewChange("1.0", m.Insert, s.infix, s.field, s.tree)
	generator.Collect(singleScript(c, m.ActionInsert))

	require.NotEmpty(t, notified)

	for _, pctx := range pool.Contexts() {
		for _, change := range pool.Changes(pctx) {
			assert.Nil(t, change.Tree, "pooled change %s keeps its tree", change.ID)
		}
	}

	for _, change := range notified {
		assert.Nil(t, change.Tree)
	}

	// The observed change still belongs to its script.
	assert.Same(t, s.tree, c.Tree)
	assert.Equal(t, "1.0:", c.ID)
}

func TestGenerator_UnknownKindPanics(t *testing.T) {
	s := newScenario()
	generator := domain.NewGenerator(domain.NewPool())

	c := m.NewChange("9.0", m.ChangeKind(42), s.postfix, s.statement, s.tree)

	assert.Panics(t, func() {
		generator.Collect(singleScript(c, m.ActionInsert))
	})
}

func TestUpdateMethodScope(t *testing.T) {
	s := newScenario()

	inside := m.NewChange("10.0", m.Insert, s.postfix, s.statement, s.tree)
	domain.UpdateMethodScope(inside)
	assert.Equal(t, "10.0:foo:120", inside.ID)

	domain.UpdateMethodScope(inside)
	assert.Equal(t, "10.0:foo:120", inside.ID)

	outside := m.NewChange("10.1", m.Insert, s.infix, s.field, s.tree)
	domain.UpdateMethodScope(outside)
	assert.Equal(t, "10.1:", outside.ID)

	detached := &m.Change{ID: "10.2", Kind: m.Insert, Node: s.postfix}
	domain.UpdateMethodScope(detached)
	assert.Equal(t, "10.2:", detached.ID)
	assert.Equal(t, "10.2", detached.BaseID)

	method, ok := domain.EnclosingMethod(m.NewChange("10.3", m.Delete, s.statement, s.method, s.tree))
	require.True(t, ok)
	assert.Equal(t, "foo", method.Name)
	assert.Equal(t, 120, method.Start)
}
