package domain

import (
	"fmt"
	"sync"

	m "fixpool.dev/pkg/fixpool/internal/model"
)

// Dedup policies accepted by NewDedupIndex.
const (
	DedupGlobal  = "global"
	DedupContext = "context"
)

// DedupIndex decides whether a change may enter the pool.
type DedupIndex interface {
	// Claim records key for ctx and reports whether it was new.
	Claim(ctx m.Context, key m.DedupKey) bool
	Reset()
}

// GlobalDedup stores each key once across all contexts.
type GlobalDedup struct {
	keys map[m.DedupKey]struct{}
}

// NewGlobalDedup creates an empty GlobalDedup.
func NewGlobalDedup() *GlobalDedup {
	return &GlobalDedup{keys: make(map[m.DedupKey]struct{})}
}

// Claim implements DedupIndex.
func (g *GlobalDedup) Claim(_ m.Context, key m.DedupKey) bool {
	if _, ok := g.keys[key]; ok {
		return false
	}

	g.keys[key] = struct{}{}

	return true
}

// Reset implements DedupIndex.
func (g *GlobalDedup) Reset() {
	g.keys = make(map[m.DedupKey]struct{})
}

type scopedKey struct {
	ctx m.Context
	key m.DedupKey
}

// ContextDedup stores each key once per context.
type ContextDedup struct {
	keys map[scopedKey]struct{}
}

// NewContextDedup creates an empty ContextDedup.
func NewContextDedup() *ContextDedup {
	return &ContextDedup{keys: make(map[scopedKey]struct{})}
}

// Claim implements DedupIndex.
func (c *ContextDedup) Claim(ctx m.Context, key m.DedupKey) bool {
	k := scopedKey{ctx: ctx, key: key}
	if _, ok := c.keys[k]; ok {
		return false
	}

	c.keys[k] = struct{}{}

	return true
}

// Reset implements DedupIndex.
func (c *ContextDedup) Reset() {
	c.keys = make(map[scopedKey]struct{})
}

// NewDedupIndex returns the index for a policy name. An empty name is global.
func NewDedupIndex(policy string) (DedupIndex, error) {
	switch policy {
	case "", DedupGlobal:
		return NewGlobalDedup(), nil
	case DedupContext:
		return NewContextDedup(), nil
	}

	return nil, fmt.Errorf("unknown dedup policy %q", policy)
}

// Pool maps contexts to the changes observed or synthesized for them.
// Add is the only write path and is safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	order   []m.Context
	entries map[m.Context][]m.Change
	dedup   DedupIndex
	depth   int
	size    int
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithDedupIndex replaces the default global dedup index.
func WithDedupIndex(index DedupIndex) PoolOption {
	return func(p *Pool) {
		p.dedup = index
	}
}

// WithContextDepth sets the ancestor depth of identifiers handed out by the pool.
func WithContextDepth(depth int) PoolOption {
	return func(p *Pool) {
		p.depth = depth
	}
}

// NewPool creates an empty pool.
func NewPool(options ...PoolOption) *Pool {
	p := &Pool{
		entries: make(map[m.Context][]m.Change),
		dedup:   NewGlobalDedup(),
		depth:   DefaultContextDepth,
	}

	for _, option := range options {
		option(p)
	}

	return p
}

// Add stores change under ctx unless its dedup key is already claimed.
// Stored changes are detached from their tree, which belongs to the pair
// being mined.
func (p *Pool) Add(ctx m.Context, change m.Change) bool {
	change.Tree = nil

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.dedup.Claim(ctx, change.DedupKey()) {
		return false
	}

	if _, ok := p.entries[ctx]; !ok {
		p.order = append(p.order, ctx)
	}

	p.entries[ctx] = append(p.entries[ctx], change)
	p.size++

	return true
}

// Identifier returns a fresh context identifier for one change's ops.
func (p *Pool) Identifier() ContextIdentifier {
	return NewContextIdentifier(p.depth)
}

// Clear empties the pool and its dedup index.
func (p *Pool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.order = nil
	p.entries = make(map[m.Context][]m.Change)
	p.dedup.Reset()
	p.size = 0
}

// Len returns the number of stored changes.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.size
}

// Contexts returns the contexts in first-insertion order.
func (p *Pool) Contexts() []m.Context {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]m.Context(nil), p.order...)
}

// Changes returns the changes stored under ctx.
func (p *Pool) Changes(ctx m.Context) []m.Change {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]m.Change(nil), p.entries[ctx]...)
}

// Snapshot copies the pool into its persisted form.
func (p *Pool) Snapshot() m.PoolSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snapshot := m.PoolSnapshot{Entries: make([]m.PoolEntry, 0, len(p.order))}
	for _, ctx := range p.order {
		snapshot.Entries = append(snapshot.Entries, m.PoolEntry{
			Context: ctx,
			Changes: append([]m.Change(nil), p.entries[ctx]...),
		})
	}

	return snapshot
}

// Restore adds every change of snapshot, rebuilding the dedup index. It
// returns how many changes were stored.
func (p *Pool) Restore(snapshot m.PoolSnapshot) int {
	restored := 0

	for _, entry := range snapshot.Entries {
		for _, change := range entry.Changes {
			if p.Add(entry.Context, change) {
				restored++
			}
		}
	}

	return restored
}
