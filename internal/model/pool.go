package model

// PoolEntry is one context bucket of a pool.
type PoolEntry struct {
	Context Context  `yaml:"context"`
	Changes []Change `yaml:"changes"`
}

// PoolSnapshot is the persisted form of a change pool, ordered by first
// insertion of each context.
type PoolSnapshot struct {
	Entries []PoolEntry `yaml:"entries"`
}

// Len returns the number of stored changes.
func (s PoolSnapshot) Len() int {
	total := 0
	for _, entry := range s.Entries {
		total += len(entry.Changes)
	}

	return total
}

// Origin tells how a pooled change was produced.
type Origin string

const (
	// OriginObserved is a change seen in a file pair.
	OriginObserved Origin = "observed"
	// OriginReverse is the natural reverse of an observed change.
	OriginReverse Origin = "reverse"
	// OriginVariant is an operator mutation variant.
	OriginVariant Origin = "variant"
)

// PoolEvent records one insertion into the pool.
type PoolEvent struct {
	Pair     FilePair
	Context  Context
	Key      DedupKey
	ChangeID string
	Origin   Origin
}

// MineSummary aggregates the outcome of a batch.
type MineSummary struct {
	Pairs     int
	Processed int
	Skipped   int
	Changes   int
	Added     int
	Variants  int
	Reverses  int
	Contexts  int
	PoolSize  int
}

// PairStat is the per-pair outcome shown in batch summaries.
type PairStat struct {
	Pair     FilePair
	Observed int
	Reverses int
	Variants int
}

// Added returns the number of changes the pair contributed.
func (p PairStat) Added() int {
	return p.Observed + p.Reverses + p.Variants
}
