package domain

import (
	"context"
	"fmt"
	"log/slog"

	"fixpool.dev/pkg/fixpool/internal/adapter"
	"fixpool.dev/pkg/fixpool/internal/controller"
	m "fixpool.dev/pkg/fixpool/internal/model"
	"fixpool.dev/pkg/fixpool/pkg"
)

// MineArgs contains the arguments for mining a batch of file pairs.
type MineArgs struct {
	// Pairs are mined as given. When empty, pairs are discovered from
	// Roots, or from Before and After.
	Pairs        []m.FilePair
	Roots        []m.Path
	Before       m.Path
	After        m.Path
	Extensions   []string
	Output       m.Path
	Append       bool
	Threads      int
	ContextDepth int
	Dedup        string
	JournalDir   string
}

// ViewArgs contains the arguments for displaying a stored pool.
type ViewArgs struct {
	Pool m.Path
}

// Workflow defines the batch mining and pool viewing operations.
type Workflow interface {
	Mine(ctx context.Context, args MineArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.PoolStore
	controller.UI
	miner *BatchMiner
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	parser adapter.TreeParser,
	differ adapter.Differ,
	converter adapter.Converter,
	store adapter.PoolStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		PoolStore:       store,
		UI:              ui,
		miner:           NewBatchMiner(fsAdapter, parser, differ, converter),
	}
}

func (w *workflow) Mine(ctx context.Context, args MineArgs) error {
	pairs, err := w.resolvePairs(ctx, args)
	if err != nil {
		return fmt.Errorf("resolve pairs: %w", err)
	}

	pool, err := w.preparePool(ctx, args)
	if err != nil {
		return err
	}

	journal, err := pkg.NewSpill[m.PoolEvent](args.JournalDir)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}

	defer func() {
		if err := journal.Close(); err != nil {
			slog.Warn("failed to close journal", "path", journal.Path(), "error", err)
		}
	}()

	if err := w.Start(ctx, controller.WithMineMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	defer w.Close(ctx)

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	w.DisplayBatchInfo(ctx, len(pairs), threads)
	slog.Info("mining batch", "pairs", len(pairs), "threads", threads, "dedup", args.Dedup)

	summary := m.MineSummary{Pairs: len(pairs)}

	var journalErr error

	err = w.miner.Stream(ctx, pairs, threads, func(item Prepared) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if item.Err != nil {
			slog.Warn("skipping pair", "index", item.Index, "pair", item.Pair.String(), "error", item.Err)
			w.DisplayPairSkipped(ctx, item.Index, item.Pair, item.Err)

			summary.Skipped++

			return nil
		}

		w.DisplayPairStarted(ctx, item.Index, item.Pair)

		generator := NewGenerator(pool, WithListener(ListenerFunc(func(pctx m.Context, change m.Change, origin m.Origin) {
			w.DisplayChangeAdded(ctx, pctx, change, origin)

			if journalErr != nil {
				return
			}

			journalErr = journal.Append(m.PoolEvent{
				Pair:     item.Pair,
				Context:  pctx,
				Key:      change.DedupKey(),
				ChangeID: change.ID,
				Origin:   origin,
			})
		})))

		stats := generator.Collect(item.Script)

		summary.Processed++
		summary.Changes += stats.Changes
		summary.Added += stats.Added
		summary.Variants += stats.Variants
		summary.Reverses += stats.Reverses

		return nil
	})
	if err != nil {
		return err
	}

	if journalErr != nil {
		return fmt.Errorf("journal pool events: %w", journalErr)
	}

	summary.Contexts = len(pool.Contexts())
	summary.PoolSize = pool.Len()

	stats, err := pairStats(journal)
	if err != nil {
		return fmt.Errorf("read journal: %w", err)
	}

	if err := w.Save(ctx, args.Output, pool.Snapshot()); err != nil {
		return fmt.Errorf("save pool: %w", err)
	}

	slog.Info("batch mined",
		"processed", summary.Processed,
		"skipped", summary.Skipped,
		"added", summary.Added,
		"contexts", summary.Contexts,
		"pool", summary.PoolSize,
		"output", string(args.Output),
	)

	w.DisplaySummary(ctx, summary, stats)
	w.Wait(ctx)

	return nil
}

func (w *workflow) resolvePairs(ctx context.Context, args MineArgs) ([]m.FilePair, error) {
	if len(args.Pairs) > 0 {
		return args.Pairs, nil
	}

	if args.Before != "" || args.After != "" {
		if args.Before == "" || args.After == "" {
			return nil, fmt.Errorf("both before and after directories are required")
		}

		return w.DirPairs(ctx, args.Before, args.After, args.Extensions)
	}

	return w.FindPairs(ctx, args.Roots, args.Extensions)
}

func (w *workflow) preparePool(ctx context.Context, args MineArgs) (*Pool, error) {
	index, err := NewDedupIndex(args.Dedup)
	if err != nil {
		return nil, err
	}

	options := []PoolOption{WithDedupIndex(index)}
	if args.ContextDepth > 0 {
		options = append(options, WithContextDepth(args.ContextDepth))
	}

	pool := NewPool(options...)

	if !args.Append {
		return pool, nil
	}

	snapshot, err := w.Load(ctx, args.Output)
	if err != nil {
		return nil, fmt.Errorf("load pool: %w", err)
	}

	restored := pool.Restore(snapshot)
	slog.Info("restored pool", "path", string(args.Output), "changes", restored)

	return pool, nil
}

func pairStats(journal pkg.Spill[m.PoolEvent]) ([]m.PairStat, error) {
	var (
		stats []m.PairStat
		index = make(map[m.FilePair]int)
	)

	err := journal.Range(func(_ uint64, event m.PoolEvent) error {
		i, ok := index[event.Pair]
		if !ok {
			i = len(stats)
			index[event.Pair] = i
			stats = append(stats, m.PairStat{Pair: event.Pair})
		}

		switch event.Origin {
		case m.OriginObserved:
			stats[i].Observed++
		case m.OriginReverse:
			stats[i].Reverses++
		case m.OriginVariant:
			stats[i].Variants++
		}

		return nil
	})

	return stats, err
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	snapshot, err := w.Load(ctx, args.Pool)
	if err != nil {
		return fmt.Errorf("load pool: %w", err)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	defer w.Close(ctx)

	if err := w.DisplayPool(ctx, snapshot); err != nil {
		return fmt.Errorf("display pool: %w", err)
	}

	return nil
}
