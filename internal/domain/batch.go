package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/sync/errgroup"

	"fixpool.dev/pkg/fixpool/internal/adapter"
	m "fixpool.dev/pkg/fixpool/internal/model"
)

// ErrMissingSide marks a pair whose buggy or fixed file is absent.
var ErrMissingSide = errors.New("pair is missing a side")

// Prepared is the script of one pair, or the reason it has to be skipped.
type Prepared struct {
	Index  int
	Pair   m.FilePair
	Script m.Script
	Err    error
}

// BatchMiner runs the parse, diff and convert stages for file pairs.
type BatchMiner struct {
	fs        adapter.SourceFSAdapter
	parser    adapter.TreeParser
	differ    adapter.Differ
	converter adapter.Converter
}

// NewBatchMiner wires the collaborators producing scripts.
func NewBatchMiner(
	fs adapter.SourceFSAdapter,
	parser adapter.TreeParser,
	differ adapter.Differ,
	converter adapter.Converter,
) *BatchMiner {
	return &BatchMiner{
		fs:        fs,
		parser:    parser,
		differ:    differ,
		converter: converter,
	}
}

// Prepare turns one pair into a script. The pair index seeds change ids.
func (b *BatchMiner) Prepare(ctx context.Context, index int, pair m.FilePair) (m.Script, error) {
	if !pair.Complete() {
		return m.Script{}, ErrMissingSide
	}

	before, err := b.parse(ctx, pair.Before)
	if err != nil {
		return m.Script{}, err
	}

	after, err := b.parse(ctx, pair.After)
	if err != nil {
		return m.Script{}, err
	}

	edits, err := b.differ.Diff(ctx, before, after)
	if err != nil {
		return m.Script{}, fmt.Errorf("diff %s: %w", pair, err)
	}

	edits = b.differ.Combine(b.differ.Filter(edits))

	script, err := b.converter.ToScript(strconv.Itoa(index), edits)
	if err != nil {
		return m.Script{}, fmt.Errorf("convert %s: %w", pair, err)
	}

	slog.Debug("prepared pair", "index", index, "pair", pair.String(), "ops", len(edits.Ops), "changes", script.Len())

	return script, nil
}

func (b *BatchMiner) parse(ctx context.Context, path m.Path) (*m.Tree, error) {
	src, err := b.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	tree, err := b.parser.Parse(ctx, path, src)
	if err != nil {
		return nil, err
	}

	if tree == nil {
		return nil, fmt.Errorf("no tree for %s", path)
	}

	return tree, nil
}

// Stream prepares pairs with up to threads workers and hands each result to
// consume in pair order. At most threads pairs are prepared ahead of the
// consumer, so with one thread a pair is fully mined before the next one is
// read. Preparation failures are recorded per pair and never stop the
// stream; an error from consume or ctx does.
func (b *BatchMiner) Stream(ctx context.Context, pairs []m.FilePair, threads int, consume func(Prepared) error) error {
	if threads <= 0 {
		threads = 1
	}

	// One buffered slot per pair lets workers finish out of order while the
	// consumer reads in index order.
	slots := make([]chan Prepared, len(pairs))
	for i := range slots {
		slots[i] = make(chan Prepared, 1)
	}

	window := make(chan struct{}, threads)
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		for i, pair := range pairs {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			case window <- struct{}{}:
			}

			group.Go(func() error {
				script, err := b.Prepare(groupCtx, i, pair)
				slots[i] <- Prepared{Index: i, Pair: pair, Script: script, Err: err}

				return nil
			})
		}

		return nil
	})

	group.Go(func() error {
		for i := range slots {
			var item Prepared

			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			case item = <-slots[i]:
			}

			err := consume(item)
			<-window

			if err != nil {
				return err
			}
		}

		return nil
	})

	return group.Wait()
}
