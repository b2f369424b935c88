package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "fixpool.dev/pkg/fixpool/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait is a no-op: SimpleUI prints and continues.
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayBatchInfo announces the batch size.
func (s *SimpleUI) DisplayBatchInfo(ctx context.Context, pairs int, threads int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Mining %d file pair(s) with %d worker(s)\n", pairs, threads)
}

// DisplayPairStarted announces a pair.
func (s *SimpleUI) DisplayPairStarted(ctx context.Context, index int, pair m.FilePair) {
	if ctx.Err() != nil {
		return
	}

	s.printf("[%d] buggy file: %s\n", index+1, pair.Before)
	s.printf("[%d] clean file: %s\n", index+1, pair.After)
}

// DisplayPairSkipped reports a pair that could not be mined.
func (s *SimpleUI) DisplayPairSkipped(ctx context.Context, index int, pair m.FilePair, reason error) {
	if ctx.Err() != nil {
		return
	}

	s.printf("[%d] skipped %s: %v\n", index+1, pair, reason)
}

// DisplayChangeAdded reports one pooled change.
func (s *SimpleUI) DisplayChangeAdded(ctx context.Context, pctx m.Context, change m.Change, origin m.Origin) {
	if ctx.Err() != nil {
		return
	}

	s.printf("  + %-8s %-7s %s @ %s [%s]\n", origin, change.Kind, change.Node.Label, change.Location.Label, pctx)
}

// DisplaySummary prints the per-pair table and the batch totals.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.MineSummary, pairs []m.PairStat) {
	if ctx.Err() != nil {
		return
	}

	s.printf("\n%s", renderPairTable(pairs))
	s.printf("Pairs: %d processed, %d skipped of %d\n", summary.Processed, summary.Skipped, summary.Pairs)
	s.printf("Changes: %d observed, %d added (%d reverse, %d variant)\n",
		summary.Changes, summary.Added, summary.Reverses, summary.Variants)
	s.printf("Pool: %d change(s) in %d context(s)\n", summary.PoolSize, summary.Contexts)
}

// DisplayPool prints every context of snapshot with its changes.
func (s *SimpleUI) DisplayPool(ctx context.Context, snapshot m.PoolSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(snapshot.Entries) == 0 {
		s.printf("Pool is empty\n")
		return nil
	}

	s.printf("%s", renderPoolTable(snapshot))

	return nil
}

func renderPairTable(pairs []m.PairStat) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Buggy file", "Observed", "Reverse", "Variants"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	total := 0

	for _, stat := range pairs {
		table.Append([]string{
			string(stat.Pair.Before),
			strconv.Itoa(stat.Observed),
			strconv.Itoa(stat.Reverses),
			strconv.Itoa(stat.Variants),
		})

		total += stat.Added()
	}

	table.SetFooter([]string{fmt.Sprintf("Total Pairs %d", len(pairs)), "", "", strconv.Itoa(total)})
	table.Render()

	return buf.String()
}

func renderPoolTable(snapshot m.PoolSnapshot) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Context", "Kind", "Node", "Location"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoMergeCells(true)

	for _, entry := range snapshot.Entries {
		for _, change := range entry.Changes {
			table.Append([]string{entry.Context.String(), change.Kind.String(), change.Node.Label, change.Location.Label})
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Contexts %d", len(snapshot.Entries)),
		"",
		"",
		fmt.Sprintf("Changes %d", snapshot.Len()),
	})
	table.Render()

	return buf.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
