// Package controller provides the output adapters reporting mining progress
// and displaying change pools.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "fixpool.dev/pkg/fixpool/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeMine StartMode = iota
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithMineMode sets the UI to batch mining mode.
func WithMineMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeMine
	}
}

// WithViewMode sets the UI to pool viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func resolveStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI reports batch progress and renders pools.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayBatchInfo(ctx context.Context, pairs int, threads int)
	DisplayPairStarted(ctx context.Context, index int, pair m.FilePair)
	DisplayPairSkipped(ctx context.Context, index int, pair m.FilePair, reason error)
	DisplayChangeAdded(ctx context.Context, pctx m.Context, change m.Change, origin m.Origin)
	DisplaySummary(ctx context.Context, summary m.MineSummary, pairs []m.PairStat)
	DisplayPool(ctx context.Context, snapshot m.PoolSnapshot) error
}

// NewUI returns a TUI for terminals and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
