package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	m "fixpool.dev/pkg/fixpool/internal/model"
)

const (
	recentChanges   = 6
	maxProgressSize = 60
	// Reserved lines around the pool list: header, summary, footer.
	poolReservedLines = 8
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the mining progress program. View mode starts nothing;
// DisplayPool runs its own program.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if resolveStartConfig(options).mode != ModeMine {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.program = tea.NewProgram(newMineModel(), tea.WithOutput(t.output))
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Error("tui stopped", "error", err)
		}
	}(t.program, t.done)

	return nil
}

// Close stops the running program.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program = nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait(ctx context.Context) {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

type batchInfoMsg struct{ pairs, threads int }

type pairStartedMsg struct {
	index int
	pair  m.FilePair
}

type pairSkippedMsg struct {
	pair   m.FilePair
	reason error
}

type changeAddedMsg struct {
	ctx    m.Context
	change m.Change
	origin m.Origin
}

type summaryMsg struct {
	summary m.MineSummary
	pairs   []m.PairStat
}

// DisplayBatchInfo implements UI.
func (t *TUI) DisplayBatchInfo(_ context.Context, pairs int, threads int) {
	t.send(batchInfoMsg{pairs: pairs, threads: threads})
}

// DisplayPairStarted implements UI.
func (t *TUI) DisplayPairStarted(_ context.Context, index int, pair m.FilePair) {
	t.send(pairStartedMsg{index: index, pair: pair})
}

// DisplayPairSkipped implements UI.
func (t *TUI) DisplayPairSkipped(_ context.Context, _ int, pair m.FilePair, reason error) {
	t.send(pairSkippedMsg{pair: pair, reason: reason})
}

// DisplayChangeAdded implements UI.
func (t *TUI) DisplayChangeAdded(_ context.Context, pctx m.Context, change m.Change, origin m.Origin) {
	t.send(changeAddedMsg{ctx: pctx, change: change, origin: origin})
}

// DisplaySummary implements UI.
func (t *TUI) DisplaySummary(_ context.Context, summary m.MineSummary, pairs []m.PairStat) {
	t.send(summaryMsg{summary: summary, pairs: pairs})
}

// mineModel is the Bubble Tea model for batch progress.
type mineModel struct {
	spinner  spinner.Model
	progress progress.Model
	total    int
	threads  int
	started  int
	skipped  int
	added    int
	current  m.FilePair
	recent   []string
	summary  *summaryMsg
	quitting bool
}

func newMineModel() mineModel {
	return mineModel{
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(maxProgressSize)),
	}
}

func (mm mineModel) Init() tea.Cmd {
	return mm.spinner.Tick
}

func (mm mineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			mm.quitting = true
			return mm, tea.Quit
		}

	case tea.WindowSizeMsg:
		mm.progress.Width = min(msg.Width-4, maxProgressSize)

	case spinner.TickMsg:
		var cmd tea.Cmd
		mm.spinner, cmd = mm.spinner.Update(msg)

		return mm, cmd

	case batchInfoMsg:
		mm.total = msg.pairs
		mm.threads = msg.threads

	case pairStartedMsg:
		mm.started = msg.index + 1
		mm.current = msg.pair

	case pairSkippedMsg:
		mm.skipped++
		mm.pushRecent(warnStyle.Render(fmt.Sprintf("skipped %s: %v", msg.pair.Before, msg.reason)))

	case changeAddedMsg:
		mm.added++
		mm.pushRecent(fmt.Sprintf("%s %s %s @ %s", msg.origin, msg.change.Kind, msg.change.Node.Label, msg.change.Location.Label))

	case summaryMsg:
		mm.summary = &msg
	}

	return mm, nil
}

func (mm *mineModel) pushRecent(line string) {
	mm.recent = append(mm.recent, line)
	if len(mm.recent) > recentChanges {
		mm.recent = mm.recent[len(mm.recent)-recentChanges:]
	}
}

func (mm mineModel) percent() float64 {
	if mm.total == 0 {
		return 0
	}

	return float64(mm.started) / float64(mm.total)
}

func (mm mineModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("fixpool - change pool mining"))
	b.WriteString("\n\n")

	if mm.summary != nil {
		mm.renderSummary(&b)
		return b.String()
	}

	fmt.Fprintf(&b, "  %s pair %d/%d (%d worker(s))\n", mm.spinner.View(), mm.started, mm.total, mm.threads)

	if mm.current.Before != "" {
		fmt.Fprintf(&b, "  %s\n", dimStyle.Render(mm.current.String()))
	}

	fmt.Fprintf(&b, "\n  %s\n\n", mm.progress.ViewAs(mm.percent()))
	fmt.Fprintf(&b, "  added %d | skipped %d\n\n", mm.added, mm.skipped)

	for _, line := range mm.recent {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	return b.String()
}

func (mm mineModel) renderSummary(b *strings.Builder) {
	s := mm.summary.summary

	b.WriteString(renderPairTable(mm.summary.pairs))
	fmt.Fprintf(b, "\n  %s\n", okStyle.Render(fmt.Sprintf("%d change(s) in %d context(s)", s.PoolSize, s.Contexts)))
	fmt.Fprintf(b, "  pairs: %d processed, %d skipped of %d\n", s.Processed, s.Skipped, s.Pairs)
	fmt.Fprintf(b, "  added: %d (%d reverse, %d variant)\n\n", s.Added, s.Reverses, s.Variants)
	b.WriteString(dimStyle.Render("  q: quit"))
	b.WriteString("\n")
}

// DisplayPool shows a snapshot, paging when it does not fit the terminal.
func (t *TUI) DisplayPool(ctx context.Context, snapshot m.PoolSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newPoolModel(snapshot)

	if f, ok := t.output.(*os.File); ok {
		if width, height, err := term.GetSize(f.Fd()); err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// poolModel pages through the lines of a pool snapshot.
type poolModel struct {
	lines    []string
	contexts int
	changes  int
	height   int
	width    int
	offset   int
	quitting bool
}

func newPoolModel(snapshot m.PoolSnapshot) poolModel {
	var lines []string

	for _, entry := range snapshot.Entries {
		lines = append(lines, titleStyle.Render(entry.Context.String()))
		for _, change := range entry.Changes {
			lines = append(lines, fmt.Sprintf("    %-7s %s @ %s", change.Kind, change.Node.Label, change.Location.Label))
		}
	}

	return poolModel{
		lines:    lines,
		contexts: len(snapshot.Entries),
		changes:  snapshot.Len(),
	}
}

func (pm poolModel) Init() tea.Cmd {
	return nil
}

func (pm poolModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.width = msg.Width
		pm.offset = min(pm.offset, pm.maxOffset())

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

func (pm poolModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		pm.quitting = true
		return pm, tea.Quit
	case "down", "j":
		pm.offset = min(pm.offset+1, pm.maxOffset())
	case "up", "k":
		pm.offset = max(pm.offset-1, 0)
	case "g", "home":
		pm.offset = 0
	case "G", "end":
		pm.offset = pm.maxOffset()
	case "d", "pgdown":
		pm.offset = min(pm.offset+pm.itemsPerPage(), pm.maxOffset())
	case "u", "pgup":
		pm.offset = max(pm.offset-pm.itemsPerPage(), 0)
	}

	return pm, nil
}

// itemsPerPage calculates how many lines fit on screen.
func (pm poolModel) itemsPerPage() int {
	if pm.height == 0 {
		return 10
	}

	return max(pm.height-poolReservedLines, 1)
}

func (pm poolModel) maxOffset() int {
	return max(len(pm.lines)-pm.itemsPerPage(), 0)
}

func (pm poolModel) needsPagination() bool {
	return pm.height > 0 && len(pm.lines) > pm.itemsPerPage()
}

func (pm poolModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("fixpool - change pool"))
	b.WriteString("\n\n")

	if len(pm.lines) == 0 {
		b.WriteString("  Pool is empty\n")
		return b.String()
	}

	visible := pm.lines
	if pm.needsPagination() {
		end := min(pm.offset+pm.itemsPerPage(), len(pm.lines))
		visible = pm.lines[pm.offset:end]
	}

	for _, line := range visible {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	fmt.Fprintf(&b, "\n  %d change(s) in %d context(s)\n", pm.changes, pm.contexts)

	if pm.needsPagination() {
		fmt.Fprintf(&b, "  Lines %d-%d of %d\n", pm.offset+1, min(pm.offset+pm.itemsPerPage(), len(pm.lines)), len(pm.lines))
		b.WriteString(dimStyle.Render("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit"))
		b.WriteString("\n")
	}

	return b.String()
}
