package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	m "fixpool.dev/pkg/fixpool/internal/model"
)

func updateMine(t *testing.T, mm mineModel, msg tea.Msg) mineModel {
	t.Helper()

	next, _ := mm.Update(msg)

	updated, ok := next.(mineModel)
	if !ok {
		t.Fatalf("Update() returned %T, want mineModel", next)
	}

	return updated
}

func updatePool(t *testing.T, pm poolModel, msg tea.Msg) poolModel {
	t.Helper()

	next, _ := pm.Update(msg)

	updated, ok := next.(poolModel)
	if !ok {
		t.Fatalf("Update() returned %T, want poolModel", next)
	}

	return updated
}

func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func TestMineModel_Progress(t *testing.T) {
	mm := newMineModel()

	if mm.percent() != 0 {
		t.Errorf("percent() without batch = %v, want 0", mm.percent())
	}

	mm = updateMine(t, mm, batchInfoMsg{pairs: 4, threads: 2})
	mm = updateMine(t, mm, pairStartedMsg{index: 1, pair: m.FilePair{Before: "a_old.go", After: "a_new.go"}})

	if mm.total != 4 || mm.threads != 2 {
		t.Errorf("batch info not applied: total=%d threads=%d", mm.total, mm.threads)
	}

	if mm.started != 2 {
		t.Errorf("started = %d, want 2", mm.started)
	}

	if mm.percent() != 0.5 {
		t.Errorf("percent() = %v, want 0.5", mm.percent())
	}

	view := mm.View()
	if !strings.Contains(view, "fixpool - change pool mining") {
		t.Error("View should contain the title")
	}
	if !strings.Contains(view, "pair 2/4 (2 worker(s))") {
		t.Errorf("View should contain the pair counter, got: %s", view)
	}
	if !strings.Contains(view, "a_old.go -> a_new.go") {
		t.Errorf("View should contain the current pair, got: %s", view)
	}
}

func TestMineModel_ChangesAndSkips(t *testing.T) {
	mm := newMineModel()

	change := m.Change{
		Kind:     m.Delete,
		Node:     m.Node{Label: "PostfixExpression::--"},
		Location: m.Node{Label: "Block"},
	}

	mm = updateMine(t, mm, changeAddedMsg{change: change, origin: m.OriginVariant})
	mm = updateMine(t, mm, pairSkippedMsg{pair: m.FilePair{Before: "x_old.go"}, reason: errors.New("no clean side")})

	if mm.added != 1 || mm.skipped != 1 {
		t.Errorf("added=%d skipped=%d, want 1 and 1", mm.added, mm.skipped)
	}

	view := mm.View()
	if !strings.Contains(view, "variant DELETE PostfixExpression::-- @ Block") {
		t.Errorf("View should list the change, got: %s", view)
	}
	if !strings.Contains(view, "skipped x_old.go: no clean side") {
		t.Errorf("View should list the skipped pair, got: %s", view)
	}
	if !strings.Contains(view, "added 1 | skipped 1") {
		t.Errorf("View should contain the counters, got: %s", view)
	}
}

func TestMineModel_RecentIsCapped(t *testing.T) {
	mm := newMineModel()

	for i := range recentChanges + 3 {
		change := m.Change{Kind: m.Insert, Node: m.Node{Label: fmt.Sprintf("N%d", i)}, Location: m.Node{Label: "L"}}
		mm = updateMine(t, mm, changeAddedMsg{change: change, origin: m.OriginObserved})
	}

	if len(mm.recent) != recentChanges {
		t.Fatalf("recent has %d lines, want %d", len(mm.recent), recentChanges)
	}

	if !strings.Contains(mm.recent[0], "N3") {
		t.Errorf("oldest kept line = %q, want N3", mm.recent[0])
	}

	if !strings.Contains(mm.recent[recentChanges-1], fmt.Sprintf("N%d", recentChanges+2)) {
		t.Errorf("newest line = %q", mm.recent[recentChanges-1])
	}

	if mm.added != recentChanges+3 {
		t.Errorf("added = %d, want %d", mm.added, recentChanges+3)
	}
}

func TestMineModel_Summary(t *testing.T) {
	mm := newMineModel()

	mm = updateMine(t, mm, summaryMsg{
		summary: m.MineSummary{Pairs: 3, Processed: 2, Skipped: 1, Added: 5, Reverses: 1, Variants: 3, Contexts: 2, PoolSize: 5},
		pairs: []m.PairStat{
			{Pair: m.FilePair{Before: "calc_old.go", After: "calc_new.go"}, Observed: 1, Reverses: 1, Variants: 3},
		},
	})

	view := mm.View()
	for _, want := range []string{
		"calc_old.go",
		"5 change(s) in 2 context(s)",
		"pairs: 2 processed, 1 skipped of 3",
		"added: 5 (1 reverse, 3 variant)",
		"q: quit",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q, got: %s", want, view)
		}
	}
}

func TestMineModel_Quit(t *testing.T) {
	mm := newMineModel()

	next, cmd := mm.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}

	if !next.(mineModel).quitting {
		t.Error("model should be quitting")
	}
}

func TestPoolModel_Lines(t *testing.T) {
	pm := newPoolModel(testSnapshot())

	// One header line per context plus one line per change.
	if len(pm.lines) != 5 {
		t.Fatalf("lines = %d, want 5", len(pm.lines))
	}

	if pm.contexts != 2 || pm.changes != 3 {
		t.Errorf("contexts=%d changes=%d, want 2 and 3", pm.contexts, pm.changes)
	}

	view := pm.View()
	if !strings.Contains(view, "3 change(s) in 2 context(s)") {
		t.Errorf("View should contain the totals, got: %s", view)
	}
	if !strings.Contains(view, "UPDATE  InfixExpression::<= @ InfixExpression::<") {
		t.Errorf("View should list the update, got: %s", view)
	}
}

func TestPoolModel_Empty(t *testing.T) {
	pm := newPoolModel(m.PoolSnapshot{})

	if !strings.Contains(pm.View(), "Pool is empty") {
		t.Errorf("unexpected view: %s", pm.View())
	}
}

func TestPoolModel_ItemsPerPage(t *testing.T) {
	tests := []struct {
		name   string
		height int
		want   int
	}{
		{name: "unknown height", height: 0, want: 10},
		{name: "tall terminal", height: 30, want: 30 - poolReservedLines},
		{name: "tiny terminal", height: 3, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := poolModel{height: tt.height}
			if got := pm.itemsPerPage(); got != tt.want {
				t.Errorf("itemsPerPage() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPoolModel_Paging(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = fmt.Sprintf("line-%02d", i)
	}

	pm := poolModel{lines: lines, changes: 20, contexts: 1}

	if pm.needsPagination() {
		t.Fatal("no pagination without a known height")
	}

	pm = updatePool(t, pm, tea.WindowSizeMsg{Width: 80, Height: poolReservedLines + 5})

	if !pm.needsPagination() {
		t.Fatal("20 lines should not fit 5 rows")
	}

	if pm.maxOffset() != 15 {
		t.Fatalf("maxOffset() = %d, want 15", pm.maxOffset())
	}

	pm = updatePool(t, pm, keyMsg("j"))
	if pm.offset != 1 {
		t.Errorf("offset after j = %d, want 1", pm.offset)
	}

	pm = updatePool(t, pm, keyMsg("k"))
	pm = updatePool(t, pm, keyMsg("k"))
	if pm.offset != 0 {
		t.Errorf("offset should stop at 0, got %d", pm.offset)
	}

	pm = updatePool(t, pm, keyMsg("d"))
	if pm.offset != 5 {
		t.Errorf("offset after d = %d, want 5", pm.offset)
	}

	pm = updatePool(t, pm, keyMsg("G"))
	if pm.offset != 15 {
		t.Errorf("offset after G = %d, want 15", pm.offset)
	}

	pm = updatePool(t, pm, keyMsg("d"))
	if pm.offset != 15 {
		t.Errorf("offset should stop at the last page, got %d", pm.offset)
	}

	view := pm.View()
	if !strings.Contains(view, "line-15") || strings.Contains(view, "line-14") {
		t.Errorf("View should show the last page only, got: %s", view)
	}
	if !strings.Contains(view, "Lines 16-20 of 20") {
		t.Errorf("View should show the position, got: %s", view)
	}

	pm = updatePool(t, pm, keyMsg("u"))
	if pm.offset != 10 {
		t.Errorf("offset after u = %d, want 10", pm.offset)
	}

	pm = updatePool(t, pm, keyMsg("g"))
	if pm.offset != 0 {
		t.Errorf("offset after g = %d, want 0", pm.offset)
	}
}

func TestPoolModel_ResizeClampsOffset(t *testing.T) {
	lines := make([]string, 20)
	pm := poolModel{lines: lines, height: poolReservedLines + 5, offset: 15}

	pm = updatePool(t, pm, tea.WindowSizeMsg{Width: 80, Height: poolReservedLines + 15})

	if pm.offset != 5 {
		t.Errorf("offset = %d, want 5", pm.offset)
	}
}

func TestTUI_DisplayPool_Buffer(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.DisplayPool(context.Background(), testSnapshot()); err != nil {
		t.Fatalf("DisplayPool() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "fixpool - change pool") {
		t.Error("Output should contain header")
	}
	if !strings.Contains(output, "PostfixExpression::++ @ Block") {
		t.Errorf("Output should list the pooled changes, got: %s", output)
	}
}

func TestTUI_ViewModeStartsNoProgram(t *testing.T) {
	tui := NewTUI(&bytes.Buffer{})

	if err := tui.Start(context.Background(), WithViewMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// Without a program these are no-ops and must not block.
	tui.DisplayBatchInfo(context.Background(), 1, 1)
	tui.Wait(context.Background())
	tui.Close(context.Background())

	if tui.program != nil {
		t.Error("view mode should not start a program")
	}
}
