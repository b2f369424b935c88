package adapter

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	m "fixpool.dev/pkg/fixpool/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "Calc_old.go"), "package calc\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.go"), "package nested\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.go")} {
			if containsPath(visited, forbidden) {
				t.Fatalf("Walk() unexpectedly visited %s when recursive is false", forbidden)
			}
		}

		if !containsPath(visited, filepath.Join(root, "Calc_old.go")) {
			t.Fatalf("Walk() did not visit top-level file")
		}
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "Calc_old.go"), "package calc\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.go")
		writeTestFile(t, child, "package nested\n")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if !containsPath(visited, child) {
			t.Fatalf("Walk() did not visit nested file when recursive")
		}
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "Calc_old.go")
	content := "package calc\n" + "func Next(x int) int { return x + 1 }\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := adapter.ReadFile(ctx, m.Path(path)); err == nil {
		t.Fatalf("ReadFile() with cancelled context returned no error")
	}
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.go")
	writeTestFile(t, path, "package main\n")

	info, err := adapter.FileInfo(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	dirInfo, err := adapter.FileInfo(context.Background(), m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !dirInfo.IsDir() {
		t.Fatalf("FileInfo() reported directory as file")
	}
}

func TestLocalSourceFSAdapter_FindPairs(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "Calc_old.go"), "package calc\n")
	writeTestFile(t, filepath.Join(root, "Calc_new.go"), "package calc\n")
	writeTestFile(t, filepath.Join(root, "Lonely_new.go"), "package calc\n")
	writeTestFile(t, filepath.Join(root, "notes.txt"), "ignored\n")
	writeTestFile(t, filepath.Join(root, "helper.go"), "package calc\n")

	nested := filepath.Join(root, "nested")
	mustMkdir(t, nested)
	writeTestFile(t, filepath.Join(nested, "Deep_old.go"), "package nested\n")
	writeTestFile(t, filepath.Join(nested, "Deep_new.go"), "package nested\n")

	t.Run("non recursive", func(t *testing.T) {
		pairs, err := adapter.FindPairs(context.Background(), []m.Path{m.Path(root)}, []string{".go"})
		if err != nil {
			t.Fatalf("FindPairs() error = %v", err)
		}

		want := []m.FilePair{
			{Before: m.Path(filepath.Join(root, "Calc_old.go")), After: m.Path(filepath.Join(root, "Calc_new.go"))},
			{After: m.Path(filepath.Join(root, "Lonely_new.go"))},
		}

		if !reflect.DeepEqual(pairs, want) {
			t.Fatalf("FindPairs() = %v, want %v", pairs, want)
		}
	})

	t.Run("recursive pattern", func(t *testing.T) {
		pairs, err := adapter.FindPairs(context.Background(), []m.Path{m.Path(root + "/...")}, []string{".go"})
		if err != nil {
			t.Fatalf("FindPairs() error = %v", err)
		}

		if len(pairs) != 3 {
			t.Fatalf("FindPairs() returned %d pairs, want 3: %v", len(pairs), pairs)
		}

		deep := m.FilePair{
			Before: m.Path(filepath.Join(nested, "Deep_old.go")),
			After:  m.Path(filepath.Join(nested, "Deep_new.go")),
		}
		if !containsPair(pairs, deep) {
			t.Fatalf("FindPairs() missing nested pair %v", deep)
		}
	})

	t.Run("missing root", func(t *testing.T) {
		if _, err := adapter.FindPairs(context.Background(), []m.Path{m.Path(filepath.Join(root, "absent"))}, nil); err == nil {
			t.Fatalf("FindPairs() on missing root returned no error")
		}
	})
}

func TestLocalSourceFSAdapter_DirPairs(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	before := t.TempDir()
	after := t.TempDir()

	mustMkdir(t, filepath.Join(before, "pkg"))
	mustMkdir(t, filepath.Join(after, "pkg"))
	writeTestFile(t, filepath.Join(before, "pkg", "calc.go"), "package pkg\n")
	writeTestFile(t, filepath.Join(after, "pkg", "calc.go"), "package pkg\n")
	writeTestFile(t, filepath.Join(before, "removed.go"), "package main\n")
	writeTestFile(t, filepath.Join(after, "README.md"), "docs\n")

	pairs, err := adapter.DirPairs(context.Background(), m.Path(before), m.Path(after), []string{".go"})
	if err != nil {
		t.Fatalf("DirPairs() error = %v", err)
	}

	want := []m.FilePair{
		{Before: m.Path(filepath.Join(before, "pkg", "calc.go")), After: m.Path(filepath.Join(after, "pkg", "calc.go"))},
		{Before: m.Path(filepath.Join(before, "removed.go"))},
	}

	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("DirPairs() = %v, want %v", pairs, want)
	}
}

func TestPairKey(t *testing.T) {
	tests := []struct {
		path     string
		wantKey  string
		wantSide string
		wantOK   bool
	}{
		{"a/Calc_old.go", "a/Calc.go", BeforeSuffix, true},
		{"a/Calc_new.java", "a/Calc.java", AfterSuffix, true},
		{"a/Calc.go", "", "", false},
		{"a/old_Calc.go", "", "", false},
	}

	for _, tt := range tests {
		key, side, ok := pairKey(tt.path)
		if key != tt.wantKey || side != tt.wantSide || ok != tt.wantOK {
			t.Fatalf("pairKey(%q) = (%q, %q, %v), want (%q, %q, %v)", tt.path, key, side, ok, tt.wantKey, tt.wantSide, tt.wantOK)
		}
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func containsPair(pairs []m.FilePair, target m.FilePair) bool {
	for _, p := range pairs {
		if p == target {
			return true
		}
	}

	return false
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
