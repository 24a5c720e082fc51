package exclude

import (
	"path/filepath"
	"testing"

	"github.com/docbabel/translate/internal/testutil"
)

func TestParse(t *testing.T) {
	list := Parse("# generated files\ndrafts/*.qmd\n\n*.draft.qmd\n  internal-notes.qmd  \n")

	if list.Len() != 3 {
		t.Errorf("Expected 3 patterns, got %d", list.Len())
	}
}

func TestMatch(t *testing.T) {
	list := Parse("drafts/*.qmd\n*.draft.qmd\nREADME.qmd\n")

	tests := []struct {
		path     string
		expected bool
	}{
		{"drafts/wip.qmd", true},
		{"intro.draft.qmd", true},
		{"docs/intro.draft.qmd", true},
		{"README.qmd", true},
		{"docs/README.qmd", true},
		{"docs/intro.qmd", false},
		{"drafts/nested/deep.qmd", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := list.Match(tt.path); got != tt.expected {
				t.Errorf("Match(%s) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestMatch_WindowsPaths(t *testing.T) {
	list := Parse("drafts/*.qmd\n")

	path := filepath.Join("drafts", "wip.qmd")
	if !list.Match(path) {
		t.Errorf("Expected %s to match after slash normalization", path)
	}
}

func TestEmpty(t *testing.T) {
	list := Empty()
	if list.Match("anything.qmd") {
		t.Error("Empty list must not match anything")
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ".translate-ignore")
	testutil.CreateTestFile(t, path, []byte("*.draft.qmd\n"))

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !list.Match("intro.draft.qmd") {
		t.Error("Loaded pattern did not match")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/.translate-ignore"); err == nil {
		t.Error("Expected error for missing exclusion file")
	}
}
