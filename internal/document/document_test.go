package document

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectLang(t *testing.T) {
	tests := []struct {
		path     string
		expected Lang
		wantErr  bool
	}{
		{"intro.qmd", English, false},
		{"intro.zh.qmd", Chinese, false},
		{"docs/guide/setup.qmd", English, false},
		{"docs/guide/setup.zh.qmd", Chinese, false},
		{"notes.md", "", true},
		{"README", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			lang, err := DetectLang(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %s", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectLang failed: %v", err)
			}
			if lang != tt.expected {
				t.Errorf("DetectLang(%s) = %s, want %s", tt.path, lang, tt.expected)
			}
		})
	}
}

func TestCounterpartPath(t *testing.T) {
	tests := []struct {
		path     string
		target   Lang
		expected string
		wantErr  bool
	}{
		{"intro.qmd", Chinese, "intro.zh.qmd", false},
		{"intro.zh.qmd", English, "intro.qmd", false},
		{"docs/setup.qmd", Chinese, "docs/setup.zh.qmd", false},
		{"intro.qmd", English, "", true},
		{"intro.zh.qmd", Chinese, "", true},
		{"notes.md", Chinese, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path+"_"+string(tt.target), func(t *testing.T) {
			out, err := CounterpartPath(tt.path, tt.target)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %s -> %s", tt.path, tt.target)
				}
				return
			}
			if err != nil {
				t.Fatalf("CounterpartPath failed: %v", err)
			}
			if out != tt.expected {
				t.Errorf("CounterpartPath(%s, %s) = %s, want %s", tt.path, tt.target, out, tt.expected)
			}
		})
	}
}

func TestLangCounterpart(t *testing.T) {
	if English.Counterpart() != Chinese {
		t.Error("English counterpart should be Chinese")
	}
	if Chinese.Counterpart() != English {
		t.Error("Chinese counterpart should be English")
	}
}

func TestLoad_And_ReassembleIdentity(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "guide.qmd")
	if err := os.WriteFile(path, []byte(sampleDoc), 0644); err != nil {
		t.Fatalf("Failed to write test document: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if doc.Lang != English {
		t.Errorf("Expected English document, got %s", doc.Lang)
	}

	out, err := Reassemble(doc.Segments, func(seg Segment) (string, error) {
		return seg.Raw, nil
	})
	if err != nil {
		t.Fatalf("Reassemble failed: %v", err)
	}

	if out != sampleDoc {
		t.Errorf("Identity reassembly not byte-identical\nExpected: %q\nActual:   %q", sampleDoc, out)
	}
}

func TestLoad_MalformedDocument(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.qmd")
	if err := os.WriteFile(path, []byte("text\n```\nnever closed\n"), 0644); err != nil {
		t.Fatalf("Failed to write test document: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for unterminated fence")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/file.qmd"); err == nil {
		t.Error("Expected error for missing file")
	}
}
