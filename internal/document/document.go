package document

import (
	"fmt"
	"os"
	"strings"
)

// Lang identifies a document language
type Lang string

const (
	English Lang = "en"
	Chinese Lang = "zh"
)

// Name returns the human-readable language name used in prompts
func (l Lang) Name() string {
	switch l {
	case Chinese:
		return "Simplified Chinese"
	default:
		return "English"
	}
}

// Counterpart returns the opposite language
func (l Lang) Counterpart() Lang {
	if l == English {
		return Chinese
	}
	return English
}

// Document represents a loaded QMD file split into segments
type Document struct {
	Path     string
	Lang     Lang
	Content  string
	Segments []Segment
}

// DetectLang determines the document language from the filename convention:
// name.zh.qmd is Chinese, name.qmd is English
func DetectLang(path string) (Lang, error) {
	switch {
	case strings.HasSuffix(path, ".zh.qmd"):
		return Chinese, nil
	case strings.HasSuffix(path, ".qmd"):
		return English, nil
	default:
		return "", fmt.Errorf("not a QMD file: %s", path)
	}
}

// CounterpartPath derives the output filename for a translation target.
// name.qmd becomes name.zh.qmd and vice versa.
func CounterpartPath(path string, target Lang) (string, error) {
	source, err := DetectLang(path)
	if err != nil {
		return "", err
	}
	if source == target {
		return "", fmt.Errorf("%s is already in the target language %q", path, target)
	}
	if target == Chinese {
		return strings.TrimSuffix(path, ".qmd") + ".zh.qmd", nil
	}
	return strings.TrimSuffix(path, ".zh.qmd") + ".qmd", nil
}

// Load reads a QMD file and splits it into segments
func Load(path string) (*Document, error) {
	lang, err := DetectLang(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	segments, err := Segmentize(string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Document{
		Path:     path,
		Lang:     lang,
		Content:  string(content),
		Segments: segments,
	}, nil
}

// TranslateFunc produces replacement text for one translatable segment.
// Returning the raw text unchanged yields a byte-identical reassembly.
type TranslateFunc func(seg Segment) (string, error)

// Reassemble concatenates all segments in order, substituting the output of
// fn for translatable segments and keeping everything else verbatim
func Reassemble(segments []Segment, fn TranslateFunc) (string, error) {
	var b strings.Builder
	for _, seg := range segments {
		if !seg.Translatable() {
			b.WriteString(seg.Raw)
			continue
		}
		translated, err := fn(seg)
		if err != nil {
			return "", err
		}
		b.WriteString(translated)
	}
	return b.String(), nil
}
