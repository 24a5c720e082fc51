package document

import "fmt"

// Kind classifies a document segment
type Kind int

const (
	// KindFrontmatter is the leading ---...--- metadata block
	KindFrontmatter Kind = iota
	// KindProse is regular translatable markdown text
	KindProse
	// KindCodeFence is a fenced code block, kept verbatim
	KindCodeFence
	// KindVerbatim is a standalone URL or file path line, kept verbatim
	KindVerbatim
)

// String returns the segment kind name for diagnostics
func (k Kind) String() string {
	switch k {
	case KindFrontmatter:
		return "frontmatter"
	case KindProse:
		return "prose"
	case KindCodeFence:
		return "code"
	case KindVerbatim:
		return "verbatim"
	default:
		return "unknown"
	}
}

// Segment is a contiguous span of the source document. Raw holds the exact
// bytes of the span including line endings, so that concatenating all
// segments in order reproduces the original document.
type Segment struct {
	Kind Kind
	Raw  string
	// Line is the 1-based line number where the segment starts
	Line int
}

// Translatable reports whether the segment text is sent to the translator
func (s Segment) Translatable() bool {
	return s.Kind == KindFrontmatter || s.Kind == KindProse
}

// FormatError reports malformed document structure, such as an unterminated
// code fence or frontmatter block. No output is written for such inputs.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format error at line %d: %s", e.Line, e.Reason)
}
