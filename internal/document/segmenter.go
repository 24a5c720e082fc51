package document

import (
	"regexp"
	"strings"
)

var (
	fenceRe = regexp.MustCompile("^(\\s*)(`{3,}|~{3,})(.*)$")
	// A verbatim line is solely a URL or a file path.
	urlRe      = regexp.MustCompile(`^(?:https?|ftp)://\S+$`)
	pathBodyRe = regexp.MustCompile(`^[\w.@%+-]+(?:/[\w.@%+-]+)*/?$`)
	fileExtRe  = regexp.MustCompile(`\.[A-Za-z][A-Za-z0-9]{0,5}$`)
)

// Segmentize splits raw document text into an ordered segment list. The
// concatenation of the returned segments' Raw fields equals content exactly.
func Segmentize(content string) ([]Segment, error) {
	lines := splitKeepEnds(content)
	var segments []Segment

	i := 0

	// Frontmatter must open on the very first line
	if len(lines) > 0 && isFrontmatterDelimiter(lines[0]) {
		end := -1
		for j := 1; j < len(lines); j++ {
			if isFrontmatterDelimiter(lines[j]) {
				end = j
				break
			}
		}
		if end == -1 {
			return nil, &FormatError{Line: 1, Reason: "unterminated frontmatter block"}
		}
		segments = append(segments, Segment{
			Kind: KindFrontmatter,
			Raw:  strings.Join(lines[:end+1], ""),
			Line: 1,
		})
		i = end + 1
	}

	proseStart := -1
	flushProse := func(until int) {
		if proseStart == -1 {
			return
		}
		segments = append(segments, Segment{
			Kind: KindProse,
			Raw:  strings.Join(lines[proseStart:until], ""),
			Line: proseStart + 1,
		})
		proseStart = -1
	}

	for i < len(lines) {
		line := lines[i]

		if m := fenceRe.FindStringSubmatch(trimLineEnd(line)); m != nil {
			flushProse(i)
			marker := m[2]
			end := -1
			for j := i + 1; j < len(lines); j++ {
				if closesFence(trimLineEnd(lines[j]), marker) {
					end = j
					break
				}
			}
			if end == -1 {
				return nil, &FormatError{Line: i + 1, Reason: "unterminated code fence"}
			}
			segments = append(segments, Segment{
				Kind: KindCodeFence,
				Raw:  strings.Join(lines[i:end+1], ""),
				Line: i + 1,
			})
			i = end + 1
			continue
		}

		if isVerbatimLine(line) {
			flushProse(i)
			segments = append(segments, Segment{Kind: KindVerbatim, Raw: line, Line: i + 1})
			i++
			continue
		}

		if proseStart == -1 {
			proseStart = i
		}
		i++
	}
	flushProse(len(lines))

	return segments, nil
}

// splitKeepEnds splits text after each newline, keeping the newline attached
// to its line. The final element has no newline if the text does not end
// with one.
func splitKeepEnds(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// trimLineEnd strips the trailing newline (and optional carriage return)
func trimLineEnd(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

func isFrontmatterDelimiter(line string) bool {
	return trimLineEnd(line) == "---"
}

// closesFence reports whether line closes a fence opened with marker: a run
// of the same fence character at least as long, with nothing after it
func closesFence(line, marker string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	ch := marker[0]
	run := 0
	for run < len(trimmed) && trimmed[run] == ch {
		run++
	}
	return run >= len(marker) && strings.TrimSpace(trimmed[run:]) == ""
}

func isVerbatimLine(line string) bool {
	trimmed := strings.TrimSpace(trimLineEnd(line))
	if trimmed == "" {
		return false
	}
	return urlRe.MatchString(trimmed) || isPathLike(trimmed)
}

// isPathLike reports whether token is a file path and not an ordinary prose
// token that happens to contain a slash ("and/or", "10/20/2024"). A path is
// slash-separated path characters that either start with a path anchor
// (/, ./ or ../) or end in a component carrying a file extension.
func isPathLike(token string) bool {
	if !strings.Contains(token, "/") {
		return false
	}

	anchored := strings.HasPrefix(token, "/") || strings.HasPrefix(token, "./") || strings.HasPrefix(token, "../")

	body := token
	for strings.HasPrefix(body, "../") {
		body = body[3:]
	}
	body = strings.TrimPrefix(body, "./")
	body = strings.TrimPrefix(body, "/")
	if !pathBodyRe.MatchString(body) {
		return false
	}

	if anchored {
		return true
	}
	base := token[strings.LastIndex(token, "/")+1:]
	return fileExtRe.MatchString(base)
}
