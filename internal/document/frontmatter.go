package document

import (
	"regexp"
	"strings"
)

// FrontmatterWhitelist lists the frontmatter keys whose values are
// translated. Every other line of the block passes through byte-identical.
var FrontmatterWhitelist = []string{"title", "description"}

var frontmatterKeyRe = regexp.MustCompile(`^([A-Za-z][\w-]*):(\s*)(.*?)(\s*)$`)

// RewriteFrontmatter rewrites a frontmatter segment, applying fn to the
// values of whitelisted keys only. Delimiters, key names, spacing, quoting
// style and all non-whitelisted lines are preserved exactly. Block scalar
// values (| or >) and empty values are left untouched.
func RewriteFrontmatter(raw string, fn func(value string) (string, error)) (string, error) {
	lines := splitKeepEnds(raw)
	var b strings.Builder

	for _, line := range lines {
		content := trimLineEnd(line)
		ending := line[len(content):]

		m := frontmatterKeyRe.FindStringSubmatch(content)
		if m == nil || !whitelisted(m[1]) {
			b.WriteString(line)
			continue
		}
		key, gap, value, trail := m[1], m[2], m[3], m[4]
		if value == "" || value == "|" || value == ">" || strings.HasPrefix(value, "|") || strings.HasPrefix(value, ">") {
			b.WriteString(line)
			continue
		}

		quote := ""
		inner := value
		if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
			quote = string(value[0])
			inner = value[1 : len(value)-1]
		}

		translated, err := fn(inner)
		if err != nil {
			return "", err
		}

		b.WriteString(key)
		b.WriteString(":")
		b.WriteString(gap)
		b.WriteString(quote)
		b.WriteString(translated)
		b.WriteString(quote)
		b.WriteString(trail)
		b.WriteString(ending)
	}

	return b.String(), nil
}

func whitelisted(key string) bool {
	for _, k := range FrontmatterWhitelist {
		if key == k {
			return true
		}
	}
	return false
}
