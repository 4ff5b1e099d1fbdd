package jassdoc

import (
	"regexp"
	"strings"
)

// Field patterns applied to an isolated declaration.
var (
	nameRe    = regexp.MustCompile(`\bnative\s+(\w+)`)
	paramsRe  = regexp.MustCompile(`(?s)\btakes\b(.*?)\breturns\b`)
	returnsRe = regexp.MustCompile(`\breturns\s+(\w+)`)
)

const (
	commentOpen  = "/**"
	commentClose = "*/"
)

// ExtractAll joins texts with a newline, preserving their order, and
// extracts entries from the combined text.
func ExtractAll(texts []string) []Entry {
	return ExtractEntries(strings.Join(texts, "\n"))
}

// ExtractEntries scans text for doc-commented native declarations:
//
//	/** ... */
//	[constant] native Name takes params returns type
//
// A comment body ends at its first "*/". The declaration must start on the
// line right after the comment, and the parameter list ends at the first
// "returns" word. Text without any such block yields a nil slice.
func ExtractEntries(text string) []Entry {
	var entries []Entry
	pos := 0
	for {
		i := strings.Index(text[pos:], commentOpen)
		if i < 0 {
			return entries
		}
		start := pos + i

		j := strings.Index(text[start+len(commentOpen):], commentClose)
		if j < 0 {
			return entries
		}
		commentEnd := start + len(commentOpen) + j + len(commentClose)

		declStart, end, ok := scanDeclaration(text, commentEnd)
		if !ok {
			pos = commentEnd
			continue
		}

		entries = append(entries, parseBlock(text[start:end], declStart-start))
		pos = end
	}
}

// scanDeclaration checks that a declaration follows the comment ending at
// offset at. It returns where the declaration starts and where the block ends.
func scanDeclaration(text string, at int) (declStart, end int, ok bool) {
	sc := &scanner{s: text, i: at}

	sc.skipBlank()
	if !sc.newline() {
		return 0, 0, false
	}
	sc.skipBlank()
	declStart = sc.i

	if sc.word("constant") && sc.skipSpace() == 0 {
		return 0, 0, false
	}
	if !sc.word("native") || sc.skipSpace() == 0 {
		return 0, 0, false
	}
	if sc.ident() == "" || sc.skipSpace() == 0 {
		return 0, 0, false
	}
	if !sc.word("takes") {
		return 0, 0, false
	}

	// The parameter span must not run into the next doc comment.
	rest := text[sc.i:]
	r := indexWord(rest, "returns")
	if r < 0 || strings.Contains(rest[:r], commentOpen) {
		return 0, 0, false
	}
	sc.i += r + len("returns")

	if sc.skipSpace() == 0 || sc.ident() == "" {
		return 0, 0, false
	}
	return declStart, sc.i, true
}

// parseBlock builds an entry from a matched block. Fields that cannot be
// read from the declaration fall back to placeholders.
func parseBlock(block string, declOffset int) Entry {
	decl := block[declOffset:]

	name := submatch(nameRe, decl)
	if name == "" {
		name = UnknownName
	}
	params := strings.TrimSpace(submatch(paramsRe, decl))
	returns := submatch(returnsRe, decl)

	return Entry{
		Name:        name,
		Signature:   FormatSignature(name, params, returns),
		Description: block,
	}
}

// Summary returns the first prose line of an entry's doc comment,
// skipping blank lines and annotation lines.
func Summary(e Entry) string {
	comment := strings.TrimPrefix(e.Description, commentOpen)
	if i := strings.Index(comment, commentClose); i >= 0 {
		comment = comment[:i]
	}

	for _, line := range strings.Split(comment, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "*"))
		if line == "" || strings.HasPrefix(line, "@") {
			continue
		}
		return line
	}
	return ""
}

func submatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// indexWord returns the offset of the first whole-word occurrence of word in s, or -1.
func indexWord(s, word string) int {
	off := 0
	for {
		i := strings.Index(s[off:], word)
		if i < 0 {
			return -1
		}
		i += off
		end := i + len(word)
		if (i == 0 || !isIdentByte(s[i-1])) && (end == len(s) || !isIdentByte(s[end])) {
			return i
		}
		off = i + 1
	}
}

func isIdentByte(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// scanner is a byte cursor over declaration text.
type scanner struct {
	s string
	i int
}

// skipBlank skips horizontal whitespace.
func (sc *scanner) skipBlank() {
	for sc.i < len(sc.s) && (sc.s[sc.i] == ' ' || sc.s[sc.i] == '\t' || sc.s[sc.i] == '\r') {
		sc.i++
	}
}

// skipSpace skips any whitespace and reports how many bytes were skipped.
func (sc *scanner) skipSpace() int {
	start := sc.i
	for sc.i < len(sc.s) {
		switch sc.s[sc.i] {
		case ' ', '\t', '\r', '\n', '\f', '\v':
			sc.i++
		default:
			return sc.i - start
		}
	}
	return sc.i - start
}

func (sc *scanner) newline() bool {
	if sc.i < len(sc.s) && sc.s[sc.i] == '\n' {
		sc.i++
		return true
	}
	return false
}

// word consumes w if it appears at the cursor as a whole word.
func (sc *scanner) word(w string) bool {
	if !strings.HasPrefix(sc.s[sc.i:], w) {
		return false
	}
	end := sc.i + len(w)
	if end < len(sc.s) && isIdentByte(sc.s[end]) {
		return false
	}
	sc.i = end
	return true
}

func (sc *scanner) ident() string {
	start := sc.i
	for sc.i < len(sc.s) && isIdentByte(sc.s[sc.i]) {
		sc.i++
	}
	return sc.s[start:sc.i]
}
