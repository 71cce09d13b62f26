package assets

import (
	"bufio"
	"bytes"
	_ "embed"
	"strings"
)

// QuotesTxt contains the raw quote list, one quote per line.
//
//go:embed quotes.txt
var QuotesTxt []byte

// Quotes parses the embedded quote list.
func Quotes() []string { return ParseQuotes(QuotesTxt) }

// ParseQuotes splits data into trimmed quotes, skipping blanks and '#' comments.
func ParseQuotes(data []byte) []string {
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}
