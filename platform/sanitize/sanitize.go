// Package sanitize cleans text received from outside the service before it
// is rendered back to shoppers.
package sanitize

import (
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
)

// StripHTML keeps only the text content of s. Markup is dropped along with the
// bodies of script and style elements. Entities are decoded by the tokenizer
// and the text is escaped again, so the result is safe to insert as HTML and
// encoded markup in the input stays encoded.
func StripHTML(s string) string {
	z := nethtml.NewTokenizer(strings.NewReader(s))

	var b strings.Builder
	skip := 0
	for {
		switch z.Next() {
		case nethtml.ErrorToken:
			return strings.TrimSpace(html.EscapeString(b.String()))
		case nethtml.StartTagToken:
			if isRawText(z) {
				skip++
			}
		case nethtml.EndTagToken:
			if isRawText(z) && skip > 0 {
				skip--
			}
		case nethtml.TextToken:
			if skip == 0 {
				b.WriteString(z.Token().Data)
			}
		}
	}
}

// Text strips markup and collapses runs of whitespace into one space.
func Text(s string) string {
	return strings.Join(strings.Fields(StripHTML(s)), " ")
}

func isRawText(z *nethtml.Tokenizer) bool {
	name, _ := z.TagName()
	switch string(name) {
	case "script", "style":
		return true
	}
	return false
}
