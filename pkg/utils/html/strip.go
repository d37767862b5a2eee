// ABOUTME: HTML utilities for stripping tags and decoding entities
// ABOUTME: Handles the five XML entities, CDATA sections and tag-to-text flattening

package html

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// entityReplacer decodes in a single pass, so "&amp;lt;" becomes "&lt;" and not "<"
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

var (
	cdataPattern      = regexp.MustCompile(`(?s)<!\[CDATA\[(.*?)\]\]>`)
	entityOnlyPattern = regexp.MustCompile(`^(?:\s*&#?[0-9A-Za-z]+;)+\s*$`)
)

// DecodeEntities decodes &amp; &lt; &gt; &quot; and &#39;. Other references are left untouched.
func DecodeEntities(text string) string {
	return entityReplacer.Replace(text)
}

// DecodeText unwraps CDATA sections and decodes entities in the text around them.
// CDATA content is literal and is never entity-decoded.
func DecodeText(raw string) string {
	matches := cdataPattern.FindAllStringSubmatchIndex(raw, -1)
	if len(matches) == 0 {
		return DecodeEntities(raw)
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(DecodeEntities(raw[last:m[0]]))
		b.WriteString(raw[m[2]:m[3]])
		last = m[1]
	}
	b.WriteString(DecodeEntities(raw[last:]))
	return b.String()
}

// IsEntityOnly reports whether raw consists of nothing but entity references and whitespace
func IsEntityOnly(raw string) bool {
	return entityOnlyPattern.MatchString(raw)
}

// StripHTML returns the visible text of an HTML fragment with whitespace collapsed
func StripHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return collapseSpace(fragment)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return collapseSpace(fragment)
	}
	doc.Find("script, style").Remove()

	return collapseSpace(doc.Text())
}

func collapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
