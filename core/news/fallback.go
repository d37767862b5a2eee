package news

import (
	"fmt"

	"donaldking-api/core/domain"
)

// fallbackTemplates are cycled by article position
var fallbackTemplates = []string{
	"Dear Diary, the headlines today announced \"%s\" — and once again everyone agrees I am winning bigger than ever. The fake news tried to spin it, but the people know the truth. A tremendous day for the throne.",
	"Another glorious chapter for the royal journal: \"%s\". They said it couldn't be done — I did it anyway, and beautifully. Historians will write about this one, believe me.",
	"Royal bulletin from the golden throne: \"%s\". My opponents are in total disarray — sad! — while my numbers have never looked better. Tomorrow we win again.",
}

// GenericFallbackEntry is used when there are no articles to write about
const GenericFallbackEntry = "Dear Diary, the news wires are strangely quiet today — clearly they are still recovering from my tremendous week. I spent the day being magnificent, as usual. More winning tomorrow, believe me."

// FallbackEntries builds templated entries, one per article up to domain.MaxArticles.
// The result depends only on the titles, so repeated calls give the same output.
func FallbackEntries(articles []domain.Article) []string {
	articles = domain.TruncateArticles(articles)
	if len(articles) == 0 {
		return []string{GenericFallbackEntry}
	}

	entries := make([]string, 0, len(articles))
	for i, a := range articles {
		tmpl := fallbackTemplates[i%len(fallbackTemplates)]
		entries = append(entries, fmt.Sprintf(tmpl, a.Title))
	}
	return entries
}
