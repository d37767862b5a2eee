// ABOUTME: Article domain model represents one headline extracted from the news feed
// ABOUTME: Articles are request-scoped and never persisted

package domain

// MaxArticles is the number of feed items considered per request
const MaxArticles = 3

// Article is a single feed item reduced to what the diary needs
type Article struct {
	// Title is the decoded, trimmed headline. Never empty.
	Title string

	// Link points at the original story and may be empty
	Link string
}

// TruncateArticles keeps at most MaxArticles articles in feed order
func TruncateArticles(articles []Article) []Article {
	if len(articles) > MaxArticles {
		return articles[:MaxArticles]
	}
	return articles
}
