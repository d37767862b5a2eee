// ABOUTME: Article extraction from raw feed markup using tolerant pattern matching
// ABOUTME: Falls back to gofeed for documents without RSS item blocks, such as Atom feeds

package news

import (
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"

	"donaldking-api/core/domain"
	"donaldking-api/pkg/utils/html"
)

var (
	itemPattern  = regexp.MustCompile(`(?is)<item\b[^>]*>(.*?)</item\s*>`)
	titlePattern = regexp.MustCompile(`(?is)<title\b[^>]*>(.*?)</title\s*>`)
	linkPattern  = regexp.MustCompile(`(?is)<link\b[^>]*>(.*?)</link\s*>`)
)

// ExtractArticles returns up to domain.MaxArticles articles from raw feed markup, in feed order.
// The markup is not required to be well-formed XML. Items without a usable title are skipped.
func ExtractArticles(raw string) []domain.Article {
	blocks := itemPattern.FindAllStringSubmatch(raw, -1)
	if len(blocks) == 0 {
		return extractWithParser(raw)
	}

	articles := make([]domain.Article, 0, domain.MaxArticles)
	for _, block := range blocks {
		title, ok := tagText(block[1], titlePattern)
		if !ok {
			continue
		}
		link, _ := tagText(block[1], linkPattern)

		articles = append(articles, domain.Article{Title: title, Link: link})
		if len(articles) == domain.MaxArticles {
			break
		}
	}

	return articles
}

// tagText returns the decoded, trimmed text of the first match of pattern in block.
// ok is false when the tag is missing, empty, or holds only entity references.
func tagText(block string, pattern *regexp.Regexp) (string, bool) {
	m := pattern.FindStringSubmatch(block)
	if m == nil {
		return "", false
	}

	raw := strings.TrimSpace(m[1])
	if raw == "" || html.IsEntityOnly(raw) {
		return "", false
	}

	text := strings.TrimSpace(html.DecodeText(raw))
	return text, text != ""
}

// extractWithParser handles documents the item pattern does not recognise.
// Parse failures yield no articles.
func extractWithParser(raw string) []domain.Article {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	feed, err := gofeed.NewParser().ParseString(raw)
	if err != nil {
		return nil
	}

	articles := make([]domain.Article, 0, domain.MaxArticles)
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		title := html.StripHTML(item.Title)
		if title == "" {
			continue
		}

		articles = append(articles, domain.Article{
			Title: title,
			Link:  strings.TrimSpace(item.Link),
		})
		if len(articles) == domain.MaxArticles {
			break
		}
	}

	return articles
}
