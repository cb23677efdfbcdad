package webpage

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// noiseSelector lists elements stripped before content extraction:
// chrome, boilerplate, and anything invisible to a reader.
const noiseSelector = "script, style, nav, header, footer, aside, iframe, noscript, form, object, embed"

var excessiveLinesRe = regexp.MustCompile(`\n{4,}`)

// ConvertResult contains the result of HTML to text conversion.
type ConvertResult struct {
	Title string
	Text  string
}

// Converter converts HTML pages to clean markdown text.
// It strips navigation noise, isolates the main content area,
// and renders the remainder as GitHub-flavored markdown.
type Converter struct {
	converter *md.Converter
}

// NewConverter creates a new HTML to text converter.
func NewConverter() *Converter {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())

	return &Converter{
		converter: converter,
	}
}

// Convert transforms HTML content into clean text.
// pageURL is used by the main-content extraction to resolve relative links;
// it may be nil.
func (c *Converter) Convert(htmlContent []byte, pageURL *url.URL) (*ConvertResult, error) {
	title := extractHTMLTitle(htmlContent)

	cleaned := stripNoise(htmlContent)
	mainHTML, articleTitle := extractMainContent(cleaned, pageURL)

	text, err := c.converter.ConvertString(mainHTML)
	if err != nil {
		return nil, err
	}
	text = cleanText(text)

	if title == "" {
		title = articleTitle
	}
	if title == "" {
		title = extractMarkdownTitle(text)
	}

	return &ConvertResult{
		Title: title,
		Text:  text,
	}, nil
}

// stripNoise removes non-content elements from the HTML.
func stripNoise(content []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return string(content)
	}

	doc.Find(noiseSelector).Remove()

	cleaned, err := doc.Html()
	if err != nil {
		return string(content)
	}
	return cleaned
}

// extractMainContent isolates the readable portion of the page.
// Falls back to the cleaned input if readability finds nothing.
func extractMainContent(cleanedHTML string, pageURL *url.URL) (mainHTML, title string) {
	article, err := readability.FromReader(strings.NewReader(cleanedHTML), pageURL)
	if err != nil || strings.TrimSpace(article.Content) == "" {
		return cleanedHTML, ""
	}
	return article.Content, article.Title
}

// extractHTMLTitle extracts the <title> text from HTML.
func extractHTMLTitle(content []byte) string {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return ""
	}

	var title string
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
			title = strings.TrimSpace(n.FirstChild.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if title != "" {
				return
			}
			extract(c)
		}
	}
	extract(doc)

	return title
}

// cleanText normalizes converted markdown.
func cleanText(content string) string {
	content = excessiveLinesRe.ReplaceAllString(content, "\n\n\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	content = strings.Join(lines, "\n")

	return strings.TrimSpace(content)
}

// extractMarkdownTitle extracts the first H1 heading from markdown.
func extractMarkdownTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return ""
}

// Truncate limits text to maxChars runes, preferring a paragraph boundary.
// Truncated content ends with a marker so downstream consumers know the
// document was cut.
func Truncate(content string, maxChars int) string {
	runes := []rune(content)
	if maxChars <= 0 || len(runes) <= maxChars {
		return content
	}

	truncated := string(runes[:maxChars])
	if lastPara := strings.LastIndex(truncated, "\n\n"); lastPara > maxChars/2 {
		truncated = truncated[:lastPara]
	}

	return truncated + "\n\n[Content truncated...]"
}
