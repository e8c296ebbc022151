// Package scraper fetches the upstream aggregator page and slices it into
// raw announcement blocks. It knows nothing about record semantics — that
// is the listing builder's job.
package scraper

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"concurso-hunter/internal/listing"
)

const DefaultURL = "https://www.pciconcursos.com.br/concursos/"

// The aggregator marks each announcement with this container class.
const blockSelector = "div.ca"

// Rotating browser user agents; the upstream drops obvious bot traffic.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) Gecko/20100101 Firefox/121.0",
}

// Fetcher retrieves raw listing blocks from the aggregator.
type Fetcher struct {
	url    string
	client *http.Client
}

func NewFetcher(url string, timeout time.Duration) *Fetcher {
	if url == "" {
		url = DefaultURL
	}
	return &Fetcher{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// FetchBlocks does one GET against the aggregator and returns every
// announcement block found. Non-2xx, network errors and timeouts surface
// as errors — the cache manager treats those as a failed refresh.
func (f *Fetcher) FetchBlocks(ctx context.Context) ([]listing.RawBlock, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("User-Agent", userAgents[rand.Intn(len(userAgents))])
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("upstream returned %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	return extractBlocks(doc), nil
}

// extractBlocks slices the document into raw blocks. When the expected
// class yields nothing (upstream markup drift) it falls back to every
// classed div and lets the builder's length cutoff discard the noise.
func extractBlocks(doc *goquery.Document) []listing.RawBlock {
	sel := doc.Find(blockSelector)
	if sel.Length() == 0 {
		log.Printf("⚠️ selector %q matched nothing, falling back to all classed divs", blockSelector)
		sel = doc.Find("div[class]")
	}

	blocks := make([]listing.RawBlock, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		link, _ := s.Find("a[href]").First().Attr("href")
		blocks = append(blocks, listing.RawBlock{
			Text: blockText(s),
			Link: link,
		})
	})
	return blocks
}

// blockText flattens a block to plain text with single spaces between
// fragments, so words split across tags do not glue together.
func blockText(s *goquery.Selection) string {
	var sb strings.Builder
	for _, node := range s.Nodes {
		appendText(node, &sb)
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

func appendText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendText(c, sb)
	}
}
