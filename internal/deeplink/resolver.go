// Package deeplink best-effort resolves a listing's source page into the
// link the user really wants: the edital PDF or the inscription site.
package deeplink

import (
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"concurso-hunter/internal/textutil"
)

// Kind selects which link the resolver hunts for.
type Kind string

const (
	KindEdital    Kind = "edital"
	KindInscricao Kind = "inscricao"
)

// Generic anchor-text fragments that point at an inscription flow, used
// when no banca name matches. Accent-stripped: anchors are normalized
// before comparison.
var inscricaoTerms = []string{
	"inscric", "inscreva", "ficha", "candidato", "eletronico", "formulario", "site",
}

// Hosts that are never the link we want.
var skipHosts = []string{"facebook", "twitter", "instagram", "whatsapp"}

type anchor struct {
	href     string
	lowHref  string
	normText string
}

// Resolver fetches source pages and scans their anchors.
type Resolver struct {
	client *http.Client
}

func NewResolver(timeout time.Duration) *Resolver {
	return &Resolver{client: &http.Client{Timeout: timeout}}
}

// Resolve returns the strongest kind-specific link found on sourceURL, or
// sourceURL itself when the page is unreachable or nothing matches. It
// never fails: the caller can always still navigate to the source page.
func (r *Resolver) Resolve(sourceURL string, kind Kind) string {
	if sourceURL == "" || sourceURL == "#" {
		return sourceURL
	}

	req, err := http.NewRequest(http.MethodGet, sourceURL, nil)
	if err != nil {
		return sourceURL
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := r.client.Do(req)
	if err != nil {
		return sourceURL
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return sourceURL
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return sourceURL
	}

	anchors := collectAnchors(doc)

	var best string
	switch kind {
	case KindInscricao:
		best = findInscricao(anchors)
	default:
		best = findEdital(anchors)
	}
	if best == "" {
		return sourceURL
	}
	return best
}

func collectAnchors(doc *goquery.Document) []anchor {
	var anchors []anchor
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if href == "" {
			return
		}
		anchors = append(anchors, anchor{
			href:     href,
			lowHref:  strings.ToLower(href),
			normText: textutil.Normalize(s.Text()),
		})
	})
	return anchors
}

// findEdital prefers a direct PDF; otherwise the first anchor whose text
// mentions the edital or its opening.
func findEdital(anchors []anchor) string {
	var candidate string
	for _, a := range anchors {
		if isSkipped(a.lowHref) {
			continue
		}
		if strings.HasSuffix(a.lowHref, ".pdf") {
			return a.href
		}
		if candidate == "" &&
			(strings.Contains(a.normText, "edital") || strings.Contains(a.normText, "abertura")) {
			candidate = a.href
		}
	}
	return candidate
}

// findInscricao takes the first anchor naming a known banca, else the
// first one with a generic inscription term. PDFs and links back to the
// aggregator are noise here.
func findInscricao(anchors []anchor) string {
	for _, a := range anchors {
		if !usableInscricao(a) {
			continue
		}
		if bancaRegex.MatchString(a.lowHref) || bancaRegex.MatchString(a.normText) {
			return a.href
		}
	}
	for _, a := range anchors {
		if !usableInscricao(a) {
			continue
		}
		for _, term := range inscricaoTerms {
			if strings.Contains(a.normText, term) {
				return a.href
			}
		}
	}
	return ""
}

func usableInscricao(a anchor) bool {
	return !isSkipped(a.lowHref) &&
		!strings.Contains(a.lowHref, "pciconcursos") &&
		!strings.Contains(a.lowHref, ".pdf")
}

func isSkipped(lowHref string) bool {
	for _, host := range skipHosts {
		if strings.Contains(lowHref, host) {
			return true
		}
	}
	return false
}
