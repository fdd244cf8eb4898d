// Package goquery implements churchdir.Extractor on top of goquery.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nkgc/churchdir"
	"golang.org/x/net/html"
)

// Ensure Extractor implements churchdir.Extractor at compile time.
var _ churchdir.Extractor = (*Extractor)(nil)

var (
	ordinalPrefix  = regexp.MustCompile(`^\d+\.`)
	postalCode     = regexp.MustCompile(`\d{5}`)
	postalAddress  = regexp.MustCompile(`\d{5}\s*(.*)`)
	blurbSelector  = "div." + churchdir.BlurbContentClass
	descSelector   = "div." + churchdir.BlurbDescriptionClass
	headerSelector = "h4." + churchdir.ModuleHeaderClass
)

// Extractor pulls contacts out of the blurb modules of a directory page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns the category marker (if any) followed by
// one contact entry per qualifying blurb, in document order.
func (e *Extractor) Extract(htmlText string, category string) ([]*churchdir.Entry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, churchdir.Errorf(churchdir.EINVALID, "failed to parse HTML: %v", err)
	}

	entries := make([]*churchdir.Entry, 0)
	if category != "" {
		entries = append(entries, churchdir.NewCategoryEntry(category))
	}

	doc.Find(blurbSelector).Each(func(_ int, blurb *goquery.Selection) {
		if c := extractContact(blurb); c != nil {
			entries = append(entries, churchdir.NewContactEntry(c))
		}
	})

	return entries, nil
}

// extractContact builds a contact from a single blurb, or returns nil when
// the blurb has no description, no church-name line, or is flagged with
// the error marker.
func extractContact(blurb *goquery.Selection) *churchdir.Contact {
	desc := blurb.Find(descSelector).First()
	if desc.Length() == 0 {
		return nil
	}

	church, ok := findText(desc, func(s string) bool {
		return strings.Contains(s, churchdir.ChurchMarker)
	})
	if !ok || strings.Contains(church, churchdir.ErrorMarker) {
		return nil
	}

	c := &churchdir.Contact{
		ChurchName: strings.TrimSpace(church),
	}

	if src, ok := blurb.Find("img").First().Attr("src"); ok {
		c.PhotoURL = src
	}

	if header := blurb.Find(headerSelector).First(); header.Length() > 0 {
		c.Name = normalizeName(header.Text())
	}

	c.PostalCode, c.Address = splitPostal(desc.Text())

	var phones []string
	desc.Find(`a[href*="tel"]`).Each(func(_ int, a *goquery.Selection) {
		phones = append(phones, strings.TrimSpace(a.Text()))
	})
	c.Phone = strings.Join(phones, ", ")

	if mail := desc.Find(`a[href*="mailto"]`).First(); mail.Length() > 0 {
		c.Email = strings.TrimSpace(mail.Text())
	}

	return c
}

// normalizeName strips a leading "<digits>." ordinal and surrounding
// whitespace, so "3. Hong" becomes "Hong".
func normalizeName(s string) string {
	s = strings.TrimSpace(s)
	return strings.TrimSpace(ordinalPrefix.ReplaceAllString(s, ""))
}

// splitPostal returns the first five-digit run of text and the rest of its
// line. Both are empty when text carries no postal code.
func splitPostal(text string) (code, address string) {
	code = postalCode.FindString(text)
	if code == "" {
		return "", ""
	}
	if m := postalAddress.FindStringSubmatch(text); m != nil {
		address = strings.TrimSpace(m[1])
	}
	return code, address
}

// findText returns the first text node under sel, in document order, whose
// content satisfies match.
func findText(sel *goquery.Selection, match func(string) bool) (string, bool) {
	for _, n := range sel.Nodes {
		if s, ok := findTextNode(n, match); ok {
			return s, true
		}
	}
	return "", false
}

func findTextNode(n *html.Node, match func(string) bool) (string, bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if match(c.Data) {
				return c.Data, true
			}
		case html.ElementNode:
			if s, ok := findTextNode(c, match); ok {
				return s, true
			}
		}
	}
	return "", false
}
