package emt

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// linkPattern matches the portal's naming convention for monthly trip archives.
// The month-name segment appears in both cases across months.
var linkPattern = regexp.MustCompile(`getattachment/.*?trips_\d{2}_\d{2}_[a-zA-Z]+-csv\.aspx`)

// ExtractLinks returns the set of trip archive URLs found in the supplied index
// page HTML, each prefixed with the portal origin. HTML without matching
// anchors yields an empty set. The embedded month and year numbers are not
// range checked here; that happens at resolution time.
func ExtractLinks(baseURL string, html string) map[string]struct{} {
	links := map[string]struct{}{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return links
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}

		match := linkPattern.FindString(href)
		if len(match) < 1 {
			return
		}

		links[baseURL+match] = struct{}{}
	})

	return links
}
