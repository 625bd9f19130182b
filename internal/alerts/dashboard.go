package alerts

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/shanehull/screenwatch/internal/htmlutil"
	"github.com/shanehull/screenwatch/internal/scrape"
	"github.com/shanehull/screenwatch/internal/types"
)

const companyPathMarker = "/company/"

// ParseDashboard extracts candidate announcements: every list item whose
// first link points at a company page.
func ParseDashboard(body, pageURL string) ([]types.Announcement, error) {
	if scrape.LooksLoggedOut(body) {
		return nil, scrape.ErrAuthExpired(pageURL)
	}

	doc, err := htmlutil.Parse(body)
	if err != nil {
		return nil, types.NewSourceError(types.KindParse, pageURL, err)
	}

	base, _ := url.Parse(strings.TrimSpace(pageURL))

	var anns []types.Announcement
	doc.Find("li").Each(func(_ int, item *goquery.Selection) {
		link := item.Find("a[href]").First()
		href, ok := link.Attr("href")
		if !ok || !strings.Contains(href, companyPathMarker) {
			return
		}

		anns = append(anns, types.Announcement{
			Company: htmlutil.SelectionText(link),
			Link:    htmlutil.Resolve(base, href),
			Text:    htmlutil.SelectionText(item),
		})
	})

	return anns, nil
}
