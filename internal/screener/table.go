package screener

import (
	"errors"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/shanehull/screenwatch/internal/htmlutil"
	"github.com/shanehull/screenwatch/internal/scrape"
	"github.com/shanehull/screenwatch/internal/types"
)

// Row maps cleaned header labels to cell text. Link is the first hyperlink
// found in the row, made absolute.
type Row struct {
	Cells map[string]string
	Link  string
}

type Table struct {
	Headers []string
	Rows    []Row
}

var errNoTable = errors.New("no data table found")

// CleanHeader normalises a header label: NBSP becomes a space, repeated
// spaces collapse, ends are trimmed. "CMP  Rs." becomes "CMP Rs.".
func CleanHeader(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return htmlutil.CollapseSpace(s)
}

// ParseTable extracts the first table of a screen page.
func ParseTable(body, pageURL string) (*Table, error) {
	doc, err := htmlutil.Parse(body)
	if err != nil {
		return nil, types.NewSourceError(types.KindParse, pageURL, err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		if scrape.LooksLoggedOut(body) {
			return nil, scrape.ErrAuthExpired(pageURL)
		}
		return nil, types.NewSourceError(types.KindParse, pageURL, errNoTable)
	}

	base, _ := url.Parse(strings.TrimSpace(pageURL))

	t := &Table{}
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		headerCells := tr.Find("th")
		dataCells := tr.Find("td")

		if t.Headers == nil {
			cells := headerCells
			if cells.Length() == 0 {
				cells = dataCells
			}
			cells.Each(func(_ int, c *goquery.Selection) {
				t.Headers = append(t.Headers, CleanHeader(htmlutil.SelectionText(c)))
			})
			return
		}

		// Long screens repeat the header row every few rows.
		if headerCells.Length() > 0 || dataCells.Length() == 0 {
			return
		}

		row := Row{Cells: make(map[string]string, len(t.Headers))}
		dataCells.Each(func(i int, c *goquery.Selection) {
			if i >= len(t.Headers) {
				return
			}
			key := t.Headers[i]
			if _, dup := row.Cells[key]; dup {
				return
			}
			row.Cells[key] = htmlutil.SelectionText(c)
		})

		if href, ok := tr.Find("a[href]").First().Attr("href"); ok {
			row.Link = htmlutil.Resolve(base, href)
		}

		t.Rows = append(t.Rows, row)
	})

	if len(t.Headers) == 0 {
		return nil, types.NewSourceError(types.KindParse, pageURL, errNoTable)
	}

	return t, nil
}
