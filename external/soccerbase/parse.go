package soccerbase

import (
	"bytes"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-careers/internal/domain/career"
)

var innerWhitespace = regexp.MustCompile(`\s+`)

// Career table dates appear in a handful of layouts across the site's history.
var careerDateLayouts = []string{
	"2 Jan, 2006",
	"02 Jan, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan, 2006",
	"Jan 2006",
	"2006-01-02",
	"02/01/2006",
	"02.01.2006",
}

var careerColumns = []string{"CLUB", "FROM", "TO", "FEE"}

func parseDocument(body []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, crerr.Wrap(err, "parse html")
	}
	return doc, nil
}

// parseSeasonIDs reads the season selector. The first option is a
// placeholder and is skipped.
func parseSeasonIDs(doc *goquery.Document) []string {
	options := doc.Find("#statsSeasonSelectTop option")
	out := make([]string, 0, options.Length())
	seen := make(map[string]struct{}, options.Length())
	options.Each(func(i int, opt *goquery.Selection) {
		if i == 0 {
			return
		}
		value, ok := opt.Attr("value")
		value = strings.TrimSpace(value)
		if !ok || value == "" {
			return
		}
		if _, dup := seen[value]; dup {
			return
		}
		seen[value] = struct{}{}
		out = append(out, value)
	})
	return out
}

// parseSquad reads the players listed on one season stats page.
func parseSquad(doc *goquery.Document, resolve func(href string) string) []career.PlayerIdentity {
	var out []career.PlayerIdentity
	doc.Find("table.center tbody tr").Each(func(_ int, row *goquery.Selection) {
		cell := row.Find(".first").First()
		if cell.Length() == 0 {
			return
		}

		href, ok := cell.Find("a").First().Attr("href")
		if !ok {
			return
		}
		id := playerIDFromHref(href)
		name := playerNameFromCell(cell.Text())
		if id == "" || name == "" {
			return
		}

		out = append(out, career.PlayerIdentity{
			ID:         id,
			Name:       name,
			ProfileURL: resolve(href),
		})
	})
	return out
}

// playerNameFromCell drops the trailing "(position)" annotation.
func playerNameFromCell(text string) string {
	name, _, _ := strings.Cut(text, "(")
	return cleanText(name)
}

func playerIDFromHref(href string) string {
	_, id, found := strings.Cut(href, "=")
	if !found {
		return ""
	}
	id, _, _ = strings.Cut(id, "&")
	return strings.TrimSpace(id)
}

// parseCareer finds the table headed CLUB / FROM / TO / FEE and returns its
// rows in page order. Summary rows are dropped and unparseable dates become
// nil without dropping the row.
func parseCareer(doc *goquery.Document) ([]career.RawStint, bool) {
	var (
		rows  []career.RawStint
		found bool
	)

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		index, ok := careerColumnIndex(table)
		if !ok {
			return true
		}
		found = true

		table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
			cells := tr.Children().Filter("td")
			if cells.Length() <= maxIndex(index) {
				return
			}
			cellText := func(col string) string {
				return cleanText(cells.Eq(index[col]).Text())
			}

			club := cellText("CLUB")
			if club == "" || isSummaryRow(club) {
				return
			}
			rows = append(rows, career.RawStint{
				Club:       club,
				DateJoined: parseCareerDate(cellText("FROM")),
				DateLeft:   parseCareerDate(cellText("TO")),
				Fee:        cellText("FEE"),
			})
		})
		return false
	})

	return rows, found
}

func careerColumnIndex(table *goquery.Selection) (map[string]int, bool) {
	headers := table.Find("thead tr").First().Children()
	if headers.Length() == 0 {
		headers = table.Find("tr").First().Children().Filter("th")
	}

	index := make(map[string]int, len(careerColumns))
	headers.Each(func(i int, th *goquery.Selection) {
		label := strings.ToUpper(cleanText(th.Text()))
		if _, taken := index[label]; !taken {
			index[label] = i
		}
	})
	for _, col := range careerColumns {
		if _, ok := index[col]; !ok {
			return nil, false
		}
	}
	return index, true
}

func maxIndex(index map[string]int) int {
	out := 0
	for _, col := range careerColumns {
		out = max(out, index[col])
	}
	return out
}

func isSummaryRow(club string) bool {
	lower := strings.ToLower(club)
	return strings.HasPrefix(lower, "total") || strings.HasPrefix(lower, "career total")
}

func parseCareerDate(text string) *time.Time {
	text = cleanText(text)
	if text == "" || text == "-" {
		return nil
	}
	for _, layout := range careerDateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(innerWhitespace.ReplaceAllString(s, " "))
}
