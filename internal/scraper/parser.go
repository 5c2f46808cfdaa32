package scraper

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"lottery-history/internal/models"
)

// Date labels look like "Friday May 30th 2025"; the ordinal suffix has to go
// before the label parses as a date.
var ordinalSuffix = regexp.MustCompile(`(\d+)(st|nd|rd|th)`)

// ParseDrawRows extracts draw records from the HTML of a "Past Winning
// Numbers" page. A row qualifies when it carries a date cell, a numbers cell
// and a jackpot cell; any malformed row is dropped on its own, never the whole
// page. Draws dated before cutoff are excluded. Results keep page order.
func ParseDrawRows(html string, cutoff time.Time) ([]models.Draw, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	draws := make([]models.Draw, 0)
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}

		drawDate, ok := parseDateCell(cells.Eq(0))
		if !ok || drawDate.Before(cutoff) {
			return
		}

		numbers := parseNumbersCell(cells.Eq(1))
		if len(numbers) == 0 {
			return
		}

		jackpot, ok := parseJackpotCell(cells.Eq(2))
		if !ok {
			return
		}

		draws = append(draws, models.Draw{
			Date:    drawDate.Format("2006-01-02"),
			Numbers: numbers,
			Jackpot: jackpot,
		})
	})

	return draws, nil
}

// parseDateCell reads the "<Weekday> <Month> <Day><ordinal> <Year>" label from
// the cell's anchor, drops the weekday and the ordinal suffix, and parses the
// rest as a date. Header rows and other non-draw rows fail here.
func parseDateCell(cell *goquery.Selection) (time.Time, bool) {
	anchor := cell.Find("a").First()
	if anchor.Length() == 0 {
		return time.Time{}, false
	}

	parts := strings.Fields(anchor.Text())
	if len(parts) < 3 {
		return time.Time{}, false
	}

	label := ordinalSuffix.ReplaceAllString(strings.Join(parts[1:], " "), "$1")
	drawDate, err := time.Parse("January 2 2006", label)
	if err != nil {
		return time.Time{}, false
	}
	return drawDate, true
}

// parseNumbersCell collects the text of every result-ball span in document
// order, keeping only purely numeric ones.
func parseNumbersCell(cell *goquery.Selection) []int {
	var numbers []int
	cell.Find("span.resultBall").Each(func(_ int, ball *goquery.Selection) {
		text := strings.TrimSpace(ball.Text())
		if !isDigits(text) {
			return
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			return
		}
		numbers = append(numbers, n)
	})
	return numbers
}

// parseJackpotCell reads the dollar figure from the cell's <strong> element,
// e.g. "$189,000,000" -> 189000000.
func parseJackpotCell(cell *goquery.Selection) (int64, bool) {
	strong := cell.Find("strong").First()
	if strong.Length() == 0 {
		return 0, false
	}

	digits := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(strong.Text()))
	if !isDigits(digits) {
		return 0, false
	}

	jackpot, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return jackpot, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
