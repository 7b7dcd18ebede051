package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dtnitsch/unstop-trends/pkg/manifest"
)

// Inspect reads a rendered report back and lists its charts in page order.
func Inspect(r io.Reader) ([]manifest.ChartSummary, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	var out []manifest.ChartSummary
	doc.Find("section[data-section]").Each(func(_ int, sec *goquery.Selection) {
		section, _ := sec.Attr("data-section")
		sec.Find("article.chart").Each(func(_ int, art *goquery.Selection) {
			s := manifest.ChartSummary{
				ID:      art.AttrOr("data-chart-id", ""),
				Section: section,
				Title:   art.AttrOr("data-title", ""),
				Status:  art.AttrOr("data-status", ""),
			}
			if errPanel := art.Find(".chart-error").First(); errPanel.Length() > 0 {
				s.ErrorType = errPanel.AttrOr("data-error-type", "")
				s.Error = strings.TrimSpace(errPanel.Text())
			}
			out = append(out, s)
		})
	})

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no charts found in report", ErrNoData)
	}
	return out, nil
}
