// Package wiki scrapes the Falcon 9 launch list table from Wikipedia.
// The page carries several wikitables; the launches table is identified by a
// "Flight No." header cell, falling back to the first wikitable when no
// header matches.
package wiki

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/couchcryptid/launch-data-pipeline/internal/table"
)

// DefaultURL is the page listing Falcon 9 and Falcon Heavy launches.
const DefaultURL = "https://en.wikipedia.org/wiki/List_of_Falcon_9_and_Falcon_Heavy_launches"

// headerMarker identifies the main launches table among the page's wikitables.
const headerMarker = "Flight No."

// Scraper fetches and extracts the launch table. Single attempt, no retry;
// a fetch or parse failure is fatal to the scrape stage.
type Scraper struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewScraper creates a scraper for the given page URL.
func NewScraper(url string, timeout time.Duration, logger *slog.Logger) *Scraper {
	if url == "" {
		url = DefaultURL
	}
	return &Scraper{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FetchTable downloads the page and extracts the launches table, with empty
// and corrupted rows already dropped.
func (s *Scraper) FetchTable(ctx context.Context) (*table.Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", s.url, resp.StatusCode)
	}

	t, err := Extract(resp.Body)
	if err != nil {
		return nil, err
	}

	empty := t.DropEmptyRows()
	corrupt := t.DropUniformRows()
	s.logger.Info("scraped launch table",
		"columns", len(t.Header),
		"rows", len(t.Rows),
		"empty_rows_dropped", empty,
		"corrupt_rows_dropped", corrupt,
	)
	return t, nil
}

// Extract parses HTML and pulls out the launches table. Exported separately
// so tests can feed fixture documents without a live fetch.
func Extract(r io.Reader) (*table.Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	tables := doc.Find("table.wikitable")
	if tables.Length() == 0 {
		return nil, fmt.Errorf("no wikitable found in page")
	}

	sel := findLaunchTable(tables)
	t := extractTable(sel)
	if len(t.Header) == 0 {
		return nil, fmt.Errorf("launch table has no header row")
	}
	return t, nil
}

// findLaunchTable picks the table whose header mentions the flight number
// column, defaulting to the first table on the page.
func findLaunchTable(tables *goquery.Selection) *goquery.Selection {
	var match *goquery.Selection
	tables.EachWithBreak(func(_ int, tbl *goquery.Selection) bool {
		found := false
		tbl.Find("th").EachWithBreak(func(_ int, th *goquery.Selection) bool {
			if strings.Contains(cellText(th), headerMarker) {
				found = true
				return false
			}
			return true
		})
		if found {
			match = tbl
			return false
		}
		return true
	})
	if match != nil {
		return match
	}
	return tables.First()
}

// extractTable flattens a table selection into header and rows. The first
// row supplies the header; later rows are padded or truncated to its width.
// Merged cells are not expanded; the corrupted rows they produce are handled
// by the uniform-row filter downstream.
func extractTable(tbl *goquery.Selection) *table.Table {
	var t *table.Table
	tbl.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, cellText(cell))
		})
		if len(cells) == 0 {
			return
		}
		if t == nil {
			t = table.New(cells)
			return
		}
		t.AppendRow(cells)
	})
	if t == nil {
		return table.New(nil)
	}
	return t
}

// cellText returns a cell's text with internal whitespace collapsed, since
// wiki markup scatters newlines through cell contents.
func cellText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
