// Package export renders leads as CSV for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"leadgen/internal/lead/models"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// InsightSeparator joins a lead's insights into one cell.
const InsightSeparator = "; "

// Header is the first CSV row.
var Header = []string{"Name", "Email", "Company", "Industry", "Score", "Insights", "Timestamp"}

// FormatTimestamp renders t the way every lead timestamp leaves the system.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// WriteCSV writes the header and one row per lead. Cells containing commas,
// quotes or newlines are quoted.
func WriteCSV(w io.Writer, leads []*models.Lead) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, l := range leads {
		if err := cw.Write(row(l)); err != nil {
			return fmt.Errorf("write csv row %s: %w", l.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// Filename names a download after the instant it was produced.
func Filename(now time.Time) string {
	return "leads-" + FormatTimestamp(now) + ".csv"
}

func row(l *models.Lead) []string {
	return []string{
		l.Name,
		l.Email,
		l.Company,
		l.Industry,
		strconv.Itoa(l.Score),
		strings.Join(l.Insights, InsightSeparator),
		FormatTimestamp(l.CreatedAt),
	}
}
