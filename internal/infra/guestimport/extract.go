package guestimport

import (
	"math"
	"strconv"
	"strings"

	"wedding-rsvp/internal/domain/guest"
	"wedding-rsvp/internal/pkg/errs"

	"github.com/xuri/excelize/v2"
)

// ColumnGroup locates one guest block within a row. Some sheets place two
// blocks side by side. Indexes are zero-based.
type ColumnGroup struct {
	Name       int
	PlusOne    int
	PreWedding int
}

// ParseColumnGroup reads spreadsheet column letters such as ("C", "D", "E").
func ParseColumnGroup(name, plusOne, preWedding string) (ColumnGroup, error) {
	var g ColumnGroup
	for _, c := range []struct {
		letters string
		dst     *int
	}{
		{name, &g.Name},
		{plusOne, &g.PlusOne},
		{preWedding, &g.PreWedding},
	} {
		n, err := excelize.ColumnNameToNumber(strings.TrimSpace(c.letters))
		if err != nil {
			return ColumnGroup{}, errs.Wrapf(err, "invalid column %q", c.letters)
		}
		*c.dst = n - 1
	}
	return g, nil
}

type Layout struct {
	StartRow int // 1-based, as shown in the spreadsheet
	Groups   []ColumnGroup
}

// Row is a guest line before deduplication.
type Row struct {
	Name         string
	PlusOneCount int
	PreWedding   bool
}

// Extract walks every sheet from StartRow and collects one Row per non-blank
// name cell per column group. Rows named "total" are skipped.
func Extract(sheets []Sheet, layout Layout) []Row {
	start := layout.StartRow - 1
	if start < 0 {
		start = 0
	}

	var out []Row
	for _, sheet := range sheets {
		for i := start; i < len(sheet.Rows); i++ {
			cells := sheet.Rows[i]
			for _, g := range layout.Groups {
				name := strings.TrimSpace(cell(cells, g.Name))
				if name == "" || strings.EqualFold(name, "total") {
					continue
				}
				out = append(out, Row{
					Name:         name,
					PlusOneCount: parseCount(cell(cells, g.PlusOne)),
					PreWedding:   strings.EqualFold(strings.TrimSpace(cell(cells, g.PreWedding)), "Y"),
				})
			}
		}
	}
	return out
}

// Build deduplicates rows by lowercase name, first occurrence wins, and
// numbers the guests from 1 in input order.
func Build(rows []Row) ([]*guest.Guest, error) {
	seen := make(map[string]struct{}, len(rows))
	guests := make([]*guest.Guest, 0, len(rows))

	for _, r := range rows {
		key := strings.ToLower(r.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		g, err := guest.NewGuest(guest.Params{
			ID:                len(guests) + 1,
			Name:              r.Name,
			PreWeddingInvited: r.PreWedding,
			PlusOneAllowed:    r.PlusOneCount >= 1,
			Headcount:         1 + r.PlusOneCount,
		})
		if err != nil {
			return nil, errs.Wrapf(err, "guest %q", r.Name)
		}
		guests = append(guests, g)
	}
	return guests, nil
}

func cell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

// Non-numeric counts read as zero; spreadsheets often hold "-" or notes there.
func parseCount(s string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}
