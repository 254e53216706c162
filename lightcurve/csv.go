package lightcurve

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Errors returned by CSV ingestion.
var (
	ErrMissingColumn = errors.New("lightcurve: csv is missing a required column")
	ErrNoSamples     = errors.New("lightcurve: csv contains no parsable samples")
)

// ReadCSV loads a light curve from a CSV file with a header row containing
// at least the columns time, flux, flux_err and quality (in any order).
// Rows with unparsable numeric cells are skipped. The curve label is the
// file name without its extension.
func ReadCSV(path string) (*LightCurve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lightcurve: open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("lightcurve: read csv: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%w: %s", ErrNoSamples, path)
	}

	cols := map[string]int{}
	for i, name := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var idx [4]int
	for i, name := range []string{"time", "flux", "flux_err", "quality"} {
		j, ok := cols[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}

		idx[i] = j
	}

	var (
		times, fluxes, fluxErrs []float64
		quality                 []int
	)

	for _, row := range records[1:] {
		t, err1 := parseCell(row, idx[0])
		fl, err2 := parseCell(row, idx[1])
		fe, err3 := parseCell(row, idx[2])
		q, err4 := parseCell(row, idx[3])

		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}

		times = append(times, t)
		fluxes = append(fluxes, fl)
		fluxErrs = append(fluxErrs, fe)
		quality = append(quality, int(q))
	}

	if len(times) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSamples, path)
	}

	return New(times, fluxes, fluxErrs, quality, labelFromPath(path))
}

// WriteCSV writes the folded curve as a two-column phase,flux table.
func (fc *FoldedCurve) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("lightcurve: create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write([]string{"phase", "flux"}); err != nil {
		return fmt.Errorf("lightcurve: write csv header: %w", err)
	}

	for i := range fc.Phase {
		row := []string{
			strconv.FormatFloat(fc.Phase[i], 'g', -1, 64),
			strconv.FormatFloat(fc.Flux[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("lightcurve: write csv row: %w", err)
		}
	}

	w.Flush()

	return w.Error()
}

func parseCell(row []string, col int) (float64, error) {
	if col >= len(row) {
		return 0, fmt.Errorf("lightcurve: row has no column %d", col)
	}

	return strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
}

func labelFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
