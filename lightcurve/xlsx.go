package lightcurve

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Errors returned by XLSX ingestion.
var (
	ErrNoSheets      = errors.New("lightcurve: workbook contains no sheets")
	ErrInvalidColumn = errors.New("lightcurve: column index must be >= 1")
)

// ReadXLSX loads a light curve from two numeric columns of an XLSX sheet.
// timeCol and fluxCol are 1-based column indices; sheet may be empty to use
// the first sheet in the workbook. Blank and non-numeric cells are skipped,
// and comma decimal separators are accepted. The resulting curve has zero
// flux uncertainties and all-clean quality flags.
func ReadXLSX(path, sheet string, timeCol, fluxCol int) (*LightCurve, error) {
	if timeCol < 1 || fluxCol < 1 {
		return nil, fmt.Errorf("%w: time %d, flux %d", ErrInvalidColumn, timeCol, fluxCol)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("lightcurve: open xlsx: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoSheets, path)
		}

		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("lightcurve: read sheet %q: %w", sheet, err)
	}

	var times, fluxes []float64

	for _, row := range rows {
		t, ok1 := numericCell(row, timeCol)
		fl, ok2 := numericCell(row, fluxCol)

		if !ok1 || !ok2 {
			continue
		}

		times = append(times, t)
		fluxes = append(fluxes, fl)
	}

	if len(times) == 0 {
		return nil, fmt.Errorf("%w: %s (sheet=%s)", ErrNoSamples, path, sheet)
	}

	return New(times, fluxes, nil, nil, labelFromPath(path))
}

// numericCell parses the 1-based column col of row, normalizing comma
// decimal separators. It reports false for missing, blank or non-numeric
// cells.
func numericCell(row []string, col int) (float64, bool) {
	if col > len(row) {
		return 0, false
	}

	s := strings.TrimSpace(row[col-1])
	if s == "" {
		return 0, false
	}

	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}
