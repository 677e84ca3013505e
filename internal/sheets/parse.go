package sheets

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

const byteOrderMark = "\ufeff"

// ParseCSV splits delimited text into rows. It never treats the first row as
// a header and never converts cell values.
func ParseCSV(r io.Reader, opts Options) ([]Row, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	// Spreadsheet exports are frequently ragged.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = opts.LazyQuotes

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(rows) == 0 && len(record) > 0 {
			record[0] = strings.TrimPrefix(record[0], byteOrderMark)
		}

		rows = append(rows, Row(record))
	}

	return filterEmpty(rows, opts), nil
}

// ParseXLSX reads the rows of one worksheet from an xlsx workbook.
func ParseXLSX(r io.Reader, opts Options) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := strings.TrimSpace(opts.Sheet)
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	rows := make([]Row, 0, len(cells))
	for _, row := range cells {
		rows = append(rows, Row(row))
	}

	return filterEmpty(rows, opts), nil
}

func filterEmpty(rows []Row, opts Options) []Row {
	if !opts.SkipEmptyLines {
		return rows
	}

	kept := rows[:0]
	for _, row := range rows {
		if row.isEmptyLine() {
			continue
		}
		kept = append(kept, row)
	}

	return kept
}

// isEmptyLine reports whether the row came from a line without any content.
// Rows made only of delimiters are not empty lines.
func (r Row) isEmptyLine() bool {
	return len(r) == 0 || (len(r) == 1 && r[0] == "")
}

// Cells returns the rows as plain string slices.
func Cells(rows []Row) [][]string {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string(row))
	}
	return cells
}
