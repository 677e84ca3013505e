package records

import (
	"errors"
	"strings"
)

var (
	// ErrNoHeaderFound is returned when no row has any non-blank cell.
	ErrNoHeaderFound = errors.New("could not find header row")
	// ErrEmptyResult is returned when no catalog record survives normalization.
	ErrEmptyResult = errors.New("no valid records found")
	// ErrNoUserRow is returned when the profile source has no row after the header.
	ErrNoUserRow = errors.New("no user row found")
)

// Record maps trimmed header names to raw cell values.
type Record map[string]string

// Get returns the value stored under the first header that has a non-blank value.
func (r Record) Get(headers ...string) string {
	for _, header := range headers {
		if value := strings.TrimSpace(r[header]); value != "" {
			return value
		}
	}
	return ""
}

// IsBlank reports whether every value of the record is blank after trimming.
func (r Record) IsBlank() bool {
	for _, value := range r {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}

// HasCompanyName reports whether the record carries a non-blank company name
// under any spelling accepted for the company name field.
func (r Record) HasCompanyName() bool {
	for header, value := range r {
		if field, ok := CanonicalField(header); ok && field == FieldCompanyName && strings.TrimSpace(value) != "" {
			return true
		}
	}
	return false
}

// Normalize turns catalog rows into records. Rows before the header are ignored,
// blank records and records without a company name are dropped.
func Normalize(rows [][]string) ([]Record, error) {
	headerIdx, header, err := findHeader(rows)
	if err != nil {
		return nil, err
	}

	var result []Record
	for _, row := range rows[headerIdx+1:] {
		record := buildRecord(header, row)
		if record.IsBlank() || !record.HasCompanyName() {
			continue
		}
		result = append(result, record)
	}

	if len(result) == 0 {
		return nil, ErrEmptyResult
	}

	return result, nil
}

// NormalizeProfile returns the first row after the header as a record.
// The row is kept as is, even when it is blank.
func NormalizeProfile(rows [][]string) (Record, error) {
	headerIdx, header, err := findHeader(rows)
	if err != nil {
		return nil, err
	}

	if headerIdx+1 >= len(rows) {
		return nil, ErrNoUserRow
	}

	return buildRecord(header, rows[headerIdx+1]), nil
}

func findHeader(rows [][]string) (int, []string, error) {
	for idx, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return idx, row, nil
			}
		}
	}
	return 0, nil, ErrNoHeaderFound
}

func buildRecord(header, row []string) Record {
	record := make(Record, len(header))
	for idx, name := range header {
		value := ""
		if idx < len(row) {
			value = row[idx]
		}
		record[strings.TrimSpace(name)] = value
	}
	return record
}
