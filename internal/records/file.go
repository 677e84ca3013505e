package records

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spigell/intern-swipe/internal/sheets"
)

// ListingsFile is the on-disk form of exported listings.
type ListingsFile struct {
	ExportedAt time.Time  `json:"exported_at"`
	Items      []*Listing `json:"items"`
}

// ReadListingsFile reads listings previously written by ToFile or exported
// as an xlsx workbook. An empty file yields no listings.
func ReadListingsFile(path string) (*Listings, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &Listings{}, nil
	}

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readListingsXLSX(file)
	}

	var exported ListingsFile
	if err := json.NewDecoder(file).Decode(&exported); err != nil {
		return nil, err
	}
	return &Listings{Items: exported.Items}, nil
}

// readListingsXLSX reads the first worksheet of a workbook as a catalog.
// A workbook with a header and no matches yields no listings.
func readListingsXLSX(file *os.File) (*Listings, error) {
	rows, err := sheets.ParseXLSX(file, sheets.DefaultOptions())
	if err != nil {
		return nil, err
	}

	normalized, err := Normalize(sheets.Cells(rows))
	if errors.Is(err, ErrNoHeaderFound) || errors.Is(err, ErrEmptyResult) {
		return &Listings{}, nil
	}
	if err != nil {
		return nil, err
	}

	return NewListings(normalized)
}

// ToFile writes the listings as indented JSON, replacing the file contents.
func (v *Listings) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	return v.encode(file)
}

// DumpToTmpFile writes the listings to a new temporary JSON file and returns its name.
func (v *Listings) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := v.encode(file); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func (v *Listings) encode(file *os.File) error {
	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(&ListingsFile{
		ExportedAt: time.Now().UTC(),
		Items:      v.Items,
	})
}
