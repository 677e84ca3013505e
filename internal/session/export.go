package session

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spigell/intern-swipe/internal/records"

	"github.com/xuri/excelize/v2"
)

const matchesSheet = "Matches"

var exportHeader = []any{
	"ID", "Company Name", "Role", "Location", "Skill Match", "Acceptance Rate", "Ghost Rate", "Avg. Response Days", "Required Skills",
}

// DumpMatchesToTmpFile writes the matches to a temporary JSON file and returns its name.
func (s *Session) DumpMatchesToTmpFile() (string, error) {
	return s.matchesListings().DumpToTmpFile()
}

// WriteMatches writes the matches to path. Paths ending in .xlsx get a
// workbook, anything else gets JSON. Both are readable by records.ReadListingsFile.
func (s *Session) WriteMatches(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("export path is required")
	}

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return s.writeMatchesXLSX(path)
	}
	return s.matchesListings().ToFile(path)
}

func (s *Session) matchesListings() *records.Listings {
	return &records.Listings{Items: s.Matches()}
}

func (s *Session) writeMatchesXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), matchesSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(matchesSheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for idx, match := range s.matches {
		row := []any{
			match.ID,
			match.CompanyName,
			match.Role,
			match.Location,
			s.Score(match).String(),
			percentCell(match.AcceptancePercent()),
			percentCell(match.GhostPercent()),
			match.AvgResponseDays,
			match.RequiredSkills,
		}

		cell, err := excelize.CoordinatesToCellName(1, idx+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(matchesSheet, cell, &row); err != nil {
			return fmt.Errorf("write match %d: %w", idx, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func percentCell(value int, ok bool) string {
	if !ok {
		return "..."
	}
	return fmt.Sprintf("%d%%", value)
}
