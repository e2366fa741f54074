package services

import (
	"fmt"

	excelize "github.com/xuri/excelize/v2"
)

// ExportXLSX renders the full catalogue as an Excel workbook, one row per
// project in listing order.
func (s *ProjectService) ExportXLSX() ([]byte, error) {
	projects, err := s.loadAll()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Projects"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename export sheet: %w", err)
	}

	headers := []string{"ID", "Number", "Title", "Category", "Year", "Location", "Status", "Client", "Images"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, project := range projects {
		values := []interface{}{
			project.ID,
			project.Number,
			project.Title,
			string(project.Category),
			project.Year,
			project.Details.Location,
			project.Details.Status,
			project.Details.Client,
			len(project.Images),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write export workbook: %w", err)
	}
	return buf.Bytes(), nil
}
