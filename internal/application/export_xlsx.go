package application

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"UserID",
	"JobID",
	"ApplicantName",
	"ApplicantEmail",
	"UserTechSkills",
	"UserSoftSkills",
	"ResumeURL",
	"ApplicationDate",
}

const exportSheet = "Applications"

// buildApplicationsWorkbook flattens applicant rows into a one-sheet workbook
// held entirely in memory.
func buildApplicationsWorkbook(rows []ApplicantRow, baseURL string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	// Drop the default sheet so the workbook only carries ours.
	_ = f.DeleteSheet("Sheet1")

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []any{
			row.UserID,
			row.JobID,
			row.ApplicantName,
			row.ApplicantEmail,
			strings.Join(row.UserTechSkills, ", "),
			strings.Join(row.UserSoftSkills, ", "),
			ResumeURL(baseURL, row.UserResume),
			row.AppliedAt,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
