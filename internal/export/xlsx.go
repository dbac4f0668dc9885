package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/domain"
)

const sheetName = "Certificates"

var reportHeaders = []string{
	"Filename",
	"Success",
	"Overall Status",
	"Overall Message",
	"Document Type",
	"Date",
	"Time",
	"Vehicle Number",
	"Total Weight (kg)",
	"Empty Weight (kg)",
	"Net Weight (kg)",
	"Calculated Net (kg)",
	"Customer",
	"Product",
	"Issuer",
	"Latitude",
	"Longitude",
	"Confidence",
	"Error",
}

// BatchReport renders one batch of parse results as an XLSX workbook,
// one row per uploaded file.
func BatchReport(items []domain.BatchItemResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for col, header := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for rowIdx, item := range items {
		if err := writeRow(f, rowIdx+2, item); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, item domain.BatchItemResult) error {
	values := make([]any, len(reportHeaders))
	values[0] = item.Filename
	values[1] = item.Success
	values[18] = item.Error

	if res := item.Result; res != nil {
		values[2] = string(res.Validation.OverallStatus)
		values[3] = res.Validation.OverallMessage
		values[4] = strOrBlank(res.DocumentType)
		values[5] = strOrBlank(res.Date)
		values[6] = strOrBlank(res.Time)
		values[7] = strOrBlank(res.VehicleNumber)
		values[8] = intOrBlank(res.TotalWeight)
		values[9] = intOrBlank(res.EmptyWeight)
		values[10] = intOrBlank(res.NetWeight)
		values[11] = intOrBlank(res.Validation.Weight.CalculatedNetWeight)
		values[12] = strOrBlank(res.Customer)
		values[13] = strOrBlank(res.ProductName)
		values[14] = strOrBlank(res.Issuer)
		if res.GPS != nil {
			values[15] = res.GPS.Latitude
			values[16] = res.GPS.Longitude
		}
		values[17] = res.Confidence
	}

	for col, value := range values {
		if value == nil {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
	}
	return nil
}

func strOrBlank(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func intOrBlank(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}
