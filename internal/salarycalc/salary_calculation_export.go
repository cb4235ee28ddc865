package salarycalc

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Salary Calculations"

var exportHeaders = []string{
	"Reference",
	"Teacher ID",
	"Academic Period",
	"Period Start",
	"Period End",
	"Base Salary",
	"Calculated Amount",
	"Approved Amount",
	"Status",
	"Approved At",
}

func buildCalculationsWorkbook(calcs []SalaryCalculation) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for r, calc := range calcs {
		row := r + 2
		values := []any{
			calc.ReferenceNumber,
			calc.TeacherID.String(),
			calc.AcademicPeriod,
			calc.PeriodStart.Format(dateLayout),
			calc.PeriodEnd.Format(dateLayout),
			calc.BaseSalaryAmount.InexactFloat64(),
			calc.CalculatedAmount.InexactFloat64(),
			"",
			calc.Status,
			"",
		}
		if calc.ApprovedAmount != nil {
			values[7] = calc.ApprovedAmount.InexactFloat64()
		}
		if calc.ApprovedAt != nil {
			values[9] = calc.ApprovedAt.Format(time.RFC3339)
		}

		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
