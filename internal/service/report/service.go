package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/fieldhr/hrms-backend-go/internal/domain/report"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/validator"
)

type ServiceImpl struct {
	report.Repository
}

func NewService(repo report.Repository) report.Service {
	return &ServiceImpl{
		Repository: repo,
	}
}

// MonthlySummary implements report.Service.
func (s *ServiceImpl) MonthlySummary(ctx context.Context, req report.MonthlySummaryRequest) (report.MonthlySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlySummaryResponse{}, err
	}

	monthStart, _ := validator.IsValidMonth(req.Month)

	rows, err := s.Repository.MonthlySummary(ctx, monthStart)
	if err != nil {
		return report.MonthlySummaryResponse{}, fmt.Errorf("failed to aggregate monthly summary: %w", err)
	}

	return report.MonthlySummaryResponse{
		Month: req.Month,
		Rows:  rows,
	}, nil
}

// ExportMonthlyXLSX implements report.Service.
func (s *ServiceImpl) ExportMonthlyXLSX(ctx context.Context, req report.MonthlySummaryRequest) ([]byte, error) {
	summary, err := s.MonthlySummary(ctx, req)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Employee ID", "Employee Name", "Present", "Out of Office", "Absent", "Late", "Half Day", "Approved Leave Days"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve header cell: %w", err)
		}
		f.SetCellValue(sheet, cell, header)
	}

	for i, row := range summary.Rows {
		rowNum := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), row.EmployeeID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), row.EmployeeName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), row.DaysPresent)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), row.DaysOutOfOffice)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), row.DaysAbsent)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), row.DaysLate)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), row.DaysHalfDay)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum), row.ApprovedLeaveDays)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize spreadsheet: %w", err)
	}

	return buf.Bytes(), nil
}
