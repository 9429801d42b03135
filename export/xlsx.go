package export

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/NikitaKarmakarP/rolewise-zenith/hrms"
)

// ErrGenerate is returned when the workbook cannot be serialized.
var ErrGenerate = errors.New("failed to generate spreadsheet")

const (
	EmployeesSheet        = "Employees"
	EmployeesXLSXFilename = "employees.xlsx"
)

var columnWidths = []float64{8, 24, 30, 20, 24, 12, 16}

// EmployeesXLSX renders users on a single "Employees" sheet with a bold
// header row. Row 1 is the header; users start at row 2.
func EmployeesXLSX(users []hrms.User) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(EmployeesSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(EmployeesSheet, col, col, width); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	if err := setRow(f, 1, EmployeeColumns); err != nil {
		return nil, err
	}
	last, err := excelize.CoordinatesToCellName(len(EmployeeColumns), 1)
	if err != nil {
		return nil, fmt.Errorf("header range: %w", err)
	}
	if err := f.SetCellStyle(EmployeesSheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, u := range users {
		if err := setRow(f, i+2, employeeRow(u)); err != nil {
			return nil, err
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerate, err)
	}
	return buf, nil
}

func setRow(f *excelize.File, row int, values []string) error {
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(EmployeesSheet, start, &cells)
}
