package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName = "Invoice"
	// The table's header row; rows 1–2 hold the date and title, row 3
	// stays blank.
	tableTop = 4
)

func (s *Service) renderXLSX(date, tracking string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: border,
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	cellStyle, err := f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return nil, fmt.Errorf("cell style: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("bold style: %w", err)
	}

	// Keep the on-screen proportions close to the printed layout.
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheetName, col, col, w/2)
	}

	_ = f.SetCellValue(sheetName, "A1", "Invoice Date: "+date)

	lastCol, _ := excelize.ColumnNumberToName(len(columns))
	_ = f.MergeCell(sheetName, "A2", lastCol+"2")
	_ = f.SetCellValue(sheetName, "A2", docTitle)
	_ = f.SetCellStyle(sheetName, "A2", lastCol+"2", titleStyle)

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableTop)
		_ = f.SetCellValue(sheetName, cell, col)
	}

	headerEnd, _ := excelize.CoordinatesToCellName(len(columns), tableTop)
	_ = f.SetCellStyle(sheetName, "A4", headerEnd, headerStyle)

	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, tableTop+1+r)
			_ = f.SetCellValue(sheetName, cell, v)
		}
	}

	dataStart, _ := excelize.CoordinatesToCellName(1, tableTop+1)
	dataEnd, _ := excelize.CoordinatesToCellName(len(columns), tableTop+len(rows))
	_ = f.SetCellStyle(sheetName, dataStart, dataEnd, cellStyle)

	// Footer block, two blank rows below the table, labels bold.
	row := tableTop + len(rows) + 3

	setCell := func(col, r int, v string, style int) {
		cell, _ := excelize.CoordinatesToCellName(col, r)
		_ = f.SetCellValue(sheetName, cell, v)

		if style != 0 {
			_ = f.SetCellStyle(sheetName, cell, cell, style)
		}
	}

	setCell(1, row, "Tracking #", boldStyle)
	setCell(2, row, tracking, 0)
	setCell(3, row, s.footer.Carrier, 0)

	row += 2
	for _, line := range s.footer.PaymentLines {
		setCell(1, row, line, boldStyle)
		row++
	}

	row++
	for _, line := range s.footer.BusinessLines {
		setCell(1, row, line, boldStyle)
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
