package httpapi

import (
	"bytes"
	"fmt"

	"bloodbank-data/internal/domain"

	"github.com/xuri/excelize/v2"
)

// InventoryExportHeader lot sheet columns
var InventoryExportHeader = []string{"Storage ID", "Blood Group", "Quantity"}

// AvailabilityExportHeader summary sheet columns
var AvailabilityExportHeader = []string{"Blood Group", "Total Units"}

// GenerateInventoryExport builds the inventory workbook: one sheet with the
// individual lots, one with the per-group totals.
func GenerateInventoryExport(lots []*domain.StorageLot, summary []*domain.GroupAvailability) ([]byte, error) {
	f := excelize.NewFile()
	// Note: don't defer Close() here, WriteTo needs the file open

	lotsSheet := "Storage Lots"
	index, err := f.NewSheet(lotsSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	summarySheet := "Availability"
	if _, err := f.NewSheet(summarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#FFE6E6"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeHeaderRow(f, lotsSheet, InventoryExportHeader, headerStyle); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeHeaderRow(f, summarySheet, AvailabilityExportHeader, headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	if err := f.SetColWidth(lotsSheet, "A", "A", 20); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(lotsSheet, "B", "C", 14); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(summarySheet, "A", "B", 14); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	for i, lot := range lots {
		row := i + 2
		if err := f.SetCellValue(lotsSheet, fmt.Sprintf("A%d", row), lot.StorageID); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set cell: %w", err)
		}
		_ = f.SetCellValue(lotsSheet, fmt.Sprintf("B%d", row), lot.BloodGroup)
		_ = f.SetCellValue(lotsSheet, fmt.Sprintf("C%d", row), lot.Quantity)
	}

	for i, g := range summary {
		row := i + 2
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), g.BloodGroup)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), g.TotalUnits)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string, style int) error {
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
	}
	return nil
}
