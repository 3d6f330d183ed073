package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadhlanhapp/trekshare-backend/models"
	"github.com/fadhlanhapp/trekshare-backend/utils"
	"github.com/xuri/excelize/v2"
)

// ExcelService handles Excel export functionality
type ExcelService struct {
	treks TrekReader
}

// NewExcelService creates a new Excel service
func NewExcelService(treks TrekReader) *ExcelService {
	return &ExcelService{treks: treks}
}

// ExportTrekQuotes generates a workbook with the quote table, cost sheet and itinerary of a trek
func (s *ExcelService) ExportTrekQuotes(ctx context.Context, trekID string, from, to int) (*excelize.File, string, error) {
	trek, err := s.treks.GetTrekByID(ctx, trekID)
	if err != nil {
		return nil, "", err
	}

	from, to = groupSizeRange(trek, from, to)
	table, err := BuildQuoteTable(trek, from, to)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()

	if err := s.createQuotesSheet(f, trek, table); err != nil {
		return nil, "", fmt.Errorf("failed to create quotes sheet: %w", err)
	}
	if err := s.createCostSheet(f, trek); err != nil {
		return nil, "", fmt.Errorf("failed to create cost sheet: %w", err)
	}
	if err := s.createItinerarySheet(f, trek); err != nil {
		return nil, "", fmt.Errorf("failed to create itinerary sheet: %w", err)
	}

	// Delete the default sheet if it exists
	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s_Quotes_%s.xlsx",
		utils.CleanFileName(trek.Name),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

// createQuotesSheet creates Sheet 1: one row per group size
func (s *ExcelService) createQuotesSheet(f *excelize.File, trek *models.TrekRoute, table *models.QuoteTable) error {
	sheetName := "Quotes"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	headers := []string{"Group Size", "Per Person", "Reference Price", "Savings"}
	for _, component := range trek.CostComponents {
		headers = append(headers, component.Label)
	}
	if err := writeHeaderRow(f, sheetName, headers); err != nil {
		return err
	}

	for i, quote := range table.Quotes {
		row := []interface{}{
			quote.GroupSize,
			quote.PerPersonTotal.InexactFloat64(),
			quote.ReferencePrice.InexactFloat64(),
			quote.Savings.InexactFloat64(),
		}
		for _, line := range quote.Lines {
			row = append(row, line.PerPerson.InexactFloat64())
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	return f.SetColWidth(sheetName, "A", lastCol, 15)
}

// createCostSheet creates Sheet 2: the trek's cost components
func (s *ExcelService) createCostSheet(f *excelize.File, trek *models.TrekRoute) error {
	sheetName := "Cost Sheet"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	if err := writeHeaderRow(f, sheetName, []string{"Item", "Allocation", "Amount", "Per Day"}); err != nil {
		return err
	}

	for i, component := range trek.CostComponents {
		perDay := "No"
		if component.PerDuration {
			perDay = "Yes"
		}
		row := []interface{}{
			component.Label,
			allocationLabel(component.Allocation),
			component.Amount.InexactFloat64(),
			perDay,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetName, "A", "D", 18)
}

// createItinerarySheet creates Sheet 3: day by day plan
func (s *ExcelService) createItinerarySheet(f *excelize.File, trek *models.TrekRoute) error {
	sheetName := "Itinerary"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	headers := []string{"Day", "Title", "Altitude (m)", "Distance (km)", "Duration", "Accommodation", "Meals", "Highlights"}
	if err := writeHeaderRow(f, sheetName, headers); err != nil {
		return err
	}

	for i, day := range trek.Itinerary {
		row := []interface{}{
			day.Day,
			day.Title,
			day.Altitude,
			day.Distance,
			day.Duration,
			day.Accommodation,
			strings.Join(day.Meals, ", "),
			strings.Join(day.Highlights, "; "),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	f.SetColWidth(sheetName, "A", "A", 6)
	return f.SetColWidth(sheetName, "B", "H", 20)
}

func writeHeaderRow(f *excelize.File, sheetName string, headers []string) error {
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	lastCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	return f.SetCellStyle(sheetName, "A1", lastCell, headerStyle)
}

func allocationLabel(allocation string) string {
	if allocation == utils.AllocationGroupShared {
		return "Shared by group"
	}
	return "Per person"
}
