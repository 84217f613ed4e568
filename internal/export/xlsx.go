package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"lexora/internal/domain"
)

const (
	clauseSheet  = "Clauses"
	summarySheet = "Summary"
)

// WriteWorkbook writes a clause report workbook: one sheet with the clause
// table and one with the aggregate summary.
func WriteWorkbook(w io.Writer, result *domain.PipelineResult) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", clauseSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	for col, header := range clauseColumns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(clauseSheet, cell, header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i, clause := range result.Clauses {
		row := []interface{}{
			string(clause.Category),
			clause.Text,
			clause.Context,
			string(clause.Importance),
			clause.Section,
		}
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(clauseSheet, cell, value); err != nil {
				return fmt.Errorf("writing clause row %d: %w", i+1, err)
			}
		}
	}

	if result.ClauseSummary != nil {
		if err := writeSummarySheet(f, result.ClauseSummary); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, summary *domain.ClauseSummary) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Total Clauses", summary.TotalClauses},
		{"High Importance", summary.HighImportance},
		{},
		{"Category", "Count"},
	}
	for _, category := range domain.AllClauseCategories() {
		if n := summary.Distribution[category]; n > 0 {
			rows = append(rows, []interface{}{string(category), n})
		}
	}
	rows = append(rows, []interface{}{}, []interface{}{"Key Findings"})
	for _, finding := range summary.KeyFindings {
		rows = append(rows, []interface{}{finding})
	}
	rows = append(rows, []interface{}{}, []interface{}{"Recommendations"})
	for _, rec := range summary.Recommendations {
		rows = append(rows, []interface{}{rec})
	}

	for i, row := range rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+1)
			if err := f.SetCellValue(summarySheet, cell, value); err != nil {
				return fmt.Errorf("writing summary row %d: %w", i+1, err)
			}
		}
	}
	return nil
}
