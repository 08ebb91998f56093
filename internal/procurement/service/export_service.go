package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/flaviorefit/projetos/internal/procurement/engine"
	"github.com/flaviorefit/projetos/internal/procurement/entity"
)

// ExportService renders the filtered grid as a spreadsheet.
type ExportService struct {
	projects *ProjectService
}

func NewExportService(projects *ProjectService) *ExportService {
	return &ExportService{projects: projects}
}

var projectExportHeaders = []string{
	"Código", "Status", "Empresa", "Categoria", "Área", "Responsável",
	"Descrição", "Orçamento", "Linha de Base", "Melhor Proposta",
	"Preço Inicial", "Preço Final", "Saving", "Saving %",
	"CE Baseline", "CE Baseline %", "Custo Evitado", "Custo Evitado %",
	"Início", "Término", "Progresso %",
}

var statusLabels = map[string]string{
	entity.StatusToStart:    "A Iniciar",
	entity.StatusInProgress: "Em Andamento",
	entity.StatusDelayed:    "Atrasado",
	entity.StatusCompleted:  "Concluído",
	entity.StatusOnHold:     "Em Espera",
	entity.StatusCancelled:  "Cancelado",
}

// ExportProjects builds an xlsx workbook with one row per filtered project
// and a totals row at the bottom.
func (s *ExportService) ExportProjects(ctx context.Context, criteria engine.Criteria) (*excelize.File, string, error) {
	records, err := s.projects.List(ctx, criteria)
	if err != nil {
		return nil, "", fmt.Errorf("list projects: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Projetos"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, h := range projectExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	var totalSaving, totalCEBaseline, totalCE decimal.Decimal
	for rowIdx, p := range records {
		row := rowIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), statusLabel(p.Status))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.Company)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.Category)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), p.Area)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), p.Responsible)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), p.Description)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), p.Budget.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), p.Baseline.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), p.BestProposal.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("K%d", row), p.InitialPrice.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("L%d", row), p.FinalPrice.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("M%d", row), p.SavingAmount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("N%d", row), p.SavingPercent.Round(2).InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("O%d", row), p.CostAvoidanceBaselineAmount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("P%d", row), p.CostAvoidanceBaselinePercent.Round(2).InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("Q%d", row), p.CostAvoidanceAmount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("R%d", row), p.CostAvoidancePercent.Round(2).InexactFloat64())
		if p.StartDate != nil {
			f.SetCellValue(sheet, fmt.Sprintf("S%d", row), p.StartDate.Format("02/01/2006"))
		}
		if p.EndDate != nil {
			f.SetCellValue(sheet, fmt.Sprintf("T%d", row), p.EndDate.Format("02/01/2006"))
		}
		f.SetCellValue(sheet, fmt.Sprintf("U%d", row), p.ProgressPercent)

		totalSaving = totalSaving.Add(p.SavingAmount)
		totalCEBaseline = totalCEBaseline.Add(p.CostAvoidanceBaselineAmount)
		totalCE = totalCE.Add(p.CostAvoidanceAmount)
	}

	summaryRow := len(records) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Totais")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", summaryRow), fmt.Sprintf("Total de projetos: %d", len(records)))
	f.SetCellValue(sheet, fmt.Sprintf("M%d", summaryRow), totalSaving.InexactFloat64())
	f.SetCellValue(sheet, fmt.Sprintf("O%d", summaryRow), totalCEBaseline.InexactFloat64())
	f.SetCellValue(sheet, fmt.Sprintf("Q%d", summaryRow), totalCE.InexactFloat64())
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("U%d", summaryRow), summaryStyle)

	colWidths := []float64{10, 14, 18, 16, 14, 18, 32, 14, 14, 14, 14, 14, 14, 10, 14, 12, 14, 12, 12, 12, 12}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	filename := fmt.Sprintf("projects_%s.xlsx", time.Now().Format("20060102_150405"))
	return f, filename, nil
}

func statusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}
