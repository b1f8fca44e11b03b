package reporting

import (
	"bytes"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/stmbudget/sales-planning-api/internal/domain"
	"github.com/stmbudget/sales-planning-api/internal/usecases/authorizing"
	"github.com/stmbudget/sales-planning-api/pkg/apiErrors"
)

// ExportBudgetReport gera a planilha anual de orçamento x forecast: uma
// aba com as entradas de orçamento e outra com a análise de variação
// mensal, respeitando o escopo do ator.
func (s *Service) ExportBudgetReport(ctx context.Context, actor domain.Actor, year int) ([]byte, error) {
	if year == 0 {
		return nil, NewReportError(ErrInvalidYear, apiErrors.ErrMissingRequiredData, "Informe o ano do relatório")
	}

	entries, err := s.budgetRepository.ListForYear(year, domain.BudgetFilter{}, authorizing.ScopeFilter(actor))
	if err != nil {
		logrus.Error("Error listing budget entries on the repository:", err)
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar entradas de orçamento")
	}

	summary, err := s.ForecastSummary(ctx, actor, year, domain.ForecastFilter{})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	entriesSheet := "Orçamento"
	f.SetSheetName("Sheet1", entriesSheet)

	headers := []string{"Cliente", "Item", "Ano", "Mês", "Quantidade", "Preço Unitário", "Desconto %", "Valor Total", "Distribuição", "Status"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(entriesSheet, cell, header)
	}

	for i, entry := range entries {
		row := i + 2
		f.SetCellValue(entriesSheet, fmt.Sprintf("A%d", row), entry.CustomerID)
		f.SetCellValue(entriesSheet, fmt.Sprintf("B%d", row), entry.ItemID)
		f.SetCellValue(entriesSheet, fmt.Sprintf("C%d", row), entry.Year)
		f.SetCellValue(entriesSheet, fmt.Sprintf("D%d", row), entry.Month)
		f.SetCellValue(entriesSheet, fmt.Sprintf("E%d", row), entry.Quantity.InexactFloat64())
		f.SetCellValue(entriesSheet, fmt.Sprintf("F%d", row), entry.UnitPrice.InexactFloat64())
		f.SetCellValue(entriesSheet, fmt.Sprintf("G%d", row), entry.DiscountPercentage.InexactFloat64())
		f.SetCellValue(entriesSheet, fmt.Sprintf("H%d", row), entry.TotalAmount.InexactFloat64())
		f.SetCellValue(entriesSheet, fmt.Sprintf("I%d", row), string(entry.DistributionType))
		f.SetCellValue(entriesSheet, fmt.Sprintf("J%d", row), string(entry.Status))
	}

	varianceSheet := "Variação Mensal"
	if _, err := f.NewSheet(varianceSheet); err != nil {
		return nil, NewReportError(ErrExportFailed, apiErrors.ErrInternalServer, "Falha ao criar aba de variação")
	}

	varianceHeaders := []string{"Mês", "Forecast", "Orçamento", "Variação", "Entradas"}
	for i, header := range varianceHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(varianceSheet, cell, header)
	}

	for i, row := range summary.MonthlyBreakdown {
		line := i + 2
		f.SetCellValue(varianceSheet, fmt.Sprintf("A%d", line), domain.MonthNames[row.Month])
		f.SetCellValue(varianceSheet, fmt.Sprintf("B%d", line), row.TotalAmount.InexactFloat64())
		f.SetCellValue(varianceSheet, fmt.Sprintf("C%d", line), row.BudgetAmount.InexactFloat64())
		f.SetCellValue(varianceSheet, fmt.Sprintf("D%d", line), row.Variance.InexactFloat64())
		f.SetCellValue(varianceSheet, fmt.Sprintf("E%d", line), row.EntryCount)
	}

	buffer := new(bytes.Buffer)
	if err := f.Write(buffer); err != nil {
		logrus.Error("Error writing budget report spreadsheet:", err)
		return nil, NewReportError(ErrExportFailed, apiErrors.ErrInternalServer, "Falha ao gerar a planilha do relatório")
	}

	return buffer.Bytes(), nil
}
