package reporting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stmbudget/sales-planning-api/infrastructure/cache"
	"github.com/stmbudget/sales-planning-api/infrastructure/repository"
	"github.com/stmbudget/sales-planning-api/internal/config"
	"github.com/stmbudget/sales-planning-api/internal/domain"
	"github.com/stmbudget/sales-planning-api/internal/usecases/authorizing"
	"github.com/stmbudget/sales-planning-api/pkg/apiErrors"
	"github.com/stmbudget/sales-planning-api/pkg/money"
)

const topEntitiesLimit = 5

type ReportingService interface {
	VarianceAnalysis(ctx context.Context, actor domain.Actor, year int, filter domain.ForecastFilter) (*domain.VarianceAnalysis, error)
	BudgetSummary(ctx context.Context, actor domain.Actor, year int, filter domain.BudgetFilter) (*domain.BudgetSummary, error)
	ForecastSummary(ctx context.Context, actor domain.Actor, year int, filter domain.ForecastFilter) (*domain.ForecastSummary, error)
	MonthlyBudgetDetail(ctx context.Context, actor domain.Actor, year, month int) (*domain.MonthlyBudgetDetail, error)
	MonthlyForecastDetail(ctx context.Context, actor domain.Actor, year, month int) (*domain.MonthlyForecastDetail, error)
	ExportBudgetReport(ctx context.Context, actor domain.Actor, year int) ([]byte, error)
}

type Service struct {
	budgetRepository   repository.BudgetEntryRepository
	forecastRepository repository.ForecastEntryRepository
	customerRepository repository.CustomerRepository
	itemRepository     repository.ItemRepository
	cache              cache.Cache
	summaryTTL         time.Duration
}

func NewService(
	budgetRepository repository.BudgetEntryRepository,
	forecastRepository repository.ForecastEntryRepository,
	customerRepository repository.CustomerRepository,
	itemRepository repository.ItemRepository,
	cacheClient cache.Cache,
	cfg config.CacheTTL,
) ReportingService {
	return &Service{
		budgetRepository:   budgetRepository,
		forecastRepository: forecastRepository,
		customerRepository: customerRepository,
		itemRepository:     itemRepository,
		cache:              cacheClient,
		summaryTTL:         time.Duration(cfg.SummaryTTLSeconds) * time.Second,
	}
}

// VarianceAnalysis agrega forecast x orçamento do ano considerando só a
// versão vigente de cada célula. O score de acurácia penaliza o desvio
// absoluto e nunca fica negativo; orçamento zero devolve score zero.
func (s *Service) VarianceAnalysis(ctx context.Context, actor domain.Actor, year int, filter domain.ForecastFilter) (*domain.VarianceAnalysis, error) {
	if year == 0 {
		return nil, NewReportError(ErrInvalidYear, apiErrors.ErrMissingRequiredData, "Informe o ano da análise")
	}

	key := cache.VarianceAnalysisKey(year, scopeKey(actor, filterKey(filter)))

	cached := &domain.VarianceAnalysis{}
	if s.cache.Get(ctx, key, cached) {
		return cached, nil
	}

	filter.Year = &year
	entries, err := s.forecastRepository.ListLatest(filter, authorizing.ScopeFilter(actor))
	if err != nil {
		logrus.Error("Error listing latest forecast entries on the repository:", err)
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar entradas de forecast")
	}

	analysis := &domain.VarianceAnalysis{
		Period:       fmt.Sprintf("%d", year),
		TotalEntries: len(entries),
	}

	sumVariancePct := decimal.Zero
	sumConfidence := decimal.Zero
	for _, entry := range entries {
		analysis.TotalForecastAmount = analysis.TotalForecastAmount.Add(entry.ForecastedAmount)
		analysis.TotalBudgetAmount = analysis.TotalBudgetAmount.Add(entry.BudgetAmount)
		analysis.TotalVariance = analysis.TotalVariance.Add(entry.AmountVariance)
		sumVariancePct = sumVariancePct.Add(entry.AmountVariancePercentage)
		sumConfidence = sumConfidence.Add(decimal.NewFromInt(int64(entry.ConfidenceLevel)))

		if entry.AmountVariance.GreaterThan(decimal.Zero) {
			analysis.PositiveVariances++
		} else if entry.AmountVariance.LessThan(decimal.Zero) {
			analysis.NegativeVariances++
		}
	}

	if len(entries) > 0 {
		count := decimal.NewFromInt(int64(len(entries)))
		analysis.AvgVariancePercentage = sumVariancePct.Div(count).Round(money.RatePlaces)
		analysis.AvgConfidence = sumConfidence.Div(count).Round(money.MoneyPlaces)
	}

	analysis.AccuracyScore = money.AccuracyScore(analysis.TotalForecastAmount, analysis.TotalBudgetAmount)

	s.cache.Set(ctx, key, analysis, s.summaryTTL)

	return analysis, nil
}

// BudgetSummary agrega as estatísticas anuais de orçamento com
// detalhamento mensal e percentuais de aprovado/rascunho
func (s *Service) BudgetSummary(ctx context.Context, actor domain.Actor, year int, filter domain.BudgetFilter) (*domain.BudgetSummary, error) {
	if year == 0 {
		return nil, NewReportError(ErrInvalidYear, apiErrors.ErrMissingRequiredData, "Informe o ano do sumário")
	}

	key := cache.BudgetSummaryKey(year, scopeKey(actor, budgetFilterKey(filter)))

	cached := &domain.BudgetSummary{}
	if s.cache.Get(ctx, key, cached) {
		return cached, nil
	}

	entries, err := s.budgetRepository.ListForYear(year, filter, authorizing.ScopeFilter(actor))
	if err != nil {
		logrus.Error("Error listing budget entries on the repository:", err)
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar entradas de orçamento")
	}

	summary := &domain.BudgetSummary{
		Year:       year,
		EntryCount: len(entries),
	}

	months := make(map[int]*domain.MonthlyBreakdownRow)
	sumUnitPrice := decimal.Zero
	for _, entry := range entries {
		summary.TotalAmount = summary.TotalAmount.Add(entry.TotalAmount)
		summary.TotalQuantity = summary.TotalQuantity.Add(entry.Quantity)
		sumUnitPrice = sumUnitPrice.Add(entry.UnitPrice)

		switch entry.Status {
		case domain.StatusApproved:
			summary.ApprovedAmount = summary.ApprovedAmount.Add(entry.TotalAmount)
		case domain.StatusDraft:
			summary.DraftAmount = summary.DraftAmount.Add(entry.TotalAmount)
		}

		row, ok := months[entry.Month]
		if !ok {
			row = &domain.MonthlyBreakdownRow{Month: entry.Month}
			months[entry.Month] = row
		}
		row.TotalAmount = row.TotalAmount.Add(entry.TotalAmount)
		row.TotalQuantity = row.TotalQuantity.Add(entry.Quantity)
		row.EntryCount++
	}

	if len(entries) > 0 {
		count := decimal.NewFromInt(int64(len(entries)))
		summary.AvgUnitPrice = sumUnitPrice.Div(count).Round(money.MoneyPlaces)
	}

	if !summary.TotalAmount.IsZero() {
		summary.ApprovedPercentage = money.VariancePercentage(summary.ApprovedAmount, summary.TotalAmount)
		summary.DraftPercentage = money.VariancePercentage(summary.DraftAmount, summary.TotalAmount)
	}

	summary.MonthlyBreakdown = sortedBreakdown(months)

	s.cache.Set(ctx, key, summary, s.summaryTTL)

	return summary, nil
}

// ForecastSummary agrega as estatísticas anuais de forecast (versões vigentes)
func (s *Service) ForecastSummary(ctx context.Context, actor domain.Actor, year int, filter domain.ForecastFilter) (*domain.ForecastSummary, error) {
	if year == 0 {
		return nil, NewReportError(ErrInvalidYear, apiErrors.ErrMissingRequiredData, "Informe o ano do sumário")
	}

	key := cache.ForecastSummaryKey(year, scopeKey(actor, filterKey(filter)))

	cached := &domain.ForecastSummary{}
	if s.cache.Get(ctx, key, cached) {
		return cached, nil
	}

	filter.Year = &year
	entries, err := s.forecastRepository.ListLatest(filter, authorizing.ScopeFilter(actor))
	if err != nil {
		logrus.Error("Error listing latest forecast entries on the repository:", err)
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar entradas de forecast")
	}

	summary := &domain.ForecastSummary{
		Year:       year,
		EntryCount: len(entries),
	}

	months := make(map[int]*domain.MonthlyBreakdownRow)
	sumConfidence := decimal.Zero
	for _, entry := range entries {
		summary.TotalAmount = summary.TotalAmount.Add(entry.ForecastedAmount)
		sumConfidence = sumConfidence.Add(decimal.NewFromInt(int64(entry.ConfidenceLevel)))

		switch entry.Status {
		case domain.StatusApproved:
			summary.ApprovedAmount = summary.ApprovedAmount.Add(entry.ForecastedAmount)
		case domain.StatusDraft:
			summary.DraftAmount = summary.DraftAmount.Add(entry.ForecastedAmount)
		}

		row, ok := months[entry.Month]
		if !ok {
			row = &domain.MonthlyBreakdownRow{Month: entry.Month}
			months[entry.Month] = row
		}
		row.TotalAmount = row.TotalAmount.Add(entry.ForecastedAmount)
		row.TotalQuantity = row.TotalQuantity.Add(entry.ForecastedQuantity)
		row.BudgetAmount = row.BudgetAmount.Add(entry.BudgetAmount)
		row.Variance = row.Variance.Add(entry.AmountVariance)
		row.EntryCount++
	}

	if len(entries) > 0 {
		count := decimal.NewFromInt(int64(len(entries)))
		summary.AvgConfidence = sumConfidence.Div(count).Round(money.MoneyPlaces)
	}

	summary.MonthlyBreakdown = sortedBreakdown(months)

	s.cache.Set(ctx, key, summary, s.summaryTTL)

	return summary, nil
}

// MonthlyBudgetDetail detalha um mês de orçamento com os cinco maiores
// itens e clientes por valor
func (s *Service) MonthlyBudgetDetail(ctx context.Context, actor domain.Actor, year, month int) (*domain.MonthlyBudgetDetail, error) {
	if month < 1 || month > 12 {
		return nil, NewReportError(ErrInvalidMonth, apiErrors.ErrInvalidRequest, "Mês deve estar entre 1 e 12")
	}

	key := cache.MonthlyBudgetKey(year, month, scopeKey(actor, ""))

	cached := &domain.MonthlyBudgetDetail{}
	if s.cache.Get(ctx, key, cached) {
		return cached, nil
	}

	filter := domain.BudgetFilter{Year: &year, Month: &month}
	entries, err := s.budgetRepository.List(filter, authorizing.ScopeFilter(actor))
	if err != nil {
		logrus.Error("Error listing budget entries on the repository:", err)
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar entradas de orçamento")
	}

	detail := &domain.MonthlyBudgetDetail{
		Month:      month,
		MonthName:  domain.MonthNames[month],
		EntryCount: len(entries),
	}

	itemTotals := make(map[string]decimal.Decimal)
	customerTotals := make(map[string]decimal.Decimal)
	for _, entry := range entries {
		detail.TotalAmount = detail.TotalAmount.Add(entry.TotalAmount)
		detail.TotalQuantity = detail.TotalQuantity.Add(entry.Quantity)
		itemTotals[entry.ItemID] = itemTotals[entry.ItemID].Add(entry.TotalAmount)
		customerTotals[entry.CustomerID] = customerTotals[entry.CustomerID].Add(entry.TotalAmount)
	}

	detail.TopItems = s.topItems(itemTotals)
	detail.TopCustomers = s.topCustomers(customerTotals)

	s.cache.Set(ctx, key, detail, s.summaryTTL)

	return detail, nil
}

// MonthlyForecastDetail detalha um mês de forecast (versões vigentes)
func (s *Service) MonthlyForecastDetail(ctx context.Context, actor domain.Actor, year, month int) (*domain.MonthlyForecastDetail, error) {
	if month < 1 || month > 12 {
		return nil, NewReportError(ErrInvalidMonth, apiErrors.ErrInvalidRequest, "Mês deve estar entre 1 e 12")
	}

	key := cache.MonthlyForecastKey(year, month, scopeKey(actor, ""))

	cached := &domain.MonthlyForecastDetail{}
	if s.cache.Get(ctx, key, cached) {
		return cached, nil
	}

	filter := domain.ForecastFilter{Year: &year, Month: &month}
	entries, err := s.forecastRepository.ListLatest(filter, authorizing.ScopeFilter(actor))
	if err != nil {
		logrus.Error("Error listing latest forecast entries on the repository:", err)
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar entradas de forecast")
	}

	detail := &domain.MonthlyForecastDetail{
		Month:      month,
		MonthName:  domain.MonthNames[month],
		EntryCount: len(entries),
	}

	sumConfidence := decimal.Zero
	for _, entry := range entries {
		detail.TotalForecast = detail.TotalForecast.Add(entry.ForecastedAmount)
		detail.TotalBudget = detail.TotalBudget.Add(entry.BudgetAmount)
		sumConfidence = sumConfidence.Add(decimal.NewFromInt(int64(entry.ConfidenceLevel)))
	}

	detail.Variance = money.Variance(detail.TotalForecast, detail.TotalBudget)
	detail.VariancePercentage = money.VariancePercentage(detail.Variance, detail.TotalBudget)

	if len(entries) > 0 {
		detail.AvgConfidence = sumConfidence.Div(decimal.NewFromInt(int64(len(entries)))).Round(money.MoneyPlaces)
	}

	s.cache.Set(ctx, key, detail, s.summaryTTL)

	return detail, nil
}

func (s *Service) topItems(totals map[string]decimal.Decimal) []domain.TopEntity {
	ids := topIDs(totals)
	if len(ids) == 0 {
		return []domain.TopEntity{}
	}

	items, err := s.itemRepository.GetByIDs(ids)
	if err != nil {
		logrus.Warn("Erro ao buscar itens do detalhamento mensal:", err)
		return []domain.TopEntity{}
	}

	names := make(map[string]*domain.Item, len(items))
	for _, item := range items {
		names[item.ID] = item
	}

	top := make([]domain.TopEntity, 0, len(ids))
	for _, id := range ids {
		entity := domain.TopEntity{TotalAmount: totals[id]}
		if item, ok := names[id]; ok {
			entity.Code = item.Code
			entity.Name = item.Name
		}
		top = append(top, entity)
	}

	return top
}

func (s *Service) topCustomers(totals map[string]decimal.Decimal) []domain.TopEntity {
	ids := topIDs(totals)

	top := make([]domain.TopEntity, 0, len(ids))
	for _, id := range ids {
		entity := domain.TopEntity{TotalAmount: totals[id]}

		customer, err := s.customerRepository.GetByID(id)
		if err != nil {
			logrus.Warn("Erro ao buscar cliente do detalhamento mensal:", err)
		} else if customer != nil {
			entity.Code = customer.Code
			entity.Name = customer.Name
		}

		top = append(top, entity)
	}

	return top
}

// topIDs ordena os IDs por valor decrescente e corta no limite
func topIDs(totals map[string]decimal.Decimal) []string {
	ids := make([]string, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		if totals[ids[i]].Equal(totals[ids[j]]) {
			return ids[i] < ids[j]
		}
		return totals[ids[i]].GreaterThan(totals[ids[j]])
	})

	if len(ids) > topEntitiesLimit {
		ids = ids[:topEntitiesLimit]
	}

	return ids
}

func sortedBreakdown(months map[int]*domain.MonthlyBreakdownRow) []domain.MonthlyBreakdownRow {
	breakdown := make([]domain.MonthlyBreakdownRow, 0, len(months))
	for _, row := range months {
		breakdown = append(breakdown, *row)
	}

	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Month < breakdown[j].Month
	})

	return breakdown
}

// scopeKey deriva a parcela da chave de cache que identifica o escopo do
// ator: resultados restritos por vendedor não podem vazar para quem vê tudo
func scopeKey(actor domain.Actor, filters string) string {
	scope := "all"
	if !actor.SeesAllEntries() {
		scope = fmt.Sprintf("sp%d", actor.UserID)
	}

	if filters == "" {
		return scope
	}

	return scope + ":" + filters
}

func filterKey(filter domain.ForecastFilter) string {
	key := ""
	if filter.CustomerID != nil {
		key += "c" + *filter.CustomerID
	}
	if filter.ItemID != nil {
		key += "i" + *filter.ItemID
	}
	if filter.SalespersonID != nil {
		key += fmt.Sprintf("s%d", *filter.SalespersonID)
	}
	if filter.ForecastType != nil {
		key += "t" + string(*filter.ForecastType)
	}
	return key
}

func budgetFilterKey(filter domain.BudgetFilter) string {
	key := ""
	if filter.CustomerID != nil {
		key += "c" + *filter.CustomerID
	}
	if filter.ItemID != nil {
		key += "i" + *filter.ItemID
	}
	if filter.SalespersonID != nil {
		key += fmt.Sprintf("s%d", *filter.SalespersonID)
	}
	if filter.Status != nil {
		key += "st" + string(*filter.Status)
	}
	return key
}
