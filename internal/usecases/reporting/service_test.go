package reporting

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stmbudget/sales-planning-api/infrastructure/cache"
	"github.com/stmbudget/sales-planning-api/infrastructure/repository/mocks"
	"github.com/stmbudget/sales-planning-api/internal/domain"
)

var (
	admin       = domain.Actor{UserID: 1, RoleID: domain.RoleAdmin}
	salesperson = domain.Actor{UserID: 3, RoleID: domain.RoleSalesperson}
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService(t *testing.T) (*Service, *mocks.MockBudgetEntryRepository, *mocks.MockForecastEntryRepository, *mocks.MockCustomerRepository, *mocks.MockItemRepository) {
	ctrl := gomock.NewController(t)

	budgetRepo := mocks.NewMockBudgetEntryRepository(ctrl)
	forecastRepo := mocks.NewMockForecastEntryRepository(ctrl)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	itemRepo := mocks.NewMockItemRepository(ctrl)

	service := &Service{
		budgetRepository:   budgetRepo,
		forecastRepository: forecastRepo,
		customerRepository: customerRepo,
		itemRepository:     itemRepo,
		cache:              cache.NewNoopCache(),
		summaryTTL:         time.Minute,
	}

	return service, budgetRepo, forecastRepo, customerRepo, itemRepo
}

func forecastEntry(forecasted, budget, variance, variancePct string, confidence int) *domain.ForecastEntry {
	return &domain.ForecastEntry{
		Month:                    1,
		ForecastedAmount:         d(forecasted),
		BudgetAmount:             d(budget),
		AmountVariance:           d(variance),
		AmountVariancePercentage: d(variancePct),
		ConfidenceLevel:          confidence,
		IsLatest:                 true,
	}
}

func TestVarianceAnalysis(t *testing.T) {
	t.Run("AgregaVariacoesDoAno", func(t *testing.T) {
		service, _, forecastRepo, _, _ := newTestService(t)

		forecastRepo.EXPECT().ListLatest(gomock.Any(), gomock.Any()).Return([]*domain.ForecastEntry{
			forecastEntry("11500", "10000", "1500", "15", 80),
			forecastEntry("4500", "5000", "-500", "-10", 60),
		}, nil)

		analysis, err := service.VarianceAnalysis(context.Background(), admin, 2025, domain.ForecastFilter{})
		require.NoError(t, err)

		assert.Equal(t, "2025", analysis.Period)
		assert.Equal(t, 2, analysis.TotalEntries)
		assert.Equal(t, "16000", analysis.TotalForecastAmount.String())
		assert.Equal(t, "15000", analysis.TotalBudgetAmount.String())
		assert.Equal(t, "1000", analysis.TotalVariance.String())
		assert.Equal(t, 1, analysis.PositiveVariances)
		assert.Equal(t, 1, analysis.NegativeVariances)
		assert.Equal(t, "2.5", analysis.AvgVariancePercentage.String())
		assert.Equal(t, "70", analysis.AvgConfidence.String())
		// 100 - |1000|/15000*100 = 93.33
		assert.Equal(t, "93.33", analysis.AccuracyScore.String())
	})

	t.Run("AcuraciaNuncaFicaNegativa", func(t *testing.T) {
		service, _, forecastRepo, _, _ := newTestService(t)

		forecastRepo.EXPECT().ListLatest(gomock.Any(), gomock.Any()).Return([]*domain.ForecastEntry{
			forecastEntry("250", "100", "150", "150", 50),
		}, nil)

		analysis, err := service.VarianceAnalysis(context.Background(), admin, 2025, domain.ForecastFilter{})
		require.NoError(t, err)

		assert.True(t, analysis.AccuracyScore.IsZero())
	})

	t.Run("OrcamentoZeroDevolveAcuraciaZero", func(t *testing.T) {
		service, _, forecastRepo, _, _ := newTestService(t)

		forecastRepo.EXPECT().ListLatest(gomock.Any(), gomock.Any()).Return([]*domain.ForecastEntry{
			forecastEntry("5000", "0", "5000", "0", 70),
		}, nil)

		analysis, err := service.VarianceAnalysis(context.Background(), admin, 2025, domain.ForecastFilter{})
		require.NoError(t, err)

		assert.True(t, analysis.AccuracyScore.IsZero())
	})

	t.Run("AnoObrigatorio", func(t *testing.T) {
		service, _, _, _, _ := newTestService(t)

		_, err := service.VarianceAnalysis(context.Background(), admin, 0, domain.ForecastFilter{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidYear)
	})
}

func TestBudgetSummary(t *testing.T) {
	t.Run("AgregaTotaisEDetalhamentoMensal", func(t *testing.T) {
		service, budgetRepo, _, _, _ := newTestService(t)

		budgetRepo.EXPECT().ListForYear(2025, gomock.Any(), gomock.Any()).Return([]*domain.BudgetEntry{
			{Month: 1, Quantity: d("10"), UnitPrice: d("100"), TotalAmount: d("1000"), Status: domain.StatusApproved},
			{Month: 1, Quantity: d("20"), UnitPrice: d("50"), TotalAmount: d("1000"), Status: domain.StatusDraft},
			{Month: 2, Quantity: d("20"), UnitPrice: d("100"), TotalAmount: d("2000"), Status: domain.StatusSubmitted},
		}, nil)

		summary, err := service.BudgetSummary(context.Background(), admin, 2025, domain.BudgetFilter{})
		require.NoError(t, err)

		assert.Equal(t, "4000", summary.TotalAmount.String())
		assert.Equal(t, "50", summary.TotalQuantity.String())
		assert.Equal(t, 3, summary.EntryCount)
		// (100 + 50 + 100) / 3 = 83.33
		assert.Equal(t, "83.33", summary.AvgUnitPrice.String())
		assert.Equal(t, "1000", summary.ApprovedAmount.String())
		assert.Equal(t, "25", summary.ApprovedPercentage.String())
		assert.Equal(t, "25", summary.DraftPercentage.String())

		require.Len(t, summary.MonthlyBreakdown, 2)
		assert.Equal(t, 1, summary.MonthlyBreakdown[0].Month)
		assert.Equal(t, "2000", summary.MonthlyBreakdown[0].TotalAmount.String())
		assert.Equal(t, 2, summary.MonthlyBreakdown[0].EntryCount)
		assert.Equal(t, 2, summary.MonthlyBreakdown[1].Month)
		assert.Equal(t, "2000", summary.MonthlyBreakdown[1].TotalAmount.String())
	})

	t.Run("AnoSemEntradasDevolveSumarioVazio", func(t *testing.T) {
		service, budgetRepo, _, _, _ := newTestService(t)

		budgetRepo.EXPECT().ListForYear(2030, gomock.Any(), gomock.Any()).
			Return([]*domain.BudgetEntry{}, nil)

		summary, err := service.BudgetSummary(context.Background(), salesperson, 2030, domain.BudgetFilter{})
		require.NoError(t, err)

		assert.Equal(t, 0, summary.EntryCount)
		assert.True(t, summary.TotalAmount.IsZero())
		assert.True(t, summary.AvgUnitPrice.IsZero())
		assert.Empty(t, summary.MonthlyBreakdown)
	})
}

func TestForecastSummary(t *testing.T) {
	t.Run("AgregaSomenteVersoesVigentes", func(t *testing.T) {
		service, _, forecastRepo, _, _ := newTestService(t)

		approved := forecastEntry("6000", "5000", "1000", "20", 80)
		approved.Status = domain.StatusApproved
		draft := forecastEntry("4000", "5000", "-1000", "-20", 60)
		draft.Status = domain.StatusDraft
		draft.Month = 2

		forecastRepo.EXPECT().ListLatest(gomock.Any(), gomock.Any()).
			Return([]*domain.ForecastEntry{approved, draft}, nil)

		summary, err := service.ForecastSummary(context.Background(), admin, 2025, domain.ForecastFilter{})
		require.NoError(t, err)

		assert.Equal(t, "10000", summary.TotalAmount.String())
		assert.Equal(t, 2, summary.EntryCount)
		assert.Equal(t, "70", summary.AvgConfidence.String())
		assert.Equal(t, "6000", summary.ApprovedAmount.String())
		assert.Equal(t, "4000", summary.DraftAmount.String())

		require.Len(t, summary.MonthlyBreakdown, 2)
		assert.Equal(t, "5000", summary.MonthlyBreakdown[0].BudgetAmount.String())
		assert.Equal(t, "1000", summary.MonthlyBreakdown[0].Variance.String())
	})
}

func TestMonthlyBudgetDetail(t *testing.T) {
	t.Run("DestacaMaioresItensEClientes", func(t *testing.T) {
		service, budgetRepo, _, customerRepo, itemRepo := newTestService(t)

		budgetRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*domain.BudgetEntry{
			{CustomerID: "CUST01", ItemID: "ITEM01", Month: 3, Quantity: d("30"), TotalAmount: d("3000")},
			{CustomerID: "CUST02", ItemID: "ITEM02", Month: 3, Quantity: d("10"), TotalAmount: d("1000")},
		}, nil)

		itemRepo.EXPECT().GetByIDs([]string{"ITEM01", "ITEM02"}).Return([]*domain.Item{
			{ID: "ITEM01", Code: "I-001", Name: "Produto Alfa"},
			{ID: "ITEM02", Code: "I-002", Name: "Produto Beta"},
		}, nil)
		customerRepo.EXPECT().GetByID("CUST01").Return(&domain.Customer{ID: "CUST01", Code: "C-001", Name: "Distribuidora Alfa"}, nil)
		customerRepo.EXPECT().GetByID("CUST02").Return(&domain.Customer{ID: "CUST02", Code: "C-002", Name: "Atacado Beta"}, nil)

		detail, err := service.MonthlyBudgetDetail(context.Background(), admin, 2025, 3)
		require.NoError(t, err)

		assert.Equal(t, "March", detail.MonthName)
		assert.Equal(t, "4000", detail.TotalAmount.String())
		assert.Equal(t, "40", detail.TotalQuantity.String())

		require.Len(t, detail.TopItems, 2)
		assert.Equal(t, "Produto Alfa", detail.TopItems[0].Name)
		assert.Equal(t, "3000", detail.TopItems[0].TotalAmount.String())

		require.Len(t, detail.TopCustomers, 2)
		assert.Equal(t, "Distribuidora Alfa", detail.TopCustomers[0].Name)
	})

	t.Run("MesInvalidoFalha", func(t *testing.T) {
		service, _, _, _, _ := newTestService(t)

		_, err := service.MonthlyBudgetDetail(context.Background(), admin, 2025, 13)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidMonth)
	})
}

func TestMonthlyForecastDetail(t *testing.T) {
	t.Run("CalculaVariacaoSobreOrcamento", func(t *testing.T) {
		service, _, forecastRepo, _, _ := newTestService(t)

		forecastRepo.EXPECT().ListLatest(gomock.Any(), gomock.Any()).Return([]*domain.ForecastEntry{
			forecastEntry("6000", "5000", "1000", "20", 80),
			forecastEntry("4000", "5000", "-1000", "-20", 60),
		}, nil)

		detail, err := service.MonthlyForecastDetail(context.Background(), admin, 2025, 1)
		require.NoError(t, err)

		assert.Equal(t, "10000", detail.TotalForecast.String())
		assert.Equal(t, "10000", detail.TotalBudget.String())
		assert.True(t, detail.Variance.IsZero())
		assert.True(t, detail.VariancePercentage.IsZero())
		assert.Equal(t, "70", detail.AvgConfidence.String())
	})
}

func TestExportBudgetReport(t *testing.T) {
	t.Run("GeraPlanilhaComEntradasEVariacao", func(t *testing.T) {
		service, budgetRepo, forecastRepo, _, _ := newTestService(t)

		budgetRepo.EXPECT().ListForYear(2025, gomock.Any(), gomock.Any()).Return([]*domain.BudgetEntry{
			{
				CustomerID:         "CUST01",
				ItemID:             "ITEM01",
				Year:               2025,
				Month:              1,
				Quantity:           d("10"),
				UnitPrice:          d("100"),
				DiscountPercentage: d("10"),
				TotalAmount:        d("900"),
				DistributionType:   domain.DistributionManual,
				Status:             domain.StatusApproved,
			},
		}, nil)
		forecastRepo.EXPECT().ListLatest(gomock.Any(), gomock.Any()).Return([]*domain.ForecastEntry{
			forecastEntry("950", "900", "50", "5.5556", 80),
		}, nil)

		data, err := service.ExportBudgetReport(context.Background(), admin, 2025)
		require.NoError(t, err)

		// planilha xlsx é um zip, começa com a assinatura PK
		assert.True(t, bytes.HasPrefix(data, []byte("PK")))
	})

	t.Run("AnoObrigatorio", func(t *testing.T) {
		service, _, _, _, _ := newTestService(t)

		_, err := service.ExportBudgetReport(context.Background(), admin, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidYear)
	})
}
