package forecasting

import (
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
	manager     = domain.Actor{UserID: 2, RoleID: domain.RoleManager}
	salesperson = domain.Actor{UserID: 3, RoleID: domain.RoleSalesperson}

	testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService(t *testing.T) (*Service, *mocks.MockForecastEntryRepository, *mocks.MockBudgetEntryRepository, *mocks.MockCustomerRepository, *mocks.MockItemRepository) {
	ctrl := gomock.NewController(t)

	forecastRepo := mocks.NewMockForecastEntryRepository(ctrl)
	budgetRepo := mocks.NewMockBudgetEntryRepository(ctrl)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	itemRepo := mocks.NewMockItemRepository(ctrl)

	service := &Service{
		forecastRepository: forecastRepo,
		budgetRepository:   budgetRepo,
		customerRepository: customerRepo,
		itemRepository:     itemRepo,
		cache:              cache.NewNoopCache(),
		now:                func() time.Time { return testNow },
	}

	return service, forecastRepo, budgetRepo, customerRepo, itemRepo
}

func testCustomer() *domain.Customer {
	salespersonID := 9
	return &domain.Customer{
		ID:            "CUST01",
		Code:          "C-001",
		Name:          "Distribuidora Alfa",
		Status:        domain.CustomerActive,
		SalespersonID: &salespersonID,
		IsActive:      true,
	}
}

func TestCreateEntry(t *testing.T) {
	t.Run("CongelaOrcamentoECalculaVariacoes", func(t *testing.T) {
		service, forecastRepo, budgetRepo, customerRepo, _ := newTestService(t)

		customerRepo.EXPECT().GetByID("CUST01").Return(testCustomer(), nil)
		budgetRepo.EXPECT().GetByCell("CUST01", "ITEM01", 2025, 3).Return(&domain.BudgetEntry{
			ID:          "BUD01",
			Quantity:    d("100"),
			TotalAmount: d("10000"),
		}, nil)

		var created *domain.ForecastEntry
		forecastRepo.EXPECT().CreateVersioned(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *domain.ForecastEntry) error {
				created = entry
				return nil
			})

		entry, err := service.CreateEntry(context.Background(), salesperson, &domain.CreateForecastEntryRequest{
			CustomerID:         "CUST01",
			ItemID:             "ITEM01",
			Year:               2025,
			Month:              3,
			ForecastedQuantity: d("110"),
			ForecastedAmount:   d("11500"),
		})
		require.NoError(t, err)

		assert.Equal(t, d("10000").String(), created.BudgetAmount.String())
		assert.Equal(t, d("10").String(), entry.QuantityVariance.String())
		assert.Equal(t, d("1500").String(), entry.AmountVariance.String())
		assert.Equal(t, d("15").String(), entry.AmountVariancePercentage.String())
		assert.Equal(t, DefaultConfidenceLevel, entry.ConfidenceLevel)
		assert.Equal(t, domain.ForecastRealistic, entry.ForecastType)
		assert.True(t, entry.IsFavorableVariance())
		assert.Equal(t, domain.VarianceModerate, entry.VarianceCategory())
	})

	t.Run("SemOrcamentoVariacaoPercentualZero", func(t *testing.T) {
		service, forecastRepo, budgetRepo, customerRepo, _ := newTestService(t)

		customerRepo.EXPECT().GetByID("CUST01").Return(testCustomer(), nil)
		budgetRepo.EXPECT().GetByCell("CUST01", "ITEM01", 2025, 3).Return(nil, nil)
		forecastRepo.EXPECT().CreateVersioned(gomock.Any(), gomock.Any()).Return(nil)

		entry, err := service.CreateEntry(context.Background(), salesperson, &domain.CreateForecastEntryRequest{
			CustomerID:         "CUST01",
			ItemID:             "ITEM01",
			Year:               2025,
			Month:              3,
			ForecastedQuantity: d("110"),
			ForecastedAmount:   d("11500"),
		})
		require.NoError(t, err)

		assert.True(t, entry.AmountVariancePercentage.IsZero())
		assert.Equal(t, d("11500").String(), entry.AmountVariance.String())
	})

	t.Run("ValidacaoDeEntrada", func(t *testing.T) {
		service, _, _, _, _ := newTestService(t)

		confidence := 120
		tests := []struct {
			name    string
			request *domain.CreateForecastEntryRequest
			wantErr error
		}{
			{
				name:    "MesInvalido",
				request: &domain.CreateForecastEntryRequest{Month: 0},
				wantErr: ErrInvalidMonth,
			},
			{
				name: "QuantidadeNegativa",
				request: &domain.CreateForecastEntryRequest{
					Month: 1, ForecastedQuantity: d("-1"),
				},
				wantErr: ErrNegativeQuantity,
			},
			{
				name: "TipoDesconhecido",
				request: &domain.CreateForecastEntryRequest{
					Month: 1, ForecastType: "wishful",
				},
				wantErr: ErrInvalidType,
			},
			{
				name: "ConfiancaForaDoIntervalo",
				request: &domain.CreateForecastEntryRequest{
					Month: 1, ConfidenceLevel: &confidence,
				},
				wantErr: ErrInvalidConfidence,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateEntry(context.Background(), admin, tt.request)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})
}

func TestUpdateEntry(t *testing.T) {
	t.Run("RecalculaVariacoesSobreSnapshot", func(t *testing.T) {
		service, forecastRepo, _, _, _ := newTestService(t)

		forecastRepo.EXPECT().GetByID("FC01").Return(&domain.ForecastEntry{
			ID:               "FC01",
			Year:             2025,
			BudgetQuantity:   d("100"),
			BudgetAmount:     d("10000"),
			ForecastedAmount: d("11000"),
			Status:           domain.StatusDraft,
		}, nil)

		var updated *domain.ForecastEntry
		forecastRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(entry *domain.ForecastEntry) error {
			updated = entry
			return nil
		})

		newAmount := d("14000")
		_, err := service.UpdateEntry(context.Background(), salesperson, &domain.UpdateForecastEntryRequest{
			ID:               "FC01",
			ForecastedAmount: &newAmount,
		})
		require.NoError(t, err)

		assert.Equal(t, d("4000").String(), updated.AmountVariance.String())
		assert.Equal(t, d("40").String(), updated.AmountVariancePercentage.String())
		assert.Equal(t, domain.VarianceMajor, updated.VarianceCategory())
	})

	t.Run("AprovadaImutavelParaNaoAdmin", func(t *testing.T) {
		service, forecastRepo, _, _, _ := newTestService(t)

		forecastRepo.EXPECT().GetByID("FC01").Return(&domain.ForecastEntry{
			ID:     "FC01",
			Status: domain.StatusApproved,
		}, nil)

		amount := d("1")
		_, err := service.UpdateEntry(context.Background(), manager, &domain.UpdateForecastEntryRequest{
			ID:               "FC01",
			ForecastedAmount: &amount,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrApprovedImmutable)
	})

	t.Run("AprovarCarimbaAprovadorEHorario", func(t *testing.T) {
		service, forecastRepo, _, _, _ := newTestService(t)

		forecastRepo.EXPECT().GetByID("FC01").Return(&domain.ForecastEntry{
			ID:     "FC01",
			Year:   2025,
			Status: domain.StatusSubmitted,
		}, nil)

		var updated *domain.ForecastEntry
		forecastRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(entry *domain.ForecastEntry) error {
			updated = entry
			return nil
		})

		status := domain.StatusApproved
		_, err := service.UpdateEntry(context.Background(), admin, &domain.UpdateForecastEntryRequest{
			ID:     "FC01",
			Status: &status,
		})
		require.NoError(t, err)

		require.NotNil(t, updated.ApprovedBy)
		require.NotNil(t, updated.ApprovedAt)
		assert.Equal(t, admin.UserID, *updated.ApprovedBy)
	})
}

func TestBulkCreate(t *testing.T) {
	t.Run("CriaPorMesEItemComQuantidadeDerivada", func(t *testing.T) {
		service, forecastRepo, budgetRepo, customerRepo, itemRepo := newTestService(t)

		itemRepo.EXPECT().GetByIDs([]string{"ITEM01"}).Return([]*domain.Item{
			{ID: "ITEM01", Code: "I-001", Name: "Produto", UnitPrice: d("50"), IsActive: true},
		}, nil)
		// O cliente é validado no lote e em cada criação de célula
		customerRepo.EXPECT().GetByID("CUST01").Return(testCustomer(), nil).Times(3)
		budgetRepo.EXPECT().GetByCell("CUST01", "ITEM01", 2025, gomock.Any()).Return(nil, nil).Times(2)

		created := make([]*domain.ForecastEntry, 0)
		forecastRepo.EXPECT().CreateVersioned(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *domain.ForecastEntry) error {
				created = append(created, entry)
				return nil
			}).Times(2)

		response, err := service.BulkCreate(context.Background(), manager, &domain.BulkCreateForecastRequest{
			CustomerID: "CUST01",
			ItemIDs:    []string{"ITEM01"},
			Year:       2025,
			ForecastData: []domain.MonthForecastData{
				{Month: 1, ForecastedAmount: d("5000")},
				{Month: 2, ForecastedAmount: d("2500"), ForecastType: domain.ForecastOptimistic},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, response.EntriesCreated)

		// quantidade = valor / preço unitário
		assert.Equal(t, d("100").String(), created[0].ForecastedQuantity.String())
		assert.Equal(t, d("50").String(), created[1].ForecastedQuantity.String())
		assert.Equal(t, domain.ForecastRealistic, created[0].ForecastType)
		assert.Equal(t, domain.ForecastOptimistic, created[1].ForecastType)
	})

	t.Run("MesInvalidoFalhaAntesDeCriar", func(t *testing.T) {
		service, _, _, _, _ := newTestService(t)

		_, err := service.BulkCreate(context.Background(), manager, &domain.BulkCreateForecastRequest{
			CustomerID:   "CUST01",
			ItemIDs:      []string{"ITEM01"},
			Year:         2025,
			ForecastData: []domain.MonthForecastData{{Month: 13, ForecastedAmount: d("1")}},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidMonth)
	})
}

// prefixRecorder guarda os prefixos invalidados para inspeção nos testes
type prefixRecorder struct {
	prefixes []string
}

func (r *prefixRecorder) Get(_ context.Context, _ string, _ any) bool             { return false }
func (r *prefixRecorder) Set(_ context.Context, _ string, _ any, _ time.Duration) {}
func (r *prefixRecorder) Delete(_ context.Context, _ ...string)                   {}
func (r *prefixRecorder) DeleteByPrefix(_ context.Context, prefix string) {
	r.prefixes = append(r.prefixes, prefix)
}

func TestApproveEntries(t *testing.T) {
	t.Run("FiltraSubmetidasERetornaContagem", func(t *testing.T) {
		service, forecastRepo, _, _, _ := newTestService(t)

		ids := []string{"FC01", "FC02", "FC03"}
		forecastRepo.EXPECT().ApproveSubmitted(ids, admin.UserID, testNow).Return(int64(2), nil)
		forecastRepo.EXPECT().GetByID("FC01").Return(&domain.ForecastEntry{ID: "FC01", Year: 2025}, nil)
		forecastRepo.EXPECT().GetByID("FC02").Return(&domain.ForecastEntry{ID: "FC02", Year: 2025}, nil)
		forecastRepo.EXPECT().GetByID("FC03").Return(&domain.ForecastEntry{ID: "FC03", Year: 2025}, nil)

		response, err := service.ApproveEntries(context.Background(), admin, &domain.ApproveEntriesRequest{
			EntryIDs: ids,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, response.ApprovedCount)
	})

	t.Run("LoteComAnosDistintosInvalidaCadaAno", func(t *testing.T) {
		service, forecastRepo, _, _, _ := newTestService(t)

		recorder := &prefixRecorder{}
		service.cache = recorder

		ids := []string{"FC2025", "FC2026"}
		forecastRepo.EXPECT().ApproveSubmitted(ids, admin.UserID, testNow).Return(int64(2), nil)
		forecastRepo.EXPECT().GetByID("FC2025").Return(&domain.ForecastEntry{ID: "FC2025", Year: 2025}, nil)
		forecastRepo.EXPECT().GetByID("FC2026").Return(&domain.ForecastEntry{ID: "FC2026", Year: 2026}, nil)

		_, err := service.ApproveEntries(context.Background(), admin, &domain.ApproveEntriesRequest{
			EntryIDs: ids,
		})
		require.NoError(t, err)

		assert.Contains(t, recorder.prefixes, cache.ForecastPrefix(2025))
		assert.Contains(t, recorder.prefixes, cache.ForecastPrefix(2026))
	})

	t.Run("VendedorNaoAprova", func(t *testing.T) {
		service, _, _, _, _ := newTestService(t)

		_, err := service.ApproveEntries(context.Background(), salesperson, &domain.ApproveEntriesRequest{
			EntryIDs: []string{"FC01"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrApprovalForbidden)
	})
}
