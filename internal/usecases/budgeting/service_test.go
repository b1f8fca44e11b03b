package budgeting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stmbudget/sales-planning-api/infrastructure/cache"
	"github.com/stmbudget/sales-planning-api/infrastructure/repository"
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

func newTestService(t *testing.T) (*Service, *mocks.MockBudgetEntryRepository, *mocks.MockCustomerRepository, *mocks.MockItemRepository) {
	ctrl := gomock.NewController(t)

	budgetRepo := mocks.NewMockBudgetEntryRepository(ctrl)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	itemRepo := mocks.NewMockItemRepository(ctrl)

	service := &Service{
		budgetRepository:   budgetRepo,
		customerRepository: customerRepo,
		itemRepository:     itemRepo,
		cache:              cache.NewNoopCache(),
		now:                func() time.Time { return testNow },
	}

	return service, budgetRepo, customerRepo, itemRepo
}

func testCustomer(salespersonID *int) *domain.Customer {
	return &domain.Customer{
		ID:            "CUST01",
		Code:          "C-001",
		Name:          "Distribuidora Alfa",
		Status:        domain.CustomerActive,
		SalespersonID: salespersonID,
		IsActive:      true,
	}
}

func testItem(price string) *domain.Item {
	return &domain.Item{
		ID:        "ITEM01",
		Code:      "I-001",
		Name:      "Produto Padrão",
		UnitPrice: d(price),
		IsActive:  true,
	}
}

func TestCreateEntry(t *testing.T) {
	t.Run("CriaEntradaComTotalRecalculado", func(t *testing.T) {
		service, budgetRepo, customerRepo, itemRepo := newTestService(t)

		customerRepo.EXPECT().GetByID("CUST01").Return(testCustomer(intPtr(9)), nil)
		itemRepo.EXPECT().GetByID("ITEM01").Return(testItem("100"), nil)
		budgetRepo.EXPECT().GetByCell("CUST01", "ITEM01", 2025, 3).Return(nil, nil)

		var created *domain.BudgetEntry
		budgetRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *domain.BudgetEntry) error {
			created = entry
			return nil
		})

		entry, err := service.CreateEntry(context.Background(), salesperson, &domain.CreateBudgetEntryRequest{
			CustomerID:         "CUST01",
			ItemID:             "ITEM01",
			Year:               2025,
			Month:              3,
			Quantity:           d("10"),
			UnitPrice:          d("100"),
			DiscountPercentage: d("10"),
		})
		require.NoError(t, err)

		// total = 10 x 100 - 10% = 900
		assert.Equal(t, d("900").String(), entry.TotalAmount.String())
		assert.Equal(t, domain.StatusDraft, entry.Status)
		assert.Equal(t, 9, *created.SalespersonID)
		assert.Equal(t, 3, *created.CreatedBy)
	})

	t.Run("CelulaDuplicadaRetornaConflito", func(t *testing.T) {
		service, budgetRepo, customerRepo, itemRepo := newTestService(t)

		customerRepo.EXPECT().GetByID("CUST01").Return(testCustomer(nil), nil)
		itemRepo.EXPECT().GetByID("ITEM01").Return(testItem("100"), nil)
		budgetRepo.EXPECT().GetByCell("CUST01", "ITEM01", 2025, 3).
			Return(&domain.BudgetEntry{ID: "EXIST1"}, nil)

		_, err := service.CreateEntry(context.Background(), admin, &domain.CreateBudgetEntryRequest{
			CustomerID: "CUST01",
			ItemID:     "ITEM01",
			Year:       2025,
			Month:      3,
			Quantity:   d("1"),
			UnitPrice:  d("1"),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateCell)
	})

	t.Run("CorridaDeInsertViraConflito", func(t *testing.T) {
		service, budgetRepo, customerRepo, itemRepo := newTestService(t)

		customerRepo.EXPECT().GetByID("CUST01").Return(testCustomer(nil), nil)
		itemRepo.EXPECT().GetByID("ITEM01").Return(testItem("100"), nil)
		budgetRepo.EXPECT().GetByCell("CUST01", "ITEM01", 2025, 3).Return(nil, nil)
		budgetRepo.EXPECT().Create(gomock.Any()).Return(repository.ErrUniqueViolation)

		_, err := service.CreateEntry(context.Background(), admin, &domain.CreateBudgetEntryRequest{
			CustomerID: "CUST01",
			ItemID:     "ITEM01",
			Year:       2025,
			Month:      3,
			Quantity:   d("1"),
			UnitPrice:  d("1"),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateCell)
	})

	t.Run("ValidacaoDeEntrada", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		tests := []struct {
			name    string
			request *domain.CreateBudgetEntryRequest
			wantErr error
		}{
			{
				name:    "MesForaDoIntervalo",
				request: &domain.CreateBudgetEntryRequest{Year: 2025, Month: 13},
				wantErr: ErrInvalidMonth,
			},
			{
				name:    "AnoNoPassado",
				request: &domain.CreateBudgetEntryRequest{Year: 2024, Month: 1},
				wantErr: ErrInvalidYear,
			},
			{
				name: "QuantidadeNegativa",
				request: &domain.CreateBudgetEntryRequest{
					Year: 2025, Month: 1, Quantity: d("-1"),
				},
				wantErr: ErrNegativeQuantity,
			},
			{
				name: "DescontoAcimaDe100",
				request: &domain.CreateBudgetEntryRequest{
					Year: 2025, Month: 1,
					Quantity: d("1"), UnitPrice: d("1"), DiscountPercentage: d("101"),
				},
				wantErr: ErrInvalidDiscount,
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
	t.Run("AprovadaImutavelParaNaoAdmin", func(t *testing.T) {
		service, budgetRepo, _, _ := newTestService(t)

		budgetRepo.EXPECT().GetByID("ENTRY1").Return(&domain.BudgetEntry{
			ID:     "ENTRY1",
			Status: domain.StatusApproved,
		}, nil)

		_, err := service.UpdateEntry(context.Background(), manager, &domain.UpdateBudgetEntryRequest{
			ID:       "ENTRY1",
			Quantity: decimalPtr(d("5")),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrApprovedImmutable)
	})

	t.Run("AdminAlteraAprovada", func(t *testing.T) {
		service, budgetRepo, _, _ := newTestService(t)

		budgetRepo.EXPECT().GetByID("ENTRY1").Return(&domain.BudgetEntry{
			ID:        "ENTRY1",
			Year:      2025,
			Quantity:  d("10"),
			UnitPrice: d("100"),
			Status:    domain.StatusApproved,
		}, nil)
		budgetRepo.EXPECT().Update(gomock.Any()).Return(nil)

		entry, err := service.UpdateEntry(context.Background(), admin, &domain.UpdateBudgetEntryRequest{
			ID:       "ENTRY1",
			Quantity: decimalPtr(d("5")),
		})
		require.NoError(t, err)
		assert.Equal(t, d("500").String(), entry.TotalAmount.String())
	})

	t.Run("AprovarCarimbaAprovadorEHorario", func(t *testing.T) {
		service, budgetRepo, _, _ := newTestService(t)

		budgetRepo.EXPECT().GetByID("ENTRY1").Return(&domain.BudgetEntry{
			ID:     "ENTRY1",
			Year:   2025,
			Status: domain.StatusSubmitted,
		}, nil)

		var updated *domain.BudgetEntry
		budgetRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(entry *domain.BudgetEntry) error {
			updated = entry
			return nil
		})

		status := domain.StatusApproved
		_, err := service.UpdateEntry(context.Background(), manager, &domain.UpdateBudgetEntryRequest{
			ID:     "ENTRY1",
			Status: &status,
		})
		require.NoError(t, err)

		require.NotNil(t, updated.ApprovedBy)
		require.NotNil(t, updated.ApprovedAt)
		assert.Equal(t, manager.UserID, *updated.ApprovedBy)
		assert.Equal(t, testNow, *updated.ApprovedAt)
		assert.Equal(t, domain.StatusApproved, updated.Status)
	})

	t.Run("VendedorNaoAprova", func(t *testing.T) {
		service, budgetRepo, _, _ := newTestService(t)

		budgetRepo.EXPECT().GetByID("ENTRY1").Return(&domain.BudgetEntry{
			ID:     "ENTRY1",
			Status: domain.StatusSubmitted,
		}, nil)

		status := domain.StatusApproved
		_, err := service.UpdateEntry(context.Background(), salesperson, &domain.UpdateBudgetEntryRequest{
			ID:     "ENTRY1",
			Status: &status,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrApprovalForbidden)
	})

	t.Run("RascunhoNaoPodeSerAprovadoDireto", func(t *testing.T) {
		service, budgetRepo, _, _ := newTestService(t)

		budgetRepo.EXPECT().GetByID("ENTRY1").Return(&domain.BudgetEntry{
			ID:     "ENTRY1",
			Status: domain.StatusDraft,
		}, nil)

		status := domain.StatusApproved
		_, err := service.UpdateEntry(context.Background(), admin, &domain.UpdateBudgetEntryRequest{
			ID:     "ENTRY1",
			Status: &status,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidStatusChange)
	})

	t.Run("EntradaInexistente", func(t *testing.T) {
		service, budgetRepo, _, _ := newTestService(t)

		budgetRepo.EXPECT().GetByID("MISSING").Return(nil, nil)

		_, err := service.UpdateEntry(context.Background(), admin, &domain.UpdateBudgetEntryRequest{ID: "MISSING"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})
}

func TestBulkCreate(t *testing.T) {
	t.Run("DistribuicaoSazonal", func(t *testing.T) {
		service, budgetRepo, customerRepo, itemRepo := newTestService(t)

		customerRepo.EXPECT().GetByID("CUST01").Return(testCustomer(intPtr(9)), nil)
		itemRepo.EXPECT().GetByIDs([]string{"ITEM01"}).Return([]*domain.Item{testItem("100")}, nil)

		var created []*domain.BudgetEntry
		budgetRepo.EXPECT().BulkCreate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entries []*domain.BudgetEntry) error {
				created = entries
				return nil
			})

		response, err := service.BulkCreate(context.Background(), manager, &domain.BulkCreateBudgetRequest{
			CustomerID:       "CUST01",
			ItemIDs:          []string{"ITEM01"},
			Year:             2025,
			TotalAmount:      d("12000"),
			DistributionType: domain.DistributionSeasonal,
		})
		require.NoError(t, err)
		assert.Equal(t, 12, response.EntriesCreated)
		require.Len(t, created, 12)

		// baseQuantity = 12000/100 = 120; janeiro 1.60, dezembro 0.60
		assert.Equal(t, d("192").String(), created[0].Quantity.String())
		assert.Equal(t, d("72").String(), created[11].Quantity.String())
		assert.True(t, created[0].Quantity.GreaterThan(created[11].Quantity))
		assert.Equal(t, d("1.60").String(), created[0].SeasonalMultiplier.String())
		assert.Equal(t, domain.StatusDraft, created[0].Status)
	})

	t.Run("DistribuicaoIgual", func(t *testing.T) {
		service, budgetRepo, customerRepo, itemRepo := newTestService(t)

		customerRepo.EXPECT().GetByID("CUST01").Return(testCustomer(nil), nil)
		itemRepo.EXPECT().GetByIDs([]string{"ITEM01", "ITEM02"}).Return([]*domain.Item{
			testItem("100"),
			{ID: "ITEM02", Code: "I-002", Name: "Produto B", UnitPrice: d("50"), IsActive: true},
		}, nil)

		var created []*domain.BudgetEntry
		budgetRepo.EXPECT().BulkCreate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entries []*domain.BudgetEntry) error {
				created = entries
				return nil
			})

		response, err := service.BulkCreate(context.Background(), manager, &domain.BulkCreateBudgetRequest{
			CustomerID:       "CUST01",
			ItemIDs:          []string{"ITEM01", "ITEM02"},
			Year:             2025,
			TotalAmount:      d("24000"),
			DistributionType: domain.DistributionEqual,
		})
		require.NoError(t, err)
		assert.Equal(t, 24, response.EntriesCreated)

		// amountPerItem = 12000; item 1: 120/mês, item 2: 240/mês
		assert.Equal(t, d("120").String(), created[0].Quantity.String())
		assert.Equal(t, created[0].Quantity.String(), created[11].Quantity.String())
	})

	t.Run("PrecoZeroGeraQuantidadeZero", func(t *testing.T) {
		service, budgetRepo, customerRepo, itemRepo := newTestService(t)

		customerRepo.EXPECT().GetByID("CUST01").Return(testCustomer(nil), nil)
		itemRepo.EXPECT().GetByIDs([]string{"ITEM01"}).Return([]*domain.Item{testItem("0")}, nil)

		var created []*domain.BudgetEntry
		budgetRepo.EXPECT().BulkCreate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entries []*domain.BudgetEntry) error {
				created = entries
				return nil
			})

		_, err := service.BulkCreate(context.Background(), manager, &domain.BulkCreateBudgetRequest{
			CustomerID:       "CUST01",
			ItemIDs:          []string{"ITEM01"},
			Year:             2025,
			TotalAmount:      d("12000"),
			DistributionType: domain.DistributionSeasonal,
		})
		require.NoError(t, err)
		assert.True(t, created[0].Quantity.IsZero())
	})

	t.Run("SemItensFalhaValidacao", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.BulkCreate(context.Background(), manager, &domain.BulkCreateBudgetRequest{
			CustomerID:       "CUST01",
			Year:             2025,
			TotalAmount:      d("12000"),
			DistributionType: domain.DistributionEqual,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoItems)
	})

	t.Run("FalhaNoLoteNaoCommitaParcial", func(t *testing.T) {
		service, budgetRepo, customerRepo, itemRepo := newTestService(t)

		customerRepo.EXPECT().GetByID("CUST01").Return(testCustomer(nil), nil)
		itemRepo.EXPECT().GetByIDs([]string{"ITEM01"}).Return([]*domain.Item{testItem("100")}, nil)
		budgetRepo.EXPECT().BulkCreate(gomock.Any(), gomock.Any()).Return(repository.ErrUniqueViolation)

		_, err := service.BulkCreate(context.Background(), manager, &domain.BulkCreateBudgetRequest{
			CustomerID:       "CUST01",
			ItemIDs:          []string{"ITEM01"},
			Year:             2025,
			TotalAmount:      d("12000"),
			DistributionType: domain.DistributionEqual,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateCell)
	})

	t.Run("AnoNoPassadoFalha", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.BulkCreate(context.Background(), manager, &domain.BulkCreateBudgetRequest{
			CustomerID:       "CUST01",
			ItemIDs:          []string{"ITEM01"},
			Year:             2024,
			TotalAmount:      d("12000"),
			DistributionType: domain.DistributionEqual,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidYear)
	})

	t.Run("ManualExigeTodosOsMeses", func(t *testing.T) {
		service, _, customerRepo, itemRepo := newTestService(t)

		customerRepo.EXPECT().GetByID("CUST01").Return(testCustomer(nil), nil)
		itemRepo.EXPECT().GetByIDs([]string{"ITEM01"}).Return([]*domain.Item{testItem("100")}, nil)

		_, err := service.BulkCreate(context.Background(), manager, &domain.BulkCreateBudgetRequest{
			CustomerID:       "CUST01",
			ItemIDs:          []string{"ITEM01"},
			Year:             2025,
			TotalAmount:      d("12000"),
			DistributionType: domain.DistributionManual,
			ManualQuantities: map[int]decimal.Decimal{1: d("10")},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingQuantities)
	})
}

func TestApproveEntries(t *testing.T) {
	t.Run("AprovaApenasSubmetidas", func(t *testing.T) {
		service, budgetRepo, _, _ := newTestService(t)

		ids := []string{"SUB1", "DRAFT1", "APPR1"}
		budgetRepo.EXPECT().ApproveSubmitted(ids, manager.UserID, testNow).Return(int64(1), nil)
		budgetRepo.EXPECT().GetByID("SUB1").Return(&domain.BudgetEntry{ID: "SUB1", Year: 2025}, nil)
		budgetRepo.EXPECT().GetByID("DRAFT1").Return(&domain.BudgetEntry{ID: "DRAFT1", Year: 2025}, nil)
		budgetRepo.EXPECT().GetByID("APPR1").Return(&domain.BudgetEntry{ID: "APPR1", Year: 2025}, nil)

		response, err := service.ApproveEntries(context.Background(), manager, &domain.ApproveEntriesRequest{
			EntryIDs: ids,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, response.ApprovedCount)
	})

	t.Run("LoteComAnosDistintosInvalidaCadaAno", func(t *testing.T) {
		service, budgetRepo, _, _ := newTestService(t)

		recorder := &prefixRecorder{}
		service.cache = recorder

		ids := []string{"B2025", "B2026"}
		budgetRepo.EXPECT().ApproveSubmitted(ids, manager.UserID, testNow).Return(int64(2), nil)
		budgetRepo.EXPECT().GetByID("B2025").Return(&domain.BudgetEntry{ID: "B2025", Year: 2025}, nil)
		budgetRepo.EXPECT().GetByID("B2026").Return(&domain.BudgetEntry{ID: "B2026", Year: 2026}, nil)

		_, err := service.ApproveEntries(context.Background(), manager, &domain.ApproveEntriesRequest{
			EntryIDs: ids,
		})
		require.NoError(t, err)

		assert.Contains(t, recorder.prefixes, cache.BudgetPrefix(2025))
		assert.Contains(t, recorder.prefixes, cache.BudgetPrefix(2026))
	})

	t.Run("VendedorNaoAprova", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.ApproveEntries(context.Background(), salesperson, &domain.ApproveEntriesRequest{
			EntryIDs: []string{"SUB1"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrApprovalForbidden)
	})

	t.Run("ErroDeBancoPropagado", func(t *testing.T) {
		service, budgetRepo, _, _ := newTestService(t)

		budgetRepo.EXPECT().ApproveSubmitted(gomock.Any(), admin.UserID, testNow).
			Return(int64(0), errors.New("connection refused"))

		_, err := service.ApproveEntries(context.Background(), admin, &domain.ApproveEntriesRequest{
			EntryIDs: []string{"SUB1"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}

func TestApplySeasonalDistribution(t *testing.T) {
	t.Run("ReaplicacaoIdempotenteComMultiplicadorInalterado", func(t *testing.T) {
		service, budgetRepo, _, _ := newTestService(t)

		budgetRepo.EXPECT().GetByID("ENTRY1").Return(&domain.BudgetEntry{
			ID:                 "ENTRY1",
			Year:               2025,
			Month:              1,
			Quantity:           d("192"),
			UnitPrice:          d("100"),
			DistributionType:   domain.DistributionSeasonal,
			SeasonalMultiplier: d("1.60"),
			Status:             domain.StatusDraft,
		}, nil)

		var updated *domain.BudgetEntry
		budgetRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(entry *domain.BudgetEntry) error {
			updated = entry
			return nil
		})

		_, err := service.ApplySeasonalDistribution(context.Background(), manager, "ENTRY1")
		require.NoError(t, err)

		// 192 / 1.60 x 1.60 = 192: idempotente
		assert.Equal(t, d("192").String(), updated.Quantity.String())
	})

	t.Run("MultiplicadorDivergenteRejeitado", func(t *testing.T) {
		service, budgetRepo, _, _ := newTestService(t)

		budgetRepo.EXPECT().GetByID("ENTRY1").Return(&domain.BudgetEntry{
			ID:                 "ENTRY1",
			Year:               2025,
			Month:              1,
			Quantity:           d("150"),
			DistributionType:   domain.DistributionSeasonal,
			SeasonalMultiplier: d("1.25"),
			Status:             domain.StatusDraft,
		}, nil)

		_, err := service.ApplySeasonalDistribution(context.Background(), manager, "ENTRY1")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMultiplierChanged)
	})

	t.Run("DistribuicaoNaoSazonalRejeitada", func(t *testing.T) {
		service, budgetRepo, _, _ := newTestService(t)

		budgetRepo.EXPECT().GetByID("ENTRY1").Return(&domain.BudgetEntry{
			ID:                 "ENTRY1",
			Year:               2025,
			Month:              1,
			Quantity:           d("120"),
			DistributionType:   domain.DistributionEqual,
			SeasonalMultiplier: d("1"),
			Status:             domain.StatusDraft,
		}, nil)

		_, err := service.ApplySeasonalDistribution(context.Background(), manager, "ENTRY1")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotSeasonal)
	})
}

func TestDeleteEntry(t *testing.T) {
	t.Run("AprovadaSoExcluidaPorAdmin", func(t *testing.T) {
		service, budgetRepo, _, _ := newTestService(t)

		budgetRepo.EXPECT().GetByID("ENTRY1").Return(&domain.BudgetEntry{
			ID:     "ENTRY1",
			Status: domain.StatusApproved,
		}, nil)

		err := service.DeleteEntry(context.Background(), salesperson, "ENTRY1")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrApprovedImmutable)
	})

	t.Run("AdminExclui", func(t *testing.T) {
		service, budgetRepo, _, _ := newTestService(t)

		budgetRepo.EXPECT().GetByID("ENTRY1").Return(&domain.BudgetEntry{
			ID:     "ENTRY1",
			Year:   2025,
			Status: domain.StatusApproved,
		}, nil)
		budgetRepo.EXPECT().Delete("ENTRY1").Return(nil)

		err := service.DeleteEntry(context.Background(), admin, "ENTRY1")
		require.NoError(t, err)
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

func intPtr(v int) *int {
	return &v
}

func decimalPtr(v decimal.Decimal) *decimal.Decimal {
	return &v
}
