package cataloging

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stmbudget/sales-planning-api/infrastructure/repository"
	"github.com/stmbudget/sales-planning-api/infrastructure/repository/mocks"
	"github.com/stmbudget/sales-planning-api/internal/domain"
)

var (
	manager     = domain.Actor{UserID: 2, RoleID: domain.RoleManager}
	salesperson = domain.Actor{UserID: 3, RoleID: domain.RoleSalesperson}
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService(t *testing.T) (*Service, *mocks.MockCustomerRepository, *mocks.MockItemRepository, *mocks.MockInventoryRepository) {
	ctrl := gomock.NewController(t)

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	itemRepo := mocks.NewMockItemRepository(ctrl)
	inventoryRepo := mocks.NewMockInventoryRepository(ctrl)

	service := &Service{
		customerRepository:  customerRepo,
		itemRepository:      itemRepo,
		inventoryRepository: inventoryRepo,
	}

	return service, customerRepo, itemRepo, inventoryRepo
}

func TestListCustomers(t *testing.T) {
	t.Run("GerenteEnxergaTodosOsClientes", func(t *testing.T) {
		service, customerRepo, _, _ := newTestService(t)

		customerRepo.EXPECT().List(true, nil).Return([]*domain.Customer{{ID: "CUST01"}}, nil)

		customers, err := service.ListCustomers(manager, true)
		require.NoError(t, err)
		assert.Len(t, customers, 1)
	})

	t.Run("VendedorEnxergaSomenteAPropriaCarteira", func(t *testing.T) {
		service, customerRepo, _, _ := newTestService(t)

		salespersonID := 3
		customerRepo.EXPECT().List(false, &salespersonID).Return([]*domain.Customer{}, nil)

		customers, err := service.ListCustomers(salesperson, false)
		require.NoError(t, err)
		assert.Empty(t, customers)
	})
}

func TestCreateCustomer(t *testing.T) {
	t.Run("CriaClienteAtivoComID", func(t *testing.T) {
		service, customerRepo, _, _ := newTestService(t)

		customerRepo.EXPECT().Create(gomock.Any()).Return(nil)

		customer, err := service.CreateCustomer(&domain.Customer{Code: "C-001", Name: "Distribuidora Alfa"})
		require.NoError(t, err)

		assert.NotEmpty(t, customer.ID)
		assert.True(t, customer.IsActive)
		assert.Equal(t, domain.CustomerActive, customer.Status)
	})

	t.Run("CodigoDuplicadoRetornaConflito", func(t *testing.T) {
		service, customerRepo, _, _ := newTestService(t)

		customerRepo.EXPECT().Create(gomock.Any()).Return(repository.ErrUniqueViolation)

		_, err := service.CreateCustomer(&domain.Customer{Code: "C-001", Name: "Distribuidora Alfa"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateCode)
	})

	t.Run("CodigoObrigatorio", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.CreateCustomer(&domain.Customer{Name: "Sem Código"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingData)
	})
}

func TestUpdateItem(t *testing.T) {
	t.Run("AtualizaPrecoEDesativa", func(t *testing.T) {
		service, _, itemRepo, _ := newTestService(t)

		itemRepo.EXPECT().GetByID("ITEM01").Return(&domain.Item{ID: "ITEM01", Code: "I-001", Name: "Produto", UnitPrice: d("100"), IsActive: true}, nil)

		var updated *domain.Item
		itemRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(item *domain.Item) error {
			updated = item
			return nil
		})

		price := d("120")
		inactive := false
		item, err := service.UpdateItem(&domain.UpdateItemRequest{ID: "ITEM01", UnitPrice: &price, IsActive: &inactive})
		require.NoError(t, err)

		assert.Equal(t, "120", item.UnitPrice.String())
		assert.False(t, updated.IsActive)
	})

	t.Run("PrecoNegativoFalha", func(t *testing.T) {
		service, _, itemRepo, _ := newTestService(t)

		itemRepo.EXPECT().GetByID("ITEM01").Return(&domain.Item{ID: "ITEM01"}, nil)

		price := d("-1")
		_, err := service.UpdateItem(&domain.UpdateItemRequest{ID: "ITEM01", UnitPrice: &price})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNegativePrice)
	})

	t.Run("ItemInexistenteFalha", func(t *testing.T) {
		service, _, itemRepo, _ := newTestService(t)

		itemRepo.EXPECT().GetByID("MISSING").Return(nil, nil)

		_, err := service.UpdateItem(&domain.UpdateItemRequest{ID: "MISSING"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestUpsertInventory(t *testing.T) {
	t.Run("GravaPosicaoComDefaults", func(t *testing.T) {
		service, _, itemRepo, inventoryRepo := newTestService(t)

		itemRepo.EXPECT().GetByID("ITEM01").Return(&domain.Item{ID: "ITEM01"}, nil)
		inventoryRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

		record, err := service.UpsertInventory(&domain.InventoryRecord{
			ItemID:       "ITEM01",
			Location:     "CD-SP",
			CurrentStock: d("50"),
		})
		require.NoError(t, err)

		assert.NotEmpty(t, record.ID)
		assert.Equal(t, domain.InventoryAvailable, record.Status)
	})

	t.Run("EstoqueNegativoFalha", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.UpsertInventory(&domain.InventoryRecord{
			ItemID:       "ITEM01",
			Location:     "CD-SP",
			CurrentStock: d("-5"),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNegativeStock)
	})

	t.Run("ItemInexistenteFalha", func(t *testing.T) {
		service, _, itemRepo, _ := newTestService(t)

		itemRepo.EXPECT().GetByID("MISSING").Return(nil, nil)

		_, err := service.UpsertInventory(&domain.InventoryRecord{
			ItemID:   "MISSING",
			Location: "CD-SP",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}
