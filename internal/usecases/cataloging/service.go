// Package cataloging mantém o cadastro que o planejamento referencia:
// clientes, itens e estoque. Desativação é sempre lógica (is_active),
// porque entradas de orçamento e forecast apontam para esses registros.
package cataloging

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/stmbudget/sales-planning-api/infrastructure/repository"
	"github.com/stmbudget/sales-planning-api/internal/domain"
	"github.com/stmbudget/sales-planning-api/pkg/apiErrors"
	"github.com/stmbudget/sales-planning-api/pkg/utils"
)

type CatalogService interface {
	GetCustomer(id string) (*domain.Customer, error)
	ListCustomers(actor domain.Actor, onlyActive bool) ([]*domain.Customer, error)
	CreateCustomer(customer *domain.Customer) (*domain.Customer, error)
	UpdateCustomer(request *domain.UpdateCustomerRequest) (*domain.Customer, error)

	GetItem(id string) (*domain.Item, error)
	ListItems(onlyActive bool) ([]*domain.Item, error)
	CreateItem(item *domain.Item) (*domain.Item, error)
	UpdateItem(request *domain.UpdateItemRequest) (*domain.Item, error)

	ListInventory(itemID string) ([]*domain.InventoryRecord, error)
	UpsertInventory(record *domain.InventoryRecord) (*domain.InventoryRecord, error)
}

type Service struct {
	customerRepository  repository.CustomerRepository
	itemRepository      repository.ItemRepository
	inventoryRepository repository.InventoryRepository
}

func NewService(
	customerRepository repository.CustomerRepository,
	itemRepository repository.ItemRepository,
	inventoryRepository repository.InventoryRepository,
) CatalogService {
	return &Service{
		customerRepository:  customerRepository,
		itemRepository:      itemRepository,
		inventoryRepository: inventoryRepository,
	}
}

func (s *Service) GetCustomer(id string) (*domain.Customer, error) {
	if id == "" {
		return nil, NewCatalogError(ErrIDRequired, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório")
	}

	customer, err := s.customerRepository.GetByID(id)
	if err != nil {
		logrus.Error("Error getting customer on the repository:", err)
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar cliente")
	}

	if customer == nil {
		return nil, NewCatalogError(ErrCustomerNotFound, apiErrors.ErrResourceNotFound, "Cliente não encontrado")
	}

	return customer, nil
}

// ListCustomers lista os clientes do cadastro. Vendedores enxergam só a
// própria carteira.
func (s *Service) ListCustomers(actor domain.Actor, onlyActive bool) ([]*domain.Customer, error) {
	var salespersonID *int
	if !actor.SeesAllEntries() {
		salespersonID = &actor.UserID
	}

	customers, err := s.customerRepository.List(onlyActive, salespersonID)
	if err != nil {
		logrus.Error("Error listing customers on the repository:", err)
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar clientes")
	}

	return customers, nil
}

func (s *Service) CreateCustomer(customer *domain.Customer) (*domain.Customer, error) {
	if customer.Code == "" || customer.Name == "" {
		return nil, NewCatalogError(ErrMissingData, apiErrors.ErrMissingRequiredData, "Código e nome do cliente são obrigatórios")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewCatalogError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador do cliente")
	}
	customer.ID = id

	if customer.Status == "" {
		customer.Status = domain.CustomerActive
	}
	customer.IsActive = true

	if err := s.customerRepository.Create(customer); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, NewCatalogError(ErrDuplicateCode, apiErrors.ErrResourceConflict, "Já existe um cliente com este código")
		}

		logrus.Error("Error creating customer on the repository:", err)
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao criar cliente")
	}

	return customer, nil
}

func (s *Service) UpdateCustomer(request *domain.UpdateCustomerRequest) (*domain.Customer, error) {
	customer, err := s.GetCustomer(request.ID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		customer.Name = *request.Name
	}
	if request.Status != nil {
		customer.Status = *request.Status
	}
	if request.Category != nil {
		customer.Category = *request.Category
	}
	if request.Email != nil {
		customer.Email = request.Email
	}
	if request.Phone != nil {
		customer.Phone = request.Phone
	}
	if request.Address != nil {
		customer.Address = request.Address
	}
	if request.CreditLimit != nil {
		customer.CreditLimit = *request.CreditLimit
	}
	if request.PaymentTerms != nil {
		customer.PaymentTerms = *request.PaymentTerms
	}
	if request.SalespersonID != nil {
		customer.SalespersonID = request.SalespersonID
	}
	if request.IsActive != nil {
		customer.IsActive = *request.IsActive
	}

	if err := s.customerRepository.Update(customer); err != nil {
		logrus.Error("Error updating customer on the repository:", err)
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao atualizar cliente")
	}

	return customer, nil
}

func (s *Service) GetItem(id string) (*domain.Item, error) {
	if id == "" {
		return nil, NewCatalogError(ErrIDRequired, apiErrors.ErrMissingRequiredData, "ID do item é obrigatório")
	}

	item, err := s.itemRepository.GetByID(id)
	if err != nil {
		logrus.Error("Error getting item on the repository:", err)
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar item")
	}

	if item == nil {
		return nil, NewCatalogError(ErrItemNotFound, apiErrors.ErrResourceNotFound, "Item não encontrado")
	}

	return item, nil
}

func (s *Service) ListItems(onlyActive bool) ([]*domain.Item, error) {
	items, err := s.itemRepository.List(onlyActive)
	if err != nil {
		logrus.Error("Error listing items on the repository:", err)
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar itens")
	}

	return items, nil
}

func (s *Service) CreateItem(item *domain.Item) (*domain.Item, error) {
	if item.Code == "" || item.Name == "" {
		return nil, NewCatalogError(ErrMissingData, apiErrors.ErrMissingRequiredData, "Código e nome do item são obrigatórios")
	}

	if item.UnitPrice.IsNegative() || item.Cost.IsNegative() {
		return nil, NewCatalogError(ErrNegativePrice, apiErrors.ErrInvalidRequest, "Preço e custo não podem ser negativos")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewCatalogError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador do item")
	}
	item.ID = id
	item.IsActive = true

	if err := s.itemRepository.Create(item); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, NewCatalogError(ErrDuplicateCode, apiErrors.ErrResourceConflict, "Já existe um item com este código")
		}

		logrus.Error("Error creating item on the repository:", err)
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao criar item")
	}

	return item, nil
}

func (s *Service) UpdateItem(request *domain.UpdateItemRequest) (*domain.Item, error) {
	item, err := s.GetItem(request.ID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		item.Name = *request.Name
	}
	if request.CategoryCode != nil {
		item.CategoryCode = request.CategoryCode
	}
	if request.CategoryName != nil {
		item.CategoryName = request.CategoryName
	}
	if request.BrandCode != nil {
		item.BrandCode = request.BrandCode
	}
	if request.BrandName != nil {
		item.BrandName = request.BrandName
	}
	if request.UnitPrice != nil {
		if request.UnitPrice.IsNegative() {
			return nil, NewCatalogError(ErrNegativePrice, apiErrors.ErrInvalidRequest, "Preço não pode ser negativo")
		}
		item.UnitPrice = *request.UnitPrice
	}
	if request.Cost != nil {
		if request.Cost.IsNegative() {
			return nil, NewCatalogError(ErrNegativePrice, apiErrors.ErrInvalidRequest, "Custo não pode ser negativo")
		}
		item.Cost = *request.Cost
	}
	if request.DiscountPercentage != nil {
		item.DiscountPercentage = *request.DiscountPercentage
	}
	if request.IsActive != nil {
		item.IsActive = *request.IsActive
	}

	if err := s.itemRepository.Update(item); err != nil {
		logrus.Error("Error updating item on the repository:", err)
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao atualizar item")
	}

	return item, nil
}

func (s *Service) ListInventory(itemID string) ([]*domain.InventoryRecord, error) {
	if itemID == "" {
		return nil, NewCatalogError(ErrIDRequired, apiErrors.ErrMissingRequiredData, "ID do item é obrigatório")
	}

	records, err := s.inventoryRepository.ListByItem(itemID)
	if err != nil {
		logrus.Error("Error listing inventory on the repository:", err)
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar estoque")
	}

	return records, nil
}

// UpsertInventory grava a posição de estoque de um item em uma localização.
// O par (item, localização) é único - gravações repetidas atualizam a posição.
func (s *Service) UpsertInventory(record *domain.InventoryRecord) (*domain.InventoryRecord, error) {
	if record.ItemID == "" || record.Location == "" {
		return nil, NewCatalogError(ErrMissingData, apiErrors.ErrMissingRequiredData, "Item e localização são obrigatórios")
	}

	if record.CurrentStock.IsNegative() || record.MinimumStockLevel.IsNegative() || record.MaximumStockLevel.IsNegative() {
		return nil, NewCatalogError(ErrNegativeStock, apiErrors.ErrInvalidRequest, "Níveis de estoque não podem ser negativos")
	}

	item, err := s.itemRepository.GetByID(record.ItemID)
	if err != nil {
		logrus.Error("Error getting item on the repository:", err)
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar item")
	}
	if item == nil {
		return nil, NewCatalogError(ErrItemNotFound, apiErrors.ErrResourceNotFound, "Item não encontrado")
	}

	if record.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, NewCatalogError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador do estoque")
		}
		record.ID = id
	}

	if record.Status == "" {
		record.Status = domain.InventoryAvailable
	}

	if err := s.inventoryRepository.Upsert(record); err != nil {
		logrus.Error("Error upserting inventory on the repository:", err)
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao gravar estoque")
	}

	return record, nil
}
