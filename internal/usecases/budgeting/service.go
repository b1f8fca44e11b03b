package budgeting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stmbudget/sales-planning-api/infrastructure/cache"
	"github.com/stmbudget/sales-planning-api/infrastructure/repository"
	"github.com/stmbudget/sales-planning-api/internal/domain"
	"github.com/stmbudget/sales-planning-api/internal/usecases/authorizing"
	"github.com/stmbudget/sales-planning-api/pkg/apiErrors"
	"github.com/stmbudget/sales-planning-api/pkg/money"
	"github.com/stmbudget/sales-planning-api/pkg/utils"
)

type BudgetService interface {
	GetEntry(actor domain.Actor, id string) (*domain.BudgetEntry, error)
	ListEntries(actor domain.Actor, filter domain.BudgetFilter) ([]*domain.BudgetEntry, error)
	CreateEntry(ctx context.Context, actor domain.Actor, request *domain.CreateBudgetEntryRequest) (*domain.BudgetEntry, error)
	UpdateEntry(ctx context.Context, actor domain.Actor, request *domain.UpdateBudgetEntryRequest) (*domain.BudgetEntry, error)
	DeleteEntry(ctx context.Context, actor domain.Actor, id string) error
	BulkCreate(ctx context.Context, actor domain.Actor, request *domain.BulkCreateBudgetRequest) (*domain.BulkCreateBudgetResponse, error)
	ApproveEntries(ctx context.Context, actor domain.Actor, request *domain.ApproveEntriesRequest) (*domain.ApproveEntriesResponse, error)
	ApplySeasonalDistribution(ctx context.Context, actor domain.Actor, id string) (*domain.BudgetEntry, error)
}

type Service struct {
	budgetRepository   repository.BudgetEntryRepository
	customerRepository repository.CustomerRepository
	itemRepository     repository.ItemRepository
	cache              cache.Cache
	now                func() time.Time
}

func NewService(
	budgetRepository repository.BudgetEntryRepository,
	customerRepository repository.CustomerRepository,
	itemRepository repository.ItemRepository,
	cacheClient cache.Cache,
) BudgetService {
	return &Service{
		budgetRepository:   budgetRepository,
		customerRepository: customerRepository,
		itemRepository:     itemRepository,
		cache:              cacheClient,
		now:                time.Now,
	}
}

func (s *Service) GetEntry(actor domain.Actor, id string) (*domain.BudgetEntry, error) {
	if id == "" {
		return nil, NewBudgetError(ErrEntryIDRequired, apiErrors.ErrMissingRequiredData, "Informe o ID da entrada de orçamento")
	}

	entry, err := s.budgetRepository.GetByID(id)
	if err != nil {
		logrus.Error("Error getting budget entry by id on the repository:", err)
		return nil, NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar entrada de orçamento")
	}

	if entry == nil {
		return nil, NewBudgetErrorWithID(ErrEntryNotFound, apiErrors.ErrResourceNotFound, id, "Entrada de orçamento não encontrada")
	}

	return entry, nil
}

func (s *Service) ListEntries(actor domain.Actor, filter domain.BudgetFilter) ([]*domain.BudgetEntry, error) {
	// Vendedores não escolhem o filtro de vendedor: o escopo decide
	if !actor.SeesAllEntries() {
		filter.SalespersonID = nil
	}

	entries, err := s.budgetRepository.List(filter, authorizing.ScopeFilter(actor))
	if err != nil {
		logrus.Error("Error listing budget entries on the repository:", err)
		return nil, NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar entradas de orçamento")
	}

	return entries, nil
}

func (s *Service) CreateEntry(ctx context.Context, actor domain.Actor, request *domain.CreateBudgetEntryRequest) (*domain.BudgetEntry, error) {
	if err := s.validateCreateRequest(request); err != nil {
		return nil, err
	}

	customer, err := s.customerRepository.GetByID(request.CustomerID)
	if err != nil {
		logrus.Error("Error getting customer by id on the repository:", err)
		return nil, NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar cliente")
	}

	if customer == nil {
		return nil, NewBudgetErrorWithID(ErrCustomerNotFound, apiErrors.ErrResourceNotFound, request.CustomerID, "Cliente não encontrado")
	}

	item, err := s.itemRepository.GetByID(request.ItemID)
	if err != nil {
		logrus.Error("Error getting item by id on the repository:", err)
		return nil, NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar item")
	}

	if item == nil {
		return nil, NewBudgetErrorWithID(ErrItemNotFound, apiErrors.ErrResourceNotFound, request.ItemID, "Item não encontrado")
	}

	// Rejeita célula duplicada antes de escrever; a constraint de
	// unicidade cobre a corrida entre a checagem e o insert
	existing, err := s.budgetRepository.GetByCell(request.CustomerID, request.ItemID, request.Year, request.Month)
	if err != nil {
		logrus.Error("Error getting budget entry by cell on the repository:", err)
		return nil, NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao verificar célula de orçamento")
	}

	if existing != nil {
		return nil, NewBudgetErrorWithID(ErrDuplicateCell, apiErrors.ErrResourceConflict, existing.ID, "Já existe uma entrada para este cliente, item, ano e mês")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewBudgetError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador da entrada")
	}

	entry := &domain.BudgetEntry{
		ID:                 id,
		CustomerID:         request.CustomerID,
		ItemID:             request.ItemID,
		Year:               request.Year,
		Month:              request.Month,
		Quantity:           request.Quantity,
		UnitPrice:          request.UnitPrice,
		DiscountPercentage: request.DiscountPercentage,
		TotalAmount:        money.TotalAmount(request.Quantity, request.UnitPrice, request.DiscountPercentage),
		DistributionType:   domain.DistributionManual,
		SeasonalMultiplier: decimal.NewFromInt(1),
		IsManualEntry:      request.IsManualEntry,
		Status:             domain.StatusDraft,
		SalespersonID:      resolveSalesperson(customer, actor),
		CreatedBy:          &actor.UserID,
		Notes:              request.Notes,
	}

	if err := s.budgetRepository.Create(entry); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, NewBudgetError(ErrDuplicateCell, apiErrors.ErrResourceConflict, "Já existe uma entrada para este cliente, item, ano e mês")
		}

		logrus.Error("Error creating budget entry on the repository:", err)
		return nil, NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao criar entrada de orçamento")
	}

	s.invalidateYear(ctx, entry.Year)

	return entry, nil
}

func (s *Service) UpdateEntry(ctx context.Context, actor domain.Actor, request *domain.UpdateBudgetEntryRequest) (*domain.BudgetEntry, error) {
	entry, err := s.GetEntry(actor, request.ID)
	if err != nil {
		return nil, err
	}

	if !authorizing.CanMutate(actor, entry.Status) {
		return nil, NewBudgetErrorWithID(ErrApprovedImmutable, apiErrors.ErrInsufficientPrivilege, entry.ID, "Entradas aprovadas só podem ser alteradas por um administrador")
	}

	if request.Quantity != nil {
		if request.Quantity.IsNegative() {
			return nil, NewBudgetError(ErrNegativeQuantity, apiErrors.ErrInvalidRequest, "Quantidade não pode ser negativa")
		}
		entry.Quantity = *request.Quantity
	}

	if request.UnitPrice != nil {
		if request.UnitPrice.IsNegative() {
			return nil, NewBudgetError(ErrNegativeUnitPrice, apiErrors.ErrInvalidRequest, "Preço unitário não pode ser negativo")
		}
		entry.UnitPrice = *request.UnitPrice
	}

	if request.DiscountPercentage != nil {
		if !validDiscount(*request.DiscountPercentage) {
			return nil, NewBudgetError(ErrInvalidDiscount, apiErrors.ErrInvalidRequest, "Desconto deve estar entre 0 e 100")
		}
		entry.DiscountPercentage = *request.DiscountPercentage
	}

	if request.Status != nil {
		if err := s.applyStatusChange(actor, entry, *request.Status); err != nil {
			return nil, err
		}
	}

	if request.Notes != nil {
		entry.Notes = request.Notes
	}

	// Recalcula o total a cada persistência
	entry.TotalAmount = money.TotalAmount(entry.Quantity, entry.UnitPrice, entry.DiscountPercentage)

	if err := s.budgetRepository.Update(entry); err != nil {
		logrus.Error("Error updating budget entry on the repository:", err)
		return nil, NewBudgetErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, entry.ID, "Erro ao atualizar entrada de orçamento")
	}

	s.invalidateYear(ctx, entry.Year)

	return entry, nil
}

func (s *Service) DeleteEntry(ctx context.Context, actor domain.Actor, id string) error {
	entry, err := s.GetEntry(actor, id)
	if err != nil {
		return err
	}

	if !authorizing.CanMutate(actor, entry.Status) {
		return NewBudgetErrorWithID(ErrApprovedImmutable, apiErrors.ErrInsufficientPrivilege, entry.ID, "Entradas aprovadas só podem ser excluídas por um administrador")
	}

	if err := s.budgetRepository.Delete(id); err != nil {
		logrus.Error("Error deleting budget entry on the repository:", err)
		return NewBudgetErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Erro ao excluir entrada de orçamento")
	}

	s.invalidateYear(ctx, entry.Year)

	return nil
}

// BulkCreate espalha um valor anual em 12 meses por item do cliente,
// segundo o tipo de distribuição. O lote inteiro roda em uma transação:
// qualquer falha descarta tudo (fail-fast, sem commit parcial).
func (s *Service) BulkCreate(ctx context.Context, actor domain.Actor, request *domain.BulkCreateBudgetRequest) (*domain.BulkCreateBudgetResponse, error) {
	if len(request.ItemIDs) == 0 {
		return nil, NewBudgetError(ErrNoItems, apiErrors.ErrMissingRequiredData, "Informe ao menos um item para distribuir o orçamento")
	}

	if request.TotalAmount.IsNegative() {
		return nil, NewBudgetError(ErrNegativeQuantity, apiErrors.ErrInvalidRequest, "Valor total não pode ser negativo")
	}

	if request.Year < s.now().Year() {
		return nil, NewBudgetError(ErrInvalidYear, apiErrors.ErrInvalidRequest, "Ano não pode estar no passado")
	}

	customer, err := s.customerRepository.GetByID(request.CustomerID)
	if err != nil {
		logrus.Error("Error getting customer by id on the repository:", err)
		return nil, NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar cliente")
	}

	if customer == nil {
		return nil, NewBudgetErrorWithID(ErrCustomerNotFound, apiErrors.ErrResourceNotFound, request.CustomerID, "Cliente não encontrado")
	}

	items, err := s.itemRepository.GetByIDs(request.ItemIDs)
	if err != nil {
		logrus.Error("Error getting items by ids on the repository:", err)
		return nil, NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar itens")
	}

	if len(items) != len(request.ItemIDs) {
		return nil, NewBudgetError(ErrItemNotFound, apiErrors.ErrResourceNotFound, "Um ou mais itens informados não existem")
	}

	entries, err := buildDistributedEntries(request, items, resolveSalesperson(customer, actor), actor.UserID, utils.GenerateID)
	if err != nil {
		return nil, NewBudgetError(err, apiErrors.ErrInvalidRequest, "Falha ao montar o lote de distribuição")
	}

	if err := s.budgetRepository.BulkCreate(ctx, entries); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, NewBudgetError(ErrDuplicateCell, apiErrors.ErrResourceConflict, "Uma ou mais células do lote já possuem entrada")
		}

		logrus.Error("Error bulk creating budget entries on the repository:", err)
		return nil, NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao criar o lote de entradas")
	}

	s.invalidateYear(ctx, request.Year)

	logrus.Infof("%d budget entries were successfully created", len(entries))

	return &domain.BulkCreateBudgetResponse{
		EntriesCreated: len(entries),
		Message:        fmt.Sprintf("%d entradas de orçamento criadas com sucesso", len(entries)),
	}, nil
}

// ApproveEntries aprova em lote apenas as entradas em submitted; as
// demais são puladas sem erro e o retorno informa quantas mudaram
func (s *Service) ApproveEntries(ctx context.Context, actor domain.Actor, request *domain.ApproveEntriesRequest) (*domain.ApproveEntriesResponse, error) {
	if !actor.CanApprove() {
		return nil, NewBudgetError(ErrApprovalForbidden, apiErrors.ErrInsufficientPrivilege, "Apenas administradores e gerentes aprovam entradas")
	}

	if len(request.EntryIDs) == 0 {
		return nil, NewBudgetError(ErrEntryIDRequired, apiErrors.ErrMissingRequiredData, "Informe as entradas a aprovar")
	}

	approved, err := s.budgetRepository.ApproveSubmitted(request.EntryIDs, actor.UserID, s.now())
	if err != nil {
		logrus.Error("Error approving budget entries on the repository:", err)
		return nil, NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao aprovar entradas de orçamento")
	}

	s.cache.DeleteByPrefix(ctx, cache.KPIPrefix())

	// O lote pode misturar anos; cada ano afetado tem seu prefixo invalidado
	years := make(map[int]struct{})
	for _, id := range request.EntryIDs {
		entry, err := s.budgetRepository.GetByID(id)
		if err == nil && entry != nil {
			years[entry.Year] = struct{}{}
		}
	}
	for year := range years {
		s.cache.DeleteByPrefix(ctx, cache.BudgetPrefix(year))
	}

	logrus.Infof("%d budget entries were successfully approved", approved)

	return &domain.ApproveEntriesResponse{
		ApprovedCount: int(approved),
		Message:       fmt.Sprintf("%d entradas aprovadas com sucesso", approved),
	}, nil
}

// ApplySeasonalDistribution reverte o multiplicador armazenado e aplica o
// da tabela vigente. Divergência de multiplicador é rejeitada: reaplicar
// com tabela diferente comporia a quantidade incorretamente.
func (s *Service) ApplySeasonalDistribution(ctx context.Context, actor domain.Actor, id string) (*domain.BudgetEntry, error) {
	entry, err := s.GetEntry(actor, id)
	if err != nil {
		return nil, err
	}

	if !authorizing.CanMutate(actor, entry.Status) {
		return nil, NewBudgetErrorWithID(ErrApprovedImmutable, apiErrors.ErrInsufficientPrivilege, entry.ID, "Entradas aprovadas só podem ser alteradas por um administrador")
	}

	quantity, err := reapplySeasonal(entry)
	if err != nil {
		details := "Multiplicador sazonal divergente do armazenado"
		if errors.Is(err, ErrNotSeasonal) {
			details = "Entrada não usa distribuição sazonal"
		}
		return nil, NewBudgetErrorWithID(err, apiErrors.ErrInvalidRequest, entry.ID, details)
	}

	entry.Quantity = quantity
	entry.SeasonalMultiplier = SeasonalMultiplier(entry.Month)
	entry.TotalAmount = money.TotalAmount(entry.Quantity, entry.UnitPrice, entry.DiscountPercentage)

	if err := s.budgetRepository.Update(entry); err != nil {
		logrus.Error("Error updating budget entry on the repository:", err)
		return nil, NewBudgetErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, entry.ID, "Erro ao atualizar entrada de orçamento")
	}

	s.invalidateYear(ctx, entry.Year)

	return entry, nil
}

func (s *Service) validateCreateRequest(request *domain.CreateBudgetEntryRequest) error {
	if request.Month < 1 || request.Month > 12 {
		return NewBudgetError(ErrInvalidMonth, apiErrors.ErrInvalidRequest, "Mês deve estar entre 1 e 12")
	}

	if request.Year < s.now().Year() {
		return NewBudgetError(ErrInvalidYear, apiErrors.ErrInvalidRequest, "Ano não pode estar no passado")
	}

	if request.Quantity.IsNegative() {
		return NewBudgetError(ErrNegativeQuantity, apiErrors.ErrInvalidRequest, "Quantidade não pode ser negativa")
	}

	if request.UnitPrice.IsNegative() {
		return NewBudgetError(ErrNegativeUnitPrice, apiErrors.ErrInvalidRequest, "Preço unitário não pode ser negativo")
	}

	if !validDiscount(request.DiscountPercentage) {
		return NewBudgetError(ErrInvalidDiscount, apiErrors.ErrInvalidRequest, "Desconto deve estar entre 0 e 100")
	}

	return nil
}

// applyStatusChange valida a máquina de estados: draft -> submitted,
// draft/submitted -> rejected, submitted -> approved. Aprovar carimba
// aprovador e horário juntos, nunca um sem o outro.
func (s *Service) applyStatusChange(actor domain.Actor, entry *domain.BudgetEntry, next domain.EntryStatus) error {
	if entry.Status == next {
		return nil
	}

	switch next {
	case domain.StatusSubmitted:
		if entry.Status != domain.StatusDraft {
			return NewBudgetErrorWithID(ErrInvalidStatusChange, apiErrors.ErrInvalidRequest, entry.ID, "Apenas rascunhos podem ser submetidos")
		}
	case domain.StatusRejected:
		if entry.Status != domain.StatusDraft && entry.Status != domain.StatusSubmitted {
			return NewBudgetErrorWithID(ErrInvalidStatusChange, apiErrors.ErrInvalidRequest, entry.ID, "Apenas rascunhos ou submetidas podem ser rejeitadas")
		}
	case domain.StatusApproved:
		if !actor.CanApprove() {
			return NewBudgetErrorWithID(ErrApprovalForbidden, apiErrors.ErrInsufficientPrivilege, entry.ID, "Apenas administradores e gerentes aprovam entradas")
		}
		if entry.Status != domain.StatusSubmitted {
			return NewBudgetErrorWithID(ErrInvalidStatusChange, apiErrors.ErrInvalidRequest, entry.ID, "Apenas entradas submetidas podem ser aprovadas")
		}
		approvedAt := s.now()
		entry.ApprovedBy = &actor.UserID
		entry.ApprovedAt = &approvedAt
	case domain.StatusDraft:
		if entry.Status != domain.StatusRejected {
			return NewBudgetErrorWithID(ErrInvalidStatusChange, apiErrors.ErrInvalidRequest, entry.ID, "Apenas rejeitadas voltam para rascunho")
		}
	default:
		return NewBudgetErrorWithID(ErrInvalidStatusChange, apiErrors.ErrInvalidRequest, entry.ID, "Status desconhecido")
	}

	entry.Status = next
	return nil
}

// invalidateYear limpa por prefixo todas as chaves derivadas do orçamento
// do ano afetado, cobrindo todas as combinações dimensionais cacheadas
func (s *Service) invalidateYear(ctx context.Context, year int) {
	s.cache.DeleteByPrefix(ctx, cache.BudgetPrefix(year))
	s.cache.DeleteByPrefix(ctx, cache.KPIPrefix())
}

func resolveSalesperson(customer *domain.Customer, actor domain.Actor) *int {
	if customer.SalespersonID != nil {
		return customer.SalespersonID
	}

	userID := actor.UserID
	return &userID
}

func validDiscount(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(100))
}
