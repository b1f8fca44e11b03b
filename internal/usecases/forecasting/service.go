package forecasting

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

// DefaultConfidenceLevel é o nível de confiança assumido quando o
// chamador não informa um
const DefaultConfidenceLevel = 80

type ForecastService interface {
	GetEntry(actor domain.Actor, id string) (*domain.ForecastEntry, error)
	ListEntries(actor domain.Actor, filter domain.ForecastFilter) ([]*domain.ForecastEntry, error)
	CreateEntry(ctx context.Context, actor domain.Actor, request *domain.CreateForecastEntryRequest) (*domain.ForecastEntry, error)
	UpdateEntry(ctx context.Context, actor domain.Actor, request *domain.UpdateForecastEntryRequest) (*domain.ForecastEntry, error)
	DeleteEntry(ctx context.Context, actor domain.Actor, id string) error
	BulkCreate(ctx context.Context, actor domain.Actor, request *domain.BulkCreateForecastRequest) (*domain.BulkCreateForecastResponse, error)
	ApproveEntries(ctx context.Context, actor domain.Actor, request *domain.ApproveEntriesRequest) (*domain.ApproveEntriesResponse, error)
}

type Service struct {
	forecastRepository repository.ForecastEntryRepository
	budgetRepository   repository.BudgetEntryRepository
	customerRepository repository.CustomerRepository
	itemRepository     repository.ItemRepository
	cache              cache.Cache
	now                func() time.Time
}

func NewService(
	forecastRepository repository.ForecastEntryRepository,
	budgetRepository repository.BudgetEntryRepository,
	customerRepository repository.CustomerRepository,
	itemRepository repository.ItemRepository,
	cacheClient cache.Cache,
) ForecastService {
	return &Service{
		forecastRepository: forecastRepository,
		budgetRepository:   budgetRepository,
		customerRepository: customerRepository,
		itemRepository:     itemRepository,
		cache:              cacheClient,
		now:                time.Now,
	}
}

func (s *Service) GetEntry(actor domain.Actor, id string) (*domain.ForecastEntry, error) {
	if id == "" {
		return nil, NewForecastError(ErrEntryIDRequired, apiErrors.ErrMissingRequiredData, "Informe o ID da entrada de forecast")
	}

	entry, err := s.forecastRepository.GetByID(id)
	if err != nil {
		logrus.Error("Error getting forecast entry by id on the repository:", err)
		return nil, NewForecastError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar entrada de forecast")
	}

	if entry == nil {
		return nil, NewForecastErrorWithID(ErrEntryNotFound, apiErrors.ErrResourceNotFound, id, "Entrada de forecast não encontrada")
	}

	return entry, nil
}

func (s *Service) ListEntries(actor domain.Actor, filter domain.ForecastFilter) ([]*domain.ForecastEntry, error) {
	if !actor.SeesAllEntries() {
		filter.SalespersonID = nil
	}

	entries, err := s.forecastRepository.List(filter, authorizing.ScopeFilter(actor))
	if err != nil {
		logrus.Error("Error listing forecast entries on the repository:", err)
		return nil, NewForecastError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar entradas de forecast")
	}

	return entries, nil
}

// CreateEntry grava uma nova versão do forecast da célula. O orçamento
// da célula é congelado na entrada (snapshot) e as variações derivadas
// são recalculadas aqui, nunca aceitas do chamador. O número da versão e
// a troca do is_latest acontecem na transação do repositório.
func (s *Service) CreateEntry(ctx context.Context, actor domain.Actor, request *domain.CreateForecastEntryRequest) (*domain.ForecastEntry, error) {
	if err := s.validateCreateRequest(request); err != nil {
		return nil, err
	}

	customer, err := s.customerRepository.GetByID(request.CustomerID)
	if err != nil {
		logrus.Error("Error getting customer by id on the repository:", err)
		return nil, NewForecastError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar cliente")
	}

	if customer == nil {
		return nil, NewForecastErrorWithID(ErrCustomerNotFound, apiErrors.ErrResourceNotFound, request.CustomerID, "Cliente não encontrado")
	}

	budget, err := s.budgetRepository.GetByCell(request.CustomerID, request.ItemID, request.Year, request.Month)
	if err != nil {
		logrus.Error("Error getting budget entry by cell on the repository:", err)
		return nil, NewForecastError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar orçamento da célula")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewForecastError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador da entrada")
	}

	entry := &domain.ForecastEntry{
		ID:                 id,
		CustomerID:         request.CustomerID,
		ItemID:             request.ItemID,
		Year:               request.Year,
		Month:              request.Month,
		ForecastedQuantity: request.ForecastedQuantity,
		ForecastedAmount:   request.ForecastedAmount,
		ForecastType:       request.ForecastType,
		ConfidenceLevel:    DefaultConfidenceLevel,
		Status:             domain.StatusDraft,
		SalespersonID:      resolveSalesperson(customer, actor),
		CreatedBy:          &actor.UserID,
		Notes:              request.Notes,
		ForecastReasoning:  request.ForecastReasoning,
		MarketConditions:   request.MarketConditions,
	}

	if entry.ForecastType == "" {
		entry.ForecastType = domain.ForecastRealistic
	}

	if request.ConfidenceLevel != nil {
		entry.ConfidenceLevel = *request.ConfidenceLevel
	}

	if budget != nil {
		entry.BudgetQuantity = budget.Quantity
		entry.BudgetAmount = budget.TotalAmount
	}

	deriveVariances(entry)

	if err := s.forecastRepository.CreateVersioned(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, NewForecastError(ErrVersionConflict, apiErrors.ErrResourceConflict, "Criação concorrente de versão para a mesma célula")
		}

		logrus.Error("Error creating forecast entry on the repository:", err)
		return nil, NewForecastError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao criar entrada de forecast")
	}

	s.invalidateYear(ctx, entry.Year)

	return entry, nil
}

func (s *Service) UpdateEntry(ctx context.Context, actor domain.Actor, request *domain.UpdateForecastEntryRequest) (*domain.ForecastEntry, error) {
	entry, err := s.GetEntry(actor, request.ID)
	if err != nil {
		return nil, err
	}

	if !authorizing.CanMutate(actor, entry.Status) {
		return nil, NewForecastErrorWithID(ErrApprovedImmutable, apiErrors.ErrInsufficientPrivilege, entry.ID, "Entradas aprovadas só podem ser alteradas por um administrador")
	}

	if request.ForecastedQuantity != nil {
		if request.ForecastedQuantity.IsNegative() {
			return nil, NewForecastError(ErrNegativeQuantity, apiErrors.ErrInvalidRequest, "Quantidade prevista não pode ser negativa")
		}
		entry.ForecastedQuantity = *request.ForecastedQuantity
	}

	if request.ForecastedAmount != nil {
		if request.ForecastedAmount.IsNegative() {
			return nil, NewForecastError(ErrNegativeAmount, apiErrors.ErrInvalidRequest, "Valor previsto não pode ser negativo")
		}
		entry.ForecastedAmount = *request.ForecastedAmount
	}

	if request.ForecastType != nil {
		if !validForecastType(*request.ForecastType) {
			return nil, NewForecastError(ErrInvalidType, apiErrors.ErrInvalidRequest, "Tipo de forecast desconhecido")
		}
		entry.ForecastType = *request.ForecastType
	}

	if request.ConfidenceLevel != nil {
		if *request.ConfidenceLevel < 0 || *request.ConfidenceLevel > 100 {
			return nil, NewForecastError(ErrInvalidConfidence, apiErrors.ErrInvalidRequest, "Nível de confiança deve estar entre 0 e 100")
		}
		entry.ConfidenceLevel = *request.ConfidenceLevel
	}

	if request.Status != nil {
		if err := s.applyStatusChange(actor, entry, *request.Status); err != nil {
			return nil, err
		}
	}

	if request.Notes != nil {
		entry.Notes = request.Notes
	}

	if request.ForecastReasoning != nil {
		entry.ForecastReasoning = request.ForecastReasoning
	}

	// Variações recalculadas em toda persistência
	deriveVariances(entry)

	if err := s.forecastRepository.Update(entry); err != nil {
		logrus.Error("Error updating forecast entry on the repository:", err)
		return nil, NewForecastErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, entry.ID, "Erro ao atualizar entrada de forecast")
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
		return NewForecastErrorWithID(ErrApprovedImmutable, apiErrors.ErrInsufficientPrivilege, entry.ID, "Entradas aprovadas só podem ser excluídas por um administrador")
	}

	if err := s.forecastRepository.Delete(id); err != nil {
		logrus.Error("Error deleting forecast entry on the repository:", err)
		return NewForecastErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Erro ao excluir entrada de forecast")
	}

	s.invalidateYear(ctx, entry.Year)

	return nil
}

// BulkCreate cria forecasts para vários meses e itens de uma vez. A
// quantidade prevista é derivada do valor mensal pelo preço do item
// (preço zero resulta em quantidade zero). Cada célula passa pelo
// versionamento normal.
func (s *Service) BulkCreate(ctx context.Context, actor domain.Actor, request *domain.BulkCreateForecastRequest) (*domain.BulkCreateForecastResponse, error) {
	if len(request.ItemIDs) == 0 {
		return nil, NewForecastError(ErrNoItems, apiErrors.ErrMissingRequiredData, "Informe ao menos um item")
	}

	if len(request.ForecastData) == 0 {
		return nil, NewForecastError(ErrNoForecastData, apiErrors.ErrMissingRequiredData, "Informe os meses do forecast")
	}

	for _, monthData := range request.ForecastData {
		if monthData.Month < 1 || monthData.Month > 12 {
			return nil, NewForecastError(ErrInvalidMonth, apiErrors.ErrInvalidRequest, "Mês deve estar entre 1 e 12")
		}
		if monthData.ForecastedAmount.IsNegative() {
			return nil, NewForecastError(ErrNegativeAmount, apiErrors.ErrInvalidRequest, "Valor previsto não pode ser negativo")
		}
	}

	customer, err := s.customerRepository.GetByID(request.CustomerID)
	if err != nil {
		logrus.Error("Error getting customer by id on the repository:", err)
		return nil, NewForecastError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar cliente")
	}

	if customer == nil {
		return nil, NewForecastErrorWithID(ErrCustomerNotFound, apiErrors.ErrResourceNotFound, request.CustomerID, "Cliente não encontrado")
	}

	items, err := s.itemRepository.GetByIDs(request.ItemIDs)
	if err != nil {
		logrus.Error("Error getting items by ids on the repository:", err)
		return nil, NewForecastError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar itens")
	}

	if len(items) != len(request.ItemIDs) {
		return nil, NewForecastError(ErrItemNotFound, apiErrors.ErrResourceNotFound, "Um ou mais itens informados não existem")
	}

	created := 0
	for _, item := range items {
		for _, monthData := range request.ForecastData {
			quantity := decimal.Zero
			if !item.UnitPrice.IsZero() {
				quantity = monthData.ForecastedAmount.Div(item.UnitPrice).Round(money.RatePlaces)
			}

			forecastType := monthData.ForecastType
			if forecastType == "" {
				forecastType = domain.ForecastRealistic
			}

			_, err := s.CreateEntry(ctx, actor, &domain.CreateForecastEntryRequest{
				CustomerID:         request.CustomerID,
				ItemID:             item.ID,
				Year:               request.Year,
				Month:              monthData.Month,
				ForecastedQuantity: quantity,
				ForecastedAmount:   monthData.ForecastedAmount,
				ForecastType:       forecastType,
			})
			if err != nil {
				return nil, err
			}

			created++
		}
	}

	logrus.Infof("%d forecast entries were successfully created", created)

	return &domain.BulkCreateForecastResponse{
		EntriesCreated: created,
		Message:        fmt.Sprintf("%d entradas de forecast criadas com sucesso", created),
	}, nil
}

// ApproveEntries aprova em lote apenas as entradas em submitted
func (s *Service) ApproveEntries(ctx context.Context, actor domain.Actor, request *domain.ApproveEntriesRequest) (*domain.ApproveEntriesResponse, error) {
	if !actor.CanApprove() {
		return nil, NewForecastError(ErrApprovalForbidden, apiErrors.ErrInsufficientPrivilege, "Apenas administradores e gerentes aprovam entradas")
	}

	if len(request.EntryIDs) == 0 {
		return nil, NewForecastError(ErrEntryIDRequired, apiErrors.ErrMissingRequiredData, "Informe as entradas a aprovar")
	}

	approved, err := s.forecastRepository.ApproveSubmitted(request.EntryIDs, actor.UserID, s.now())
	if err != nil {
		logrus.Error("Error approving forecast entries on the repository:", err)
		return nil, NewForecastError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao aprovar entradas de forecast")
	}

	s.cache.DeleteByPrefix(ctx, cache.KPIPrefix())

	// O lote pode misturar anos; cada ano afetado tem seu prefixo invalidado
	years := make(map[int]struct{})
	for _, id := range request.EntryIDs {
		entry, err := s.forecastRepository.GetByID(id)
		if err == nil && entry != nil {
			years[entry.Year] = struct{}{}
		}
	}
	for year := range years {
		s.cache.DeleteByPrefix(ctx, cache.ForecastPrefix(year))
	}

	logrus.Infof("%d forecast entries were successfully approved", approved)

	return &domain.ApproveEntriesResponse{
		ApprovedCount: int(approved),
		Message:       fmt.Sprintf("%d entradas aprovadas com sucesso", approved),
	}, nil
}

func (s *Service) validateCreateRequest(request *domain.CreateForecastEntryRequest) error {
	if request.Month < 1 || request.Month > 12 {
		return NewForecastError(ErrInvalidMonth, apiErrors.ErrInvalidRequest, "Mês deve estar entre 1 e 12")
	}

	if request.ForecastedQuantity.IsNegative() {
		return NewForecastError(ErrNegativeQuantity, apiErrors.ErrInvalidRequest, "Quantidade prevista não pode ser negativa")
	}

	if request.ForecastedAmount.IsNegative() {
		return NewForecastError(ErrNegativeAmount, apiErrors.ErrInvalidRequest, "Valor previsto não pode ser negativo")
	}

	if request.ForecastType != "" && !validForecastType(request.ForecastType) {
		return NewForecastError(ErrInvalidType, apiErrors.ErrInvalidRequest, "Tipo de forecast desconhecido")
	}

	if request.ConfidenceLevel != nil && (*request.ConfidenceLevel < 0 || *request.ConfidenceLevel > 100) {
		return NewForecastError(ErrInvalidConfidence, apiErrors.ErrInvalidRequest, "Nível de confiança deve estar entre 0 e 100")
	}

	return nil
}

func (s *Service) applyStatusChange(actor domain.Actor, entry *domain.ForecastEntry, next domain.EntryStatus) error {
	if entry.Status == next {
		return nil
	}

	switch next {
	case domain.StatusSubmitted:
		if entry.Status != domain.StatusDraft {
			return NewForecastErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidRequest, entry.ID, "Apenas rascunhos podem ser submetidos")
		}
	case domain.StatusRejected:
		if entry.Status != domain.StatusDraft && entry.Status != domain.StatusSubmitted {
			return NewForecastErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidRequest, entry.ID, "Apenas rascunhos ou submetidas podem ser rejeitadas")
		}
	case domain.StatusApproved:
		if !actor.CanApprove() {
			return NewForecastErrorWithID(ErrApprovalForbidden, apiErrors.ErrInsufficientPrivilege, entry.ID, "Apenas administradores e gerentes aprovam entradas")
		}
		if entry.Status != domain.StatusSubmitted {
			return NewForecastErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidRequest, entry.ID, "Apenas entradas submetidas podem ser aprovadas")
		}
		approvedAt := s.now()
		entry.ApprovedBy = &actor.UserID
		entry.ApprovedAt = &approvedAt
	case domain.StatusDraft:
		if entry.Status != domain.StatusRejected {
			return NewForecastErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidRequest, entry.ID, "Apenas rejeitadas voltam para rascunho")
		}
	default:
		return NewForecastErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidRequest, entry.ID, "Status desconhecido")
	}

	entry.Status = next
	return nil
}

// deriveVariances recalcula as variações contra o snapshot de orçamento
// da entrada. Orçamento zero curto-circuita o percentual para zero.
func deriveVariances(entry *domain.ForecastEntry) {
	entry.QuantityVariance = money.Variance(entry.ForecastedQuantity, entry.BudgetQuantity)
	entry.AmountVariance = money.Variance(entry.ForecastedAmount, entry.BudgetAmount)
	entry.QuantityVariancePercentage = money.VariancePercentage(entry.QuantityVariance, entry.BudgetQuantity)
	entry.AmountVariancePercentage = money.VariancePercentage(entry.AmountVariance, entry.BudgetAmount)
}

func (s *Service) invalidateYear(ctx context.Context, year int) {
	s.cache.DeleteByPrefix(ctx, cache.ForecastPrefix(year))
	s.cache.DeleteByPrefix(ctx, cache.KPIPrefix())
}

func validForecastType(t domain.ForecastType) bool {
	switch t {
	case domain.ForecastOptimistic, domain.ForecastRealistic, domain.ForecastPessimistic:
		return true
	default:
		return false
	}
}

func resolveSalesperson(customer *domain.Customer, actor domain.Actor) *int {
	if customer.SalespersonID != nil {
		return customer.SalespersonID
	}

	userID := actor.UserID
	return &userID
}
