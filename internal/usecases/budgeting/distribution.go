package budgeting

import (
	"github.com/shopspring/decimal"
	"github.com/stmbudget/sales-planning-api/internal/domain"
	"github.com/stmbudget/sales-planning-api/pkg/money"
)

// seasonalMultipliers é a tabela fixa de sazonalidade, indexada pelo mês
// (1=janeiro..12=dezembro). Meses 1-4 pesam alto, 5-8 médio, 9-12 baixo.
var seasonalMultipliers = map[int]decimal.Decimal{
	1:  decimal.RequireFromString("1.60"),
	2:  decimal.RequireFromString("1.50"),
	3:  decimal.RequireFromString("1.40"),
	4:  decimal.RequireFromString("1.30"),
	5:  decimal.RequireFromString("1.20"),
	6:  decimal.RequireFromString("1.10"),
	7:  decimal.RequireFromString("1.00"),
	8:  decimal.RequireFromString("0.90"),
	9:  decimal.RequireFromString("0.80"),
	10: decimal.RequireFromString("0.75"),
	11: decimal.RequireFromString("0.70"),
	12: decimal.RequireFromString("0.60"),
}

// SeasonalMultiplier devolve o multiplicador do mês (1.00 fora de 1-12)
func SeasonalMultiplier(month int) decimal.Decimal {
	multiplier, ok := seasonalMultipliers[month]
	if !ok {
		return decimal.NewFromInt(1)
	}
	return multiplier
}

// monthQuantity calcula a quantidade de um mês segundo o tipo de
// distribuição. baseQuantity = amountPerItem / unitPrice, com guarda de
// preço zero. Distribuições manual e percentual confiam nas quantidades
// informadas pelo chamador e não passam por aqui.
func monthQuantity(distributionType domain.DistributionType, amountPerItem, unitPrice decimal.Decimal, month int) (quantity, multiplier decimal.Decimal) {
	baseQuantity := decimal.Zero
	if !unitPrice.IsZero() {
		baseQuantity = amountPerItem.Div(unitPrice).Round(money.RatePlaces)
	}

	if distributionType == domain.DistributionSeasonal {
		m := SeasonalMultiplier(month)
		return baseQuantity.Mul(m).Round(money.RatePlaces), m
	}

	return baseQuantity, decimal.NewFromInt(1)
}

// buildDistributedEntries gera as 12 x |itens| entradas do lote. Cada
// entrada nasce como rascunho, com o total recalculado pela aritmética
// central (nunca aceito do chamador).
func buildDistributedEntries(
	request *domain.BulkCreateBudgetRequest,
	items []*domain.Item,
	salespersonID *int,
	createdBy int,
	generateID func() (string, error),
) ([]*domain.BudgetEntry, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	amountPerItem := request.TotalAmount.Div(decimal.NewFromInt(int64(len(items)))).Round(money.MoneyPlaces)

	entries := make([]*domain.BudgetEntry, 0, len(items)*12)
	for _, item := range items {
		for month := 1; month <= 12; month++ {
			var quantity, multiplier decimal.Decimal

			switch request.DistributionType {
			case domain.DistributionEqual, domain.DistributionSeasonal:
				quantity, multiplier = monthQuantity(request.DistributionType, amountPerItem, item.UnitPrice, month)
			case domain.DistributionManual, domain.DistributionPercentage:
				supplied, ok := request.ManualQuantities[month]
				if !ok {
					return nil, ErrMissingQuantities
				}
				quantity, multiplier = supplied, decimal.NewFromInt(1)
			default:
				return nil, ErrInvalidDistribution
			}

			if quantity.IsNegative() {
				return nil, ErrNegativeQuantity
			}

			id, err := generateID()
			if err != nil {
				return nil, ErrGenerateID
			}

			entries = append(entries, &domain.BudgetEntry{
				ID:                 id,
				CustomerID:         request.CustomerID,
				ItemID:             item.ID,
				Year:               request.Year,
				Month:              month,
				Quantity:           quantity,
				UnitPrice:          item.UnitPrice,
				DiscountPercentage: item.DiscountPercentage,
				TotalAmount:        money.TotalAmount(quantity, item.UnitPrice, item.DiscountPercentage),
				DistributionType:   request.DistributionType,
				SeasonalMultiplier: multiplier,
				IsManualEntry:      request.DistributionType == domain.DistributionManual,
				Status:             domain.StatusDraft,
				SalespersonID:      salespersonID,
				CreatedBy:          &createdBy,
			})
		}
	}

	return entries, nil
}

// reapplySeasonal reverte o multiplicador armazenado e aplica o do mês
// corrente da tabela. Só entradas com distribuição sazonal podem ser
// reaplicadas. Reaplicar só é idempotente com o multiplicador inalterado;
// com tabela divergente o resultado compõe errado, então a divergência é
// rejeitada em vez de composta em silêncio.
func reapplySeasonal(entry *domain.BudgetEntry) (decimal.Decimal, error) {
	if entry.DistributionType != domain.DistributionSeasonal {
		return decimal.Zero, ErrNotSeasonal
	}

	current := SeasonalMultiplier(entry.Month)

	if entry.SeasonalMultiplier.IsZero() {
		return decimal.Zero, ErrMultiplierChanged
	}

	if !entry.SeasonalMultiplier.Equal(current) {
		return decimal.Zero, ErrMultiplierChanged
	}

	base := entry.Quantity.Div(entry.SeasonalMultiplier).Round(money.RatePlaces)
	return base.Mul(current).Round(money.RatePlaces), nil
}
