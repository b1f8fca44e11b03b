// Package money concentra a aritmética de valores do planejamento.
// Tudo em decimal de ponto fixo: 2 casas para dinheiro, 4 para taxas,
// para não acumular erro de arredondamento nas agregações.
package money

import "github.com/shopspring/decimal"

const (
	// MoneyPlaces é a precisão de valores monetários
	MoneyPlaces int32 = 2
	// RatePlaces é a precisão de percentuais e taxas
	RatePlaces int32 = 4
)

var hundred = decimal.NewFromInt(100)

// GrossAmount calcula o valor bruto: quantidade x preço unitário
func GrossAmount(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice).Round(MoneyPlaces)
}

// DiscountAmount calcula o valor do desconto sobre o bruto
func DiscountAmount(gross, discountPercentage decimal.Decimal) decimal.Decimal {
	if discountPercentage.IsZero() {
		return decimal.Zero
	}

	return gross.Mul(discountPercentage).Div(hundred).Round(MoneyPlaces)
}

// TotalAmount calcula o valor líquido de uma entrada: bruto menos desconto.
// Recalculado em toda persistência, nunca aceito do chamador.
func TotalAmount(quantity, unitPrice, discountPercentage decimal.Decimal) decimal.Decimal {
	gross := GrossAmount(quantity, unitPrice)
	return gross.Sub(DiscountAmount(gross, discountPercentage)).Round(MoneyPlaces)
}

// Variance calcula a variação com sinal: realizado menos baseline
func Variance(actual, baseline decimal.Decimal) decimal.Decimal {
	return actual.Sub(baseline).Round(MoneyPlaces)
}

// VariancePercentage calcula a variação percentual sobre o baseline.
// Baseline zero devolve zero, nunca erro de divisão.
func VariancePercentage(variance, baseline decimal.Decimal) decimal.Decimal {
	if baseline.IsZero() {
		return decimal.Zero
	}

	return variance.Div(baseline).Mul(hundred).Round(RatePlaces)
}

// GrowthRate calcula o crescimento percentual sobre o período anterior,
// usando o valor absoluto do anterior como base
func GrowthRate(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}

	return current.Sub(previous).Div(previous.Abs()).Mul(hundred).Round(RatePlaces)
}

// AccuracyScore calcula o score 0-100 que penaliza o desvio absoluto entre
// forecast e orçamento agregados. Orçamento zero devolve zero.
func AccuracyScore(totalForecast, totalBudget decimal.Decimal) decimal.Decimal {
	if totalBudget.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	deviation := totalForecast.Sub(totalBudget).Abs().Div(totalBudget).Mul(hundred)
	score := hundred.Sub(deviation)
	if score.LessThan(decimal.Zero) {
		return decimal.Zero
	}

	return score.Round(MoneyPlaces)
}
