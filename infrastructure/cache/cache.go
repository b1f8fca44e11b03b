// Package cache fornece o cache read-through usado pelos sumários do
// planejamento. Falha de cache nunca afeta correção, só latência: todo
// erro é logado e engolido, e um miss sempre cai para o recálculo.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache é o contrato de cache best-effort do serviço
type Cache interface {
	// Get tenta preencher dest com o valor da chave; false em miss ou erro
	Get(ctx context.Context, key string, dest any) bool
	// Set grava o valor com TTL; fire-and-forget
	Set(ctx context.Context, key string, value any, ttl time.Duration)
	// Delete remove chaves específicas
	Delete(ctx context.Context, keys ...string)
	// DeleteByPrefix remove todas as chaves com o prefixo informado.
	// Usado pela invalidação por tag dos caminhos de escrita.
	DeleteByPrefix(ctx context.Context, prefix string)
}

// Prefixos e chaves derivadas dos sumários. Cada caminho de escrita
// enumera o prefixo do ano afetado e chama DeleteByPrefix, cobrindo
// todas as combinações dimensionais derivadas daquele ano.

// BudgetPrefix é o prefixo de todas as chaves derivadas do orçamento de um ano
func BudgetPrefix(year int) string {
	return fmt.Sprintf("budget:%d:", year)
}

// ForecastPrefix é o prefixo de todas as chaves derivadas do forecast de um ano
func ForecastPrefix(year int) string {
	return fmt.Sprintf("forecast:%d:", year)
}

// KPIPrefix é o prefixo das chaves de dashboard de KPIs
func KPIPrefix() string {
	return "kpi:"
}

// BudgetSummaryKey identifica o sumário anual de orçamento por escopo do ator
func BudgetSummaryKey(year int, scope string) string {
	return fmt.Sprintf("%ssummary:%s", BudgetPrefix(year), scope)
}

// MonthlyBudgetKey identifica o detalhamento mensal de orçamento
func MonthlyBudgetKey(year, month int, scope string) string {
	return fmt.Sprintf("%smonthly:%d:%s", BudgetPrefix(year), month, scope)
}

// VarianceAnalysisKey identifica a análise anual de variação
func VarianceAnalysisKey(year int, scope string) string {
	return fmt.Sprintf("%svariance:%s", ForecastPrefix(year), scope)
}

// ForecastSummaryKey identifica o sumário anual de forecast
func ForecastSummaryKey(year int, scope string) string {
	return fmt.Sprintf("%ssummary:%s", ForecastPrefix(year), scope)
}

// MonthlyForecastKey identifica o detalhamento mensal de forecast
func MonthlyForecastKey(year, month int, scope string) string {
	return fmt.Sprintf("%smonthly:%d:%s", ForecastPrefix(year), month, scope)
}
