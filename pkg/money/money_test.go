package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTotalAmount(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		price    string
		discount string
		expected string
	}{
		{
			name:     "Sem desconto",
			quantity: "10",
			price:    "25.50",
			discount: "0",
			expected: "255",
		},
		{
			name:     "Com desconto de 10%",
			quantity: "10",
			price:    "100",
			discount: "10",
			expected: "900",
		},
		{
			name:     "Desconto total de 100%",
			quantity: "5",
			price:    "80",
			discount: "100",
			expected: "0",
		},
		{
			name:     "Quantidade zero",
			quantity: "0",
			price:    "99.99",
			discount: "15",
			expected: "0",
		},
		{
			name:     "Arredondamento em 2 casas",
			quantity: "3",
			price:    "33.33",
			discount: "7.5",
			expected: "92.49",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := TotalAmount(d(tt.quantity), d(tt.price), d(tt.discount))
			assert.True(t, d(tt.expected).Equal(total),
				"esperado %s, obtido %s", tt.expected, total)
		})
	}
}

func TestVariancePercentage(t *testing.T) {
	tests := []struct {
		name     string
		variance string
		baseline string
		expected string
	}{
		{
			name:     "Baseline zero devolve zero",
			variance: "50",
			baseline: "0",
			expected: "0",
		},
		{
			name:     "Variação positiva",
			variance: "25",
			baseline: "100",
			expected: "25",
		},
		{
			name:     "Variação negativa",
			variance: "-30",
			baseline: "200",
			expected: "-15",
		},
		{
			name:     "Precisão de 4 casas",
			variance: "1",
			baseline: "3",
			expected: "33.3333",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct := VariancePercentage(d(tt.variance), d(tt.baseline))
			assert.True(t, d(tt.expected).Equal(pct),
				"esperado %s, obtido %s", tt.expected, pct)
		})
	}
}

func TestVariance(t *testing.T) {
	assert.True(t, d("-5").Equal(Variance(d("95"), d("100"))))
	assert.True(t, d("50").Equal(Variance(d("150"), d("100"))))
}

func TestAccuracyScore(t *testing.T) {
	tests := []struct {
		name     string
		forecast string
		budget   string
		expected string
	}{
		{
			name:     "Forecast abaixo do orçamento",
			forecast: "95",
			budget:   "100",
			expected: "95",
		},
		{
			name:     "Forecast muito acima - piso em zero antes do corte",
			forecast: "150",
			budget:   "100",
			expected: "50",
		},
		{
			name:     "Desvio maior que 100% fica no piso zero",
			forecast: "250",
			budget:   "100",
			expected: "0",
		},
		{
			name:     "Orçamento zero devolve zero",
			forecast: "100",
			budget:   "0",
			expected: "0",
		},
		{
			name:     "Forecast exato",
			forecast: "100",
			budget:   "100",
			expected: "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := AccuracyScore(d(tt.forecast), d(tt.budget))
			assert.True(t, d(tt.expected).Equal(score),
				"esperado %s, obtido %s", tt.expected, score)
		})
	}
}

func TestGrowthRate(t *testing.T) {
	assert.True(t, GrowthRate(d("120"), d("0")).IsZero())
	assert.True(t, d("20").Equal(GrowthRate(d("120"), d("100"))))
	assert.True(t, d("-25").Equal(GrowthRate(d("75"), d("100"))))
	// Base negativa usa o valor absoluto
	assert.True(t, d("50").Equal(GrowthRate(d("-50"), d("-100"))))
}

func TestDiscountAmount(t *testing.T) {
	gross := GrossAmount(d("10"), d("100"))
	assert.True(t, d("1000").Equal(gross))
	assert.True(t, DiscountAmount(gross, decimal.Zero).IsZero())
	assert.True(t, d("150").Equal(DiscountAmount(gross, d("15"))))
}
