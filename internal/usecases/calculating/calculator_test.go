package calculating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/profit-manager-api/internal/domain"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestCalculateDailyProfitability(t *testing.T) {
	tests := []struct {
		name      string
		aggregate *domain.DailySalesAggregate
		costs     *domain.CostInputs
		expected  *domain.ProfitabilityResult
	}{
		{
			name: "Dia rentável com todos os custos informados",
			aggregate: &domain.DailySalesAggregate{
				TotalSales:    1000.00,
				TotalShipping: 100.00,
			},
			costs: &domain.CostInputs{
				AdvertisingCost: floatPtr(50.00),
				ProductCost:     floatPtr(300.00),
				ShippingCost:    floatPtr(100.00),
			},
			expected: &domain.ProfitabilityResult{
				NetSales:       900.00,
				TotalCosts:     450.00,
				Profitability:  450.00,
				ProfitMargin:   50.00,
				AdvertisingROI: 900.00,
				IsProfitable:   true,
			},
		},
		{
			name:      "Sem vendas e sem custos - tudo zero e não rentável",
			aggregate: &domain.DailySalesAggregate{},
			costs:     &domain.CostInputs{},
			expected: &domain.ProfitabilityResult{
				NetSales:       0,
				TotalCosts:     0,
				Profitability:  0,
				ProfitMargin:   0,
				AdvertisingROI: 0,
				IsProfitable:   false,
			},
		},
		{
			name: "Custos ausentes valem zero",
			aggregate: &domain.DailySalesAggregate{
				TotalSales:    500.00,
				TotalShipping: 50.00,
			},
			costs: &domain.CostInputs{
				ProductCost: floatPtr(150.00),
			},
			expected: &domain.ProfitabilityResult{
				NetSales:       450.00,
				TotalCosts:     150.00,
				Profitability:  300.00,
				ProfitMargin:   66.67,
				AdvertisingROI: 0,
				IsProfitable:   true,
			},
		},
		{
			name: "Prejuízo - margens negativas e ROI negativo",
			aggregate: &domain.DailySalesAggregate{
				TotalSales:    200.00,
				TotalShipping: 20.00,
			},
			costs: &domain.CostInputs{
				AdvertisingCost: floatPtr(100.00),
				ProductCost:     floatPtr(200.00),
			},
			expected: &domain.ProfitabilityResult{
				NetSales:       180.00,
				TotalCosts:     300.00,
				Profitability:  -120.00,
				ProfitMargin:   -66.67,
				AdvertisingROI: -120.00,
				IsProfitable:   false,
			},
		},
		{
			name: "Vendas líquidas negativas - margem zerada pela guarda de divisão",
			aggregate: &domain.DailySalesAggregate{
				TotalSales:    50.00,
				TotalShipping: 80.00,
			},
			costs: &domain.CostInputs{},
			expected: &domain.ProfitabilityResult{
				NetSales:       -30.00,
				TotalCosts:     0,
				Profitability:  -30.00,
				ProfitMargin:   0,
				AdvertisingROI: 0,
				IsProfitable:   false,
			},
		},
		{
			name: "Empate exato não é rentável",
			aggregate: &domain.DailySalesAggregate{
				TotalSales:    300.00,
				TotalShipping: 0,
			},
			costs: &domain.CostInputs{
				ProductCost: floatPtr(300.00),
			},
			expected: &domain.ProfitabilityResult{
				NetSales:       300.00,
				TotalCosts:     300.00,
				Profitability:  0,
				ProfitMargin:   0,
				AdvertisingROI: 0,
				IsProfitable:   false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateDailyProfitability(tt.aggregate, tt.costs)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCalculateDailyProfitability_FuncaoPura(t *testing.T) {
	aggregate := &domain.DailySalesAggregate{TotalSales: 1000, TotalShipping: 100}
	costs := &domain.CostInputs{AdvertisingCost: floatPtr(50)}

	first := CalculateDailyProfitability(aggregate, costs)
	second := CalculateDailyProfitability(aggregate, costs)

	assert.Equal(t, first, second)
}
