package calculating

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/profit-manager-api/internal/domain"
)

func TestValidateInputs(t *testing.T) {
	validAggregate := &domain.DailySalesAggregate{TotalSales: 100}

	tests := []struct {
		name           string
		aggregate      *domain.DailySalesAggregate
		costs          *domain.CostInputs
		expectedValid  bool
		expectedErrors []string
	}{
		{
			name:           "Entradas válidas",
			aggregate:      validAggregate,
			costs:          &domain.CostInputs{AdvertisingCost: floatPtr(10)},
			expectedValid:  true,
			expectedErrors: []string{},
		},
		{
			name:           "Custos ausentes são válidos",
			aggregate:      validAggregate,
			costs:          &domain.CostInputs{},
			expectedValid:  true,
			expectedErrors: []string{},
		},
		{
			name:           "Agregado nulo",
			aggregate:      nil,
			costs:          &domain.CostInputs{},
			expectedValid:  false,
			expectedErrors: []string{"Dados de vendas inválidos"},
		},
		{
			name:           "Custos nulos",
			aggregate:      validAggregate,
			costs:          nil,
			expectedValid:  false,
			expectedErrors: []string{"Dados de custos inválidos"},
		},
		{
			name:          "Custo de publicidade negativo nomeia exatamente o campo",
			aggregate:     validAggregate,
			costs:         &domain.CostInputs{AdvertisingCost: floatPtr(-5)},
			expectedValid: false,
			expectedErrors: []string{
				"advertisingCost deve ser um número maior ou igual a 0",
			},
		},
		{
			name:      "Todas as violações são acumuladas",
			aggregate: nil,
			costs: &domain.CostInputs{
				AdvertisingCost: floatPtr(-1),
				ProductCost:     floatPtr(math.NaN()),
				ShippingCost:    floatPtr(math.Inf(1)),
			},
			expectedValid: false,
			expectedErrors: []string{
				"Dados de vendas inválidos",
				"advertisingCost deve ser um número maior ou igual a 0",
				"productCost deve ser um número maior ou igual a 0",
				"shippingCost deve ser um número maior ou igual a 0",
			},
		},
		{
			name:           "Custo zero é válido",
			aggregate:      validAggregate,
			costs:          &domain.CostInputs{ProductCost: floatPtr(0)},
			expectedValid:  true,
			expectedErrors: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateInputs(tt.aggregate, tt.costs)
			assert.Equal(t, tt.expectedValid, result.IsValid)
			assert.Equal(t, tt.expectedErrors, result.Errors)
		})
	}
}
