package calculating

import (
	"fmt"
	"math"

	"github.com/vfg2006/profit-manager-api/internal/domain"
)

// ValidateInputs valida as entradas do cálculo de rentabilidade.
// Todas as violações são acumuladas na lista de erros, sem interromper
// na primeira, para que o chamador receba o quadro completo. Campos de
// custo ausentes são válidos e valem zero no cálculo.
func ValidateInputs(aggregate *domain.DailySalesAggregate, costs *domain.CostInputs) domain.ValidationResult {
	errors := make([]string, 0)

	if aggregate == nil {
		errors = append(errors, "Dados de vendas inválidos")
	}

	if costs == nil {
		errors = append(errors, "Dados de custos inválidos")
	}

	if costs != nil {
		costFields := []struct {
			name  string
			value *float64
		}{
			{"advertisingCost", costs.AdvertisingCost},
			{"productCost", costs.ProductCost},
			{"shippingCost", costs.ShippingCost},
		}

		for _, field := range costFields {
			if field.value == nil {
				continue
			}

			if math.IsNaN(*field.value) || math.IsInf(*field.value, 0) || *field.value < 0 {
				errors = append(errors, fmt.Sprintf("%s deve ser um número maior ou igual a 0", field.name))
			}
		}
	}

	return domain.ValidationResult{
		IsValid: len(errors) == 0,
		Errors:  errors,
	}
}
