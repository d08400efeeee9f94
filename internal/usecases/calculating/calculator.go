package calculating

import (
	"github.com/vfg2006/profit-manager-api/internal/domain"
	"github.com/vfg2006/profit-manager-api/pkg/utils"
)

// CalculateDailyProfitability calcula a rentabilidade diária a partir do
// agregado de vendas e dos custos informados. Pressupõe entradas já
// validadas. Função pura: mesmos argumentos, mesmo resultado.
//
// Margem e ROI têm guarda de divisão: quando as vendas líquidas (ou o
// custo de publicidade) não são positivos, o percentual é definido como
// zero por política, não como erro.
func CalculateDailyProfitability(aggregate *domain.DailySalesAggregate, costs *domain.CostInputs) *domain.ProfitabilityResult {
	// Vendas líquidas (vendas brutas - envios cobrados do cliente)
	netSales := aggregate.TotalSales - aggregate.TotalShipping

	// Custos totais
	totalCosts := costs.AdvertisingValue() + costs.ProductValue() + costs.ShippingValue()

	// Rentabilidade
	profitability := netSales - totalCosts

	// Margem de rentabilidade (%)
	profitMargin := 0.0
	if netSales > 0 {
		profitMargin = (profitability / netSales) * 100
	}

	// ROI de publicidade (%)
	advertisingROI := 0.0
	if costs.AdvertisingValue() > 0 {
		advertisingROI = (profitability / costs.AdvertisingValue()) * 100
	}

	return &domain.ProfitabilityResult{
		NetSales:       utils.RoundWithTwoDecimalPlace(netSales),
		TotalCosts:     utils.RoundWithTwoDecimalPlace(totalCosts),
		Profitability:  utils.RoundWithTwoDecimalPlace(profitability),
		ProfitMargin:   utils.RoundWithTwoDecimalPlace(profitMargin),
		AdvertisingROI: utils.RoundWithTwoDecimalPlace(advertisingROI),
		IsProfitable:   profitability > 0,
	}
}
