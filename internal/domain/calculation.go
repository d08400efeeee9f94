package domain

import (
	"time"
)

// CostInputs são os custos informados pelo usuário para o cálculo de
// rentabilidade. Campos nulos são tratados como ausentes e valem zero.
type CostInputs struct {
	AdvertisingCost *float64 `json:"advertisingCost,omitempty"`
	ProductCost     *float64 `json:"productCost,omitempty"`
	ShippingCost    *float64 `json:"shippingCost,omitempty"`
}

// AdvertisingValue retorna o custo de publicidade ou zero quando ausente
func (c *CostInputs) AdvertisingValue() float64 {
	if c == nil || c.AdvertisingCost == nil {
		return 0
	}
	return *c.AdvertisingCost
}

// ProductValue retorna o custo de produto ou zero quando ausente
func (c *CostInputs) ProductValue() float64 {
	if c == nil || c.ProductCost == nil {
		return 0
	}
	return *c.ProductCost
}

// ShippingValue retorna o custo de envio ou zero quando ausente
func (c *CostInputs) ShippingValue() float64 {
	if c == nil || c.ShippingCost == nil {
		return 0
	}
	return *c.ShippingCost
}

// ProfitabilityResult é o resultado do cálculo de rentabilidade diária.
// Todos os valores monetários e percentuais têm 2 casas decimais.
type ProfitabilityResult struct {
	NetSales       float64 `json:"netSales"`
	TotalCosts     float64 `json:"totalCosts"`
	Profitability  float64 `json:"profitability"`
	ProfitMargin   float64 `json:"profitMargin"`
	AdvertisingROI float64 `json:"advertisingROI"`
	IsProfitable   bool    `json:"isProfitable"`
}

// ValidationResult acumula todas as violações encontradas na validação
// das entradas do cálculo, sem interromper na primeira
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// CalculationEntry representa um cálculo de rentabilidade persistido,
// chaveado por usuário e data
type CalculationEntry struct {
	ID              int64                `json:"id"`
	UserID          string               `json:"user_id"`
	Date            time.Time            `json:"date"`
	Costs           *CostInputs          `json:"costs"`
	Result          *ProfitabilityResult `json:"result"`
	Recommendations []*Recommendation    `json:"recommendations"`
	CalculatedAt    time.Time            `json:"calculated_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}
